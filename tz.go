package chrono

/*
tz.go contains the TimeZone offset resolver: instant to local
translation, local to instant disambiguation and transition search.
*/

import "math/big"

/*
TransitionProvider supplies the UTC offset history of a time zone at
minute granularity. Offsets are in minutes, positive east of UTC, so
that local = UTC + offset.

OffsetsAt describes the local minute given: base is the offset in force
before any transition near that minute and diff is base minus the
offset after it. A zero diff means the local minute is unambiguous, a
positive diff an overlap and a negative diff a gap.

TransitionAt returns the next transition strictly after epochMinutes
when direction is positive, or the previous transition strictly before
it otherwise.
*/
type TransitionProvider interface {
	OffsetAt(epochMinutes int64) int
	OffsetsAt(localEpochMinutes int64) (base, diff int)
	TransitionAt(epochMinutes int64, direction int) (int64, bool)
}

/*
TimeZone pairs an identifier with a [TransitionProvider]. Instances are
immutable and safe for concurrent use.
*/
type TimeZone struct {
	id       string
	provider TransitionProvider
}

/*
NewTimeZone returns an instance of *[TimeZone] alongside an error.
*/
func NewTimeZone(id string, p TransitionProvider) (*TimeZone, error) {
	if trimS(id) == `` {
		return nil, errorEmptyZoneID
	} else if p == nil {
		return nil, errorNilProvider
	}
	return &TimeZone{id: id, provider: p}, nil
}

/*
FixedTimeZone returns a *[TimeZone] with a constant offset of minutes.
Its identifier is the offset in "±HH:MM" form.
*/
func FixedTimeZone(minutes int) *TimeZone {
	return &TimeZone{id: formatOffset(minutes), provider: FixedOffset(minutes)}
}

/*
UTC returns the fixed zero-offset *[TimeZone] named "UTC".
*/
func UTC() *TimeZone { return &TimeZone{id: `UTC`, provider: FixedOffset(0)} }

func (r *TimeZone) ID() string                   { return r.id }
func (r *TimeZone) String() string               { return r.id }
func (r *TimeZone) Provider() TransitionProvider { return r.provider }

/*
Equals returns a Boolean value indicative of a shared identifier.
*/
func (r *TimeZone) Equals(o *TimeZone) bool {
	return r != nil && o != nil && r.id == o.id
}

/*
OffsetMinutesFor returns the UTC offset in force at i.
*/
func (r *TimeZone) OffsetMinutesFor(i Instant) int {
	return r.provider.OffsetAt(floorDiv(i.sec, 60))
}

/*
OffsetNanosecondsFor returns the UTC offset in force at i in nanoseconds.
*/
func (r *TimeZone) OffsetNanosecondsFor(i Instant) int64 {
	return int64(r.OffsetMinutesFor(i)) * nanoIn[Minute]
}

func (r *TimeZone) localDateTime(i Instant) ISODateTime {
	local := i.sec + int64(r.OffsetMinutesFor(i))*60
	return ISODateTime{
		ISOFromEpochDay(floorDiv(local, 86_400)),
		ISOTimeFromNanoseconds(floorMod(local, 86_400)*nanoIn[Second] + i.nsec),
	}
}

/*
PlainDateTimeFor returns the wall-clock date-time of i in the receiver.
A nil cal selects the default calendar.
*/
func (r *TimeZone) PlainDateTimeFor(i Instant, cal Calendar) PlainDateTime {
	return PlainDateTime{iso: r.localDateTime(i), cal: orDefaultCalendar(cal)}
}

/*
ResolutionState classifies a local date-time within a time zone.
*/
type ResolutionState int

const (
	Unambiguous ResolutionState = iota
	Gap                         // skipped by a forward transition
	Overlap                     // repeated by a backward transition
)

func (r ResolutionState) String() string {
	switch r {
	case Gap:
		return `gap`
	case Overlap:
		return `overlap`
	}
	return `unambiguous`
}

/*
Resolution describes how a local date-time maps onto instants. For a gap
the candidates bracket the skipped span; for an overlap they are the two
real instants. Candidates are in chronological order.
*/
type Resolution struct {
	State      ResolutionState
	Candidates []Instant
}

/*
Resolve classifies dt against the receiver's offsets.
*/
func (r *TimeZone) Resolve(dt ISODateTime) (res Resolution, err error) {
	local := dt.epochMinutes()
	base, diff := r.provider.OffsetsAt(local)
	sub := dt.subMinute()

	at := func(minutes int64) (Instant, error) {
		return NewInstant(minutes*60, sub)
	}
	e, err := at(local - int64(base))
	if err != nil {
		return
	}

	switch {
	case diff == 0:
		res = Resolution{State: Unambiguous, Candidates: []Instant{e}}
	case diff > 0:
		var later Instant
		if later, err = at(local - int64(base) + int64(diff)); err == nil {
			res = Resolution{State: Overlap, Candidates: []Instant{e, later}}
		}
	default:
		var earlier Instant
		if earlier, err = at(local - int64(base) + int64(diff)); err == nil {
			res = Resolution{State: Gap, Candidates: []Instant{earlier, e}}
		}
	}
	debugZone("resolve", r.id, dt, res.State)
	return
}

/*
InstantFor returns the instant of dt in the receiver, disambiguated per
[WithDisambiguation] (default from [Defaults], initially compatible).

In an overlap, compatible and earlier select the first instant and later
the second. In a gap, earlier selects the instant which reads as dt
under the post-transition offset shifted back by the gap; later and
compatible select the instant which reads as dt under the pre-transition
offset, landing after the gap. Reject returns [ErrAmbiguous].
*/
func (r *TimeZone) InstantFor(dt PlainDateTime, options ...Option) (Instant, error) {
	cfg := newOpConfig(Trunc, options...)
	return r.instantFor(dt.iso, cfg.disambiguation)
}

func (r *TimeZone) instantFor(dt ISODateTime, d Disambiguation) (i Instant, err error) {
	var res Resolution
	if res, err = r.Resolve(dt); err != nil {
		return
	}
	switch res.State {
	case Unambiguous:
		return res.Candidates[0], nil
	case Overlap:
		switch d {
		case Compatible, Earlier:
			return res.Candidates[0], nil
		case Later:
			return res.Candidates[1], nil
		}
	case Gap:
		switch d {
		case Earlier:
			return res.Candidates[0], nil
		case Compatible, Later:
			return res.Candidates[1], nil
		}
	}
	return i, ErrAmbiguous.detail(dt, " in ", r.id, " (", res.State, ")")
}

/*
PossibleInstantsFor returns every instant whose local reading in the
receiver is dt: none in a gap, two in an overlap, one otherwise.
*/
func (r *TimeZone) PossibleInstantsFor(dt PlainDateTime) []Instant {
	res, err := r.Resolve(dt.iso)
	if err != nil || res.State == Gap {
		return []Instant{}
	}
	return res.Candidates
}

/*
NextTransition returns the first offset transition strictly after i.
*/
func (r *TimeZone) NextTransition(i Instant) (Instant, bool) {
	return r.transition(floorDiv(i.sec, 60), 1)
}

/*
PreviousTransition returns the last offset transition strictly before i.
*/
func (r *TimeZone) PreviousTransition(i Instant) (Instant, bool) {
	m := floorDiv(i.sec, 60)
	if i.sec%60 != 0 || i.nsec != 0 {
		m++
	}
	return r.transition(m, -1)
}

func (r *TimeZone) transition(m int64, direction int) (Instant, bool) {
	t, ok := r.provider.TransitionAt(m, direction)
	if !ok {
		return Instant{}, false
	}
	i, err := NewInstant(t*60, 0)
	return i, err == nil
}

/*
addZoned returns i advanced by dd in the local calendar of tz, keeping
the wall-clock time and resolving compatibly, then by timeNs exactly.
A nil timeNs adds no time. Day-of-month overflow is constrained.
*/
func addZoned(i Instant, tz *TimeZone, cal Calendar, dd dateDuration, timeNs *big.Int) (Instant, error) {
	return addZonedWith(i, tz, cal, dd, timeNs, Constrain)
}

func addZonedWith(i Instant, tz *TimeZone, cal Calendar, dd dateDuration, timeNs *big.Int, o Overflow) (Instant, error) {
	if dd.isZero() {
		return i.addNanos(timeNs)
	}
	dt := tz.localDateTime(i)
	date, err := cal.DateAdd(dt.ISODate, dd.years, dd.months, dd.weeks, dd.days, o)
	if err != nil {
		return i, err
	}
	moved, err := tz.instantFor(ISODateTime{date, dt.ISOTime}, Compatible)
	if err != nil {
		return i, err
	}
	return moved.addNanos(timeNs)
}
