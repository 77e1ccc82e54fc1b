package chrono

/*
zdt.go contains ZonedDateTime, an exact instant read in a time zone and
calendar.
*/

import "math/big"

/*
ZonedDateTime is an [Instant] paired with a *[TimeZone] and a
[Calendar]. Its wall-clock fields are derived from the instant, so the
type never holds a local time the zone cannot produce.
*/
type ZonedDateTime struct {
	inst Instant
	zone *TimeZone
	cal  Calendar
}

/*
NewZonedDateTime returns an instance of [ZonedDateTime] alongside an
error. A nil tz is an error; a nil cal selects the default calendar.
*/
func NewZonedDateTime(i Instant, tz *TimeZone, cal Calendar) (ZonedDateTime, error) {
	if tz == nil {
		return ZonedDateTime{}, errorNilTimeZone
	} else if err := i.checkLimits(); err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{inst: i, zone: tz, cal: orDefaultCalendar(cal)}, nil
}

/*
utcZone reads the zero [ZonedDateTime], whose zone is nil.
*/
var utcZone = UTC()

/*
tz returns the receiver's zone, or UTC for the zero value.
*/
func (r ZonedDateTime) tz() *TimeZone {
	if r.zone == nil {
		return utcZone
	}
	return r.zone
}

func (r ZonedDateTime) Instant() Instant    { return r.inst }
func (r ZonedDateTime) TimeZone() *TimeZone { return r.zone }
func (r ZonedDateTime) Calendar() Calendar  { return orDefaultCalendar(r.cal) }

/*
OffsetMinutes returns the UTC offset in force at the receiver. The zero
value reads as UTC.
*/
func (r ZonedDateTime) OffsetMinutes() int { return r.tz().OffsetMinutesFor(r.inst) }

/*
OffsetNanoseconds returns the UTC offset in force at the receiver in
nanoseconds.
*/
func (r ZonedDateTime) OffsetNanoseconds() int64 { return r.tz().OffsetNanosecondsFor(r.inst) }

/*
Offset returns the UTC offset in "±HH:MM" form.
*/
func (r ZonedDateTime) Offset() string { return formatOffset(r.OffsetMinutes()) }

func (r ZonedDateTime) local() ISODateTime { return r.tz().localDateTime(r.inst) }

/*
PlainDateTime returns the wall-clock date-time of the receiver.
*/
func (r ZonedDateTime) PlainDateTime() PlainDateTime {
	return PlainDateTime{iso: r.local(), cal: r.cal}
}

/*
PlainDate returns the wall-clock date of the receiver.
*/
func (r ZonedDateTime) PlainDate() PlainDate {
	return PlainDate{iso: r.local().ISODate, cal: r.cal}
}

/*
CalendarDate returns the receiver's date fields as read in its calendar.
*/
func (r ZonedDateTime) CalendarDate() CalendarDate {
	return r.Calendar().FieldsFromISO(r.local().ISODate)
}

/*
StartOfDay returns the first instant of the receiver's local date. When
midnight falls in a gap, this is the instant of the transition.
*/
func (r ZonedDateTime) StartOfDay() (ZonedDateTime, error) {
	if r.zone == nil {
		return r, errorNilTimeZone
	}
	i, err := startOfDay(r.zone, r.local().ISODate)
	if err != nil {
		return r, err
	}
	return ZonedDateTime{inst: i, zone: r.zone, cal: r.cal}, nil
}

func startOfDay(tz *TimeZone, d ISODate) (Instant, error) {
	res, err := tz.Resolve(ISODateTime{ISODate: d})
	if err != nil {
		return Instant{}, err
	}
	if res.State == Gap {
		if t, ok := tz.NextTransition(res.Candidates[0]); ok {
			return t, nil
		}
		return res.Candidates[1], nil
	}
	return res.Candidates[0], nil
}

/*
dayBounds returns the first instant of the receiver's local date and of
the day after it.
*/
func (r ZonedDateTime) dayBounds() (start, end Instant, err error) {
	if r.zone == nil {
		err = errorNilTimeZone
		return
	}
	d := r.local().ISODate
	if start, err = startOfDay(r.zone, d); err == nil {
		end, err = startOfDay(r.zone, d.AddDays(1))
	}
	return
}

/*
HoursInDay returns the length of the receiver's local date in hours,
such as 23 or 25 on the days of a daylight saving transition.
*/
func (r ZonedDateTime) HoursInDay() (float64, error) {
	start, end, err := r.dayBounds()
	if err != nil {
		return 0, err
	}
	h, _ := new(big.Rat).SetFrac(end.sub(start), newBigInt(nanoIn[Hour])).Float64()
	return h, nil
}

/*
Add returns the receiver advanced by d. Calendar units move the wall
clock, subject to [WithOverflow], and the result is resolved compatibly;
time units are then added as exact elapsed time.
*/
func (r ZonedDateTime) Add(d Duration, options ...Option) (ZonedDateTime, error) {
	if r.zone == nil {
		return r, errorNilTimeZone
	}
	cfg := newOpConfig(Trunc, options...)
	i, err := addZonedWith(r.inst, r.zone, r.Calendar(), d.date(), d.timeNanoseconds(), cfg.overflow)
	if err != nil {
		return r, err
	}
	debugZone("add", r.zone.id, r.inst, d, i)
	return ZonedDateTime{inst: i, zone: r.zone, cal: r.cal}, nil
}

/*
Subtract returns the receiver moved back by d. See [ZonedDateTime.Add].
*/
func (r ZonedDateTime) Subtract(d Duration, options ...Option) (ZonedDateTime, error) {
	return r.Add(d.Negated(), options...)
}

/*
Until returns the [Duration] from the receiver to o. The largest unit
defaults to hours. Days and larger units require both operands to share
a time zone.
*/
func (r ZonedDateTime) Until(o ZonedDateTime, options ...Option) (Duration, error) {
	return r.diff(r, o, options)
}

/*
Since returns the [Duration] from o to the receiver. See
[ZonedDateTime.Until].
*/
func (r ZonedDateTime) Since(o ZonedDateTime, options ...Option) (Duration, error) {
	return r.diff(o, r, options)
}

func (r ZonedDateTime) diff(a, b ZonedDateTime, options []Option) (Duration, error) {
	if a.zone == nil || b.zone == nil {
		return Duration{}, errorNilTimeZone
	} else if !sameCalendar(a.Calendar(), b.Calendar()) {
		return Duration{}, rangeErrorf("cannot difference date-times in calendars ", a.Calendar().ID(), " and ", b.Calendar().ID())
	}
	cfg := newOpConfig(Defaults().DiffRoundingMode, options...)
	largest, spec, err := diffOptions(cfg, Hour, Nanosecond, Nanosecond, Year)
	if err != nil {
		return Duration{}, err
	}
	if largest >= Day && !a.zone.Equals(b.zone) {
		return Duration{}, errorZoneMismatch.detail(a.zone.id, " and ", b.zone.id)
	}
	return diffZoned(a.inst, b.inst, a.zone, a.Calendar(), largest, spec)
}

/*
Round returns the receiver rounded to spec. Rounding to [Day] measures
the actual length of the local day. Time units round the wall clock,
keeping the original offset when it remains valid.
*/
func (r ZonedDateTime) Round(spec RoundingSpec) (ZonedDateTime, error) {
	if r.zone == nil {
		return r, errorNilTimeZone
	} else if spec.Unit == Day {
		return r.roundToDay(spec)
	}
	offset := r.OffsetMinutes()
	dt, err := roundWallClock(r.local(), spec, NanosecondsPerDay)
	if err != nil {
		return r, err
	}
	i, err := NewInstant((dt.epochMinutes()-int64(offset))*60, dt.subMinute())
	if err != nil {
		return r, err
	}
	if r.zone.OffsetMinutesFor(i) != offset {
		if i, err = r.zone.instantFor(dt, Compatible); err != nil {
			return r, err
		}
	}
	return ZonedDateTime{inst: i, zone: r.zone, cal: r.cal}, nil
}

func (r ZonedDateTime) roundToDay(spec RoundingSpec) (ZonedDateTime, error) {
	if spec.Increment != 1 {
		return r, ErrInvalidIncrement.detail(spec.Increment, " for unit day")
	}
	start, end, err := r.dayBounds()
	if err != nil {
		return r, err
	}
	dayLen := end.sub(start)
	q, err := spec.Apply(new(big.Rat).SetFrac(r.inst.sub(start), dayLen))
	if err != nil {
		return r, err
	}
	i, err := start.addNanos(q.Mul(q, dayLen))
	if err != nil {
		return r, err
	}
	debugRounding("zonedDay", r.inst, dayLen, i)
	return ZonedDateTime{inst: i, zone: r.zone, cal: r.cal}, nil
}

/*
Compare returns -1, 0 or 1 as the receiver's instant is before, equal to
or after that of o.
*/
func (r ZonedDateTime) Compare(o ZonedDateTime) int { return r.inst.Compare(o.inst) }

/*
Equals returns true when the receiver and o share an instant, a zone
and a calendar.
*/
func (r ZonedDateTime) Equals(o ZonedDateTime) bool {
	sameZone := r.zone.Equals(o.zone) || r.zone == nil && o.zone == nil
	return r.inst == o.inst && sameZone &&
		sameCalendar(r.Calendar(), o.Calendar())
}

/*
WithTimeZone returns the receiver's instant read in tz.
*/
func (r ZonedDateTime) WithTimeZone(tz *TimeZone) (ZonedDateTime, error) {
	return NewZonedDateTime(r.inst, tz, r.cal)
}

/*
WithCalendar returns the receiver read in cal.
*/
func (r ZonedDateTime) WithCalendar(cal Calendar) ZonedDateTime {
	return ZonedDateTime{inst: r.inst, zone: r.zone, cal: orDefaultCalendar(cal)}
}

/*
NextTransition returns the receiver at the zone's next offset change.
*/
func (r ZonedDateTime) NextTransition() (ZonedDateTime, bool) {
	if r.zone == nil {
		return r, false
	}
	i, ok := r.zone.NextTransition(r.inst)
	return ZonedDateTime{inst: i, zone: r.zone, cal: r.cal}, ok
}

/*
PreviousTransition returns the receiver at the zone's previous offset
change.
*/
func (r ZonedDateTime) PreviousTransition() (ZonedDateTime, bool) {
	if r.zone == nil {
		return r, false
	}
	i, ok := r.zone.PreviousTransition(r.inst)
	return ZonedDateTime{inst: i, zone: r.zone, cal: r.cal}, ok
}

func (r ZonedDateTime) relativeAnchor() *anchor {
	if r.zone == nil {
		return nil
	}
	return zonedAnchorAt(r.inst, r.zone, r.Calendar())
}

/*
String returns the receiver such as
"2024-03-10T03:30:00-04:00[America/New_York]".
*/
func (r ZonedDateTime) String() string {
	if r.zone == nil {
		return r.inst.String()
	}
	return r.local().String() + r.Offset() + `[` + r.zone.id + `]` +
		calendarSuffix(r.Calendar())
}
