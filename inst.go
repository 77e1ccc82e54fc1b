package chrono

/*
inst.go contains Instant, an exact point on the UTC time line.
*/

import (
	"math/big"
	"time"
)

/*
Instant is an exact point in time with nanosecond precision, counted
from 1970-01-01T00:00:00Z. The supported range is 10^8 days on either
side of the epoch.

The zero value is the epoch.
*/
type Instant struct {
	sec  int64 // floor of the epoch seconds
	nsec int64 // 0 through 999,999,999
}

const maxInstantSeconds int64 = 8_640_000_000_000

/*
NewInstant returns an instance of [Instant] sec seconds and nsec
nanoseconds after the epoch. nsec may be negative or exceed one second.
*/
func NewInstant(sec, nsec int64, constraints ...Constraint[Instant]) (i Instant, err error) {
	i = Instant{sec: sec + floorDiv(nsec, nanoIn[Second]), nsec: floorMod(nsec, nanoIn[Second])}
	if err = i.checkLimits(); err == nil {
		err = ConstraintGroup[Instant](constraints).Constrain(i)
	}
	return
}

/*
InstantFromEpochNanoseconds returns the [Instant] ns nanoseconds after
the epoch.
*/
func InstantFromEpochNanoseconds(ns *big.Int) (Instant, error) {
	sec, nsec := new(big.Int).DivMod(ns, newBigInt(nanoIn[Second]), new(big.Int))
	if !sec.IsInt64() {
		return Instant{}, ErrOutOfRange.detail("epoch nanoseconds ", ns)
	}
	i := Instant{sec: sec.Int64(), nsec: nsec.Int64()}
	return i, i.checkLimits()
}

/*
InstantFromEpochMilliseconds returns the [Instant] ms milliseconds after
the epoch.
*/
func InstantFromEpochMilliseconds(ms int64) (Instant, error) {
	return NewInstant(floorDiv(ms, 1000), floorMod(ms, 1000)*nanoIn[Millisecond])
}

/*
InstantFromTime returns the [Instant] of t.
*/
func InstantFromTime(t time.Time) (Instant, error) {
	return NewInstant(t.Unix(), int64(t.Nanosecond()))
}

func (r Instant) checkLimits() error {
	if r.sec < -maxInstantSeconds || r.sec > maxInstantSeconds ||
		(r.sec == maxInstantSeconds && r.nsec > 0) {
		return ErrOutOfRange.detail("instant ", r.sec, "s")
	}
	return nil
}

/*
EpochSeconds returns the whole seconds since the epoch, rounded toward
negative infinity.
*/
func (r Instant) EpochSeconds() int64 { return r.sec }

/*
EpochMilliseconds returns the whole milliseconds since the epoch,
rounded toward negative infinity.
*/
func (r Instant) EpochMilliseconds() int64 {
	return r.sec*1000 + r.nsec/nanoIn[Millisecond]
}

/*
EpochNanoseconds returns the exact nanoseconds since the epoch.
*/
func (r Instant) EpochNanoseconds() *big.Int { return r.epochNanoseconds() }

func (r Instant) epochNanoseconds() *big.Int {
	return mulAdd(newBigInt(r.sec), nanoIn[Second], newBigInt(r.nsec))
}

/*
Nanosecond returns the sub-second portion of the receiver.
*/
func (r Instant) Nanosecond() int64 { return r.nsec }

/*
Time returns the receiver as a UTC [time.Time].
*/
func (r Instant) Time() time.Time { return time.Unix(r.sec, r.nsec).UTC() }

func (r Instant) addNanos(ns *big.Int) (Instant, error) {
	if ns == nil || ns.Sign() == 0 {
		return r, nil
	}
	return InstantFromEpochNanoseconds(new(big.Int).Add(r.epochNanoseconds(), ns))
}

/*
sub returns r minus o in nanoseconds.
*/
func (r Instant) sub(o Instant) *big.Int {
	return mulAdd(newBigInt(r.sec-o.sec), nanoIn[Second], newBigInt(r.nsec-o.nsec))
}

/*
Compare returns -1, 0 or 1 as the receiver is before, equal to or after o.
*/
func (r Instant) Compare(o Instant) int {
	if r.sec != o.sec {
		return signOf(r.sec - o.sec)
	}
	return signOf(r.nsec - o.nsec)
}

/*
Equals returns a Boolean value indicative of equality with o.
*/
func (r Instant) Equals(o Instant) bool { return r == o }

/*
Add returns the receiver advanced by d. Only hours and smaller units
are permitted, since days and larger have no fixed length on the time
line.
*/
func (r Instant) Add(d Duration) (Instant, error) {
	if d.largestUnit() >= Day {
		return r, rangeErrorf("instant arithmetic does not accept ", d.largestUnit(), "s")
	}
	return r.addNanos(d.timeNanoseconds())
}

/*
Subtract returns the receiver moved back by d. See [Instant.Add].
*/
func (r Instant) Subtract(d Duration) (Instant, error) { return r.Add(d.Negated()) }

/*
Until returns the [Duration] from the receiver to o. The largest unit
defaults to seconds and the smallest to nanoseconds; both must be an
hour or finer.
*/
func (r Instant) Until(o Instant, options ...Option) (Duration, error) {
	return r.diff(r, o, options)
}

/*
Since returns the [Duration] from o to the receiver. See [Instant.Until].
*/
func (r Instant) Since(o Instant, options ...Option) (Duration, error) {
	return r.diff(o, r, options)
}

func (r Instant) diff(a, b Instant, options []Option) (Duration, error) {
	cfg := newOpConfig(Defaults().DiffRoundingMode, options...)
	largest, spec, err := diffOptions(cfg, Second, Nanosecond, Nanosecond, Hour)
	if err != nil {
		return Duration{}, err
	}
	return diffExact(a, b, largest, spec)
}

/*
Round returns the receiver rounded to spec. The increment must evenly
divide one day expressed in spec.Unit, which must be an hour or finer.
*/
func (r Instant) Round(spec RoundingSpec) (Instant, error) {
	if !spec.Unit.IsTimeUnit() {
		return r, rangeErrorf("cannot round an instant to ", spec.Unit)
	}
	per := NanosecondsPerDay / nanoIn[spec.Unit]
	if spec.Increment < 1 || spec.Increment > per || per%spec.Increment != 0 {
		return r, ErrInvalidIncrement.detail(spec.Increment, " for unit ", spec.Unit)
	}
	q, err := spec.Apply(new(big.Rat).SetFrac(r.epochNanoseconds(), newBigInt(nanoIn[spec.Unit])))
	if err != nil {
		return r, err
	}
	return InstantFromEpochNanoseconds(q.Mul(q, newBigInt(nanoIn[spec.Unit])))
}

/*
ToZonedDateTime returns the receiver viewed in tz and cal. A nil cal
selects the default calendar.
*/
func (r Instant) ToZonedDateTime(tz *TimeZone, cal Calendar) (ZonedDateTime, error) {
	return NewZonedDateTime(r, tz, cal)
}

/*
String returns the receiver in UTC, such as "2024-03-10T07:30:00Z".
*/
func (r Instant) String() string {
	return FixedTimeZone(0).localDateTime(r).String() + "Z"
}
