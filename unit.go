package chrono

/*
unit.go contains the ordered set of temporal units and their fixed
nanosecond ratios.
*/

/*
Unit describes a single temporal granularity. Units are totally ordered,
with [Nanosecond] being the smallest and [Year] the largest.
*/
type Unit int

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

/*
unitAuto marks an option which has not been set and must be derived
from context.
*/
const unitAuto Unit = -1

/*
NanosecondsPerDay is the length of one nominal day. Zoned arithmetic
measures actual day lengths instead.
*/
const NanosecondsPerDay int64 = 86_400_000_000_000

var nanoIn = [...]int64{
	Nanosecond:  1,
	Microsecond: 1_000,
	Millisecond: 1_000_000,
	Second:      1_000_000_000,
	Minute:      60_000_000_000,
	Hour:        3_600_000_000_000,
	Day:         NanosecondsPerDay,
}

var unitNames = [...]string{
	Nanosecond:  `nanosecond`,
	Microsecond: `microsecond`,
	Millisecond: `millisecond`,
	Second:      `second`,
	Minute:      `minute`,
	Hour:        `hour`,
	Day:         `day`,
	Week:        `week`,
	Month:       `month`,
	Year:        `year`,
}

/*
Units returns all units in ascending order.
*/
func Units() []Unit {
	return []Unit{Nanosecond, Microsecond, Millisecond, Second,
		Minute, Hour, Day, Week, Month, Year}
}

func (r Unit) valid() bool { return Nanosecond <= r && r <= Year }

/*
String returns the singular name of the receiver instance.
*/
func (r Unit) String() string {
	if r == unitAuto {
		return `auto`
	} else if !r.valid() {
		return `invalid unit`
	}
	return unitNames[r]
}

/*
ParseUnit returns the [Unit] named by s. Singular and plural names
are accepted regardless of case.
*/
func ParseUnit(s string) (u Unit, err error) {
	name := trimSfx(fold(s), `s`)
	for i, n := range unitNames {
		if n == name {
			return Unit(i), nil
		}
	}
	return unitAuto, rangeErrorf("unknown unit ", s)
}

/*
UnmarshalText implements [encoding.TextUnmarshaler].
*/
func (r *Unit) UnmarshalText(b []byte) (err error) {
	var u Unit
	if u, err = ParseUnit(string(b)); err == nil {
		*r = u
	}
	return
}

/*
IsFixedRatio returns a Boolean value indicative of whether the receiver
converts to nanoseconds without calendar context. Day is treated as
exactly 24 hours here; zoned arithmetic overrides that.
*/
func (r Unit) IsFixedRatio() bool { return r.valid() && r <= Day }

/*
IsCalendarRelative returns true for [Week], [Month] and [Year].
*/
func (r Unit) IsCalendarRelative() bool { return r >= Week && r <= Year }

/*
IsTimeUnit returns true for units finer than [Day].
*/
func (r Unit) IsTimeUnit() bool { return r.valid() && r < Day }

/*
Nanoseconds returns the nominal nanosecond length of the receiver, or
zero when the receiver is calendar-relative.
*/
func (r Unit) Nanoseconds() int64 {
	if !r.IsFixedRatio() {
		return 0
	}
	return nanoIn[r]
}

/*
roundingMaximum returns the count of receiver units within the next
larger unit, for units finer than [Day].
*/
func (r Unit) roundingMaximum() (int64, bool) {
	switch r {
	case Nanosecond, Microsecond, Millisecond:
		return 1000, true
	case Second, Minute:
		return 60, true
	case Hour:
		return 24, true
	}
	return 0, false
}

/*
LargerUnit returns the larger of a and b.
*/
func LargerUnit(a, b Unit) Unit { return maxOf(a, b) }
