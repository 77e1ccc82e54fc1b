package chrono

/*
dur.go contains the ten-component Duration model.
*/

import (
	"math"
	"math/big"
	"strings"
)

/*
Duration is a signed quantity of time in ten components, from years to
nanoseconds. All non-zero components share one sign. Components are not
normalized: PT90M and PT1H30M are distinct values of equal length.

The zero value is a valid, empty duration.
*/
type Duration struct {
	v [Year + 1]int64 // indexed by Unit
}

/*
NewDuration returns an instance of [Duration] alongside an error, which
is non-nil if the components carry mixed signs.
*/
func NewDuration(years, months, weeks, days, hours, minutes, seconds,
	milliseconds, microseconds, nanoseconds int64) (d Duration, err error) {
	d.v = [...]int64{
		Nanosecond:  nanoseconds,
		Microsecond: microseconds,
		Millisecond: milliseconds,
		Second:      seconds,
		Minute:      minutes,
		Hour:        hours,
		Day:         days,
		Week:        weeks,
		Month:       months,
		Year:        years,
	}
	err = d.validate()
	return
}

/*
DurationOf returns an instance of [Duration] holding n of unit u.
*/
func DurationOf(u Unit, n int64) (d Duration, err error) {
	return d.With(u, n)
}

func (r Duration) validate() error {
	var sign int
	for u, n := range r.v {
		if n == math.MinInt64 {
			return ErrOutOfRange.detail(Unit(u), " component")
		}
		s := signOf(n)
		if s != 0 && sign != 0 && s != sign {
			return ErrMixedSigns
		} else if s != 0 {
			sign = s
		}
	}
	return nil
}

/*
Get returns the component of unit u.
*/
func (r Duration) Get(u Unit) int64 {
	if !u.valid() {
		return 0
	}
	return r.v[u]
}

func (r Duration) Years() int64        { return r.v[Year] }
func (r Duration) Months() int64       { return r.v[Month] }
func (r Duration) Weeks() int64        { return r.v[Week] }
func (r Duration) Days() int64         { return r.v[Day] }
func (r Duration) Hours() int64        { return r.v[Hour] }
func (r Duration) Minutes() int64      { return r.v[Minute] }
func (r Duration) Seconds() int64      { return r.v[Second] }
func (r Duration) Milliseconds() int64 { return r.v[Millisecond] }
func (r Duration) Microseconds() int64 { return r.v[Microsecond] }
func (r Duration) Nanoseconds() int64  { return r.v[Nanosecond] }

/*
With returns a copy of the receiver with the u component replaced by n.
*/
func (r Duration) With(u Unit, n int64) (Duration, error) {
	if !u.valid() {
		return r, rangeErrorf("invalid unit ", u)
	}
	r.v[u] = n
	return r, r.validate()
}

/*
Sign returns -1, 0 or 1 according to the sign shared by the non-zero
components of the receiver.
*/
func (r Duration) Sign() int {
	for _, n := range r.v {
		if n != 0 {
			return signOf(n)
		}
	}
	return 0
}

/*
IsZero returns a Boolean value indicative of a receiver with no non-zero
components.
*/
func (r Duration) IsZero() bool { return r.Sign() == 0 }

/*
Negated returns the receiver with every component sign-inverted.
*/
func (r Duration) Negated() Duration {
	for i := range r.v {
		r.v[i] = -r.v[i]
	}
	return r
}

/*
Abs returns the receiver with every component made non-negative.
*/
func (r Duration) Abs() Duration {
	if r.Sign() < 0 {
		return r.Negated()
	}
	return r
}

func (r Duration) date() dateDuration {
	return dateDuration{r.v[Year], r.v[Month], r.v[Week], r.v[Day]}
}

/*
timeNanoseconds returns the sum of hours through nanoseconds.
*/
func (r Duration) timeNanoseconds() *big.Int {
	var tp timeParts
	copy(tp[:], r.v[:Day])
	return tp.nanoseconds()
}

/*
nominalNanoseconds returns the receiver's length with days counted as
24 hours. Callers ensure no calendar-relative units are present.
*/
func (r Duration) nominalNanoseconds() *big.Int {
	return mulAdd(newBigInt(r.v[Day]+7*r.v[Week]), NanosecondsPerDay, r.timeNanoseconds())
}

func (r Duration) hasCalendarUnits() bool {
	return r.v[Year] != 0 || r.v[Month] != 0 || r.v[Week] != 0
}

/*
largestUnit returns the largest unit with a non-zero component, or
[Nanosecond] for a zero receiver.
*/
func (r Duration) largestUnit() Unit {
	for u := Year; u > Nanosecond; u-- {
		if r.v[u] != 0 {
			return u
		}
	}
	return Nanosecond
}

/*
String returns the ISO 8601 duration form of the receiver, such as
"P1Y2M3W4DT5H6M7.008009S". Sub-second components are folded into the
seconds figure.
*/
func (r Duration) String() string {
	if r.IsZero() {
		return "PT0S"
	}
	a := r.Abs()
	bld := newStrBuilder()
	if r.Sign() < 0 {
		bld.WriteString("-")
	}
	bld.WriteString("P")
	for _, u := range []Unit{Year, Month, Week, Day} {
		if a.v[u] != 0 {
			bld.WriteString(fmtInt(a.v[u], 10) + uc(unitNames[u][:1]))
		}
	}

	subsec := new(big.Int).Mul(newBigInt(a.v[Second]), newBigInt(nanoIn[Second]))
	for _, u := range []Unit{Millisecond, Microsecond, Nanosecond} {
		subsec.Add(subsec, new(big.Int).Mul(newBigInt(a.v[u]), newBigInt(nanoIn[u])))
	}
	if a.v[Hour] != 0 || a.v[Minute] != 0 || subsec.Sign() != 0 {
		bld.WriteString("T")
		if a.v[Hour] != 0 {
			bld.WriteString(fmtInt(a.v[Hour], 10) + "H")
		}
		if a.v[Minute] != 0 {
			bld.WriteString(fmtInt(a.v[Minute], 10) + "M")
		}
		if subsec.Sign() != 0 {
			sec, frac := new(big.Int).QuoRem(subsec, newBigInt(nanoIn[Second]), new(big.Int))
			bld.WriteString(sec.String())
			if frac.Sign() != 0 {
				digits := fmtInt(frac.Int64()+nanoIn[Second], 10)[1:]
				bld.WriteString("." + strings.TrimRight(digits, "0"))
			}
			bld.WriteString("S")
		}
	}
	return bld.String()
}

/*
Add returns the sum of the receiver and o. Years and months require a
[RelativeTo] anchor supplied through [WithRelativeTo]; weeks without an
anchor are seven days.
*/
func (r Duration) Add(o Duration, options ...Option) (Duration, error) {
	cfg := newOpConfig(Trunc, options...)
	a := cfg.relativeTo
	largest := LargerUnit(r.largestUnit(), o.largestUnit())
	timeNs := new(big.Int).Add(r.timeNanoseconds(), o.timeNanoseconds())

	switch {
	case a == nil:
		if r.v[Year] != 0 || r.v[Month] != 0 || o.v[Year] != 0 || o.v[Month] != 0 {
			return Duration{}, ErrRelativeToRequired
		}
		days := r.v[Day] + o.v[Day] + 7*(r.v[Week]+o.v[Week])
		days, tp, err := balanceTime(days, timeNs, largest, nil)
		if err != nil {
			return Duration{}, err
		}
		dd, err := balanceRelative(dateDuration{days: days}, largest, nil)
		if err != nil {
			return Duration{}, err
		}
		return durationFrom(dd, tp)

	case a.zoned():
		mid, err := addZoned(a.inst, a.zone, a.cal, r.date(), r.timeNanoseconds())
		if err != nil {
			return Duration{}, err
		}
		end, err := addZoned(mid, a.zone, a.cal, o.date(), o.timeNanoseconds())
		if err != nil {
			return Duration{}, err
		}
		if largest < Day {
			_, tp, err := balanceTime(0, end.sub(a.inst), largest, nil)
			if err != nil {
				return Duration{}, err
			}
			return durationFrom(dateDuration{}, tp)
		}
		dd, rem, err := differenceZoned(a.inst, end, a.zone, a.cal, largest)
		if err != nil {
			return Duration{}, err
		}
		return dd.duration(rem)
	}

	mid, err := a.addDate(a.date(), r.date())
	if err != nil {
		return Duration{}, err
	}
	end, err := a.addDate(mid, o.date())
	if err != nil {
		return Duration{}, err
	}
	diff, err := a.cal.DateUntil(a.date(), end, LargerUnit(Day, largest))
	if err != nil {
		return Duration{}, err
	}
	days, tp, err := balanceTime(diff.Days(), timeNs, largest, nil)
	if err != nil {
		return Duration{}, err
	}
	dd := diff.date()
	dd.days = days
	return durationFrom(dd, tp)
}

/*
Subtract returns the receiver minus o. See [Duration.Add].
*/
func (r Duration) Subtract(o Duration, options ...Option) (Duration, error) {
	return r.Add(o.Negated(), options...)
}

/*
Compare returns -1, 0 or 1 as the receiver is shorter than, equal to or
longer than o. Calendar units, and days within a zoned anchor, are
measured from the [RelativeTo] anchor.
*/
func (r Duration) Compare(o Duration, options ...Option) (int, error) {
	if r == o {
		return 0, nil
	}
	cfg := newOpConfig(Trunc, options...)
	a := cfg.relativeTo
	if !r.hasCalendarUnits() && !o.hasCalendarUnits() && !a.zoned() {
		return r.nominalNanoseconds().Cmp(o.nominalNanoseconds()), nil
	}
	if a == nil {
		if r.v[Year] == 0 && r.v[Month] == 0 && o.v[Year] == 0 && o.v[Month] == 0 {
			return r.nominalNanoseconds().Cmp(o.nominalNanoseconds()), nil
		}
		return 0, ErrRelativeToRequired
	}
	e1, err := a.endpoint(r)
	if err != nil {
		return 0, err
	}
	e2, err := a.endpoint(o)
	if err != nil {
		return 0, err
	}
	return e1.Cmp(e2), nil
}

/*
Round returns the receiver rounded and balanced according to the
supplied options:

  - [WithSmallestUnit] (default nanosecond)
  - [WithLargestUnit] (default the larger of the receiver's largest
    non-zero unit and the smallest unit)
  - [WithRoundingIncrement] (default 1)
  - [WithRoundingMode] (default from [Defaults], initially halfExpand)
  - [WithRelativeTo], required whenever years or months are involved

At least one of the smallest or largest unit must be given.
*/
func (r Duration) Round(options ...Option) (Duration, error) {
	cfg := newOpConfig(Defaults().RoundingMode, options...)
	if cfg.smallest == unitAuto && cfg.largest == unitAuto {
		return Duration{}, rangeErrorf("either smallest or largest unit is required")
	}
	spec, err := cfg.roundingSpec(Nanosecond)
	if err != nil {
		return Duration{}, err
	}
	largest, err := cfg.largestUnit(LargerUnit(r.largestUnit(), spec.Unit), spec.Unit)
	if err != nil {
		return Duration{}, err
	}
	return r.round(largest, spec, cfg.relativeTo)
}

/*
Balance returns the receiver regrouped so that no unit exceeds largest,
truncating any part finer than smallest. The options may supply a
[RelativeTo] anchor.
*/
func (r Duration) Balance(largest, smallest Unit, options ...Option) (Duration, error) {
	cfg := newOpConfig(Trunc, options...)
	spec, err := NewRoundingSpec(smallest, 1, Trunc)
	if err != nil {
		return Duration{}, err
	}
	if largest < smallest {
		return Duration{}, errorUnitOrder.detail(largest, " < ", smallest)
	}
	return r.round(largest, spec, cfg.relativeTo)
}

func (r Duration) round(largest Unit, spec RoundingSpec, a *anchor) (d Duration, err error) {
	debugEnter("Duration.round", r, largest, spec)
	defer func() { debugExit(d, err) }()

	var dd dateDuration
	if dd, err = unbalanceRelative(r.date(), largest, a); err != nil {
		return
	}
	timeNs := r.timeNanoseconds()
	if !spec.isNoop() {
		if dd, timeNs, _, err = roundDuration(dd, timeNs, spec, a); err != nil {
			return
		}
		if dd, timeNs, err = adjustRoundedDurationDays(dd, timeNs, spec, a); err != nil {
			return
		}
	}

	inter := a
	if a.zoned() {
		if inter, err = a.moved(dateDuration{years: dd.years, months: dd.months, weeks: dd.weeks}); err != nil {
			return
		}
	}
	var tp timeParts
	if dd.days, tp, err = balanceTime(dd.days, timeNs, largest, inter); err != nil {
		return
	}
	if dd, err = balanceRelative(dd, largest, a); err != nil {
		return
	}
	return durationFrom(dd, tp)
}

/*
Total returns the receiver's length expressed as a number of unit, with
any fraction. Years, months and weeks require a [RelativeTo] anchor as
for [Duration.Round].
*/
func (r Duration) Total(unit Unit, options ...Option) (float64, error) {
	t, err := r.TotalRat(unit, options...)
	if err != nil {
		return 0, err
	}
	f, _ := t.Float64()
	return f, nil
}

/*
TotalRat is the exact form of [Duration.Total].
*/
func (r Duration) TotalRat(unit Unit, options ...Option) (*big.Rat, error) {
	if !unit.valid() {
		return nil, rangeErrorf("invalid unit ", unit)
	}
	a := newOpConfig(Trunc, options...).relativeTo

	dd, err := unbalanceRelative(r.date(), unit, a)
	if err != nil {
		return nil, err
	}
	inter := a
	if a.zoned() {
		if inter, err = a.moved(dateDuration{years: dd.years, months: dd.months, weeks: dd.weeks}); err != nil {
			return nil, err
		}
	}
	var tp timeParts
	if dd.days, tp, err = balanceTime(dd.days, r.timeNanoseconds(), unit, inter); err != nil {
		return nil, err
	}
	_, _, total, err := roundDuration(dd, tp.nanoseconds(), RoundingSpec{Unit: unit, Increment: 1, Mode: Trunc}, a)
	return total, err
}
