package chrono

/*
pdt.go contains PlainDateTime, a calendar date and wall-clock time with
no time zone.
*/

import "math/big"

/*
PlainDateTime is a calendar date and time of day with no time zone.
*/
type PlainDateTime struct {
	iso ISODateTime
	cal Calendar
}

/*
NewPlainDateTime returns an instance of [PlainDateTime] from ISO fields.
Invalid fields are rejected. A nil cal selects the default calendar.
*/
func NewPlainDateTime(d ISODate, t ISOTime, cal Calendar, constraints ...Constraint[PlainDateTime]) (dt PlainDateTime, err error) {
	if !d.IsValid() {
		return dt, rangeErrorf("invalid ISO date ", d)
	} else if err = t.regulate(Reject); err != nil {
		return
	}
	iso := ISODateTime{d, t}
	if !iso.withinLimits() {
		return dt, ErrOutOfRange.detail(iso)
	}
	dt = PlainDateTime{iso: iso, cal: orDefaultCalendar(cal)}
	err = ConstraintGroup[PlainDateTime](constraints).Constrain(dt)
	return
}

/*
PlainDateTimeFromFields resolves the date in f through cal and pairs it
with t. [WithOverflow] governs both the date fields and the time fields.
*/
func PlainDateTimeFromFields(cal Calendar, f Fields, t ISOTime, options ...Option) (PlainDateTime, error) {
	cal = orDefaultCalendar(cal)
	cfg := newOpConfig(Trunc, options...)
	d, err := cal.DateFromFields(f, cfg.overflow)
	if err != nil {
		return PlainDateTime{}, err
	}
	if err = t.regulate(cfg.overflow); err != nil {
		return PlainDateTime{}, err
	}
	iso := ISODateTime{d, t}
	if !iso.withinLimits() {
		return PlainDateTime{}, ErrOutOfRange.detail(iso)
	}
	return PlainDateTime{iso: iso, cal: cal}, nil
}

func (r PlainDateTime) ISO() ISODateTime   { return r.iso }
func (r PlainDateTime) Calendar() Calendar { return orDefaultCalendar(r.cal) }
func (r PlainDateTime) Time() ISOTime      { return r.iso.ISOTime }

/*
CalendarDate returns the receiver's date fields as read in its calendar.
*/
func (r PlainDateTime) CalendarDate() CalendarDate {
	return r.Calendar().FieldsFromISO(r.iso.ISODate)
}

/*
ToPlainDate returns the date portion of the receiver.
*/
func (r PlainDateTime) ToPlainDate() PlainDate {
	return PlainDate{iso: r.iso.ISODate, cal: r.cal}
}

// ToPlainYearMonth returns the year and month of the receiver.
func (r PlainDateTime) ToPlainYearMonth() (PlainYearMonth, error) {
	return r.ToPlainDate().ToPlainYearMonth()
}

// ToPlainMonthDay returns the month and day of the receiver.
func (r PlainDateTime) ToPlainMonthDay() (PlainMonthDay, error) {
	return r.ToPlainDate().ToPlainMonthDay()
}

/*
Add returns the receiver advanced by d. Time units are added to the
wall clock first; the carried days join the calendar units, which are
applied with [WithOverflow] regulation.
*/
func (r PlainDateTime) Add(d Duration, options ...Option) (PlainDateTime, error) {
	cfg := newOpConfig(Trunc, options...)
	total := new(big.Int).Add(newBigInt(r.iso.NanosecondOfDay()), d.timeNanoseconds())
	carry, nod := new(big.Int).DivMod(total, newBigInt(NanosecondsPerDay), new(big.Int))
	c, err := bigInt64(carry, "day carry")
	if err != nil {
		return r, err
	}
	days := d.Days() + c
	if (c > 0 && days < d.Days()) || (c < 0 && days > d.Days()) {
		return r, ErrOutOfRange.detail("day count")
	}
	date, err := r.Calendar().DateAdd(r.iso.ISODate, d.Years(), d.Months(), d.Weeks(), days, cfg.overflow)
	if err != nil {
		return r, err
	}
	iso := ISODateTime{date, ISOTimeFromNanoseconds(nod.Int64())}
	if !iso.withinLimits() {
		return r, ErrOutOfRange.detail(iso)
	}
	return PlainDateTime{iso: iso, cal: r.cal}, nil
}

/*
Subtract returns the receiver moved back by d. See [PlainDateTime.Add].
*/
func (r PlainDateTime) Subtract(d Duration, options ...Option) (PlainDateTime, error) {
	return r.Add(d.Negated(), options...)
}

/*
Until returns the [Duration] from the receiver to o. The largest unit
defaults to the larger of days and the smallest unit, which defaults to
nanoseconds.
*/
func (r PlainDateTime) Until(o PlainDateTime, options ...Option) (Duration, error) {
	return r.diff(r, o, options)
}

/*
Since returns the [Duration] from o to the receiver. See
[PlainDateTime.Until].
*/
func (r PlainDateTime) Since(o PlainDateTime, options ...Option) (Duration, error) {
	return r.diff(o, r, options)
}

func (r PlainDateTime) diff(a, b PlainDateTime, options []Option) (Duration, error) {
	if !sameCalendar(a.Calendar(), b.Calendar()) {
		return Duration{}, rangeErrorf("cannot difference date-times in calendars ", a.Calendar().ID(), " and ", b.Calendar().ID())
	}
	cfg := newOpConfig(Defaults().DiffRoundingMode, options...)
	largest, spec, err := diffOptions(cfg, Day, Nanosecond, Nanosecond, Year)
	if err != nil {
		return Duration{}, err
	}
	return diffPlain(a.iso, b.iso, a.Calendar(), largest, spec)
}

/*
Round returns the receiver rounded to spec. Rounding to [Day] requires
an increment of 1; units coarser than a day are not accepted.
*/
func (r PlainDateTime) Round(spec RoundingSpec) (PlainDateTime, error) {
	iso, err := roundWallClock(r.iso, spec, NanosecondsPerDay)
	if err != nil {
		return r, err
	}
	if !iso.withinLimits() {
		return r, ErrOutOfRange.detail(iso)
	}
	return PlainDateTime{iso: iso, cal: r.cal}, nil
}

/*
roundWallClock rounds the time of dt to spec, carrying into the date.
dayLen is the length of the day used when rounding to [Day].
*/
func roundWallClock(dt ISODateTime, spec RoundingSpec, dayLen int64) (ISODateTime, error) {
	if spec.Unit > Day {
		return dt, rangeErrorf("cannot round a date-time to ", spec.Unit)
	}
	unitNs := nanoIn[spec.Unit]
	if spec.Unit == Day {
		if spec.Increment != 1 {
			return dt, ErrInvalidIncrement.detail(spec.Increment, " for unit day")
		}
		unitNs = dayLen
	} else if err := validateIncrement(spec.Unit, spec.Increment, false); err != nil {
		return dt, err
	}

	q, err := spec.Apply(new(big.Rat).SetFrac(newBigInt(dt.NanosecondOfDay()), newBigInt(unitNs)))
	if err != nil {
		return dt, err
	}
	nod := q.Int64() * unitNs
	if spec.Unit == Day {
		return ISODateTime{ISODate: dt.AddDays(q.Int64())}, nil
	}
	carry := floorDiv(nod, NanosecondsPerDay)
	debugRounding("wallClock", spec.Unit, dt, nod)
	return ISODateTime{dt.AddDays(carry), ISOTimeFromNanoseconds(nod)}, nil
}

/*
Compare returns -1, 0 or 1 as the receiver is before, equal to or after
o, ignoring calendars.
*/
func (r PlainDateTime) Compare(o PlainDateTime) int { return r.iso.Compare(o.iso) }

/*
Equals returns true when the receiver and o share an ISO date-time and
a calendar.
*/
func (r PlainDateTime) Equals(o PlainDateTime) bool {
	return r.iso == o.iso && sameCalendar(r.Calendar(), o.Calendar())
}

/*
WithCalendar returns the receiver's ISO date-time read in cal.
*/
func (r PlainDateTime) WithCalendar(cal Calendar) PlainDateTime {
	return PlainDateTime{iso: r.iso, cal: orDefaultCalendar(cal)}
}

/*
WithTime returns the receiver's date at time of day t.
*/
func (r PlainDateTime) WithTime(t ISOTime) (PlainDateTime, error) {
	return r.ToPlainDate().ToPlainDateTime(t)
}

/*
ToZonedDateTime returns the receiver interpreted in tz and resolved per
[WithDisambiguation].
*/
func (r PlainDateTime) ToZonedDateTime(tz *TimeZone, options ...Option) (ZonedDateTime, error) {
	if tz == nil {
		return ZonedDateTime{}, errorNilTimeZone
	}
	i, err := tz.InstantFor(r, options...)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{inst: i, zone: tz, cal: r.cal}, nil
}

func (r PlainDateTime) relativeAnchor() *anchor {
	return &anchor{dt: r.iso, cal: r.Calendar()}
}

func (r PlainDateTime) String() string {
	return r.iso.String() + calendarSuffix(r.Calendar())
}
