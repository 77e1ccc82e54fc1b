package chrono

/*
ym.go contains PlainYearMonth and PlainMonthDay, the partial dates.
*/

/*
PlainYearMonth is a month of a particular calendar year. It is stored as
the ISO date of the first day of that month.
*/
type PlainYearMonth struct {
	iso ISODate
	cal Calendar
}

/*
NewPlainYearMonth returns an instance of [PlainYearMonth] from ISO
fields. Invalid fields are rejected.
*/
func NewPlainYearMonth(year, month int, cal Calendar) (ym PlainYearMonth, err error) {
	iso := ISODate{Year: year, Month: month, Day: 1}
	if month < 1 || month > 12 {
		return ym, errorFieldRange(`month`, month, 1, 12)
	} else if !yearMonthWithinLimits(iso) {
		return ym, ErrOutOfRange.detail(iso)
	}
	return PlainYearMonth{iso: iso, cal: orDefaultCalendar(cal)}, nil
}

/*
PlainYearMonthFromFields resolves f through cal, honoring [WithOverflow].
Any day field is ignored.
*/
func PlainYearMonthFromFields(cal Calendar, f Fields, options ...Option) (PlainYearMonth, error) {
	cal = orDefaultCalendar(cal)
	cfg := newOpConfig(Trunc, options...)
	iso, err := cal.YearMonthFromFields(f, cfg.overflow)
	if err != nil {
		return PlainYearMonth{}, err
	}
	return PlainYearMonth{iso: iso, cal: cal}, nil
}

func (r PlainYearMonth) ISO() ISODate       { return r.iso }
func (r PlainYearMonth) Calendar() Calendar { return orDefaultCalendar(r.cal) }
func (r PlainYearMonth) Year() int          { return r.CalendarDate().Year }
func (r PlainYearMonth) Month() int         { return r.iso.Month }
func (r PlainYearMonth) MonthCode() string  { return monthCodeOf(r.iso.Month) }
func (r PlainYearMonth) DaysInMonth() int   { return ISODaysInMonth(r.iso.Year, r.iso.Month) }
func (r PlainYearMonth) InLeapYear() bool   { return IsLeapYear(r.iso.Year) }

/*
CalendarDate returns the fields of the first day of the receiver.
*/
func (r PlainYearMonth) CalendarDate() CalendarDate { return r.Calendar().FieldsFromISO(r.iso) }

/*
ToPlainDate returns day of the receiver's month, honoring [WithOverflow].
*/
func (r PlainYearMonth) ToPlainDate(day int, options ...Option) (PlainDate, error) {
	cd := r.CalendarDate()
	return PlainDateFromFields(r.Calendar(), Fields{Year: Int(cd.Year), MonthCode: cd.MonthCode, Day: Int(day)}, options...)
}

/*
Add returns the receiver moved by d. Negative durations count from the
last day of the month and positive ones from the first, so that days and
weeks carry into a new month only once they exceed it.
*/
func (r PlainYearMonth) Add(d Duration, options ...Option) (PlainYearMonth, error) {
	cfg := newOpConfig(Trunc, options...)
	start := r.iso
	if d.Sign() < 0 {
		start.Day = r.DaysInMonth()
	}
	days, _, err := balanceTime(d.Days(), d.timeNanoseconds(), Day, nil)
	if err != nil {
		return r, err
	}
	moved, err := r.Calendar().DateAdd(start, d.Years(), d.Months(), d.Weeks(), days, cfg.overflow)
	if err != nil {
		return r, err
	}
	moved.Day = 1
	if !yearMonthWithinLimits(moved) {
		return r, ErrOutOfRange.detail(moved)
	}
	return PlainYearMonth{iso: moved, cal: r.cal}, nil
}

/*
Subtract returns the receiver moved back by d. See [PlainYearMonth.Add].
*/
func (r PlainYearMonth) Subtract(d Duration, options ...Option) (PlainYearMonth, error) {
	return r.Add(d.Negated(), options...)
}

/*
Until returns the [Duration] from the receiver to o in years and months.
*/
func (r PlainYearMonth) Until(o PlainYearMonth, options ...Option) (Duration, error) {
	return r.diff(r, o, options)
}

/*
Since returns the [Duration] from o to the receiver. See
[PlainYearMonth.Until].
*/
func (r PlainYearMonth) Since(o PlainYearMonth, options ...Option) (Duration, error) {
	return r.diff(o, r, options)
}

func (r PlainYearMonth) diff(a, b PlainYearMonth, options []Option) (Duration, error) {
	if !sameCalendar(a.Calendar(), b.Calendar()) {
		return Duration{}, rangeErrorf("cannot difference months in calendars ", a.Calendar().ID(), " and ", b.Calendar().ID())
	}
	cfg := newOpConfig(Defaults().DiffRoundingMode, options...)
	largest, spec, err := diffOptions(cfg, Year, Month, Month, Year)
	if err != nil {
		return Duration{}, err
	}
	return diffPlain(ISODateTime{ISODate: a.iso}, ISODateTime{ISODate: b.iso}, a.Calendar(), largest, spec)
}

/*
Compare returns -1, 0 or 1 as the receiver is before, equal to or after
o, ignoring calendars.
*/
func (r PlainYearMonth) Compare(o PlainYearMonth) int { return r.iso.Compare(o.iso) }

/*
Equals returns true when the receiver and o share a month and calendar.
*/
func (r PlainYearMonth) Equals(o PlainYearMonth) bool {
	return r.iso == o.iso && sameCalendar(r.Calendar(), o.Calendar())
}

/*
String returns the receiver such as "2024-03". Non-ISO calendars render
the full reference date with its annotation.
*/
func (r PlainYearMonth) String() string {
	if sfx := calendarSuffix(r.Calendar()); sfx != `` {
		return r.iso.String() + sfx
	}
	b := newStrBuilder()
	writeISODate(&b, r.iso)
	return trimSfx(b.String(), `-01`)
}

/*
PlainMonthDay is a recurring month and day with no year, such as a
birthday. It is stored as an ISO date in [MonthDayReferenceYear].
*/
type PlainMonthDay struct {
	iso ISODate
	cal Calendar
}

/*
NewPlainMonthDay returns an instance of [PlainMonthDay] from ISO fields.
Days are validated against the leap reference year, so February 29 is
accepted.
*/
func NewPlainMonthDay(month, day int, cal Calendar) (md PlainMonthDay, err error) {
	if month < 1 || month > 12 {
		return md, errorFieldRange(`month`, month, 1, 12)
	}
	if max := ISODaysInMonth(MonthDayReferenceYear, month); day < 1 || day > max {
		return md, errorFieldRange(`day`, day, 1, max)
	}
	iso := ISODate{Year: MonthDayReferenceYear, Month: month, Day: day}
	return PlainMonthDay{iso: iso, cal: orDefaultCalendar(cal)}, nil
}

/*
PlainMonthDayFromFields resolves f through cal, honoring [WithOverflow].
*/
func PlainMonthDayFromFields(cal Calendar, f Fields, options ...Option) (PlainMonthDay, error) {
	cal = orDefaultCalendar(cal)
	cfg := newOpConfig(Trunc, options...)
	iso, err := cal.MonthDayFromFields(f, cfg.overflow)
	if err != nil {
		return PlainMonthDay{}, err
	}
	return PlainMonthDay{iso: iso, cal: cal}, nil
}

func (r PlainMonthDay) ISO() ISODate       { return r.iso }
func (r PlainMonthDay) Calendar() Calendar { return orDefaultCalendar(r.cal) }
func (r PlainMonthDay) MonthCode() string  { return monthCodeOf(r.iso.Month) }
func (r PlainMonthDay) Day() int           { return r.iso.Day }

/*
ToPlainDate returns the receiver in calendar year year. A day which the
year lacks, such as February 29 in a common year, is constrained.
*/
func (r PlainMonthDay) ToPlainDate(year int) (PlainDate, error) {
	return PlainDateFromFields(r.Calendar(),
		Fields{Year: Int(year), MonthCode: r.MonthCode(), Day: Int(r.iso.Day)},
		WithOverflow(Constrain))
}

/*
Equals returns true when the receiver and o share a month, day and
calendar.
*/
func (r PlainMonthDay) Equals(o PlainMonthDay) bool {
	return r.iso == o.iso && sameCalendar(r.Calendar(), o.Calendar())
}

/*
String returns the receiver such as "02-29". Non-ISO calendars render
the full reference date with its annotation.
*/
func (r PlainMonthDay) String() string {
	if sfx := calendarSuffix(r.Calendar()); sfx != `` {
		return r.iso.String() + sfx
	}
	b := newStrBuilder()
	padInt(&b, int64(r.iso.Month), 2)
	b.WriteByte('-')
	padInt(&b, int64(r.iso.Day), 2)
	return b.String()
}
