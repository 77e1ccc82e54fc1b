package chrono

/*
pd.go contains PlainDate, a calendar date with no time or zone.
*/

/*
PlainDate is a calendar date without a time of day or time zone. It is
stored as an ISO date paired with the [Calendar] used to read it.
*/
type PlainDate struct {
	iso ISODate
	cal Calendar
}

/*
NewPlainDate returns an instance of [PlainDate] from ISO fields. Invalid
fields are rejected rather than constrained. A nil cal selects the
default calendar.
*/
func NewPlainDate(year, month, day int, cal Calendar, constraints ...Constraint[PlainDate]) (d PlainDate, err error) {
	iso := ISODate{Year: year, Month: month, Day: day}
	if !iso.IsValid() {
		return d, rangeErrorf("invalid ISO date ", iso)
	} else if !iso.withinLimits() {
		return d, ErrOutOfRange.detail(iso)
	}
	d = PlainDate{iso: iso, cal: orDefaultCalendar(cal)}
	err = ConstraintGroup[PlainDate](constraints).Constrain(d)
	return
}

/*
PlainDateFromFields resolves f through cal, honoring [WithOverflow].
*/
func PlainDateFromFields(cal Calendar, f Fields, options ...Option) (PlainDate, error) {
	cal = orDefaultCalendar(cal)
	cfg := newOpConfig(Trunc, options...)
	iso, err := cal.DateFromFields(f, cfg.overflow)
	if err != nil {
		return PlainDate{}, err
	}
	return PlainDate{iso: iso, cal: cal}, nil
}

func (r PlainDate) ISO() ISODate { return r.iso }

func (r PlainDate) Calendar() Calendar { return orDefaultCalendar(r.cal) }

/*
CalendarDate returns the receiver's fields as read in its calendar.
*/
func (r PlainDate) CalendarDate() CalendarDate { return r.Calendar().FieldsFromISO(r.iso) }

func (r PlainDate) Year() int         { return r.CalendarDate().Year }
func (r PlainDate) Month() int        { return r.iso.Month }
func (r PlainDate) MonthCode() string { return monthCodeOf(r.iso.Month) }
func (r PlainDate) Day() int          { return r.iso.Day }
func (r PlainDate) DayOfWeek() int    { return r.iso.DayOfWeek() }
func (r PlainDate) DayOfYear() int    { return r.iso.DayOfYear() }
func (r PlainDate) DaysInMonth() int  { return ISODaysInMonth(r.iso.Year, r.iso.Month) }
func (r PlainDate) InLeapYear() bool  { return IsLeapYear(r.iso.Year) }

/*
Add returns the receiver advanced by d. Hours and smaller units are
balanced into whole days, discarding any remainder; [WithOverflow]
governs day-of-month regulation.
*/
func (r PlainDate) Add(d Duration, options ...Option) (PlainDate, error) {
	cfg := newOpConfig(Trunc, options...)
	days, _, err := balanceTime(d.Days(), d.timeNanoseconds(), Day, nil)
	if err != nil {
		return r, err
	}
	iso, err := r.Calendar().DateAdd(r.iso, d.Years(), d.Months(), d.Weeks(), days, cfg.overflow)
	if err != nil {
		return r, err
	}
	return PlainDate{iso: iso, cal: r.cal}, nil
}

/*
Subtract returns the receiver moved back by d. See [PlainDate.Add].
*/
func (r PlainDate) Subtract(d Duration, options ...Option) (PlainDate, error) {
	return r.Add(d.Negated(), options...)
}

/*
Until returns the [Duration] from the receiver to o. Units default to
days for both largest and smallest and must be days or coarser.
*/
func (r PlainDate) Until(o PlainDate, options ...Option) (Duration, error) {
	return r.diff(r, o, options)
}

/*
Since returns the [Duration] from o to the receiver. See [PlainDate.Until].
*/
func (r PlainDate) Since(o PlainDate, options ...Option) (Duration, error) {
	return r.diff(o, r, options)
}

func (r PlainDate) diff(a, b PlainDate, options []Option) (Duration, error) {
	if !sameCalendar(a.Calendar(), b.Calendar()) {
		return Duration{}, rangeErrorf("cannot difference dates in calendars ", a.Calendar().ID(), " and ", b.Calendar().ID())
	}
	cfg := newOpConfig(Defaults().DiffRoundingMode, options...)
	largest, spec, err := diffOptions(cfg, Day, Day, Day, Year)
	if err != nil {
		return Duration{}, err
	}
	return diffPlain(ISODateTime{ISODate: a.iso}, ISODateTime{ISODate: b.iso}, a.Calendar(), largest, spec)
}

/*
Compare returns -1, 0 or 1 as the receiver is before, equal to or after
o, ignoring calendars.
*/
func (r PlainDate) Compare(o PlainDate) int { return r.iso.Compare(o.iso) }

/*
Equals returns true when the receiver and o share an ISO date and a
calendar.
*/
func (r PlainDate) Equals(o PlainDate) bool {
	return r.iso == o.iso && sameCalendar(r.Calendar(), o.Calendar())
}

/*
WithCalendar returns the receiver's ISO date read in cal.
*/
func (r PlainDate) WithCalendar(cal Calendar) PlainDate {
	return PlainDate{iso: r.iso, cal: orDefaultCalendar(cal)}
}

/*
ToPlainDateTime returns the receiver at time of day t.
*/
func (r PlainDate) ToPlainDateTime(t ISOTime) (PlainDateTime, error) {
	if !t.IsValid() {
		return PlainDateTime{}, rangeErrorf("invalid time ", t)
	}
	return PlainDateTime{iso: ISODateTime{r.iso, t}, cal: r.cal}, nil
}

/*
ToZonedDateTime returns the receiver at time t in tz, resolved per
[WithDisambiguation].
*/
func (r PlainDate) ToZonedDateTime(tz *TimeZone, t ISOTime, options ...Option) (ZonedDateTime, error) {
	dt, err := r.ToPlainDateTime(t)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return dt.ToZonedDateTime(tz, options...)
}

/*
ToPlainYearMonth returns the year and month of the receiver.
*/
func (r PlainDate) ToPlainYearMonth() (PlainYearMonth, error) {
	cd := r.CalendarDate()
	return PlainYearMonthFromFields(r.Calendar(), Fields{Year: Int(cd.Year), MonthCode: cd.MonthCode})
}

/*
ToPlainMonthDay returns the month and day of the receiver.
*/
func (r PlainDate) ToPlainMonthDay() (PlainMonthDay, error) {
	cd := r.CalendarDate()
	return PlainMonthDayFromFields(r.Calendar(), Fields{MonthCode: cd.MonthCode, Day: Int(cd.Day)})
}

func (r PlainDate) relativeAnchor() *anchor {
	return &anchor{dt: ISODateTime{ISODate: r.iso}, cal: r.Calendar()}
}

/*
String returns the receiver in ISO 8601 form. Non-ISO calendars append
a "[u-ca=…]" annotation.
*/
func (r PlainDate) String() string {
	return r.iso.String() + calendarSuffix(r.Calendar())
}

func calendarSuffix(cal Calendar) string {
	if cal == nil || cal.Kind() == ISO8601 {
		return ``
	}
	return `[u-ca=` + cal.ID() + `]`
}
