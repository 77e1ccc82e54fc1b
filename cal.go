package chrono

/*
cal.go contains the Calendar abstraction and its field resolution,
regulation and date arithmetic.
*/

/*
CalendarKind enumerates the supported calendar systems.
*/
type CalendarKind int

const (
	ISO8601 CalendarKind = iota
	Gregorian
	Buddhist
	ROC
	Japanese
)

var calendarIDs = [...]string{
	ISO8601:   `iso8601`,
	Gregorian: `gregory`,
	Buddhist:  `buddhist`,
	ROC:       `roc`,
	Japanese:  `japanese`,
}

/*
String returns the identifier of the receiver instance.
*/
func (r CalendarKind) String() string {
	if r < ISO8601 || r > Japanese {
		return `invalid calendar`
	}
	return calendarIDs[r]
}

/*
MonthDayReferenceYear is the ISO year stored in every [PlainMonthDay]. It
is a leap year so that February 29 remains representable.
*/
const MonthDayReferenceYear = 1972

/*
Calendar maps calendar fields onto ISO dates and performs calendar-aware
date arithmetic. Implementations must be safe for concurrent use.
*/
type Calendar interface {
	// ID returns the calendar identifier, such as "gregory".
	ID() string

	// Kind returns the calendar's enumerated kind.
	Kind() CalendarKind

	// Eras returns the era names recognized by the calendar, newest
	// first. The ISO calendar has none.
	Eras() []string

	// DateFromFields resolves f into an ISO date.
	DateFromFields(f Fields, o Overflow) (ISODate, error)

	// YearMonthFromFields resolves f into the first ISO date of a month.
	YearMonthFromFields(f Fields, o Overflow) (ISODate, error)

	// MonthDayFromFields resolves f into an ISO date within the
	// reference year.
	MonthDayFromFields(f Fields, o Overflow) (ISODate, error)

	// FieldsFromISO returns the calendar view of an ISO date.
	FieldsFromISO(d ISODate) CalendarDate

	// DaysInMonth returns the day count of month in calendar year.
	DaysInMonth(year, month int) int

	// DaysInYear returns the day count of calendar year.
	DaysInYear(year int) int

	// MonthsInYear returns the month count of calendar year.
	MonthsInYear(year int) int

	// InLeapYear reports whether calendar year is a leap year.
	InLeapYear(year int) bool

	// DateAdd returns d advanced by the given date units.
	DateAdd(d ISODate, years, months, weeks, days int64, o Overflow) (ISODate, error)

	// DateUntil returns the date-unit difference from a to b, expressed
	// with no unit larger than largest.
	DateUntil(a, b ISODate, largest Unit) (Duration, error)
}

/*
Fields carries calendar field values supplied by a caller. Nil pointers
and empty strings denote absent fields.
*/
type Fields struct {
	Era       string
	EraYear   *int
	Year      *int
	Month     *int
	MonthCode string
	Day       *int
}

/*
Int returns a pointer to v, for use when populating [Fields].
*/
func Int(v int) *int { return &v }

func (r Fields) hasYear() bool  { return r.Year != nil || r.Era != `` || r.EraYear != nil }
func (r Fields) hasMonth() bool { return r.Month != nil || r.MonthCode != `` }

/*
CalendarDate is the calendar-specific view of an ISO date.
*/
type CalendarDate struct {
	Era          string
	EraYear      int
	Year         int
	Month        int
	MonthCode    string
	Day          int
	DayOfWeek    int
	DayOfYear    int
	WeekOfYear   int
	DaysInWeek   int
	DaysInMonth  int
	DaysInYear   int
	MonthsInYear int
	InLeapYear   bool
}

/*
Fields returns the receiver as an instance of [Fields] suitable for
resolving through any [Calendar].
*/
func (r CalendarDate) Fields() Fields {
	f := Fields{Year: Int(r.Year), Month: Int(r.Month), MonthCode: r.MonthCode, Day: Int(r.Day)}
	if r.Era != `` {
		f.Era, f.EraYear = r.Era, Int(r.EraYear)
	}
	return f
}

/*
calendar implements [Calendar] for every supported kind. Month and day
structure is ISO for all kinds; the kinds differ in year numbering and
eras.
*/
type calendar struct {
	kind   CalendarKind
	offset int // calendar year minus ISO year
	eras   []era
}

/*
ISO returns the ISO 8601 [Calendar].
*/
func ISO() Calendar { return calendars[ISO8601] }

/*
Calendar returns the [Calendar] of the receiver kind.
*/
func (r CalendarKind) Calendar() Calendar {
	if r < ISO8601 || r > Japanese {
		return nil
	}
	return calendars[r]
}

/*
CalendarFrom returns the [Calendar] identified by id, ignoring case. An
empty id returns the ISO calendar.
*/
func CalendarFrom(id string) (Calendar, error) {
	key := fold(id)
	if key == `` {
		return ISO(), nil
	}
	for i, n := range calendarIDs {
		if n == key {
			return calendars[i], nil
		}
	}
	return nil, rangeErrorf("unknown calendar ", id)
}

func orDefaultCalendar(c Calendar) Calendar {
	if c == nil {
		return DefaultCalendar()
	}
	return c
}

func sameCalendar(a, b Calendar) bool { return a.ID() == b.ID() }

func (r *calendar) ID() string         { return calendarIDs[r.kind] }
func (r *calendar) Kind() CalendarKind { return r.kind }
func (r *calendar) String() string     { return r.ID() }

func (r *calendar) Eras() []string {
	names := make([]string, len(r.eras))
	for i, e := range r.eras {
		names[i] = e.name
	}
	return names
}

func (r *calendar) isoYear(year int) int { return year - r.offset }

func (r *calendar) DaysInMonth(year, month int) int {
	return ISODaysInMonth(r.isoYear(year), month)
}

func (r *calendar) DaysInYear(year int) int    { return ISODaysInYear(r.isoYear(year)) }
func (r *calendar) MonthsInYear(_ int) int     { return 12 }
func (r *calendar) InLeapYear(year int) bool   { return IsLeapYear(r.isoYear(year)) }
func (r *calendar) monthCode(month int) string { return monthCodeOf(month) }

func monthCodeOf(month int) string {
	b := newStrBuilder()
	b.WriteByte('M')
	padInt(&b, int64(month), 2)
	return b.String()
}

/*
parseMonthCode returns the month number of a code such as "M07". Leap
month codes ("M05L") are not used by any supported calendar.
*/
func parseMonthCode(code string) (int, error) {
	if len(code) != 3 || code[0] != 'M' {
		return 0, rangeErrorf("invalid monthCode ", code)
	}
	n, err := atoi(code[1:])
	if err != nil || n < 1 || n > 12 {
		return 0, rangeErrorf("invalid monthCode ", code)
	}
	return n, nil
}

/*
require returns a type error naming the first absent field group.
*/
func (r *calendar) require(f Fields, year, month, day bool) error {
	switch {
	case year && !f.hasYear():
		return errorMissingField(`year`)
	case month && !f.hasMonth():
		return errorMissingField(`month`)
	case day && f.Day == nil:
		return errorMissingField(`day`)
	}
	if len(r.eras) > 0 && (f.Era == ``) != (f.EraYear == nil) {
		return errorEraPair
	}
	return nil
}

/*
resolveYear returns the calendar year named by f. Era fields take
precedence over year but must agree with it when both are supplied.
*/
func (r *calendar) resolveYear(f Fields) (year int, present bool, err error) {
	if len(r.eras) > 0 && f.Era != `` && f.EraYear != nil {
		e, ok := r.eraNamed(f.Era)
		if !ok {
			err = rangeErrorf("unknown era ", f.Era, " for calendar ", r.ID())
			return
		}
		year = e.yearOf(*f.EraYear)
		if f.Year != nil && *f.Year != year {
			err = rangeErrorf("year ", *f.Year, " does not match era ", f.Era, " ", *f.EraYear)
			return
		}
		return year, true, nil
	}
	if f.Year != nil {
		return *f.Year, true, nil
	}
	return
}

/*
resolveMonth returns the month named by f, cross-checking month against
monthCode. Only the upper bound of month is subject to overflow.
*/
func (r *calendar) resolveMonth(f Fields, o Overflow) (month int, err error) {
	var code int
	if f.MonthCode != `` {
		if code, err = parseMonthCode(f.MonthCode); err != nil {
			return
		}
	}
	if f.Month == nil {
		return code, nil
	}

	month = *f.Month
	if month < 1 {
		return 0, errorFieldRange(`month`, month, 1, 12)
	} else if code != 0 && month != code {
		return 0, rangeErrorf("month ", month, " does not match monthCode ", f.MonthCode)
	} else if month > 12 {
		if o == Reject {
			return 0, errorFieldRange(`month`, month, 1, 12)
		}
		month = 12
	}
	return
}

func regulateDay(isoYear, month, day int, o Overflow) (int, error) {
	max := ISODaysInMonth(isoYear, month)
	if day < 1 || (day > max && o == Reject) {
		return 0, errorFieldRange(`day`, day, 1, max)
	}
	return clamp(day, 1, max), nil
}

func (r *calendar) DateFromFields(f Fields, o Overflow) (d ISODate, err error) {
	if err = r.require(f, true, true, true); err != nil {
		return
	}
	var year, month, day int
	if year, _, err = r.resolveYear(f); err != nil {
		return
	}
	if month, err = r.resolveMonth(f, o); err != nil {
		return
	}
	if day, err = regulateDay(r.isoYear(year), month, *f.Day, o); err != nil {
		return
	}
	d = ISODate{Year: r.isoYear(year), Month: month, Day: day}
	if !d.withinLimits() {
		err = ErrOutOfRange.detail(d)
	}
	debugCalendar("dateFromFields", r.ID(), d, err)
	return
}

func (r *calendar) YearMonthFromFields(f Fields, o Overflow) (d ISODate, err error) {
	if err = r.require(f, true, true, false); err != nil {
		return
	}
	var year, month int
	if year, _, err = r.resolveYear(f); err != nil {
		return
	}
	if month, err = r.resolveMonth(f, o); err != nil {
		return
	}
	d = ISODate{Year: r.isoYear(year), Month: month, Day: 1}
	if !yearMonthWithinLimits(d) {
		err = ErrOutOfRange.detail(d)
	}
	debugCalendar("yearMonthFromFields", r.ID(), d, err)
	return
}

/*
MonthDayFromFields returns an ISO date in [MonthDayReferenceYear]. A
supplied year is used only to validate or constrain the day. Non-ISO
calendars require a year when month is given without monthCode.
*/
func (r *calendar) MonthDayFromFields(f Fields, o Overflow) (d ISODate, err error) {
	if err = r.require(f, false, true, true); err != nil {
		return
	}
	if r.kind != ISO8601 && f.MonthCode == `` && !f.hasYear() {
		err = errorMissingField(`year`)
		return
	}

	var year, month, day int
	var hasYear bool
	if year, hasYear, err = r.resolveYear(f); err != nil {
		return
	}
	if month, err = r.resolveMonth(f, o); err != nil {
		return
	}
	limitYear := MonthDayReferenceYear
	if hasYear {
		limitYear = r.isoYear(year)
	}
	if day, err = regulateDay(limitYear, month, *f.Day, o); err != nil {
		return
	}
	d = ISODate{Year: MonthDayReferenceYear, Month: month, Day: day}
	debugCalendar("monthDayFromFields", r.ID(), d, err)
	return
}

func (r *calendar) FieldsFromISO(d ISODate) CalendarDate {
	year := d.Year + r.offset
	_, week := d.WeekOfYear()
	cd := CalendarDate{
		Year:         year,
		Month:        d.Month,
		MonthCode:    r.monthCode(d.Month),
		Day:          d.Day,
		DayOfWeek:    d.DayOfWeek(),
		DayOfYear:    d.DayOfYear(),
		WeekOfYear:   week,
		DaysInWeek:   7,
		DaysInMonth:  ISODaysInMonth(d.Year, d.Month),
		DaysInYear:   ISODaysInYear(d.Year),
		MonthsInYear: 12,
		InLeapYear:   IsLeapYear(d.Year),
	}
	if e, ok := r.eraOf(d); ok {
		cd.Era, cd.EraYear = e.name, e.eraYearOf(year)
	}
	return cd
}

/*
addYearsMonths returns d moved by whole years and months with its day
regulated against the target month.
*/
func addYearsMonths(d ISODate, years, months int64, o Overflow) (ISODate, error) {
	m := int64(d.Month) - 1 + months
	y := int64(d.Year) + years + floorDiv(m, 12)
	if y < -300_000 || y > 300_000 {
		return d, ErrOutOfRange.detail("year ", y)
	}
	res := ISODate{Year: int(y), Month: int(floorMod(m, 12)) + 1}
	day, err := regulateDay(res.Year, res.Month, d.Day, o)
	res.Day = day
	return res, err
}

func (r *calendar) DateAdd(d ISODate, years, months, weeks, days int64, o Overflow) (res ISODate, err error) {
	if res, err = addYearsMonths(d, years, months, o); err != nil {
		return
	}
	const maxDays = 2 * (maxEpochDay - minEpochDay)
	if absInt(weeks) > maxDays/7 || absInt(days) > maxDays {
		return d, ErrOutOfRange.detail("day count")
	}
	n := res.EpochDay() + weeks*7 + days
	if n < minEpochDay || n > maxEpochDay {
		return d, ErrOutOfRange.detail("epoch day ", n)
	}
	res = ISOFromEpochDay(n)
	debugCalendar("dateAdd", r.ID(), d, res)
	return
}

/*
DateUntil returns the difference from a to b. For [Year] and [Month] the
result counts whole calendar units first, constraining the day at each
step, then the remaining days. Other largest units yield weeks and days.
*/
func (r *calendar) DateUntil(a, b ISODate, largest Unit) (Duration, error) {
	var dd dateDuration
	switch largest {
	case Year, Month:
		dd = isoDateUntilMonths(a, b, largest)
	default:
		dd.days = b.EpochDay() - a.EpochDay()
		if largest == Week {
			dd.weeks, dd.days = dd.days/7, dd.days%7
		}
	}
	debugCalendar("dateUntil", r.ID(), a, b, largest)
	return dd.duration(nil)
}

func isoDateUntilMonths(a, b ISODate, largest Unit) (dd dateDuration) {
	sign := int64(-a.Compare(b))
	if sign == 0 {
		return
	}

	years := int64(b.Year - a.Year)
	mid, _ := addYearsMonths(a, years, 0, Constrain)
	midSign := int64(-mid.Compare(b))
	if midSign == 0 {
		if largest == Year {
			dd.years = years
		} else {
			dd.months = years * 12
		}
		return
	}

	months := int64(b.Month - a.Month)
	if midSign != sign {
		years -= sign
		months += sign * 12
	}
	mid, _ = addYearsMonths(a, years, months, Constrain)
	midSign = int64(-mid.Compare(b))
	if midSign == 0 {
		if largest == Year {
			dd.years, dd.months = years, months
		} else {
			dd.months = months + years*12
		}
		return
	}
	if midSign != sign {
		months -= sign
		if months == -sign {
			years -= sign
			months = 11 * sign
		}
		mid, _ = addYearsMonths(a, years, months, Constrain)
	}

	var days int64
	switch {
	case mid.Month == b.Month && mid.Year == b.Year:
		days = int64(b.Day - mid.Day)
	case sign < 0:
		days = -int64(mid.Day) - int64(ISODaysInMonth(b.Year, b.Month)-b.Day)
	default:
		days = int64(b.Day) + int64(ISODaysInMonth(mid.Year, mid.Month)-mid.Day)
	}

	if largest == Month {
		months += years * 12
		years = 0
	}
	dd.years, dd.months, dd.days = years, months, days
	return
}

func yearMonthWithinLimits(d ISODate) bool {
	first := ISODate{Year: d.Year, Month: d.Month, Day: 1}.EpochDay()
	last := first + int64(ISODaysInMonth(d.Year, d.Month)) - 1
	return last >= minEpochDay && first <= maxEpochDay
}
