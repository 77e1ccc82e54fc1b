package chrono

/*
iso.go contains proleptic Gregorian (ISO 8601) epoch-day arithmetic.
All calendars map their fields onto these types.
*/

import (
	"math/big"
	"strings"
)

/*
ISODate is a proleptic Gregorian calendar date. Year 0 is 1 BCE.
*/
type ISODate struct {
	Year  int
	Month int
	Day   int
}

/*
ISOTime is a wall-clock time of day with nanosecond precision.
*/
type ISOTime struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Microsecond int
	Nanosecond  int
}

/*
ISODateTime combines an [ISODate] and an [ISOTime] with no time zone.
*/
type ISODateTime struct {
	ISODate
	ISOTime
}

/*
Epoch-day limits of the supported range. Dates outside of these bounds
cannot be represented as instants, even with a maximal offset.
*/
const (
	minEpochDay int64 = -100_000_001
	maxEpochDay int64 = 100_000_000
	daysPer400  int64 = 146_097
	epochShift  int64 = 719_468
)

/*
IsLeapYear returns a Boolean value indicative of whether year is a
proleptic Gregorian leap year.
*/
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
ISODaysInMonth returns the number of days in the given month. Months
outside of 1 through 12 are capped to the nearest valid month.
*/
func ISODaysInMonth(year, month int) int {
	switch clamp(month, 1, 12) {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

/*
ISODaysInYear returns 366 for leap years and 365 otherwise.
*/
func ISODaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

/*
EpochDayFromISO returns the number of days between 1970-01-01 and d.
The month is capped to 1 through 12; the day is applied linearly, so
an overlong day lands in a following month. Negative years use floor
division.
*/
func EpochDayFromISO(d ISODate) int64 {
	y := int64(d.Year)
	m := int64(clamp(d.Month, 1, 12))
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(d.Day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400 + doe - epochShift
}

/*
ISOFromEpochDay is the inverse of [EpochDayFromISO].
*/
func ISOFromEpochDay(n int64) ISODate {
	z := n + epochShift
	era := floorDiv(z, daysPer400)
	doe := z - era*daysPer400
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return ISODate{Year: int(y), Month: int(m), Day: int(d)}
}

/*
EpochDay returns the epoch-day ordinal of the receiver.
*/
func (r ISODate) EpochDay() int64 { return EpochDayFromISO(r) }

/*
IsValid returns a Boolean value indicative of whether the month and
day of the receiver denote a real date.
*/
func (r ISODate) IsValid() bool {
	return 1 <= r.Month && r.Month <= 12 &&
		1 <= r.Day && r.Day <= ISODaysInMonth(r.Year, r.Month)
}

/*
AddDays returns the date n days after the receiver.
*/
func (r ISODate) AddDays(n int64) ISODate {
	return ISOFromEpochDay(r.EpochDay() + n)
}

/*
Compare returns -1, 0 or 1 as the receiver is before, equal to or
after o.
*/
func (r ISODate) Compare(o ISODate) int {
	switch {
	case r.Year != o.Year:
		return signOf(r.Year - o.Year)
	case r.Month != o.Month:
		return signOf(r.Month - o.Month)
	}
	return signOf(r.Day - o.Day)
}

/*
DayOfWeek returns the ISO weekday of the receiver, where Monday is 1
and Sunday is 7.
*/
func (r ISODate) DayOfWeek() int {
	return int(floorMod(r.EpochDay()+3, 7)) + 1
}

/*
DayOfYear returns the one-based ordinal day of the receiver's year.
*/
func (r ISODate) DayOfYear() int {
	return int(r.EpochDay()-EpochDayFromISO(ISODate{Year: r.Year, Month: 1, Day: 1})) + 1
}

/*
WeekOfYear returns the ISO week-numbering year and week of the receiver.
*/
func (r ISODate) WeekOfYear() (year, week int) {
	year = r.Year
	week = (r.DayOfYear() - r.DayOfWeek() + 10) / 7
	if week < 1 {
		year--
		week = weeksInISOYear(year)
	} else if week > weeksInISOYear(year) {
		year++
		week = 1
	}
	return
}

func weeksInISOYear(year int) int {
	dec28 := ISODate{Year: year, Month: 12, Day: 28}
	return (dec28.DayOfYear() - dec28.DayOfWeek() + 10) / 7
}

func (r ISODate) withinLimits() bool {
	n := r.EpochDay()
	return minEpochDay <= n && n <= maxEpochDay
}

func (r ISODate) String() string {
	b := newStrBuilder()
	writeISODate(&b, r)
	return b.String()
}

/*
NanosecondOfDay returns the nanoseconds elapsed since midnight.
*/
func (r ISOTime) NanosecondOfDay() int64 {
	return int64(r.Hour)*nanoIn[Hour] +
		int64(r.Minute)*nanoIn[Minute] +
		int64(r.Second)*nanoIn[Second] +
		int64(r.Millisecond)*nanoIn[Millisecond] +
		int64(r.Microsecond)*nanoIn[Microsecond] +
		int64(r.Nanosecond)
}

/*
ISOTimeFromNanoseconds returns the time of day ns nanoseconds after
midnight. ns is reduced modulo one day.
*/
func ISOTimeFromNanoseconds(ns int64) ISOTime {
	ns = floorMod(ns, NanosecondsPerDay)
	return ISOTime{
		Hour:        int(ns / nanoIn[Hour]),
		Minute:      int(ns / nanoIn[Minute] % 60),
		Second:      int(ns / nanoIn[Second] % 60),
		Millisecond: int(ns / nanoIn[Millisecond] % 1000),
		Microsecond: int(ns / nanoIn[Microsecond] % 1000),
		Nanosecond:  int(ns % 1000),
	}
}

/*
IsValid returns a Boolean value indicative of whether every receiver
field lies within its clock range.
*/
func (r ISOTime) IsValid() bool { return r.regulate(Reject) == nil }

/*
regulate validates the receiver under reject, or clamps each field
under constrain.
*/
func (r *ISOTime) regulate(o Overflow) error {
	fields := []struct {
		name string
		v    *int
		max  int
	}{
		{`hour`, &r.Hour, 23},
		{`minute`, &r.Minute, 59},
		{`second`, &r.Second, 59},
		{`millisecond`, &r.Millisecond, 999},
		{`microsecond`, &r.Microsecond, 999},
		{`nanosecond`, &r.Nanosecond, 999},
	}
	for _, f := range fields {
		if err := RangeConstraint(f.name, 0, f.max)(*f.v); err != nil {
			if o == Reject {
				return err
			}
			*f.v = clamp(*f.v, 0, f.max)
		}
	}
	return nil
}

/*
Compare returns -1, 0 or 1 as the receiver is before, equal to or
after o.
*/
func (r ISOTime) Compare(o ISOTime) int {
	return signOf(r.NanosecondOfDay() - o.NanosecondOfDay())
}

func (r ISOTime) String() string {
	b := newStrBuilder()
	writeISOTime(&b, r)
	return b.String()
}

/*
Compare returns -1, 0 or 1 as the receiver is before, equal to or
after o.
*/
func (r ISODateTime) Compare(o ISODateTime) int {
	if c := r.ISODate.Compare(o.ISODate); c != 0 {
		return c
	}
	return r.ISOTime.Compare(o.ISOTime)
}

/*
epochMinutes returns the whole minutes elapsed between the epoch and
the receiver, read as if it were UTC.
*/
func (r ISODateTime) epochMinutes() int64 {
	return r.EpochDay()*1440 + int64(r.Hour)*60 + int64(r.Minute)
}

/*
subMinute returns the nanoseconds of the receiver below the minute.
*/
func (r ISODateTime) subMinute() int64 {
	return r.NanosecondOfDay() % nanoIn[Minute]
}

/*
epochNanoseconds returns the receiver's nanoseconds since the epoch,
read as if it were UTC.
*/
func (r ISODateTime) epochNanoseconds() *big.Int {
	return mulAdd(newBigInt(r.EpochDay()), NanosecondsPerDay,
		newBigInt(r.NanosecondOfDay()))
}

/*
withinLimits reports whether the receiver lies strictly within one day
of the instant range.
*/
func (r ISODateTime) withinLimits() bool {
	n := r.EpochDay()
	switch {
	case n < minEpochDay, n > maxEpochDay:
		return false
	case n == minEpochDay:
		return r.NanosecondOfDay() > 0
	}
	return true
}

/*
addTime returns the receiver advanced by ns nanoseconds.
*/
func (r ISODateTime) addTime(ns *big.Int) (ISODateTime, error) {
	total := new(big.Int).Add(newBigInt(r.NanosecondOfDay()), ns)
	days, rem := new(big.Int).DivMod(total, newBigInt(NanosecondsPerDay), new(big.Int))
	d, err := bigInt64(days, "day count")
	if err != nil {
		return r, err
	}
	day := r.EpochDay() + d
	if day < minEpochDay-1 || day > maxEpochDay+1 {
		return r, ErrOutOfRange
	}
	return ISODateTime{ISOFromEpochDay(day), ISOTimeFromNanoseconds(rem.Int64())}, nil
}

func (r ISODateTime) String() string {
	b := newStrBuilder()
	writeISODate(&b, r.ISODate)
	b.WriteByte('T')
	writeISOTime(&b, r.ISOTime)
	return b.String()
}

func writeISODate(b *strings.Builder, d ISODate) {
	if d.Year < 0 || d.Year > 9999 {
		if d.Year < 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		padInt(b, int64(absInt(d.Year)), 6)
	} else {
		padInt(b, int64(d.Year), 4)
	}
	b.WriteByte('-')
	padInt(b, int64(d.Month), 2)
	b.WriteByte('-')
	padInt(b, int64(d.Day), 2)
}

func writeISOTime(b *strings.Builder, t ISOTime) {
	padInt(b, int64(t.Hour), 2)
	b.WriteByte(':')
	padInt(b, int64(t.Minute), 2)
	b.WriteByte(':')
	padInt(b, int64(t.Second), 2)
	if frac := t.NanosecondOfDay() % nanoIn[Second]; frac != 0 {
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(fmtInt(frac+nanoIn[Second], 10)[1:], `0`))
	}
}
