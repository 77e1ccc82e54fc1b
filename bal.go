package chrono

/*
bal.go contains the duration balancing pipeline: unbalancing against an
anchor, rounding, zoned day adjustment and rebalancing. Calendar steps
use a single DateAdd/DateUntil pair and never iterate per unit.
*/

import "math/big"

/*
dateDuration holds the calendar portion of a duration.
*/
type dateDuration struct {
	years, months, weeks, days int64
}

func (r dateDuration) isZero() bool {
	return r.years == 0 && r.months == 0 && r.weeks == 0 && r.days == 0
}

func (r dateDuration) negated() dateDuration {
	return dateDuration{-r.years, -r.months, -r.weeks, -r.days}
}

/*
timeParts holds hours through nanoseconds, indexed by [Unit].
*/
type timeParts [Day]int64

func (r timeParts) nanoseconds() *big.Int {
	total := new(big.Int)
	for u := Nanosecond; u < Day; u++ {
		total.Add(total, new(big.Int).Mul(newBigInt(r[u]), newBigInt(nanoIn[u])))
	}
	return total
}

/*
duration returns the receiver combined with timeNs, which is split into
hours and smaller units.
*/
func (r dateDuration) duration(timeNs *big.Int) (Duration, error) {
	var tp timeParts
	if timeNs != nil {
		var err error
		if tp, err = splitTime(timeNs, Hour); err != nil {
			return Duration{}, err
		}
	}
	return durationFrom(r, tp)
}

func durationFrom(dd dateDuration, tp timeParts) (Duration, error) {
	var d Duration
	d.v[Year], d.v[Month], d.v[Week], d.v[Day] = dd.years, dd.months, dd.weeks, dd.days
	copy(d.v[:Day], tp[:])
	return d, d.validate()
}

/*
splitTime distributes ns over top and every smaller time unit. Every
part carries the sign of ns.
*/
func splitTime(ns *big.Int, top Unit) (tp timeParts, err error) {
	if top > Hour {
		top = Hour
	}
	rem := new(big.Int).Set(ns)
	for u := top; u >= Nanosecond; u-- {
		q, r := new(big.Int).QuoRem(rem, newBigInt(nanoIn[u]), new(big.Int))
		if tp[u], err = bigInt64(q, u.String()+"s"); err != nil {
			return
		}
		rem = r
	}
	return
}

/*
anchor is the resolved form of a [RelativeTo] value: a wall-clock
date-time in a calendar, optionally pinned to an instant in a zone.
*/
type anchor struct {
	dt   ISODateTime
	cal  Calendar
	zone *TimeZone
	inst Instant
}

func zonedAnchorAt(i Instant, tz *TimeZone, cal Calendar) *anchor {
	return &anchor{dt: tz.localDateTime(i), cal: cal, zone: tz, inst: i}
}

func (r *anchor) zoned() bool   { return r != nil && r.zone != nil }
func (r *anchor) date() ISODate { return r.dt.ISODate }

func (r *anchor) addDate(d ISODate, dd dateDuration) (ISODate, error) {
	return r.cal.DateAdd(d, dd.years, dd.months, dd.weeks, dd.days, Constrain)
}

func daysBetween(a, b ISODate) int64 { return b.EpochDay() - a.EpochDay() }

/*
moved returns the receiver advanced by dd. Zoned anchors keep their
wall-clock time and are re-resolved compatibly.
*/
func (r *anchor) moved(dd dateDuration) (*anchor, error) {
	if dd.isZero() {
		return r, nil
	}
	if !r.zoned() {
		date, err := r.addDate(r.date(), dd)
		return &anchor{dt: ISODateTime{date, r.dt.ISOTime}, cal: r.cal}, err
	}
	i, err := addZoned(r.inst, r.zone, r.cal, dd, nil)
	if err != nil {
		return nil, err
	}
	return zonedAnchorAt(i, r.zone, r.cal), nil
}

/*
endpoint returns the epoch nanoseconds reached by applying d to the
receiver. Plain anchors are read as if they were UTC.
*/
func (r *anchor) endpoint(d Duration) (*big.Int, error) {
	if r.zoned() {
		i, err := addZoned(r.inst, r.zone, r.cal, d.date(), d.timeNanoseconds())
		return i.epochNanoseconds(), err
	}
	date, err := r.addDate(r.date(), d.date())
	if err != nil {
		return nil, err
	}
	end := ISODateTime{date, r.dt.ISOTime}.epochNanoseconds()
	return end.Add(end, d.timeNanoseconds()), nil
}

/*
unbalanceRelative converts the calendar units of dd which are larger
than largest into smaller units, in one closed-form step.
*/
func unbalanceRelative(dd dateDuration, largest Unit, a *anchor) (dateDuration, error) {
	switch {
	case largest == Year:
		return dd, nil
	case largest == Month:
		if dd.years == 0 {
			return dd, nil
		} else if a == nil {
			return dd, ErrRelativeToRequired
		}
		end, err := a.addDate(a.date(), dateDuration{years: dd.years})
		if err != nil {
			return dd, err
		}
		m, err := a.cal.DateUntil(a.date(), end, Month)
		dd.years, dd.months = 0, dd.months+m.Months()
		return dd, err
	case dd.years == 0 && dd.months == 0:
		if largest < Week {
			dd.weeks, dd.days = 0, dd.days+7*dd.weeks
		}
		return dd, nil
	case a == nil:
		return dd, ErrRelativeToRequired
	}

	move := dateDuration{years: dd.years, months: dd.months}
	if largest < Week {
		move.weeks = dd.weeks
		dd.weeks = 0
	}
	end, err := a.addDate(a.date(), move)
	if err != nil {
		return dd, err
	}
	dd.years, dd.months = 0, 0
	dd.days += daysBetween(a.date(), end)
	debugDuration("unbalance", largest, dd.days)
	return dd, nil
}

/*
balanceRelative regroups dd into the largest calendar unit permitted.
Week balancing without an anchor assumes seven-day weeks.
*/
func balanceRelative(dd dateDuration, largest Unit, a *anchor) (dateDuration, error) {
	if largest < Week || dd.isZero() {
		return dd, nil
	}
	if a == nil {
		if largest == Week && dd.years == 0 && dd.months == 0 {
			dd.weeks += dd.days / 7
			dd.days %= 7
			return dd, nil
		}
		return dd, ErrRelativeToRequired
	}

	end, err := a.addDate(a.date(), dd)
	if err != nil {
		return dd, err
	}
	res, err := a.cal.DateUntil(a.date(), end, largest)
	if err != nil {
		return dd, err
	}
	debugDuration("balance", largest, res)
	return res.date(), nil
}

/*
balanceTime folds days and timeNs into a single nanosecond total and
redistributes it with largest as the top unit. Zoned anchors measure
days by their actual length.
*/
func balanceTime(days int64, timeNs *big.Int, largest Unit, a *anchor) (int64, timeParts, error) {
	var ns *big.Int
	if a.zoned() {
		end, err := addZoned(a.inst, a.zone, a.cal, dateDuration{days: days}, timeNs)
		if err != nil {
			return 0, timeParts{}, err
		}
		ns = end.sub(a.inst)
	} else {
		ns = mulAdd(newBigInt(days), NanosecondsPerDay, timeNs)
	}

	days = 0
	if largest >= Day {
		var rem *big.Int
		var err error
		if days, rem, _, err = nanosecondsToDays(ns, a); err != nil {
			return 0, timeParts{}, err
		}
		ns = rem
	}
	tp, err := splitTime(ns, largest)
	return days, tp, err
}

/*
nanosecondsToDays splits ns into whole days and a remainder, returning
the length of the day following the last whole day. Zoned anchors use
the local date difference as a closed-form estimate which is then
corrected by at most a few single-day steps.
*/
func nanosecondsToDays(ns *big.Int, a *anchor) (days int64, rem, dayLen *big.Int, err error) {
	dayLen = newBigInt(NanosecondsPerDay)
	sign := ns.Sign()
	if sign == 0 {
		return 0, new(big.Int), dayLen, nil
	}
	if !a.zoned() {
		q, r := new(big.Int).QuoRem(ns, dayLen, new(big.Int))
		days, err = bigInt64(q, "days")
		return days, r, dayLen, err
	}

	var end, inter Instant
	if end, err = a.inst.addNanos(ns); err != nil {
		return
	}
	dd, _, err := differenceISODateTime(a.dt, a.zone.localDateTime(end), a.cal, Day)
	if err != nil {
		return
	}
	days = dd.days
	if inter, err = addZoned(a.inst, a.zone, a.cal, dateDuration{days: days}, nil); err != nil {
		return
	}
	for sign > 0 && days > 0 && inter.Compare(end) > 0 {
		days--
		if inter, err = addZoned(a.inst, a.zone, a.cal, dateDuration{days: days}, nil); err != nil {
			return
		}
	}

	rem = end.sub(inter)
	step := int64(sign)
	for i := 0; i < 4; i++ {
		var farther Instant
		if farther, err = addZoned(inter, a.zone, a.cal, dateDuration{days: step}, nil); err != nil {
			return
		}
		dayLen = farther.sub(inter)
		if new(big.Int).Sub(rem, dayLen).Sign()*sign < 0 {
			break
		}
		rem.Sub(rem, dayLen)
		inter = farther
		days += step
	}
	dayLen.Abs(dayLen)
	debugZone("nanosecondsToDays", days, rem, dayLen)
	return
}

/*
roundDuration rounds dd and timeNs to spec. It returns the rounded
components and the exact pre-rounding value expressed in spec.Unit.
Units of a day or larger absorb the time portion; week, month and year
rounding measure their remainder against the anchored calendar.
*/
func roundDuration(dd dateDuration, timeNs *big.Int, spec RoundingSpec, a *anchor) (dateDuration, *big.Int, *big.Rat, error) {
	unit := spec.Unit
	if (unit == Year || unit == Month) && a == nil {
		return dd, timeNs, nil, ErrRelativeToRequired
	} else if unit == Week && a == nil && (dd.years != 0 || dd.months != 0) {
		return dd, timeNs, nil, ErrRelativeToRequired
	}

	if unit < Day {
		value := new(big.Rat).SetFrac(timeNs, newBigInt(nanoIn[unit]))
		q, err := spec.Apply(value)
		if err != nil {
			return dd, timeNs, nil, err
		}
		return dd, q.Mul(q, newBigInt(nanoIn[unit])), value, nil
	}

	days, err := fractionalDays(dd, timeNs, a)
	if err != nil {
		return dd, timeNs, nil, err
	}

	var value *big.Rat
	var out dateDuration
	switch unit {
	case Year, Month:
		var count int64
		var span *big.Rat
		if count, span, err = calendarFraction(dd, days, unit, a); err != nil {
			return dd, timeNs, nil, err
		}
		value = new(big.Rat).Add(new(big.Rat).SetInt64(count), span)
		if unit == Month {
			out.years = dd.years
		}
	case Week:
		value = new(big.Rat).Add(new(big.Rat).SetInt64(dd.weeks), days.Quo(days, big.NewRat(7, 1)))
		out.years, out.months = dd.years, dd.months
	default:
		value = days
		out.years, out.months, out.weeks = dd.years, dd.months, dd.weeks
	}

	q, err := spec.Apply(value)
	if err != nil {
		return dd, timeNs, nil, err
	}
	n, err := bigInt64(q, unit.String()+"s")
	if err != nil {
		return dd, timeNs, nil, err
	}
	switch unit {
	case Year:
		out.years = n
	case Month:
		out.months = n
	case Week:
		out.weeks = n
	default:
		out.days = n
	}
	debugRounding("duration", unit, value, out)
	return out, new(big.Int), value, nil
}

/*
fractionalDays returns dd.days plus timeNs expressed in days. Zoned
anchors divide by the actual length of the day in question.
*/
func fractionalDays(dd dateDuration, timeNs *big.Int, a *anchor) (*big.Rat, error) {
	days := new(big.Rat).SetInt64(dd.days)
	if !a.zoned() {
		return days.Add(days, new(big.Rat).SetFrac(timeNs, newBigInt(NanosecondsPerDay))), nil
	}
	inter, err := a.moved(dateDuration{years: dd.years, months: dd.months, weeks: dd.weeks})
	if err != nil {
		return nil, err
	}
	extra, rem, dayLen, err := nanosecondsToDays(timeNs, inter)
	if err != nil {
		return nil, err
	}
	days.Add(days, new(big.Rat).SetInt64(extra))
	return days.Add(days, new(big.Rat).SetFrac(rem, dayLen)), nil
}

/*
calendarFraction expresses dd plus days as whole units of unit (Year or
Month) and a fraction of the next unit, measured from the anchor.
*/
func calendarFraction(dd dateDuration, days *big.Rat, unit Unit, a *anchor) (count int64, frac *big.Rat, err error) {
	lead := dateDuration{years: dd.years}
	count = dd.years
	if unit == Month {
		lead.months = dd.months
		count = dd.months
	}

	var rel, rest ISODate
	if rel, err = a.addDate(a.date(), lead); err != nil {
		return
	}
	full := dateDuration{years: dd.years, months: dd.months, weeks: dd.weeks}
	if rest, err = a.addDate(a.date(), full); err != nil {
		return
	}
	days = new(big.Rat).Add(days, new(big.Rat).SetInt64(daysBetween(rel, rest)))

	whole := new(big.Int).Quo(days.Num(), days.Denom())
	wholeDays, err := bigInt64(whole, "days")
	if err != nil {
		return
	}
	var later ISODate
	if later, err = a.addDate(rel, dateDuration{days: wholeDays}); err != nil {
		return
	}
	passed, err := a.cal.DateUntil(rel, later, unit)
	if err != nil {
		return
	}
	step := dateDuration{years: passed.Years()}
	if unit == Month {
		step = dateDuration{months: passed.Months()}
	}
	count += step.years + step.months

	var moved ISODate
	if moved, err = a.addDate(rel, step); err != nil {
		return
	}
	days.Sub(days, new(big.Rat).SetInt64(daysBetween(rel, moved)))

	sign := int64(days.Sign())
	if sign == 0 {
		sign = 1
	}
	one := dateDuration{years: sign}
	if unit == Month {
		one = dateDuration{months: sign}
	}
	var next ISODate
	if next, err = a.addDate(moved, one); err != nil {
		return
	}
	unitDays := absInt(daysBetween(moved, next))
	frac = new(big.Rat).Quo(days, new(big.Rat).SetInt64(unitDays))
	return
}

/*
adjustRoundedDurationDays carries a rounded time portion which reaches
or exceeds the actual length of the following zoned day into one more
day.
*/
func adjustRoundedDurationDays(dd dateDuration, timeNs *big.Int, spec RoundingSpec, a *anchor) (dateDuration, *big.Int, error) {
	direction := int64(timeNs.Sign())
	if !a.zoned() || spec.Unit >= Day || spec.isNoop() || direction == 0 {
		return dd, timeNs, nil
	}

	dayStart, err := addZoned(a.inst, a.zone, a.cal, dd, nil)
	if err != nil {
		return dd, timeNs, err
	}
	dayEnd, err := addZoned(dayStart, a.zone, a.cal, dateDuration{days: direction}, nil)
	if err != nil {
		return dd, timeNs, err
	}
	over := new(big.Int).Sub(timeNs, dayEnd.sub(dayStart))
	if int64(over.Sign())*direction < 0 {
		return dd, timeNs, nil
	}

	q, err := spec.Apply(new(big.Rat).SetFrac(over, newBigInt(nanoIn[spec.Unit])))
	if err != nil {
		return dd, timeNs, err
	}
	dd.days += direction
	debugDuration("adjustRoundedDays", dd.days)
	return dd, q.Mul(q, newBigInt(nanoIn[spec.Unit])), nil
}
