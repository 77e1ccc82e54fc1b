package chrono

/*
diff.go contains the difference algorithms behind every Until and Since
method. A difference is always computed from the chronologically
earlier endpoint; a reversed request is the negation of the forward one
with the rounding mode negated.
*/

import "math/big"

/*
differenceISODateTime returns the calendar difference from a to b. The
time portion carries the sign of the date portion. When largest is
finer than [Day] the days are folded into the time portion.
*/
func differenceISODateTime(a, b ISODateTime, cal Calendar, largest Unit) (dateDuration, *big.Int, error) {
	timeNs := b.NanosecondOfDay() - a.NanosecondOfDay()
	timeSign := signOf(timeNs)
	end := b.ISODate
	if dateSign := b.ISODate.Compare(a.ISODate); timeSign != 0 && timeSign == -dateSign {
		end = end.AddDays(int64(timeSign))
		timeNs -= int64(timeSign) * NanosecondsPerDay
	}

	dur, err := cal.DateUntil(a.ISODate, end, LargerUnit(Day, largest))
	if err != nil {
		return dateDuration{}, nil, err
	}
	dd := dur.date()
	t := newBigInt(timeNs)
	if largest < Day {
		t = mulAdd(newBigInt(dd.days), NanosecondsPerDay, t)
		dd.days = 0
	}
	return dd, t, nil
}

/*
differenceZoned returns the difference from a to b within tz. Years,
months and weeks follow the local calendar; days are measured by their
actual length; the remainder is exact nanoseconds.
*/
func differenceZoned(a, b Instant, tz *TimeZone, cal Calendar, largest Unit) (dateDuration, *big.Int, error) {
	ns := b.sub(a)
	if ns.Sign() == 0 || largest < Day {
		return dateDuration{}, ns, nil
	}

	dd, _, err := differenceISODateTime(tz.localDateTime(a), tz.localDateTime(b), cal, largest)
	if err != nil {
		return dd, nil, err
	}
	mid, err := addZoned(a, tz, cal, dateDuration{years: dd.years, months: dd.months, weeks: dd.weeks}, nil)
	if err != nil {
		return dd, nil, err
	}
	days, rem, _, err := nanosecondsToDays(b.sub(mid), zonedAnchorAt(mid, tz, cal))
	dd.days = days
	debugDiff("zoned", a, b, largest, dd.days)
	return dd, rem, err
}

/*
diffOptions validates the unit options of a difference request and
returns the largest unit and rounding spec. minUnit, when not unitAuto,
is the finest unit the operands can express.
*/
func diffOptions(cfg *opConfig, autoLargest, defSmallest, minUnit, maxUnit Unit) (largest Unit, spec RoundingSpec, err error) {
	if spec, err = cfg.roundingSpec(defSmallest); err != nil {
		return
	}
	if largest, err = cfg.largestUnit(autoLargest, spec.Unit); err != nil {
		return
	}
	if spec.Unit < minUnit || largest > maxUnit {
		err = rangeErrorf("units ", spec.Unit, " through ", largest,
			" are outside of ", minUnit, " through ", maxUnit)
	}
	return
}

/*
diffPlain returns the rounded, balanced difference from a to b.
*/
func diffPlain(a, b ISODateTime, cal Calendar, largest Unit, spec RoundingSpec) (d Duration, err error) {
	if a.Compare(b) > 0 {
		spec.Mode = spec.Mode.Negate()
		d, err = diffPlain(b, a, cal, largest, spec)
		return d.Negated(), err
	}
	debugEnter("diffPlain", a, b, largest, spec)
	defer func() { debugExit(d, err) }()

	dd, timeNs, err := differenceISODateTime(a, b, cal, largest)
	if err != nil {
		return
	}
	an := &anchor{dt: a, cal: cal}
	if !spec.isNoop() {
		if dd, timeNs, _, err = roundDuration(dd, timeNs, spec, an); err != nil {
			return
		}
	}
	var tp timeParts
	if dd.days, tp, err = balanceTime(dd.days, timeNs, largest, nil); err != nil {
		return
	}
	if dd, err = balanceRelative(dd, largest, an); err != nil {
		return
	}
	return durationFrom(dd, tp)
}

/*
diffExact returns the rounded, balanced difference of two instants
expressed in units no larger than an hour.
*/
func diffExact(a, b Instant, largest Unit, spec RoundingSpec) (Duration, error) {
	ns := b.sub(a)
	if !spec.isNoop() {
		q, err := spec.Apply(new(big.Rat).SetFrac(ns, newBigInt(nanoIn[spec.Unit])))
		if err != nil {
			return Duration{}, err
		}
		ns = q.Mul(q, newBigInt(nanoIn[spec.Unit]))
	}
	_, tp, err := balanceTime(0, ns, largest, nil)
	if err != nil {
		return Duration{}, err
	}
	debugDiff("exact", a, b, largest)
	return durationFrom(dateDuration{}, tp)
}

/*
diffZoned returns the rounded, balanced difference from a to b within
tz with days measured by their actual length.
*/
func diffZoned(a, b Instant, tz *TimeZone, cal Calendar, largest Unit, spec RoundingSpec) (d Duration, err error) {
	if largest < Day {
		return diffExact(a, b, largest, spec)
	}
	if a.Compare(b) > 0 {
		spec.Mode = spec.Mode.Negate()
		d, err = diffZoned(b, a, tz, cal, largest, spec)
		return d.Negated(), err
	}
	debugEnter("diffZoned", a, b, largest, spec)
	defer func() { debugExit(d, err) }()

	dd, rem, err := differenceZoned(a, b, tz, cal, largest)
	if err != nil {
		return
	}
	an := zonedAnchorAt(a, tz, cal)
	if !spec.isNoop() {
		if dd, rem, _, err = roundDuration(dd, rem, spec, an); err != nil {
			return
		}
		if dd, rem, err = adjustRoundedDurationDays(dd, rem, spec, an); err != nil {
			return
		}
	}
	var inter *anchor
	if inter, err = an.moved(dateDuration{years: dd.years, months: dd.months, weeks: dd.weeks}); err != nil {
		return
	}
	var tp timeParts
	if dd.days, tp, err = balanceTime(dd.days, rem, largest, inter); err != nil {
		return
	}
	if dd, err = balanceRelative(dd, largest, an); err != nil {
		return
	}
	return durationFrom(dd, tp)
}

/*
Diff returns the [Duration] from a to b. It is equivalent to
[PlainDateTime.Until].

The difference is always measured from the earlier of a and b, so
b.Add(Diff(b, a)) == a holds whenever b is not after a. When a is after
b and the result carries months or years, adding it to a may not land
on b: Diff(2024-03-31, 2024-02-29) is -P1M2D, measured forward from
February 29, while 2024-03-31 minus P1M2D is 2024-02-27. Fixed-ratio
largest units are not affected.
*/
func Diff(a, b PlainDateTime, options ...Option) (Duration, error) {
	return a.Until(b, options...)
}

/*
ZonedDiff returns the [Duration] from a to b. It is equivalent to
[ZonedDateTime.Until].
*/
func ZonedDiff(a, b ZonedDateTime, options ...Option) (Duration, error) {
	return a.Until(b, options...)
}

// InstantDiff returns the [Duration] from a to b. See [Instant.Until].
func InstantDiff(a, b Instant, options ...Option) (Duration, error) {
	return a.Until(b, options...)
}
