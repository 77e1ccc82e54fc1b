package chrono

/*
constr.go contains constraint and constraint group components which
serve to bound field values and user-supplied temporal values.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum. The
name labels the value in the resulting range error.
*/
func RangeConstraint[T constraints.Ordered](name string, min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = errorFieldRange(name, any(val), any(min), any(max))
		}
		return
	}
}

// PropertyConstraint returns a Constraint that applies a user-defined check function.
// That function should return nil if the property is satisfied or an error otherwise.
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}

/*
DateRangeConstraint returns a [Constraint] which rejects any [PlainDate]
falling before min or after max.
*/
func DateRangeConstraint(min, max PlainDate) Constraint[PlainDate] {
	return func(val PlainDate) error {
		if val.Compare(min) < 0 || val.Compare(max) > 0 {
			return rangeErrorf("date ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

/*
InstantRangeConstraint returns a [Constraint] which rejects any [Instant]
falling before min or after max.
*/
func InstantRangeConstraint(min, max Instant) Constraint[Instant] {
	return func(val Instant) error {
		if val.Compare(min) < 0 || val.Compare(max) > 0 {
			return rangeErrorf("instant ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

/*
WeekdayConstraint returns a [Constraint] which accepts only dates whose
ISO weekday (Monday is 1) appears in days.
*/
func WeekdayConstraint(days ...int) Constraint[PlainDate] {
	return func(val PlainDate) error {
		dow := val.ISO().DayOfWeek()
		for _, d := range days {
			if d == dow {
				return nil
			}
		}
		return rangeErrorf("date ", val.String(), " falls on disallowed weekday ", dow)
	}
}

/*
Union returns an instance of [Constraint] which is satisfied when at least
one (1) of cs is satisfied. Essentially, this is an "OR"ed operation.
*/
func Union[T any](cs ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for _, c := range cs {
			if err = c(x); err == nil {
				return
			}
		}
		return rangeErrorf("union failed all ", len(cs), " constraints")
	}
}

/*
Intersection returns an instance of [Constraint] which is satisfied when
all of cs are satisfied. Essentially, this is an "AND"ed operation.
*/
func Intersection[T any](cs ...Constraint[T]) Constraint[T] {
	return func(x T) error { return ConstraintGroup[T](cs).Constrain(x) }
}
