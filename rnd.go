package chrono

/*
rnd.go contains the rounding engine: exact rational rounding to an
increment under one of nine modes.
*/

import "math/big"

/*
RoundingMode selects how a value between two increments is resolved.
*/
type RoundingMode int

const (
	Ceil       RoundingMode = iota // toward positive infinity
	Floor                          // toward negative infinity
	Expand                         // away from zero
	Trunc                          // toward zero
	HalfCeil                       // nearest; ties toward positive infinity
	HalfFloor                      // nearest; ties toward negative infinity
	HalfExpand                     // nearest; ties away from zero
	HalfTrunc                      // nearest; ties toward zero
	HalfEven                       // nearest; ties toward the even multiple
)

var roundingModeNames = [...]string{
	Ceil:       `ceil`,
	Floor:      `floor`,
	Expand:     `expand`,
	Trunc:      `trunc`,
	HalfCeil:   `halfCeil`,
	HalfFloor:  `halfFloor`,
	HalfExpand: `halfExpand`,
	HalfTrunc:  `halfTrunc`,
	HalfEven:   `halfEven`,
}

func (r RoundingMode) String() string {
	if r < Ceil || r > HalfEven {
		return `invalid rounding mode`
	}
	return roundingModeNames[r]
}

/*
ParseRoundingMode returns the [RoundingMode] named by s, ignoring case.
*/
func ParseRoundingMode(s string) (RoundingMode, error) {
	for i, n := range roundingModeNames {
		if streqf(trimS(s), n) {
			return RoundingMode(i), nil
		}
	}
	return Trunc, rangeErrorf("unknown rounding mode ", s)
}

/*
UnmarshalText implements [encoding.TextUnmarshaler].
*/
func (r *RoundingMode) UnmarshalText(b []byte) (err error) {
	var m RoundingMode
	if m, err = ParseRoundingMode(string(b)); err == nil {
		*r = m
	}
	return
}

/*
Negate returns the mode which rounds a negated value to the negation of
the receiver's result. Directional modes swap; symmetric modes are
returned unchanged.
*/
func (r RoundingMode) Negate() RoundingMode {
	switch r {
	case Ceil:
		return Floor
	case Floor:
		return Ceil
	case HalfCeil:
		return HalfFloor
	case HalfFloor:
		return HalfCeil
	}
	return r
}

/*
RoundRat returns the multiple of increment nearest to value according
to mode. The computation is exact.
*/
func RoundRat(value *big.Rat, increment int64, mode RoundingMode) (*big.Int, error) {
	if increment < 1 {
		return nil, ErrInvalidIncrement.detail("increment ", increment, " is not positive")
	}

	inc := newBigInt(increment)
	n := value.Num()
	d := new(big.Int).Mul(value.Denom(), inc)
	q, rem := new(big.Int).QuoRem(n, d, new(big.Int))
	if rem.Sign() == 0 {
		return q.Mul(q, inc), nil
	}

	sign := int64(n.Sign())
	var step int64 // added to the truncated quotient
	switch mode {
	case Ceil:
		if sign > 0 {
			step = 1
		}
	case Floor:
		if sign < 0 {
			step = -1
		}
	case Expand:
		step = sign
	case Trunc:
	default:
		twice := new(big.Int).Abs(rem)
		twice.Lsh(twice, 1)
		switch twice.Cmp(d) {
		case 1:
			step = sign
		case 0:
			step = tieStep(mode, sign, q)
		}
	}

	q.Add(q, newBigInt(step))
	return q.Mul(q, inc), nil
}

func tieStep(mode RoundingMode, sign int64, q *big.Int) int64 {
	switch mode {
	case HalfCeil:
		if sign > 0 {
			return 1
		}
	case HalfFloor:
		if sign < 0 {
			return -1
		}
	case HalfExpand:
		return sign
	case HalfEven:
		if q.Bit(0) == 1 {
			return sign
		}
	}
	return 0
}

/*
Round returns the multiple of increment nearest to num/den according to
mode. den must not be zero.
*/
func Round(num, den, increment int64, mode RoundingMode) (int64, error) {
	if den == 0 {
		return 0, rangeErrorf("zero denominator")
	}
	q, err := RoundRat(new(big.Rat).SetFrac(newBigInt(num), newBigInt(den)), increment, mode)
	if err != nil {
		return 0, err
	}
	return bigInt64(q, "rounded value")
}

/*
RoundingSpec describes a validated rounding request.
*/
type RoundingSpec struct {
	Unit      Unit
	Increment int64
	Mode      RoundingMode
}

/*
NewRoundingSpec returns a validated instance of [RoundingSpec]. For units
finer than a day the increment must divide the count of the unit in the
next larger unit and be strictly smaller than it. Coarser units accept
any positive increment.
*/
func NewRoundingSpec(unit Unit, increment int64, mode RoundingMode) (spec RoundingSpec, err error) {
	if !unit.valid() {
		err = rangeErrorf("invalid rounding unit ", unit)
		return
	}
	if mode < Ceil || mode > HalfEven {
		err = rangeErrorf("invalid rounding mode ", mode)
		return
	}
	if err = validateIncrement(unit, increment, false); err == nil {
		spec = RoundingSpec{Unit: unit, Increment: increment, Mode: mode}
	}
	debugRounding("spec", unit, increment, mode, err)
	return
}

/*
validateIncrement checks increment against unit. When inclusive is
true the increment may equal the count in the next larger unit.
*/
func validateIncrement(unit Unit, increment int64, inclusive bool) error {
	if increment < 1 {
		return ErrInvalidIncrement.detail("increment ", increment, " is not positive")
	}
	max, ok := unit.roundingMaximum()
	if !ok {
		return nil
	}
	if (increment > max || increment == max && !inclusive) || max%increment != 0 {
		return ErrInvalidIncrement.detail(increment, " for unit ", unit)
	}
	return nil
}

/*
Apply rounds value, expressed in the receiver's unit, and returns the
rounded count of that unit.
*/
func (r RoundingSpec) Apply(value *big.Rat) (*big.Int, error) {
	return RoundRat(value, r.Increment, r.Mode)
}

func (r RoundingSpec) isNoop() bool {
	return r.Unit == Nanosecond && r.Increment == 1
}
