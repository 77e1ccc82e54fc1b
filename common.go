package chrono

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/cases"
)

/*
official import aliases.
*/
var (
	mkerr     func(string) error            = errors.New
	itoa      func(int) string              = strconv.Itoa
	atoi      func(string) (int, error)     = strconv.Atoi
	fmtInt    func(int64, int) string       = strconv.FormatInt
	uc        func(string) string           = strings.ToUpper
	join      func([]string, string) string = strings.Join
	trimSfx   func(string, string) string   = strings.TrimSuffix
	trimS     func(string) string           = strings.TrimSpace
	streqf    func(string, string) bool     = strings.EqualFold
	strrpt    func(string, int) string      = strings.Repeat
	newBigInt func(int64) *big.Int          = big.NewInt
)

/*
fold returns the caseless form of s. Calendar names, unit names and option
values are compared in this form.
*/
func fold(s string) string { return cases.Fold().String(trimS(s)) }

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
floorDiv returns the quotient of a and b rounded toward negative infinity.
*/
func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

/*
floorMod returns the remainder of a and b carrying the sign of b.
*/
func floorMod[T constraints.Signed](a, b T) T {
	return a - floorDiv(a, b)*b
}

func absInt[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

func signOf[T constraints.Signed | constraints.Float](a T) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

func maxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

/*
padInt writes n to b using at least width digits. Negative values
carry a leading hyphen outside of the padding.
*/
func padInt(b *strings.Builder, n int64, width int) {
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}
	s := fmtInt(n, 10)
	if pad := width - len(s); pad > 0 {
		b.WriteString(strrpt("0", pad))
	}
	b.WriteString(s)
}

/*
bigInt64 returns the int64 form of x, or a range error if x does
not fit.
*/
func bigInt64(x *big.Int, what string) (int64, error) {
	if !x.IsInt64() {
		return 0, rangeErrorf(what, " exceeds the representable range")
	}
	return x.Int64(), nil
}

/*
mulAdd returns a*b+c as a new *big.Int.
*/
func mulAdd(a *big.Int, b int64, c *big.Int) *big.Int {
	z := new(big.Int).Mul(a, newBigInt(b))
	if c != nil {
		z.Add(z, c)
	}
	return z
}
