package chrono

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"math/big"
	"sync"
)

/*
Error kind sentinels. Every error returned by this package matches
exactly one of these through [errors.Is].
*/
var (
	// ErrRange reports a value outside of its legal domain.
	ErrRange error = mkerr("range error")

	// ErrType reports a missing or ill-typed input.
	ErrType error = mkerr("type error")

	// ErrUsage reports an operation requested without the context it requires.
	ErrUsage error = mkerr("usage error")
)

/*
range errors.
*/
var (
	ErrAmbiguous        = rangeErr{e: mkerr("local date-time is ambiguous or skipped in time zone")}
	ErrMixedSigns       = rangeErr{e: mkerr("duration components have mixed signs")}
	ErrInvalidIncrement = rangeErr{e: mkerr("rounding increment is invalid for unit")}
	ErrOutOfRange       = rangeErr{e: mkerr("value is outside of the supported range")}
	errorUnitOrder      = rangeErr{e: mkerr("largest unit is smaller than smallest unit")}
	errorUnknownZone    = rangeErr{e: mkerr("unknown or invalid time zone identifier")}
)

/*
type errors.
*/
var (
	ErrMissingField  = typeErr{e: mkerr("required field is missing")}
	errorNilTimeZone = typeErr{e: mkerr("nil time zone")}
	errorNilProvider = typeErr{e: mkerr("nil transition provider")}
	errorEmptyZoneID = typeErr{e: mkerr("empty time zone identifier")}
	errorEraPair     = typeErr{e: mkerr("era and eraYear must be supplied together")}
)

/*
usage errors.
*/
var (
	ErrRelativeToRequired = usageErr{e: mkerr("a relativeTo anchor is required to balance years, months or weeks")}
	errorZoneMismatch     = usageErr{e: mkerr("date units require both zoned values to share a time zone")}
)

/*
types which implement the error interface.
*/
type (
	rangeErr struct{ e, cause error }
	typeErr  struct{ e, cause error }
	usageErr struct{ e, cause error }
)

func rangeErrorf(m ...any) error { return rangeErr{e: mkerrf(m...)} }
func typeErrorf(m ...any) error  { return typeErr{e: mkerrf(m...)} }

/*
detail returns a copy of sentinel r with m appended to its message.
The copy still satisfies errors.Is(copy, r).
*/
func (r rangeErr) detail(m ...any) error {
	return rangeErr{e: mkerrf(append([]any{r.e, ": "}, m...)...), cause: r.e}
}

func (r typeErr) detail(m ...any) error {
	return typeErr{e: mkerrf(append([]any{r.e, ": "}, m...)...), cause: r.e}
}

func (r usageErr) detail(m ...any) error {
	return usageErr{e: mkerrf(append([]any{r.e, ": "}, m...)...), cause: r.e}
}

func (r rangeErr) Error() string { return `RANGE ERROR: ` + r.e.Error() }
func (r typeErr) Error() string  { return `TYPE ERROR: ` + r.e.Error() }
func (r usageErr) Error() string { return `USAGE ERROR: ` + r.e.Error() }

func (r rangeErr) Unwrap() error { return r.e }
func (r typeErr) Unwrap() error  { return r.e }
func (r usageErr) Unwrap() error { return r.e }

func (r rangeErr) Is(target error) bool {
	if t, ok := target.(rangeErr); ok {
		return t.e == r.e || (r.cause != nil && t.e == r.cause)
	}
	return target == ErrRange
}

func (r typeErr) Is(target error) bool {
	if t, ok := target.(typeErr); ok {
		return t.e == r.e || (r.cause != nil && t.e == r.cause)
	}
	return target == ErrType
}

func (r usageErr) Is(target error) bool {
	if t, ok := target.(usageErr); ok {
		return t.e == r.e || (r.cause != nil && t.e == r.cause)
	}
	return target == ErrUsage
}

func errorMissingField(name string) error {
	return ErrMissingField.detail(name)
}

func errorFieldRange(name string, val, min, max any) error {
	return rangeErrorf(name, " ", val, " is out of range [", min, ", ", max, "]")
}

/*
errCache holds errors built from a single static string. Composed
messages embed caller values and are never cached.
*/
var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
			v, _ := errCache.LoadOrStore(s, mkerr(s))
			return v.(error)
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		case *big.Int:
			b.WriteString(v.String())
		case interface{ String() string }:
			b.WriteString(v.String())
		default:
			b.WriteString("<not supported>")
		}
	}
	return mkerr(b.String())
}
