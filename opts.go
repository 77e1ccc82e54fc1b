package chrono

/*
opts.go contains the functional options accepted by arithmetic,
difference, rounding and resolution operations.
*/

/*
Overflow selects how out-of-range calendar fields are handled.
*/
type Overflow int

const (
	Constrain Overflow = iota // clamp to the nearest valid value
	Reject                    // return a range error
)

func (r Overflow) String() (s string) {
	if s = `constrain`; r == Reject {
		s = `reject`
	}
	return
}

/*
UnmarshalText implements [encoding.TextUnmarshaler].
*/
func (r *Overflow) UnmarshalText(b []byte) error {
	switch fold(string(b)) {
	case `constrain`:
		*r = Constrain
	case `reject`:
		*r = Reject
	default:
		return rangeErrorf("unknown overflow ", string(b))
	}
	return nil
}

/*
Disambiguation selects how a local date-time which is skipped or
repeated in a time zone resolves to an instant.
*/
type Disambiguation int

const (
	Compatible Disambiguation = iota // earlier in overlaps; later in gaps
	Earlier
	Later
	RejectAmbiguous
)

var disambiguationNames = [...]string{
	Compatible:      `compatible`,
	Earlier:         `earlier`,
	Later:           `later`,
	RejectAmbiguous: `reject`,
}

func (r Disambiguation) String() string {
	if r < Compatible || r > RejectAmbiguous {
		return `invalid disambiguation`
	}
	return disambiguationNames[r]
}

/*
UnmarshalText implements [encoding.TextUnmarshaler].
*/
func (r *Disambiguation) UnmarshalText(b []byte) error {
	for i, n := range disambiguationNames {
		if fold(string(b)) == n {
			*r = Disambiguation(i)
			return nil
		}
	}
	return rangeErrorf("unknown disambiguation ", string(b))
}

/*
RelativeTo is qualified through [PlainDate], [PlainDateTime] and
[ZonedDateTime], each of which can anchor calendar-relative duration
arithmetic.
*/
type RelativeTo interface {
	relativeAnchor() *anchor
}

/*
Option implements a closure function signature which alters the
behavior of the operation to which it is supplied.
*/
type Option func(*opConfig)

type opConfig struct {
	overflow       Overflow
	disambiguation Disambiguation
	largest        Unit
	smallest       Unit
	increment      int64
	mode           RoundingMode
	relativeTo     *anchor
}

/*
newOpConfig returns an opConfig seeded from the package defaults, with
mode as the rounding mode unless an option overrides it.
*/
func newOpConfig(mode RoundingMode, options ...Option) *opConfig {
	d := Defaults()
	cfg := &opConfig{
		overflow:       d.Overflow,
		disambiguation: d.Disambiguation,
		largest:        unitAuto,
		smallest:       unitAuto,
		increment:      1,
		mode:           mode,
	}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

/*
With encapsulates any combination of [Overflow], [Disambiguation],
[RoundingMode] and [RelativeTo] values into a single [Option]. Values
of other types are ignored.
*/
func With(args ...any) Option {
	return func(cfg *opConfig) {
		for _, arg := range args {
			switch tv := arg.(type) {
			case Overflow:
				cfg.overflow = tv
			case Disambiguation:
				cfg.disambiguation = tv
			case RoundingMode:
				cfg.mode = tv
			case RelativeTo:
				cfg.relativeTo = tv.relativeAnchor()
			}
		}
	}
}

/*
WithOverflow returns an [Option] setting the field overflow behavior.
*/
func WithOverflow(o Overflow) Option { return func(cfg *opConfig) { cfg.overflow = o } }

/*
WithDisambiguation returns an [Option] setting the behavior used when a
local date-time is skipped or repeated.
*/
func WithDisambiguation(d Disambiguation) Option {
	return func(cfg *opConfig) { cfg.disambiguation = d }
}

/*
WithLargestUnit returns an [Option] naming the largest unit permitted in
a result. Absent this option the unit is derived from the operands.
*/
func WithLargestUnit(u Unit) Option { return func(cfg *opConfig) { cfg.largest = u } }

/*
WithSmallestUnit returns an [Option] naming the unit to which a result is
rounded.
*/
func WithSmallestUnit(u Unit) Option { return func(cfg *opConfig) { cfg.smallest = u } }

// WithRoundingIncrement returns an [Option] setting the rounding increment.
func WithRoundingIncrement(n int64) Option { return func(cfg *opConfig) { cfg.increment = n } }

// WithRoundingMode returns an [Option] setting the rounding mode.
func WithRoundingMode(m RoundingMode) Option { return func(cfg *opConfig) { cfg.mode = m } }

/*
WithRelativeTo returns an [Option] anchoring duration arithmetic at r.
A nil r clears any anchor.
*/
func WithRelativeTo(r RelativeTo) Option {
	return func(cfg *opConfig) {
		cfg.relativeTo = nil
		if r != nil {
			cfg.relativeTo = r.relativeAnchor()
		}
	}
}

/*
roundingSpec validates and returns the rounding portion of the receiver,
substituting fallback when no smallest unit was given.
*/
func (r *opConfig) roundingSpec(fallback Unit) (RoundingSpec, error) {
	unit := r.smallest
	if unit == unitAuto {
		unit = fallback
	}
	return NewRoundingSpec(unit, r.increment, r.mode)
}

/*
largestUnit returns the configured largest unit, or auto when unset,
after checking it against smallest.
*/
func (r *opConfig) largestUnit(auto, smallest Unit) (Unit, error) {
	largest := r.largest
	if largest == unitAuto {
		largest = LargerUnit(auto, smallest)
	}
	if !largest.valid() {
		return largest, rangeErrorf("invalid largest unit ", largest)
	}
	if largest < smallest {
		return largest, errorUnitOrder.detail(largest, " < ", smallest)
	}
	return largest, nil
}
