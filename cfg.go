package chrono

/*
cfg.go contains package-wide defaults, loaded from the environment at
init and overridable at runtime.
*/

import (
	"sync"

	"github.com/caarlos0/env/v11"
)

/*
Config holds the defaults applied when an operation is not given an
explicit [Option]. Each field may be set through the environment
variable named in its tag.
*/
type Config struct {
	Overflow         Overflow       `env:"CHRONO_OVERFLOW" envDefault:"constrain"`
	Disambiguation   Disambiguation `env:"CHRONO_DISAMBIGUATION" envDefault:"compatible"`
	RoundingMode     RoundingMode   `env:"CHRONO_ROUNDING_MODE" envDefault:"halfExpand"`
	DiffRoundingMode RoundingMode   `env:"CHRONO_DIFF_ROUNDING_MODE" envDefault:"trunc"`
	Calendar         string         `env:"CHRONO_CALENDAR" envDefault:"iso8601"`
}

/*
DefaultConfig returns the built-in defaults, ignoring the environment.
*/
func DefaultConfig() Config {
	return Config{
		Overflow:         Constrain,
		Disambiguation:   Compatible,
		RoundingMode:     HalfExpand,
		DiffRoundingMode: Trunc,
		Calendar:         `iso8601`,
	}
}

/*
LoadConfig returns a [Config] read from the environment. Unset variables
take their built-in defaults.
*/
func LoadConfig() (cfg Config, err error) {
	if cfg, err = env.ParseAs[Config](); err != nil {
		err = typeErrorf("config: ", err)
		return
	}
	if err = cfg.Validate(); err != nil {
		debugInfo("config rejected", err)
	}
	return
}

/*
LoadConfigFrom returns a [Config] read from the supplied environment map
instead of the process environment.
*/
func LoadConfigFrom(environ map[string]string) (cfg Config, err error) {
	if err = env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		err = typeErrorf("config: ", err)
		return
	}
	err = cfg.Validate()
	return
}

/*
Validate returns an error if the receiver names an unknown calendar or
holds an out-of-range enumeration value.
*/
func (r Config) Validate() error {
	if _, err := CalendarFrom(r.Calendar); err != nil {
		return err
	}
	if r.Overflow < Constrain || r.Overflow > Reject {
		return rangeErrorf("invalid overflow ", r.Overflow)
	}
	if r.Disambiguation < Compatible || r.Disambiguation > RejectAmbiguous {
		return rangeErrorf("invalid disambiguation ", r.Disambiguation)
	}
	for _, m := range []RoundingMode{r.RoundingMode, r.DiffRoundingMode} {
		if m < Ceil || m > HalfEven {
			return rangeErrorf("invalid rounding mode ", m)
		}
	}
	return nil
}

var (
	defaultsMu sync.RWMutex
	defaults   = DefaultConfig()
)

/*
Defaults returns the package defaults currently in force.
*/
func Defaults() Config {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

/*
SetDefaults replaces the package defaults with cfg after validating it.
*/
func SetDefaults(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	defaultsMu.Lock()
	defaults = cfg
	defaultsMu.Unlock()
	debugInfo("defaults updated", cfg.Calendar)
	return nil
}

/*
DefaultCalendar returns the [Calendar] named by the package defaults.
*/
func DefaultCalendar() Calendar {
	cal, err := CalendarFrom(Defaults().Calendar)
	if err != nil {
		return ISO()
	}
	return cal
}

func init() {
	if cfg, err := LoadConfig(); err == nil {
		_ = SetDefaults(cfg)
	}
}
