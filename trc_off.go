//go:build !chrono_debug

package chrono

type DefaultTracer struct{}

func debugEnter(_ ...any)               {}
func debugExit(_ ...any)                {}
func debugEvent(_ EventType, _ ...any)  {}
func debugInfo(_ ...any)                {}
func debugIO(_ ...any)                  {}
func debugCalendar(_ ...any)            {}
func debugDuration(_ ...any)            {}
func debugRounding(_ ...any)            {}
func debugDiff(_ ...any)                {}
func debugZone(_ ...any)                {}
func debugCache(_ ...any)               {}
func debugPerf(_ ...any)                {}
func debugTrace(_ ...any)               {}
func debugPath(_ ...any) func(_ ...any) { return func(_ ...any) {} }
