package chrono

/*
evt.go contains EventType constants which are only meaningful when this
package is built or run with the "-tags chrono_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. See the
[EventType] constants for a full list.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags chrono_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter    EventType = 1 << iota //     1: Called-function begin
	EventInfo                           //     2: Interim function event
	EventExit                           //     4: Called function exit
	EventIO                             //     8: Called function inputs/outputs
	EventCalendar                       //    16: Field resolution and calendar arithmetic
	EventDuration                       //    32: Duration balancing
	EventRounding                       //    64: Rounding specs and results
	EventDiff                           //   128: Difference computation
	EventZone                           //   256: Offset resolution and transitions
	EventCache                          //   512: Zone cache hits, misses and loads
	EventPerf                           //  1024: Timing/microbenchmarks
	EventTrace                          //  2048: Low-level ops
	_                                   //  4096: unassigned
	_                                   //  8192: unassigned
	_                                   // 16384: unassigned
	_                                   // 32768: unassigned
)

var eventNames = map[int]string{
	int(EventAll):      "all",
	int(EventNone):     "none",
	int(EventEnter):    "enter",
	int(EventInfo):     "info",
	int(EventExit):     "exit",
	int(EventIO):       "io",
	int(EventCalendar): "calendar",
	int(EventDuration): "duration",
	int(EventRounding): "rounding",
	int(EventDiff):     "diff",
	int(EventZone):     "zone",
	int(EventCache):    "cache",
	int(EventPerf):     "perf",
	int(EventTrace):    "trace",
}

/*
String returns the name of a single-bit receiver, or the empty string.
*/
func (r EventType) String() string { return eventNames[int(r)] }
