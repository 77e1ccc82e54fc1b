//go:build chrono_debug

package chrono

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

/*
EnvDebugVar defines the environment variable name which can be used to
enable the [DefaultTracer] at startup. Its value is a comma-separated
list of level names or integers, such as "enter,exit,zone" or "-1" for
all levels.

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "CHRONO_DEBUG"

const coreTracerMask = EventEnter | EventInfo | EventExit

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
	ll loglevels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer] which writes
to writer.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{w: writer, ll: newLoglevels()}
}

/*
EnableLevel adds [EventType] ev to the levels written by the receiver.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.ll.Shift(int(ev)) }

/*
DisableLevel removes [EventType] ev from the levels written by the
receiver.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.ll.Unshift(int(ev)) }

/*
Enabled returns a Boolean value indicative of ev being enabled within
the receiver instance.
*/
func (r *DefaultTracer) Enabled(ev EventType) bool { return r.ll.Positive(int(ev)) }

/*
Trace writes [TraceRecord] rec to the receiver's writer.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.ll.Positive(int(rec.Type)) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Time.Format("15:04:05.000")
	fn := trimFuncName(rec.Func)

	switch rec.Type & coreTracerMask {
	case EventEnter:
		r.write(ts+" → "+fn+"(", rec.Args, ")\n")
	case EventExit:
		r.write(ts+" ← "+fn+" => ", rec.Ret, "\n")
	default:
		r.write(ts+"     • "+fn+" ["+rec.Type.String()+"]: ", rec.Args, "\n")
	}
}

func (r *DefaultTracer) write(head string, args []any, tail string) {
	b := newStrBuilder()
	b.WriteString(head)
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmtArg(a))
	}
	b.WriteString(tail)
	io.WriteString(r.w, b.String())
}

func trimFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	return strings.TrimPrefix(full, "go-chrono.")
}

/*
SlogTracer is a [Tracer] which emits each [TraceRecord] as a debug-level
record of a *[slog.Logger], for use where the host process already
routes structured logs.
*/
type SlogTracer struct {
	l  *slog.Logger
	ll loglevels
}

/*
NewSlogTracer returns an instance of *[SlogTracer] writing to l, or to
[slog.Default] when l is nil, with levels enabled.
*/
func NewSlogTracer(l *slog.Logger, levels ...EventType) *SlogTracer {
	if l == nil {
		l = slog.Default()
	}
	r := &SlogTracer{l: l, ll: newLoglevels()}
	for _, ev := range levels {
		r.ll.Shift(int(ev))
	}
	return r
}

func (r *SlogTracer) Enabled(ev EventType) bool { return r.ll.Positive(int(ev)) }

func (r *SlogTracer) Trace(rec TraceRecord) {
	if !r.Enabled(rec.Type) {
		return
	}
	vals := rec.Args
	if rec.Type == EventExit {
		vals = rec.Ret
	}
	attrs := []slog.Attr{
		slog.String("func", trimFuncName(rec.Func)),
		slog.String("event", rec.Type.String()),
	}
	if len(vals) > 0 {
		args := make([]string, len(vals))
		for i, v := range vals {
			args[i] = fmtArg(v)
		}
		attrs = append(attrs, slog.Any("args", args))
	}
	r.l.LogAttrs(context.Background(), slog.LevelDebug, "chrono", attrs...)
}

/*
TraceRecord encapsulates one event observed by a [Tracer].
*/
type TraceRecord struct {
	Time time.Time // timestamp
	Type EventType // event kind
	Func string    // FuncName -or- TypeName.MethodName
	Args []any     // On Enter or Info: arguments
	Ret  []any     // On Exit: return values (last entry may be error)
}

/*
Tracer implements an interface tracer type, which is implemented by
[DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] t.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = discardTracer{}
)

type discardTracer struct{}

func (discardTracer) Trace(TraceRecord)      {}
func (discardTracer) Enabled(EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	withIO := true
	if lt, ok := t.(levelTracer); ok {
		if !lt.Enabled(level) {
			return
		}
		withIO = lt.Enabled(EventIO)
	}

	rec := TraceRecord{Time: time.Now(), Type: level, Func: callerName()}
	if withIO {
		if level == EventExit {
			rec.Ret = args
		} else {
			rec.Args = args
		}
	}
	t.Trace(rec)
}

func callerName() string {
	pcs := make([]uintptr, 10)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		name := fr.Function
		if i := strings.LastIndex(name, ".func"); i > 0 {
			name = name[:i]
		}
		if !strings.Contains(name, ".debug") {
			return name
		}
		if !more {
			break
		}
	}
	return "unknown"
}

func debugPath(args ...any) func(rets ...any) {
	debugEvent(EventEnter, args...)
	return func(rets ...any) { debugEvent(EventExit, rets...) }
}

func debugEnter(args ...any)    { debugEvent(EventEnter, args...) }
func debugExit(args ...any)     { debugEvent(EventExit, args...) }
func debugInfo(args ...any)     { debugEvent(EventInfo, args...) }
func debugIO(args ...any)       { debugEvent(EventIO, args...) }
func debugCalendar(args ...any) { debugEvent(EventCalendar, args...) }
func debugDuration(args ...any) { debugEvent(EventDuration, args...) }
func debugRounding(args ...any) { debugEvent(EventRounding, args...) }
func debugDiff(args ...any)     { debugEvent(EventDiff, args...) }
func debugZone(args ...any)     { debugEvent(EventZone, args...) }
func debugCache(args ...any)    { debugEvent(EventCache, args...) }
func debugPerf(args ...any)     { debugEvent(EventPerf, args...) }
func debugTrace(args ...any)    { debugEvent(EventTrace, args...) }

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case nil:
		s = "<nil>"
	case string:
		s = v
	case int:
		s = itoa(v)
	case int64:
		s = fmtInt(v, 10)
	case bool:
		s = bool2str(v)
	case *big.Int:
		s = "<nil big.Int>"
		if v != nil {
			s = v.String()
		}
	case *big.Rat:
		s = "<nil big.Rat>"
		if v != nil {
			s = v.RatString()
		}
	case error:
		s = "error: " + v.Error()
	case dateDuration:
		s = "P" + fmtInt(v.years, 10) + "Y" + fmtInt(v.months, 10) + "M" +
			fmtInt(v.weeks, 10) + "W" + fmtInt(v.days, 10) + "D"
	case RoundingSpec:
		s = v.Unit.String() + "/" + fmtInt(v.Increment, 10) + "/" + v.Mode.String()
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprintf("%T(%v)", v, v)
	}
	return
}

func init() {
	evar := os.Getenv(EnvDebugVar)
	if evar == "" {
		return
	}
	ll := newLoglevels()
	for _, sp := range strings.Split(evar, ",") {
		if n, err := atoi(trimS(sp)); err != nil {
			ll.Shift(sp)
		} else if n < 0 {
			ll.Shift(ll.Max())
		} else {
			ll.Shift(n)
		}
	}

	dt := NewDefaultTracer(os.Stderr)
	dt.ll = ll
	EnableDebug(dt)
	debugInfo("loglevels", join(ll.enabled(), `,`))
}
