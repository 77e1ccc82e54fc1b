package chrono

/*
tzp.go contains the built-in transition providers: fixed offsets,
explicit transition tables and the tz database through time.Location.
*/

import (
	"math"
	"sort"
	"strings"
	"time"
)

/*
maxOffsetMinutes bounds the absolute UTC offset of any zone. Only
transitions within this distance of a local minute can affect it.
*/
const maxOffsetMinutes = 1440

type offsetPeriod struct {
	start  int64 // first UTC minute; the first period is open
	offset int
}

/*
possibleOffsets derives OffsetsAt from the transitions of p near the
local minute. Each period whose offset reads back as local is a
candidate: one is unambiguous, two or more an overlap, and none a gap
bracketed by the transition local falls across.
*/
func possibleOffsets(p TransitionProvider, local int64) (base, diff int) {
	from := local - maxOffsetMinutes
	periods := []offsetPeriod{{start: math.MinInt64, offset: p.OffsetAt(from)}}
	for m, i := from, 0; i < maxZoneScan; i++ {
		t, ok := p.TransitionAt(m, 1)
		if !ok || t > local+maxOffsetMinutes {
			break
		}
		if off := p.OffsetAt(t); off != periods[len(periods)-1].offset {
			periods = append(periods, offsetPeriod{start: t, offset: off})
		}
		m = t
	}

	var valid []int
	for i, pr := range periods {
		e := local - int64(pr.offset)
		if e >= pr.start && (i+1 == len(periods) || e < periods[i+1].start) {
			valid = append(valid, pr.offset)
		}
	}

	switch len(valid) {
	case 0:
		for i := 1; i < len(periods); i++ {
			prev, next := periods[i-1].offset, periods[i].offset
			if t := periods[i].start; local-int64(prev) >= t && local-int64(next) < t {
				return prev, prev - next
			}
		}
		return periods[0].offset, 0
	case 1:
		return valid[0], 0
	}
	first, last := valid[0], valid[len(valid)-1]
	return first, first - last
}

/*
FixedOffset returns a [TransitionProvider] with a constant offset of
minutes and no transitions.
*/
func FixedOffset(minutes int) TransitionProvider { return fixedOffset(minutes) }

type fixedOffset int

func (r fixedOffset) OffsetAt(int64) int                    { return int(r) }
func (r fixedOffset) OffsetsAt(int64) (int, int)            { return int(r), 0 }
func (r fixedOffset) TransitionAt(int64, int) (int64, bool) { return 0, false }

/*
Transition is one entry of a [TableProvider]: from EpochMinutes onward
the zone observes Offset.
*/
type Transition struct {
	EpochMinutes int64
	Offset       int
}

/*
TableProvider is a [TransitionProvider] backed by an explicit, sorted
list of transitions.
*/
type TableProvider struct {
	initial     int
	transitions []Transition
}

/*
NewTableProvider returns an instance of *[TableProvider]. initial is the
offset before the first transition. Transitions must be strictly
ascending; entries which do not change the offset are dropped.
*/
func NewTableProvider(initial int, transitions ...Transition) (*TableProvider, error) {
	r := &TableProvider{initial: initial}
	prev := initial
	for i, t := range transitions {
		if i > 0 && t.EpochMinutes <= transitions[i-1].EpochMinutes {
			return nil, rangeErrorf("transitions are not strictly ascending at index ", i)
		}
		if t.Offset != prev {
			r.transitions = append(r.transitions, t)
			prev = t.Offset
		}
	}
	return r, nil
}

func (r *TableProvider) OffsetAt(m int64) int {
	i := sort.Search(len(r.transitions), func(i int) bool {
		return r.transitions[i].EpochMinutes > m
	})
	if i == 0 {
		return r.initial
	}
	return r.transitions[i-1].Offset
}

func (r *TableProvider) OffsetsAt(local int64) (int, int) {
	return possibleOffsets(r, local)
}

func (r *TableProvider) TransitionAt(m int64, direction int) (int64, bool) {
	if direction > 0 {
		i := sort.Search(len(r.transitions), func(i int) bool {
			return r.transitions[i].EpochMinutes > m
		})
		if i < len(r.transitions) {
			return r.transitions[i].EpochMinutes, true
		}
		return 0, false
	}
	i := sort.Search(len(r.transitions), func(i int) bool {
		return r.transitions[i].EpochMinutes >= m
	})
	if i > 0 {
		return r.transitions[i-1].EpochMinutes, true
	}
	return 0, false
}

/*
maxZoneScan bounds the zone periods examined per transition search, as
tz data may contain periods which change only the abbreviation.
*/
const maxZoneScan = 64

/*
LocationProvider is a [TransitionProvider] backed by a [time.Location].
Offsets are truncated to whole minutes.
*/
type LocationProvider struct {
	loc *time.Location
}

/*
NewLocationProvider returns an instance of *[LocationProvider].
*/
func NewLocationProvider(loc *time.Location) (*LocationProvider, error) {
	if loc == nil {
		return nil, errorNilProvider
	}
	return &LocationProvider{loc: loc}, nil
}

/*
Location returns the underlying [time.Location].
*/
func (r *LocationProvider) Location() *time.Location { return r.loc }

func offsetOf(t time.Time) int {
	_, sec := t.Zone()
	return sec / 60
}

func (r *LocationProvider) OffsetAt(m int64) int {
	return offsetOf(time.Unix(m*60, 0).In(r.loc))
}

func (r *LocationProvider) OffsetsAt(local int64) (int, int) {
	return possibleOffsets(r, local)
}

func (r *LocationProvider) TransitionAt(m int64, direction int) (int64, bool) {
	t := time.Unix(m*60, 0).In(r.loc)
	for i := 0; i < maxZoneScan; i++ {
		start, end := t.ZoneBounds()
		if direction > 0 {
			if end.IsZero() {
				return 0, false
			}
			if offsetOf(end) != offsetOf(t) {
				return floorDiv(end.Unix(), 60), true
			}
			t = end
			continue
		}

		if start.IsZero() {
			return 0, false
		}
		if floorDiv(start.Unix(), 60) >= m {
			t = start.Add(-time.Second)
			continue
		}
		before := start.Add(-time.Second)
		if offsetOf(before) != offsetOf(start) {
			return floorDiv(start.Unix(), 60), true
		}
		t = before
	}
	return 0, false
}

/*
ParseOffset reads a fixed offset identifier of the form "±HH:MM",
"±HHMM" or "±HH" and returns its minutes.
*/
func ParseOffset(s string) (minutes int, ok bool) {
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return
	}
	body := strings.Replace(s[1:], ":", "", 1)
	if len(body) != 2 && len(body) != 4 {
		return
	}
	for _, c := range body {
		if c < '0' || c > '9' {
			return
		}
	}
	h, _ := atoi(body[:2])
	var m int
	if len(body) == 4 {
		m, _ = atoi(body[2:])
	}
	if h > 23 || m > 59 {
		return
	}
	if minutes = h*60 + m; s[0] == '-' {
		minutes = -minutes
	}
	return minutes, true
}

/*
formatOffset returns minutes in "±HH:MM" form.
*/
func formatOffset(minutes int) string {
	b := newStrBuilder()
	if minutes < 0 {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	m := absInt(minutes)
	padInt(&b, int64(m/60), 2)
	b.WriteByte(':')
	padInt(&b, int64(m%60), 2)
	return b.String()
}
