package chrono

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
New York offsets from 2023 through early 2025, as epoch minutes.
*/
var newYorkTransitions = []Transition{
	{EpochMinutes: 27976740, Offset: -240}, // 2023-03-12T07:00Z
	{EpochMinutes: 28319400, Offset: -300}, // 2023-11-05T06:00Z
	{EpochMinutes: 28500900, Offset: -240}, // 2024-03-10T07:00Z
	{EpochMinutes: 28843560, Offset: -300}, // 2024-11-03T06:00Z
	{EpochMinutes: 29025060, Offset: -240}, // 2025-03-09T07:00Z
}

func newYork(t testing.TB) *TimeZone {
	t.Helper()
	p, err := NewTableProvider(-300, newYorkTransitions...)
	require.NoError(t, err)
	tz, err := NewTimeZone("America/New_York", p)
	require.NoError(t, err)
	return tz
}

func mustDateTime(t testing.TB, y, mo, d, h, mi int) PlainDateTime {
	t.Helper()
	dt, err := NewPlainDateTime(ISODate{y, mo, d}, ISOTime{Hour: h, Minute: mi}, nil)
	require.NoError(t, err)
	return dt
}

func mustInstant(t testing.TB, sec int64) Instant {
	t.Helper()
	i, err := NewInstant(sec, 0)
	require.NoError(t, err)
	return i
}

func TestTimeZone_offsets(t *testing.T) {
	tz := newYork(t)

	for _, tc := range []struct {
		sec    int64
		offset int
	}{
		{1710054000 - 1, -300}, // one second before spring forward
		{1710054000, -240},
		{1730613600 - 1, -240},
		{1730613600, -300},
		{0, -300},
	} {
		got := tz.OffsetMinutesFor(mustInstant(t, tc.sec))
		assert.Equalf(t, tc.offset, got, "%s failed at %d", t.Name(), tc.sec)
	}
	assert.Equal(t, int64(-240)*nanoIn[Minute], tz.OffsetNanosecondsFor(mustInstant(t, 1710054000)))
}

func TestTimeZone_gap(t *testing.T) {
	tz := newYork(t)
	dt := mustDateTime(t, 2024, 3, 10, 2, 30)

	res, err := tz.Resolve(dt.ISO())
	require.NoError(t, err)
	require.Equal(t, Gap, res.State)
	require.Len(t, res.Candidates, 2)

	for _, tc := range []struct {
		d    Disambiguation
		want string
	}{
		{Compatible, "2024-03-10T03:30:00"},
		{Later, "2024-03-10T03:30:00"},
		{Earlier, "2024-03-10T01:30:00"},
	} {
		i, err := tz.InstantFor(dt, WithDisambiguation(tc.d))
		require.NoErrorf(t, err, "%s failed for %s", t.Name(), tc.d)
		got := tz.PlainDateTimeFor(i, nil).ISO().String()
		assert.Equalf(t, tc.want, got, "%s failed for %s", t.Name(), tc.d)
	}

	_, err = tz.InstantFor(dt, WithDisambiguation(RejectAmbiguous))
	assert.ErrorIs(t, err, ErrAmbiguous)
	assert.ErrorIs(t, err, ErrRange)

	assert.Empty(t, tz.PossibleInstantsFor(dt))
}

func TestTimeZone_overlap(t *testing.T) {
	tz := newYork(t)
	dt := mustDateTime(t, 2024, 11, 3, 1, 30)

	insts := tz.PossibleInstantsFor(dt)
	require.Len(t, insts, 2)
	assert.Equal(t, "3600000000000", insts[1].sub(insts[0]).String())
	assert.Equal(t, -240, tz.OffsetMinutesFor(insts[0]))
	assert.Equal(t, -300, tz.OffsetMinutesFor(insts[1]))

	earlier, err := tz.InstantFor(dt, WithDisambiguation(Earlier))
	require.NoError(t, err)
	compat, err := tz.InstantFor(dt)
	require.NoError(t, err)
	later, err := tz.InstantFor(dt, WithDisambiguation(Later))
	require.NoError(t, err)

	assert.True(t, earlier.Equals(insts[0]))
	assert.True(t, compat.Equals(insts[0]))
	assert.True(t, later.Equals(insts[1]))

	_, err = tz.InstantFor(dt, WithDisambiguation(RejectAmbiguous))
	assert.True(t, errors.Is(err, ErrAmbiguous))
}

func TestTimeZone_unambiguous(t *testing.T) {
	tz := newYork(t)
	dt := mustDateTime(t, 2024, 7, 4, 12, 0)
	insts := tz.PossibleInstantsFor(dt)
	require.Len(t, insts, 1)
	assert.Equal(t, "2024-07-04T16:00:00Z", insts[0].String())

	i, err := tz.InstantFor(dt, WithDisambiguation(RejectAmbiguous))
	require.NoError(t, err)
	assert.True(t, i.Equals(insts[0]))
}

func TestTimeZone_closeTransitions(t *testing.T) {
	// +01:00 from 10:00Z to 20:00Z only
	p, err := NewTableProvider(0, Transition{600, 60}, Transition{1200, 0})
	require.NoError(t, err)
	tz, err := NewTimeZone("Etc/Brief", p)
	require.NoError(t, err)

	for _, tc := range []struct {
		h, m  int
		state ResolutionState
		want  []string
	}{
		{10, 30, Gap, []string{"1970-01-01T09:30:00Z", "1970-01-01T10:30:00Z"}},
		{15, 0, Unambiguous, []string{"1970-01-01T14:00:00Z"}},
		{20, 30, Overlap, []string{"1970-01-01T19:30:00Z", "1970-01-01T20:30:00Z"}},
		{9, 59, Unambiguous, []string{"1970-01-01T09:59:00Z"}},
	} {
		dt := mustDateTime(t, 1970, 1, 1, tc.h, tc.m)
		res, err := tz.Resolve(dt.ISO())
		require.NoError(t, err)
		assert.Equalf(t, tc.state, res.State, "%s failed for %s", t.Name(), dt)
		var got []string
		for _, c := range res.Candidates {
			got = append(got, c.String())
		}
		assert.Equalf(t, tc.want, got, "%s failed for %s", t.Name(), dt)
	}

	// every possible instant reads back as the local time it came from
	for m := 0; m < 2*1440; m += 15 {
		dt := mustDateTime(t, 1970, 1, 1+m/1440, m%1440/60, m%60)
		for _, i := range tz.PossibleInstantsFor(dt) {
			assert.Equalf(t, dt.ISO(), tz.PlainDateTimeFor(i, nil).ISO(), "%s failed for %s", t.Name(), dt)
		}
	}
}

func TestTimeZone_transitions(t *testing.T) {
	tz := newYork(t)

	next, ok := tz.NextTransition(mustInstant(t, 1704067200)) // 2024-01-01T00:00Z
	require.True(t, ok)
	assert.Equal(t, "2024-03-10T07:00:00Z", next.String())

	// strictly after
	again, ok := tz.NextTransition(next)
	require.True(t, ok)
	assert.Equal(t, "2024-11-03T06:00:00Z", again.String())

	prev, ok := tz.PreviousTransition(next)
	require.True(t, ok)
	assert.Equal(t, "2023-11-05T06:00:00Z", prev.String())

	// a sub-minute instant just after a transition still finds it
	sub, err := NewInstant(1710054000, 500)
	require.NoError(t, err)
	prev, ok = tz.PreviousTransition(sub)
	require.True(t, ok)
	assert.Equal(t, "2024-03-10T07:00:00Z", prev.String())

	_, ok = tz.NextTransition(mustInstant(t, 1741503600))
	assert.False(t, ok)
	_, ok = UTC().NextTransition(mustInstant(t, 0))
	assert.False(t, ok)
}

func TestTimeZone_construction(t *testing.T) {
	_, err := NewTimeZone(" ", FixedOffset(0))
	assert.ErrorIs(t, err, ErrType)
	_, err = NewTimeZone("Etc/Nowhere", nil)
	assert.ErrorIs(t, err, ErrType)

	assert.Equal(t, "+05:30", FixedTimeZone(330).ID())
	assert.Equal(t, "-03:00", FixedTimeZone(-180).String())
	assert.True(t, UTC().Equals(UTC()))
	assert.False(t, UTC().Equals(nil))

	_, err = NewTableProvider(0, Transition{10, 60}, Transition{10, 0})
	assert.ErrorIs(t, err, ErrRange)
}

func TestTableProvider_dropsNoOps(t *testing.T) {
	p, err := NewTableProvider(60, Transition{100, 60}, Transition{200, 120})
	require.NoError(t, err)
	m, ok := p.TransitionAt(0, 1)
	require.True(t, ok)
	assert.Equal(t, int64(200), m)
}

func TestParseOffset(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int
		ok   bool
	}{
		{"+05:30", 330, true},
		{"-0800", -480, true},
		{"+01", 60, true},
		{"-00:00", 0, true},
		{"+24:00", 0, false},
		{"05:30", 0, false},
		{"+5:30", 0, false},
		{"+05:3x", 0, false},
	} {
		got, ok := ParseOffset(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("%s failed [%s]:\n\twant: %d, %t\n\tgot:  %d, %t",
				t.Name(), tc.in, tc.want, tc.ok, got, ok)
		}
	}
}

func TestLocationProvider(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	p, err := NewLocationProvider(loc)
	require.NoError(t, err)
	assert.Same(t, loc, p.Location())

	jan := int64(1704067200 / 60)
	assert.Equal(t, -300, p.OffsetAt(jan))

	m, ok := p.TransitionAt(jan, 1)
	require.True(t, ok)
	assert.Equal(t, int64(28500900), m)

	m, ok = p.TransitionAt(int64(1717200000/60), -1) // 2024-06-01
	require.True(t, ok)
	assert.Equal(t, int64(28500900), m)

	tz, err := NewTimeZone("America/New_York", p)
	require.NoError(t, err)
	res, err := tz.Resolve(mustDateTime(t, 2024, 3, 10, 2, 30).ISO())
	require.NoError(t, err)
	assert.Equal(t, Gap, res.State)
	res, err = tz.Resolve(mustDateTime(t, 2024, 11, 3, 1, 30).ISO())
	require.NoError(t, err)
	assert.Equal(t, Overlap, res.State)

	_, err = NewLocationProvider(nil)
	assert.ErrorIs(t, err, ErrType)

	utc, err := NewLocationProvider(time.UTC)
	require.NoError(t, err)
	_, ok = utc.TransitionAt(0, 1)
	assert.False(t, ok)
}

func TestResolutionState_String(t *testing.T) {
	assert.Equal(t, "unambiguous", Unambiguous.String())
	assert.Equal(t, "gap", Gap.String())
	assert.Equal(t, "overlap", Overlap.String())
}
