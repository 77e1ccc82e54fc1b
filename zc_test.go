package chrono

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls atomic.Int64
	gate  chan struct{}
}

func (r *countingLoader) load(id string) (TransitionProvider, error) {
	r.calls.Add(1)
	if r.gate != nil {
		<-r.gate
	}
	if id == "Nowhere/Nothing" {
		return nil, errorUnknownZone.detail(id)
	}
	return NewTableProvider(-300, newYorkTransitions...)
}

func TestZoneCache_singleLoad(t *testing.T) {
	l := &countingLoader{gate: make(chan struct{})}
	zc := NewZoneCache(WithZoneLoader(l.load))

	const workers = 32
	var wg sync.WaitGroup
	zones := make([]*TimeZone, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			zones[i], errs[i] = zc.TimeZone("America/New_York")
		}(i)
	}
	close(l.gate)
	wg.Wait()

	assert.Equal(t, int64(1), l.calls.Load())
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, zones[0], zones[i])
	}
}

func TestZoneCache_exactSpelling(t *testing.T) {
	l := &countingLoader{}
	zc := NewZoneCache(WithZoneLoader(l.load))

	a, err := zc.TimeZone("America/New_York")
	require.NoError(t, err)
	b, err := zc.TimeZone("  America/New_York ")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, "America/New_York", b.ID())
	assert.Equal(t, int64(1), l.calls.Load())

	// another spelling is another key, handed to the loader as written
	c, err := zc.TimeZone("america/new_york")
	require.NoError(t, err)
	assert.Equal(t, "america/new_york", c.ID())
	assert.Equal(t, int64(2), l.calls.Load())

	utc, err := zc.TimeZone("utc")
	require.NoError(t, err)
	assert.Equal(t, "UTC", utc.ID())
	assert.Equal(t, int64(2), l.calls.Load())
}

func TestZoneCache_orderIndependent(t *testing.T) {
	zc := NewZoneCache()
	for idx, tc := range []struct {
		id string
		ok bool
	}{
		{"america/new_york", false},
		{"America/New_York", true},
		{"america/new_york", false},
		{"AMERICA/NEW_YORK", false},
		{"America/New_York", true},
	} {
		tz, err := zc.TimeZone(tc.id)
		if tc.ok {
			require.NoErrorf(t, err, "%s[%d] failed", t.Name(), idx)
			assert.Equal(t, "America/New_York", tz.ID())
		} else {
			assert.ErrorIsf(t, err, ErrRange, "%s[%d] failed", t.Name(), idx)
		}
	}
}

func TestZoneCache_fixedAndFailures(t *testing.T) {
	l := &countingLoader{}
	zc := NewZoneCache(WithZoneLoader(l.load))

	fixed, err := zc.TimeZone("+05:30")
	require.NoError(t, err)
	assert.Equal(t, 330, fixed.OffsetMinutesFor(Instant{}))
	assert.Equal(t, 1, zc.Len())

	_, err = zc.TimeZone("Nowhere/Nothing")
	assert.ErrorIs(t, err, ErrRange)
	_, err = zc.TimeZone("Nowhere/Nothing")
	assert.Error(t, err)
	assert.Equal(t, int64(2), l.calls.Load())

	_, err = zc.TimeZone("")
	assert.ErrorIs(t, err, ErrType)

	nilLoader := NewZoneCache(WithZoneLoader(func(string) (TransitionProvider, error) {
		return nil, nil
	}))
	_, err = nilLoader.TimeZone("Etc/Void")
	assert.True(t, errors.Is(err, ErrType))
}

func TestZoneCache_reset(t *testing.T) {
	l := &countingLoader{}
	zc := NewZoneCache(WithZoneLoader(l.load))
	_, err := zc.TimeZone("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, 2, zc.Len())

	zc.Reset()
	assert.Equal(t, 1, zc.Len())
	_, err = zc.TimeZone("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, int64(2), l.calls.Load())
}

func TestZoneCache_metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewZoneCacheMetrics(reg)
	l := &countingLoader{}
	zc := NewZoneCache(WithZoneLoader(l.load), WithZoneCacheMetrics(m))

	for i := 0; i < 3; i++ {
		_, err := zc.TimeZone("America/New_York")
		require.NoError(t, err)
	}
	_, _ = zc.TimeZone("Nowhere/Nothing")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Hits))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Misses))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Constructions))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Failures))
	assert.Equal(t, 1, testutil.CollectAndCount(m.LoadDuration))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestZoneCache_defaultLoader(t *testing.T) {
	zc := NewZoneCache()
	tz, err := zc.TimeZone("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, -240, tz.OffsetMinutesFor(mustInstant(t, 1720094400))) // 2024-07-04T12:00Z

	_, err = zc.TimeZone("Not/AZone")
	assert.ErrorIs(t, err, ErrRange)
}
