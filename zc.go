package chrono

/*
zc.go contains ZoneCache, a concurrent memo of time zones keyed by
identifier.
*/

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

/*
ZoneLoader constructs the [TransitionProvider] of a named zone. It is
called at most once per identifier for each successful load.
*/
type ZoneLoader func(id string) (TransitionProvider, error)

/*
LoadLocationProvider is the default [ZoneLoader]. It resolves id through
the tz database available to [time.LoadLocation].
*/
func LoadLocationProvider(id string) (TransitionProvider, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, errorUnknownZone.detail(id)
	}
	return NewLocationProvider(loc)
}

/*
ZoneCache resolves zone identifiers to shared *[TimeZone] instances.
Named zones are keyed by their exact spelling, as handed to the loader,
so a lookup never depends on which spellings were loaded before it.
"UTC" alone matches regardless of case. Concurrent first lookups of one
identifier share a single load, and the first stored zone wins. Fixed
offset identifiers such as "+05:30" are constructed directly and never
cached. Failed loads are not cached.
*/
type ZoneCache struct {
	loader  ZoneLoader
	metrics *ZoneCacheMetrics
	zones   sync.Map // id -> *TimeZone
	group   singleflight.Group
}

/*
ZoneCacheOption implements a closure function signature which configures
a [ZoneCache] at construction.
*/
type ZoneCacheOption func(*ZoneCache)

/*
WithZoneLoader returns a [ZoneCacheOption] replacing the default loader.
*/
func WithZoneLoader(l ZoneLoader) ZoneCacheOption {
	return func(r *ZoneCache) {
		if l != nil {
			r.loader = l
		}
	}
}

/*
WithZoneCacheMetrics returns a [ZoneCacheOption] attaching m.
*/
func WithZoneCacheMetrics(m *ZoneCacheMetrics) ZoneCacheOption {
	return func(r *ZoneCache) { r.metrics = m }
}

/*
NewZoneCache returns an empty instance of *[ZoneCache] with "UTC"
preloaded.
*/
func NewZoneCache(options ...ZoneCacheOption) *ZoneCache {
	r := &ZoneCache{loader: LoadLocationProvider}
	for _, opt := range options {
		opt(r)
	}
	r.preload()
	return r
}

func (r *ZoneCache) preload() { r.zones.Store(`UTC`, UTC()) }

/*
zoneKey returns the cache key of id. Only the UTC identifier is
normalized; every other spelling is passed to the loader verbatim.
*/
func zoneKey(id string) string {
	if streqf(id, `UTC`) {
		return `UTC`
	}
	return id
}

/*
TimeZone returns the *[TimeZone] identified by id.
*/
func (r *ZoneCache) TimeZone(id string) (*TimeZone, error) {
	id = trimS(id)
	if id == `` {
		return nil, errorEmptyZoneID
	}
	if m, ok := ParseOffset(id); ok {
		return FixedTimeZone(m), nil
	}

	key := zoneKey(id)
	if tz, ok := r.zones.Load(key); ok {
		r.metrics.hit()
		debugCache("hit", key)
		return tz.(*TimeZone), nil
	}
	r.metrics.miss()

	v, err, shared := r.group.Do(key, func() (any, error) {
		if tz, ok := r.zones.Load(key); ok {
			return tz, nil
		}
		start := time.Now()
		p, err := r.loader(id)
		if err == nil && p == nil {
			err = errorNilProvider
		}
		r.metrics.observeLoad(start, err)
		debugPerf("zone load", id, time.Since(start))
		if err != nil {
			return nil, err
		}
		tz, _ := r.zones.LoadOrStore(key, &TimeZone{id: id, provider: p})
		return tz, nil
	})
	debugCache("load", key, shared, err)
	if err != nil {
		return nil, err
	}
	return v.(*TimeZone), nil
}

/*
Len returns the number of cached zones.
*/
func (r *ZoneCache) Len() (n int) {
	r.zones.Range(func(_, _ any) bool {
		n++
		return true
	})
	return
}

/*
Reset discards every cached zone except "UTC".
*/
func (r *ZoneCache) Reset() {
	r.zones.Range(func(k, _ any) bool {
		r.zones.Delete(k)
		return true
	})
	r.preload()
	debugCache("reset")
}
