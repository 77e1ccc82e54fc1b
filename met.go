package chrono

/*
met.go contains the Prometheus instrumentation of the zone cache.
*/

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

/*
ZoneCacheMetrics provides observability for a [ZoneCache]: hit and miss
counts, provider constructions, load failures and load latency.
*/
type ZoneCacheMetrics struct {
	Hits          prometheus.Counter
	Misses        prometheus.Counter
	Constructions prometheus.Counter
	Failures      prometheus.Counter
	LoadDuration  prometheus.Histogram
}

/*
NewZoneCacheMetrics returns an instance of *[ZoneCacheMetrics] with its
collectors registered on reg. A nil reg leaves them unregistered.
*/
func NewZoneCacheMetrics(reg prometheus.Registerer) *ZoneCacheMetrics {
	f := promauto.With(reg)
	return &ZoneCacheMetrics{
		Hits: f.NewCounter(prometheus.CounterOpts{
			Name: "chrono_zone_cache_hits_total",
			Help: "Total number of time zone lookups served from the cache",
		}),
		Misses: f.NewCounter(prometheus.CounterOpts{
			Name: "chrono_zone_cache_misses_total",
			Help: "Total number of time zone lookups not found in the cache",
		}),
		Constructions: f.NewCounter(prometheus.CounterOpts{
			Name: "chrono_zone_cache_constructions_total",
			Help: "Total number of transition providers constructed by the loader",
		}),
		Failures: f.NewCounter(prometheus.CounterOpts{
			Name: "chrono_zone_cache_failures_total",
			Help: "Total number of time zone loads which returned an error",
		}),
		LoadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "chrono_zone_cache_load_duration_seconds",
			Help:    "Duration of time zone provider loads",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

func (m *ZoneCacheMetrics) hit() {
	if m != nil {
		m.Hits.Inc()
	}
}

func (m *ZoneCacheMetrics) miss() {
	if m != nil {
		m.Misses.Inc()
	}
}

// observeLoad records one loader call started at start.
func (m *ZoneCacheMetrics) observeLoad(start time.Time, err error) {
	if m == nil {
		return
	}
	m.LoadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		m.Failures.Inc()
	} else {
		m.Constructions.Inc()
	}
}
