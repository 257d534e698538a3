package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	UsersCreated  prometheus.Counter
	UsersDeleted  prometheus.Counter
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	StoreDuration prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "user_registry_users_created_total",
			Help: "Total number of users created",
		}),
		UsersDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "user_registry_users_deleted_total",
			Help: "Total number of users deleted",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "user_registry_cache_hits_total",
			Help: "Total number of user lookups served from the read cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "user_registry_cache_misses_total",
			Help: "Total number of user lookups that fell through to the store",
		}),
		StoreDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "user_registry_store_duration_seconds",
			Help:    "Duration of user store operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementUsersCreated() {
	m.UsersCreated.Inc()
}

func (m *Metrics) IncrementUsersDeleted() {
	m.UsersDeleted.Inc()
}

func (m *Metrics) IncrementCacheHit() {
	m.CacheHits.Inc()
}

func (m *Metrics) IncrementCacheMiss() {
	m.CacheMisses.Inc()
}

func (m *Metrics) ObserveStoreOp(start time.Time) {
	m.StoreDuration.Observe(time.Since(start).Seconds())
}
