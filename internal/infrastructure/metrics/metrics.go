package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the valuation engine.
type Metrics struct {
	// Report metrics
	ReportsComputed *prometheus.CounterVec
	ReportDuration  *prometheus.HistogramVec
	ReportRows      *prometheus.HistogramVec

	// Replay metrics
	ItemsReplayed        prometheus.Counter
	TransactionsReplayed prometheus.Counter
	LedgersComputed      prometheus.Counter

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	// Store metrics
	StoreQueries *prometheus.CounterVec
	StoreErrors  *prometheus.CounterVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all metrics and registers them on reg. Tests pass a fresh
// registry to avoid duplicate-registration panics.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Report metrics
		ReportsComputed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockval_reports_computed_total",
				Help: "Total number of reports computed by type",
			},
			[]string{"report"},
		),
		ReportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockval_report_duration_seconds",
				Help:    "Duration of report computations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		),
		ReportRows: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockval_report_rows",
				Help:    "Number of rows per computed report",
				Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
			},
			[]string{"report"},
		),

		// Replay metrics
		ItemsReplayed: factory.NewCounter(prometheus.CounterOpts{
			Name: "stockval_items_replayed_total",
			Help: "Total number of per-item replays executed",
		}),
		TransactionsReplayed: factory.NewCounter(prometheus.CounterOpts{
			Name: "stockval_transactions_replayed_total",
			Help: "Total number of transactions consumed by replays",
		}),
		LedgersComputed: factory.NewCounter(prometheus.CounterOpts{
			Name: "stockval_ledgers_computed_total",
			Help: "Total number of itemized ledgers reconstructed",
		}),

		// Cache metrics
		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockval_cache_hits_total",
				Help: "Total report cache hits by report type",
			},
			[]string{"report"},
		),
		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockval_cache_misses_total",
				Help: "Total report cache misses by report type",
			},
			[]string{"report"},
		),

		// Store metrics
		StoreQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockval_store_queries_total",
				Help: "Total ledger store queries by operation",
			},
			[]string{"operation"},
		),
		StoreErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockval_store_errors_total",
				Help: "Total ledger store errors by operation",
			},
			[]string{"operation"},
		),
	}
}
