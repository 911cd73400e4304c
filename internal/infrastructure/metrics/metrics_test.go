package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewWith_RegistersAllMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWith(reg)

	if m.ReportsComputed == nil || m.ReportDuration == nil || m.ReportRows == nil {
		t.Fatal("report metrics not initialized")
	}
	if m.ItemsReplayed == nil || m.TransactionsReplayed == nil || m.LedgersComputed == nil {
		t.Fatal("replay metrics not initialized")
	}
	if m.CacheHits == nil || m.CacheMisses == nil {
		t.Fatal("cache metrics not initialized")
	}
	if m.StoreQueries == nil || m.StoreErrors == nil {
		t.Fatal("store metrics not initialized")
	}
}

func TestMetrics_CountersIncrement(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())

	m.ReportsComputed.WithLabelValues("stock").Inc()
	m.ReportsComputed.WithLabelValues("stock").Inc()
	m.ItemsReplayed.Add(5)
	m.CacheHits.WithLabelValues("balance").Inc()

	if got := testutil.ToFloat64(m.ReportsComputed.WithLabelValues("stock")); got != 2 {
		t.Errorf("expected 2 stock reports, got %v", got)
	}
	if got := testutil.ToFloat64(m.ItemsReplayed); got != 5 {
		t.Errorf("expected 5 items replayed, got %v", got)
	}
	if got := testutil.ToFloat64(m.CacheHits.WithLabelValues("balance")); got != 1 {
		t.Errorf("expected 1 cache hit, got %v", got)
	}
}

func TestNewWith_SeparateRegistriesDoNotCollide(t *testing.T) {
	// Two instances on separate registries must not panic.
	_ = NewWith(prometheus.NewRegistry())
	_ = NewWith(prometheus.NewRegistry())
}
