package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart mutation and persistence activity.
type CartMetrics struct {
	mutations     *prometheus.CounterVec
	storageErrors *prometheus.CounterVec
	snapshotItems prometheus.Gauge
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations applied, by operation.",
	}, []string{"op"})
	storageErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_storage_errors_total",
		Help: "Snapshot persistence failures, by operation.",
	}, []string{"op"})
	snapshotItems := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cart_snapshot_items",
		Help: "Total line-item quantity in the last persisted snapshot.",
	})
	reg.MustRegister(mutations, storageErrors, snapshotItems)
	return &CartMetrics{
		mutations:     mutations,
		storageErrors: storageErrors,
		snapshotItems: snapshotItems,
	}
}

// IncMutation increments the mutation counter for the named operation.
func (c *CartMetrics) IncMutation(op string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncStorageError increments the persistence failure counter.
func (c *CartMetrics) IncStorageError(op string) {
	if c == nil || c.storageErrors == nil {
		return
	}
	c.storageErrors.WithLabelValues(normalizeLabel(op)).Inc()
}

// SetSnapshotItems records the item count of the last persisted snapshot.
func (c *CartMetrics) SetSnapshotItems(count int) {
	if c == nil || c.snapshotItems == nil {
		return
	}
	c.snapshotItems.Set(float64(count))
}

func normalizeLabel(op string) string {
	if op == "" {
		return "unknown"
	}
	return op
}
