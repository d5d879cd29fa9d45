package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dongmunseodap"

// Metrics - счетчики Prometheus для отчетов, хранилища, геокодера и карты
type Metrics struct {
	ReportsCreated *prometheus.CounterVec // labels: type={driver,transit,post}
	ReportsDeleted prometheus.Counter

	StorageWriteFailures *prometheus.CounterVec // labels: slot
	StorageReadFallbacks *prometheus.CounterVec // labels: slot, reason={error,corrupt}

	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss}

	MapCommands *prometheus.CounterVec // labels: command, outcome={queued,delivered,failed}
}

// NewMetrics создает метрики и регистрирует их в реестре по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsCreated,
		m.ReportsDeleted,
		m.StorageWriteFailures,
		m.StorageReadFallbacks,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.MapCommands,
	)
	return m
}

// NewMetricsForTesting создает незарегистрированные метрики, чтобы тесты
// не паниковали с "already registered"
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_created_total",
			Help:      "Reports created, by report type.",
		}, []string{"type"}),
		ReportsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_deleted_total",
			Help:      "Reports removed from storage.",
		}),
		StorageWriteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_write_failures_total",
			Help:      "Failed slot writes, by slot.",
		}, []string{"slot"}),
		StorageReadFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_read_fallbacks_total",
			Help:      "Slot reads treated as empty, by slot and reason.",
		}, []string{"slot", "reason"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoding requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Reverse geocoding cache lookups by result.",
		}, []string{"result"}),
		MapCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "map_commands_total",
			Help:      "Map render commands by command and outcome.",
		}, []string{"command", "outcome"}),
	}
}
