package service

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder receives service measurements. Metrics is the Prometheus
// implementation and NopRecorder discards everything.
type Recorder interface {
	ObserveOperation(op, outcome string, d time.Duration)
	ObservePruned(kind string, n int)
	ObserveSettlement(transfers int)
}

type NopRecorder struct{}

func (NopRecorder) ObserveOperation(string, string, time.Duration) {}
func (NopRecorder) ObservePruned(string, int)                      {}
func (NopRecorder) ObserveSettlement(int)                          {}

type Metrics struct {
	operations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	pruned      *prometheus.CounterVec
	settlements *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localcore_operations_total",
			Help: "Mock operations dispatched, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "localcore_operation_duration_seconds",
			Help:    "Time spent in a mock operation, artificial latency included.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		pruned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localcore_records_pruned_total",
			Help: "Records removed for being past retention.",
		}, []string{"kind"}),
		settlements: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "localcore_settlement_transfers",
			Help:    "Transfers produced per settlement.",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		}, []string{"empty"}),
	}

	reg.MustRegister(m.operations, m.duration, m.pruned, m.settlements)
	return m
}

func (m *Metrics) ObserveOperation(op, outcome string, d time.Duration) {
	m.operations.WithLabelValues(op, outcome).Inc()
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}

func (m *Metrics) ObservePruned(kind string, n int) {
	if n > 0 {
		m.pruned.WithLabelValues(kind).Add(float64(n))
	}
}

func (m *Metrics) ObserveSettlement(transfers int) {
	m.settlements.WithLabelValues(strconv.FormatBool(transfers == 0)).Observe(float64(transfers))
}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return NopRecorder{}
	}
	return r
}
