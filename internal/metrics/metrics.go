// Package metrics provides application-level metrics collection backed by
// Prometheus collectors on a private registry.
package metrics

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mrz1836/coinaddr/pkg/coinaddress"
)

// Metric names.
const (
	namespace = "coinaddr"

	ValidationsTotalName   = namespace + "_validations_total"
	ValidationDurationName = namespace + "_validation_duration_seconds"
	BatchesTotalName       = namespace + "_batches_total"
)

// Outcome labels.
const (
	OutcomeValid = "valid"
	OutcomeError = "error"
)

// Metrics holds validation metrics. All methods are safe for concurrent use.
type Metrics struct {
	mu          sync.RWMutex
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	duration    prometheus.Histogram
	batches     prometheus.Counter
}

// Global is the global metrics instance.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = New()

// New creates a Metrics instance with its own registry.
func New() *Metrics {
	m := &Metrics{}
	m.init()
	return m
}

func (m *Metrics) init() {
	m.registry = prometheus.NewRegistry()
	m.validations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: ValidationsTotalName,
		Help: "Address validations by currency and outcome.",
	}, []string{"currency", "outcome"})
	m.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    ValidationDurationName,
		Help:    "Time spent validating a single address.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 8),
	})
	m.batches = prometheus.NewCounter(prometheus.CounterOpts{
		Name: BatchesTotalName,
		Help: "Batch validation runs.",
	})
	m.registry.MustRegister(m.validations, m.duration, m.batches)
}

// Outcome returns the outcome label for a validation error.
func Outcome(err error) string {
	if err == nil {
		return OutcomeValid
	}
	var ve coinaddress.ValidationError
	if errors.As(err, &ve) {
		return strings.ToLower(ve.Code())
	}
	return OutcomeError
}

// RecordValidation records one address validation.
func (m *Metrics) RecordValidation(currency string, duration time.Duration, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.validations.WithLabelValues(currency, Outcome(err)).Inc()
	m.duration.Observe(duration.Seconds())
}

// RecordBatch records a batch run.
func (m *Metrics) RecordBatch() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.batches.Inc()
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.registry
}

// WriteTextfile writes every metric to filename in the Prometheus text
// exposition format, for pickup by a node_exporter textfile collector.
func (m *Metrics) WriteTextfile(filename string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return prometheus.WriteToTextfile(filename, m.registry)
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	ValidationsTotal int64
	ValidTotal       int64
	InvalidTotal     int64
	ByOutcome        map[string]int64
	ByCurrency       map[string]int64
	BatchesTotal     int64
	DurationSeconds  float64
}

// AvgDurationMicros returns the mean validation time in microseconds.
// Returns 0 if nothing has been recorded.
func (s Snapshot) AvgDurationMicros() float64 {
	if s.ValidationsTotal == 0 {
		return 0
	}
	return s.DurationSeconds / float64(s.ValidationsTotal) * 1e6
}

// Snapshot gathers the registry into a Snapshot.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		ByOutcome:  make(map[string]int64),
		ByCurrency: make(map[string]int64),
	}

	families, err := m.registry.Gather()
	if err != nil {
		return snap
	}

	for _, mf := range families {
		switch mf.GetName() {
		case ValidationsTotalName:
			for _, metric := range mf.GetMetric() {
				n := int64(metric.GetCounter().GetValue())
				for _, lp := range metric.GetLabel() {
					switch lp.GetName() {
					case "outcome":
						snap.ByOutcome[lp.GetValue()] += n
					case "currency":
						snap.ByCurrency[lp.GetValue()] += n
					}
				}
				snap.ValidationsTotal += n
			}
		case ValidationDurationName:
			for _, metric := range mf.GetMetric() {
				snap.DurationSeconds += metric.GetHistogram().GetSampleSum()
			}
		case BatchesTotalName:
			for _, metric := range mf.GetMetric() {
				snap.BatchesTotal += int64(metric.GetCounter().GetValue())
			}
		}
	}

	snap.ValidTotal = snap.ByOutcome[OutcomeValid]
	snap.InvalidTotal = snap.ValidationsTotal - snap.ValidTotal

	return snap
}

// Reset replaces all collectors with fresh ones.
// Useful for testing.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
}
