package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/dischema/pkg/schema"
)

const subsystem = "dischema"

// Metrics records check outcomes. It is safe for concurrent use.
type Metrics struct {
	checksTotal *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// namespace may be empty.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checks_total",
				Help:      "Total number of schema checks by result",
			},
			[]string{"result"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "errors_total",
				Help:      "Total number of validation errors by kind",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "check_duration_seconds",
				Help:      "Duration of schema checks",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
	}

	for _, c := range []prometheus.Collector{m.checksTotal, m.errorsTotal, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveCheck implements validator.Observer.
func (m *Metrics) ObserveCheck(valid bool, kinds []schema.Kind, elapsed time.Duration) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	m.checksTotal.WithLabelValues(result).Inc()
	for _, k := range kinds {
		m.errorsTotal.WithLabelValues(string(k)).Inc()
	}
	m.duration.Observe(elapsed.Seconds())
}
