package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

var _ hashing.Observer = (*Prometheus)(nil)

// ErrNilRegisterer is returned by [NewPrometheus] when reg is nil.
var ErrNilRegisterer = errors.New("metrics: nil registerer")

// DurationBuckets are the histogram buckets, in seconds, used by both
// backends. They span cost 4 (about a millisecond) to cost 16 and above.
var DurationBuckets = prometheus.ExponentialBuckets(0.001, 2, 14)

// Prometheus is a [hashing.Observer] backed by Prometheus collectors:
//
//	<namespace>_operations_total{operation,outcome}
//	<namespace>_operation_duration_seconds{operation}
type Prometheus struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewPrometheus creates the collectors and registers them on reg.
// An empty namespace defaults to "bcrypt".
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	if namespace == "" {
		namespace = "bcrypt"
	}

	p := &Prometheus{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Password hash operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Password hash operation latency.",
			Buckets:   DurationBuckets,
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{p.operations, p.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}
	return p, nil
}

// ObserveGenerate implements [hashing.Observer].
func (p *Prometheus) ObserveGenerate(d time.Duration, err error) {
	p.observe(OperationGenerate, GenerateOutcome(err), d)
}

// ObserveVerify implements [hashing.Observer].
func (p *Prometheus) ObserveVerify(d time.Duration, matched bool, err error) {
	p.observe(OperationVerify, VerifyOutcome(matched, err), d)
}

func (p *Prometheus) observe(operation, outcome string, d time.Duration) {
	p.operations.WithLabelValues(operation, outcome).Inc()
	p.duration.WithLabelValues(operation).Observe(d.Seconds())
}
