package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

var _ hashing.Observer = (*OTel)(nil)

// ErrNilMeter is returned by [NewOTel] when meter is nil.
var ErrNilMeter = errors.New("metrics: nil meter")

// OTel instrument names.
const (
	OTelOperations = "bcrypt.operations"
	OTelDuration   = "bcrypt.operation.duration"
)

// OTel is a [hashing.Observer] that records on an OpenTelemetry meter.
type OTel struct {
	operations metric.Int64Counter
	duration   metric.Float64Histogram
}

// NewOTel creates the instruments on meter.
func NewOTel(meter metric.Meter) (*OTel, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	operations, err := meter.Int64Counter(OTelOperations,
		metric.WithDescription("Password hash operations by operation and outcome."),
		metric.WithUnit("{operation}"))
	if err != nil {
		return nil, fmt.Errorf("metrics: create counter %s: %w", OTelOperations, err)
	}

	duration, err := meter.Float64Histogram(OTelDuration,
		metric.WithDescription("Password hash operation latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DurationBuckets...))
	if err != nil {
		return nil, fmt.Errorf("metrics: create histogram %s: %w", OTelDuration, err)
	}

	return &OTel{operations: operations, duration: duration}, nil
}

// ObserveGenerate implements [hashing.Observer].
func (o *OTel) ObserveGenerate(d time.Duration, err error) {
	o.observe(OperationGenerate, GenerateOutcome(err), d)
}

// ObserveVerify implements [hashing.Observer].
func (o *OTel) ObserveVerify(d time.Duration, matched bool, err error) {
	o.observe(OperationVerify, VerifyOutcome(matched, err), d)
}

func (o *OTel) observe(operation, outcome string, d time.Duration) {
	ctx := context.Background()
	op := attribute.String("operation", operation)
	o.operations.Add(ctx, 1, metric.WithAttributes(op, attribute.String("outcome", outcome)))
	o.duration.Record(ctx, d.Seconds(), metric.WithAttributes(op))
}
