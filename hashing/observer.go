package hashing

import "time"

// Observer receives the outcome of every Generate and Verify call, for
// metrics or auditing. Implementations must be safe for concurrent use and
// must not block; they run on the caller's goroutine.
//
// The metrics package ships Prometheus and OpenTelemetry implementations.
type Observer interface {
	// ObserveGenerate is called after Generate with its duration and error.
	ObserveGenerate(d time.Duration, err error)

	// ObserveVerify is called after Verify with its duration, match result
	// and error.
	ObserveVerify(d time.Duration, matched bool, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveGenerate(time.Duration, error)     {}
func (nopObserver) ObserveVerify(time.Duration, bool, error) {}
