// Package metrics provides [hashing.Observer] implementations that export
// operation counts and latencies.
//
// Two backends are available:
//
//   - [Prometheus] registers a counter and a histogram on a
//     prometheus.Registerer.
//   - [OTel] records the same data on an OpenTelemetry metric.Meter.
//
// Usage:
//
//	obs, err := metrics.NewPrometheus(prometheus.DefaultRegisterer, "myapp")
//	if err != nil { ... }
//	h := hashing.New(cfg, hashing.WithObserver(obs))
//
// Every sample carries an operation label ("generate" or "verify") and, on
// the counter, an outcome label; see [GenerateOutcome] and [VerifyOutcome].
// Passwords and hashes are never recorded.
package metrics
