// Package metrics exposes the two counters the reference implementation
// tracks around slice verification: how many entries were verified, and how
// long the GPU worker thread ran when the GPU backend was used.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// EntryVerifyNumEntries counts entries passed into a slice verify
	// call, matching the reference "entry_verify-num_entries" counter.
	EntryVerifyNumEntries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "poh",
		Subsystem: "entry_verify",
		Name:      "num_entries_total",
		Help:      "Total number of entries passed into a slice verification call.",
	})

	// EntryVerifyGPUThreadMicros observes the wall-clock duration of the
	// GPU worker thread, matching the reference "entry_verify-gpu_thread"
	// metric.
	EntryVerifyGPUThreadMicros = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "poh",
		Subsystem: "entry_verify",
		Name:      "gpu_thread_micros",
		Help:      "Duration of the GPU verification worker thread, in microseconds.",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 16),
	})
)

// Registry is the registry this package's metrics are registered against.
// cmd/pohverify registers it with an HTTP handler; tests may construct
// their own registry and re-register if they need isolation.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(EntryVerifyNumEntries, EntryVerifyGPUThreadMicros)
}
