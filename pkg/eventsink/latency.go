package eventsink

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// Latencies are tracked in microseconds between 1µs and one minute with three
// significant digits.
const (
	minLatency        = 1
	maxLatency        = int64(time.Minute / time.Microsecond)
	significantDigits = 3
)

// LatencySummary is a point-in-time view of a LatencyRecorder.
type LatencySummary struct {
	Count  int64         `json:"count"  yaml:"count"`
	Errors int64         `json:"errors" yaml:"errors"`
	Min    time.Duration `json:"min"    yaml:"min"`
	Mean   time.Duration `json:"mean"   yaml:"mean"`
	P50    time.Duration `json:"p50"    yaml:"p50"`
	P90    time.Duration `json:"p90"    yaml:"p90"`
	P99    time.Duration `json:"p99"    yaml:"p99"`
	Max    time.Duration `json:"max"    yaml:"max"`
}

// LatencyRecorder keeps a latency histogram of completed calls. It is safe
// for concurrent use.
type LatencyRecorder struct {
	mu        sync.Mutex
	histogram *hdrhistogram.Histogram
	errors    int64
}

// NewLatencyRecorder creates an empty recorder.
func NewLatencyRecorder() *LatencyRecorder {
	return &LatencyRecorder{
		histogram: hdrhistogram.New(minLatency, maxLatency, significantDigits),
	}
}

// Record adds one call duration. Values outside the trackable range are
// clamped.
func (r *LatencyRecorder) Record(d time.Duration) {
	value := d.Microseconds()
	if value < minLatency {
		value = minLatency
	}

	if value > maxLatency {
		value = maxLatency
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_ = r.histogram.RecordValue(value)
}

// Attach subscribes the recorder to src.
func (r *LatencyRecorder) Attach(src tally.EventSource) Detach {
	return attach(src,
		func(event tally.ResponseEvent) { r.Record(event.Duration) },
		func(tally.ErrorEvent) {
			r.mu.Lock()
			r.errors++
			r.mu.Unlock()
		})
}

// Summary returns the current percentiles.
func (r *LatencyRecorder) Summary() LatencySummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.histogram

	return LatencySummary{
		Count:  h.TotalCount(),
		Errors: r.errors,
		Min:    micros(h.Min()),
		Mean:   time.Duration(h.Mean() * float64(time.Microsecond)),
		P50:    micros(h.ValueAtQuantile(50)),
		P90:    micros(h.ValueAtQuantile(90)),
		P99:    micros(h.ValueAtQuantile(99)),
		Max:    micros(h.Max()),
	}
}

// Reset clears all recorded values.
func (r *LatencyRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.histogram.Reset()
	r.errors = 0
}

func micros(v int64) time.Duration {
	return time.Duration(v) * time.Microsecond
}
