// Package timing implements the self-calibrating benchmark timing engine.
//
// Given a closure, the engine first calibrates: it runs the closure in
// batches, doubling the batch size until one batch fills the calibration
// window. From the observed cost per iteration it derives an iteration
// budget that fills the measurement window, then times all of those
// iterations in a single window. One long window (instead of many short
// samples) keeps the signal usable for kernels whose single-call cost is
// near the clock's resolution.
package timing

import (
	"log/slog"
	"math"

	"github.com/cwbudde/vellobench/internal/simd"
)

// Config holds the timing windows in milliseconds.
type Config struct {
	CalibrationMS uint64 `json:"calibration_ms"`
	MeasurementMS uint64 `json:"measurement_ms"`
}

const (
	// DefaultCalibrationMS is the default calibration window.
	DefaultCalibrationMS = 1500
	// DefaultMeasurementMS is the default measurement window.
	DefaultMeasurementMS = 4000
	// minWindowMS is the floor applied to both windows.
	minWindowMS = 100
)

// DefaultConfig returns the default timing windows.
func DefaultConfig() Config {
	return Config{CalibrationMS: DefaultCalibrationMS, MeasurementMS: DefaultMeasurementMS}
}

// normalized returns the config with both windows clamped to the minimum.
func (c Config) normalized() Config {
	if c.CalibrationMS < minWindowMS {
		c.CalibrationMS = minWindowMS
	}
	if c.MeasurementMS < minWindowMS {
		c.MeasurementMS = minWindowMS
	}
	return c
}

// Statistics summarizes a single measurement window.
type Statistics struct {
	MeanNS     float64 `json:"mean_ns"`
	Iterations uint64  `json:"iterations"`
}

// Result is the record emitted for one benchmark run.
type Result struct {
	ID          string            `json:"id"`
	Category    string            `json:"category"`
	Name        string            `json:"name"`
	SimdVariant string            `json:"simd_variant"`
	Statistics  Statistics        `json:"statistics"`
	TimestampMS uint64            `json:"timestamp_ms"`
	Platform    simd.PlatformInfo `json:"platform"`
}

// Runner executes closures under the configured timing windows.
type Runner struct {
	cfg Config
}

// NewRunner creates a runner; windows below 100 ms are raised to 100 ms.
func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg.normalized()}
}

// calibrate doubles the batch size until one batch covers the calibration
// window, and returns the final batch size with its elapsed nanoseconds.
// The calibration phase doubles as warmup; none of it is measured.
func (r *Runner) calibrate(f func()) (batch uint64, elapsed float64) {
	targetNS := float64(r.cfg.CalibrationMS) * 1e6
	batch = 1

	for {
		start := now()
		for i := uint64(0); i < batch; i++ {
			f()
		}
		elapsed = elapsedNS(start)

		if elapsed >= targetNS {
			return batch, elapsed
		}
		batch *= 2
	}
}

// measure times total iterations of f in one window.
func measure(f func(), total uint64) Statistics {
	start := now()
	for i := uint64(0); i < total; i++ {
		f()
	}
	elapsed := elapsedNS(start)

	return Statistics{
		MeanNS:     elapsed / float64(total),
		Iterations: total,
	}
}

// Run benchmarks f and returns the result record.
func (r *Runner) Run(id, category, name, simdVariant string, f func()) Result {
	return r.RunWithCallback(id, category, name, simdVariant, f, nil)
}

// RunWithCallback benchmarks f, invoking onCalibrated (if non-nil) after
// calibration finishes and before the measurement window opens. Frontends
// use the callback to flip a progress indicator; it runs outside the
// measured window.
func (r *Runner) RunWithCallback(id, category, name, simdVariant string, f func(), onCalibrated func()) Result {
	batch, batchNS := r.calibrate(f)

	if onCalibrated != nil {
		onCalibrated()
	}

	targetNS := float64(r.cfg.MeasurementMS) * 1e6
	itersPerNS := float64(batch) / batchNS
	total := uint64(math.Ceil(itersPerNS * targetNS))
	if total < 1 {
		total = 1
	}

	slog.Debug("Benchmark calibrated",
		"id", id,
		"batch", batch,
		"batch_ns", batchNS,
		"iterations", total,
	)

	stats := measure(f, total)

	return Result{
		ID:          id,
		Category:    category,
		Name:        name,
		SimdVariant: simdVariant,
		Statistics:  stats,
		TimestampMS: timestampMS(),
		Platform:    simd.Platform(),
	}
}
