package snowbench

import (
	"fmt"
	"time"
)

// Default measurement parameters.
const (
	DefaultMinWallTime   = 500 * time.Millisecond
	DefaultWarmupCount   = 1000
	DefaultMaxIterations = 1 << 32
)

// Driver measures the per-call cost of operations. It warms an operation
// up, calibrates a repetition count whose total wall time reaches
// MinWallTime, then times exactly one more run of that count with both
// clocks.
type Driver struct {
	Clocks ClockPair

	// MinWallTime is the smallest wall-clock window accepted for the
	// final timed run. A long window keeps clock-read overhead and
	// scheduling jitter a small fraction of the total.
	MinWallTime time.Duration

	// WarmupCount is the number of untimed calls made before calibration,
	// letting caches and lazy initialization settle.
	WarmupCount int

	// MaxIterations caps calibration doubling. Without a cap an operation
	// cheaper than the clock resolution would double forever; at the cap
	// the final run measures MaxIterations calls regardless of how short
	// the window came out. Zero disables the cap.
	MaxIterations int64
}

// NewDriver returns a Driver with the default window, warmup count and
// iteration cap.
func NewDriver(clocks ClockPair) *Driver {
	return &Driver{
		Clocks:        clocks,
		MinWallTime:   DefaultMinWallTime,
		WarmupCount:   DefaultWarmupCount,
		MaxIterations: DefaultMaxIterations,
	}
}

// Measure produces a per-call timing estimate for op. An error from op or
// from a clock aborts immediately; there are no retries.
func (d *Driver) Measure(op Operation) (Result, error) {
	for i := 0; i < d.WarmupCount; i++ {
		if err := op.Fn(); err != nil {
			return Result{}, fmt.Errorf("benchmark %s: warmup: %w", op.Name, err)
		}
	}

	iters, err := d.calibrate(op)
	if err != nil {
		return Result{}, err
	}

	wallStart, err := d.Clocks.Wall()
	if err != nil {
		return Result{}, fmt.Errorf("benchmark %s: %w", op.Name, err)
	}
	cpuStart, err := d.Clocks.CPU()
	if err != nil {
		return Result{}, fmt.Errorf("benchmark %s: %w", op.Name, err)
	}
	for i := int64(0); i < iters; i++ {
		if err := op.Fn(); err != nil {
			return Result{}, fmt.Errorf("benchmark %s: %w", op.Name, err)
		}
	}
	wallEnd, err := d.Clocks.Wall()
	if err != nil {
		return Result{}, fmt.Errorf("benchmark %s: %w", op.Name, err)
	}
	cpuEnd, err := d.Clocks.CPU()
	if err != nil {
		return Result{}, fmt.Errorf("benchmark %s: %w", op.Name, err)
	}

	return Result{
		Name:        op.Name,
		WallNsPerOp: float64((wallEnd - wallStart).Nanoseconds()) / float64(iters),
		CPUNsPerOp:  float64((cpuEnd - cpuStart).Nanoseconds()) / float64(iters),
		Iterations:  iters,
	}, nil
}

// calibrate doubles the repetition count until a trial run's wall time
// reaches MinWallTime or the count reaches MaxIterations. Trial timings
// are discarded; only the count survives into the final run.
func (d *Driver) calibrate(op Operation) (int64, error) {
	iters := int64(1)
	for {
		start, err := d.Clocks.Wall()
		if err != nil {
			return 0, fmt.Errorf("benchmark %s: %w", op.Name, err)
		}
		for i := int64(0); i < iters; i++ {
			if err := op.Fn(); err != nil {
				return 0, fmt.Errorf("benchmark %s: calibration: %w", op.Name, err)
			}
		}
		end, err := d.Clocks.Wall()
		if err != nil {
			return 0, fmt.Errorf("benchmark %s: %w", op.Name, err)
		}
		if end-start >= d.MinWallTime {
			return iters, nil
		}
		if d.MaxIterations > 0 && iters >= d.MaxIterations {
			return iters, nil
		}
		iters *= 2
		if d.MaxIterations > 0 && iters > d.MaxIterations {
			iters = d.MaxIterations
		}
	}
}
