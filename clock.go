package snowbench

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Clock reads a monotonic, non-decreasing instant relative to an arbitrary
// origin. Only the difference between two readings is meaningful.
type Clock func() (time.Duration, error)

// ClockPair bundles the two clocks a measurement needs: a wall-like clock
// and a process-CPU clock. The two readings diverge under I/O wait or
// scheduler contention, and that divergence is part of the output.
type ClockPair struct {
	Wall Clock
	CPU  Clock
}

// NewWallClock returns a monotonic wall clock. Readings are offsets from
// the moment the clock was created.
func NewWallClock() Clock {
	origin := time.Now()
	return func() (time.Duration, error) {
		return time.Since(origin), nil
	}
}

// NewCPUClock returns a clock reading the current process's CPU time,
// user plus system.
func NewCPUClock() (Clock, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("resolving current process: %w", err)
	}
	return func() (time.Duration, error) {
		times, err := proc.Times()
		if err != nil {
			return 0, fmt.Errorf("reading process CPU time: %w", err)
		}
		return time.Duration((times.User + times.System) * float64(time.Second)), nil
	}, nil
}

// SystemClocks returns the clock pair used for real measurements.
func SystemClocks() (ClockPair, error) {
	cpu, err := NewCPUClock()
	if err != nil {
		return ClockPair{}, err
	}
	return ClockPair{Wall: NewWallClock(), CPU: cpu}, nil
}
