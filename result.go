package snowbench

// Operation is a named unit of work whose per-call cost is measured.
// Fn must tolerate an unbounded number of calls; a non-nil error aborts
// the benchmark.
type Operation struct {
	Name string
	Fn   func() error
}

// Result holds the outcome of measuring one operation. Both per-call
// figures come from the same final timed run, so they are directly
// comparable.
type Result struct {
	Name        string
	WallNsPerOp float64 // wall-clock nanoseconds per call
	CPUNsPerOp  float64 // process CPU nanoseconds per call, user plus system
	Iterations  int64   // call count of the final timed run
}
