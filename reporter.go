package snowbench

import (
	"fmt"
	"io"
)

const (
	headerRule    = "----------------------------------------------------------------"
	headerColumns = "Benchmark                      Time             CPU   Iterations"
)

// Reporter renders results as a fixed-width table.
type Reporter struct {
	Out io.Writer
}

// NewReporter creates a reporter that writes to the given output.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// Header writes the table header.
func (r *Reporter) Header() {
	fmt.Fprintln(r.Out, headerRule)
	fmt.Fprintln(r.Out, headerColumns)
	fmt.Fprintln(r.Out, headerRule)
}

// Row writes one result line. Column widths and the "ns" suffixes are part
// of the output contract.
func (r *Reporter) Row(res Result) {
	fmt.Fprintf(r.Out, "%-30s %10.1f ns %10.1f ns %11d\n",
		res.Name, res.WallNsPerOp, res.CPUNsPerOp, res.Iterations)
}
