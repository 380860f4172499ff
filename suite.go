package snowbench

import "fmt"

// Suite is a fixed, ordered list of operations measured one at a time.
type Suite struct {
	Name       string
	Operations []Operation
}

// Run measures every operation in order and writes one table row per
// result. The first failure aborts the run, wrapped with the suite name;
// rows already written stay on the output.
func (s *Suite) Run(d *Driver, r *Reporter) error {
	r.Header()
	for _, op := range s.Operations {
		res, err := d.Measure(op)
		if err != nil {
			return fmt.Errorf("suite %s: %w", s.Name, err)
		}
		r.Row(res)
	}
	return nil
}
