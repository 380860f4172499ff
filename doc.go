// Package snowbench measures the per-call cost of small JSON payload
// operations and reports wall-clock and process-CPU nanoseconds per call
// in a fixed-width table.
//
// The measurement protocol for each operation is: a fixed number of untimed
// warmup calls, then iteration-doubling calibration until a trial run's
// wall time reaches the minimum window, then exactly one more run of that
// count timed with both clocks. The reported figures come from that single
// final run.
//
//	clocks, err := snowbench.SystemClocks()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	suite, err := snowbench.DefaultSuite()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := suite.Run(snowbench.NewDriver(clocks), snowbench.NewReporter(os.Stdout)); err != nil {
//	    log.Fatal(err)
//	}
//
// Execution is strictly sequential: one suite entry at a time, one
// measurement at a time. An operation failure aborts the run; rows already
// printed stay on the output.
package snowbench
