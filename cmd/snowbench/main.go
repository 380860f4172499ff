// snowbench runs the JSON payload micro-benchmarks and prints a
// fixed-width timing table to stdout.
package main

import (
	"os"
	"time"

	"github.com/snowbench/snowbench"
	"github.com/spf13/cobra"
)

func main() {
	var (
		minTime  time.Duration
		warmup   int
		maxIters int64
		extended bool
	)

	cmd := &cobra.Command{
		Use:          "snowbench",
		Short:        "JSON payload micro-benchmarks",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := snowbench.VerifyPayload(); err != nil {
				return err
			}

			clocks, err := snowbench.SystemClocks()
			if err != nil {
				return err
			}

			driver := snowbench.NewDriver(clocks)
			driver.MinWallTime = minTime
			driver.WarmupCount = warmup
			driver.MaxIterations = maxIters

			buildSuite := snowbench.DefaultSuite
			if extended {
				buildSuite = snowbench.ExtendedSuite
			}
			suite, err := buildSuite()
			if err != nil {
				return err
			}

			return suite.Run(driver, snowbench.NewReporter(os.Stdout))
		},
	}

	cmd.Flags().DurationVar(&minTime, "min-time", snowbench.DefaultMinWallTime,
		"minimum wall-clock window per measurement")
	cmd.Flags().IntVar(&warmup, "warmup", snowbench.DefaultWarmupCount,
		"untimed calls before calibration")
	cmd.Flags().Int64Var(&maxIters, "max-iterations", snowbench.DefaultMaxIterations,
		"calibration iteration cap, 0 for unbounded")
	cmd.Flags().BoolVar(&extended, "extended", false,
		"also run the snowflake and model benchmarks")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
