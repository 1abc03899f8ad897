package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/go-wlscan/benchmark"
	"github.com/canonical/go-wlscan/internal/protocol"
	"github.com/canonical/go-wlscan/logging"
)

// Return a new bench command.
func newBench(g *globals) *cobra.Command {
	var input, dir, workload string
	var workers int
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure how fast the bindings of a protocol are generated.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := benchmark.ParseWorkload(workload)
			if err != nil {
				return err
			}
			p, err := protocol.Load(input)
			if err != nil {
				return err
			}

			bm, err := benchmark.New(p, dir,
				benchmark.WithWorkload(w),
				benchmark.WithWorkers(workers),
				benchmark.WithDuration(duration))
			if err != nil {
				return err
			}
			if err := bm.Run(cmd.Context()); err != nil {
				return err
			}

			summary := bm.Summary()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-18s %8s %6s %12s %12s %12s\n", "work", "n", "errors", "avg", "min", "max")
			for _, work := range benchmark.Works(summary) {
				r := summary[work]
				fmt.Fprintf(out, "%-18s %8d %6d %12s %12s %12s\n", work, r.N, r.Err, r.Avg, r.Min, r.Max)
			}
			g.log(logging.Info, "reports written to %s", bm.ResultsDir())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "protocol description")
	flags.StringVarP(&dir, "dir", "d", ".", "directory to write the results directory into")
	flags.StringVarP(&workload, "workload", "w", "generate", "workload: generate or emit")
	flags.IntVar(&workers, "workers", 1, "number of concurrent workers")
	flags.DurationVar(&duration, "duration", 10*time.Second, "how long to run")
	cmd.MarkFlagRequired("input")

	return cmd
}
