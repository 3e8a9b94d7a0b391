package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"intersection-benchmark/internal/intersection"
	"intersection-benchmark/internal/report"
)

// benchOptions holds the command-line settings of a sweep.
type benchOptions struct {
	sizeA      int
	sizesB     []int
	iterations int
	warmup     int
	seed       int64
	output     string
}

func main() {
	if err := newBenchCmd(os.Stdout).Execute(); err != nil {
		logrus.Errorln(err)
		os.Exit(1)
	}
}

func newBenchCmd(out io.Writer) *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:           "intersection-bench",
		Short:         "Benchmark small-to-set against large-to-set intersections for a sweep of list sizes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var seed *int64
			if cmd.Flags().Changed("seed") {
				seed = &opts.seed
			}
			return runSweep(out, opts, seed)
		},
	}

	cmd.Flags().IntVar(&opts.sizeA, "size-a", 100, "Size of list A")
	cmd.Flags().IntSliceVar(&opts.sizesB, "sizes-b", []int{10, 100, 1000, 10000}, "Sizes of list B, one benchmark per size")
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 100, "Timed iterations per strategy")
	cmd.Flags().IntVar(&opts.warmup, "warmup", intersection.DefaultWarmup, "Untimed repetitions before each benchmark")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for the random input lists (random if unset)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the results to this file")

	return cmd
}

func runSweep(out io.Writer, opts benchOptions, seed *int64) error {
	if len(opts.sizesB) == 0 {
		return errors.New("at least one size for list B is required")
	}

	fmt.Fprintf(out, "Intersection Benchmark\n")
	fmt.Fprintf(out, "======================\n\n")
	fmt.Fprintf(out, "List A size: %d\n", opts.sizeA)
	fmt.Fprintf(out, "List B sizes: %v\n", opts.sizesB)
	fmt.Fprintf(out, "Iterations: %d\n", opts.iterations)
	fmt.Fprintln(out)

	programStart := time.Now()

	// Progress callback that shows elapsed time
	progressCallback := func(msg string) {
		elapsed := time.Since(programStart)
		fmt.Fprintf(out, "[%s] %s\n", formatElapsed(elapsed), msg)
	}

	runner := intersection.NewRunner(
		intersection.NewSource(seed),
		intersection.WithWarmup(opts.warmup),
		intersection.WithProgress(progressCallback),
	)

	results := make([]intersection.BenchmarkResult, 0, len(opts.sizesB))
	for i, sizeB := range opts.sizesB {
		progressCallback(fmt.Sprintf("Benchmark %d/%d: |A|=%d, |B|=%d", i+1, len(opts.sizesB), opts.sizeA, sizeB))

		res, err := runner.Run(opts.sizeA, sizeB, opts.iterations)
		if err != nil {
			return fmt.Errorf("benchmark with list B size %d failed: %w", sizeB, err)
		}
		results = append(results, res)
	}

	fmt.Fprintf(out, "\nResults (microseconds):\n")
	for _, res := range results {
		fmt.Fprintf(out, "  |A|=%-8d |B|=%-8d small-to-set %10.3f ± %-8.3f large-to-set %10.3f ± %.3f\n",
			res.SizeA, res.SizeB, res.MeanSmallToSet, res.ErrSmallToSet, res.MeanLargeToSet, res.ErrLargeToSet)
	}

	if opts.output != "" {
		progressCallback("Writing output file...")
		if err := report.WriteTextFile(results, opts.output); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n  Output file: %s\n", opts.output)
	}

	fmt.Fprintf(out, "\n✓ Done in %s\n", formatElapsed(time.Since(programStart)))
	return nil
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
