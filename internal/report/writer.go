package report

import (
	"fmt"
	"os"
	"strings"

	"intersection-benchmark/internal/intersection"
)

// header names the columns of a report. Timings are in microseconds.
const header = "size_a\tsize_b\tmean_small_to_set_us\terr_small_to_set_us\tmean_large_to_set_us\terr_large_to_set_us"

// FormatRow renders one benchmark result as a tab-separated report line.
func FormatRow(res intersection.BenchmarkResult) string {
	return fmt.Sprintf("%d\t%d\t%.3f\t%.3f\t%.3f\t%.3f",
		res.SizeA, res.SizeB,
		res.MeanSmallToSet, res.ErrSmallToSet,
		res.MeanLargeToSet, res.ErrLargeToSet)
}

// WriteTextFile writes benchmark results to a plain text file.
// The first line is a header, each result is on a separate line.
func WriteTextFile(results []intersection.BenchmarkResult, outputPath string) error {
	lines := make([]string, 0, len(results)+1)
	lines = append(lines, header)
	for _, res := range results {
		lines = append(lines, FormatRow(res))
	}
	content := strings.Join(lines, "\n") + "\n"

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write text file: %w", err)
	}

	return nil
}
