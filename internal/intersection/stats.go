package intersection

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Summarize returns the arithmetic mean of samples and its standard error,
// i.e. the Bessel-corrected sample standard deviation divided by sqrt(n).
func Summarize(samples []float64) (mean, stdErr float64, err error) {
	if len(samples) < 2 {
		return 0, 0, fmt.Errorf("%w: at least 2 samples are needed, got %d", ErrInvalidArgument, len(samples))
	}

	mean, std := stat.MeanStdDev(samples, nil)
	return mean, stat.StdErr(std, float64(len(samples))), nil
}
