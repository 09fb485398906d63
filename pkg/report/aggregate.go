// Package report reduces retained CPU samples into ranked, trend-annotated
// rows for display.
package report

import (
	"sort"

	"github.com/srodi/topshot/pkg/types"
)

// Reduce collapses one pid's retained samples into a normalized utilization
// percentage: the arithmetic mean of the raw readings divided by the core
// count, so 100 means one full core saturated. Returns 0 for an empty window
// or a non-positive core count. Samples are deliberately not time-weighted;
// unevenly spaced windows are averaged as-is.
func Reduce(samples []types.Sample, coreCount float64) float64 {
	if len(samples) == 0 || coreCount <= 0 {
		return 0
	}
	var total float64
	for _, sample := range samples {
		total += sample.Usage
	}
	return total / float64(len(samples)) / coreCount
}

// PassesThreshold reports whether a normalized percentage is large enough to
// display. The boundary is inclusive: a value exactly at the threshold passes.
func PassesThreshold(percent, threshold float64) bool {
	return percent >= threshold
}

// Rank stable-sorts records descending by CPUPercent in place. NaN compares
// equal to everything, so the sort never fails on bad input, and ties keep
// their input order.
func Rank(records []types.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CPUPercent > records[j].CPUPercent
	})
}
