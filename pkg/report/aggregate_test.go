package report

import (
	"math"
	"testing"
	"time"

	"github.com/srodi/topshot/pkg/types"
)

func samplesFor(usages ...float64) []types.Sample {
	now := time.Now()
	samples := make([]types.Sample, 0, len(usages))
	for i, usage := range usages {
		samples = append(samples, types.Sample{
			Timestamp: now.Add(time.Duration(i) * time.Second),
			Usage:     usage,
		})
	}
	return samples
}

func TestReduce(t *testing.T) {
	cases := []struct {
		name      string
		usages    []float64
		coreCount float64
		expected  float64
	}{
		{"singleSampleSingleCore", []float64{100}, 1, 100},
		{"singleSampleMultiCore", []float64{200}, 4, 50},
		{"meanThenNormalize", []float64{50, 100}, 4, 18.75},
		{"multipleSamples", []float64{100, 200, 300}, 4, 50},
		{"fractionalValues", []float64{12.5, 37.5}, 2, 12.5},
		{"lowUsage", []float64{5, 3, 7}, 4, 1.25},
		{"emptyWindow", nil, 4, 0},
		{"zeroCoreCount", []float64{100}, 0, 0},
		{"negativeCoreCount", []float64{100}, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reduce(samplesFor(tc.usages...), tc.coreCount)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Fatalf("expected %.4f, got %.4f", tc.expected, got)
			}
			if got < 0 {
				t.Fatalf("reduce must never be negative, got %.4f", got)
			}
		})
	}
}

func TestPassesThresholdBoundaryInclusive(t *testing.T) {
	cases := []struct {
		percent   float64
		threshold float64
		expected  bool
	}{
		{1.0, 1.0, true},
		{0.99, 1.0, false},
		{20.0, 1.0, true},
		{18.75, 20.0, false},
		{0, 0, true},
	}
	for _, tc := range cases {
		if got := PassesThreshold(tc.percent, tc.threshold); got != tc.expected {
			t.Fatalf("PassesThreshold(%v, %v): expected %t, got %t", tc.percent, tc.threshold, tc.expected, got)
		}
	}
}

func TestRankDescendingAndStable(t *testing.T) {
	records := []types.Record{
		{Name: "A", PID: 1, CPUPercent: 5.0},
		{Name: "B", PID: 2, CPUPercent: 9.0},
		{Name: "C", PID: 3, CPUPercent: 5.0},
	}

	Rank(records)

	names := []string{records[0].Name, records[1].Name, records[2].Name}
	if names[0] != "B" || names[1] != "A" || names[2] != "C" {
		t.Fatalf("expected [B A C], got %v", names)
	}
}

func TestRankToleratesNaN(t *testing.T) {
	records := []types.Record{
		{Name: "A", PID: 1, CPUPercent: math.NaN()},
		{Name: "B", PID: 2, CPUPercent: 3.0},
		{Name: "C", PID: 3, CPUPercent: math.NaN()},
	}

	Rank(records)

	if len(records) != 3 {
		t.Fatalf("rank lost records: %d", len(records))
	}
	// NaN compares equal to everything, so the stable sort must keep the
	// original relative order of the NaN rows.
	var nanNames []string
	for _, rec := range records {
		if math.IsNaN(rec.CPUPercent) {
			nanNames = append(nanNames, rec.Name)
		}
	}
	if len(nanNames) != 2 || nanNames[0] != "A" || nanNames[1] != "C" {
		t.Fatalf("NaN rows lost their relative order: %v", nanNames)
	}
}
