// Package tracker orchestrates one refresh cycle: sample, prune, aggregate,
// rank, and diff against the previous cycle.
package tracker

import (
	"fmt"
	"time"

	"github.com/srodi/topshot/pkg/collector/proc"
	"github.com/srodi/topshot/pkg/report"
	"github.com/srodi/topshot/pkg/store"
	"github.com/srodi/topshot/pkg/types"
)

// Snapshotter supplies the current process table once per cycle.
type Snapshotter interface {
	Snapshot() (*proc.Snapshot, error)
}

// TitleProvider maps pids to window titles used for display disambiguation.
// Platforms without the capability return an empty mapping.
type TitleProvider interface {
	Titles() map[int32][]string
}

// Config carries the tracker tunables. Retention and CPUThreshold are used
// as-is: a zero or negative retention prunes aggressively instead of failing.
type Config struct {
	Retention    time.Duration
	CPUThreshold float64
}

// RankedRecord is one output row: an aggregated record plus its trend.
type RankedRecord struct {
	types.Record
	Trend report.Trend
}

// Tracker owns the sample window and the previous cycle's percentages. It is
// single-owner state: cycles run strictly one at a time and nothing reads the
// store from outside, so no locking is needed. Callers that want concurrent
// cycles must serialize whole Cycle calls, not sub-operations.
type Tracker struct {
	snapshots Snapshotter
	titles    TitleProvider
	samples   *store.SampleStore
	prevBurn  map[int32]float64
	coreCount float64
	cfg       Config
}

// New builds a Tracker. The core count is fixed for the Tracker's lifetime
// and clamped to at least 1.
func New(snapshots Snapshotter, titles TitleProvider, coreCount float64, cfg Config) *Tracker {
	if coreCount < 1 {
		coreCount = 1
	}
	return &Tracker{
		snapshots: snapshots,
		titles:    titles,
		samples:   store.New(),
		prevBurn:  make(map[int32]float64),
		coreCount: coreCount,
		cfg:       cfg,
	}
}

// Cycle runs one full refresh at the given time and returns the ranked,
// trend-annotated rows. Processes that exited between sampling and
// aggregation are dropped silently. The previous-cycle map is replaced
// wholesale at the end, so it always reflects exactly one completed cycle.
// An empty result is well-formed, not an error.
func (t *Tracker) Cycle(now time.Time) ([]RankedRecord, error) {
	snap, err := t.snapshots.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("process snapshot: %w", err)
	}

	for pid, info := range snap.Procs {
		t.samples.Append(pid, types.Sample{Timestamp: now, Usage: info.CPUPercent})
	}
	t.samples.Prune(now, t.cfg.Retention, snap.Alive)

	titles := t.titles.Titles()
	records := make([]types.Record, 0, t.samples.Len())
	for _, pid := range t.samples.PIDs() {
		percent := report.Reduce(t.samples.Samples(pid), t.coreCount)
		if !report.PassesThreshold(percent, t.cfg.CPUThreshold) {
			continue
		}
		info, ok := snap.Procs[pid]
		if !ok {
			// Exited after sampling, nothing left to report on.
			continue
		}
		records = append(records, types.Record{
			Name:        info.Name,
			PID:         pid,
			CPUPercent:  percent,
			MemoryBytes: info.MemoryBytes,
			ExtraInfo:   report.ExtraInfo(info, titles),
		})
	}
	report.Rank(records)

	ranked := make([]RankedRecord, 0, len(records))
	burn := make(map[int32]float64, len(records))
	for _, rec := range records {
		previous, ok := t.prevBurn[rec.PID]
		ranked = append(ranked, RankedRecord{
			Record: rec,
			Trend:  report.ClassifyTrend(rec.CPUPercent, previous, ok, report.DefaultTrendThreshold),
		})
		burn[rec.PID] = rec.CPUPercent
	}
	t.prevBurn = burn

	return ranked, nil
}

// PreviousBurn returns a copy of the percentages recorded by the most recent
// completed cycle, keyed by pid.
func (t *Tracker) PreviousBurn() map[int32]float64 {
	out := make(map[int32]float64, len(t.prevBurn))
	for pid, percent := range t.prevBurn {
		out[pid] = percent
	}
	return out
}
