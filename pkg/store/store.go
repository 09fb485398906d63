// Package store keeps the sliding window of CPU samples per process.
package store

import (
	"sort"
	"time"

	"github.com/srodi/topshot/pkg/types"
)

// SampleStore maps PIDs to their retained CPU samples, oldest first. Callers
// must append samples in non-decreasing timestamp order; Append does not
// validate ordering because the cycle model already guarantees it.
type SampleStore struct {
	history map[int32][]types.Sample
}

// New returns an empty store.
func New() *SampleStore {
	return &SampleStore{history: make(map[int32][]types.Sample)}
}

// Append adds a sample to the end of the pid's window, creating the entry if
// it is absent.
func (s *SampleStore) Append(pid int32, sample types.Sample) {
	s.history[pid] = append(s.history[pid], sample)
}

// Prune drops every sample older than the retention window, then removes any
// pid whose window ended up empty or whose process is no longer alive. The
// two conditions are independent: a dead pid is removed even if it still has
// fresh samples. A zero or negative retention prunes all but the newest
// readings.
func (s *SampleStore) Prune(now time.Time, retention time.Duration, alive func(pid int32) bool) {
	cutoff := now.Add(-retention)
	for pid, samples := range s.history {
		kept := samples[:0]
		for _, sample := range samples {
			if !sample.Timestamp.Before(cutoff) {
				kept = append(kept, sample)
			}
		}
		if len(kept) == 0 || !alive(pid) {
			delete(s.history, pid)
			continue
		}
		s.history[pid] = kept
	}
}

// Samples returns the retained window for a pid, nil if it is not tracked.
func (s *SampleStore) Samples(pid int32) []types.Sample {
	return s.history[pid]
}

// PIDs returns the tracked pids in ascending order so that cycle output is
// deterministic regardless of map iteration order.
func (s *SampleStore) PIDs() []int32 {
	pids := make([]int32, 0, len(s.history))
	for pid := range s.history {
		pids = append(pids, pid)
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })
	return pids
}

// Len reports how many pids are currently tracked.
func (s *SampleStore) Len() int {
	return len(s.history)
}
