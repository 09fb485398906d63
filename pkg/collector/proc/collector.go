// Package proc supplies per-cycle process snapshots backed by gopsutil.
package proc

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/srodi/topshot/pkg/types"
)

// Stub points for tests that must not touch the host process table.
var (
	listProcesses = process.Processes
	cpuCounts     = cpu.Counts
	pidExists     = process.PidExists
)

// Snapshot is the state of all live processes at one instant.
type Snapshot struct {
	Taken time.Time
	Procs map[int32]types.ProcInfo

	// Exists answers liveness for pids missing from Procs, used when pruning
	// history for processes a listing may have missed. nil means such pids
	// are treated as gone.
	Exists func(pid int32) bool
}

// Alive reports whether the pid was present in this snapshot or, failing
// that, still exists according to the host.
func (s *Snapshot) Alive(pid int32) bool {
	if _, ok := s.Procs[pid]; ok {
		return true
	}
	return s.Exists != nil && s.Exists(pid)
}

// Collector lists live processes with their instantaneous CPU readings. The
// same Collector must be reused across cycles: gopsutil derives CPUPercent
// from the delta since the previous call on the same process handle, so the
// handle cache is what turns cumulative clock readings into per-cycle
// percentages.
type Collector struct {
	handles   map[int32]*process.Process
	coreCount float64
}

// NewCollector verifies the host process table is readable and fixes the
// core count for the Collector's lifetime. A count that cannot be determined
// falls back to 1 so normalization never divides by zero.
func NewCollector() (*Collector, error) {
	if _, err := listProcesses(); err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}
	count, err := cpuCounts(true)
	if err != nil || count < 1 {
		count = 1
	}
	return &Collector{
		handles:   make(map[int32]*process.Process),
		coreCount: float64(count),
	}, nil
}

// CoreCount returns the logical core count read at construction time.
func (c *Collector) CoreCount() float64 {
	return c.coreCount
}

// Snapshot refreshes the handle cache in place and returns the current
// process table. Handles for pids that disappeared are dropped so their CPU
// baselines do not leak. Per-process attribute errors are not fatal: a
// process that vanishes mid-listing is skipped, and a denied attribute just
// leaves its field zero.
func (c *Collector) Snapshot() (*Snapshot, error) {
	procs, err := listProcesses()
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}

	now := time.Now()
	seen := make(map[int32]struct{}, len(procs))
	infos := make(map[int32]types.ProcInfo, len(procs))
	for _, p := range procs {
		if p == nil || p.Pid <= 0 {
			continue
		}
		handle, ok := c.handles[p.Pid]
		if !ok {
			handle = p
			c.handles[p.Pid] = handle
		}
		seen[p.Pid] = struct{}{}

		usage, err := handle.CPUPercent()
		if err != nil {
			continue
		}
		info := types.ProcInfo{PID: p.Pid, CPUPercent: usage}
		if name, err := handle.Name(); err == nil {
			info.Name = name
		}
		if mem, err := handle.MemoryInfo(); err == nil && mem != nil {
			info.MemoryBytes = mem.RSS
		}
		if args, err := handle.CmdlineSlice(); err == nil {
			info.Cmdline = args
		}
		if cwd, err := handle.Cwd(); err == nil {
			info.Cwd = cwd
		}
		if ppid, err := handle.Ppid(); err == nil {
			info.ParentPID = ppid
		}
		infos[p.Pid] = info
	}

	for pid := range c.handles {
		if _, ok := seen[pid]; !ok {
			delete(c.handles, pid)
		}
	}

	return &Snapshot{
		Taken: now,
		Procs: infos,
		Exists: func(pid int32) bool {
			exists, err := pidExists(pid)
			return err == nil && exists
		},
	}, nil
}
