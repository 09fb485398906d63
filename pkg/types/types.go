package types

import "time"

// Configuration defaults shared by the CLI and the config file loader.
const (
	// DefaultTopN controls how many top processes we display per cycle.
	DefaultTopN = 20
	// DefaultRetentionSeconds is the trailing window samples are kept for.
	DefaultRetentionSeconds = 60
	// DefaultCPUThreshold is the minimum normalized percentage a process
	// must average to appear in the output.
	DefaultCPUThreshold = 1.0
	// DefaultInterval is how often a refresh cycle runs.
	DefaultInterval = 2 * time.Second
)

// Sample is one raw CPU reading for a process at a specific time. Usage is
// cumulative across cores, so it can exceed 100 on multi-core hosts.
type Sample struct {
	Timestamp time.Time
	Usage     float64
}

// ProcInfo is one row of a process snapshot as reported by the host.
type ProcInfo struct {
	PID         int32
	Name        string
	CPUPercent  float64 // raw, cumulative across cores
	MemoryBytes uint64
	Cmdline     []string
	Cwd         string
	ParentPID   int32
}

// Record is the aggregated output for one process during one cycle.
// CPUPercent is normalized so 100 means one full core saturated.
type Record struct {
	Name        string
	PID         int32
	CPUPercent  float64
	MemoryBytes uint64
	ExtraInfo   string
}
