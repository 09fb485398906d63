package report

// Trend classifies how a process's normalized utilization moved between two
// consecutive cycles.
type Trend int

const (
	// TrendUnknown means the pid had no value in the previous cycle.
	TrendUnknown Trend = iota
	// TrendUp means the utilization rose by more than the threshold.
	TrendUp
	// TrendDown means the utilization fell by more than the threshold.
	TrendDown
	// TrendStable covers everything else, including a delta exactly at the
	// threshold.
	TrendStable
)

// DefaultTrendThreshold is the minimum cross-cycle delta treated as movement.
const DefaultTrendThreshold = 0.1

// ClassifyTrend compares the current percentage against the previous cycle's
// value. ok is false when the pid had no previous value, which yields
// TrendUnknown regardless of current.
func ClassifyTrend(current, previous float64, ok bool, threshold float64) Trend {
	if !ok {
		return TrendUnknown
	}
	diff := current - previous
	switch {
	case diff > threshold:
		return TrendUp
	case diff < -threshold:
		return TrendDown
	default:
		return TrendStable
	}
}

// Indicator returns the glyph rendered next to a row. Stable and unknown rows
// both render as blank, matching the table's quiet default.
func (t Trend) Indicator() string {
	switch t {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	default:
		return " "
	}
}

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	case TrendStable:
		return "stable"
	default:
		return "unknown"
	}
}
