package ui

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/srodi/topshot/pkg/tracker"
)

// Column caps keep rows on one line even with verbose browser titles.
const (
	maxNameWidth  = 37
	maxExtraWidth = 40
)

// Truncate shortens s to max bytes, appending an ellipsis when it cuts.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// RenderTable writes the ranked process table for one cycle. rows must
// already be ranked; only the first topN are shown (topN <= 0 shows all).
func RenderTable(w io.Writer, rows []tracker.RankedRecord, retention time.Duration, topN int, now time.Time) {
	fmt.Fprintf(w, "Tracking window: %v | Updated: %s | Processes: %d\n\n",
		retention, now.Format(time.RFC3339), len(rows))

	if len(rows) == 0 {
		fmt.Fprintln(w, "No process data available yet. Collecting samples...")
		return
	}
	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPID\tCPU(%)\tMEM(MB)\t \tINFO")
	for i, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f\t%.1f\t%s\t%s\n",
			i+1,
			Truncate(row.Name, maxNameWidth),
			row.PID,
			row.CPUPercent,
			float64(row.MemoryBytes)/(1024*1024),
			row.Trend.Indicator(),
			Truncate(row.ExtraInfo, maxExtraWidth))
	}
	tw.Flush()
}
