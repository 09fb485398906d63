package report

import (
	"strings"

	"github.com/srodi/topshot/pkg/types"
)

// extraInfoArgLimit caps how many command-line arguments make it into the
// fallback label.
const extraInfoArgLimit = 2

// ExtraInfo resolves the label that disambiguates multiple instances of the
// same executable. The chain runs once per process per cycle, first match
// wins:
//
//  1. the process's own window titles
//  2. the parent process's window titles
//  3. the first one or two command-line arguments after the executable
//  4. the working directory in parentheses
//  5. an empty string
func ExtraInfo(info types.ProcInfo, titles map[int32][]string) string {
	if label := joinTitles(titles[info.PID]); label != "" {
		return label
	}
	if info.ParentPID > 0 {
		if label := joinTitles(titles[info.ParentPID]); label != "" {
			return label
		}
	}
	if len(info.Cmdline) > 1 {
		args := make([]string, 0, extraInfoArgLimit)
		for _, arg := range info.Cmdline[1:] {
			arg = strings.TrimSpace(arg)
			if arg == "" {
				continue
			}
			args = append(args, arg)
			if len(args) == extraInfoArgLimit {
				break
			}
		}
		if len(args) > 0 {
			return strings.Join(args, " ")
		}
	}
	if info.Cwd != "" {
		return "(" + info.Cwd + ")"
	}
	return ""
}

func joinTitles(titles []string) string {
	var kept []string
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title != "" {
			kept = append(kept, title)
		}
	}
	return strings.Join(kept, ", ")
}
