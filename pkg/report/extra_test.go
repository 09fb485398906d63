package report

import (
	"testing"

	"github.com/srodi/topshot/pkg/types"
)

func TestExtraInfoPriorityChain(t *testing.T) {
	cases := []struct {
		name     string
		info     types.ProcInfo
		titles   map[int32][]string
		expected string
	}{
		{
			name:     "ownTitlesWin",
			info:     types.ProcInfo{PID: 7, ParentPID: 3, Cmdline: []string{"app", "--serve"}, Cwd: "/srv"},
			titles:   map[int32][]string{7: {"Editor - main.go"}, 3: {"Terminal"}},
			expected: "Editor - main.go",
		},
		{
			name:     "multipleOwnTitlesJoined",
			info:     types.ProcInfo{PID: 7},
			titles:   map[int32][]string{7: {"Tab 1", "Tab 2"}},
			expected: "Tab 1, Tab 2",
		},
		{
			name:     "blankOwnTitlesFallThrough",
			info:     types.ProcInfo{PID: 7, ParentPID: 3},
			titles:   map[int32][]string{7: {"  ", ""}, 3: {"Parent Window"}},
			expected: "Parent Window",
		},
		{
			name:     "parentTitlesSecond",
			info:     types.ProcInfo{PID: 7, ParentPID: 3, Cmdline: []string{"app", "--serve"}},
			titles:   map[int32][]string{3: {"Parent Window"}},
			expected: "Parent Window",
		},
		{
			name:     "cmdlineArgsThird",
			info:     types.ProcInfo{PID: 7, Cmdline: []string{"/usr/bin/app", "--serve", "--port=8080", "--verbose"}},
			titles:   map[int32][]string{},
			expected: "--serve --port=8080",
		},
		{
			name:     "emptyArgsSkipped",
			info:     types.ProcInfo{PID: 7, Cmdline: []string{"/usr/bin/app", "", "  ", "--serve"}},
			titles:   map[int32][]string{},
			expected: "--serve",
		},
		{
			name:     "cwdFourth",
			info:     types.ProcInfo{PID: 7, Cmdline: []string{"/usr/bin/app"}, Cwd: "/home/dev/project"},
			titles:   map[int32][]string{},
			expected: "(/home/dev/project)",
		},
		{
			name:     "emptyLast",
			info:     types.ProcInfo{PID: 7, Cmdline: []string{"/usr/bin/app"}},
			titles:   map[int32][]string{},
			expected: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtraInfo(tc.info, tc.titles); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestIsKernelThread(t *testing.T) {
	cases := []struct {
		pid      int32
		procName string
		expected bool
	}{
		{0, "", true},
		{12, "kworker/0:1", true},
		{13, "ksoftirqd/2", true},
		{14, "rcu_sched", true},
		{15, "irq/9-acpi", true},
		{42, "api-server", false},
		{43, "Migrations", true}, // prefix match is case-insensitive
	}
	for _, tc := range cases {
		if got := IsKernelThread(tc.pid, tc.procName); got != tc.expected {
			t.Fatalf("IsKernelThread(%d, %q): expected %t, got %t", tc.pid, tc.procName, tc.expected, got)
		}
	}
}
