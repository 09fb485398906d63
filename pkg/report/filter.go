package report

import "strings"

// IsKernelThread reports whether a row looks like a kernel housekeeping
// thread. These dominate the table on busy Linux hosts without telling the
// operator anything about their own workloads.
func IsKernelThread(pid int32, name string) bool {
	if pid == 0 {
		return true
	}
	name = strings.ToLower(name)
	switch {
	case strings.HasPrefix(name, "kworker"), strings.HasPrefix(name, "ksoftirqd"), strings.HasPrefix(name, "kthreadd"),
		strings.HasPrefix(name, "migration"), strings.HasPrefix(name, "watchdog"), strings.HasPrefix(name, "rcu"),
		strings.HasPrefix(name, "irq/"):
		return true
	}
	return false
}
