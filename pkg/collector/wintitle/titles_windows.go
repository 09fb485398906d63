//go:build windows

package wintitle

import (
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
)

// enumCallback is created once: Windows callbacks registered through
// syscall.NewCallback are never released.
var enumCallback = syscall.NewCallback(collectWindow)

// collected is the target map for the enumeration in flight. Titles is only
// called from the single-threaded cycle loop, so one slot is enough.
var collected map[int32][]string

// Provider enumerates visible top-level windows and groups their titles by
// owning process.
type Provider struct{}

// NewProvider returns the user32-backed provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Titles returns the visible window titles per pid. An enumeration failure
// yields whatever was collected before it; the result is never nil. Not safe
// for concurrent use.
func (p *Provider) Titles() map[int32][]string {
	collected = make(map[int32][]string)
	procEnumWindows.Call(enumCallback, 0)
	out := collected
	collected = nil
	return out
}

func collectWindow(hwnd uintptr, _ uintptr) uintptr {
	const continueEnum = 1

	if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
		return continueEnum
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return continueEnum
	}

	length, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if length == 0 {
		return continueEnum
	}

	buf := make([]uint16, length+1)
	copied, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), length+1)
	if copied == 0 {
		return continueEnum
	}

	title := strings.TrimSpace(windows.UTF16ToString(buf[:copied]))
	if title != "" {
		collected[int32(pid)] = append(collected[int32(pid)], title)
	}
	return continueEnum
}
