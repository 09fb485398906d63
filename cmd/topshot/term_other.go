//go:build !linux

package main

// disableInputEcho is a no-op where termios tweaking is unavailable; the
// alternate screen buffer alone keeps the view usable.
func disableInputEcho(int) (func(), error) {
	return nil, nil
}
