//go:build !windows

// Package wintitle resolves visible window titles per process on platforms
// that can enumerate them.
package wintitle

// Provider is the no-title implementation for platforms without a window
// enumeration API. An empty result is a correct result, not a degraded one.
type Provider struct{}

// NewProvider returns the no-op provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Titles always returns an empty mapping.
func (p *Provider) Titles() map[int32][]string {
	return map[int32][]string{}
}
