//go:build !windows

package wintitle

import "testing"

func TestStubTitlesAlwaysEmpty(t *testing.T) {
	p := NewProvider()
	titles := p.Titles()
	if titles == nil {
		t.Fatalf("titles must be an empty map, never nil")
	}
	if len(titles) != 0 {
		t.Fatalf("stub provider returned %d entries", len(titles))
	}
}
