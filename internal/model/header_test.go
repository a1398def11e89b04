package model

import "testing"

func TestHeaderStateAt(t *testing.T) {
	const hh = 100.0
	tests := []struct {
		offset   float64
		expected HeaderState
	}{
		{0, HeaderExpanded},
		{30, HeaderExpanded},
		{49.9, HeaderExpanded},
		{50, HeaderCompact},
		{70, HeaderCompact},
		{100, HeaderCompact},
		{400, HeaderCompact},
	}

	for _, test := range tests {
		if got := HeaderStateAt(test.offset, hh); got != test.expected {
			t.Errorf("HeaderStateAt(%v, %v) = %s, expected %s", test.offset, hh, got, test.expected)
		}
	}
}

func TestHeaderState_RestOffset(t *testing.T) {
	if got := HeaderExpanded.RestOffset(135); got != 0 {
		t.Errorf("Expanded rest offset = %v, expected 0", got)
	}
	if got := HeaderCompact.RestOffset(135); got != 135 {
		t.Errorf("Compact rest offset = %v, expected 135", got)
	}
}
