package animation

import (
	"fmt"
	"strings"

	"github.com/ytget/profile-header/internal/model"
)

// Value is the computed value of one target
type Value struct {
	Target model.Target
	Value  float64
}

// Frame holds the values of every declared target for one scroll distance
type Frame struct {
	Distance float64
	Values   []Value
}

// Value returns the value computed for t
func (f Frame) Value(t model.Target) (float64, bool) {
	for _, v := range f.Values {
		if v.Target == t {
			return v.Value, true
		}
	}
	return 0, false
}

// Lookup returns the value of element.property at index 0, or fallback when absent
func (f Frame) Lookup(e model.Element, p model.Property, fallback float64) float64 {
	if v, ok := f.Value(model.Target{Element: e, Property: p}); ok {
		return v
	}
	return fallback
}

// Button returns the value of property p for the action button at index i, or fallback
func (f Frame) Button(i int, p model.Property, fallback float64) float64 {
	if v, ok := f.Value(model.Target{Element: model.ElementActionButton, Index: i, Property: p}); ok {
		return v
	}
	return fallback
}

// String renders the frame one target per line
func (f Frame) String() string {
	var b strings.Builder
	for _, v := range f.Values {
		fmt.Fprintf(&b, "%-28s %8.3f\n", v.Target, v.Value)
	}
	return b.String()
}
