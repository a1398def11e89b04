package model

import (
	"fmt"
	"math"
)

// Element is a visual part of the profile header
type Element string

const (
	ElementAvatar           Element = "avatar"
	ElementUsername         Element = "username"
	ElementHeaderBackground Element = "headerBackground"
	ElementActionButtons    Element = "actionButtons"
	ElementActionButton     Element = "actionButton"
	ElementPivotTabs        Element = "pivotTabs"
)

// Property is an animatable property of an element
type Property string

const (
	PropertyTranslateY Property = "translateY"
	PropertyOpacity    Property = "opacity"
	PropertyScaleX     Property = "scaleX"
	PropertyScaleY     Property = "scaleY"
	PropertyOffsetY    Property = "offsetY"
)

// Target names one animated property of one element.
// Index distinguishes the individual action buttons and is 0 elsewhere.
type Target struct {
	Element  Element
	Index    int
	Property Property
}

// String returns element.property, with the index for action buttons
func (t Target) String() string {
	if t.Element == ElementActionButton {
		return fmt.Sprintf("%s[%d].%s", t.Element, t.Index, t.Property)
	}
	return fmt.Sprintf("%s.%s", t.Element, t.Property)
}

// Range is a closed numeric interval
type Range struct {
	Min float64
	Max float64
}

// Clamp saturates v to the range
func (r Range) Clamp(v float64) float64 {
	return math.Min(math.Max(v, r.Min), r.Max)
}

// Contains reports whether v lies within the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp constrains v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return Range{Min: lo, Max: hi}.Clamp(v)
}
