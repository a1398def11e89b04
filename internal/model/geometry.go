package model

import (
	"fmt"
	"math"
)

// DefaultScaleDivisor is the username scale divisor used by the profile page
const DefaultScaleDivisor = 4

// Geometry is the measured layout of the header for one layout pass
type Geometry struct {
	AvatarHeight        float64 // avatar height including its vertical margins
	UsernameHeight      float64 // username and status block
	ActionButtonsHeight float64 // action buttons row
	ScaleDivisor        float64 // username scale divisor, S
	HeaderHeight        float64 // full header height, 0 if unknown
}

// NewGeometry creates a geometry snapshot with the default scale divisor
func NewGeometry(avatar, username, actionButtons float64) Geometry {
	return Geometry{
		AvatarHeight:        avatar,
		UsernameHeight:      username,
		ActionButtonsHeight: actionButtons,
		ScaleDivisor:        DefaultScaleDivisor,
	}
}

// Validate reports ErrDegenerateGeometry when the snapshot cannot drive the mapping
func (g Geometry) Validate() error {
	if !finite(g.AvatarHeight) || g.AvatarHeight <= 0 {
		return fmt.Errorf("%w: avatar height %v", ErrDegenerateGeometry, g.AvatarHeight)
	}
	if !finite(g.UsernameHeight) || g.UsernameHeight < 0 {
		return fmt.Errorf("%w: username height %v", ErrDegenerateGeometry, g.UsernameHeight)
	}
	if !finite(g.ActionButtonsHeight) || g.ActionButtonsHeight < 0 {
		return fmt.Errorf("%w: action buttons height %v", ErrDegenerateGeometry, g.ActionButtonsHeight)
	}
	if !finite(g.ScaleDivisor) || g.ScaleDivisor <= 0 {
		return fmt.Errorf("%w: scale divisor %v", ErrDegenerateGeometry, g.ScaleDivisor)
	}
	if !finite(g.HeaderHeight) || g.HeaderHeight < 0 {
		return fmt.Errorf("%w: header height %v", ErrDegenerateGeometry, g.HeaderHeight)
	}
	return nil
}

// FadeDistance returns H_a + H_b, the distance over which the avatar and buttons fade out
func (g Geometry) FadeDistance() float64 {
	return g.AvatarHeight + g.ActionButtonsHeight
}

// UsernameShrink returns H_u / S, the height the username block loses when compact
func (g Geometry) UsernameShrink() float64 {
	return g.UsernameHeight / g.ScaleDivisor
}

// CollapseDistance returns hh, the scroll distance between the expanded and compact header
func (g Geometry) CollapseDistance() float64 {
	return g.FadeDistance() + g.UsernameShrink()
}

// CompactHeaderHeight returns the height of the header once fully collapsed
func (g Geometry) CompactHeaderHeight() float64 {
	return math.Max(0, g.HeaderHeight-g.CollapseDistance())
}

// Rounded returns a copy with every measured height rounded to whole units
func (g Geometry) Rounded() Geometry {
	g.AvatarHeight = math.Round(g.AvatarHeight)
	g.UsernameHeight = math.Round(g.UsernameHeight)
	g.ActionButtonsHeight = math.Round(g.ActionButtonsHeight)
	g.HeaderHeight = math.Round(g.HeaderHeight)
	return g
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return finite(v)
}
