package model

import "math"

// SurfaceID identifies one of the interchangeable scrollable surfaces
type SurfaceID string

const (
	// SurfaceInfo is the info panel
	SurfaceInfo SurfaceID = "info"

	// SurfaceList is the item list
	SurfaceList SurfaceID = "list"

	// SurfaceGrid is the item grid
	SurfaceGrid SurfaceID = "grid"
)

// String returns the surface identifier
func (id SurfaceID) String() string {
	return string(id)
}

// DefaultSurfaces returns the surfaces of the profile page in pivot order
func DefaultSurfaces() []SurfaceID {
	return []SurfaceID{SurfaceInfo, SurfaceList, SurfaceGrid}
}

// ScrollState is the last known scroll position and extent of one surface
type ScrollState struct {
	Surface        SurfaceID
	Offset         float64 // vertical offset, 0 at rest
	ViewportHeight float64
	ContentHeight  float64
	Measured       bool // false until the host has reported a layout for the surface
}

// ScrollableHeight returns how far the content can scroll
func (s ScrollState) ScrollableHeight() float64 {
	return math.Max(0, s.ContentHeight-s.ViewportHeight)
}

// Measure records viewport and content sizes and marks the state as measured
func (s *ScrollState) Measure(viewport, content float64) {
	if !finite(viewport) || !finite(content) || viewport <= 0 {
		return
	}
	s.ViewportHeight = viewport
	s.ContentHeight = content
	s.Measured = true
}
