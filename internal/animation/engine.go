package animation

import (
	"fmt"

	"github.com/ytget/profile-header/internal/model"
)

// DefaultButtonCount is the number of action buttons on the profile page
const DefaultButtonCount = 3

// Engine evaluates the declared header animations
type Engine struct {
	mappings []mapping
}

// NewEngine declares the header targets for buttonCount action buttons
func NewEngine(buttonCount int) *Engine {
	if buttonCount < 0 {
		buttonCount = 0
	}
	return &Engine{mappings: declareMappings(buttonCount)}
}

// Targets returns the declared targets in evaluation order
func (e *Engine) Targets() []model.Target {
	targets := make([]model.Target, len(e.mappings))
	for i, m := range e.mappings {
		targets[i] = m.target
	}
	return targets
}

// Bounds returns the clamp range of every target for geometry g
func (e *Engine) Bounds(g model.Geometry) (map[model.Target]model.Range, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	bounds := make(map[model.Target]model.Range, len(e.mappings))
	for _, m := range e.mappings {
		bounds[m.target] = m.bounds(g)
	}
	return bounds, nil
}

// Evaluate computes every target for scrolled distance d (the surface's vertical offset)
func (e *Engine) Evaluate(g model.Geometry, d float64) (Frame, error) {
	if err := g.Validate(); err != nil {
		return Frame{}, err
	}
	if !model.IsFinite(d) {
		return Frame{}, fmt.Errorf("%w: %v", model.ErrInvalidOffset, d)
	}

	values := make([]Value, len(e.mappings))
	for i, m := range e.mappings {
		bounds := m.bounds(g)
		v := m.raw(g, d)
		if !model.IsFinite(v) {
			return Frame{}, fmt.Errorf("%w: %s evaluated to %v", model.ErrDegenerateGeometry, m.target, v)
		}
		values[i] = Value{Target: m.target, Value: bounds.Clamp(v)}
	}

	return Frame{Distance: d, Values: values}, nil
}

// Rest returns the values every target takes with the header fully expanded
func (e *Engine) Rest() Frame {
	values := make([]Value, len(e.mappings))
	for i, m := range e.mappings {
		values[i] = Value{Target: m.target, Value: restValue(m.target.Property)}
	}
	return Frame{Values: values}
}

func restValue(p model.Property) float64 {
	switch p {
	case model.PropertyOpacity, model.PropertyScaleX, model.PropertyScaleY:
		return 1
	default:
		return 0
	}
}
