package ui

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/ytget/profile-header/internal/model"
)

// SnapAnimator scrolls a surface to a snap offset along a critically damped spring
type SnapAnimator struct {
	spring   harmonica.Spring
	interval time.Duration
	dispatch func(func())
	apply    func(id model.SurfaceID, offset float64)

	mu  sync.Mutex
	gen uint64
}

// NewSnapAnimator creates an animator; dispatch runs each step on the UI thread
func NewSnapAnimator(dispatch func(func()), apply func(model.SurfaceID, float64)) *SnapAnimator {
	return &SnapAnimator{
		spring:   harmonica.NewSpring(harmonica.FPS(SnapFPS), SnapFrequency, SnapDamping),
		interval: time.Second / SnapFPS,
		dispatch: dispatch,
		apply:    apply,
	}
}

// Path returns the offsets of each animation frame from from to to, ending exactly at to
func (a *SnapAnimator) Path(from, to float64) []float64 {
	if from == to {
		return nil
	}

	path := make([]float64, 0, MaxSnapSteps)
	pos, vel := from, 0.0
	for len(path) < MaxSnapSteps-1 {
		pos, vel = a.spring.Update(pos, vel, to)
		if math.Abs(pos-to) < SnapTolerance && math.Abs(vel) < SnapTolerance {
			break
		}
		path = append(path, pos)
	}
	return append(path, to)
}

// Animate moves surface id from from to to, replacing any running animation
func (a *SnapAnimator) Animate(id model.SurfaceID, from, to float64) {
	path := a.Path(from, to)

	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.mu.Unlock()

	if len(path) == 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		for _, offset := range path {
			<-ticker.C
			if !a.running(gen) {
				return
			}
			a.dispatch(func() {
				if a.running(gen) {
					a.apply(id, offset)
				}
			})
		}
	}()
}

// Cancel stops the running animation, if any
func (a *SnapAnimator) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
}

func (a *SnapAnimator) running(gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen == gen
}
