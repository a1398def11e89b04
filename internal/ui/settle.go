package ui

import (
	"sync"
	"time"

	"github.com/ytget/profile-header/internal/coordinator"
	"github.com/ytget/profile-header/internal/model"
)

// SettleDetector reports when a surface stops scrolling.
// Fyne delivers no inertia information, so a quiet period after the last
// scroll event stands in for the end of inertial scrolling.
type SettleDetector struct {
	quiet     time.Duration
	scheduler coordinator.Scheduler
	onSettle  func(id model.SurfaceID, offset float64)

	mu    sync.Mutex
	gens  map[model.SurfaceID]uint64
	stops map[model.SurfaceID]func() bool
}

// NewSettleDetector creates a detector that calls onSettle after quiet without scrolling
func NewSettleDetector(quiet time.Duration, scheduler coordinator.Scheduler, onSettle func(model.SurfaceID, float64)) *SettleDetector {
	return &SettleDetector{
		quiet:     quiet,
		scheduler: scheduler,
		onSettle:  onSettle,
		gens:      make(map[model.SurfaceID]uint64),
		stops:     make(map[model.SurfaceID]func() bool),
	}
}

// Touch records scroll activity on a surface and restarts its quiet period
func (d *SettleDetector) Touch(id model.SurfaceID, offset float64) {
	d.mu.Lock()
	if stop := d.stops[id]; stop != nil {
		stop()
	}
	d.gens[id]++
	gen := d.gens[id]
	quiet := d.quiet
	d.mu.Unlock()

	stop := d.scheduler.AfterFunc(quiet, func() {
		d.mu.Lock()
		current := d.gens[id] == gen
		if current {
			delete(d.stops, id)
		}
		d.mu.Unlock()

		if current && d.onSettle != nil {
			d.onSettle(id, offset)
		}
	})

	d.mu.Lock()
	if d.gens[id] == gen {
		d.stops[id] = stop
	}
	d.mu.Unlock()
}

// SetQuiet changes the quiet period for scrolls that start afterwards
func (d *SettleDetector) SetQuiet(quiet time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.quiet = quiet
}

// Cancel drops any pending settle for the surface
func (d *SettleDetector) Cancel(id model.SurfaceID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if stop := d.stops[id]; stop != nil {
		stop()
	}
	delete(d.stops, id)
	d.gens[id]++
}
