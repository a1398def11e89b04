package coordinator

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/profile-header/internal/animation"
	"github.com/ytget/profile-header/internal/model"
)

// DefaultSettleDelay is how long the scrollbar range update waits for the host layout pass
const DefaultSettleDelay = 50 * time.Millisecond

// ScrollNotification is a scroll-offset-changing event from one surface
type ScrollNotification struct {
	Surface        model.SurfaceID
	CurrentOffset  float64 // offset currently displayed
	NextOffset     float64 // offset of the next displayed view
	FinalOffset    float64 // offset the gesture will come to rest at
	IsInertial     bool
	ViewportHeight float64 // 0 if unchanged
	ContentHeight  float64
}

func (n ScrollNotification) validate() error {
	for _, v := range []float64{n.CurrentOffset, n.NextOffset, n.FinalOffset} {
		if !model.IsFinite(v) {
			return fmt.Errorf("%w: %v on %s", model.ErrInvalidOffset, v, n.Surface)
		}
	}
	return nil
}

// Option configures a Service
type Option func(*Service)

// WithScheduler sets the scheduler for deferred scrollbar range updates
func WithScheduler(scheduler Scheduler) Option {
	return func(s *Service) {
		if scheduler != nil {
			s.scheduler = scheduler
		}
	}
}

// WithSettleDelay sets the delay before the scrollbar range follows a new surface
func WithSettleDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.settleDelay = d
		}
	}
}

// WithSnap enables or disables snapping the header to a rest state
func WithSnap(enabled bool) Option {
	return func(s *Service) {
		s.snap = enabled
	}
}

// activation identifies one scheduled scrollbar range update.
// Only the update whose id matches the service's current activation may apply.
type activation struct {
	id      uuid.UUID
	surface model.SurfaceID
	stop    func() bool
}

// Service coordinates the scroll surfaces with the header animations
type Service struct {
	mu sync.Mutex

	engine      *animation.Engine
	sink        Sink
	scheduler   Scheduler
	settleDelay time.Duration
	snap        bool

	surfaces    map[model.SurfaceID]*model.ScrollState
	geometry    model.Geometry
	hasGeometry bool

	active     model.SurfaceID
	hasActive  bool
	pending    model.SurfaceID
	hasPending bool
	header     model.HeaderState

	current    activation
	scrollBar  ScrollBarUpdate
}

// NewService creates a coordinator that drives engine and reports to sink
func NewService(engine *animation.Engine, sink Sink, opts ...Option) *Service {
	s := &Service{
		engine:      engine,
		sink:        sink,
		scheduler:   NewTimerScheduler(nil),
		settleDelay: DefaultSettleDelay,
		snap:        true,
		surfaces:    make(map[model.SurfaceID]*model.ScrollState),
		header:      model.HeaderExpanded,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Coordinator = (*Service)(nil)

// Configure applies options to a running service, for example after the settings change
func (s *Service) Configure(opts ...Option) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, opt := range opts {
		opt(s)
	}
}

// effect is work done after the lock is released; the sink may call back into the service
type effect func()

func run(effects []effect) {
	for _, fx := range effects {
		fx()
	}
}

// RegisterSurface creates the scroll state of a surface
func (s *Service) RegisterSurface(id model.SurfaceID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.surfaces[id]; !exists {
		s.surfaces[id] = &model.ScrollState{Surface: id}
	}
}

// UpdateSurfaceMetrics records the viewport and content height of a surface
func (s *Service) UpdateSurfaceMetrics(id model.SurfaceID, viewport, content float64) error {
	s.mu.Lock()
	state, exists := s.surfaces[id]
	if !exists {
		s.mu.Unlock()
		log.Printf("Ignoring metrics for unregistered surface %s", id)
		return fmt.Errorf("%w: %s", model.ErrUnknownSurface, id)
	}

	state.Measure(viewport, content)

	var effects []effect
	if s.hasActive && s.active == id {
		effects = append(effects, s.scheduleRange())
	}
	effects = append(effects, s.completePending()...)
	s.mu.Unlock()

	run(effects)
	return nil
}

// OnGeometryChanged stores a new geometry snapshot and re-evaluates the header
func (s *Service) OnGeometryChanged(g model.Geometry) error {
	if err := g.Validate(); err != nil {
		s.mu.Lock()
		s.hasGeometry = false
		s.mu.Unlock()
		log.Printf("Header geometry rejected: %v", err)
		return err
	}

	s.mu.Lock()
	s.geometry = g
	s.hasGeometry = true

	var effects []effect
	if s.hasActive {
		offset := s.surfaces[s.active].Offset
		s.header = model.HeaderStateAt(offset, g.CollapseDistance())
		effects = append(effects, s.frameAt(offset)...)
	}
	effects = append(effects, s.completePending()...)
	s.mu.Unlock()

	run(effects)
	return nil
}

// SetActiveSurface makes id the surface that drives the header.
// Activation waits until the surface is measured and geometry is known.
func (s *Service) SetActiveSurface(id model.SurfaceID) error {
	s.mu.Lock()
	state, exists := s.surfaces[id]
	if !exists {
		s.mu.Unlock()
		log.Printf("Ignoring switch to unregistered surface %s", id)
		return fmt.Errorf("%w: %s", model.ErrUnknownSurface, id)
	}

	if !state.Measured || !s.hasGeometry {
		s.pending = id
		s.hasPending = true
		s.mu.Unlock()
		log.Printf("Deferring activation of %s until it is measured", id)
		return nil
	}

	effects := s.activate(id)
	s.mu.Unlock()

	run(effects)
	return nil
}

// OnOffsetChanging handles a scroll notification from any registered surface
func (s *Service) OnOffsetChanging(n ScrollNotification) error {
	if err := n.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	state, exists := s.surfaces[n.Surface]
	if !exists {
		s.mu.Unlock()
		log.Printf("Ignoring scroll on unregistered surface %s", n.Surface)
		return fmt.Errorf("%w: %s", model.ErrUnknownSurface, n.Surface)
	}

	state.Offset = n.NextOffset
	resized := false
	if n.ViewportHeight > 0 {
		viewport, content := state.ViewportHeight, state.ContentHeight
		state.Measure(n.ViewportHeight, n.ContentHeight)
		resized = state.ViewportHeight != viewport || state.ContentHeight != content
	}

	var effects []effect
	if s.snap && s.hasGeometry {
		if target, ok := SnapTarget(n, s.geometry.CollapseDistance()); ok {
			cmd := ScrollCommand{Surface: n.Surface, Offset: target, Reason: ReasonSnap, Animated: true}
			effects = append(effects, func() { s.sink.ScrollTo(cmd) })
		}
	}

	if s.hasActive && s.active == n.Surface {
		enabled := n.NextOffset == 0
		effects = append(effects, func() { s.sink.SetActionButtonsEnabled(enabled) })

		s.scrollBar.Value = n.CurrentOffset
		update := s.scrollBar
		effects = append(effects, func() { s.sink.UpdateScrollBar(update) })
		if resized {
			effects = append(effects, s.scheduleRange())
		}

		if s.hasGeometry {
			s.header = model.HeaderStateAt(n.NextOffset, s.geometry.CollapseDistance())
		}
		effects = append(effects, s.frameAt(n.NextOffset)...)
	}

	effects = append(effects, s.completePending()...)
	s.mu.Unlock()

	run(effects)
	return nil
}

// OnScrollBarScroll moves the active surface to follow a drag on the scrollbar proxy
func (s *Service) OnScrollBarScroll(value float64) error {
	if !model.IsFinite(value) {
		return fmt.Errorf("%w: scrollbar value %v", model.ErrInvalidOffset, value)
	}

	s.mu.Lock()
	if !s.hasActive {
		s.mu.Unlock()
		return nil
	}
	state := s.surfaces[s.active]
	cmd := ScrollCommand{
		Surface: s.active,
		Offset:  math.Min(math.Max(value, 0), state.ScrollableHeight()),
		Reason:  ReasonScrollBar,
	}
	s.mu.Unlock()

	s.sink.ScrollTo(cmd)
	return nil
}

// OnPointerEntered switches the scrollbar indicator to match the pointer device
func (s *Service) OnPointerEntered(kind PointerKind) {
	indicator, ok := s.sink.(IndicatorSink)
	if !ok {
		return
	}
	if kind == PointerMouse {
		indicator.SetIndicatorMode(IndicatorMouse)
		return
	}
	indicator.SetIndicatorMode(IndicatorTouch)
}

// Active returns the surface currently driving the header
func (s *Service) Active() (model.SurfaceID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.hasActive
}

// HeaderState returns the header state for the active surface's offset
func (s *Service) HeaderState() model.HeaderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.header
}

// State returns a copy of the scroll state of a surface
func (s *Service) State(id model.SurfaceID) (model.ScrollState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, exists := s.surfaces[id]
	if !exists {
		return model.ScrollState{}, false
	}
	return *state, true
}

// activate switches the active surface. Caller holds the lock.
func (s *Service) activate(id model.SurfaceID) []effect {
	state := s.surfaces[id]

	s.active = id
	s.hasActive = true
	s.hasPending = false
	s.header = model.HeaderStateAt(state.Offset, s.geometry.CollapseDistance())

	enabled := state.Offset == 0
	s.scrollBar.Value = state.Offset
	update := s.scrollBar

	effects := s.frameAt(state.Offset)
	effects = append(effects,
		func() { s.sink.SetActionButtonsEnabled(enabled) },
		func() { s.sink.UpdateScrollBar(update) },
		s.scheduleRange(),
	)
	return effects
}

// completePending activates a deferred surface once it can be evaluated. Caller holds the lock.
func (s *Service) completePending() []effect {
	if !s.hasPending || !s.hasGeometry {
		return nil
	}
	if state := s.surfaces[s.pending]; !state.Measured {
		return nil
	}
	return s.activate(s.pending)
}

// frameAt evaluates the engine for the current geometry. Caller holds the lock.
func (s *Service) frameAt(offset float64) []effect {
	if !s.hasGeometry {
		return nil
	}
	frame, err := s.engine.Evaluate(s.geometry, offset)
	if err != nil {
		log.Printf("Header animation skipped at offset %v: %v", offset, err)
		return nil
	}
	return []effect{func() { s.sink.ApplyFrame(frame) }}
}

// scheduleRange supersedes any pending range update with one for the active
// surface. Caller holds the lock; the returned effect does the scheduling.
func (s *Service) scheduleRange() effect {
	if s.current.stop != nil {
		s.current.stop()
	}
	act := activation{id: uuid.New(), surface: s.active}
	s.current = act
	delay := s.settleDelay

	return func() {
		stop := s.scheduler.AfterFunc(delay, func() { s.applyRange(act) })

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.current.id == act.id {
			s.current.stop = stop
			return
		}
		stop()
	}
}

// applyRange pushes the active surface's range unless a newer activation took over
func (s *Service) applyRange(act activation) {
	s.mu.Lock()
	if act.id != s.current.id || !s.hasActive || s.active != act.surface {
		s.mu.Unlock()
		log.Printf("Discarding stale scrollbar range %s for %s", act.id, act.surface)
		return
	}
	state := s.surfaces[s.active]
	s.scrollBar.Maximum = state.ScrollableHeight()
	s.scrollBar.ViewportSize = state.ViewportHeight
	update := s.scrollBar
	s.mu.Unlock()

	s.sink.UpdateScrollBar(update)
}
