package coordinator

import (
	"github.com/ytget/profile-header/internal/animation"
	"github.com/ytget/profile-header/internal/model"
)

// ScrollBarUpdate is the state pushed to the external scrollbar proxy
type ScrollBarUpdate struct {
	Value        float64
	Maximum      float64
	ViewportSize float64
}

// CommandReason says why a scroll command was issued
type CommandReason int

const (
	// ReasonSnap is a corrective jump issued by the snap policy
	ReasonSnap CommandReason = iota

	// ReasonScrollBar relays a drag on the scrollbar proxy
	ReasonScrollBar
)

// String returns a readable name for the reason
func (r CommandReason) String() string {
	switch r {
	case ReasonSnap:
		return "snap"
	case ReasonScrollBar:
		return "scrollbar"
	default:
		return "unknown"
	}
}

// ScrollCommand asks the host to move a surface to an offset
type ScrollCommand struct {
	Surface  model.SurfaceID
	Offset   float64
	Reason   CommandReason
	Animated bool
}

// Sink receives everything the coordinator computes.
// The host applies these to its own rendering primitives.
type Sink interface {
	ApplyFrame(frame animation.Frame)
	UpdateScrollBar(update ScrollBarUpdate)
	ScrollTo(cmd ScrollCommand)
	SetActionButtonsEnabled(enabled bool)
}

// PointerKind is the device that entered the page
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
	PointerPen
)

// IndicatorMode selects how the scrollbar proxy is drawn
type IndicatorMode int

const (
	IndicatorMouse IndicatorMode = iota
	IndicatorTouch
)

// IndicatorSink is implemented by sinks that can switch the scrollbar indicator
type IndicatorSink interface {
	SetIndicatorMode(mode IndicatorMode)
}

// Coordinator defines the operations the host drives.
type Coordinator interface {
	RegisterSurface(id model.SurfaceID)
	UpdateSurfaceMetrics(id model.SurfaceID, viewport, content float64) error
	OnGeometryChanged(g model.Geometry) error
	SetActiveSurface(id model.SurfaceID) error
	OnOffsetChanging(n ScrollNotification) error
	OnScrollBarScroll(value float64) error
	OnPointerEntered(kind PointerKind)

	// Active returns the active surface, false before the first activation completes
	Active() (model.SurfaceID, bool)
	HeaderState() model.HeaderState
	State(id model.SurfaceID) (model.ScrollState, bool)
	DebugInfo() string
}
