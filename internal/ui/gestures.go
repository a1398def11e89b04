package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/profile-header/internal/coordinator"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// GestureHandler turns touch down/up pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown starts tracking a touch
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp classifies the finished touch
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	duration := time.Since(gh.touchStartTime)
	gh.touchStartTime = time.Time{}

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	gh.triggerGesture(gh.classify(dx, dy, duration))
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// classify determines the gesture for a movement of (dx, dy) lasting duration
func (gh *GestureHandler) classify(dx, dy float32, duration time.Duration) GestureType {
	distance := float32(math.Hypot(float64(dx), float64(dy)))

	if distance < gh.swipeThreshold {
		if duration >= gh.longPressDuration {
			return GestureLongPress
		}
		return GestureTap
	}

	// Determine primary direction
	if abs32(dx) > abs32(dy) {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gesture != GestureNone && gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// SwipeArea wraps the scroll surfaces: horizontal swipes flip between them
// and pointer entry reports the input device to the coordinator.
type SwipeArea struct {
	widget.BaseWidget
	content        fyne.CanvasObject
	gestureHandler *GestureHandler
	onPointer      func(coordinator.PointerKind)
}

// NewSwipeArea creates a new swipe area around content
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType), onPointer func(coordinator.PointerKind)) *SwipeArea {
	sa := &SwipeArea{
		content:        content,
		gestureHandler: NewGestureHandler(onGesture),
		onPointer:      onPointer,
	}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer returns the renderer for the wrapped content
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// TouchDown handles touch down events
func (sa *SwipeArea) TouchDown(event *mobile.TouchEvent) {
	sa.pointer(coordinator.PointerTouch)
	sa.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (sa *SwipeArea) TouchUp(event *mobile.TouchEvent) {
	sa.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (sa *SwipeArea) TouchCancel(event *mobile.TouchEvent) {
	sa.gestureHandler.TouchCancel(event)
}

// MouseIn reports a mouse pointer entering the surfaces
func (sa *SwipeArea) MouseIn(*desktop.MouseEvent) {
	sa.pointer(coordinator.PointerMouse)
}

// MouseMoved is required by desktop.Hoverable
func (sa *SwipeArea) MouseMoved(*desktop.MouseEvent) {}

// MouseOut is required by desktop.Hoverable
func (sa *SwipeArea) MouseOut() {}

func (sa *SwipeArea) pointer(kind coordinator.PointerKind) {
	if sa.onPointer != nil {
		sa.onPointer(kind)
	}
}
