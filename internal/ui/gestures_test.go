package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

func TestGestureHandler_Classify(t *testing.T) {
	gh := NewGestureHandler(nil)
	tests := []struct {
		dx, dy   float32
		duration time.Duration
		expected GestureType
	}{
		{0, 0, 50 * time.Millisecond, GestureTap},
		{10, 10, 50 * time.Millisecond, GestureTap},
		{5, 5, time.Second, GestureLongPress},
		{-120, 10, 200 * time.Millisecond, GestureSwipeLeft},
		{120, -30, 200 * time.Millisecond, GestureSwipeRight},
		{10, 200, 200 * time.Millisecond, GestureSwipeDown},
		{-20, -90, 200 * time.Millisecond, GestureSwipeUp},
		// slow swipes are still swipes
		{-200, 0, 2 * time.Second, GestureSwipeLeft},
	}

	for _, test := range tests {
		if got := gh.classify(test.dx, test.dy, test.duration); got != test.expected {
			t.Errorf("classify(%v, %v, %v) = %v, expected %v", test.dx, test.dy, test.duration, got, test.expected)
		}
	}
}

func TestGestureHandler_TouchSequence(t *testing.T) {
	var gestures []GestureType
	gh := NewGestureHandler(func(g GestureType) { gestures = append(gestures, g) })

	gh.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 100)}})
	gh.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 110)}})

	// cancelled touches produce nothing
	gh.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(0, 0)}})
	gh.TouchCancel(nil)
	gh.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(300, 0)}})

	if len(gestures) != 1 || gestures[0] != GestureSwipeLeft {
		t.Errorf("Expected a single left swipe, got %v", gestures)
	}
}
