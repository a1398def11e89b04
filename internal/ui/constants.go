package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconInfo     = "ℹ"
	IconList     = "☰"
	IconGrid     = "▦"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	ItemLabelFormat    = "%s %d"
)

// Header text sizes; the display name size comes from the profile
const (
	StatusTextSize float32 = 12
	UsernameGap    float32 = 2
	InitialsScale  float32 = 0.4
)

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 720

	GridTileSize   float32 = 96
	ListRowPadding float32 = 4
	ScrollBarWidth float32 = 14

	// Action buttons are laid out in equal slots; this is the button width within its slot
	ActionSlotFill float32 = 0.8

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	// Below this opacity an action button is hidden instead of drawn
	MinVisibleOpacity = 0.05
)

// Snap animation
const (
	SnapFPS       = 60
	SnapFrequency = 8.0
	SnapDamping   = 1.0
	MaxSnapSteps  = 180
	SnapTolerance = 0.5
)

// Gesture thresholds
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// Info surface filler so the panel scrolls past the header
const (
	InfoFillerLines = 40
)
