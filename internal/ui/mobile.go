package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/profile-header/internal/coordinator"
)

// MobileUI provides device-specific choices for the profile page
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// PointerKind returns the pointer the page should assume before any input arrives
func (m *MobileUI) PointerKind() coordinator.PointerKind {
	if m.IsMobileDevice() {
		return coordinator.PointerTouch
	}
	return coordinator.PointerMouse
}

// TileSize returns the grid tile edge, enlarged to a touch target on mobile
func (m *MobileUI) TileSize() float32 {
	if m.IsMobileDevice() && GridTileSize < MinTouchTargetSize*2 {
		return MinTouchTargetSize * 2
	}
	return GridTileSize
}
