package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/profile-header/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	window := test.NewWindow(nil)
	defer window.Close()

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved++ })
	sd.loadCurrentSettings()

	sd.divisorEntry.SetText("2.5")
	sd.delayEntry.SetText("5000")
	sd.quietEntry.SetText("not a number")
	sd.snapCheck.SetChecked(false)
	sd.debugCheck.SetChecked(true)
	sd.onSave(true)

	if saved != 1 {
		t.Errorf("Expected onSaved once, got %d", saved)
	}
	if got := settings.GetScaleDivisor(); got != 2.5 {
		t.Errorf("Expected divisor 2.5, got %v", got)
	}
	if got := settings.GetSettleDelay(); got != config.MaxSettleDelayMs*time.Millisecond {
		t.Errorf("Expected delay clamped to %dms, got %v", config.MaxSettleDelayMs, got)
	}
	if got := settings.GetSettleQuiet(); got != config.DefaultSettleQuietMs*time.Millisecond {
		t.Errorf("Invalid quiet period should keep the default, got %v", got)
	}
	if settings.GetSnapEnabled() {
		t.Error("Snap should be disabled")
	}
	if !settings.GetDebugOverlay() {
		t.Error("Debug overlay should be enabled")
	}
}

func TestSettingsDialog_Cancel(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	window := test.NewWindow(nil)
	defer window.Close()

	sd := NewSettingsDialog(settings, NewLocalization(), window, func() {
		t.Error("onSaved must not run on cancel")
	})
	sd.loadCurrentSettings()
	sd.divisorEntry.SetText("9")
	sd.onSave(false)

	if got := settings.GetScaleDivisor(); got != config.DefaultScaleDivisor {
		t.Errorf("Cancel must keep divisor %v, got %v", config.DefaultScaleDivisor, got)
	}
}
