package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyScaleDivisor  = "username_scale_divisor"
	KeySettleDelayMs = "scrollbar_settle_delay_ms"
	KeySnapEnabled   = "snap_enabled"
	KeyDebugOverlay  = "debug_overlay"
	KeyLanguage      = "app_language"
	KeySettleQuietMs = "scroll_settle_quiet_ms"
)

// Default values
const (
	DefaultScaleDivisor  = 4.0
	DefaultSettleDelayMs = 50
	DefaultSnapEnabled   = true
	DefaultDebugOverlay  = false
	DefaultLanguage      = "system"
	DefaultSettleQuietMs = 150
)

// Limits for user-editable values
const (
	MinScaleDivisor  = 1.0
	MaxScaleDivisor  = 10.0
	MinSettleDelayMs = 0
	MaxSettleDelayMs = 1000
	MinSettleQuietMs = 50
	MaxSettleQuietMs = 2000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetScaleDivisor returns the username scale divisor
func (s *Settings) GetScaleDivisor() float64 {
	value := s.app.Preferences().Float(KeyScaleDivisor)
	if value <= 0 {
		s.SetScaleDivisor(DefaultScaleDivisor)
		return DefaultScaleDivisor
	}
	return value
}

// SetScaleDivisor sets the username scale divisor
func (s *Settings) SetScaleDivisor(divisor float64) {
	if divisor < MinScaleDivisor {
		divisor = MinScaleDivisor
	}
	if divisor > MaxScaleDivisor {
		divisor = MaxScaleDivisor
	}
	s.app.Preferences().SetFloat(KeyScaleDivisor, divisor)
}

// GetSettleDelay returns how long the scrollbar range waits after a surface switch
func (s *Settings) GetSettleDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeySettleDelayMs, DefaultSettleDelayMs)
	return time.Duration(ms) * time.Millisecond
}

// SetSettleDelay sets the scrollbar settle delay in milliseconds
func (s *Settings) SetSettleDelay(ms int) {
	s.app.Preferences().SetInt(KeySettleDelayMs, clampInt(ms, MinSettleDelayMs, MaxSettleDelayMs))
}

// GetSettleQuiet returns how long scrolling must pause before it counts as settled
func (s *Settings) GetSettleQuiet() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeySettleQuietMs, DefaultSettleQuietMs)
	return time.Duration(ms) * time.Millisecond
}

// SetSettleQuiet sets the settle quiet period in milliseconds
func (s *Settings) SetSettleQuiet(ms int) {
	s.app.Preferences().SetInt(KeySettleQuietMs, clampInt(ms, MinSettleQuietMs, MaxSettleQuietMs))
}

// GetSnapEnabled returns whether the header snaps to a rest state
func (s *Settings) GetSnapEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeySnapEnabled, DefaultSnapEnabled)
}

// SetSnapEnabled sets whether the header snaps to a rest state
func (s *Settings) SetSnapEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeySnapEnabled, enabled)
}

// GetDebugOverlay returns whether the scroll debug overlay is shown
func (s *Settings) GetDebugOverlay() bool {
	return s.app.Preferences().BoolWithFallback(KeyDebugOverlay, DefaultDebugOverlay)
}

// SetDebugOverlay sets whether the scroll debug overlay is shown
func (s *Settings) SetDebugOverlay(show bool) {
	s.app.Preferences().SetBool(KeyDebugOverlay, show)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
