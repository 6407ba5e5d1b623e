package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyCountdownSeconds = "countdown_seconds"
	KeySummaryInterval  = "summary_interval"
	KeyLanguage         = "app_language"
	KeyRevealOnTimeout  = "reveal_on_timeout"
)

// Default values
const (
	DefaultCountdownSeconds = 5
	DefaultSummaryInterval  = 10
	DefaultLanguage         = "system"
	DefaultRevealOnTimeout  = true
)

// Bounds for numeric settings
const (
	MinCountdownSeconds = 3
	MaxCountdownSeconds = 10
	MinSummaryInterval  = 5
	MaxSummaryInterval  = 50
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCountdownSeconds returns the configured per-round countdown length
func (s *Settings) GetCountdownSeconds() int {
	value := s.app.Preferences().Int(KeyCountdownSeconds)
	if value <= 0 {
		s.SetCountdownSeconds(DefaultCountdownSeconds)
		return DefaultCountdownSeconds
	}
	return value
}

// SetCountdownSeconds sets the per-round countdown length
func (s *Settings) SetCountdownSeconds(seconds int) {
	if seconds < MinCountdownSeconds {
		seconds = MinCountdownSeconds
	}
	if seconds > MaxCountdownSeconds {
		seconds = MaxCountdownSeconds
	}
	s.app.Preferences().SetInt(KeyCountdownSeconds, seconds)
}

// GetSummaryInterval returns how many resolved rounds trigger the summary dialog
func (s *Settings) GetSummaryInterval() int {
	value := s.app.Preferences().Int(KeySummaryInterval)
	if value <= 0 {
		s.SetSummaryInterval(DefaultSummaryInterval)
		return DefaultSummaryInterval
	}
	return value
}

// SetSummaryInterval sets how many resolved rounds trigger the summary dialog
func (s *Settings) SetSummaryInterval(interval int) {
	if interval < MinSummaryInterval {
		interval = MinSummaryInterval
	}
	if interval > MaxSummaryInterval {
		interval = MaxSummaryInterval
	}
	s.app.Preferences().SetInt(KeySummaryInterval, interval)
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

// GetRevealOnTimeout returns whether the correct classification is shown
// when a round times out
func (s *Settings) GetRevealOnTimeout() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnTimeout, DefaultRevealOnTimeout)
}

// SetRevealOnTimeout sets whether the correct classification is shown on timeout
func (s *Settings) SetRevealOnTimeout(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnTimeout, reveal)
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
