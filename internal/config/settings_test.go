package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestCountdownSeconds(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	seconds := settings.GetCountdownSeconds()
	if seconds != DefaultCountdownSeconds {
		t.Errorf("Expected default countdown %d, got %d", DefaultCountdownSeconds, seconds)
	}

	// Test setting custom value
	settings.SetCountdownSeconds(7)
	if settings.GetCountdownSeconds() != 7 {
		t.Errorf("Expected countdown 7, got %d", settings.GetCountdownSeconds())
	}

	// Test boundary values
	settings.SetCountdownSeconds(1) // Should be clamped to minimum
	if settings.GetCountdownSeconds() != MinCountdownSeconds {
		t.Errorf("Countdown should be clamped to minimum %d", MinCountdownSeconds)
	}

	settings.SetCountdownSeconds(60) // Should be clamped to maximum
	if settings.GetCountdownSeconds() != MaxCountdownSeconds {
		t.Errorf("Countdown should be clamped to maximum %d", MaxCountdownSeconds)
	}
}

func TestSummaryInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	interval := settings.GetSummaryInterval()
	if interval != DefaultSummaryInterval {
		t.Errorf("Expected default interval %d, got %d", DefaultSummaryInterval, interval)
	}

	// Test setting custom value
	settings.SetSummaryInterval(20)
	if settings.GetSummaryInterval() != 20 {
		t.Errorf("Expected interval 20, got %d", settings.GetSummaryInterval())
	}

	// Test boundary values
	settings.SetSummaryInterval(1)
	if settings.GetSummaryInterval() != MinSummaryInterval {
		t.Errorf("Interval should be clamped to minimum %d", MinSummaryInterval)
	}

	settings.SetSummaryInterval(500)
	if settings.GetSummaryInterval() != MaxSummaryInterval {
		t.Errorf("Interval should be clamped to maximum %d", MaxSummaryInterval)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if settings.GetLanguage() != "en" {
		t.Errorf("Expected language 'en', got %s", settings.GetLanguage())
	}
}

func TestRevealOnTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetRevealOnTimeout() != DefaultRevealOnTimeout {
		t.Errorf("Expected default reveal %v", DefaultRevealOnTimeout)
	}

	// Test setting custom value
	settings.SetRevealOnTimeout(false)
	if settings.GetRevealOnTimeout() {
		t.Error("Expected reveal to be false after disabling")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
