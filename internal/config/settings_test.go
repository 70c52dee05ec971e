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

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetAPIBaseURL()
	if url != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultAPIBaseURL, url)
	}

	// Test setting custom value
	settings.SetAPIBaseURL("https://api.example.com")
	if got := settings.GetAPIBaseURL(); got != "https://api.example.com" {
		t.Errorf("Expected base URL https://api.example.com, got %s", got)
	}

	// Trailing slashes and whitespace are stripped
	settings.SetAPIBaseURL("  https://api.example.com/  ")
	if got := settings.GetAPIBaseURL(); got != "https://api.example.com" {
		t.Errorf("Expected trimmed base URL, got %s", got)
	}

	// Empty value defaults back
	settings.SetAPIBaseURL("")
	if got := settings.GetAPIBaseURL(); got != DefaultAPIBaseURL {
		t.Errorf("Empty base URL should default to %s, got %s", DefaultAPIBaseURL, got)
	}
}

func TestThemeVariant(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	variant := settings.GetThemeVariant()
	if variant != DefaultThemeVariant {
		t.Errorf("Expected default theme %s, got %s", DefaultThemeVariant, variant)
	}

	// Test setting custom value
	settings.SetThemeVariant(ThemeDark)
	if got := settings.GetThemeVariant(); got != ThemeDark {
		t.Errorf("Expected theme %s, got %s", ThemeDark, got)
	}

	// Unknown values fall back to the default
	settings.SetThemeVariant("neon")
	if got := settings.GetThemeVariant(); got != DefaultThemeVariant {
		t.Errorf("Unknown theme should default to %s, got %s", DefaultThemeVariant, got)
	}
}

func TestGetThemeVariantOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetThemeVariantOptions()
	expectedOptions := []ThemeVariant{ThemeSystem, ThemeDark, ThemeLight}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d theme options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Theme option %d: expected %s, got %s", i, expected, options[i])
		}
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
	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language 'ru', got %s", got)
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

func TestAuthenticated(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.IsAuthenticated() {
		t.Error("Expected unauthenticated by default")
	}

	settings.SetAuthenticated(true)
	if !settings.IsAuthenticated() {
		t.Error("Expected authenticated after SetAuthenticated(true)")
	}
}
