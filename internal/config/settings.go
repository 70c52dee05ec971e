package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Theme variants selectable in settings
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeDark   ThemeVariant = "dark"
	ThemeLight  ThemeVariant = "light"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL    = "api_base_url"
	KeyThemeVariant  = "theme_variant"
	KeyLanguage      = "app_language"
	KeyAuthenticated = "authenticated"
)

// Default values
const (
	DefaultAPIBaseURL   = "http://localhost:8000"
	DefaultThemeVariant = ThemeSystem
	DefaultLanguage     = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the backend base URL
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the backend base URL
func (s *Settings) SetAPIBaseURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		url = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := s.app.Preferences().String(KeyThemeVariant)
	switch ThemeVariant(variant) {
	case ThemeDark, ThemeLight, ThemeSystem:
		return ThemeVariant(variant)
	default:
		s.SetThemeVariant(DefaultThemeVariant)
		return DefaultThemeVariant
	}
}

// SetThemeVariant sets the theme variant
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	switch variant {
	case ThemeDark, ThemeLight, ThemeSystem:
	default:
		variant = DefaultThemeVariant
	}
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetThemeVariantOptions returns available theme variants
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeDark, ThemeLight}
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

// IsAuthenticated returns whether a session flag is stored
func (s *Settings) IsAuthenticated() bool {
	return s.app.Preferences().BoolWithFallback(KeyAuthenticated, false)
}

// SetAuthenticated stores the session flag
func (s *Settings) SetAuthenticated(authenticated bool) {
	s.app.Preferences().SetBool(KeyAuthenticated, authenticated)
}
