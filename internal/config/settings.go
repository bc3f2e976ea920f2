package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/gifrunner/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyMinFrameInterval = "min_frame_interval_ms"
	KeyScalePercent     = "scale_percent"
	KeyRepromptOnError  = "reprompt_on_error"
	KeyQuitWhenIdle     = "quit_when_idle"
	KeyStartLocked      = "start_locked"
	KeyLastDirectory    = "last_directory"
	KeyLanguage         = "app_language"
)

// Default values
const (
	DefaultMinFrameIntervalMs = 20
	DefaultScalePercent       = 100
	DefaultRepromptOnError    = true
	DefaultQuitWhenIdle       = true
	DefaultStartLocked        = false
	DefaultLanguage           = "system"
)

// Limits
const (
	MinFrameIntervalMs = 1
	MaxFrameIntervalMs = 1000
	MinScalePercent    = 10
	MaxScalePercent    = 400
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMinFrameInterval returns the floor applied to every frame delay
func (s *Settings) GetMinFrameInterval() time.Duration {
	value := s.app.Preferences().Int(KeyMinFrameInterval)
	if value <= 0 {
		s.SetMinFrameIntervalMs(DefaultMinFrameIntervalMs)
		value = DefaultMinFrameIntervalMs
	}
	return time.Duration(value) * time.Millisecond
}

// SetMinFrameIntervalMs sets the minimum frame interval in milliseconds
func (s *Settings) SetMinFrameIntervalMs(ms int) {
	if ms < MinFrameIntervalMs {
		ms = MinFrameIntervalMs
	}
	if ms > MaxFrameIntervalMs {
		ms = MaxFrameIntervalMs
	}
	s.app.Preferences().SetInt(KeyMinFrameInterval, ms)
}

// GetScalePercent returns the display scale of new overlays
func (s *Settings) GetScalePercent() int {
	value := s.app.Preferences().Int(KeyScalePercent)
	if value <= 0 {
		s.SetScalePercent(DefaultScalePercent)
		return DefaultScalePercent
	}
	return value
}

// SetScalePercent sets the display scale of new overlays
func (s *Settings) SetScalePercent(percent int) {
	if percent < MinScalePercent {
		percent = MinScalePercent
	}
	if percent > MaxScalePercent {
		percent = MaxScalePercent
	}
	s.app.Preferences().SetInt(KeyScalePercent, percent)
}

// GetRepromptOnError returns whether the picker prompts again after a file fails to open
func (s *Settings) GetRepromptOnError() bool {
	return s.app.Preferences().BoolWithFallback(KeyRepromptOnError, DefaultRepromptOnError)
}

// SetRepromptOnError sets whether the picker prompts again after a failure
func (s *Settings) SetRepromptOnError(reprompt bool) {
	s.app.Preferences().SetBool(KeyRepromptOnError, reprompt)
}

// GetQuitWhenIdle returns whether the app exits once the picker stopped and no overlay is open
func (s *Settings) GetQuitWhenIdle() bool {
	return s.app.Preferences().BoolWithFallback(KeyQuitWhenIdle, DefaultQuitWhenIdle)
}

// SetQuitWhenIdle sets the idle exit policy
func (s *Settings) SetQuitWhenIdle(quit bool) {
	s.app.Preferences().SetBool(KeyQuitWhenIdle, quit)
}

// GetStartLocked returns whether new overlays open locked
func (s *Settings) GetStartLocked() bool {
	return s.app.Preferences().BoolWithFallback(KeyStartLocked, DefaultStartLocked)
}

// SetStartLocked sets whether new overlays open locked
func (s *Settings) SetStartLocked(locked bool) {
	s.app.Preferences().SetBool(KeyStartLocked, locked)
}

// GetLastDirectory returns the directory the file dialog starts in
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetLastDirectory remembers the directory of the last chosen file
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
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

// GetScaleOptions returns the scale presets offered in the settings dialog
func (s *Settings) GetScaleOptions() []int {
	return []int{50, 75, 100, 150, 200}
}
