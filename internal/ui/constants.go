package ui

import "fyne.io/fyne/v2"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconOpen     = "📂"
	IconSettings = "⚙"
	IconLock     = "🔒"
	IconClose    = "×"
	IconError    = "❌"
)

// Host window sizing; it must be large enough to hold the file dialog
const (
	HostWindowWidth  float32 = 720
	HostWindowHeight float32 = 520
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 380
)

// Overlay windows never shrink below this, so tiny GIFs stay clickable
const (
	MinOverlaySide float32 = 8
)

// HostWindowSize returns the default host window size
func HostWindowSize() fyne.Size {
	return fyne.NewSize(HostWindowWidth, HostWindowHeight)
}
