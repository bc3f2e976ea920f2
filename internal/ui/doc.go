package ui

// Package ui contains the Fyne-based desktop user interface: borderless overlay
// windows that play GIF frames, the host window that parents the file dialog,
// and the settings dialog. All UI strings are localized via Localization.
