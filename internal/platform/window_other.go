//go:build !windows && !darwin && (wayland || !(linux || freebsd || openbsd || netbsd))

package platform

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// WindowPositioningSupported reports whether MoveWindow can work on this OS.
// Wayland gives clients no global coordinates, so windows cannot be placed.
const WindowPositioningSupported = false

// ColorKeySupported reports whether SetColorKey can work on this OS
const ColorKeySupported = false

// WindowPosition has no native handle to query here
func WindowPosition(w fyne.Window) (int, int, bool) {
	return 0, 0, false
}

// MoveWindow has no native handle to move here
func MoveWindow(w fyne.Window, x, y int) bool {
	return false
}

// SetColorKey is not available here
func SetColorKey(w fyne.Window, key color.Color) bool {
	return false
}
