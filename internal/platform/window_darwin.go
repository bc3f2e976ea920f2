//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#include <stdint.h>
#import <Cocoa/Cocoa.h>

// Cocoa measures from the bottom-left of the primary screen; these helpers
// speak top-left coordinates like the other platforms.
static int windowTopLeft(uintptr_t handle, int *x, int *y) {
	NSWindow *win = (NSWindow *)handle;
	NSScreen *primary = [[NSScreen screens] firstObject];
	if (win == nil || primary == nil) {
		return 0;
	}
	NSRect frame = [win frame];
	*x = (int)frame.origin.x;
	*y = (int)(NSMaxY([primary frame]) - NSMaxY(frame));
	return 1;
}

static int setWindowTopLeft(uintptr_t handle, int x, int y) {
	NSWindow *win = (NSWindow *)handle;
	NSScreen *primary = [[NSScreen screens] firstObject];
	if (win == nil || primary == nil) {
		return 0;
	}
	[win setFrameTopLeftPoint:NSMakePoint(x, NSMaxY([primary frame]) - y)];
	return 1;
}
*/
import "C"

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

// WindowPositioningSupported reports whether MoveWindow can work on this OS
const WindowPositioningSupported = true

// ColorKeySupported reports whether SetColorKey can work on this OS. The GL
// surface is opaque, so there is no keyed transparency on macOS.
const ColorKeySupported = false

// nativeHandle returns the NSWindow behind a Fyne window, 0 before it is realised
func nativeHandle(w fyne.Window) uintptr {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return 0
	}

	var handle uintptr
	nw.RunNative(func(ctx any) {
		switch c := ctx.(type) {
		case driver.MacWindowContext:
			handle = c.NSWindow
		case *driver.MacWindowContext:
			handle = c.NSWindow
		}
	})
	return handle
}

// WindowPosition returns the screen position of the window's top-left corner in points
func WindowPosition(w fyne.Window) (int, int, bool) {
	handle := nativeHandle(w)
	if handle == 0 {
		return 0, 0, false
	}

	var x, y C.int
	if C.windowTopLeft(C.uintptr_t(handle), &x, &y) == 0 {
		return 0, 0, false
	}
	return int(x), int(y), true
}

// MoveWindow places the window's top-left corner at x, y (points) without resizing it
func MoveWindow(w fyne.Window, x, y int) bool {
	handle := nativeHandle(w)
	if handle == 0 {
		return false
	}
	return C.setWindowTopLeft(C.uintptr_t(handle), C.int(x), C.int(y)) != 0
}

// SetColorKey is not available on macOS
func SetColorKey(w fyne.Window, key color.Color) bool {
	return false
}
