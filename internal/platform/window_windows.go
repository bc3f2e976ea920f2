//go:build windows

package platform

import (
	"image/color"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

// SetWindowPos flags
const (
	_SWP_NOSIZE     = 0x0001
	_SWP_NOZORDER   = 0x0004
	_SWP_NOACTIVATE = 0x0010
)

// Extended window styles
const (
	_GWL_EXSTYLE   int32 = -20
	_WS_EX_LAYERED int32 = 0x00080000
	_LWA_COLORKEY        = 0x00000001
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procGetWindowRect              = user32.NewProc("GetWindowRect")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procGetWindowLongW             = user32.NewProc("GetWindowLongW")
	procSetWindowLongW             = user32.NewProc("SetWindowLongW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
)

// WindowPositioningSupported reports whether MoveWindow can work on this OS
const WindowPositioningSupported = true

// ColorKeySupported reports whether SetColorKey can work on this OS
const ColorKeySupported = true

// nativeHandle returns the HWND behind a Fyne window, 0 before it is realised
func nativeHandle(w fyne.Window) uintptr {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return 0
	}

	var hwnd uintptr
	nw.RunNative(func(ctx any) {
		switch c := ctx.(type) {
		case driver.WindowsWindowContext:
			hwnd = c.HWND
		case *driver.WindowsWindowContext:
			hwnd = c.HWND
		}
	})
	return hwnd
}

// WindowPosition returns the screen position of the window's top-left corner
func WindowPosition(w fyne.Window) (int, int, bool) {
	hwnd := nativeHandle(w)
	if hwnd == 0 {
		return 0, 0, false
	}

	var rect windows.Rect
	ret, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rect)))
	if ret == 0 {
		return 0, 0, false
	}
	return int(rect.Left), int(rect.Top), true
}

// MoveWindow places the window's top-left corner at x, y without resizing it
func MoveWindow(w fyne.Window, x, y int) bool {
	hwnd := nativeHandle(w)
	if hwnd == 0 {
		return false
	}

	ret, _, _ := procSetWindowPos.Call(
		hwnd,
		0,
		uintptr(int32(x)),
		uintptr(int32(y)),
		0,
		0,
		_SWP_NOSIZE|_SWP_NOZORDER|_SWP_NOACTIVATE,
	)
	return ret != 0
}

// SetColorKey makes every pixel of colour key fully transparent, mouse
// events included, by turning the window into a layered window
func SetColorKey(w fyne.Window, key color.Color) bool {
	hwnd := nativeHandle(w)
	if hwnd == 0 {
		return false
	}

	idx := _GWL_EXSTYLE
	exStyle, _, _ := procGetWindowLongW.Call(hwnd, uintptr(idx))
	procSetWindowLongW.Call(hwnd, uintptr(idx), uintptr(int32(exStyle)|_WS_EX_LAYERED))

	ret, _, _ := procSetLayeredWindowAttributes.Call(hwnd, uintptr(colorRef(key)), 0, _LWA_COLORKEY)
	return ret != 0
}
