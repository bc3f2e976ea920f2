//go:build (linux || freebsd || openbsd || netbsd) && !wayland

package platform

import (
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// WindowPositioningSupported reports whether MoveWindow can work on this OS
const WindowPositioningSupported = true

// ColorKeySupported reports whether SetColorKey can work on this OS. X11 has
// no colour keying without a compositor-specific extension.
const ColorKeySupported = false

var (
	x11Once sync.Once
	x11Conn *xgb.Conn
	x11Root xproto.Window
	x11Err  error
)

// x11 opens one shared connection to the display on first use
func x11() (*xgb.Conn, xproto.Window, error) {
	x11Once.Do(func() {
		x11Conn, x11Err = xgb.NewConn()
		if x11Err != nil {
			log.Printf("cannot connect to X display: %v", x11Err)
			return
		}
		x11Root = xproto.Setup(x11Conn).DefaultScreen(x11Conn).Root
	})
	return x11Conn, x11Root, x11Err
}

// nativeHandle returns the X11 window behind a Fyne window, 0 before it is realised
func nativeHandle(w fyne.Window) xproto.Window {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return 0
	}

	var handle uintptr
	nw.RunNative(func(ctx any) {
		switch c := ctx.(type) {
		case driver.X11WindowContext:
			handle = c.WindowHandle
		case *driver.X11WindowContext:
			handle = c.WindowHandle
		}
	})
	return xproto.Window(handle)
}

// WindowPosition returns the screen position of the window's top-left corner
func WindowPosition(w fyne.Window) (int, int, bool) {
	win := nativeHandle(w)
	if win == 0 {
		return 0, 0, false
	}
	conn, root, err := x11()
	if err != nil {
		return 0, 0, false
	}

	reply, err := xproto.TranslateCoordinates(conn, win, root, 0, 0).Reply()
	if err != nil {
		log.Printf("failed to read window position: %v", err)
		return 0, 0, false
	}
	return int(reply.DstX), int(reply.DstY), true
}

// MoveWindow places the window's top-left corner at x, y without resizing it
func MoveWindow(w fyne.Window, x, y int) bool {
	win := nativeHandle(w)
	if win == 0 {
		return false
	}
	conn, _, err := x11()
	if err != nil {
		return false
	}

	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY)
	if err := xproto.ConfigureWindowChecked(conn, win, mask, x11Position(x, y)).Check(); err != nil {
		log.Printf("failed to move window: %v", err)
		return false
	}
	return true
}

// SetColorKey is not available on X11
func SetColorKey(w fyne.Window, key color.Color) bool {
	return false
}
