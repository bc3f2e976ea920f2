package ui

import (
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gifrunner/internal/model"
	"github.com/ytget/gifrunner/internal/overlay"
	"github.com/ytget/gifrunner/internal/platform"
)

var _ overlay.Surface = (*overlayWindow)(nil)

// TransparentColor is painted behind the frame and keyed out where the
// platform supports it, so transparent GIF pixels show the desktop
var TransparentColor = color.RGBA{A: 255}

// overlayWindow is the Fyne implementation of overlay.Surface: a borderless,
// fixed-size window holding a single gifView.
type overlayWindow struct {
	window fyne.Window
	view   *gifView
	ctrl   *overlay.Controller

	frameSize fyne.Size
	grown     bool // enlarged to fit the context menu
	keyed     bool // colour key applied

	destroyed bool
}

// newOverlayWindow creates and shows the window for spec. Desktop drivers get a
// splash window, which has no decorations; other drivers get a plain window.
func newOverlayWindow(a fyne.App, spec overlay.SurfaceSpec) *overlayWindow {
	var w fyne.Window
	if drv, ok := a.Driver().(desktop.Driver); ok {
		w = drv.CreateSplashWindow()
	} else {
		w = a.NewWindow(spec.Title)
	}
	w.SetTitle(spec.Title)
	w.SetIcon(AppIconResource())
	w.SetPadded(false)

	ow := &overlayWindow{window: w}
	ow.view = newGIFView(spec.Width, spec.Height)
	ow.view.tracker = newDragTracker(ow.toScreen, ow.beginDrag, ow.updateDrag, ow.endDrag)
	ow.view.onSecondaryTap = ow.secondaryTap

	ow.frameSize = ow.view.MinSize()

	w.SetContent(container.New(frameLayout{}, ow.view))
	w.Resize(ow.frameSize)
	w.SetFixedSize(true)
	w.SetOnClosed(ow.onClosed)
	w.Show()
	ow.applyColorKey()

	return ow
}

// applyColorKey retries until the native window exists
func (ow *overlayWindow) applyColorKey() {
	if ow.keyed || ow.destroyed || !platform.ColorKeySupported {
		return
	}
	ow.keyed = platform.SetColorKey(ow.window, TransparentColor)
}

// bind attaches the controller that receives this window's gestures
func (ow *overlayWindow) bind(c *overlay.Controller) {
	ow.ctrl = c
}

// ShowFrame implements overlay.Surface
func (ow *overlayWindow) ShowFrame(img image.Image) {
	ow.view.SetFrame(img)
	ow.applyColorKey()
}

// Position implements overlay.Surface
func (ow *overlayWindow) Position() (model.Point, bool) {
	if ow.destroyed {
		return model.Point{}, false
	}
	x, y, ok := platform.WindowPosition(ow.window)
	return model.Point{X: x, Y: y}, ok
}

// Move implements overlay.Surface
func (ow *overlayWindow) Move(p model.Point) bool {
	if ow.destroyed {
		return false
	}
	return platform.MoveWindow(ow.window, p.X, p.Y)
}

// SetTitle implements overlay.Surface
func (ow *overlayWindow) SetTitle(title string) {
	ow.window.SetTitle(title)
}

// ShowMenu implements overlay.Surface; at is in window coordinates. A window
// smaller than the menu grows until the menu is dismissed, so every item
// stays reachable.
func (ow *overlayWindow) ShowMenu(at model.Point, items []overlay.MenuItem) {
	menuItems := make([]*fyne.MenuItem, 0, len(items))
	for _, item := range items {
		menuItems = append(menuItems, fyne.NewMenuItem(item.Label, item.Action))
	}

	pos := fyne.NewPos(float32(at.X), float32(at.Y))
	menu := widget.NewPopUpMenu(fyne.NewMenu("", menuItems...), ow.window.Canvas())
	menu.OnDismiss = func() {
		menu.Hide()
		ow.restoreSize()
	}

	ow.growFor(pos, menu.MinSize())
	menu.ShowAtPosition(pos)
}

// growFor enlarges the window so a menu of size fits at pos
func (ow *overlayWindow) growFor(pos fyne.Position, size fyne.Size) {
	c := ow.window.Canvas()
	current := c.Size()
	_, area := c.InteractiveArea()

	need := fyne.NewSize(
		pos.X+size.Width+current.Width-area.Width,
		pos.Y+size.Height+current.Height-area.Height,
	).Max(current)
	if need == current {
		return
	}

	ow.grown = true
	ow.window.Resize(need)
}

// restoreSize shrinks a grown window back to the frame size
func (ow *overlayWindow) restoreSize() {
	if !ow.grown || ow.destroyed {
		return
	}
	ow.grown = false
	ow.window.Resize(ow.frameSize)
}

// Destroy implements overlay.Surface
func (ow *overlayWindow) Destroy() {
	if ow.destroyed {
		return
	}
	ow.destroyed = true
	ow.window.Close()
}

// onClosed runs when the window goes away, including closes by the window manager
func (ow *overlayWindow) onClosed() {
	ow.destroyed = true
	if ow.ctrl != nil {
		ow.ctrl.Close()
	}
}

// toScreen converts a position inside the view to screen pixels
func (ow *overlayWindow) toScreen(pos fyne.Position) (model.Point, bool) {
	origin, ok := ow.Position()
	if !ok {
		return model.Point{}, false
	}

	scale := ow.window.Canvas().Scale()
	return origin.Add(model.Point{X: int(pos.X * scale), Y: int(pos.Y * scale)}), true
}

func (ow *overlayWindow) beginDrag(pointer model.Point) {
	if ow.ctrl != nil {
		ow.ctrl.BeginDrag(pointer)
	}
}

func (ow *overlayWindow) updateDrag(pointer model.Point) {
	if ow.ctrl != nil {
		ow.ctrl.UpdateDrag(pointer)
	}
}

func (ow *overlayWindow) endDrag() {
	if ow.ctrl != nil {
		ow.ctrl.EndDrag()
	}
}

func (ow *overlayWindow) secondaryTap(pos fyne.Position) {
	if ow.ctrl == nil {
		log.Printf("context menu requested before window %q was bound", ow.window.Title())
		return
	}
	ow.ctrl.ShowContextMenu(model.Point{X: int(pos.X), Y: int(pos.Y)})
}
