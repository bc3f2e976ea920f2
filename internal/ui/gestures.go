package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/gifrunner/internal/model"
)

// dragTracker turns a stream of Fyne drag events into a begin/update/end
// sequence in screen pixels.
type dragTracker struct {
	// toScreen maps a position local to the dragged object onto the screen;
	// false when the window origin is unknown
	toScreen func(pos fyne.Position) (model.Point, bool)

	onBegin  func(pointer model.Point)
	onUpdate func(pointer model.Point)
	onEnd    func()

	active bool
}

// newDragTracker creates a tracker; nil callbacks are skipped
func newDragTracker(toScreen func(fyne.Position) (model.Point, bool), onBegin, onUpdate func(model.Point), onEnd func()) *dragTracker {
	return &dragTracker{
		toScreen: toScreen,
		onBegin:  onBegin,
		onUpdate: onUpdate,
		onEnd:    onEnd,
	}
}

// Dragged handles one drag event. The first event of a gesture also begins
// the drag at the press position (current position minus the delta).
func (d *dragTracker) Dragged(pos fyne.Position, delta fyne.Delta) {
	if !d.active {
		d.active = true
		if start, ok := d.screenPoint(pos.Subtract(delta)); ok && d.onBegin != nil {
			d.onBegin(start)
		}
	}

	if pointer, ok := d.screenPoint(pos); ok && d.onUpdate != nil {
		d.onUpdate(pointer)
	}
}

// DragEnd finishes the current gesture
func (d *dragTracker) DragEnd() {
	if !d.active {
		return
	}
	d.active = false

	if d.onEnd != nil {
		d.onEnd()
	}
}

// Active reports whether a gesture is in progress
func (d *dragTracker) Active() bool {
	return d.active
}

func (d *dragTracker) screenPoint(pos fyne.Position) (model.Point, bool) {
	if d.toScreen == nil {
		return model.Point{}, false
	}
	return d.toScreen(pos)
}
