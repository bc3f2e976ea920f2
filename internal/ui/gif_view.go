package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

var (
	_ fyne.Draggable         = (*gifView)(nil)
	_ fyne.SecondaryTappable = (*gifView)(nil)
)

// gifView shows the current frame and forwards pointer gestures
type gifView struct {
	widget.BaseWidget

	image   *canvas.Image
	tracker *dragTracker

	onSecondaryTap func(pos fyne.Position)
}

// newGIFView creates a view with a fixed minimum size of width x height
func newGIFView(width, height int) *gifView {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.SetMinSize(fyne.NewSize(
		max(float32(width), MinOverlaySide),
		max(float32(height), MinOverlaySide),
	))

	v := &gifView{image: img}
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *gifView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.image)
}

// SetFrame replaces the displayed frame
func (v *gifView) SetFrame(img image.Image) {
	v.image.Image = img
	v.image.Refresh()
}

// Frame returns the displayed frame
func (v *gifView) Frame() image.Image {
	return v.image.Image
}

// Dragged implements fyne.Draggable
func (v *gifView) Dragged(ev *fyne.DragEvent) {
	if v.tracker != nil {
		v.tracker.Dragged(ev.Position, ev.Dragged)
	}
}

// DragEnd implements fyne.Draggable
func (v *gifView) DragEnd() {
	if v.tracker != nil {
		v.tracker.DragEnd()
	}
}

// TappedSecondary implements fyne.SecondaryTappable
func (v *gifView) TappedSecondary(ev *fyne.PointEvent) {
	if v.onSecondaryTap != nil {
		v.onSecondaryTap(ev.Position)
	}
}

// frameLayout pins objects to the top-left corner at their minimum size, so
// the frame keeps its size when the window grows around it
type frameLayout struct{}

// Layout implements fyne.Layout
func (frameLayout) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(o.MinSize())
	}
}

// MinSize implements fyne.Layout
func (frameLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	size := fyne.NewSize(0, 0)
	for _, o := range objects {
		size = size.Max(o.MinSize())
	}
	return size
}
