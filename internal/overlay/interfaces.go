package overlay

import (
	"image"
	"time"

	"github.com/ytget/gifrunner/internal/model"
)

// Surface is the toolkit window an overlay controller draws into.
type Surface interface {
	// ShowFrame replaces the displayed image
	ShowFrame(img image.Image)

	// Position returns the window origin in screen pixels; false when the
	// native surface is not available yet
	Position() (model.Point, bool)

	// Move places the window origin at p; false when the native surface is
	// not available
	Move(p model.Point) bool

	SetTitle(title string)
	ShowMenu(at model.Point, items []MenuItem)

	// Destroy closes the window; it must tolerate being called while the
	// toolkit is already closing it
	Destroy()
}

// SurfaceSpec describes the window to create for a controller
type SurfaceSpec struct {
	ID     string
	Title  string
	Width  int
	Height int
}

// SurfaceFactory creates the window for a freshly decoded animation
type SurfaceFactory func(spec SurfaceSpec) (Surface, error)

// Scheduler runs f once after d on the UI event loop
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending Scheduler callback
type Timer interface {
	Stop() bool
}

// MenuItem is one entry of the context menu
type MenuItem struct {
	Label  string
	Action func()
}
