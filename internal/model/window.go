package model

import (
	"fmt"
	"strings"
	"time"
)

// Point is a position in screen pixels
type Point struct {
	X int
	Y int
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// OverlayWindow is a point-in-time snapshot of one overlay window
type OverlayWindow struct {
	ID         string
	Path       string // source GIF
	State      WindowState
	Locked     bool
	FrameIndex int // currently displayed frame
	FrameCount int
	Width      int   // pixels
	Height     int   // pixels
	Position   Point // last known screen origin, zero if unknown
	OpenedAt   time.Time
	ClosedAt   time.Time
}

// GetDisplayTitle returns the GIF file name without directory and extension
func (w *OverlayWindow) GetDisplayTitle() string {
	if w.Path == "" {
		return w.ID
	}

	// support both / and \ separators
	parts := strings.FieldsFunc(w.Path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return w.ID
	}

	filename := parts[len(parts)-1]
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		filename = filename[:idx]
	}
	return filename
}

// GetSizeString returns the window size formatted as WxH
func (w *OverlayWindow) GetSizeString() string {
	return fmt.Sprintf("%dx%d", w.Width, w.Height)
}
