package anim

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"time"

	"golang.org/x/image/draw"
)

// Playback constants
const (
	// MinFrameDelay keeps near-zero GIF delays from starving the event loop
	MinFrameDelay = 20 * time.Millisecond

	// gifDelayUnit is the unit of GIF frame delays (1/100 s)
	gifDelayUnit = 10 * time.Millisecond
)

// Scale limits in percent
const (
	MinScalePercent = 10
	MaxScalePercent = 400
)

// ErrNoFrames is returned for files that decode but contain no images
var ErrNoFrames = errors.New("animation has no frames")

// DecodeError reports a file that could not be opened or decoded
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode animation: %v", e.Err)
	}
	return fmt.Sprintf("decode animation %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Frame is one composited image of an animation
type Frame struct {
	Image *image.RGBA
	Delay time.Duration // as stored in the file, may be zero
}

// Animation is an ordered, non-empty sequence of frames
type Animation struct {
	Frames    []Frame
	Width     int
	Height    int
	LoopCount int
}

// Load opens and decodes the GIF file at path
func Load(path string) (*Animation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
			return nil, de
		}
		return nil, &DecodeError{Path: path, Err: err}
	}
	return a, nil
}

// Decode reads a GIF stream and composites every frame onto the logical screen
func Decode(r io.Reader) (*Animation, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if len(g.Image) == 0 {
		return nil, &DecodeError{Err: ErrNoFrames}
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		for _, img := range g.Image {
			bounds = bounds.Union(img.Bounds())
		}
	}

	screen := image.NewRGBA(bounds)
	frames := make([]Frame, 0, len(g.Image))

	for i, src := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var saved *image.RGBA
		if disposal == gif.DisposalPrevious {
			saved = cloneRGBA(screen)
		}

		draw.Draw(screen, src.Bounds(), src, src.Bounds().Min, draw.Over)

		var delay int
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = g.Delay[i]
		}
		frames = append(frames, Frame{
			Image: cloneRGBA(screen),
			Delay: time.Duration(delay) * gifDelayUnit,
		})

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(screen, src.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			screen = saved
		}
	}

	return &Animation{
		Frames:    frames,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		LoopCount: g.LoopCount,
	}, nil
}

// Len returns the number of frames
func (a *Animation) Len() int {
	return len(a.Frames)
}

// Frame returns frame i, wrapping around the sequence
func (a *Animation) Frame(i int) Frame {
	n := len(a.Frames)
	i %= n
	if i < 0 {
		i += n
	}
	return a.Frames[i]
}

// Scale returns a copy resized to percent of the original size.
// 100 (or an out of range value) returns the receiver unchanged.
func (a *Animation) Scale(percent int) *Animation {
	if percent == 100 || percent < MinScalePercent || percent > MaxScalePercent {
		return a
	}

	w := max(a.Width*percent/100, 1)
	h := max(a.Height*percent/100, 1)

	scaled := &Animation{
		Frames:    make([]Frame, len(a.Frames)),
		Width:     w,
		Height:    h,
		LoopCount: a.LoopCount,
	}
	for i, f := range a.Frames {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), f.Image, f.Image.Bounds(), draw.Src, nil)
		scaled.Frames[i] = Frame{Image: dst, Delay: f.Delay}
	}
	return scaled
}

// Release drops the frame buffers
func (a *Animation) Release() {
	for i := range a.Frames {
		a.Frames[i].Image = nil
	}
	a.Frames = nil
}

// PlaybackDelay returns how long a frame stays on screen
func PlaybackDelay(delay, minDelay time.Duration) time.Duration {
	if minDelay <= 0 {
		minDelay = MinFrameDelay
	}
	return max(delay, minDelay)
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
