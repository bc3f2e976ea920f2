package overlay

import (
	"errors"
	"image"
	"time"

	"github.com/ytget/gifrunner/internal/anim"
	"github.com/ytget/gifrunner/internal/model"
)

// fakeSurface records everything the controller asks the window to do
type fakeSurface struct {
	spec        SurfaceSpec
	frames      []image.Image
	origin      model.Point
	unavailable bool
	moves       []model.Point
	title       string
	menuAt      model.Point
	menuItems   []MenuItem
	destroyed   int
}

func (s *fakeSurface) ShowFrame(img image.Image) { s.frames = append(s.frames, img) }

func (s *fakeSurface) Position() (model.Point, bool) {
	if s.unavailable {
		return model.Point{}, false
	}
	return s.origin, true
}

func (s *fakeSurface) Move(p model.Point) bool {
	if s.unavailable {
		return false
	}
	s.origin = p
	s.moves = append(s.moves, p)
	return true
}

func (s *fakeSurface) SetTitle(title string) { s.title = title }

func (s *fakeSurface) ShowMenu(at model.Point, items []MenuItem) {
	s.menuAt = at
	s.menuItems = items
}

func (s *fakeSurface) Destroy() { s.destroyed++ }

func (s *fakeSurface) last() image.Image {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// surfaceFactory returns a factory that hands out surface and records the spec
func surfaceFactory(surface *fakeSurface) SurfaceFactory {
	return func(spec SurfaceSpec) (Surface, error) {
		surface.spec = spec
		surface.title = spec.Title
		return surface, nil
	}
}

func failingFactory(calls *int) SurfaceFactory {
	return func(spec SurfaceSpec) (Surface, error) {
		*calls++
		return nil, errors.New("no display")
	}
}

// fakeScheduler is a manual clock
type fakeScheduler struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	pending := !t.stopped && !t.fired
	t.stopped = true
	return pending
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward, firing due timers in order
func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		var next *fakeTimer
		for _, t := range s.timers {
			if t.stopped || t.fired || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			break
		}
		s.now = next.at
		next.fired = true
		next.f()
	}
	s.now = target
}

func (s *fakeScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// newAnimation builds an animation whose frame i is a 4x2 image filled with
// gray level i, so frames can be told apart by pixel
func newAnimation(delays ...time.Duration) *anim.Animation {
	a := &anim.Animation{Width: 4, Height: 2}
	for i, d := range delays {
		img := image.NewRGBA(image.Rect(0, 0, 4, 2))
		for p := 0; p < len(img.Pix); p += 4 {
			img.Pix[p] = uint8(i)
			img.Pix[p+3] = 255
		}
		a.Frames = append(a.Frames, anim.Frame{Image: img, Delay: d})
	}
	return a
}

// frameNumber recovers the frame index encoded by newAnimation
func frameNumber(img image.Image) int {
	return int(img.(*image.RGBA).Pix[0])
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
