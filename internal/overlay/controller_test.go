package overlay

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/gifrunner/internal/anim"
	"github.com/ytget/gifrunner/internal/model"
)

func startController(t *testing.T, opts Options, delays ...time.Duration) (*Controller, *fakeSurface, *fakeScheduler) {
	t.Helper()
	surface := &fakeSurface{origin: model.Point{X: 100, Y: 100}}
	sched := &fakeScheduler{}
	c, err := Start("/tmp/dance.gif", newAnimation(delays...), surfaceFactory(surface), sched, opts)
	require.NoError(t, err)
	return c, surface, sched
}

func writeGIF(t *testing.T, delays ...int) string {
	t.Helper()
	pal := color.Palette{color.Black, color.White}
	g := &gif.GIF{}
	for _, d := range delays {
		g.Image = append(g.Image, image.NewPaletted(image.Rect(0, 0, 6, 5), pal))
		g.Delay = append(g.Delay, d)
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))

	path := filepath.Join(t.TempDir(), "clip.gif")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestOpen_SizesWindowToFirstFrame(t *testing.T) {
	path := writeGIF(t, 10, 10)
	surface := &fakeSurface{}
	sched := &fakeScheduler{}

	c, err := Open(path, surfaceFactory(surface), sched, Options{})
	require.NoError(t, err)

	assert.Equal(t, 6, surface.spec.Width)
	assert.Equal(t, 5, surface.spec.Height)
	assert.Equal(t, "clip", surface.spec.Title)
	assert.Equal(t, c.ID(), surface.spec.ID)
	assert.Len(t, surface.frames, 1)
	assert.Equal(t, model.StateAnimating, c.State())
	assert.Equal(t, 1, sched.Pending())
}

func TestOpen_DecodeFailureCreatesNoWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.gif")
	require.NoError(t, os.WriteFile(path, []byte("GIF89a but not really"), 0o644))

	calls := 0
	c, err := Open(path, failingFactory(&calls), &fakeScheduler{}, Options{})

	require.Error(t, err)
	assert.Nil(t, c)
	assert.Equal(t, 0, calls)

	var de *anim.DecodeError
	assert.True(t, errors.As(err, &de))
}

func TestStart_SurfaceFailure(t *testing.T) {
	calls := 0
	sched := &fakeScheduler{}
	a := newAnimation(ms(100))

	c, err := Start("x.gif", a, failingFactory(&calls), sched, Options{})

	require.Error(t, err)
	assert.Nil(t, c)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, sched.Pending())
	assert.Nil(t, a.Frames)
}

func TestStart_EmptyAnimation(t *testing.T) {
	surface := &fakeSurface{}
	_, err := Start("empty.gif", &anim.Animation{}, surfaceFactory(surface), &fakeScheduler{}, Options{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, anim.ErrNoFrames))
	assert.Empty(t, surface.frames)
}

func TestPlayback_ScenarioTiming(t *testing.T) {
	c, surface, sched := startController(t, Options{}, ms(100), ms(50), ms(200))

	assert.Equal(t, 0, frameNumber(surface.last()))

	sched.Advance(ms(99))
	assert.Equal(t, 0, frameNumber(surface.last()))

	sched.Advance(ms(1)) // t=100
	assert.Equal(t, 1, frameNumber(surface.last()))

	sched.Advance(ms(49)) // t=149
	assert.Equal(t, 1, frameNumber(surface.last()))

	sched.Advance(ms(1)) // t=150
	assert.Equal(t, 2, frameNumber(surface.last()))

	sched.Advance(ms(199)) // t=349
	assert.Equal(t, 2, frameNumber(surface.last()))

	sched.Advance(ms(1)) // t=350
	assert.Equal(t, 0, frameNumber(surface.last()))
	assert.Equal(t, 0, c.FrameIndex())
	assert.Equal(t, 1, sched.Pending())
}

func TestPlayback_MinimumInterval(t *testing.T) {
	_, surface, sched := startController(t, Options{}, 0, ms(5), 0)

	sched.Advance(anim.MinFrameDelay - time.Millisecond)
	assert.Len(t, surface.frames, 1)

	sched.Advance(time.Millisecond)
	assert.Len(t, surface.frames, 2)

	sched.Advance(anim.MinFrameDelay * 2)
	assert.Len(t, surface.frames, 4)
}

func TestPlayback_CustomMinimumInterval(t *testing.T) {
	_, surface, sched := startController(t, Options{MinInterval: ms(100)}, ms(10), ms(10))

	sched.Advance(ms(99))
	assert.Len(t, surface.frames, 1)
	sched.Advance(ms(1))
	assert.Len(t, surface.frames, 2)
}

func TestTick_CyclesBackToStart(t *testing.T) {
	for n := 1; n <= 5; n++ {
		delays := make([]time.Duration, n)
		for i := range delays {
			delays[i] = ms(30)
		}
		c, surface, sched := startController(t, Options{}, delays...)

		for i := 0; i < n; i++ {
			c.Tick()
		}

		assert.Equal(t, 0, c.FrameIndex(), "frames=%d", n)
		assert.Equal(t, 0, frameNumber(surface.last()), "frames=%d", n)
		assert.Equal(t, 1, sched.Pending(), "manual ticks must not stack timers (frames=%d)", n)
	}
}

func TestDrag_MovesWindow(t *testing.T) {
	c, surface, _ := startController(t, Options{}, ms(100))

	c.BeginDrag(model.Point{X: 110, Y: 105})
	assert.Equal(t, model.StateDragging, c.State())

	c.UpdateDrag(model.Point{X: 150, Y: 140})
	c.UpdateDrag(model.Point{X: 90, Y: 60})

	require.Len(t, surface.moves, 2)
	assert.Equal(t, model.Point{X: 140, Y: 135}, surface.moves[0])
	assert.Equal(t, model.Point{X: 80, Y: 55}, surface.moves[1])
	assert.Equal(t, model.Point{X: 80, Y: 55}, c.Snapshot().Position)

	c.EndDrag()
	assert.Equal(t, model.StateAnimating, c.State())

	c.UpdateDrag(model.Point{X: 0, Y: 0})
	assert.Len(t, surface.moves, 2)
}

func TestDrag_LockedNeverMoves(t *testing.T) {
	c, surface, _ := startController(t, Options{}, ms(100))
	require.True(t, c.ToggleLock())

	pointers := []model.Point{{X: 0, Y: 0}, {X: 500, Y: 20}, {X: -30, Y: 900}, {X: 101, Y: 101}}
	for _, p := range pointers {
		c.BeginDrag(p)
		for _, q := range pointers {
			c.UpdateDrag(q)
		}
		c.EndDrag()
	}

	assert.Empty(t, surface.moves)
	assert.Equal(t, model.Point{X: 100, Y: 100}, surface.origin)
	assert.Equal(t, model.StateAnimating, c.State())
}

func TestDrag_LockDuringDragStopsMovement(t *testing.T) {
	c, surface, _ := startController(t, Options{}, ms(100))

	c.BeginDrag(model.Point{X: 100, Y: 100})
	c.UpdateDrag(model.Point{X: 120, Y: 100})
	c.ToggleLock()
	c.UpdateDrag(model.Point{X: 300, Y: 300})

	assert.Len(t, surface.moves, 1)
	assert.Equal(t, model.StateAnimating, c.State())
}

func TestDrag_StartLocked(t *testing.T) {
	c, surface, _ := startController(t, Options{StartLocked: true}, ms(100))

	c.BeginDrag(model.Point{X: 1, Y: 1})
	c.UpdateDrag(model.Point{X: 50, Y: 50})

	assert.Empty(t, surface.moves)
	assert.Equal(t, "dance (locked)", surface.spec.Title)
}

func TestDrag_SurfaceUnavailableIsNoop(t *testing.T) {
	c, surface, _ := startController(t, Options{}, ms(100))
	surface.unavailable = true

	c.BeginDrag(model.Point{X: 110, Y: 110})
	c.UpdateDrag(model.Point{X: 200, Y: 200})

	assert.Empty(t, surface.moves)
	assert.Equal(t, model.StateAnimating, c.State())
}

func TestToggleLock_DoubleApplicationRestores(t *testing.T) {
	c, surface, _ := startController(t, Options{}, ms(100))
	label := c.LockLabel()
	title := surface.title

	assert.True(t, c.ToggleLock())
	assert.Equal(t, "Unlock", c.LockLabel())
	assert.Equal(t, "dance (locked)", surface.title)

	assert.False(t, c.ToggleLock())
	assert.False(t, c.Locked())
	assert.Equal(t, label, c.LockLabel())
	assert.Equal(t, title, surface.title)
}

func TestContextMenu(t *testing.T) {
	c, surface, _ := startController(t, Options{}, ms(100))

	c.ShowContextMenu(model.Point{X: 3, Y: 4})
	require.Len(t, surface.menuItems, 2)
	assert.Equal(t, model.Point{X: 3, Y: 4}, surface.menuAt)
	assert.Equal(t, "Lock", surface.menuItems[0].Label)
	assert.Equal(t, "Close", surface.menuItems[1].Label)

	surface.menuItems[0].Action()
	assert.True(t, c.Locked())

	c.ShowContextMenu(model.Point{X: 0, Y: 0})
	assert.Equal(t, "Unlock", surface.menuItems[0].Label)

	surface.menuItems[1].Action()
	assert.Equal(t, model.StateClosed, c.State())
	assert.Equal(t, 1, surface.destroyed)
}

func TestContextMenu_CustomLabels(t *testing.T) {
	labels := Labels{Lock: "Sperren", Unlock: "Entsperren", Close: "Schließen", LockedSuffix: " [x]"}
	c, surface, _ := startController(t, Options{Labels: labels, Title: "Katze"}, ms(100))

	c.ShowContextMenu(model.Point{})
	assert.Equal(t, "Sperren", surface.menuItems[0].Label)
	assert.Equal(t, "Schließen", surface.menuItems[1].Label)

	c.ToggleLock()
	assert.Equal(t, "Katze [x]", surface.title)
}

func TestClose_StopsPlayback(t *testing.T) {
	closed := 0
	c, surface, sched := startController(t, Options{OnClose: func(*Controller) { closed++ }}, ms(100), ms(100))

	sched.Advance(ms(100))
	require.Len(t, surface.frames, 2)
	stale := sched.timers[len(sched.timers)-1].f

	c.Close()
	assert.Equal(t, model.StateClosed, c.State())
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, 1, surface.destroyed)
	assert.Equal(t, 1, closed)

	// a callback already handed to the event loop before Close
	stale()
	c.Tick()
	sched.Advance(time.Second)
	assert.Len(t, surface.frames, 2)

	c.Close()
	assert.Equal(t, 1, surface.destroyed)
	assert.Equal(t, 1, closed)
}

func TestClose_IgnoresLaterGestures(t *testing.T) {
	c, surface, _ := startController(t, Options{}, ms(100))
	c.Close()

	c.BeginDrag(model.Point{X: 1, Y: 1})
	c.UpdateDrag(model.Point{X: 9, Y: 9})
	c.ShowContextMenu(model.Point{})
	locked := c.ToggleLock()

	assert.False(t, locked)
	assert.Empty(t, surface.moves)
	assert.Nil(t, surface.menuItems)
	assert.Equal(t, model.StateClosed, c.State())
}

func TestSnapshot(t *testing.T) {
	c, _, sched := startController(t, Options{}, ms(40), ms(40), ms(40))
	sched.Advance(ms(40))

	snap := c.Snapshot()
	assert.Equal(t, c.ID(), snap.ID)
	assert.Equal(t, "/tmp/dance.gif", snap.Path)
	assert.Equal(t, 1, snap.FrameIndex)
	assert.Equal(t, 3, snap.FrameCount)
	assert.Equal(t, "4x2", snap.GetSizeString())
	assert.False(t, snap.OpenedAt.IsZero())
	assert.True(t, snap.ClosedAt.IsZero())

	c.Close()
	snap = c.Snapshot()
	assert.Equal(t, model.StateClosed, snap.State)
	assert.Equal(t, 3, snap.FrameCount)
	assert.False(t, snap.ClosedAt.IsZero())
}

func TestStart_Scale(t *testing.T) {
	surface := &fakeSurface{}
	_, err := Start("big.gif", newAnimation(ms(10)), surfaceFactory(surface), &fakeScheduler{}, Options{ScalePercent: 200})
	require.NoError(t, err)

	assert.Equal(t, 8, surface.spec.Width)
	assert.Equal(t, 4, surface.spec.Height)
}

func TestNewScheduler_Dispatches(t *testing.T) {
	dispatched := make(chan struct{}, 1)
	ran := make(chan struct{}, 1)
	sched := NewScheduler(func(f func()) {
		dispatched <- struct{}{}
		f()
	})

	sched.AfterFunc(time.Millisecond, func() { ran <- struct{}{} })

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not run")
	}
	assert.Len(t, dispatched, 1)
}

func TestNewScheduler_Stop(t *testing.T) {
	ran := make(chan struct{}, 1)
	timer := NewScheduler(nil).AfterFunc(time.Hour, func() { ran <- struct{}{} })

	assert.True(t, timer.Stop())
	assert.Empty(t, ran)
}
