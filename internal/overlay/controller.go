package overlay

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/gifrunner/internal/anim"
	"github.com/ytget/gifrunner/internal/model"
)

// WindowIDPrefix is used when a UUID cannot be generated
const WindowIDPrefix = "overlay-"

// Labels are the user-visible strings of an overlay window
type Labels struct {
	Lock         string
	Unlock       string
	Close        string
	LockedSuffix string
}

// DefaultLabels returns the English labels
func DefaultLabels() Labels {
	return Labels{
		Lock:         "Lock",
		Unlock:       "Unlock",
		Close:        "Close",
		LockedSuffix: " (locked)",
	}
}

// Options tune a single overlay window
type Options struct {
	Title        string        // defaults to the file name without extension
	MinInterval  time.Duration // frame delay floor, anim.MinFrameDelay when zero
	ScalePercent int           // 100 or zero keeps the original size
	StartLocked  bool
	Labels       Labels
	OnClose      func(*Controller)
}

type dragSession struct {
	offset model.Point // pointer position relative to the window origin
}

// Controller drives one overlay window
type Controller struct {
	id    string
	path  string
	title string
	opts  Options

	anim       *anim.Animation
	frameCount int
	width      int
	height     int

	surface Surface
	sched   Scheduler
	timer   Timer
	gen     uint64 // invalidates timer callbacks scheduled before the last reschedule or close

	state    model.WindowState
	index    int
	locked   bool
	drag     *dragSession
	position model.Point

	openedAt time.Time
	closedAt time.Time
}

// Open decodes the GIF at path and shows it in a new surface. A decode failure
// is returned as *anim.DecodeError and no surface is created.
func Open(path string, newSurface SurfaceFactory, sched Scheduler, opts Options) (*Controller, error) {
	a, err := anim.Load(path)
	if err != nil {
		log.Printf("failed to open overlay for %s: %v", path, err)
		return nil, err
	}
	return Start(path, a, newSurface, sched, opts)
}

// Start shows an already decoded animation. The controller takes ownership of a.
func Start(path string, a *anim.Animation, newSurface SurfaceFactory, sched Scheduler, opts Options) (*Controller, error) {
	if a == nil || a.Len() == 0 {
		return nil, &anim.DecodeError{Path: path, Err: anim.ErrNoFrames}
	}
	if opts.Labels == (Labels{}) {
		opts.Labels = DefaultLabels()
	}

	a = a.Scale(opts.ScalePercent)

	c := &Controller{
		id:         generateWindowID(),
		path:       path,
		title:      opts.Title,
		opts:       opts,
		anim:       a,
		frameCount: a.Len(),
		width:      a.Width,
		height:     a.Height,
		sched:      sched,
		state:      model.StateLoading,
		locked:     opts.StartLocked,
	}
	if c.title == "" {
		info := model.OverlayWindow{ID: c.id, Path: path}
		c.title = info.GetDisplayTitle()
	}

	surface, err := newSurface(SurfaceSpec{
		ID:     c.id,
		Title:  c.windowTitle(),
		Width:  a.Width,
		Height: a.Height,
	})
	if err != nil {
		a.Release()
		return nil, fmt.Errorf("create overlay window for %s: %w", path, err)
	}
	c.surface = surface

	c.surface.ShowFrame(a.Frames[0].Image)
	c.openedAt = time.Now()
	c.transition(model.StateAnimating)
	c.schedule()

	log.Printf("overlay opened: id=%s path=%s frames=%d size=%dx%d", c.id, path, c.frameCount, c.width, c.height)
	return c, nil
}

// Tick advances to the next frame and reschedules itself
func (c *Controller) Tick() {
	if c.state.IsTerminal() || c.anim == nil {
		return
	}

	c.index = (c.index + 1) % c.anim.Len()
	c.surface.ShowFrame(c.anim.Frames[c.index].Image)
	c.schedule()
}

func (c *Controller) schedule() {
	if c.timer != nil {
		c.timer.Stop()
	}

	c.gen++
	gen := c.gen
	delay := anim.PlaybackDelay(c.anim.Frames[c.index].Delay, c.opts.MinInterval)
	c.timer = c.sched.AfterFunc(delay, func() {
		c.onTimer(gen)
	})
}

func (c *Controller) onTimer(gen uint64) {
	if gen != c.gen {
		return
	}
	c.timer = nil
	c.Tick()
}

// BeginDrag anchors a drag gesture at pointer (screen pixels)
func (c *Controller) BeginDrag(pointer model.Point) {
	if c.locked || !c.state.IsActive() {
		return
	}

	origin, ok := c.surface.Position()
	if !ok {
		return
	}

	c.position = origin
	c.drag = &dragSession{offset: pointer.Sub(origin)}
	c.transition(model.StateDragging)
}

// UpdateDrag moves the window so the grabbed point follows pointer
func (c *Controller) UpdateDrag(pointer model.Point) {
	if c.locked || c.drag == nil || c.state.IsTerminal() {
		return
	}

	target := pointer.Sub(c.drag.offset)
	if c.surface.Move(target) {
		c.position = target
	}
}

// EndDrag discards the current drag session
func (c *Controller) EndDrag() {
	c.drag = nil
	if c.state == model.StateDragging {
		c.transition(model.StateAnimating)
	}
}

// ToggleLock flips the lock flag and returns the new value
func (c *Controller) ToggleLock() bool {
	if c.state.IsTerminal() {
		return c.locked
	}

	c.locked = !c.locked
	if c.locked {
		c.EndDrag()
	}
	c.surface.SetTitle(c.windowTitle())

	log.Printf("overlay %s locked=%v", c.id, c.locked)
	return c.locked
}

// LockLabel returns the label of the lock menu entry for the current state
func (c *Controller) LockLabel() string {
	if c.locked {
		return c.opts.Labels.Unlock
	}
	return c.opts.Labels.Lock
}

// MenuItems returns the context menu entries: lock toggle, then close
func (c *Controller) MenuItems() []MenuItem {
	return []MenuItem{
		{Label: c.LockLabel(), Action: func() { c.ToggleLock() }},
		{Label: c.opts.Labels.Close, Action: c.Close},
	}
}

// ShowContextMenu opens the context menu at pointer (window coordinates)
func (c *Controller) ShowContextMenu(pointer model.Point) {
	if c.state.IsTerminal() {
		return
	}
	c.surface.ShowMenu(pointer, c.MenuItems())
}

// Close destroys the window and releases its frames. Safe to call repeatedly.
func (c *Controller) Close() {
	if c.state.IsTerminal() {
		return
	}

	c.transition(model.StateClosed)
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.drag = nil
	c.closedAt = time.Now()

	c.surface.Destroy()
	c.anim.Release()
	c.anim = nil

	log.Printf("overlay closed: id=%s path=%s", c.id, c.path)

	if c.opts.OnClose != nil {
		c.opts.OnClose(c)
	}
}

func (c *Controller) transition(next model.WindowState) bool {
	if !c.state.CanTransition(next) {
		return false
	}
	c.state = next
	return true
}

func (c *Controller) windowTitle() string {
	if c.locked {
		return c.title + c.opts.Labels.LockedSuffix
	}
	return c.title
}

// ID returns the window identifier
func (c *Controller) ID() string { return c.id }

// Path returns the source file
func (c *Controller) Path() string { return c.path }

// State returns the lifecycle state
func (c *Controller) State() model.WindowState { return c.state }

// Locked reports whether dragging is suppressed
func (c *Controller) Locked() bool { return c.locked }

// FrameIndex returns the index of the displayed frame
func (c *Controller) FrameIndex() int { return c.index }

// Title returns the current window title
func (c *Controller) Title() string { return c.windowTitle() }

// Snapshot returns the current window information
func (c *Controller) Snapshot() model.OverlayWindow {
	return model.OverlayWindow{
		ID:         c.id,
		Path:       c.path,
		State:      c.state,
		Locked:     c.locked,
		FrameIndex: c.index,
		FrameCount: c.frameCount,
		Width:      c.width,
		Height:     c.height,
		Position:   c.position,
		OpenedAt:   c.openedAt,
		ClosedAt:   c.closedAt,
	}
}

// generateWindowID creates a unique window ID
func generateWindowID() string {
	// UUID v7 sorts by creation time
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(WindowIDPrefix+"%d", time.Now().UnixNano())
	}
	return id.String()
}
