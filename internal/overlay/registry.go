package overlay

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ytget/gifrunner/internal/model"
)

// Registry tracks the live overlay windows of the process. It only exists for
// lifecycle decisions (quit when empty, close all); windows never share state
// through it.
type Registry struct {
	windows  map[string]*Controller
	mu       sync.RWMutex
	onEmpty  func()                    // called after the last window was removed
	onAdd    func(model.OverlayWindow) // callback for UI updates
	onRemove func(model.OverlayWindow)
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		windows: make(map[string]*Controller),
	}
}

// SetEmptyCallback sets the function called when the last window closes
func (r *Registry) SetEmptyCallback(callback func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEmpty = callback
}

// SetAddCallback sets the function called for every added window
func (r *Registry) SetAddCallback(callback func(model.OverlayWindow)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onAdd = callback
}

// SetRemoveCallback sets the function called after a window was removed
func (r *Registry) SetRemoveCallback(callback func(model.OverlayWindow)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onRemove = callback
}

// Track returns opts with OnClose chained so a closing window removes itself
func (r *Registry) Track(opts Options) Options {
	prev := opts.OnClose
	opts.OnClose = func(c *Controller) {
		if prev != nil {
			prev(c)
		}
		_ = r.Remove(c.ID())
	}
	return opts
}

// Add registers a live window
func (r *Registry) Add(c *Controller) error {
	r.mu.Lock()
	if _, exists := r.windows[c.ID()]; exists {
		r.mu.Unlock()
		return fmt.Errorf("window already registered: %s", c.ID())
	}
	if c.State().IsTerminal() {
		r.mu.Unlock()
		return fmt.Errorf("window is closed: %s", c.ID())
	}
	r.windows[c.ID()] = c
	onAdd := r.onAdd
	r.mu.Unlock()

	if onAdd != nil {
		onAdd(c.Snapshot())
	}
	return nil
}

// Remove forgets a window
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	c, exists := r.windows[id]
	if !exists {
		r.mu.Unlock()
		return fmt.Errorf("window not found: %s", id)
	}
	delete(r.windows, id)
	empty := len(r.windows) == 0
	onEmpty := r.onEmpty
	onRemove := r.onRemove
	r.mu.Unlock()

	if onRemove != nil {
		onRemove(c.Snapshot())
	}
	if empty && onEmpty != nil {
		onEmpty()
	}
	return nil
}

// Get returns a window by ID
func (r *Registry) Get(id string) (*Controller, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, exists := r.windows[id]
	return c, exists
}

// All returns the live windows, oldest first
func (r *Registry) All() []*Controller {
	r.mu.RLock()
	all := make([]*Controller, 0, len(r.windows))
	for _, c := range r.windows {
		all = append(all, c)
	}
	r.mu.RUnlock()

	// UUID v7 IDs sort chronologically
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID() < all[j].ID()
	})
	return all
}

// Snapshots returns information about every live window
func (r *Registry) Snapshots() []model.OverlayWindow {
	all := r.All()
	snaps := make([]model.OverlayWindow, 0, len(all))
	for _, c := range all {
		snaps = append(snaps, c.Snapshot())
	}
	return snaps
}

// Len returns the number of live windows
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.windows)
}

// CloseAll closes every live window
func (r *Registry) CloseAll() {
	for _, c := range r.All() {
		c.Close()
	}
}
