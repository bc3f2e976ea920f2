package model

// WindowState represents the lifecycle state of an overlay window
type WindowState string

const (
	// StateLoading means the animation is being decoded and the window is not shown yet
	StateLoading WindowState = "Loading"

	// StateAnimating means the window is visible and its frame timer is running
	StateAnimating WindowState = "Animating"

	// StateDragging means a drag gesture is moving the window
	StateDragging WindowState = "Dragging"

	// StateClosed means the window was destroyed and its frames released
	StateClosed WindowState = "Closed"
)

// String returns the string representation of WindowState
func (ws WindowState) String() string {
	return string(ws)
}

// IsActive returns true if the window is on screen
func (ws WindowState) IsActive() bool {
	return ws == StateAnimating || ws == StateDragging
}

// IsTerminal returns true if no further transitions are allowed
func (ws WindowState) IsTerminal() bool {
	return ws == StateClosed
}

// CanTransition reports whether moving from ws to next is a legal step
func (ws WindowState) CanTransition(next WindowState) bool {
	switch ws {
	case StateLoading:
		return next == StateAnimating || next == StateClosed
	case StateAnimating:
		return next == StateDragging || next == StateClosed
	case StateDragging:
		return next == StateAnimating || next == StateClosed
	default:
		return false
	}
}
