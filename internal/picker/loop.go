package picker

import (
	"errors"
	"fmt"
	"log"
)

// ErrPromptFailed wraps errors reported by the file dialog itself
var ErrPromptFailed = errors.New("file prompt failed")

// Prompter asks the user for a file. done receives an empty path and a nil
// error when the user cancels.
type Prompter interface {
	Prompt(done func(path string, err error))
}

// PrompterFunc adapts a function to Prompter
type PrompterFunc func(done func(path string, err error))

// Prompt calls f
func (f PrompterFunc) Prompt(done func(path string, err error)) {
	f(done)
}

// Opener opens one overlay window for path
type Opener func(path string) error

// Policy controls how the loop reacts to failures
type Policy struct {
	// RepromptOnError keeps prompting after a file fails to open
	RepromptOnError bool
}

// DefaultPolicy re-prompts after a decode failure
func DefaultPolicy() Policy {
	return Policy{RepromptOnError: true}
}

// Loop repeatedly prompts for files until the user cancels
type Loop struct {
	prompter Prompter
	open     Opener
	policy   Policy

	running  bool
	waiting  bool
	opened   int
	failed   int
	lastErr  error
	onStop   func()
	onFailed func(path string, err error)
}

// NewLoop creates a picker loop
func NewLoop(prompter Prompter, open Opener, policy Policy) *Loop {
	return &Loop{
		prompter: prompter,
		open:     open,
		policy:   policy,
	}
}

// SetStopCallback sets the function called when the loop stops prompting
func (l *Loop) SetStopCallback(callback func()) {
	l.onStop = callback
}

// SetFailureCallback sets the function called for every file that failed to open
func (l *Loop) SetFailureCallback(callback func(path string, err error)) {
	l.onFailed = callback
}

// SetPolicy replaces the failure policy
func (l *Loop) SetPolicy(policy Policy) {
	l.policy = policy
}

// Start begins prompting. Calling Start while a prompt is open adopts that
// prompt instead of opening another; calling it after the loop stopped starts
// a new round.
func (l *Loop) Start() {
	l.running = true
	if l.waiting {
		return
	}
	l.lastErr = nil
	l.prompt()
}

func (l *Loop) prompt() {
	l.waiting = true
	l.prompter.Prompt(l.handle)
}

func (l *Loop) handle(path string, err error) {
	l.waiting = false
	if !l.running {
		return
	}

	if err != nil {
		log.Printf("file prompt failed: %v", err)
		l.lastErr = fmt.Errorf("%w: %v", ErrPromptFailed, err)
		l.stop()
		return
	}

	if path == "" {
		log.Printf("file prompt cancelled after %d opened window(s)", l.opened)
		l.stop()
		return
	}

	if err := l.open(path); err != nil {
		l.failed++
		l.lastErr = err
		log.Printf("failed to open %s: %v", path, err)
		if l.onFailed != nil {
			l.onFailed(path, err)
		}
		if !l.policy.RepromptOnError {
			l.stop()
			return
		}
		l.prompt()
		return
	}

	l.opened++
	l.prompt()
}

// Stop ends the loop; a prompt that is still open is ignored when it returns
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.stop()
}

func (l *Loop) stop() {
	l.running = false
	if l.onStop != nil {
		l.onStop()
	}
}

// Running reports whether the loop is still prompting
func (l *Loop) Running() bool {
	return l.running
}

// Opened returns how many files were opened successfully
func (l *Loop) Opened() int {
	return l.opened
}

// Failed returns how many files failed to open
func (l *Loop) Failed() int {
	return l.failed
}

// LastError returns the most recent open or prompt error
func (l *Loop) LastError() error {
	return l.lastErr
}
