// Package feedback models the user-visible outcome of a click submission as
// an explicit finite state rather than ad hoc flags.
package feedback

import "sync"

// State identifies a submission outcome phase.
type State string

const (
	Idle      State = "idle"
	Pending   State = "pending"
	Succeeded State = "succeeded"
	Failed    State = "failed"
)

// Status is the current feedback value: a state plus a user-readable message
// for the terminal states.
type Status struct {
	State   State
	Message string
}

// Tracker owns the feedback value. Updates are last-write-wins: a second
// action started while the first is still pending overwrites the displayed
// status.
type Tracker struct {
	mu     sync.RWMutex
	status Status
}

// NewTracker creates a tracker in the Idle state.
func NewTracker() *Tracker {
	return &Tracker{status: Status{State: Idle}}
}

// Begin marks an action as started.
func (t *Tracker) Begin(button string) {
	t.set(Status{State: Pending, Message: "Logging click for " + button})
}

// Succeed marks the in-flight action as acknowledged.
func (t *Tracker) Succeed(button string) {
	t.set(Status{State: Succeeded, Message: "Click logged for " + button})
}

// Fail marks the in-flight action as failed.
func (t *Tracker) Fail(button string, err error) {
	msg := "Failed to log click for " + button
	if err != nil {
		msg += ": " + err.Error()
	}

	t.set(Status{State: Failed, Message: msg})
}

// Status returns the current feedback value.
func (t *Tracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.status
}

func (t *Tracker) set(status Status) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = status
}
