// Package domain owns the transaction lifecycle state machine.
package domain

import (
	"fmt"
	"sync"

	"github.com/fundmate/fundmate/payment/errs"
	"github.com/fundmate/fundmate/payment/model"
)

// watcherBuffer bounds each watcher channel. When a slow watcher falls behind,
// the oldest update is dropped so transitions are never blocked.
const watcherBuffer = 8

// transitions lists the valid next statuses for each non-terminal status.
// Draft can fail directly only through validation; terminal statuses have no
// successors, so every lifecycle is monotonic and one-directional.
var transitions = map[model.TransactionStatus][]model.TransactionStatus{
	model.StatusDraft:          {model.StatusAuthenticating, model.StatusFailed},
	model.StatusAuthenticating: {model.StatusProcessing, model.StatusFailed},
	model.StatusProcessing:     {model.StatusSucceeded, model.StatusFailed},
}

// Lifecycle tracks the status of a single payment submission. It validates the
// current state before every transition, publishes each transition to watchers
// in order, and closes Done when a terminal status is reached.
type Lifecycle struct {
	mu       sync.Mutex
	status   model.TransactionStatus
	reason   string
	watchers []chan model.StatusUpdate
	done     chan struct{}
}

// NewLifecycle creates a lifecycle in the draft status.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{
		status: model.StatusDraft,
		done:   make(chan struct{}),
	}
}

// Transition moves the lifecycle to next without a failure reason.
func (l *Lifecycle) Transition(next model.TransactionStatus) error {
	return l.transition(next, "")
}

// Fail moves the lifecycle to the terminal failed status with a reason.
func (l *Lifecycle) Fail(reason string) error {
	return l.transition(model.StatusFailed, reason)
}

func (l *Lifecycle) transition(next model.TransactionStatus, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !allowed(l.status, next) {
		return &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: fmt.Sprintf("cannot transition from %s to %s", l.status, next),
		}
	}

	l.status = next
	l.reason = reason
	l.publish(model.StatusUpdate{Status: next, Reason: reason})

	if next.Terminal() {
		close(l.done)
	}
	return nil
}

func allowed(current, next model.TransactionStatus) bool {
	for _, s := range transitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// publish fans the update out to all watchers without blocking. Callers must
// hold l.mu so watchers observe transitions in order.
func (l *Lifecycle) publish(update model.StatusUpdate) {
	for _, ch := range l.watchers {
		select {
		case ch <- update:
		default:
			// Full watcher: drop the oldest update to make room.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- update:
			default:
			}
		}
	}
}

// Status returns the current status and failure reason.
func (l *Lifecycle) Status() model.StatusUpdate {
	l.mu.Lock()
	defer l.mu.Unlock()
	return model.StatusUpdate{Status: l.status, Reason: l.reason}
}

// Done is closed once the lifecycle reaches a terminal status.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.done
}

// Watch registers a new watcher channel. Updates already published before the
// call are not replayed; use Status for the current snapshot.
func (l *Lifecycle) Watch() <-chan model.StatusUpdate {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch := make(chan model.StatusUpdate, watcherBuffer)
	l.watchers = append(l.watchers, ch)
	return ch
}
