package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fundmate/fundmate/payment/errs"
	"github.com/fundmate/fundmate/payment/model"
)

func TestLifecycleHappyPath(t *testing.T) {
	l := NewLifecycle()
	assert.Equal(t, model.StatusDraft, l.Status().Status)

	assert.NoError(t, l.Transition(model.StatusAuthenticating))
	assert.Equal(t, model.StatusAuthenticating, l.Status().Status)

	assert.NoError(t, l.Transition(model.StatusProcessing))
	assert.NoError(t, l.Transition(model.StatusSucceeded))

	update := l.Status()
	assert.Equal(t, model.StatusSucceeded, update.Status)
	assert.Empty(t, update.Reason)

	select {
	case <-l.Done():
	default:
		t.Fatal("done channel not closed after terminal status")
	}
}

func TestLifecycleInvalidTransitions(t *testing.T) {
	testCases := []struct {
		name string
		walk []model.TransactionStatus
		next model.TransactionStatus
	}{
		{
			name: "draft_cannot_skip_to_processing",
			next: model.StatusProcessing,
		},
		{
			name: "draft_cannot_succeed",
			next: model.StatusSucceeded,
		},
		{
			name: "authenticating_cannot_succeed_directly",
			walk: []model.TransactionStatus{model.StatusAuthenticating},
			next: model.StatusSucceeded,
		},
		{
			name: "succeeded_is_terminal",
			walk: []model.TransactionStatus{model.StatusAuthenticating, model.StatusProcessing, model.StatusSucceeded},
			next: model.StatusFailed,
		},
		{
			name: "no_regression_to_draft",
			walk: []model.TransactionStatus{model.StatusAuthenticating},
			next: model.StatusDraft,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLifecycle()
			for _, s := range tc.walk {
				assert.NoError(t, l.Transition(s))
			}

			err := l.Transition(tc.next)
			assert.Error(t, err)
			assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
		})
	}
}

func TestLifecycleFailedIsTerminal(t *testing.T) {
	l := NewLifecycle()
	assert.NoError(t, l.Transition(model.StatusAuthenticating))
	assert.NoError(t, l.Fail(model.ReasonAuthDeclined))

	update := l.Status()
	assert.Equal(t, model.StatusFailed, update.Status)
	assert.Equal(t, model.ReasonAuthDeclined, update.Reason)

	assert.Error(t, l.Transition(model.StatusProcessing))
	assert.Error(t, l.Fail("again"))
}

func TestLifecycleWatchersObserveOrderedTransitions(t *testing.T) {
	l := NewLifecycle()
	updates := l.Watch()

	assert.NoError(t, l.Transition(model.StatusAuthenticating))
	assert.NoError(t, l.Transition(model.StatusProcessing))
	assert.NoError(t, l.Fail(model.ReasonSettlementRejected))

	expected := []model.StatusUpdate{
		{Status: model.StatusAuthenticating},
		{Status: model.StatusProcessing},
		{Status: model.StatusFailed, Reason: model.ReasonSettlementRejected},
	}
	for _, want := range expected {
		assert.Equal(t, want, <-updates)
	}
}

func TestLifecycleSlowWatcherDropsOldest(t *testing.T) {
	l := NewLifecycle()
	updates := l.Watch()

	// Nobody reads while more transitions happen than the buffer holds; the
	// newest updates must survive.
	assert.NoError(t, l.Transition(model.StatusAuthenticating))
	assert.NoError(t, l.Transition(model.StatusProcessing))
	assert.NoError(t, l.Transition(model.StatusSucceeded))

	var seen []model.StatusUpdate
	for {
		select {
		case u := <-updates:
			seen = append(seen, u)
			continue
		default:
		}
		break
	}

	assert.NotEmpty(t, seen)
	assert.Equal(t, model.StatusSucceeded, seen[len(seen)-1].Status)
}
