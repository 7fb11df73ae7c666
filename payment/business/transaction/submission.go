package transaction

import (
	"github.com/fundmate/fundmate/payment/domain"
	"github.com/fundmate/fundmate/payment/model"
)

// Submission is the caller's handle on an in-flight payment. The status is
// owned by the lifecycle that created it; readers only ever observe ordered
// transitions.
type Submission struct {
	req       *model.TransactionRequest
	lifecycle *domain.Lifecycle
}

func newSubmission(req *model.TransactionRequest) *Submission {
	return &Submission{
		req:       req,
		lifecycle: domain.NewLifecycle(),
	}
}

func (s *Submission) Request() *model.TransactionRequest {
	return s.req
}

// Status returns the current status snapshot.
func (s *Submission) Status() model.StatusUpdate {
	return s.lifecycle.Status()
}

// Done is closed when the submission reaches a terminal status. After Done,
// Status returns the terminal outcome.
func (s *Submission) Done() <-chan struct{} {
	return s.lifecycle.Done()
}

// Watch streams status transitions in order. Slow readers lose the oldest
// pending update, never the ordering.
func (s *Submission) Watch() <-chan model.StatusUpdate {
	return s.lifecycle.Watch()
}
