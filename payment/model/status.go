package model

type TransactionStatus string

const (
	StatusDraft          TransactionStatus = "draft"
	StatusAuthenticating TransactionStatus = "authenticating"
	StatusProcessing     TransactionStatus = "processing"
	StatusSucceeded      TransactionStatus = "succeeded"
	StatusFailed         TransactionStatus = "failed"
)

// Failure reasons carried by terminal failed statuses. The presentation layer
// offers a retry action only for settlement rejections.
const (
	ReasonAuthDeclined       = "authentication declined"
	ReasonAuthTimedOut       = "authentication timed out"
	ReasonSettlementRejected = "settlement rejected"
)

// Terminal reports whether no further transition can occur from s.
func (s TransactionStatus) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// StatusUpdate is a point-in-time view of a submission's status. Reason is
// empty unless Status is StatusFailed.
type StatusUpdate struct {
	Status TransactionStatus `json:"status"`
	Reason string            `json:"reason,omitempty"`
}
