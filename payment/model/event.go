package model

import (
	"github.com/google/uuid"
)

type EventKind string

const (
	EventSuccess EventKind = "success"
	EventFailure EventKind = "failure"
)

// PaymentEvent is a fire-and-forget signal emitted when a submission reaches a
// terminal status. Delivery is best-effort; nothing in the engine depends on it.
type PaymentEvent struct {
	Kind      EventKind `json:"kind"`
	RequestID uuid.UUID `json:"request_id"`
}
