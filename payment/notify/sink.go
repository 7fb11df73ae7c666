// Package notify delivers payment outcome events to the presentation layer.
package notify

import (
	"github.com/fundmate/fundmate/payment/model"
)

// Sink consumes payment events. Emit must never block; delivery is
// best-effort and unacknowledged.
type Sink interface {
	Emit(event model.PaymentEvent)
}

// Fanout forwards each event to every sink.
type Fanout []Sink

func (f Fanout) Emit(event model.PaymentEvent) {
	for _, s := range f {
		s.Emit(event)
	}
}

// Discard drops every event.
type Discard struct{}

func (Discard) Emit(model.PaymentEvent) {}
