package notify

import (
	"github.com/fundmate/fundmate/payment/model"
)

const defaultHubSize = 64

// Hub buffers events on a bounded channel for one consumer. When the buffer is
// full the newest event is dropped: nothing in the engine depends on delivery,
// and the event rate is low enough that overflow means nobody is listening.
type Hub struct {
	events chan model.PaymentEvent
}

func NewHub(size int) *Hub {
	if size <= 0 {
		size = defaultHubSize
	}
	return &Hub{events: make(chan model.PaymentEvent, size)}
}

func (h *Hub) Emit(event model.PaymentEvent) {
	select {
	case h.events <- event:
	default:
	}
}

// Events is the consumer side of the hub.
func (h *Hub) Events() <-chan model.PaymentEvent {
	return h.events
}

var _ Sink = (*Hub)(nil)
