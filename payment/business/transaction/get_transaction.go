package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fundmate/fundmate/payment/model"
)

// Get returns the transaction by ID. Submissions known to this engine are
// served from their live status; anything else falls through to the history
// store.
func (b *business) Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	b.mu.Lock()
	sub, ok := b.submitted[id]
	b.mu.Unlock()

	if !ok {
		return b.store.Get(ctx, id)
	}

	// Terminal submissions have an authoritative history record; fall back to
	// the live snapshot while the record write is still in flight.
	if sub.Status().Status.Terminal() {
		if tx, err := b.store.Get(ctx, id); err == nil {
			return tx, nil
		}
	}
	return snapshot(sub), nil
}

func snapshot(sub *Submission) *model.Transaction {
	req := sub.Request()
	update := sub.Status()

	tx := &model.Transaction{
		ID:                req.ID,
		Recipient:         req.Recipient,
		SourceAmount:      req.SourceAmount,
		SourceToken:       req.SourceToken.Symbol,
		DestinationAmount: model.Convert(req.SourceAmount, req.SourceToken.ReferencePrice, req.DestinationToken.ReferencePrice),
		DestinationToken:  req.DestinationToken.Symbol,
		Note:              req.Note,
		Status:            update.Status,
		FailureReason:     update.Reason,
		CreatedAt:         req.CreatedAt,
	}
	if update.Status.Terminal() {
		tx.CompletedAt = time.Now()
	}
	return tx
}
