package transaction

import (
	"context"

	"github.com/fundmate/fundmate/payment/model"
)

// List returns completed transactions for the dashboard, newest first.
func (b *business) List(ctx context.Context, limit int) ([]model.Transaction, error) {
	return b.store.List(ctx, limit)
}
