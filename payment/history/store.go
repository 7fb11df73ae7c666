// Package history stores terminal transactions for the payments dashboard.
package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/fundmate/fundmate/payment/model"
)

// Store records completed transactions. Save is called once per transaction,
// after it reaches a terminal status; in-flight requests are never stored.
type Store interface {
	Save(ctx context.Context, tx model.Transaction) error
	Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	// List returns up to limit transactions, newest first.
	List(ctx context.Context, limit int) ([]model.Transaction, error)
}
