package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fundmate/fundmate/payment/model"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// GetTransaction returns a transaction by ID, live or from history.
func (e *Engine) GetTransaction(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	tx, err := e.transactions.Get(ctx, id)
	if err != nil {
		slog.Error("failed to get transaction", "request_id", id, "error", err)
		return nil, err
	}
	return tx, nil
}

// ListTransactions returns recent completed transactions, newest first.
func (e *Engine) ListTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	txs, err := e.transactions.List(ctx, limit)
	if err != nil {
		slog.Error("failed to list transactions", "error", err)
		return nil, err
	}
	return txs, nil
}
