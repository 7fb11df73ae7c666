package payment

import (
	"context"
	"log/slog"

	"github.com/fundmate/fundmate/payment/business/transaction"
	"github.com/fundmate/fundmate/payment/model"
)

// Submit starts processing req and returns its handle. Validation and
// double-submission errors return synchronously; every later outcome is
// delivered as the submission's terminal status.
func (e *Engine) Submit(ctx context.Context, req *model.TransactionRequest) (*transaction.Submission, error) {
	sub, err := e.transactions.Submit(ctx, req)
	if err != nil {
		slog.Error("failed to submit transaction", "error", err)
		return nil, err
	}
	slog.Info("transaction submitted", "request_id", req.ID, "recipient", req.Recipient)
	return sub, nil
}
