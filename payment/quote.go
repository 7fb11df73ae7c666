package payment

import (
	"context"
	"log/slog"

	"github.com/fundmate/fundmate/payment/model"
)

// Quote converts amount of source into destination units at the current price
// snapshot. A nil quote with a nil error means the amount field is still
// awaiting valid input.
func (e *Engine) Quote(ctx context.Context, amount, source, destination string) (*model.Quote, error) {
	q, err := e.quotes.ConvertAmount(ctx, amount, source, destination)
	if err != nil {
		slog.Error("failed to quote", "source", source, "destination", destination, "error", err)
		return nil, err
	}
	return q, nil
}
