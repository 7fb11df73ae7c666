// Package settlement finalizes payment transfers.
package settlement

import (
	"context"
	"errors"

	"github.com/fundmate/fundmate/payment/model"
)

// ErrRejected is returned when the downstream settlement declines a transfer.
var ErrRejected = errors.New("settlement rejected")

// Driver settles a single transaction request. A settlement attempt, once
// started, always resolves; drivers must not abort mid-settlement on context
// cancellation.
type Driver interface {
	Settle(ctx context.Context, req *model.TransactionRequest) error
}
