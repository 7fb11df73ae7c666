package transaction

import (
	"context"
	"log/slog"
	"time"
)

// runAsync is an indirection over safeAsync so tests can override
// asynchronous behavior and execute lifecycles synchronously.
// Production code uses safeAsync (goroutine) by default.
var runAsync = safeAsync

// safeAsync runs a function in a goroutine with a timeout and structured error
// logging. It prevents silent failures of background lifecycles. The context
// is detached from the caller: abandoning a submission does not cancel it.
func safeAsync(op string, timeout time.Duration, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			slog.Error("async operation failed", "op", op, "error", err)
		} else {
			slog.Debug("async operation succeeded", "op", op)
		}
	}()
}
