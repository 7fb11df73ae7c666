package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fundmate/fundmate/payment/errs"
	"github.com/fundmate/fundmate/payment/model"
)

// Submit validates req synchronously and starts its lifecycle in the
// background. Validation failures and double submissions return before any
// side effect; everything after that is reported through the Submission's
// terminal status, never as an error.
func (b *business) Submit(ctx context.Context, req *model.TransactionRequest) (*Submission, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	b.mu.Lock()
	if _, dup := b.submitted[req.ID]; dup {
		b.mu.Unlock()
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "transaction already submitted"}
	}
	sub := newSubmission(req)
	b.submitted[req.ID] = sub
	b.mu.Unlock()

	runAsync("process_transaction", b.processTimeout, func(ctx context.Context) error {
		return b.process(ctx, sub)
	})

	return sub, nil
}

func validateRequest(req *model.TransactionRequest) error {
	if req == nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "request is required"}
	}
	if !req.SourceAmount.IsPositive() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount must be positive"}
	}
	if strings.TrimSpace(req.Recipient) == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "recipient is required"}
	}
	if req.SourceToken.Symbol == req.DestinationToken.Symbol {
		return &errs.Error{Code: errs.InvalidArgument, Message: "source and destination tokens must differ"}
	}
	return nil
}

// process runs the lifecycle to a terminal status. Authentication is the only
// gate that can abort before settlement; once settlement starts it always
// resolves.
func (b *business) process(ctx context.Context, sub *Submission) error {
	req := sub.Request()

	if err := sub.lifecycle.Transition(model.StatusAuthenticating); err != nil {
		return err
	}

	prompt := fmt.Sprintf("Send %s %s to %s", req.SourceAmount.StringFixed(2), req.SourceToken.Symbol, req.Recipient)
	authCtx, cancel := context.WithTimeout(ctx, b.authTimeout)
	granted, err := b.gate.Authenticate(authCtx, prompt)
	cancel()
	if err != nil || !granted {
		reason := model.ReasonAuthDeclined
		if errors.Is(err, context.DeadlineExceeded) {
			reason = model.ReasonAuthTimedOut
		}
		if err != nil {
			slog.Warn("authentication gate failed", "request_id", req.ID, "error", err)
		}
		b.finish(ctx, sub, model.StatusFailed, reason)
		return nil
	}

	if err := sub.lifecycle.Transition(model.StatusProcessing); err != nil {
		return err
	}

	if err := b.driver.Settle(ctx, req); err != nil {
		b.finish(ctx, sub, model.StatusFailed, model.ReasonSettlementRejected)
		return nil
	}

	b.finish(ctx, sub, model.StatusSucceeded, "")
	return nil
}

// finish records the terminal status, emits the outcome event and writes the
// history record. Event emission and history writes are best-effort.
func (b *business) finish(ctx context.Context, sub *Submission, status model.TransactionStatus, reason string) {
	req := sub.Request()

	var err error
	if status == model.StatusSucceeded {
		err = sub.lifecycle.Transition(model.StatusSucceeded)
	} else {
		err = sub.lifecycle.Fail(reason)
	}
	if err != nil {
		slog.Error("terminal transition rejected", "request_id", req.ID, "status", status, "error", err)
		return
	}

	kind := model.EventFailure
	if status == model.StatusSucceeded {
		kind = model.EventSuccess
	}
	b.sink.Emit(model.PaymentEvent{Kind: kind, RequestID: req.ID})

	record := model.Transaction{
		ID:                req.ID,
		Recipient:         req.Recipient,
		SourceAmount:      req.SourceAmount,
		SourceToken:       req.SourceToken.Symbol,
		DestinationAmount: model.Convert(req.SourceAmount, req.SourceToken.ReferencePrice, req.DestinationToken.ReferencePrice),
		DestinationToken:  req.DestinationToken.Symbol,
		Note:              req.Note,
		Status:            status,
		FailureReason:     reason,
		CreatedAt:         req.CreatedAt,
		CompletedAt:       time.Now(),
	}
	if err := b.store.Save(ctx, record); err != nil {
		slog.Error("record transaction", "request_id", req.ID, "error", err)
	}
}
