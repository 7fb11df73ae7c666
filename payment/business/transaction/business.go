// Package transaction drives a payment request from submission to a terminal
// status: validation, the authentication gate, simulated settlement, outcome
// notification and history recording.
package transaction

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fundmate/fundmate/payment/auth"
	"github.com/fundmate/fundmate/payment/history"
	"github.com/fundmate/fundmate/payment/history/memory"
	"github.com/fundmate/fundmate/payment/model"
	"github.com/fundmate/fundmate/payment/notify"
	"github.com/fundmate/fundmate/payment/settlement"
)

type Business interface {
	Submit(ctx context.Context, req *model.TransactionRequest) (*Submission, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context, limit int) ([]model.Transaction, error)
}

// Deps are the external capabilities a transaction lifecycle touches.
type Deps struct {
	Gate   auth.Gate
	Driver settlement.Driver
	Sink   notify.Sink
	Store  history.Store
}

// Config bounds the lifecycle. AuthTimeout caps the wait on the authentication
// gate; ProcessTimeout caps the whole background lifecycle.
type Config struct {
	AuthTimeout    time.Duration
	ProcessTimeout time.Duration
}

const (
	DefaultAuthTimeout    = 30 * time.Second
	DefaultProcessTimeout = time.Minute
)

type business struct {
	gate           auth.Gate
	driver         settlement.Driver
	sink           notify.Sink
	store          history.Store
	authTimeout    time.Duration
	processTimeout time.Duration

	mu        sync.Mutex
	submitted map[uuid.UUID]*Submission
}

// NewTransactionBusiness creates the transaction business unit.
func NewTransactionBusiness(deps Deps, cfg Config) Business {
	if cfg.AuthTimeout <= 0 {
		cfg.AuthTimeout = DefaultAuthTimeout
	}
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = DefaultProcessTimeout
	}
	if deps.Sink == nil {
		deps.Sink = notify.Discard{}
	}
	if deps.Store == nil {
		deps.Store = memory.NewStore()
	}
	return &business{
		gate:           deps.Gate,
		driver:         deps.Driver,
		sink:           deps.Sink,
		store:          deps.Store,
		authTimeout:    cfg.AuthTimeout,
		processTimeout: cfg.ProcessTimeout,
		submitted:      make(map[uuid.UUID]*Submission),
	}
}
