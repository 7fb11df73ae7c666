package settlement

import (
	"context"
	"math/rand"
	"time"

	"github.com/fundmate/fundmate/payment/model"
)

const (
	DefaultSuccessRate = 0.8
	DefaultLatency     = 2 * time.Second
)

// Config controls the simulated driver. Rand and Sleep exist so tests can run
// deterministically; both default to the ambient implementations when nil.
type Config struct {
	Latency     time.Duration
	SuccessRate float64
	Rand        func() float64
	Sleep       func(d time.Duration)
}

// Simulated resolves each settlement after a fixed latency by sampling a
// Bernoulli trial. It stands in for a real settlement backend; the success
// rate is a demo constant, not a behavior with product rationale.
type Simulated struct {
	latency     time.Duration
	successRate float64
	randFloat   func() float64
	sleep       func(d time.Duration)
}

func NewSimulated(cfg Config) *Simulated {
	s := &Simulated{
		latency:     cfg.Latency,
		successRate: cfg.SuccessRate,
		randFloat:   cfg.Rand,
		sleep:       cfg.Sleep,
	}
	if s.randFloat == nil {
		s.randFloat = rand.Float64
	}
	if s.sleep == nil {
		s.sleep = time.Sleep
	}
	return s
}

// Settle waits out the simulated latency and resolves the transfer. The wait
// ignores ctx: an in-flight settlement cannot be cancelled.
func (s *Simulated) Settle(ctx context.Context, req *model.TransactionRequest) error {
	if s.latency > 0 {
		s.sleep(s.latency)
	}
	if s.randFloat() < s.successRate {
		return nil
	}
	return ErrRejected
}

var _ Driver = (*Simulated)(nil)
