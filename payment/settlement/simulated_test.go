package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fundmate/fundmate/payment/model"
)

func testRequest() *model.TransactionRequest {
	tokens := model.DefaultTokens()
	return model.NewTransactionRequest(decimal.NewFromInt(20), tokens[0], tokens[2], "0xabc", "")
}

func TestSimulatedBernoulliBoundary(t *testing.T) {
	testCases := []struct {
		name        string
		successRate float64
		sample      float64
		expectErr   bool
	}{
		{name: "sample_below_threshold_succeeds", successRate: 0.8, sample: 0.79, expectErr: false},
		{name: "sample_at_threshold_fails", successRate: 0.8, sample: 0.8, expectErr: true},
		{name: "sample_above_threshold_fails", successRate: 0.8, sample: 0.81, expectErr: true},
		{name: "zero_rate_always_fails", successRate: 0, sample: 0, expectErr: true},
		{name: "full_rate_always_succeeds", successRate: 1, sample: 0.999, expectErr: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			driver := NewSimulated(Config{
				SuccessRate: tc.successRate,
				Rand:        func() float64 { return tc.sample },
				Sleep:       func(time.Duration) {},
			})

			err := driver.Settle(context.Background(), testRequest())
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrRejected)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSimulatedWaitsOutLatency(t *testing.T) {
	var slept time.Duration
	driver := NewSimulated(Config{
		Latency:     DefaultLatency,
		SuccessRate: 1,
		Rand:        func() float64 { return 0 },
		Sleep:       func(d time.Duration) { slept = d },
	})

	assert.NoError(t, driver.Settle(context.Background(), testRequest()))
	assert.Equal(t, DefaultLatency, slept)
}

// A settlement in flight resolves even when the caller's context is already
// cancelled.
func TestSimulatedIgnoresCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := NewSimulated(Config{
		Latency:     time.Millisecond,
		SuccessRate: 1,
		Rand:        func() float64 { return 0 },
	})

	assert.NoError(t, driver.Settle(ctx, testRequest()))
}
