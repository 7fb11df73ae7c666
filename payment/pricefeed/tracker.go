package pricefeed

import (
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fundmate/fundmate/payment/model"
)

const (
	// DefaultTickInterval matches the original tracker's 30 second cadence.
	DefaultTickInterval = 30 * time.Second

	// maxFluctuation bounds each tick's price move to ±2%.
	maxFluctuation = 0.02

	subscriberBuffer = 16
)

// Tracker simulates a live market feed. It seeds prices from the token
// catalog, nudges each price by up to ±2% per tick, and publishes updates to
// subscribers. Reads always see a consistent snapshot.
type Tracker struct {
	interval  time.Duration
	randFloat func() float64

	mu     sync.RWMutex
	prices map[string]decimal.Decimal
	subs   []chan PriceUpdate

	stop     chan struct{}
	stopOnce sync.Once
}

// NewTracker seeds a tracker from the catalog. A zero interval falls back to
// DefaultTickInterval; randFn may be nil outside tests.
func NewTracker(tokens []model.Token, interval time.Duration, randFn func() float64) *Tracker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if randFn == nil {
		randFn = rand.Float64
	}
	prices := make(map[string]decimal.Decimal, len(tokens))
	for _, t := range tokens {
		prices[t.Symbol] = t.ReferencePrice
	}
	return &Tracker{
		interval:  interval,
		randFloat: randFn,
		prices:    prices,
		stop:      make(chan struct{}),
	}
}

// Start begins ticking in the background until Stop is called.
func (t *Tracker) Start() {
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.Tick()
			case <-t.stop:
				return
			}
		}
	}()
}

func (t *Tracker) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
}

// Tick applies one round of fluctuations and publishes the new prices.
// Exported so tests and the demo can advance the feed manually.
func (t *Tracker) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for symbol, price := range t.prices {
		fluctuation := (t.randFloat()*2 - 1) * maxFluctuation
		next := price.Mul(decimal.NewFromFloat(1 + fluctuation))
		t.prices[symbol] = next
		t.publish(PriceUpdate{Symbol: symbol, Price: next})
	}
}

// publish sends without blocking, dropping the oldest pending update when a
// subscriber has fallen behind. Callers must hold t.mu.
func (t *Tracker) publish(update PriceUpdate) {
	for _, ch := range t.subs {
		select {
		case ch <- update:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- update:
			default:
			}
		}
	}
}

func (t *Tracker) PriceOf(symbol string) (decimal.Decimal, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	price, ok := t.prices[symbol]
	return price, ok
}

// Snapshot returns a copy of all current prices.
func (t *Tracker) Snapshot() map[string]decimal.Decimal {
	t.mu.RLock()
	defer t.mu.RUnlock()
	snapshot := make(map[string]decimal.Decimal, len(t.prices))
	for symbol, price := range t.prices {
		snapshot[symbol] = price
	}
	return snapshot
}

// Subscribe registers a price update channel.
func (t *Tracker) Subscribe() <-chan PriceUpdate {
	t.mu.Lock()
	defer t.mu.Unlock()
	ch := make(chan PriceUpdate, subscriberBuffer)
	t.subs = append(t.subs, ch)
	return ch
}

var _ Feed = (*Tracker)(nil)
