// Package pricefeed serves token prices to the quote engine.
package pricefeed

import (
	"github.com/shopspring/decimal"

	"github.com/fundmate/fundmate/payment/model"
)

// Feed returns the current price for a token symbol. Implementations must be
// safe for concurrent readers; the engine treats each read as a snapshot and
// never waits on price updates.
type Feed interface {
	PriceOf(symbol string) (decimal.Decimal, bool)
}

// PriceUpdate announces a new price for one symbol.
type PriceUpdate struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// Static is a fixed price table.
type Static map[string]decimal.Decimal

func (s Static) PriceOf(symbol string) (decimal.Decimal, bool) {
	price, ok := s[symbol]
	return price, ok
}

// FromTokens builds a static feed from catalog reference prices.
func FromTokens(tokens []model.Token) Static {
	s := make(Static, len(tokens))
	for _, t := range tokens {
		s[t.Symbol] = t.ReferencePrice
	}
	return s
}
