package model

import (
	"github.com/shopspring/decimal"
)

// Quote is a non-binding conversion between two tokens, computed from a price
// snapshot at a single instant. Quotes are derived values and are never cached
// across a price update.
type Quote struct {
	SourceAmount      decimal.Decimal `json:"source_amount"`
	SourceToken       string          `json:"source_token"`
	DestinationAmount decimal.Decimal `json:"destination_amount"`
	DestinationToken  string          `json:"destination_token"`
	ExchangeRate      decimal.Decimal `json:"exchange_rate"`
}

// Destination returns the quoted amount as Money.
func (q Quote) Destination() Money {
	return Money{Amount: q.DestinationAmount, Currency: q.DestinationToken}
}

// Convert computes amount * sourcePrice / destinationPrice rounded to two
// decimal places, half away from zero.
func Convert(amount, sourcePrice, destinationPrice decimal.Decimal) decimal.Decimal {
	return amount.Mul(sourcePrice).Div(destinationPrice).Round(2)
}
