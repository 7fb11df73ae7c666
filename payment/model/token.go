package model

import (
	"github.com/shopspring/decimal"
)

// Token is an immutable entry in the reference catalog. ReferencePrice is the
// catalog price in USD used when no live feed price is available.
type Token struct {
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name"`
	ReferencePrice decimal.Decimal `json:"reference_price"`
}

// DefaultTokens returns the built-in token catalog.
func DefaultTokens() []Token {
	return []Token{
		{Symbol: "ETH", Name: "Ethereum", ReferencePrice: decimal.NewFromFloat(2850.0)},
		{Symbol: "BTC", Name: "Bitcoin", ReferencePrice: decimal.NewFromFloat(93000.0)},
		{Symbol: "USDC", Name: "USD Coin", ReferencePrice: decimal.NewFromFloat(1.0)},
		{Symbol: "APT", Name: "Aptos", ReferencePrice: decimal.NewFromFloat(8.50)},
	}
}
