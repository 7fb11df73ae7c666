package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money pairs a non-negative amount with a token symbol.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}
