package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/fundmate/fundmate/payment/model"
)

type TokenListing struct {
	model.Token
	CurrentPrice decimal.Decimal `json:"current_price"`
}

type ListTokensResponse struct {
	Tokens []TokenListing `json:"tokens"`
}

// ListTokens returns the catalog with live feed prices. Catalog entries with
// no feed price fall back to the reference price.
func (a *API) ListTokens(w http.ResponseWriter, r *http.Request) {
	catalog := a.engine.Tokens()
	listings := make([]TokenListing, 0, len(catalog))
	for _, t := range catalog {
		listing := TokenListing{Token: t, CurrentPrice: t.ReferencePrice}
		if price, ok := a.engine.Price(t.Symbol); ok {
			listing.CurrentPrice = price.Amount
		}
		listings = append(listings, listing)
	}
	respond(w, http.StatusOK, ListTokensResponse{Tokens: listings})
}
