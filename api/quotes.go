package api

import (
	"encoding/json"
	"net/http"

	"github.com/fundmate/fundmate/payment/model"
)

type CreateQuoteRequest struct {
	Amount           string `json:"amount"`
	SourceToken      string `json:"source_token" validate:"required"`
	DestinationToken string `json:"destination_token" validate:"required"`
}

type QuoteResponse struct {
	// Quote is null while the amount is not yet a valid non-negative decimal.
	Quote *model.Quote `json:"quote"`
}

func (a *API) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(&req); err != nil {
		badRequest(w, err.Error())
		return
	}

	quote, err := a.engine.Quote(r.Context(), req.Amount, req.SourceToken, req.DestinationToken)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, QuoteResponse{Quote: quote})
}
