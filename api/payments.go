package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundmate/fundmate/payment/model"
)

type CreatePaymentRequest struct {
	Amount           string `json:"amount" validate:"required"`
	SourceToken      string `json:"source_token" validate:"required"`
	DestinationToken string `json:"destination_token" validate:"required"`
	Recipient        string `json:"recipient" validate:"required"`
	Note             string `json:"note"`
}

type PaymentResponse struct {
	ID     uuid.UUID          `json:"id"`
	Status model.StatusUpdate `json:"status"`
}

func (a *API) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(&req); err != nil {
		badRequest(w, err.Error())
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		badRequest(w, "amount must be a decimal number")
		return
	}
	source, ok := a.engine.Token(req.SourceToken)
	if !ok {
		badRequest(w, "unknown source token")
		return
	}
	destination, ok := a.engine.Token(req.DestinationToken)
	if !ok {
		badRequest(w, "unknown destination token")
		return
	}

	txReq := model.NewTransactionRequest(amount, *source, *destination, req.Recipient, req.Note)
	sub, err := a.engine.Submit(r.Context(), txReq)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusAccepted, PaymentResponse{
		ID:     txReq.ID,
		Status: sub.Status(),
	})
}

func (a *API) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid payment ID")
		return
	}

	tx, err := a.engine.GetTransaction(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, tx)
}

type ListPaymentsResponse struct {
	Transactions []model.Transaction `json:"transactions"`
}

func (a *API) ListPayments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			badRequest(w, "limit must be a positive number")
			return
		}
		limit = parsed
	}

	txs, err := a.engine.ListTransactions(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}

	if txs == nil {
		txs = []model.Transaction{}
	}
	respond(w, http.StatusOK, ListPaymentsResponse{Transactions: txs})
}
