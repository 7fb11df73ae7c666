// Package api exposes the payment engine over HTTP for the presentation layer.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fundmate/fundmate/payment"
	"github.com/fundmate/fundmate/payment/errs"
)

var validate = validator.New()

type API struct {
	engine *payment.Engine
}

func New(engine *payment.Engine) *API {
	return &API{engine: engine}
}

func (a *API) RegisterRoutes(r chi.Router) {
	r.Post("/v1/quotes", a.CreateQuote)
	r.Post("/v1/payments", a.CreatePayment)
	r.Get("/v1/payments", a.ListPayments)
	r.Get("/v1/payments/{id}", a.GetPayment)
	r.Get("/v1/tokens", a.ListTokens)
	r.Post("/v1/scan/decode", a.DecodeScan)
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	respond(w, errs.HTTPStatus(err), map[string]string{
		"code":  errs.Code(err).String(),
		"error": err.Error(),
	})
}

func badRequest(w http.ResponseWriter, message string) {
	respondError(w, &errs.Error{Code: errs.InvalidArgument, Message: message})
}
