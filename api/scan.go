package api

import (
	"encoding/json"
	"net/http"

	"github.com/fundmate/fundmate/payment/scan"
)

type DecodeScanRequest struct {
	Payload string `json:"payload" validate:"required"`
}

type DecodeScanResponse struct {
	Payment *scan.Payment `json:"payment"`
}

// DecodeScan parses a scanned payment code into send-form prefill values.
func (a *API) DecodeScan(w http.ResponseWriter, r *http.Request) {
	var req DecodeScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(&req); err != nil {
		badRequest(w, err.Error())
		return
	}

	decoded, err := scan.Parse(req.Payload)
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, DecodeScanResponse{Payment: decoded})
}
