package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRequest describes a single payment attempt. It is immutable once
// created and owned exclusively by the engine processing it.
type TransactionRequest struct {
	ID               uuid.UUID       `json:"id"`
	SourceAmount     decimal.Decimal `json:"source_amount"`
	SourceToken      Token           `json:"source_token"`
	DestinationToken Token           `json:"destination_token"`
	Recipient        string          `json:"recipient"`
	Note             string          `json:"note,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// NewTransactionRequest builds a request with a fresh ID and creation time.
func NewTransactionRequest(sourceAmount decimal.Decimal, sourceToken, destinationToken Token, recipient, note string) *TransactionRequest {
	return &TransactionRequest{
		ID:               uuid.New(),
		SourceAmount:     sourceAmount,
		SourceToken:      sourceToken,
		DestinationToken: destinationToken,
		Recipient:        recipient,
		Note:             note,
		CreatedAt:        time.Now(),
	}
}

// Transaction is the terminal record of a processed payment, kept for the
// payments dashboard. In-flight requests are never persisted.
type Transaction struct {
	ID                uuid.UUID         `json:"id"`
	Recipient         string            `json:"recipient"`
	SourceAmount      decimal.Decimal   `json:"source_amount"`
	SourceToken       string            `json:"source_token"`
	DestinationAmount decimal.Decimal   `json:"destination_amount"`
	DestinationToken  string            `json:"destination_token"`
	Note              string            `json:"note,omitempty"`
	Status            TransactionStatus `json:"status"`
	FailureReason     string            `json:"failure_reason,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	CompletedAt       time.Time         `json:"completed_at"`
}
