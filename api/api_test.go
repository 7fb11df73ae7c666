package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fundmate/fundmate/payment"
	"github.com/fundmate/fundmate/payment/auth"
	"github.com/fundmate/fundmate/payment/history/memory"
	"github.com/fundmate/fundmate/payment/model"
	"github.com/fundmate/fundmate/payment/pricefeed"
	"github.com/fundmate/fundmate/payment/settlement"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	engine := payment.NewEngine(payment.DefaultConfig(), payment.Deps{
		Gate:  auth.StaticGate{Approve: true},
		Feed:  pricefeed.FromTokens(model.DefaultTokens()),
		Store: memory.NewStore(),
		Driver: settlement.NewSimulated(settlement.Config{
			Latency:     time.Millisecond,
			SuccessRate: 1.0,
		}),
	})

	r := chi.NewRouter()
	New(engine).RegisterRoutes(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	assert.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateQuote(t *testing.T) {
	server := newTestServer(t)

	testCases := []struct {
		name           string
		body           CreateQuoteRequest
		expectedStatus int
		expectedAmount string
		expectNilQuote bool
	}{
		{
			name:           "eth_to_usdc",
			body:           CreateQuoteRequest{Amount: "20", SourceToken: "ETH", DestinationToken: "USDC"},
			expectedStatus: http.StatusOK,
			expectedAmount: "57000",
		},
		{
			name:           "partial_input_yields_null_quote",
			body:           CreateQuoteRequest{Amount: "2o", SourceToken: "ETH", DestinationToken: "USDC"},
			expectedStatus: http.StatusOK,
			expectNilQuote: true,
		},
		{
			name:           "unknown_token",
			body:           CreateQuoteRequest{Amount: "20", SourceToken: "ETH", DestinationToken: "DOGE"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing_source_token",
			body:           CreateQuoteRequest{Amount: "20", DestinationToken: "USDC"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/v1/quotes", tc.body)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			if tc.expectedStatus != http.StatusOK {
				resp.Body.Close()
				return
			}

			body := decode[QuoteResponse](t, resp)
			if tc.expectNilQuote {
				assert.Nil(t, body.Quote)
				return
			}
			assert.NotNil(t, body.Quote)
			assert.True(t, body.Quote.DestinationAmount.Equal(body.Quote.DestinationAmount.Round(2)))
			assert.Equal(t, tc.expectedAmount, body.Quote.DestinationAmount.String())
		})
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	server := newTestServer(t)

	testCases := []struct {
		name string
		body CreatePaymentRequest
	}{
		{
			name: "missing_recipient",
			body: CreatePaymentRequest{Amount: "20", SourceToken: "ETH", DestinationToken: "USDC"},
		},
		{
			name: "garbage_amount",
			body: CreatePaymentRequest{Amount: "lots", SourceToken: "ETH", DestinationToken: "USDC", Recipient: "0x1234abcd"},
		},
		{
			name: "unknown_source_token",
			body: CreatePaymentRequest{Amount: "20", SourceToken: "DOGE", DestinationToken: "USDC", Recipient: "0x1234abcd"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/v1/payments", tc.body)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreatePaymentLifecycle(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/v1/payments", CreatePaymentRequest{
		Amount:           "20",
		SourceToken:      "ETH",
		DestinationToken: "USDC",
		Recipient:        "0x1234abcd",
		Note:             "lunch",
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	created := decode[PaymentResponse](t, resp)
	assert.NotEqual(t, uuid.Nil, created.ID)

	// The settlement driver resolves in about a millisecond; poll the payment
	// until it leaves the in-flight statuses.
	var tx model.Transaction
	assert.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("%s/v1/payments/%s", server.URL, created.ID))
		if err != nil || resp.StatusCode != http.StatusOK {
			return false
		}
		tx = decode[model.Transaction](t, resp)
		return tx.Status.Terminal()
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, model.StatusSucceeded, tx.Status)
	assert.Equal(t, "57000", tx.DestinationAmount.String())

	listResp, err := http.Get(server.URL + "/v1/payments")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
	list := decode[ListPaymentsResponse](t, listResp)
	assert.Len(t, list.Transactions, 1)
	assert.Equal(t, created.ID, list.Transactions[0].ID)
}

func TestGetPaymentErrors(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/v1/payments/not-a-uuid")
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(server.URL + "/v1/payments/" + uuid.NewString())
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListTokens(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/v1/tokens")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[ListTokensResponse](t, resp)
	assert.Len(t, body.Tokens, 4)
	for _, listing := range body.Tokens {
		assert.True(t, listing.CurrentPrice.IsPositive())
	}
}

func TestDecodeScan(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/v1/scan/decode", DecodeScanRequest{
		Payload: "fundmate:0x1234abcd?amount=20.00&token=ETH&note=lunch",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[DecodeScanResponse](t, resp)
	assert.Equal(t, "0x1234abcd", body.Payment.Recipient)
	assert.Equal(t, "ETH", body.Payment.Token)
	assert.NotNil(t, body.Payment.Amount)

	resp = postJSON(t, server.URL+"/v1/scan/decode", DecodeScanRequest{Payload: "bitcoin:xyz"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
