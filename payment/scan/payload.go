package scan

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fundmate/fundmate/payment/errs"
)

// Scheme is the URI scheme of fundmate payment codes:
//
//	fundmate:<recipient>?amount=20.00&token=ETH&note=lunch
//
// Only the recipient is mandatory; amount, token and note prefill the send
// form when present.
const Scheme = "fundmate"

// Payment is the decoded contents of a payment code.
type Payment struct {
	Recipient string           `json:"recipient"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Token     string           `json:"token,omitempty"`
	Note      string           `json:"note,omitempty"`
}

// Encode renders p as a payment URI.
func Encode(p Payment) string {
	query := url.Values{}
	if p.Amount != nil {
		query.Set("amount", p.Amount.StringFixed(2))
	}
	if p.Token != "" {
		query.Set("token", p.Token)
	}
	if p.Note != "" {
		query.Set("note", p.Note)
	}
	raw := fmt.Sprintf("%s:%s", Scheme, p.Recipient)
	if encoded := query.Encode(); encoded != "" {
		raw += "?" + encoded
	}
	return raw
}

// Parse decodes a scanned payment URI. A bare address with no scheme is also
// accepted, since older codes carry only the wallet address.
func Parse(raw string) (*Payment, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "empty scan payload"}
	}

	if !strings.Contains(raw, ":") {
		return &Payment{Recipient: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "malformed scan payload"}
	}
	if u.Scheme != Scheme {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
	if u.Opaque == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "missing recipient"}
	}

	p := &Payment{
		Recipient: u.Opaque,
		Token:     u.Query().Get("token"),
		Note:      u.Query().Get("note"),
	}

	if rawAmount := u.Query().Get("amount"); rawAmount != "" {
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil || amount.IsNegative() {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid amount in scan payload"}
		}
		p.Amount = &amount
	}

	return p, nil
}
