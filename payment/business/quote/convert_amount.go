package quote

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fundmate/fundmate/payment/errs"
	"github.com/fundmate/fundmate/payment/model"
)

// ConvertAmount computes a quote from the current price snapshot. Prices are
// read once; a price tick after the read does not retroactively change the
// returned quote.
func (b *business) ConvertAmount(ctx context.Context, amount, source, destination string) (*model.Quote, error) {
	sourcePrice, ok := b.feed.PriceOf(source)
	if !ok {
		return nil, &errs.Error{Code: errs.NotFound, Message: "token not supported: " + source}
	}
	destinationPrice, ok := b.feed.PriceOf(destination)
	if !ok {
		return nil, &errs.Error{Code: errs.NotFound, Message: "token not supported: " + destination}
	}

	// An amount that does not parse as a non-negative decimal is the
	// "awaiting valid input" state, not an error.
	sourceAmount, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || sourceAmount.IsNegative() {
		return nil, nil
	}

	return &model.Quote{
		SourceAmount:      sourceAmount,
		SourceToken:       source,
		DestinationAmount: model.Convert(sourceAmount, sourcePrice, destinationPrice),
		DestinationToken:  destination,
		ExchangeRate:      sourcePrice.Div(destinationPrice),
	}, nil
}
