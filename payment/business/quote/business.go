// Package quote owns conversion quoting between tokens.
package quote

import (
	"context"

	"github.com/fundmate/fundmate/payment/model"
	"github.com/fundmate/fundmate/payment/pricefeed"
)

type Business interface {
	// ConvertAmount quotes amount of source in destination units. A nil quote
	// with a nil error means the input is not yet a valid amount.
	ConvertAmount(ctx context.Context, amount, source, destination string) (*model.Quote, error)
}

type business struct {
	feed pricefeed.Feed
}

// NewQuoteBusiness creates the quote business unit over a price feed.
func NewQuoteBusiness(feed pricefeed.Feed) Business {
	return &business{feed: feed}
}
