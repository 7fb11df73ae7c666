package quote

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/fundmate/fundmate/payment/errs"
	"github.com/fundmate/fundmate/payment/mocks/price_feed"
	"github.com/fundmate/fundmate/payment/pricefeed"
)

func testFeed() pricefeed.Static {
	return pricefeed.Static{
		"ETH":  decimal.NewFromFloat(2850.0),
		"BTC":  decimal.NewFromFloat(93000.0),
		"USDC": decimal.NewFromFloat(1.0),
		"APT":  decimal.NewFromFloat(8.50),
	}
}

func TestConvertAmount(t *testing.T) {
	business := NewQuoteBusiness(testFeed())

	testCases := []struct {
		name           string
		amount         string
		source         string
		destination    string
		expectedAmount string
		expectEmpty    bool
		expectedCode   errs.ErrCode
	}{
		{
			name:           "eth_to_usdc",
			amount:         "20.00",
			source:         "ETH",
			destination:    "USDC",
			expectedAmount: "57000.00",
		},
		{
			name:           "usdc_to_eth",
			amount:         "57000.00",
			source:         "USDC",
			destination:    "ETH",
			expectedAmount: "20.00",
		},
		{
			name:           "btc_to_apt",
			amount:         "0.5",
			source:         "BTC",
			destination:    "APT",
			expectedAmount: "5470.59",
		},
		{
			name:           "zero_amount_quotes_to_zero",
			amount:         "0",
			source:         "ETH",
			destination:    "USDC",
			expectedAmount: "0.00",
		},
		{
			name:        "empty_amount_awaits_input",
			amount:      "",
			source:      "ETH",
			destination: "USDC",
			expectEmpty: true,
		},
		{
			name:        "garbage_amount_awaits_input",
			amount:      "12.3.4",
			source:      "ETH",
			destination: "USDC",
			expectEmpty: true,
		},
		{
			name:        "negative_amount_awaits_input",
			amount:      "-5",
			source:      "ETH",
			destination: "USDC",
			expectEmpty: true,
		},
		{
			name:         "unknown_source_token",
			amount:       "10",
			source:       "DOGE",
			destination:  "USDC",
			expectedCode: errs.NotFound,
		},
		{
			name:         "unknown_destination_token",
			amount:       "10",
			source:       "ETH",
			destination:  "DOGE",
			expectedCode: errs.NotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := business.ConvertAmount(context.Background(), tc.amount, tc.source, tc.destination)

			if tc.expectedCode != errs.OK {
				assert.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			if tc.expectEmpty {
				assert.Nil(t, result)
				return
			}

			assert.NotNil(t, result)
			assert.Equal(t, tc.expectedAmount, result.DestinationAmount.StringFixed(2))
			assert.Equal(t, tc.source, result.SourceToken)
			assert.Equal(t, tc.destination, result.DestinationToken)
		})
	}
}

// A quote converted back through the inverse pair lands within one cent of the
// original amount.
func TestConvertAmountInverseConsistency(t *testing.T) {
	business := NewQuoteBusiness(testFeed())
	ctx := context.Background()

	amounts := []string{"20.00", "1.37", "999.99", "0.01"}
	for _, amount := range amounts {
		forward, err := business.ConvertAmount(ctx, amount, "ETH", "USDC")
		assert.NoError(t, err)
		assert.NotNil(t, forward)

		back, err := business.ConvertAmount(ctx, forward.DestinationAmount.String(), "USDC", "ETH")
		assert.NoError(t, err)
		assert.NotNil(t, back)

		original, _ := decimal.NewFromString(amount)
		diff := back.DestinationAmount.Sub(original).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
			"round trip of %s drifted by %s", amount, diff)
	}
}

// An unknown source token short-circuits before the destination lookup or any
// amount parsing.
func TestConvertAmountUnknownSourceShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := price_feed.NewMockFeed(ctrl)
	feed.EXPECT().PriceOf("DOGE").Return(decimal.Decimal{}, false)

	business := NewQuoteBusiness(feed)

	result, err := business.ConvertAmount(context.Background(), "10", "DOGE", "USDC")
	assert.Nil(t, result)
	assert.Equal(t, errs.NotFound, errs.Code(err))
	assert.Contains(t, err.Error(), "DOGE")
}

func TestConvertAmountUsesCurrentSnapshot(t *testing.T) {
	feed := testFeed()
	business := NewQuoteBusiness(feed)
	ctx := context.Background()

	before, err := business.ConvertAmount(ctx, "10", "ETH", "USDC")
	assert.NoError(t, err)
	assert.Equal(t, "28500.00", before.DestinationAmount.StringFixed(2))

	// A price tick between quotes must be reflected in the next quote only.
	feed["ETH"] = decimal.NewFromFloat(3000.0)

	after, err := business.ConvertAmount(ctx, "10", "ETH", "USDC")
	assert.NoError(t, err)
	assert.Equal(t, "30000.00", after.DestinationAmount.StringFixed(2))
	assert.Equal(t, "28500.00", before.DestinationAmount.StringFixed(2))
}
