// Package payment is the transaction engine: quoting, the payment lifecycle
// and the transactions dashboard, behind a single facade the presentation
// layer talks to.
package payment

import (
	"time"

	"github.com/fundmate/fundmate/payment/auth"
	"github.com/fundmate/fundmate/payment/business/quote"
	"github.com/fundmate/fundmate/payment/business/transaction"
	"github.com/fundmate/fundmate/payment/history"
	"github.com/fundmate/fundmate/payment/model"
	"github.com/fundmate/fundmate/payment/notify"
	"github.com/fundmate/fundmate/payment/pricefeed"
	"github.com/fundmate/fundmate/payment/settlement"
)

// Config carries the engine's tunables. The success rate and settlement
// latency are demo constants standing in for a real settlement backend.
type Config struct {
	SuccessRate       float64
	SettlementLatency time.Duration
	AuthTimeout       time.Duration
	ProcessTimeout    time.Duration
}

func DefaultConfig() Config {
	return Config{
		SuccessRate:       settlement.DefaultSuccessRate,
		SettlementLatency: settlement.DefaultLatency,
		AuthTimeout:       transaction.DefaultAuthTimeout,
		ProcessTimeout:    transaction.DefaultProcessTimeout,
	}
}

// Deps are the external capabilities supplied by the host application. Feed
// and Gate are required; Sink, Store and Driver have working defaults.
type Deps struct {
	Gate   auth.Gate
	Feed   pricefeed.Feed
	Sink   notify.Sink
	Store  history.Store
	Driver settlement.Driver
}

type Engine struct {
	quotes       quote.Business
	transactions transaction.Business
	feed         pricefeed.Feed
	catalog      []model.Token
}

// NewEngine wires the business units from cfg and deps.
func NewEngine(cfg Config, deps Deps) *Engine {
	if deps.Driver == nil {
		deps.Driver = settlement.NewSimulated(settlement.Config{
			Latency:     cfg.SettlementLatency,
			SuccessRate: cfg.SuccessRate,
		})
	}

	return &Engine{
		quotes: quote.NewQuoteBusiness(deps.Feed),
		transactions: transaction.NewTransactionBusiness(
			transaction.Deps{
				Gate:   deps.Gate,
				Driver: deps.Driver,
				Sink:   deps.Sink,
				Store:  deps.Store,
			},
			transaction.Config{
				AuthTimeout:    cfg.AuthTimeout,
				ProcessTimeout: cfg.ProcessTimeout,
			},
		),
		feed:    deps.Feed,
		catalog: model.DefaultTokens(),
	}
}

// Tokens returns the token catalog.
func (e *Engine) Tokens() []model.Token {
	catalog := make([]model.Token, len(e.catalog))
	copy(catalog, e.catalog)
	return catalog
}

// Token looks a catalog entry up by symbol.
func (e *Engine) Token(symbol string) (*model.Token, bool) {
	for _, t := range e.catalog {
		if t.Symbol == symbol {
			token := t
			return &token, true
		}
	}
	return nil, false
}

// Price returns the current feed price for symbol.
func (e *Engine) Price(symbol string) (model.Money, bool) {
	price, ok := e.feed.PriceOf(symbol)
	if !ok {
		return model.Money{}, false
	}
	return model.Money{Amount: price, Currency: "USD"}, true
}
