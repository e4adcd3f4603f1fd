package entity

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

type OrderType string
type OrderSide string
type TimeInForce string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"

	OrderTypeLimit  OrderType = "LIMIT"
	OrderTypeMarket OrderType = "MARKET"

	TimeInForceGTC TimeInForce = "GTC"
)

// OrderInput carries the raw CLI values before validation. Optional flags
// stay nullable so an absent --price can be told apart from --price "".
type OrderInput struct {
	Symbol        string
	Side          string
	Type          string
	Quantity      string
	Price         null.String
	ClientOrderID null.String
	ReduceOnly    bool
	DryRun        bool
}

// OrderRequest is a validated order. Price is nil for MARKET orders.
type OrderRequest struct {
	Symbol        string
	Side          OrderSide
	Type          OrderType
	Quantity      decimal.Decimal
	Price         *decimal.Decimal
	ClientOrderID *string
	ReduceOnly    bool
	DryRun        bool
}

// OrderResult is the parsed order confirmation returned by the exchange.
type OrderResult struct {
	OrderID       int64
	ClientOrderID string
	Symbol        string
	Side          OrderSide
	Type          OrderType
	Status        string
	Price         decimal.Decimal
	OrigQuantity  decimal.Decimal
	ExecutedQty   decimal.Decimal
	AvgPrice      decimal.Decimal
	UpdateTime    time.Time
	Raw           json.RawMessage
}

type LeverageResult struct {
	Symbol      string
	Leverage    int
	MaxNotional string
}
