package entity

import (
	"context"
)

type ExchangeName string

const (
	ExchangeBinanceFutures ExchangeName = "binance-futures"
)

type Exchange interface {
	SetLeverage(ctx context.Context, symbol string, leverage int) (*LeverageResult, error)
	PlaceOrder(ctx context.Context, order OrderRequest) (*OrderResult, error)
	GetOrder(ctx context.Context, lookup OrderLookup) (*OrderResult, error)
	CancelOrder(ctx context.Context, lookup OrderLookup) (*OrderResult, error)
}

// OrderLookup identifies a previously placed order by exchange order id or
// client order id. At least one of the two must be set.
type OrderLookup struct {
	Symbol        string
	OrderID       int64
	ClientOrderID string
}
