package order

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/krobus00/futures-order-cli/internal/entity"
	"github.com/shopspring/decimal"
)

type fakeExchange struct {
	leverageErr   error
	placeErr      error
	placeResult   *entity.OrderResult
	leverageCalls int
	placeCalls    int
	lastOrder     entity.OrderRequest
}

func (f *fakeExchange) SetLeverage(ctx context.Context, symbol string, leverage int) (*entity.LeverageResult, error) {
	f.leverageCalls++
	if f.leverageErr != nil {
		return nil, f.leverageErr
	}
	return &entity.LeverageResult{Symbol: symbol, Leverage: leverage}, nil
}

func (f *fakeExchange) PlaceOrder(ctx context.Context, order entity.OrderRequest) (*entity.OrderResult, error) {
	f.placeCalls++
	f.lastOrder = order
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	return f.placeResult, nil
}

func (f *fakeExchange) GetOrder(ctx context.Context, lookup entity.OrderLookup) (*entity.OrderResult, error) {
	return f.placeResult, nil
}

func (f *fakeExchange) CancelOrder(ctx context.Context, lookup entity.OrderLookup) (*entity.OrderResult, error) {
	return f.placeResult, nil
}

func filledResult() *entity.OrderResult {
	return &entity.OrderResult{
		OrderID:     1,
		Symbol:      "BTCUSDT",
		Side:        entity.OrderSideBuy,
		Type:        entity.OrderTypeMarket,
		Status:      "FILLED",
		ExecutedQty: decimal.RequireFromString("0.003"),
		AvgPrice:    decimal.RequireFromString("60000"),
	}
}

func marketOrder() entity.OrderRequest {
	return entity.OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     entity.OrderSideBuy,
		Type:     entity.OrderTypeMarket,
		Quantity: decimal.RequireFromString("0.003"),
	}
}

func TestExecuteLeverageRejectionIsNonFatal(t *testing.T) {
	fake := &fakeExchange{
		leverageErr: &entity.ExchangeError{Status: http.StatusBadRequest, Code: -4028, Message: "Leverage is not valid"},
		placeResult: filledResult(),
	}

	result, err := NewOrderService(fake, 10).Execute(context.Background(), marketOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OrderID != 1 || result.Status != "FILLED" {
		t.Errorf("unexpected result: %+v", result)
	}
	if fake.placeCalls != 1 {
		t.Errorf("expected one place call, got %d", fake.placeCalls)
	}
}

func TestExecuteLeverageNetworkErrorAborts(t *testing.T) {
	fake := &fakeExchange{
		leverageErr: &entity.NetworkError{Op: "POST /fapi/v1/leverage", Err: errors.New("connection refused")},
		placeResult: filledResult(),
	}

	_, err := NewOrderService(fake, 10).Execute(context.Background(), marketOrder())
	if err == nil {
		t.Fatal("expected error")
	}

	var networkErr *entity.NetworkError
	if !errors.As(err, &networkErr) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
	if fake.placeCalls != 0 {
		t.Errorf("expected no place call after transport failure, got %d", fake.placeCalls)
	}
}

func TestExecuteExchangeErrorPropagates(t *testing.T) {
	fake := &fakeExchange{
		placeErr: &entity.ExchangeError{Status: http.StatusBadRequest, Code: -2019, Message: "Margin is insufficient."},
	}

	_, err := NewOrderService(fake, 10).Execute(context.Background(), marketOrder())
	if err == nil {
		t.Fatal("expected error")
	}

	var exchangeErr *entity.ExchangeError
	if !errors.As(err, &exchangeErr) {
		t.Fatalf("expected ExchangeError, got %T: %v", err, err)
	}
	if exchangeErr.Code != -2019 {
		t.Errorf("expected code -2019, got %d", exchangeErr.Code)
	}
}

func TestExecuteDryRunSkipsExchange(t *testing.T) {
	fake := &fakeExchange{placeResult: filledResult()}

	order := marketOrder()
	order.DryRun = true

	result, err := NewOrderService(fake, 10).Execute(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.leverageCalls != 0 || fake.placeCalls != 0 {
		t.Errorf("dry run must not call the exchange: leverage=%d place=%d", fake.leverageCalls, fake.placeCalls)
	}
	if result.Status != "FILLED" {
		t.Errorf("expected paper fill, got %s", result.Status)
	}
	if !result.ExecutedQty.Equal(order.Quantity) {
		t.Errorf("expected executedQty %s, got %s", order.Quantity.String(), result.ExecutedQty.String())
	}
}

func TestExecuteCancelledContext(t *testing.T) {
	fake := &fakeExchange{placeResult: filledResult()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOrderService(fake, 10).Execute(ctx, marketOrder())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if fake.leverageCalls != 0 {
		t.Errorf("expected no exchange calls, got %d", fake.leverageCalls)
	}
}

func TestNewOrderServiceDefaultsLeverage(t *testing.T) {
	fake := &fakeExchange{placeResult: filledResult()}

	service := NewOrderService(fake, 0)
	if _, err := service.Execute(context.Background(), marketOrder()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if service.leverage != 10 {
		t.Errorf("expected default leverage 10, got %d", service.leverage)
	}
}
