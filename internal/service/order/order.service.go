package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/krobus00/futures-order-cli/internal/constant"
	"github.com/krobus00/futures-order-cli/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type OrderService struct {
	exchange entity.Exchange
	leverage int
}

func NewOrderService(exchange entity.Exchange, leverage int) *OrderService {
	if leverage <= 0 {
		leverage = constant.DefaultLeverage
	}

	return &OrderService{
		exchange: exchange,
		leverage: leverage,
	}
}

// Execute initializes leverage for the symbol, then places the order. Errors
// from order placement propagate unchanged to the caller.
func (s *OrderService) Execute(ctx context.Context, order entity.OrderRequest) (*entity.OrderResult, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if order.DryRun {
		return buildPaperOrderResult(order), nil
	}

	if err := s.ensureLeverage(ctx, order.Symbol); err != nil {
		return nil, err
	}

	return s.exchange.PlaceOrder(ctx, order)
}

// ensureLeverage sets the configured leverage for the symbol before the first
// order. An exchange rejection is expected when leverage is already set from
// a prior run and does not block order placement. A transport failure aborts:
// the order call cannot succeed over a dead connection either.
func (s *OrderService) ensureLeverage(ctx context.Context, symbol string) error {
	result, err := s.exchange.SetLeverage(ctx, symbol, s.leverage)
	if err != nil {
		var exchangeErr *entity.ExchangeError
		if errors.As(err, &exchangeErr) {
			logrus.WithFields(logrus.Fields{
				"symbol": symbol,
				"code":   exchangeErr.Code,
			}).Warnf("leverage init rejected, continuing: %s", exchangeErr.Message)
			return nil
		}

		return err
	}

	logrus.WithFields(logrus.Fields{
		"symbol":   result.Symbol,
		"leverage": result.Leverage,
	}).Info("leverage initialized")

	return nil
}

func (s *OrderService) Status(ctx context.Context, lookup entity.OrderLookup) (*entity.OrderResult, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return s.exchange.GetOrder(ctx, lookup)
}

func (s *OrderService) Cancel(ctx context.Context, lookup entity.OrderLookup) (*entity.OrderResult, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return s.exchange.CancelOrder(ctx, lookup)
}

// buildPaperOrderResult acknowledges the order locally without touching the
// exchange. MARKET paper fills report a zero average price since no market
// data is consulted.
func buildPaperOrderResult(order entity.OrderRequest) *entity.OrderResult {
	clientOrderID := uuid.NewString()
	if order.ClientOrderID != nil && *order.ClientOrderID != "" {
		clientOrderID = *order.ClientOrderID
	}

	price := decimal.Zero
	if order.Price != nil {
		price = *order.Price
	}

	now := time.Now().UTC()

	result := &entity.OrderResult{
		OrderID:       now.UnixMilli(),
		ClientOrderID: fmt.Sprintf("paper-%s", clientOrderID),
		Symbol:        order.Symbol,
		Side:          order.Side,
		Type:          order.Type,
		Status:        "FILLED",
		Price:         price,
		OrigQuantity:  order.Quantity,
		ExecutedQty:   order.Quantity,
		AvgPrice:      price,
		UpdateTime:    now,
	}

	logrus.WithFields(logrus.Fields{
		"symbol":   result.Symbol,
		"side":     result.Side,
		"type":     result.Type,
		"quantity": result.OrigQuantity.String(),
	}).Info("dry run, order not sent to exchange")

	return result
}
