package bootstrap

import (
	"github.com/krobus00/futures-order-cli/internal/service/validation"
	"github.com/sirupsen/logrus"
)

func RunOrderStatus(symbol string, orderID int64, clientOrderID string) error {
	ctx, cancel := signalContext()
	defer cancel()

	lookup, err := validation.ValidateOrderLookup(symbol, orderID, clientOrderID)
	if err != nil {
		logrus.Error(err)
		return err
	}

	orderService, err := newOrderService()
	if err != nil {
		logrus.Error(err)
		return err
	}

	result, err := orderService.Status(ctx, lookup)
	if err != nil {
		logrus.Error(err)
		return err
	}

	printOrderResult(result)

	return nil
}
