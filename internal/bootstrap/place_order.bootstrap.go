package bootstrap

import (
	"github.com/google/uuid"
	"github.com/krobus00/futures-order-cli/internal/entity"
	"github.com/krobus00/futures-order-cli/internal/service/validation"
	"github.com/sirupsen/logrus"
)

func RunPlaceOrder(input entity.OrderInput) error {
	ctx, cancel := signalContext()
	defer cancel()

	orderRequest, err := validation.ValidateOrder(input)
	if err != nil {
		logrus.Error(err)
		return err
	}

	// A generated client order id makes a retried invocation visible on the
	// exchange side instead of silently producing a second fill.
	if orderRequest.ClientOrderID == nil {
		clientOrderID := uuid.NewString()
		orderRequest.ClientOrderID = &clientOrderID
	}

	orderService, err := newOrderService()
	if err != nil {
		logrus.Error(err)
		return err
	}

	result, err := orderService.Execute(ctx, orderRequest)
	if err != nil {
		logrus.Error(err)
		return err
	}

	printOrderResult(result)

	return nil
}
