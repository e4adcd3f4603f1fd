package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/krobus00/futures-order-cli/internal/config"
	"github.com/krobus00/futures-order-cli/internal/entity"
	"github.com/krobus00/futures-order-cli/internal/infrastructure"
	"github.com/krobus00/futures-order-cli/internal/service/exchange"
	"github.com/krobus00/futures-order-cli/internal/service/order"
)

// signalContext cancels an in-flight exchange call when the process receives
// an interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// newOrderService wires config -> http client -> exchange -> order service.
// Credential validation happens here, before any network call.
func newOrderService() (*order.OrderService, error) {
	exchangeConfig := config.Env.Exchange

	if err := exchangeConfig.ValidateCredentials(); err != nil {
		return nil, err
	}

	httpClient := infrastructure.NewHTTPClient(infrastructure.HTTPClientConfig{
		Timeout: exchangeConfig.HTTPTimeout,
	})

	binanceExchange := exchange.InitBinanceFuturesExchange(exchangeConfig, httpClient)

	return order.NewOrderService(binanceExchange, exchangeConfig.Leverage), nil
}

func formatOrderResult(result *entity.OrderResult) string {
	return fmt.Sprintf("orderId=%d clientOrderId=%s symbol=%s side=%s type=%s status=%s executedQty=%s avgPrice=%s",
		result.OrderID,
		result.ClientOrderID,
		result.Symbol,
		result.Side,
		result.Type,
		result.Status,
		result.ExecutedQty.String(),
		result.AvgPrice.String(),
	)
}

func printOrderResult(result *entity.OrderResult) {
	fmt.Fprintln(os.Stdout, formatOrderResult(result))
}
