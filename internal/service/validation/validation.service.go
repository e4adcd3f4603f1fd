package validation

import (
	"regexp"
	"strings"

	"github.com/krobus00/futures-order-cli/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	symbolPattern = regexp.MustCompile(`^[A-Z0-9]{1,20}$`)
	// character set the exchange accepts for a client-supplied order id
	clientOrderIDPattern = regexp.MustCompile(`^[\.A-Z\:/a-z0-9_-]{1,36}$`)
)

// ValidateOrder checks the raw CLI input and returns a well-typed order
// request. No network or filesystem side effects.
func ValidateOrder(input entity.OrderInput) (entity.OrderRequest, error) {
	symbol := strings.ToUpper(strings.TrimSpace(input.Symbol))
	if symbol == "" {
		return entity.OrderRequest{}, entity.NewValidationError("symbol", "must not be empty")
	}
	if !symbolPattern.MatchString(symbol) {
		return entity.OrderRequest{}, entity.NewValidationError("symbol", "must be uppercase alphanumeric, e.g. BTCUSDT")
	}

	side := entity.OrderSide(strings.ToUpper(strings.TrimSpace(input.Side)))
	switch side {
	case entity.OrderSideBuy, entity.OrderSideSell:
	default:
		return entity.OrderRequest{}, entity.NewValidationError("side", "must be BUY or SELL")
	}

	orderType := entity.OrderType(strings.ToUpper(strings.TrimSpace(input.Type)))
	switch orderType {
	case entity.OrderTypeMarket, entity.OrderTypeLimit:
	default:
		return entity.OrderRequest{}, entity.NewValidationError("type", "must be MARKET or LIMIT")
	}

	quantity, err := decimal.NewFromString(strings.TrimSpace(input.Quantity))
	if err != nil {
		return entity.OrderRequest{}, entity.NewValidationError("quantity", "must be a number")
	}
	if !quantity.GreaterThan(decimal.Zero) {
		return entity.OrderRequest{}, entity.NewValidationError("quantity", "must be greater than 0")
	}

	price, err := validatePrice(orderType, input.Price.Ptr())
	if err != nil {
		return entity.OrderRequest{}, err
	}

	var clientOrderID *string
	if input.ClientOrderID.Valid {
		trimmed := strings.TrimSpace(input.ClientOrderID.String)
		if trimmed != "" {
			if !clientOrderIDPattern.MatchString(trimmed) {
				return entity.OrderRequest{}, entity.NewValidationError("client-order-id", "must be 1-36 characters of [a-zA-Z0-9._:/-]")
			}
			clientOrderID = &trimmed
		}
	}

	return entity.OrderRequest{
		Symbol:        symbol,
		Side:          side,
		Type:          orderType,
		Quantity:      quantity,
		Price:         price,
		ClientOrderID: clientOrderID,
		ReduceOnly:    input.ReduceOnly,
		DryRun:        input.DryRun,
	}, nil
}

func validatePrice(orderType entity.OrderType, rawPrice *string) (*decimal.Decimal, error) {
	if orderType == entity.OrderTypeMarket {
		if rawPrice != nil && strings.TrimSpace(*rawPrice) != "" {
			logrus.Warnf("price %s ignored for MARKET order", strings.TrimSpace(*rawPrice))
		}
		return nil, nil
	}

	if rawPrice == nil || strings.TrimSpace(*rawPrice) == "" {
		return nil, entity.NewValidationError("price", "required for LIMIT orders")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(*rawPrice))
	if err != nil {
		return nil, entity.NewValidationError("price", "must be a number")
	}
	if !price.GreaterThan(decimal.Zero) {
		return nil, entity.NewValidationError("price", "must be greater than 0")
	}

	return &price, nil
}

// ValidateOrderLookup normalizes the symbol and requires one of order id or
// client order id for status/cancel operations.
func ValidateOrderLookup(symbol string, orderID int64, clientOrderID string) (entity.OrderLookup, error) {
	normalized := strings.ToUpper(strings.TrimSpace(symbol))
	if normalized == "" {
		return entity.OrderLookup{}, entity.NewValidationError("symbol", "must not be empty")
	}
	if !symbolPattern.MatchString(normalized) {
		return entity.OrderLookup{}, entity.NewValidationError("symbol", "must be uppercase alphanumeric, e.g. BTCUSDT")
	}

	if orderID <= 0 && strings.TrimSpace(clientOrderID) == "" {
		return entity.OrderLookup{}, entity.NewValidationError("order-id", "either --order-id or --client-order-id is required")
	}

	return entity.OrderLookup{
		Symbol:        normalized,
		OrderID:       orderID,
		ClientOrderID: strings.TrimSpace(clientOrderID),
	}, nil
}
