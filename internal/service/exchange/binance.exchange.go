package exchange

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/krobus00/futures-order-cli/internal/config"
	"github.com/krobus00/futures-order-cli/internal/constant"
	"github.com/krobus00/futures-order-cli/internal/entity"
	"github.com/krobus00/futures-order-cli/internal/util"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	binanceLeverageEndpoint = "/fapi/v1/leverage"
	binanceOrderEndpoint    = "/fapi/v1/order"
)

type BinanceFuturesExchange struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	recvWindow int64
	httpClient *http.Client
}

func InitBinanceFuturesExchange(exchangeConfig config.ExchangeConfig, httpClient *http.Client) *BinanceFuturesExchange {
	baseURL := strings.TrimSpace(exchangeConfig.BaseURL)
	if baseURL == "" {
		baseURL = constant.DefaultBaseURL
	}

	recvWindow := exchangeConfig.RecvWindow
	if recvWindow <= 0 || recvWindow > 60000 {
		recvWindow = constant.DefaultRecvWindow
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	newExchange := &BinanceFuturesExchange{
		apiKey:     strings.TrimSpace(exchangeConfig.APIKey),
		apiSecret:  strings.TrimSpace(exchangeConfig.APISecret),
		baseURL:    strings.TrimRight(baseURL, "/"),
		recvWindow: recvWindow,
		httpClient: httpClient,
	}

	RegisterExchange(entity.ExchangeBinanceFutures, newExchange)

	return newExchange
}

func (e *BinanceFuturesExchange) SetLeverage(ctx context.Context, symbol string, leverage int) (*entity.LeverageResult, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pairs := []string{
		"symbol=" + symbol,
		"leverage=" + strconv.Itoa(leverage),
	}

	body, err := e.signedRequest(ctx, http.MethodPost, binanceLeverageEndpoint, pairs)
	if err != nil {
		return nil, err
	}

	var leverageResp entity.BinanceLeverageResponse
	if err := json.Unmarshal(body, &leverageResp); err != nil {
		return nil, newParseError(http.StatusOK, err)
	}

	return &entity.LeverageResult{
		Symbol:      leverageResp.Symbol,
		Leverage:    leverageResp.Leverage,
		MaxNotional: leverageResp.MaxNotionalValue,
	}, nil
}

func (e *BinanceFuturesExchange) PlaceOrder(ctx context.Context, order entity.OrderRequest) (*entity.OrderResult, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pairs := []string{
		"symbol=" + order.Symbol,
		"side=" + string(order.Side),
		"type=" + string(order.Type),
		"quantity=" + order.Quantity.String(),
	}

	// Price and timeInForce are LIMIT-only parameters; a MARKET order payload
	// must carry neither.
	if order.Type == entity.OrderTypeLimit && order.Price != nil {
		pairs = append(pairs,
			"price="+order.Price.String(),
			"timeInForce="+string(entity.TimeInForceGTC),
		)
	}

	if order.ReduceOnly {
		pairs = append(pairs, "reduceOnly=true")
	}

	if order.ClientOrderID != nil && strings.TrimSpace(*order.ClientOrderID) != "" {
		pairs = append(pairs, "newClientOrderId="+url.QueryEscape(strings.TrimSpace(*order.ClientOrderID)))
	}

	body, err := e.signedRequest(ctx, http.MethodPost, binanceOrderEndpoint, pairs)
	if err != nil {
		return nil, err
	}

	result, err := mapOrderResponse(body)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"symbol":    result.Symbol,
		"side":      result.Side,
		"type":      result.Type,
		"order_id":  result.OrderID,
		"status":    result.Status,
		"quantity":  result.OrigQuantity.String(),
		"executed":  result.ExecutedQty.String(),
		"avg_price": result.AvgPrice.String(),
	}).Info("order placed")

	return result, nil
}

func (e *BinanceFuturesExchange) GetOrder(ctx context.Context, lookup entity.OrderLookup) (*entity.OrderResult, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pairs, err := orderLookupPairs(lookup)
	if err != nil {
		return nil, err
	}

	body, err := e.signedRequest(ctx, http.MethodGet, binanceOrderEndpoint, pairs)
	if err != nil {
		return nil, err
	}

	return mapOrderResponse(body)
}

func (e *BinanceFuturesExchange) CancelOrder(ctx context.Context, lookup entity.OrderLookup) (*entity.OrderResult, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pairs, err := orderLookupPairs(lookup)
	if err != nil {
		return nil, err
	}

	body, err := e.signedRequest(ctx, http.MethodDelete, binanceOrderEndpoint, pairs)
	if err != nil {
		return nil, err
	}

	result, err := mapOrderResponse(body)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"symbol":   result.Symbol,
		"order_id": result.OrderID,
		"status":   result.Status,
	}).Info("order cancelled")

	return result, nil
}

// signedRequest performs one authenticated call: signs the ordered query
// pairs, attaches the API key header, and maps the failure modes. A single
// attempt, no retry.
func (e *BinanceFuturesExchange) signedRequest(ctx context.Context, method, endpoint string, pairs []string) ([]byte, error) {
	if e.apiKey == "" || e.apiSecret == "" {
		return nil, entity.NewConfigError("BINANCE_API_KEY", "binance credentials are missing")
	}

	timestamp := time.Now().UnixMilli()
	payload, signature := buildSignedPayload(e.apiSecret, pairs, timestamp, e.recvWindow)
	signedQuery := payload + "&signature=" + signature

	logrus.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": endpoint,
		"params":   util.RedactSignature(signedQuery),
	}).Info("sending signed request")

	req, err := http.NewRequestWithContext(ctx, method, e.baseURL+endpoint+"?"+signedQuery, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-MBX-APIKEY", e.apiKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		netErr := &entity.NetworkError{Op: method + " " + endpoint, Err: err}
		logrus.Error(netErr)
		return nil, netErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		netErr := &entity.NetworkError{Op: method + " " + endpoint, Err: err}
		logrus.Error(netErr)
		return nil, netErr
	}

	logrus.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": endpoint,
		"status":   resp.StatusCode,
		"body":     string(body),
	}).Info("exchange response")

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr entity.BinanceErrorResponse
		if err := json.Unmarshal(body, &apiErr); err != nil {
			return nil, newParseError(resp.StatusCode, fmt.Errorf("error body: %w", err))
		}

		exchangeErr := &entity.ExchangeError{
			Status:  resp.StatusCode,
			Code:    apiErr.Code,
			Message: apiErr.Msg,
		}
		logrus.Error(exchangeErr)

		return nil, exchangeErr
	}

	return body, nil
}

func buildSignedPayload(secret string, pairs []string, timestamp, recvWindow int64) (string, string) {
	signed := append(append([]string{}, pairs...),
		"recvWindow="+strconv.FormatInt(recvWindow, 10),
		"timestamp="+strconv.FormatInt(timestamp, 10),
	)

	payload := strings.Join(signed, "&")

	return payload, hmacSHA256Hex(secret, payload)
}

func hmacSHA256Hex(secret, payload string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return fmt.Sprintf("%x", h.Sum(nil))
}

func orderLookupPairs(lookup entity.OrderLookup) ([]string, error) {
	symbol := strings.TrimSpace(lookup.Symbol)
	if symbol == "" {
		return nil, entity.NewValidationError("symbol", "must not be empty")
	}

	pairs := []string{"symbol=" + symbol}

	switch {
	case lookup.OrderID > 0:
		pairs = append(pairs, "orderId="+strconv.FormatInt(lookup.OrderID, 10))
	case strings.TrimSpace(lookup.ClientOrderID) != "":
		pairs = append(pairs, "origClientOrderId="+url.QueryEscape(strings.TrimSpace(lookup.ClientOrderID)))
	default:
		return nil, entity.NewValidationError("order-id", "either order id or client order id is required")
	}

	return pairs, nil
}

func mapOrderResponse(body []byte) (*entity.OrderResult, error) {
	var orderResp entity.BinanceOrderResponse
	if err := json.Unmarshal(body, &orderResp); err != nil {
		return nil, newParseError(http.StatusOK, err)
	}

	if orderResp.OrderID == 0 {
		return nil, newParseError(http.StatusOK, fmt.Errorf("missing orderId in response: %s", string(body)))
	}

	price, err := binanceDecimalOrZero(orderResp.Price)
	if err != nil {
		return nil, newParseError(http.StatusOK, fmt.Errorf("invalid price: %w", err))
	}

	origQuantity, err := binanceDecimalOrZero(orderResp.OrigQty)
	if err != nil {
		return nil, newParseError(http.StatusOK, fmt.Errorf("invalid origQty: %w", err))
	}

	executedQty, err := binanceDecimalOrZero(orderResp.ExecutedQty)
	if err != nil {
		return nil, newParseError(http.StatusOK, fmt.Errorf("invalid executedQty: %w", err))
	}

	avgPrice, err := binanceDecimalOrZero(orderResp.AvgPrice)
	if err != nil {
		return nil, newParseError(http.StatusOK, fmt.Errorf("invalid avgPrice: %w", err))
	}

	return &entity.OrderResult{
		OrderID:       orderResp.OrderID,
		ClientOrderID: orderResp.ClientOrderID,
		Symbol:        orderResp.Symbol,
		Side:          entity.OrderSide(orderResp.Side),
		Type:          entity.OrderType(orderResp.Type),
		Status:        orderResp.Status,
		Price:         price,
		OrigQuantity:  origQuantity,
		ExecutedQty:   executedQty,
		AvgPrice:      avgPrice,
		UpdateTime:    time.UnixMilli(orderResp.UpdateTime).UTC(),
		Raw:           body,
	}, nil
}

func binanceDecimalOrZero(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(trimmed)
}

func newParseError(status int, err error) *entity.ParseError {
	return &entity.ParseError{
		ExchangeError: entity.ExchangeError{
			Status:  status,
			Message: "unparseable response body",
		},
		Err: err,
	}
}
