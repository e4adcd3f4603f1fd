/*
Copyright © 2026 Michael Putera Wardana <michaelputeraw@gmail.com>
*/
package cmd

import (
	"github.com/guregu/null/v6"
	"github.com/krobus00/futures-order-cli/internal/bootstrap"
	"github.com/krobus00/futures-order-cli/internal/entity"
	"github.com/spf13/cobra"
)

var (
	placeOrderSymbol        string
	placeOrderSide          string
	placeOrderType          string
	placeOrderQuantity      string
	placeOrderPrice         string
	placeOrderClientOrderID string
	placeOrderReduceOnly    bool
	placeOrderDryRun        bool
)

// placeOrderCmd represents the place-order command
var placeOrderCmd = &cobra.Command{
	Use:   "place-order",
	Short: "Place a MARKET or LIMIT order on the futures testnet",
	Long: `Place a single MARKET or LIMIT order. Leverage for the symbol is
initialized first; an exchange rejection there is expected when leverage was
already set by a prior run and does not block order placement.

Examples:
  futures-order-cli place-order --symbol BTCUSDT --side BUY --type MARKET --quantity 0.003
  futures-order-cli place-order --symbol BTCUSDT --side SELL --type LIMIT --quantity 0.003 --price 60000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := entity.OrderInput{
			Symbol:        placeOrderSymbol,
			Side:          placeOrderSide,
			Type:          placeOrderType,
			Quantity:      placeOrderQuantity,
			Price:         null.NewString(placeOrderPrice, cmd.Flags().Changed("price")),
			ClientOrderID: null.NewString(placeOrderClientOrderID, cmd.Flags().Changed("client-order-id")),
			ReduceOnly:    placeOrderReduceOnly,
			DryRun:        placeOrderDryRun,
		}

		return bootstrap.RunPlaceOrder(input)
	},
}

func init() {
	rootCmd.AddCommand(placeOrderCmd)

	placeOrderCmd.Flags().StringVar(&placeOrderSymbol, "symbol", "", "trading pair symbol, e.g. BTCUSDT")
	placeOrderCmd.Flags().StringVar(&placeOrderSide, "side", "", "order side: BUY or SELL")
	placeOrderCmd.Flags().StringVar(&placeOrderType, "type", "", "order type: MARKET or LIMIT")
	placeOrderCmd.Flags().StringVar(&placeOrderQuantity, "quantity", "", "order quantity in base asset")
	placeOrderCmd.Flags().StringVar(&placeOrderPrice, "price", "", "limit price (required for LIMIT orders)")
	placeOrderCmd.Flags().StringVar(&placeOrderClientOrderID, "client-order-id", "", "client order id (generated when omitted)")
	placeOrderCmd.Flags().BoolVar(&placeOrderReduceOnly, "reduce-only", false, "only reduce an existing position")
	placeOrderCmd.Flags().BoolVar(&placeOrderDryRun, "dry-run", false, "validate and acknowledge locally without calling the exchange")

	_ = placeOrderCmd.MarkFlagRequired("symbol")
	_ = placeOrderCmd.MarkFlagRequired("side")
	_ = placeOrderCmd.MarkFlagRequired("type")
	_ = placeOrderCmd.MarkFlagRequired("quantity")
}
