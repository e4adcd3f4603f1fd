/*
Copyright © 2026 Michael Putera Wardana <michaelputeraw@gmail.com>
*/
package cmd

import (
	"github.com/krobus00/futures-order-cli/internal/bootstrap"
	"github.com/spf13/cobra"
)

var (
	cancelOrderSymbol        string
	cancelOrderOrderID       int64
	cancelOrderClientOrderID string
)

// cancelOrderCmd represents the cancel-order command
var cancelOrderCmd = &cobra.Command{
	Use:   "cancel-order",
	Short: "Cancel an open order",
	Long: `Cancel an open order by exchange order id or client order id.

Example:
  futures-order-cli cancel-order --symbol BTCUSDT --order-id 123456789`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return bootstrap.RunCancelOrder(cancelOrderSymbol, cancelOrderOrderID, cancelOrderClientOrderID)
	},
}

func init() {
	rootCmd.AddCommand(cancelOrderCmd)

	cancelOrderCmd.Flags().StringVar(&cancelOrderSymbol, "symbol", "", "trading pair symbol, e.g. BTCUSDT")
	cancelOrderCmd.Flags().Int64Var(&cancelOrderOrderID, "order-id", 0, "exchange order id")
	cancelOrderCmd.Flags().StringVar(&cancelOrderClientOrderID, "client-order-id", "", "client order id")

	_ = cancelOrderCmd.MarkFlagRequired("symbol")
}
