/*
Copyright © 2026 Michael Putera Wardana <michaelputeraw@gmail.com>
*/
package cmd

import (
	"github.com/krobus00/futures-order-cli/internal/bootstrap"
	"github.com/spf13/cobra"
)

var (
	orderStatusSymbol        string
	orderStatusOrderID       int64
	orderStatusClientOrderID string
)

// orderStatusCmd represents the order-status command
var orderStatusCmd = &cobra.Command{
	Use:   "order-status",
	Short: "Query a previously placed order",
	Long: `Query a previously placed order by exchange order id or client order id.

Example:
  futures-order-cli order-status --symbol BTCUSDT --order-id 123456789`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return bootstrap.RunOrderStatus(orderStatusSymbol, orderStatusOrderID, orderStatusClientOrderID)
	},
}

func init() {
	rootCmd.AddCommand(orderStatusCmd)

	orderStatusCmd.Flags().StringVar(&orderStatusSymbol, "symbol", "", "trading pair symbol, e.g. BTCUSDT")
	orderStatusCmd.Flags().Int64Var(&orderStatusOrderID, "order-id", 0, "exchange order id")
	orderStatusCmd.Flags().StringVar(&orderStatusClientOrderID, "client-order-id", "", "client order id")

	_ = orderStatusCmd.MarkFlagRequired("symbol")
}
