/*
Copyright © 2026 Michael Putera Wardana <michaelputeraw@gmail.com>
*/
package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/krobus00/futures-order-cli/internal/config"
	"github.com/krobus00/futures-order-cli/internal/constant"
	"github.com/krobus00/futures-order-cli/internal/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "futures-order-cli",
	Short: "Place and manage orders on the Binance USD-M futures testnet",
	Long: `futures-order-cli places MARKET and LIMIT orders against the Binance
USD-M futures testnet REST API. Requests are signed with HMAC-SHA256 using
credentials read from the BINANCE_API_KEY and BINANCE_API_SECRET environment
variables, and every API call is mirrored into an append-only log file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		logrus.SetReportCaller(config.Env.Log.ShowCaller)

		if config.Env.Env == constant.ProductionEnvironment {
			logrus.SetFormatter(&logrus.JSONFormatter{})
		}

		logLevel, err := logrus.ParseLevel(config.Env.Log.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(logLevel)

		setupLogSink(config.Env.Log.FilePath)

		return nil
	},
}

// setupLogSink mirrors every log line into an append-only file. Failing to
// open the sink is fatal: signed API activity must leave an audit trail.
func setupLogSink(path string) {
	if path == "" {
		return
	}

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	util.ContinueOrFatal(err)

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	util.ContinueOrFatal(err)

	logrus.SetOutput(io.MultiWriter(os.Stderr, logFile))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: ./config.yml)")
}
