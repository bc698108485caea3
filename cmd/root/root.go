// Package root contains the root command for the application
package root

import (
	"github.com/djok/ubb-statement-extractor/internal/config"
	"github.com/djok/ubb-statement-extractor/internal/export"
	"github.com/djok/ubb-statement-extractor/internal/fileutils"
	"github.com/djok/ubb-statement-extractor/internal/logging"
	"github.com/djok/ubb-statement-extractor/internal/ubbparser"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ubb-extract",
		Short: "A CLI tool to convert UBB bank statement text into structured JSON.",
		Long: `ubb-extract converts the per-page plain text of UBB (ОББ) bank statements
into structured JSON: account metadata, balances, turnover totals and the
individual transactions with classified type and extracted counterparty.
It can also validate that the statement's balances reconcile.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ubb-extract!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Propagate the configured logger to all engine packages
			adapter := logging.NewLogrusAdapterFromLogger(Log)
			logging.SetLogger(adapter)
			ubbparser.SetLogger(adapter)
			fileutils.SetLogger(adapter)
			export.SetLogger(adapter)
		},
	}

	// SharedFlags holds common flag values accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and its persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement text (file or directory of page files)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate balance reconciliation after parsing")
}
