// Package cmd provides CLI commands for kmm2journal.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	mappingFile string
	debug       bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "kmm2journal",
	Short: "Convert KMyMoney XML exports to plain-text accounting",
	Long: `kmm2journal converts a KMyMoney XML data export into a plain-text
accounting journal, in either hledger or beancount dialect.

It supports:
- Reconstructing the full chart-of-accounts hierarchy
- Per-posting currency resolution with @@ conversion annotations
- Account open/close directives and price history (beancount)
- Optional currency-symbol substitution

Example:
  kmm2journal convert finances.kmy.xml
  kmm2journal convert --beancount -o finances.beancount finances.kmy.xml
  kmm2journal accounts finances.kmy.xml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&mappingFile, "mapping", "", "YAML file overriding currency symbols and account renames")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(accountsCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
