package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stratum"
	"github.com/aretw0/stratum/pkg/core"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stratum",
	Short: "An append-only version vault for files",
	Long: `Stratum keeps every version of your files as an immutable layer.
Each change publishes content under a sortable token combining a timestamp
with a semantic version; deletions and restorations are events, never erasures.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// openVault locates the enclosing vault and wires a service on it.
func openVault() (*core.Service, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := stratum.FindVaultRoot(wd)
	if err != nil {
		return nil, fmt.Errorf("not a stratum vault: %w", err)
	}

	return stratum.New(root,
		stratum.WithMustExist(true),
		stratum.WithLogger(slog.Default()),
	)
}
