package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault for external changes",
	Long:  `Watch streams filesystem events from the vault until interrupted. Events made through this process are not echoed.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := service.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Println("Watching for changes. Press Ctrl+C to stop.")
		for event := range events {
			fmt.Printf("%s %s %s\n", event.Time.Format(time.RFC3339), event.Type, event.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "**/*", "Glob pattern to filter events")
}
