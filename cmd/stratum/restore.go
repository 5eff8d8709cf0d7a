package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var restoreNote string

var restoreCmd = &cobra.Command{
	Use:   "restore [id]",
	Short: "Restore a deleted artifact",
	Long: `Restore appends a restoration snapshot and re-publishes the last
pre-deletion content under a new token.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			fatal("Invalid artifact id", err)
		}

		service, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		snap, err := service.RestoreArtifact(context.Background(), id, restoreNote)
		if err != nil {
			fatal("Failed to restore artifact", err)
		}

		fmt.Printf("Artifact restored: %s (now at %s)\n", id, snap.Meta.Version)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().StringVarP(&restoreNote, "message", "m", "", "Change note (audit narrative)")
}
