package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var deleteNote string

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Mark an artifact as deleted",
	Long: `Delete appends a deletion snapshot to the artifact's history.
Content and history stay on disk; the artifact only stops accepting edits until restored.`,
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

		snap, err := service.DeleteArtifact(context.Background(), id, deleteNote)
		if err != nil {
			fatal("Failed to delete artifact", err)
		}

		fmt.Printf("Artifact deleted: %s (now at %s)\n", id, snap.Meta.Version)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVarP(&deleteNote, "message", "m", "", "Change note (audit narrative)")
}
