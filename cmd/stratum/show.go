package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the latest content of an artifact",
	Long:  `Show prints the content of the artifact's most recent snapshot. Deleted artifacts refuse to be shown until restored.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			fatal("Invalid artifact id", err)
		}

		service, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		content, err := service.ReadArtifact(context.Background(), id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading artifact: %v\n", err)
			os.Exit(1)
		}

		if showJSON {
			art, err := service.GetArtifact(id)
			if err != nil {
				fatal("Failed to load artifact", err)
			}
			latest, _ := art.Latest()
			path, _ := art.Path()

			out := map[string]any{
				"id":      art.ID,
				"path":    path,
				"type":    art.Type,
				"version": latest.Meta.Version.String(),
				"content": string(content),
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		os.Stdout.Write(content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
