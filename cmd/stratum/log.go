package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var logJSON bool

var logCmd = &cobra.Command{
	Use:   "log [id]",
	Short: "Show the history of an artifact",
	Long:  `Log prints every snapshot of an artifact in chronological order, oldest first.`,
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

		art, err := service.GetArtifact(id)
		if err != nil {
			fatal("Failed to load artifact", err)
		}

		entries := art.History().All()

		if logJSON {
			type logEntry struct {
				Token   string    `json:"token"`
				Kind    string    `json:"kind"`
				Version string    `json:"version"`
				Time    time.Time `json:"time"`
				Note    string    `json:"note"`
			}
			out := make([]logEntry, 0, len(entries))
			for _, e := range entries {
				out = append(out, logEntry{
					Token:   e.FileName.String(),
					Kind:    string(e.Meta.Kind),
					Version: e.Meta.Version.String(),
					Time:    e.Meta.Time,
					Note:    e.Meta.Note,
				})
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, e := range entries {
			note := strings.SplitN(e.Meta.Note, "\n", 2)[0]
			fmt.Printf("%-12s %-8s %s  %s\n", e.Meta.Kind, e.Meta.Version, e.Meta.Time.Format(time.RFC3339), note)
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().BoolVar(&logJSON, "json", false, "Output in JSON format")
}
