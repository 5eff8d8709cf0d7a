package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aretw0/stratum/pkg/core"
)

var (
	listJSON    bool
	listDeleted bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all artifacts in the vault",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		artifacts := service.ListArtifacts()
		sort.Slice(artifacts, func(i, j int) bool {
			return artifacts[i].ID.String() < artifacts[j].ID.String()
		})

		// Filter
		var filtered []*core.Artifact
		for _, a := range artifacts {
			if a.IsDeleted() && !listDeleted {
				continue
			}
			filtered = append(filtered, a)
		}

		if listJSON {
			type listEntry struct {
				ID      string `json:"id"`
				Path    string `json:"path"`
				Type    string `json:"type"`
				Version string `json:"version"`
				Deleted bool   `json:"deleted"`
			}
			out := make([]listEntry, 0, len(filtered))
			for _, a := range filtered {
				path, _ := a.Path()
				latest, _ := a.Latest()
				out = append(out, listEntry{
					ID:      a.ID.String(),
					Path:    path,
					Type:    string(a.Type),
					Version: latest.Meta.Version.String(),
					Deleted: a.IsDeleted(),
				})
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, a := range filtered {
			path, _ := a.Path()
			latest, _ := a.Latest()
			marker := ""
			if a.IsDeleted() {
				marker = " (deleted)"
			}
			fmt.Printf("%s %s %s%s\n", a.ID, latest.Meta.Version, path, marker)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listDeleted, "deleted", false, "Include deleted artifacts")
}
