package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aretw0/stratum"
	"github.com/aretw0/stratum/pkg/core"
)

var (
	editFile  string
	editText  string
	editNote  string
	editType  string
	editScope string
	editLevel string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Publish a new version of an artifact",
	Long:  `Edit appends an update snapshot with new content. The previous snapshot stays on disk untouched.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			fatal("Invalid artifact id", err)
		}

		content, err := resolveContent(editText, editFile)
		if err != nil {
			fatal("Failed to read content", err)
		}

		level, err := core.ParseLevel(editLevel)
		if err != nil {
			fatal("Invalid level", err)
		}

		service, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		// Logic to construct the change note
		var finalNote string
		if editType != "" {
			subject := editNote
			if subject == "" {
				subject = fmt.Sprintf("update %s", id)
			}
			finalNote = stratum.FormatChangeNote(editType, editScope, subject, "")
		} else if editNote != "" {
			finalNote = stratum.AppendFooter(editNote)
		} else {
			finalNote = stratum.FormatChangeNote(stratum.ChangeTypeDocs, "artifacts", fmt.Sprintf("update %s", id), "")
		}

		snap, err := service.EditArtifact(context.Background(), id, content, finalNote, level)
		if err != nil {
			fatal("Failed to edit artifact", err)
		}

		fmt.Printf("Artifact %s now at %s (%s)\n", id, snap.Meta.Version, snap.FileName)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editText, "content", "", "Inline content")
	editCmd.Flags().StringVar(&editFile, "file", "", "Read content from a file")
	editCmd.Flags().StringVarP(&editNote, "message", "m", "", "Change note (audit narrative)")
	editCmd.Flags().StringVarP(&editType, "type", "t", "", "Change type (feat, fix, etc)")
	editCmd.Flags().StringVarP(&editScope, "scope", "s", "", "Change scope")
	editCmd.Flags().StringVarP(&editLevel, "level", "l", "patch", "Version level to bump (major, minor, patch)")
}
