package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stratum/pkg/core"
)

var (
	addFolder string
	addExt    string
	addType   string
	addLevel  string
	addFile   string
	addText   string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new artifact to the vault",
	Long:  `Add creates a new artifact and publishes its first snapshot under a versioned token.`,
	Run: func(cmd *cobra.Command, args []string) {
		content, err := resolveContent(addText, addFile)
		if err != nil {
			fatal("Failed to read content", err)
		}

		level, err := core.ParseLevel(addLevel)
		if err != nil {
			fatal("Invalid level", err)
		}

		service, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		art, err := service.CreateArtifact(context.Background(), addFolder, addExt, core.ParseFileType(addType), level, content)
		if err != nil {
			fatal("Failed to create artifact", err)
		}

		path, _ := art.Path()
		fmt.Printf("Created artifact %s at %s\n", art.ID, path)
	},
}

// resolveContent picks inline content or a source file, file winning.
func resolveContent(text, file string) ([]byte, error) {
	if file != "" {
		return os.ReadFile(file)
	}
	return []byte(text), nil
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addFolder, "folder", "artifacts", "Folder inside the vault")
	addCmd.Flags().StringVar(&addExt, "ext", "md", "File extension")
	addCmd.Flags().StringVar(&addType, "type", "other", "File type (image, video, document, markdown, ...)")
	addCmd.Flags().StringVarP(&addLevel, "level", "l", "minor", "Initial version level (major, minor, patch)")
	addCmd.Flags().StringVar(&addText, "content", "", "Inline content")
	addCmd.Flags().StringVar(&addFile, "file", "", "Read content from a file")
}
