package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aretw0/stratum/pkg/core"
)

var (
	tagNote  string
	tagLevel string
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
	Long:  `Tags are versioned labels. Like artifacts, their values carry an append-only history.`,
}

var tagCreateCmd = &cobra.Command{
	Use:   "create [value]",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		level, err := core.ParseLevel(tagLevel)
		if err != nil {
			fatal("Invalid level", err)
		}

		service, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		tag, err := service.CreateTag(context.Background(), args[0], level)
		if err != nil {
			fatal("Failed to create tag", err)
		}

		fmt.Printf("Created tag %s (%s)\n", tag.ID, args[0])
	},
}

var tagSetCmd = &cobra.Command{
	Use:   "set [id] [value]",
	Short: "Set a new value for a tag",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			fatal("Invalid tag id", err)
		}

		level, err := core.ParseLevel(tagLevel)
		if err != nil {
			fatal("Invalid level", err)
		}

		service, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		snap, err := service.SetTag(context.Background(), id, args[1], tagNote, level)
		if err != nil {
			fatal("Failed to set tag", err)
		}

		fmt.Printf("Tag %s now %q at %s\n", id, snap.Value, snap.Meta.Version)
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		for _, tag := range service.ListTags() {
			value, err := tag.Value()
			if err != nil {
				continue
			}
			marker := ""
			if tag.IsDeleted() {
				marker = " (deleted)"
			}
			fmt.Printf("%s %s%s\n", tag.ID, value, marker)
		}
	},
}

var tagAttachCmd = &cobra.Command{
	Use:   "attach [artifact-id] [tag-id]",
	Short: "Attach a tag to an artifact",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		artifactID, err := uuid.Parse(args[0])
		if err != nil {
			fatal("Invalid artifact id", err)
		}
		tagID, err := uuid.Parse(args[1])
		if err != nil {
			fatal("Invalid tag id", err)
		}

		service, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		if err := service.TagArtifact(context.Background(), artifactID, tagID); err != nil {
			fatal("Failed to attach tag", err)
		}

		fmt.Printf("Tag %s attached to %s\n", tagID, artifactID)
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagCreateCmd, tagSetCmd, tagListCmd, tagAttachCmd)
	tagCmd.PersistentFlags().StringVarP(&tagNote, "message", "m", "", "Change note (audit narrative)")
	tagCmd.PersistentFlags().StringVarP(&tagLevel, "level", "l", "minor", "Version level to bump (major, minor, patch)")
}
