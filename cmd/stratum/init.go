package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stratum"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a stratum vault",
	Long:  `Initialize a new Stratum vault in the current directory, creating the hidden system directories.`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		// stratum init -> WithAutoInit(true)
		_, err = stratum.Init(cwd,
			stratum.WithAutoInit(true),
			stratum.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		fmt.Println("Initialized empty Stratum vault in", cwd)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
