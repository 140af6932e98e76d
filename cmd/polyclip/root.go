package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger *slog.Logger

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "polyclip",
	Short: "run polygon boolean operations from a scenario file",
	Long: `polyclip is the command-line driver for the polyclip boolean
clipping engine:
	- read subject/clip paths and a boolean op from a YAML scenario file,
	- run the operation through the Vatti sweep engine,
	- print the resulting paths, or validate a scenario without running it.`,
}

// Execute adds all child commands to rootCmd and runs it. Called once
// by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
}
