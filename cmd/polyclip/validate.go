package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd parses a scenario file and reports errors without
// running the boolean operation.
var validateCmd = &cobra.Command{
	Use:   "validate SCENARIO",
	Short: "check a scenario file without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadScenario(args[0])
		if err != nil {
			return err
		}
		if _, err := s.clipType(); err != nil {
			return err
		}
		if _, err := s.fillRule(); err != nil {
			return err
		}
		if len(s.Subjects) == 0 {
			return fmt.Errorf("scenario has no subject paths")
		}
		fmt.Printf("ok: %d subject path(s), %d clip path(s), clipType=%s, fillRule=%s\n",
			len(s.Subjects), len(s.Clips), s.ClipType, s.FillRule)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
