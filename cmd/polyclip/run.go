package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vatti-sweep/polyclip"
)

var runTreeFlag bool

// runCmd executes the boolean operation described by a scenario file.
var runCmd = &cobra.Command{
	Use:   "run SCENARIO",
	Short: "run the boolean operation described by a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadScenario(args[0])
		if err != nil {
			return err
		}
		ct, err := s.clipType()
		if err != nil {
			return err
		}
		fr, err := s.fillRule()
		if err != nil {
			return err
		}

		c := polyclip.NewClipper64()
		c.AddSubjects(s.toPaths(s.Subjects))
		c.AddClips(s.toPaths(s.Clips))

		logger.Info("running boolean op", "clipType", ct.String(), "fillRule", fr.String(),
			"subjects", len(s.Subjects), "clips", len(s.Clips))

		if runTreeFlag {
			tree, _, err := c.ExecuteTree(ct, fr)
			if err != nil {
				return fmt.Errorf("execute: %w", err)
			}
			printTree(&tree.PolyPath64, 0)
			return nil
		}

		result, err := c.Execute(ct, fr)
		if err != nil {
			return fmt.Errorf("execute: %w", err)
		}
		printPaths(result)
		return nil
	},
}

func printPaths(paths polyclip.Paths64) {
	for i, p := range paths {
		fmt.Printf("path %d (%d points):\n", i, len(p))
		for _, pt := range p {
			fmt.Printf("  (%d, %d)\n", pt.X, pt.Y)
		}
	}
}

func printTree(p *polyclip.PolyPath64, depth int) {
	if p == nil {
		return
	}
	if p.Polygon != nil {
		indent := ""
		for i := 0; i < depth; i++ {
			indent += "  "
		}
		kind := "outer"
		if p.IsHole() {
			kind = "hole"
		}
		fmt.Printf("%s- %s, %d points\n", indent, kind, len(p.Polygon))
	}
	for _, child := range p.Children {
		printTree(child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runTreeFlag, "tree", false, "print the result as a nested PolyTree instead of flat paths")
}
