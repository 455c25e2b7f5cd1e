package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var pathsMax int

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Enumerate learning paths from the empty state to full mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, _, err := loadCore()
		if err != nil {
			return err
		}
		for i, p := range core.Space.LearningPaths(pathsMax) {
			fmt.Printf("%d: %s\n", i+1, strings.Join(p.Items, " -> "))
		}
		return nil
	},
}

func init() {
	pathsCmd.Flags().IntVar(&pathsMax, "max", 50, "Maximum number of paths to enumerate (0 = unbounded)")
}
