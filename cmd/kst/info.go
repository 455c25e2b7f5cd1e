package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarise the course's domain and space",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, report, err := loadCore()
		if err != nil {
			return err
		}
		fmt.Printf("domain: %s (%d items)\n", core.Domain.Name(), core.Domain.Len())
		fmt.Printf("space: %d states, learning space: %v\n", core.Space.Len(), core.Space.IsLearningSpace())
		fmt.Printf("atoms: %d\n", len(core.Space.Atoms()))
		fmt.Printf("covering edges: %d\n", len(core.Space.CoveringEdges()))
		if !report.IsValid {
			fmt.Println("warning: space failed one or more axiom checks (see `kst validate`)")
		}
		return nil
	},
}
