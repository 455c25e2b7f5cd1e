package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the course's knowledge/learning space axioms",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, report, err := loadCore()
		if err != nil {
			return err
		}
		fmt.Printf("domain: %s\n", core.Domain.Name())
		printReport(report)
		if !report.IsValid {
			os.Exit(1)
		}
		return nil
	},
}
