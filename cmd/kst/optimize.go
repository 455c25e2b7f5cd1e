package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	kst "github.com/kst-dev/kst"
)

var optimizeStart string

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Compute the optimal teaching sequence under uniform learning rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, _, err := loadCore()
		if err != nil {
			return err
		}
		rates := kst.BuildLearningRate(core.Domain, 1.0)
		model, err := kst.BuildMarkovModel(core.Space, rates)
		if err != nil {
			return err
		}
		start, err := core.Domain.StateFromIDs(splitNonEmpty(optimizeStart)...)
		if err != nil {
			return err
		}
		plan := kst.OptimalTeachingSequence(model, start)
		fmt.Printf("plan: %s\n", strings.Join(plan.Items, " -> "))

		steps, err := kst.ExpectedSteps(model)
		if err != nil {
			return err
		}
		startIdx := -1
		for i, s := range model.States() {
			if s.Equal(start) {
				startIdx = i
				break
			}
		}
		if startIdx >= 0 {
			fmt.Printf("expected steps to mastery from start: %.4f\n", steps[startIdx])
		}
		return nil
	},
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeStart, "start", "", "Comma-separated item ids already mastered")
}
