package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	kst "github.com/kst-dev/kst"
)

var (
	simulateSeed     int64
	simulateMaxSteps int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate a learning trajectory under uniform learning rates",
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
		rng := rand.New(rand.NewSource(simulateSeed))
		traj := kst.SimulateTrajectory(model, core.Domain.Empty(), simulateMaxSteps, rng.Float64)

		items := make([]string, 0, len(traj.States)-1)
		for i := 1; i < len(traj.States); i++ {
			added := traj.States[i].Difference(traj.States[i-1]).IDs()
			items = append(items, added...)
		}
		fmt.Printf("trajectory: %s\n", strings.Join(items, " -> "))
		fmt.Printf("absorbed: %v, steps: %d\n", traj.Absorbed, len(items))
		return nil
	},
}

func init() {
	simulateCmd.Flags().Int64Var(&simulateSeed, "seed", 1, "PRNG seed")
	simulateCmd.Flags().IntVar(&simulateMaxSteps, "max-steps", 1000, "Safety cap on simulated steps")
}
