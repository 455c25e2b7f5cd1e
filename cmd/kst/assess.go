package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	kst "github.com/kst-dev/kst"
	"github.com/kst-dev/kst/assessment"
)

var (
	assessBeta      float64
	assessEta       float64
	assessThreshold float64
	assessTrueState string
	assessSeed      int64
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run an adaptive assessment session against a simulated learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, _, err := loadCore()
		if err != nil {
			return err
		}
		params, err := kst.BuildUniformBLIMParameters(core.Domain, assessBeta, assessEta)
		if err != nil {
			return err
		}
		trueState, err := core.Domain.StateFromIDs(splitNonEmpty(assessTrueState)...)
		if err != nil {
			return err
		}

		rng := rand.New(rand.NewSource(assessSeed))
		sim := assessment.NewResponseSimulator(params, trueState, rng.Float64)

		sess, err := kst.RunAdaptive(core.Domain, core.Space.States(), params, assessThreshold, sim.Respond)
		if err != nil {
			return err
		}

		summary := sess.Summarize()
		fmt.Printf("questions asked: %d\n", summary.TotalQuestions)
		for i, step := range summary.Steps {
			fmt.Printf("  %d. %s -> %v (entropy %.4f -> %.4f)\n", i+1, step.ItemID, step.Outcome, step.EntropyBefore, step.EntropyAfter)
		}
		fmt.Printf("final MAP state: %s\n", strings.Join(summary.FinalMAP, ", "))
		fmt.Printf("confidence: %.4f\n", summary.Confidence)
		return nil
	},
}

func init() {
	assessCmd.Flags().Float64Var(&assessBeta, "beta", 0.1, "Uniform slip probability")
	assessCmd.Flags().Float64Var(&assessEta, "eta", 0.1, "Uniform lucky-guess probability")
	assessCmd.Flags().Float64Var(&assessThreshold, "entropy-threshold", 0.5, "Entropy (bits) at which the session is considered complete")
	assessCmd.Flags().StringVar(&assessTrueState, "true-state", "", "Comma-separated item ids the simulated learner has mastered")
	assessCmd.Flags().Int64Var(&assessSeed, "seed", 1, "PRNG seed")
}

func splitNonEmpty(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
