package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	coursePath string
	strict     bool
	maxStates  int
	learningSp bool

	log *zap.SugaredLogger
)

// rootCmd is the base command when kst is invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "kst",
	Short: "Knowledge space theory course engine",
	Long: `kst builds, validates, and queries knowledge/learning spaces over a
prerequisite-structured item domain, and runs BLIM-based adaptive
assessment, EM parameter estimation, and Markov learning-trajectory
modelling on top of them.

Course definitions are read from a YAML file (see --course).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log = l.Sugar()
		return nil
	},
}

// Execute runs the root command, exiting 1 on any returned error (spec §6
// "Exit codes: 0 success; 1 validation failure or other core error").
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&coursePath, "course", "c", "course.yaml", "Path to the course YAML file")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Fail with an error instead of a validation report on axiom violations")
	rootCmd.PersistentFlags().IntVar(&maxStates, "max-states", 0, "Cap on enumerated knowledge states (0 = unbounded)")
	rootCmd.PersistentFlags().BoolVar(&learningSp, "learning-space", true, "Build a learning space (accessible) rather than a bare knowledge space")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(optimizeCmd)
}
