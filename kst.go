// Package kst is the top-level facade over the knowledge space theory core
// (spec §6 "Library API"): a thin aggregate that wires domain, algebra,
// space, assessment, estimation, markov, and difficulty together behind the
// single surface a host (CLI, YAML course loader, future server) needs,
// without those callers reaching into subpackages directly.
package kst

import (
	"github.com/kst-dev/kst/algebra"
	"github.com/kst-dev/kst/assessment"
	"github.com/kst-dev/kst/difficulty"
	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/estimation"
	"github.com/kst-dev/kst/markov"
	"github.com/kst-dev/kst/space"
	"github.com/kst-dev/kst/validation"
)

// CourseCore aggregates the validated artifacts built up for a single
// course domain: the item domain itself and, once built, its prerequisite
// graph, surmise relation, and knowledge/learning space. Each field is a
// borrowed reference (spec §9's ownership model) — CourseCore does not copy
// or own the underlying values beyond holding a pointer to them.
type CourseCore struct {
	Domain *domain.Domain
	Graph  *algebra.PrerequisiteGraph
	Surmise *algebra.SurmiseRelation
	Space  *space.Space
}

// NewCourseCore runs the full C2→C3 pipeline described in spec §2's control
// flow: build the prerequisite graph from edges, take its transitive
// closure as a surmise relation, derive the induced state family via the
// Birkhoff correspondence, and validate/index it as a knowledge or learning
// space. maxStates bounds downset enumeration (0 = unbounded).
func NewCourseCore(dom *domain.Domain, edges [][2]string, maxStates int, learningSpace, strict bool) (*CourseCore, validation.Report, error) {
	graph, err := BuildPrerequisiteGraph(dom, edges)
	if err != nil {
		return nil, validation.Report{}, err
	}
	sr := Closure(graph)
	states := StateFamilyFromPrerequisites(sr, maxStates)

	var sp *space.Space
	var report validation.Report
	if learningSpace {
		sp, report, err = BuildLearningSpace(dom, states, strict)
	} else {
		sp, report, err = BuildKnowledgeSpace(dom, states, strict)
	}
	if err != nil {
		return nil, report, err
	}

	return &CourseCore{Domain: dom, Graph: graph, Surmise: sr, Space: sp}, report, nil
}

// BuildDomain constructs the item domain (spec §6 build_domain).
func BuildDomain(name, description string, items []domain.Item) (*domain.Domain, error) {
	return domain.NewDomain(name, description, items)
}

// BuildState constructs a knowledge state from item ids (spec §6
// build_state).
func BuildState(dom *domain.Domain, ids ...string) (domain.KnowledgeState, error) {
	return dom.StateFromIDs(ids...)
}

// BuildPrerequisiteGraph constructs the prerequisite DAG from edges (spec §6
// build_prerequisite_graph).
func BuildPrerequisiteGraph(dom *domain.Domain, edges [][2]string) (*algebra.PrerequisiteGraph, error) {
	return algebra.BuildPrerequisiteGraph(dom, edges)
}

// Closure computes the transitive closure of a prerequisite graph into a
// surmise relation (spec §6 "closure/reduction conversions").
func Closure(g *algebra.PrerequisiteGraph) *algebra.SurmiseRelation {
	return algebra.TransitiveClosure(g)
}

// Reduction computes the transitive reduction of a prerequisite graph.
func Reduction(g *algebra.PrerequisiteGraph) *algebra.PrerequisiteGraph {
	return algebra.TransitiveReduction(g)
}

// BuildKnowledgeSpace validates and builds a knowledge space from an
// explicit state family (spec §6 build_knowledge_space).
func BuildKnowledgeSpace(dom *domain.Domain, states []domain.KnowledgeState, strict bool) (*space.Space, validation.Report, error) {
	return space.BuildKnowledgeSpace(dom, states, strict)
}

// BuildLearningSpace validates and builds a learning space.
func BuildLearningSpace(dom *domain.Domain, states []domain.KnowledgeState, strict bool) (*space.Space, validation.Report, error) {
	return space.BuildLearningSpace(dom, states, strict)
}

// StateFamilyFromPrerequisites derives a state family from a surmise
// relation via the Birkhoff correspondence, the usual route from a
// prerequisite graph to a knowledge space (spec §2 control flow).
func StateFamilyFromPrerequisites(sr *algebra.SurmiseRelation, maxStates int) []domain.KnowledgeState {
	return algebra.BirkhoffStates(sr, maxStates)
}

// ValidateKnowledgeSpace produces a validation report without mutating sp.
func ValidateKnowledgeSpace(sp *space.Space) validation.Report {
	return space.ValidateKnowledgeSpace(sp)
}

// ValidateLearningSpace produces a validation report without mutating sp.
func ValidateLearningSpace(sp *space.Space) validation.Report {
	return space.ValidateLearningSpace(sp)
}

// BuildBLIMParameters constructs per-item BLIM parameters (spec §6
// build_blim_params).
func BuildBLIMParameters(dom *domain.Domain, beta, eta map[string]float64) (*assessment.BLIMParameters, error) {
	return assessment.NewBLIMParameters(dom, beta, eta)
}

// BuildUniformBLIMParameters constructs BLIM parameters sharing one β, η
// pair across every item.
func BuildUniformBLIMParameters(dom *domain.Domain, beta, eta float64) (*assessment.BLIMParameters, error) {
	return assessment.UniformBLIMParameters(dom, beta, eta)
}

// StartSession begins an adaptive assessment session (spec §6 start_session).
func StartSession(dom *domain.Domain, states []domain.KnowledgeState, params *assessment.BLIMParameters, entropyThreshold float64) *assessment.AssessmentSession {
	return assessment.StartSession(dom, states, params, entropyThreshold)
}

// RunBatch runs the non-adaptive assessment protocol (spec §6 run_batch).
func RunBatch(dom *domain.Domain, states []domain.KnowledgeState, params *assessment.BLIMParameters, responses map[string]bool, entropyThreshold float64) (*assessment.AssessmentSession, error) {
	return assessment.RunBatch(dom, states, params, responses, entropyThreshold)
}

// RunAdaptive drives an adaptive session to completion using respond as the
// response oracle (spec §6 run_adaptive).
func RunAdaptive(dom *domain.Domain, states []domain.KnowledgeState, params *assessment.BLIMParameters, entropyThreshold float64, respond func(itemID string) bool) (*assessment.AssessmentSession, error) {
	return assessment.RunAdaptive(dom, states, params, entropyThreshold, respond)
}

// FitEM runs EM parameter estimation (spec §6 em_fit).
func FitEM(dom *domain.Domain, states []domain.KnowledgeState, data []estimation.ResponsePattern, maxIter int, tol float64, initPi []float64, initBeta, initEta map[string]float64) (*estimation.Estimate, error) {
	return estimation.Fit(dom, states, data, maxIter, tol, initPi, initBeta, initEta)
}

// GoodnessOfFit computes the G² statistic and degrees of freedom for a
// fitted estimate (spec §6 goodness_of_fit).
func GoodnessOfFit(dom *domain.Domain, data []estimation.ResponsePattern, est *estimation.Estimate) (float64, int) {
	return estimation.GoodnessOfFit(dom, data, est)
}

// CalibrateParameters runs multi-restart EM calibration (spec §6
// calibrate_parameters).
func CalibrateParameters(dom *domain.Domain, states []domain.KnowledgeState, data []estimation.ResponsePattern, restarts, maxIter int, tol, identifiabilityTol float64, next func() float64) (*estimation.CalibrationResult, error) {
	return estimation.Calibrate(dom, states, data, restarts, maxIter, tol, identifiabilityTol, next)
}

// BuildLearningRate builds a uniform learning-rate map (spec §6
// build_learning_rate).
func BuildLearningRate(dom *domain.Domain, lambda float64) map[string]float64 {
	return markov.UniformRates(dom, lambda)
}

// BuildMarkovModel pairs a learning space with learning rates.
func BuildMarkovModel(sp *space.Space, rates map[string]float64) (*markov.Model, error) {
	return markov.NewModel(sp, rates)
}

// ExpectedSteps returns the expected steps to mastery from every state
// (spec §6 expected_steps).
func ExpectedSteps(m *markov.Model) ([]float64, error) {
	return m.ExpectedStepsToMastery()
}

// SimulateTrajectory draws one learning trajectory (spec §6
// simulate_trajectory).
func SimulateTrajectory(m *markov.Model, start domain.KnowledgeState, maxSteps int, next func() float64) markov.Trajectory {
	return m.Simulate(start, maxSteps, next)
}

// OptimalTeachingSequence computes the optimal-teaching plan from start
// (spec §6 optimal_teaching_sequence).
func OptimalTeachingSequence(m *markov.Model, start domain.KnowledgeState) markov.TeachingPlan {
	return m.OptimalPlan(start)
}

// TuneLearningRates fits learning rates from observed trajectories (spec §6
// tune_learning_rates).
func TuneLearningRates(sp *space.Space, trajectories []markov.ObservedTrajectory, maxIter int, tol float64) (map[string]float64, error) {
	return markov.FitRates(sp, trajectories, maxIter, tol)
}

// EstimateItemDifficulty aggregates the available difficulty measures for
// every item (spec §6 estimate_item_difficulty).
func EstimateItemDifficulty(dom *domain.Domain, m difficulty.Measures) map[string]float64 {
	return difficulty.Aggregate(dom, m)
}
