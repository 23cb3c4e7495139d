// Package pipeline orchestrates the full recommendation run, from project
// analysis through agent deployment. Each phase is an explicit step with
// precondition checks, so callers can drive the run interactively or let
// Run/RunAuto chain the phases end to end.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JimmyBlanquet/assistant-architect/internal/agent"
	"github.com/JimmyBlanquet/assistant-architect/internal/assessment"
	"github.com/JimmyBlanquet/assistant-architect/internal/batch"
	"github.com/JimmyBlanquet/assistant-architect/internal/catalog"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/console"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/errors"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/metrics"
	"github.com/JimmyBlanquet/assistant-architect/internal/feedback"
	"github.com/JimmyBlanquet/assistant-architect/internal/profile"
	"github.com/JimmyBlanquet/assistant-architect/internal/selection"
)

// Phase names the stages a run moves through, in order.
type Phase string

const (
	PhaseInit           Phase = "init"
	PhaseAnalysis       Phase = "analysis"
	PhaseAssessment     Phase = "assessment"
	PhaseRecommendation Phase = "recommendation"
	PhaseFeedback       Phase = "feedback"
	PhaseSelection      Phase = "selection"
	PhaseGeneration     Phase = "generation"
	PhaseApproval       Phase = "approval"
	PhaseDeployment     Phase = "deployment"
	PhaseDone           Phase = "done"
)

// Options tunes a single pipeline run.
type Options struct {
	// NonInteractive replaces every prompt with preset answers and
	// threshold-based auto-rating and auto-selection.
	NonInteractive bool

	// DocsPath points at a directory of markdown docs to analyze. When empty,
	// Profile must be supplied by the caller.
	DocsPath string

	// Profile is used directly when DocsPath is empty, and as the fallback
	// when directory analysis fails.
	Profile *profile.ProjectProfile

	MinScore  float64
	MaxAgents int
	OutputDir string

	// ExportFeedbackPath, when set, writes the feedback session as JSON
	// after selection.
	ExportFeedbackPath string

	// Rules is the optional enterprise rule set merged into every agent.
	Rules *agent.EnterpriseRuleSet

	SelectionMaxAttempts    int
	SelectionRequireConfirm bool
}

// Pipeline carries the state of one run.
type Pipeline struct {
	ID      string
	Started time.Time

	opts     Options
	catalog  *catalog.Catalog
	analyzer *profile.Analyzer
	builder  batch.AgentBuilder
	io       console.IO
	log      logger.Logger

	phase        Phase
	profile      *profile.ProjectProfile
	assessment   *assessment.NeedsAssessment
	recs         []catalog.Recommendation
	session      *feedback.Session
	selected     []catalog.Recommendation
	genResult    *batch.Result
	approved     bool
	deployResult *batch.DeployResult
}

// New assembles a pipeline over its collaborators. The analyzer may be nil
// when Options.Profile is provided.
func New(cat *catalog.Catalog, analyzer *profile.Analyzer, builder batch.AgentBuilder, io console.IO, log logger.Logger, opts Options) *Pipeline {
	if opts.MaxAgents <= 0 {
		opts.MaxAgents = 5
	}
	if opts.MinScore <= 0 {
		opts.MinScore = catalog.DefaultMinScore
	}
	if opts.SelectionMaxAttempts <= 0 {
		opts.SelectionMaxAttempts = 3
	}
	id := uuid.New().String()
	return &Pipeline{
		ID:       id,
		Started:  time.Now(),
		opts:     opts,
		catalog:  cat,
		analyzer: analyzer,
		builder:  builder,
		io:       io,
		log:      log.WithFields(map[string]interface{}{"pipeline_id": id}),
		phase:    PhaseInit,
	}
}

// Phase reports the pipeline's current stage.
func (p *Pipeline) Phase() Phase {
	return p.phase
}

// Recommendations returns the ranked recommendations once the
// recommendation phase has run.
func (p *Pipeline) Recommendations() []catalog.Recommendation {
	return p.recs
}

// Selected returns the recommendations chosen for generation.
func (p *Pipeline) Selected() []catalog.Recommendation {
	return p.selected
}

// GenerationResult returns the batch outcome once generation has run.
func (p *Pipeline) GenerationResult() *batch.Result {
	return p.genResult
}

// DeploymentResult returns the deployment outcome once deployment has run.
func (p *Pipeline) DeploymentResult() *batch.DeployResult {
	return p.deployResult
}

// Analyze resolves the project profile, either from a docs directory or
// from the caller-supplied profile. Directory analysis failures fall back
// to the supplied profile when one exists.
func (p *Pipeline) Analyze(ctx context.Context) error {
	p.phase = PhaseAnalysis

	if p.opts.DocsPath != "" && p.analyzer != nil {
		prof, err := p.analyzer.AnalyzeDirectory(ctx, p.opts.DocsPath)
		if err == nil {
			p.profile = prof
			p.log.Info("project analyzed", map[string]interface{}{
				"technologies": len(prof.Stack),
				"complexity":   prof.Complexity,
			})
			return nil
		}
		if p.opts.Profile == nil {
			return errors.NewAnalysisFailedError(err)
		}
		p.log.WithError(err).Warn("doc analysis failed, using supplied profile", nil)
	}

	if p.opts.Profile == nil {
		p.profile = &profile.ProjectProfile{}
	} else {
		p.profile = p.opts.Profile
	}
	return nil
}

// Assess gathers team needs, interactively or from the preset.
func (p *Pipeline) Assess() error {
	if p.profile == nil {
		return errors.NewPreconditionFailedError("assessment requires a project profile")
	}
	p.phase = PhaseAssessment

	if p.opts.NonInteractive {
		p.assessment = assessment.Preset()
		return nil
	}

	assessor := assessment.NewAdaptiveAssessor(p.io, p.log, p.profile)
	a, err := assessor.Run()
	if err != nil {
		return err
	}
	p.assessment = a
	return nil
}

// Recommend scores the catalog against the profile and assessment.
func (p *Pipeline) Recommend() error {
	if p.profile == nil || p.assessment == nil {
		return errors.NewPreconditionFailedError("recommendation requires analysis and assessment")
	}
	p.phase = PhaseRecommendation

	p.recs = p.catalog.Recommend(p.profile, p.assessment, p.opts.MinScore)
	if p.recs == nil {
		// Keep the slice non-nil so later phases can tell "ranked nothing"
		// apart from "never ranked".
		p.recs = []catalog.Recommendation{}
	}
	p.log.Info("recommendations ranked", map[string]interface{}{"count": len(p.recs)})
	return nil
}

// CollectFeedback rates the recommendations and refines their order.
// Non-interactive runs rate by score thresholds.
func (p *Pipeline) CollectFeedback() error {
	if p.recs == nil {
		return errors.NewPreconditionFailedError("feedback requires recommendations")
	}
	p.phase = PhaseFeedback

	if p.opts.NonInteractive {
		p.session = feedback.NewSession()
		p.session.AutoRate(p.recs)
		p.recs = p.session.Refine(p.recs, false)
	} else {
		collector := feedback.NewCollector(p.io, p.log)
		session, err := collector.Collect(p.recs)
		if err != nil {
			return err
		}
		p.session = session

		answer, err := p.io.Prompt("Refine recommendations with your feedback? [y/N] ")
		if err != nil {
			return err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer == "y" || answer == "yes" {
			p.recs = p.session.Refine(p.recs, true)
			p.io.Print("Refined to %d recommendations", len(p.recs))
		}
	}

	if p.opts.ExportFeedbackPath != "" {
		if err := p.session.ExportJSON(p.opts.ExportFeedbackPath); err != nil {
			p.log.WithError(err).Warn("feedback export failed", map[string]interface{}{
				"path": p.opts.ExportFeedbackPath,
			})
		}
	}
	return nil
}

// Select picks the recommendations to generate. Interactive runs drive the
// selection loop over the IO surface; non-interactive runs take the
// high-priority set capped at MaxAgents.
func (p *Pipeline) Select() error {
	if p.recs == nil {
		return errors.NewPreconditionFailedError("selection requires recommendations")
	}
	p.phase = PhaseSelection

	if p.opts.NonInteractive {
		p.selected = selection.AutoSelect(p.recs, p.opts.MaxAgents)
		if p.selected == nil {
			p.selected = []catalog.Recommendation{}
		}
		return nil
	}

	selector := selection.NewSelector(p.io, p.log, p.opts.SelectionMaxAttempts, p.opts.SelectionRequireConfirm)
	chosen, err := selector.Select(p.recs, p.session)
	if err != nil {
		return err
	}
	if len(chosen) > p.opts.MaxAgents {
		chosen = chosen[:p.opts.MaxAgents]
	}
	p.selected = chosen
	return nil
}

// Generate builds every selected agent through the batch generator.
func (p *Pipeline) Generate(ctx context.Context) error {
	if p.selected == nil {
		return errors.NewPreconditionFailedError("generation requires a completed selection")
	}
	p.phase = PhaseGeneration

	gen := batch.NewGenerator(p.builder, p.log, p.progressPrinter())
	p.genResult = gen.Run(ctx, p.selected, p.profile, p.assessment, p.opts.Rules)

	p.io.Print("Generated %d/%d agents", p.genResult.SuccessCount(), p.genResult.TotalCount())
	return nil
}

// Approve asks for deployment confirmation. Non-interactive runs approve
// automatically when at least one agent was generated.
func (p *Pipeline) Approve() error {
	if p.genResult == nil {
		return errors.NewPreconditionFailedError("approval requires a completed generation")
	}
	p.phase = PhaseApproval

	if len(p.genResult.SuccessfulAgents()) == 0 {
		p.approved = false
		return nil
	}

	if p.opts.NonInteractive {
		p.approved = true
		return nil
	}

	answer, err := p.io.Prompt("Deploy generated agents? [Y/n] ")
	if err != nil {
		return err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	p.approved = answer == "" || answer == "y" || answer == "yes"
	return nil
}

// Approved reports whether deployment was approved.
func (p *Pipeline) Approved() bool {
	return p.approved
}

// Deploy writes every generated agent to the output directory. It refuses
// to run before approval.
func (p *Pipeline) Deploy() error {
	if p.genResult == nil {
		return errors.NewPreconditionFailedError("deployment requires a completed generation")
	}
	if !p.approved {
		return errors.NewPreconditionFailedError("deployment requires approval")
	}
	p.phase = PhaseDeployment

	deployer := batch.NewDeployer(p.opts.OutputDir, p.log, nil)
	result, err := deployer.Run(p.genResult.SuccessfulAgents())
	if err != nil {
		return err
	}
	p.deployResult = result

	p.io.Print("Deployed %d agents to %s", result.SuccessCount(), result.OutputDir)
	return nil
}

// Run drives the full pipeline, phase by phase. A run with no matching
// recommendations or an empty selection ends cleanly without generation,
// and a declined approval ends it without deployment.
func (p *Pipeline) Run(ctx context.Context) error {
	metrics.ActivePipelines.Inc()
	defer metrics.ActivePipelines.Dec()

	p.log.Info("pipeline started", map[string]interface{}{
		"non_interactive": p.opts.NonInteractive,
	})

	ranking := []func() error{
		func() error { return p.Analyze(ctx) },
		p.Assess,
		p.Recommend,
		p.CollectFeedback,
	}
	for _, step := range ranking {
		if err := step(); err != nil {
			return err
		}
	}
	if len(p.recs) == 0 {
		p.io.Print("No recommendations matched the current profile")
		return p.finish()
	}

	if err := p.Select(); err != nil {
		return err
	}
	if len(p.selected) == 0 {
		p.io.Print("No agents selected, nothing to generate")
		return p.finish()
	}

	if err := p.Generate(ctx); err != nil {
		return err
	}
	if err := p.Approve(); err != nil {
		return err
	}

	if p.approved {
		if err := p.Deploy(); err != nil {
			return err
		}
	} else {
		p.io.Print("Deployment skipped")
	}

	return p.finish()
}

func (p *Pipeline) finish() error {
	p.phase = PhaseDone
	p.log.Info("pipeline finished", map[string]interface{}{
		"duration": time.Since(p.Started).String(),
	})
	return nil
}

// progressPrinter reports batch transitions on the IO surface.
func (p *Pipeline) progressPrinter() batch.ProgressFunc {
	return func(index int, item batch.Item) {
		switch item.Status {
		case batch.StatusInProgress:
			p.io.Print("[%d] generating %s...", index+1, item.Recommendation.Name)
		case batch.StatusSuccess:
			p.io.Print("[%d] %s done (%s)", index+1, item.Recommendation.Name, item.Duration.Round(time.Millisecond))
		case batch.StatusError:
			p.io.Print("[%d] %s failed: %v", index+1, item.Recommendation.Name, item.Err)
		}
	}
}
