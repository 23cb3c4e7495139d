package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JimmyBlanquet/assistant-architect/internal/agent"
	"github.com/JimmyBlanquet/assistant-architect/internal/assessment"
	"github.com/JimmyBlanquet/assistant-architect/internal/batch"
	"github.com/JimmyBlanquet/assistant-architect/internal/catalog"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/console"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/errors"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/feedback"
	"github.com/JimmyBlanquet/assistant-architect/internal/profile"
)

type fakeBuilder struct {
	built []string
}

func (f *fakeBuilder) Build(ctx context.Context, rec catalog.Recommendation, p *profile.ProjectProfile, a *assessment.NeedsAssessment, rules *agent.EnterpriseRuleSet) (*agent.Generated, error) {
	f.built = append(f.built, rec.AgentType)
	return &agent.Generated{
		Name:         rec.Name,
		Type:         rec.AgentType,
		SystemPrompt: "# " + rec.Name,
		Config:       map[string]interface{}{"agent_type": rec.AgentType},
	}, nil
}

func testPipeline(t *testing.T, opts Options) (*Pipeline, *fakeBuilder) {
	t.Helper()
	builder := &fakeBuilder{}
	io := console.NewScripted()
	if opts.Profile == nil {
		opts.Profile = &profile.ProjectProfile{
			Stack:      []string{"go", "postgresql"},
			Complexity: profile.ComplexityMedium,
		}
	}
	p := New(catalog.New(), nil, builder, io, logger.NewTestLogger(t), opts)
	return p, builder
}

func TestRunNonInteractive(t *testing.T) {
	out := filepath.Join(t.TempDir(), "agents")
	p, builder := testPipeline(t, Options{
		NonInteractive: true,
		MaxAgents:      3,
		OutputDir:      out,
	})

	err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, PhaseDone, p.Phase())
	assert.NotEmpty(t, p.Recommendations())
	assert.NotEmpty(t, p.Selected())
	assert.LessOrEqual(t, len(p.Selected()), 3)
	assert.Equal(t, len(p.Selected()), len(builder.built))

	require.NotNil(t, p.DeploymentResult())
	assert.True(t, p.DeploymentResult().IsFullySuccessful())
	for _, dep := range p.DeploymentResult().Deployments {
		_, statErr := os.Stat(filepath.Join(dep.Path, "AGENT.md"))
		assert.NoError(t, statErr)
	}
}

func TestRunExportsFeedback(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "feedback.json")
	p, _ := testPipeline(t, Options{
		NonInteractive:     true,
		OutputDir:          filepath.Join(t.TempDir(), "agents"),
		ExportFeedbackPath: exportPath,
	})

	require.NoError(t, p.Run(context.Background()))

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session_start")
}

func TestGenerateRequiresSelection(t *testing.T) {
	p, _ := testPipeline(t, Options{NonInteractive: true})

	err := p.Generate(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodePreconditionFailed, errors.CodeOf(err))
	assert.False(t, errors.IsRecoverable(err))
}

func TestDeployRequiresApproval(t *testing.T) {
	p, _ := testPipeline(t, Options{
		NonInteractive: true,
		OutputDir:      t.TempDir(),
	})
	ctx := context.Background()

	require.NoError(t, p.Analyze(ctx))
	require.NoError(t, p.Assess())
	require.NoError(t, p.Recommend())
	require.NoError(t, p.CollectFeedback())
	require.NoError(t, p.Select())
	require.NoError(t, p.Generate(ctx))

	err := p.Deploy()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodePreconditionFailed, errors.CodeOf(err))
}

func TestRecommendRequiresAssessment(t *testing.T) {
	p, _ := testPipeline(t, Options{NonInteractive: true})
	require.NoError(t, p.Analyze(context.Background()))

	err := p.Recommend()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodePreconditionFailed, errors.CodeOf(err))
}

func TestApprovalDeclineSkipsDeployment(t *testing.T) {
	builder := &fakeBuilder{}
	io := console.NewScripted("", "n")
	p := New(catalog.New(), nil, builder, io, logger.NewTestLogger(t), Options{
		Profile:   &profile.ProjectProfile{Stack: []string{"go"}},
		OutputDir: t.TempDir(),
	})
	ctx := context.Background()

	require.NoError(t, p.Analyze(ctx))
	p.assessment = assessment.Preset()
	require.NoError(t, p.Recommend())
	p.session = sessionRatingAll(p.Recommendations())
	require.NoError(t, p.Select())
	require.NoError(t, p.Generate(ctx))

	require.NoError(t, p.Approve())
	assert.False(t, p.Approved())
	assert.Nil(t, p.DeploymentResult())
}

func TestApprovalSkippedWhenNothingGenerated(t *testing.T) {
	p, _ := testPipeline(t, Options{NonInteractive: true})
	p.genResult = &batch.Result{}

	require.NoError(t, p.Approve())
	assert.False(t, p.Approved())
}

func TestAnalyzeFallsBackToSuppliedProfile(t *testing.T) {
	supplied := &profile.ProjectProfile{Name: "fallback", Stack: []string{"go"}}
	p, _ := testPipeline(t, Options{
		NonInteractive: true,
		Profile:        supplied,
	})

	require.NoError(t, p.Analyze(context.Background()))
	assert.Equal(t, "fallback", p.profile.Name)
}

func TestSelectCapsAtMaxAgents(t *testing.T) {
	p, _ := testPipeline(t, Options{
		NonInteractive: true,
		MaxAgents:      1,
	})
	ctx := context.Background()

	require.NoError(t, p.Analyze(ctx))
	require.NoError(t, p.Assess())
	require.NoError(t, p.Recommend())
	require.NoError(t, p.CollectFeedback())
	require.NoError(t, p.Select())

	require.Len(t, p.Selected(), 1)
	assert.Equal(t, p.Recommendations()[0].AgentType, p.Selected()[0].AgentType)
}

func TestProgressPrinterReportsTransitions(t *testing.T) {
	out := filepath.Join(t.TempDir(), "agents")
	builder := &fakeBuilder{}
	io := console.NewScripted()
	p := New(catalog.New(), nil, builder, io, logger.NewTestLogger(t), Options{
		NonInteractive: true,
		Profile:        &profile.ProjectProfile{Stack: []string{"go"}},
		OutputDir:      out,
	})

	require.NoError(t, p.Run(context.Background()))

	printed := strings.Join(io.Output, "")
	assert.Contains(t, printed, "generating")
	assert.Contains(t, printed, "done")
}

func TestRunEndsCleanlyWhenNothingMatches(t *testing.T) {
	builder := &fakeBuilder{}
	io := console.NewScripted()
	p := New(catalog.New(), nil, builder, io, logger.NewTestLogger(t), Options{
		NonInteractive: true,
		MinScore:       0.99,
		Profile:        &profile.ProjectProfile{Stack: []string{"go"}},
		OutputDir:      t.TempDir(),
	})

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, PhaseDone, p.Phase())
	assert.Empty(t, p.Recommendations())
	assert.Empty(t, builder.built)
	assert.Nil(t, p.GenerationResult())
	assert.Nil(t, p.DeploymentResult())
	assert.Contains(t, strings.Join(io.Output, ""), "No recommendations matched")
}

func TestEmptyRecommendationsAreNotASequencingError(t *testing.T) {
	p, _ := testPipeline(t, Options{NonInteractive: true, MinScore: 0.99})
	ctx := context.Background()

	require.NoError(t, p.Analyze(ctx))
	require.NoError(t, p.Assess())
	require.NoError(t, p.Recommend())
	require.Empty(t, p.Recommendations())

	require.NoError(t, p.CollectFeedback())
	require.NoError(t, p.Select())
	assert.Empty(t, p.Selected())
}

func ratedRecs() []catalog.Recommendation {
	return []catalog.Recommendation{
		{AgentType: "backend-expert", Name: "Backend Expert", Priority: catalog.PriorityHigh, MatchScore: 0.8},
		{AgentType: "security-checker", Name: "Security Checker", Priority: catalog.PriorityHigh, MatchScore: 0.7},
		{AgentType: "test-advisor", Name: "Test Advisor", Priority: catalog.PriorityMedium, MatchScore: 0.5},
	}
}

func TestFeedbackRefinementDropsNotRelevant(t *testing.T) {
	io := console.NewScripted("u", "n", "u", "y")
	p := New(catalog.New(), nil, &fakeBuilder{}, io, logger.NewTestLogger(t), Options{
		Profile: &profile.ProjectProfile{Stack: []string{"go"}},
	})
	p.recs = ratedRecs()

	require.NoError(t, p.CollectFeedback())

	require.Len(t, p.Recommendations(), 2)
	assert.Equal(t, "backend-expert", p.Recommendations()[0].AgentType)
	assert.Equal(t, "test-advisor", p.Recommendations()[1].AgentType)
}

func TestFeedbackRefinementDeclinedKeepsOrder(t *testing.T) {
	io := console.NewScripted("u", "n", "u", "")
	p := New(catalog.New(), nil, &fakeBuilder{}, io, logger.NewTestLogger(t), Options{
		Profile: &profile.ProjectProfile{Stack: []string{"go"}},
	})
	p.recs = ratedRecs()

	require.NoError(t, p.CollectFeedback())

	require.Len(t, p.Recommendations(), 3)
	assert.Equal(t, "security-checker", p.Recommendations()[1].AgentType)
}

// sessionRatingAll builds a session rating every recommendation useful,
// standing in for the interactive feedback loop.
func sessionRatingAll(recs []catalog.Recommendation) *feedback.Session {
	s := feedback.NewSession()
	for _, r := range recs {
		s.Add(r.AgentType, r.Name, "useful", "")
	}
	return s
}
