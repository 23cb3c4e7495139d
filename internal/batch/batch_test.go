package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JimmyBlanquet/assistant-architect/internal/agent"
	"github.com/JimmyBlanquet/assistant-architect/internal/assessment"
	"github.com/JimmyBlanquet/assistant-architect/internal/catalog"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/profile"
)

// stubBuilder fails or panics for configured agent types.
type stubBuilder struct {
	failTypes  map[string]bool
	panicTypes map[string]bool
	built      []string
}

func (s *stubBuilder) Build(ctx context.Context, rec catalog.Recommendation, p *profile.ProjectProfile, a *assessment.NeedsAssessment, rules *agent.EnterpriseRuleSet) (*agent.Generated, error) {
	s.built = append(s.built, rec.AgentType)
	if s.panicTypes[rec.AgentType] {
		panic("builder blew up")
	}
	if s.failTypes[rec.AgentType] {
		return nil, errors.New("synthetic build failure")
	}
	return &agent.Generated{
		Name:   rec.Name,
		Type:   rec.AgentType,
		Config: map[string]interface{}{"agent_type": rec.AgentType},
	}, nil
}

func threeRecs() []catalog.Recommendation {
	return []catalog.Recommendation{
		{AgentType: "backend-expert", Name: "Backend Expert", MatchScore: 0.8},
		{AgentType: "security-checker", Name: "Security Checker", MatchScore: 0.7},
		{AgentType: "test-advisor", Name: "Test Advisor", MatchScore: 0.5},
	}
}

func TestGeneratorPartialFailure(t *testing.T) {
	builder := &stubBuilder{failTypes: map[string]bool{"security-checker": true}}
	g := NewGenerator(builder, logger.NewTestLogger(t), nil)

	result := g.Run(context.Background(), threeRecs(), &profile.ProjectProfile{}, &assessment.NeedsAssessment{}, nil)

	assert.Equal(t, 2, result.SuccessCount())
	assert.Equal(t, 1, result.ErrorCount())
	assert.Equal(t, 3, result.TotalCount())
	assert.False(t, result.IsFullySuccessful())

	assert.Equal(t, StatusSuccess, result.Items[0].Status)
	assert.Equal(t, StatusError, result.Items[1].Status)
	assert.Equal(t, StatusSuccess, result.Items[2].Status)
	assert.Error(t, result.Items[1].Err)
	assert.Nil(t, result.Items[1].Agent)

	agents := result.SuccessfulAgents()
	require.Len(t, agents, 2)
	assert.Equal(t, "backend-expert", agents[0].Type)
	assert.Equal(t, "test-advisor", agents[1].Type)
}

func TestGeneratorProcessesInInputOrder(t *testing.T) {
	builder := &stubBuilder{}
	g := NewGenerator(builder, logger.NewTestLogger(t), nil)

	g.Run(context.Background(), threeRecs(), &profile.ProjectProfile{}, &assessment.NeedsAssessment{}, nil)
	assert.Equal(t, []string{"backend-expert", "security-checker", "test-advisor"}, builder.built)
}

func TestGeneratorIsolatesPanics(t *testing.T) {
	builder := &stubBuilder{panicTypes: map[string]bool{"backend-expert": true}}
	g := NewGenerator(builder, logger.NewTestLogger(t), nil)

	result := g.Run(context.Background(), threeRecs(), &profile.ProjectProfile{}, &assessment.NeedsAssessment{}, nil)

	assert.Equal(t, StatusError, result.Items[0].Status)
	assert.Contains(t, result.Items[0].Err.Error(), "panic")
	assert.Equal(t, 2, result.SuccessCount())
}

func TestGeneratorProgressSequence(t *testing.T) {
	builder := &stubBuilder{failTypes: map[string]bool{"security-checker": true}}

	type step struct {
		index  int
		status string
	}
	var steps []step
	progress := func(index int, item Item) {
		steps = append(steps, step{index, item.Status})
	}

	g := NewGenerator(builder, logger.NewTestLogger(t), progress)
	g.Run(context.Background(), threeRecs(), &profile.ProjectProfile{}, &assessment.NeedsAssessment{}, nil)

	expected := []step{
		{0, StatusInProgress}, {0, StatusSuccess},
		{1, StatusInProgress}, {1, StatusError},
		{2, StatusInProgress}, {2, StatusSuccess},
	}
	assert.Equal(t, expected, steps)
}

func TestGeneratorRecordsDurations(t *testing.T) {
	builder := &stubBuilder{}
	g := NewGenerator(builder, logger.NewTestLogger(t), nil)

	result := g.Run(context.Background(), threeRecs(), &profile.ProjectProfile{}, &assessment.NeedsAssessment{}, nil)
	for _, it := range result.Items {
		assert.GreaterOrEqual(t, it.Duration, time.Duration(0))
	}
	assert.GreaterOrEqual(t, result.TotalDuration, result.Items[0].Duration)
}

func TestGeneratorEmptyBatch(t *testing.T) {
	g := NewGenerator(&stubBuilder{}, logger.NewTestLogger(t), nil)
	result := g.Run(context.Background(), nil, &profile.ProjectProfile{}, &assessment.NeedsAssessment{}, nil)

	assert.Equal(t, 0, result.TotalCount())
	assert.True(t, result.IsFullySuccessful())
}

func TestDeployerWritesAgents(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deployed")
	d := NewDeployer(out, logger.NewTestLogger(t), nil)

	agents := []*agent.Generated{
		{Name: "Backend Expert", Type: "backend-expert", SystemPrompt: "# Backend Expert", Config: map[string]interface{}{"agent_type": "backend-expert"}},
		{Name: "Test Advisor", Type: "test-advisor", SystemPrompt: "# Test Advisor", Config: map[string]interface{}{"agent_type": "test-advisor"}},
	}

	result, err := d.Run(agents)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount())
	assert.True(t, result.IsFullySuccessful())

	for _, dep := range result.Deployments {
		assert.Equal(t, StatusSuccess, dep.Status)
		_, statErr := os.Stat(filepath.Join(dep.Path, "AGENT.md"))
		assert.NoError(t, statErr)
	}
}

func TestDeployerCreatesOutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "a", "b", "c")
	d := NewDeployer(out, logger.NewTestLogger(t), nil)

	_, err := d.Run(nil)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
