package agent

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JimmyBlanquet/assistant-architect/internal/assessment"
	"github.com/JimmyBlanquet/assistant-architect/internal/catalog"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/profile"
)

func testProfile() *profile.ProjectProfile {
	return &profile.ProjectProfile{
		Name:        "billing-portal",
		Description: "Customer billing portal",
		Stack:       []string{"React", "TypeScript"},
		Patterns:    []string{"REST API"},
		Complexity:  profile.ComplexityMedium,
		RawContent:  "react typescript",
	}
}

func testAssessment() *assessment.NeedsAssessment {
	return &assessment.NeedsAssessment{
		TeamSize:               "4-8 (medium)",
		ExperienceLevel:        "Mixed",
		Priorities:             []string{"Code quality"},
		SensitiveData:          true,
		ComplianceRequirements: []string{"GDPR"},
	}
}

func frontendRecommendation(t *testing.T, c *catalog.Catalog) catalog.Recommendation {
	t.Helper()
	recs := c.Recommend(testProfile(), testAssessment(), 0.1)
	for _, r := range recs {
		if r.AgentType == "frontend-expert" {
			return r
		}
	}
	t.Fatal("frontend-expert not recommended for test profile")
	return catalog.Recommendation{}
}

func TestBuildProducesCompleteAgent(t *testing.T) {
	c := catalog.New()
	b := NewBuilder(c, nil, logger.NewTestLogger(t))

	g, err := b.Build(context.Background(), frontendRecommendation(t, c), testProfile(), testAssessment(), nil)
	require.NoError(t, err)

	assert.Contains(t, g.Name, "Frontend Expert")
	assert.Contains(t, g.Name, "billing-portal")
	assert.Equal(t, "frontend-expert", g.Type)

	assert.Contains(t, g.SystemPrompt, "React, TypeScript")
	assert.Contains(t, g.SystemPrompt, "SENSITIVE DATA")
	assert.Contains(t, g.SystemPrompt, "GDPR")

	// React and TypeScript specializations contribute their commands.
	assert.Contains(t, g.Commands, "component")
	assert.Contains(t, g.Commands, "types")

	assert.Contains(t, g.Knowledge, "architecture.md")
	assert.Contains(t, g.Rules, "security")
	assert.NotEmpty(t, g.Hooks)
}

func TestBuildSecurityCheckerUsesLowTemperature(t *testing.T) {
	c := catalog.New()
	b := NewBuilder(c, nil, logger.NewTestLogger(t))

	rec := catalog.Recommendation{
		AgentType:    "security-checker",
		Name:         "Security Checker",
		Description:  "Code security verification",
		Priority:     catalog.PriorityHigh,
		Capabilities: []catalog.Capability{{Name: "vulnerability-scan", Description: "OWASP scanning"}},
		MatchScore:   0.8,
	}

	g, err := b.Build(context.Background(), rec, testProfile(), testAssessment(), nil)
	require.NoError(t, err)

	llmCfg, ok := g.Config["llm"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 0.3, llmCfg["temperature"])
}

func TestBuildAppliesEnterpriseRules(t *testing.T) {
	c := catalog.New()
	b := NewBuilder(c, nil, logger.NewTestLogger(t))

	rules := &EnterpriseRuleSet{ID: "ORG-001", Name: "Org policy", Enabled: true}
	g, err := b.Build(context.Background(), frontendRecommendation(t, c), testProfile(), testAssessment(), rules)
	require.NoError(t, err)

	assert.Equal(t, rules, g.Rules["enterprise"])
	assert.NotNil(t, g.Rules["security"])
}

func TestWriteToCreatesArtifactTree(t *testing.T) {
	c := catalog.New()
	b := NewBuilder(c, nil, logger.NewTestLogger(t))

	g, err := b.Build(context.Background(), frontendRecommendation(t, c), testProfile(), testAssessment(), nil)
	require.NoError(t, err)

	out := t.TempDir()
	created, err := g.WriteTo(out)
	require.NoError(t, err)

	agentDir := filepath.Join(out, g.DirName())
	assert.True(t, strings.HasPrefix(g.DirName(), "agent-"))

	raw, err := os.ReadFile(filepath.Join(agentDir, "AGENT.md"))
	require.NoError(t, err)
	assert.Equal(t, g.SystemPrompt, string(raw))

	_, err = os.Stat(filepath.Join(agentDir, "config.json"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(agentDir, "rules", "security.yaml"))
	require.NoError(t, err)

	assert.Contains(t, created, "system_prompt")
	assert.Contains(t, created, "config")
}

func TestValidateConfig(t *testing.T) {
	valid := map[string]interface{}{
		"agent_type": "frontend-expert",
		"name":       "Frontend Expert",
		"version":    "1.0.0",
		"llm": map[string]interface{}{
			"provider":    "genai",
			"model":       "default",
			"temperature": 0.7,
			"max_tokens":  4096,
		},
		"capabilities": []interface{}{"component-design"},
	}
	assert.NoError(t, ValidateConfig(valid))

	invalid := map[string]interface{}{
		"agent_type": "frontend-expert",
		"version":    "not-a-version",
	}
	err := ValidateConfig(invalid)
	require.Error(t, err)
}

func TestLoadEnterpriseRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `id: ORG-002
name: Review policy
enabled: true
actions:
  pii_detected: mask_or_reject
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadEnterpriseRules(path)
	require.NoError(t, err)
	assert.Equal(t, "ORG-002", rules.ID)
	assert.True(t, rules.Enabled)
	assert.Equal(t, "mask_or_reject", rules.Actions["pii_detected"])
}

func TestLoadEnterpriseRulesMissingFile(t *testing.T) {
	_, err := LoadEnterpriseRules(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
