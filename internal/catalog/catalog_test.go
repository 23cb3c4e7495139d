package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JimmyBlanquet/assistant-architect/internal/assessment"
	"github.com/JimmyBlanquet/assistant-architect/internal/profile"
)

func testProfile() *profile.ProjectProfile {
	return &profile.ProjectProfile{
		Name:        "demo-app",
		Description: "A React frontend with a FastAPI backend",
		Stack:       []string{"React", "TypeScript", "Python", "PostgreSQL", "Docker"},
		Patterns:    []string{"REST API", "microservices"},
		Features:    []string{"user accounts", "reporting"},
		Complexity:  profile.ComplexityHigh,
		PainPoints:  []string{"flaky tests", "slow reviews"},
		RawContent:  "react typescript fastapi postgres docker compose",
	}
}

func testAssessment() *assessment.NeedsAssessment {
	return &assessment.NeedsAssessment{
		TeamSize:               "4-8 (medium)",
		ExperienceLevel:        "Mixed",
		MainPainPoints:         []string{"Writing tests", "Understanding legacy code"},
		SensitiveData:          true,
		ComplianceRequirements: []string{"GDPR"},
	}
}

func TestCatalogDeclarationOrder(t *testing.T) {
	c := New()

	entries := c.Entries()
	require.Len(t, entries, 12)
	assert.Equal(t, "frontend-expert", entries[0].ID)
	assert.Equal(t, "test-advisor", entries[len(entries)-1].ID)

	assert.Len(t, c.TechnicalExperts(), 6)
	assert.Len(t, c.TransversalAssistants(), 6)
}

func TestCatalogGet(t *testing.T) {
	c := New()

	e, ok := c.Get("backend-expert")
	require.True(t, ok)
	assert.Equal(t, "Backend Expert", e.Name)

	_, ok = c.Get("unknown")
	assert.False(t, ok)
}

func TestAllScoresWithinBounds(t *testing.T) {
	c := New()
	p := testProfile()
	a := testAssessment()

	for _, e := range c.Entries() {
		e := e
		var score float64
		if e.Category == CategoryTechnical {
			score = ScoreExpert(&e, p, a)
		} else {
			score = ScoreAssistant(&e, p, a)
		}
		assert.GreaterOrEqual(t, score, 0.0, e.ID)
		assert.LessOrEqual(t, score, 1.0, e.ID)
	}
}

func TestScoreExpertKeywordCap(t *testing.T) {
	c := New()
	e, ok := c.Get("backend-expert")
	require.True(t, ok)

	// All eight detection keywords present; contribution stays capped.
	p := &profile.ProjectProfile{
		Description: "spring django fastapi express nestjs api rest graphql",
	}
	score := ScoreExpert(e, p, &assessment.NeedsAssessment{})
	assert.InDelta(t, 0.4, score, 0.0001)
}

func TestScoreExpertSpecializationWeight(t *testing.T) {
	c := New()
	e, ok := c.Get("frontend-expert")
	require.True(t, ok)

	// React and TypeScript specializations only, no detection keywords.
	p := &profile.ProjectProfile{
		RawContent: "jsx tsconfig",
	}
	score := ScoreExpert(e, p, nil)
	assert.InDelta(t, 0.3, score, 0.0001)
}

func TestScoreExpertPainPointAlignment(t *testing.T) {
	c := New()
	e, ok := c.Get("backend-expert")
	require.True(t, ok)

	base := ScoreExpert(e, testProfile(), &assessment.NeedsAssessment{})
	aligned := ScoreExpert(e, testProfile(), &assessment.NeedsAssessment{
		MainPainPoints: []string{"the api is hard to evolve"},
	})

	// Alignment adds a flat 0.1 once, regardless of how many triggers hit.
	assert.InDelta(t, base+0.1, aligned, 0.0001)
}

func TestScoreExpertEmptyProfile(t *testing.T) {
	c := New()
	for _, e := range c.TechnicalExperts() {
		e := e
		assert.Zero(t, ScoreExpert(&e, &profile.ProjectProfile{}, nil), e.ID)
	}
}

func TestDetectSpecializationsOneMatchSuffices(t *testing.T) {
	c := New()
	e, ok := c.Get("frontend-expert")
	require.True(t, ok)

	p := &profile.ProjectProfile{Stack: []string{"React"}}
	specs := DetectSpecializations(e, p)
	require.Len(t, specs, 1)
	assert.Equal(t, "React", specs[0].Name)
}

func TestScoreAssistantSecurityChecker(t *testing.T) {
	c := New()
	e, ok := c.Get("security-checker")
	require.True(t, ok)

	score := ScoreAssistant(e, &profile.ProjectProfile{}, &assessment.NeedsAssessment{
		SensitiveData:          true,
		ComplianceRequirements: []string{"GDPR"},
	})
	assert.InDelta(t, 0.8, score, 0.0001)

	score = ScoreAssistant(e, &profile.ProjectProfile{}, &assessment.NeedsAssessment{})
	assert.Zero(t, score)
}

func TestScoreAssistantOnboardingGuide(t *testing.T) {
	c := New()
	e, ok := c.Get("onboarding-guide")
	require.True(t, ok)

	cases := []struct {
		name       string
		experience string
		complexity string
		expected   float64
	}{
		{"mixed team high complexity", "Mixed", profile.ComplexityHigh, 0.5},
		{"junior team medium complexity", "Junior (< 2 years)", profile.ComplexityMedium, 0.6},
		{"senior team low complexity", "Senior (5+ years)", profile.ComplexityLow, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := ScoreAssistant(e,
				&profile.ProjectProfile{Complexity: tc.complexity},
				&assessment.NeedsAssessment{ExperienceLevel: tc.experience},
			)
			assert.InDelta(t, tc.expected, score, 0.0001)
		})
	}
}

func TestScoreAssistantPainPointRules(t *testing.T) {
	c := New()

	cases := []struct {
		id       string
		pain     string
		expected float64
	}{
		{"doc-generator", "our documentation is outdated", 0.5},
		{"refactoring-advisor", "too much technical debt", 0.5},
		{"perf-optimizer", "the dashboard is slow", 0.5},
		{"test-advisor", "coverage is poor", 0.5},
		{"perf-optimizer", "nothing relevant", 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.id+"/"+tc.pain, func(t *testing.T) {
			e, ok := c.Get(tc.id)
			require.True(t, ok)
			score := ScoreAssistant(e, &profile.ProjectProfile{}, &assessment.NeedsAssessment{
				MainPainPoints: []string{tc.pain},
			})
			assert.InDelta(t, tc.expected, score, 0.0001)
		})
	}
}

func TestScoreAssistantProfileKeywordBonus(t *testing.T) {
	c := New()
	e, ok := c.Get("test-advisor")
	require.True(t, ok)

	// "test" and "coverage" both appear in the profile pain points.
	score := ScoreAssistant(e, &profile.ProjectProfile{
		PainPoints: []string{"test coverage is low"},
	}, &assessment.NeedsAssessment{})
	assert.InDelta(t, 0.2, score, 0.0001)
}

func TestPriorityFromScore(t *testing.T) {
	assert.Equal(t, PriorityHigh, PriorityFromScore(0.6))
	assert.Equal(t, PriorityHigh, PriorityFromScore(0.95))
	assert.Equal(t, PriorityMedium, PriorityFromScore(0.4))
	assert.Equal(t, PriorityMedium, PriorityFromScore(0.59))
	assert.Equal(t, PriorityLow, PriorityFromScore(0.39))
	assert.Equal(t, PriorityLow, PriorityFromScore(0))
}

func TestRecommendSortedDescending(t *testing.T) {
	c := New()
	recs := c.Recommend(testProfile(), testAssessment(), DefaultMinScore)
	require.NotEmpty(t, recs)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
	}
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.MatchScore, DefaultMinScore)
	}
}

func TestRecommendTiesKeepDeclarationOrder(t *testing.T) {
	c := New()

	// Empty inputs give identical scores for two assistants with the same
	// rule shape, so declaration order must decide.
	p := &profile.ProjectProfile{Complexity: profile.ComplexityLow}
	a := &assessment.NeedsAssessment{
		MainPainPoints: []string{"documentation and tests and performance and legacy debt"},
	}

	recs := c.Recommend(p, a, 0.2)
	var tied []string
	for _, r := range recs {
		if r.MatchScore == 0.5 {
			tied = append(tied, r.AgentType)
		}
	}
	// doc-generator, refactoring-advisor, perf-optimizer, test-advisor all
	// score 0.5 here and must appear in declaration order.
	require.GreaterOrEqual(t, len(tied), 2)
	assert.True(t, sortedByDeclaration(c, tied), "tied entries out of declaration order: %v", tied)
}

func sortedByDeclaration(c *Catalog, ids []string) bool {
	pos := map[string]int{}
	for i, e := range c.Entries() {
		pos[e.ID] = i
	}
	for i := 1; i < len(ids); i++ {
		if pos[ids[i-1]] > pos[ids[i]] {
			return false
		}
	}
	return true
}

func TestRecommendTopTruncatesAfterSorting(t *testing.T) {
	c := New()
	full := c.Recommend(testProfile(), testAssessment(), DefaultMinScore)
	require.Greater(t, len(full), 2)

	top := c.RecommendTop(testProfile(), testAssessment(), DefaultMinScore, 2)
	require.Len(t, top, 2)
	assert.Equal(t, full[0].AgentType, top[0].AgentType)
	assert.Equal(t, full[1].AgentType, top[1].AgentType)
}

func TestRecommendIsIdempotent(t *testing.T) {
	c := New()
	first := c.Recommend(testProfile(), testAssessment(), DefaultMinScore)
	second := c.Recommend(testProfile(), testAssessment(), DefaultMinScore)
	assert.Equal(t, first, second)
}

func TestDisplayNameDecoration(t *testing.T) {
	c := New()
	recs := c.Recommend(testProfile(), testAssessment(), DefaultMinScore)

	var frontend *Recommendation
	for i := range recs {
		if recs[i].AgentType == "frontend-expert" {
			frontend = &recs[i]
			break
		}
	}
	require.NotNil(t, frontend)
	// React and TypeScript detected; only the first two decorate the name.
	assert.Equal(t, "Frontend Expert (React/TypeScript)", frontend.Name)
}

func TestJustificationFallback(t *testing.T) {
	c := New()
	e, ok := c.Get("doc-generator")
	require.True(t, ok)

	j := buildJustification(e, &profile.ProjectProfile{}, &assessment.NeedsAssessment{}, 0.3, nil)
	assert.Equal(t, "match score: 30%", j)
}

func TestJustificationSecurityReasons(t *testing.T) {
	c := New()
	e, ok := c.Get("security-checker")
	require.True(t, ok)

	j := buildJustification(e, &profile.ProjectProfile{}, testAssessment(), 0.8, nil)
	assert.True(t, strings.Contains(j, "Sensitive data detected"))
	assert.True(t, strings.Contains(j, "GDPR"))
}
