package feedback

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JimmyBlanquet/assistant-architect/internal/catalog"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/console"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
)

func sampleRecs() []catalog.Recommendation {
	return []catalog.Recommendation{
		{AgentType: "backend-expert", Name: "Backend Expert", Priority: catalog.PriorityHigh, MatchScore: 0.7},
		{AgentType: "test-advisor", Name: "Test Advisor", Priority: catalog.PriorityMedium, MatchScore: 0.5},
		{AgentType: "doc-generator", Name: "Doc Generator", Priority: catalog.PriorityLow, MatchScore: 0.3},
	}
}

func TestNormalizeRating(t *testing.T) {
	assert.Equal(t, RatingUseful, NormalizeRating("useful"))
	assert.Equal(t, RatingUseful, NormalizeRating("U"))
	assert.Equal(t, RatingNotRelevant, NormalizeRating("n"))
	assert.Equal(t, RatingMaybe, NormalizeRating(""))
	assert.Equal(t, RatingMaybe, NormalizeRating("whatever"))
}

func TestSessionLastWriteWins(t *testing.T) {
	s := NewSession()
	s.Add("backend-expert", "Backend Expert", RatingNotRelevant, "")
	s.Add("backend-expert", "Backend Expert", RatingUseful, "changed my mind")

	useful := s.UsefulTypes()
	assert.True(t, useful["backend-expert"])
	assert.Len(t, s.Records, 2)
}

func TestRefineOrdersUsefulBeforeMaybe(t *testing.T) {
	s := NewSession()
	s.Add("doc-generator", "Documentation Generator", RatingUseful, "")
	// backend-expert and test-advisor have no feedback: default maybe.

	refined := s.Refine(sampleRecs(), false)
	require.Len(t, refined, 3)
	assert.Equal(t, "doc-generator", refined[0].AgentType)
	assert.Equal(t, "backend-expert", refined[1].AgentType)
	assert.Equal(t, "test-advisor", refined[2].AgentType)
	assert.True(t, s.Refined)
}

func TestRefineDropsNotRelevant(t *testing.T) {
	s := NewSession()
	s.Add("test-advisor", "Test Advisor", RatingNotRelevant, "")

	refined := s.Refine(sampleRecs(), true)
	require.Len(t, refined, 2)
	for _, r := range refined {
		assert.NotEqual(t, "test-advisor", r.AgentType)
	}
}

func TestRefineKeepsNotRelevantLastWhenNotDropped(t *testing.T) {
	s := NewSession()
	s.Add("backend-expert", "Backend Expert", RatingNotRelevant, "")

	refined := s.Refine(sampleRecs(), false)
	require.Len(t, refined, 3)
	assert.Equal(t, "backend-expert", refined[2].AgentType)
}

func TestAutoRateThresholds(t *testing.T) {
	s := NewSession()
	s.AutoRate([]catalog.Recommendation{
		{AgentType: "a", MatchScore: 0.65},
		{AgentType: "b", MatchScore: 0.45},
		{AgentType: "c", MatchScore: 0.1},
	})

	latest := s.latestRatings()
	assert.Equal(t, RatingUseful, latest["a"])
	assert.Equal(t, RatingMaybe, latest["b"])
	assert.Equal(t, RatingNotRelevant, latest["c"])
}

func TestExportJSON(t *testing.T) {
	s := NewSession()
	s.Add("backend-expert", "Backend Expert", RatingUseful, "solid match")

	path := filepath.Join(t.TempDir(), "feedback.json")
	require.NoError(t, s.ExportJSON(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Session
	require.NoError(t, json.Unmarshal(raw, &loaded))
	assert.Equal(t, s.ID, loaded.ID)
	require.Len(t, loaded.Records, 1)
	assert.Equal(t, "backend-expert", loaded.Records[0].AgentType)
}

func TestCollectorUsesDefaultsAndAnswers(t *testing.T) {
	io := console.NewScripted("u", "", "n")
	c := NewCollector(io, logger.NewTestLogger(t))

	session, err := c.Collect(sampleRecs())
	require.NoError(t, err)
	require.Len(t, session.Records, 3)

	assert.Equal(t, RatingUseful, session.Records[0].Rating)
	assert.Equal(t, RatingMaybe, session.Records[1].Rating)
	assert.Equal(t, RatingNotRelevant, session.Records[2].Rating)
}
