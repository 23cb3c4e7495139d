package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/JimmyBlanquet/assistant-architect/internal/assessment"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/metrics"
	"github.com/JimmyBlanquet/assistant-architect/internal/profile"
)

// Recommendation is one ranked suggestion.
type Recommendation struct {
	AgentType     string       `json:"agent_type"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Priority      string       `json:"priority"`
	Justification string       `json:"justification"`
	Capabilities  []Capability `json:"capabilities"`
	MatchScore    float64      `json:"match_score"`
}

// DefaultMinScore is the score floor when the caller does not provide one.
const DefaultMinScore = 0.2

// Recommend scores every catalog entry against the profile and assessment
// and returns all entries at or above minScore, sorted by descending score.
// The sort is stable, so equal scores keep catalog declaration order.
func (c *Catalog) Recommend(p *profile.ProjectProfile, a *assessment.NeedsAssessment, minScore float64) []Recommendation {
	start := time.Now()
	defer func() {
		metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	}()

	var recs []Recommendation

	for i := range c.entries {
		e := &c.entries[i]

		var score float64
		var specs []Specialization
		if e.Category == CategoryTechnical {
			score = ScoreExpert(e, p, a)
			specs = DetectSpecializations(e, p)
		} else {
			score = ScoreAssistant(e, p, a)
		}

		if score < minScore {
			continue
		}

		recs = append(recs, Recommendation{
			AgentType:     e.ID,
			Name:          displayName(e, specs),
			Description:   e.Description,
			Priority:      PriorityFromScore(score),
			Justification: buildJustification(e, p, a, score, specs),
			Capabilities:  append([]Capability(nil), e.BaseCapabilities...),
			MatchScore:    score,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	metrics.ScoringPassesTotal.WithLabelValues("success").Inc()
	metrics.RecommendationsEmitted.Observe(float64(len(recs)))
	return recs
}

// RecommendTop is the bounded variant: truncation happens after sorting so
// the strongest recommendations survive.
func (c *Catalog) RecommendTop(p *profile.ProjectProfile, a *assessment.NeedsAssessment, minScore float64, max int) []Recommendation {
	recs := c.Recommend(p, a, minScore)
	if max > 0 && len(recs) > max {
		recs = recs[:max]
	}
	return recs
}

// PriorityFromScore maps a match score to its priority bucket.
func PriorityFromScore(score float64) string {
	switch {
	case score >= 0.6:
		return PriorityHigh
	case score >= 0.4:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// displayName decorates the entry name with up to two detected
// specializations, e.g. "Frontend Expert (React/TypeScript)".
func displayName(e *Entry, specs []Specialization) string {
	if len(specs) == 0 {
		return e.Name
	}
	names := make([]string, 0, 2)
	for _, s := range specs {
		names = append(names, s.Name)
		if len(names) == 2 {
			break
		}
	}
	return fmt.Sprintf("%s (%s)", e.Name, strings.Join(names, "/"))
}

// buildJustification produces the human-readable reason for a
// recommendation, falling back to the raw score when nothing specific fits.
func buildJustification(e *Entry, p *profile.ProjectProfile, a *assessment.NeedsAssessment, score float64, specs []Specialization) string {
	var reasons []string

	if e.Category == CategoryTechnical {
		if len(specs) > 0 {
			names := make([]string, 0, 3)
			for _, s := range specs {
				names = append(names, s.Name)
				if len(names) == 3 {
					break
				}
			}
			reasons = append(reasons, "Detected technologies: "+strings.Join(names, ", "))
		}

		if p != nil {
			var stackMatches []string
			for _, s := range p.Stack {
				for _, kw := range e.DetectionKeywords {
					if strings.Contains(strings.ToLower(s), strings.ToLower(kw)) {
						stackMatches = append(stackMatches, s)
						break
					}
				}
			}
			if len(stackMatches) > 0 {
				if len(stackMatches) > 2 {
					stackMatches = stackMatches[:2]
				}
				reasons = append(reasons, "Matching stack: "+strings.Join(stackMatches, ", "))
			}
		}
	} else {
		switch e.ID {
		case "security-checker":
			if a != nil && a.SensitiveData {
				reasons = append(reasons, "Sensitive data detected")
			}
			if a != nil && len(a.ComplianceRequirements) > 0 {
				reasons = append(reasons, "Compliance required: "+strings.Join(a.ComplianceRequirements, ", "))
			}
		case "onboarding-guide":
			if a != nil && a.ExperienceLevel != "" {
				reasons = append(reasons, "Team level: "+a.ExperienceLevel)
			}
			if p != nil && (p.Complexity == profile.ComplexityHigh || p.Complexity == profile.ComplexityMedium) {
				reasons = append(reasons, "Project complexity: "+p.Complexity)
			}
		case "test-advisor":
			if a != nil && containsAny(a.MainPainPoints, "test", "coverage") {
				reasons = append(reasons, "Tests identified as a need")
			}
		case "perf-optimizer":
			if a != nil && containsAny(a.MainPainPoints, "performance", "slow") {
				reasons = append(reasons, "Performance identified as a priority")
			}
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("match score: %.0f%%", score*100))
	}

	return strings.Join(reasons, "; ")
}

func containsAny(items []string, needles ...string) bool {
	joined := strings.ToLower(strings.Join(items, " "))
	for _, n := range needles {
		if strings.Contains(joined, n) {
			return true
		}
	}
	return false
}
