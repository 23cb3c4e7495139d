package catalog

import (
	"strings"

	"github.com/JimmyBlanquet/assistant-architect/internal/assessment"
	"github.com/JimmyBlanquet/assistant-architect/internal/profile"
)

// Scoring is pure: missing or malformed profile fields contribute zero and
// never produce an error.

// DetectSpecializations returns the specializations whose keywords appear in
// the project's stack, patterns, dependencies or raw documentation. One
// keyword match is enough per specialization.
func DetectSpecializations(e *Entry, p *profile.ProjectProfile) []Specialization {
	if e == nil || p == nil || len(e.Specializations) == 0 {
		return nil
	}

	haystack := strings.ToLower(strings.Join([]string{
		strings.Join(p.Stack, " "),
		strings.Join(p.Patterns, " "),
		strings.Join(p.Dependencies, " "),
		strings.ToLower(p.RawContent),
	}, " "))

	var detected []Specialization
	for _, spec := range e.Specializations {
		for _, kw := range spec.Keywords {
			if strings.Contains(haystack, strings.ToLower(kw)) {
				detected = append(detected, spec)
				break
			}
		}
	}
	return detected
}

// ScoreExpert computes the relevance of a technical expert: detection
// keyword hits (0.4 max), detected specializations (0.4 max) and pain-point
// alignment with the base capabilities (0.1 flat).
func ScoreExpert(e *Entry, p *profile.ProjectProfile, a *assessment.NeedsAssessment) float64 {
	if e == nil || p == nil {
		return 0
	}

	score := 0.0

	profileText := strings.ToLower(strings.Join([]string{
		strings.Join(p.Stack, " "),
		strings.Join(p.Patterns, " "),
		strings.Join(p.Features, " "),
		p.Description,
	}, " "))

	keywordMatches := 0
	for _, kw := range e.DetectionKeywords {
		if strings.Contains(profileText, strings.ToLower(kw)) {
			keywordMatches++
		}
	}
	if keywordMatches > 0 {
		score += minFloat(0.4, float64(keywordMatches)*0.1)
	}

	if specs := DetectSpecializations(e, p); len(specs) > 0 {
		score += minFloat(0.4, float64(len(specs))*0.15)
	}

	if a != nil && len(a.MainPainPoints) > 0 {
		painText := strings.ToLower(strings.Join(a.MainPainPoints, " "))
		for _, cap := range e.BaseCapabilities {
			if strings.Contains(painText, strings.ToLower(cap.Trigger)) {
				score += 0.1
				break
			}
		}
	}

	return minFloat(score, 1.0)
}

// ScoreAssistant computes the relevance of a transversal assistant from
// fixed per-assistant assessment rules plus a profile keyword bonus.
func ScoreAssistant(e *Entry, p *profile.ProjectProfile, a *assessment.NeedsAssessment) float64 {
	if e == nil {
		return 0
	}

	score := 0.0

	var painText, experience, complexity string
	if a != nil {
		painText = strings.ToLower(strings.Join(a.MainPainPoints, " "))
		experience = strings.ToLower(a.ExperienceLevel)
	}
	if p != nil {
		complexity = p.Complexity
	}

	switch e.ID {
	case "security-checker":
		if a != nil && a.SensitiveData {
			score += 0.5
		}
		if a != nil && len(a.ComplianceRequirements) > 0 {
			score += 0.3
		}
	case "onboarding-guide":
		if strings.Contains(experience, "mixed") {
			score += 0.3
		}
		if strings.Contains(experience, "junior") {
			score += 0.4
		}
		if complexity == profile.ComplexityHigh || complexity == profile.ComplexityMedium {
			score += 0.2
		}
	case "doc-generator":
		if strings.Contains(painText, "documentation") || strings.Contains(painText, "doc") {
			score += 0.5
		}
	case "refactoring-advisor":
		if strings.Contains(painText, "debt") || strings.Contains(painText, "legacy") || strings.Contains(painText, "refactor") {
			score += 0.5
		}
		if complexity == profile.ComplexityHigh {
			score += 0.2
		}
	case "perf-optimizer":
		if strings.Contains(painText, "performance") || strings.Contains(painText, "slow") {
			score += 0.5
		}
	case "test-advisor":
		if strings.Contains(painText, "test") || strings.Contains(painText, "coverage") {
			score += 0.5
		}
	}

	if p != nil {
		profileText := strings.ToLower(strings.Join([]string{
			strings.Join(p.PainPoints, " "),
			p.Description,
		}, " "))
		for _, kw := range e.DetectionKeywords {
			if strings.Contains(profileText, strings.ToLower(kw)) {
				score += 0.1
			}
		}
	}

	return minFloat(score, 1.0)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
