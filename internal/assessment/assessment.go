// Package assessment captures what the team actually needs, either through
// an interactive questionnaire or a preset used for non-interactive runs.
package assessment

// NeedsAssessment is the outcome of the needs dialogue.
type NeedsAssessment struct {
	TeamSize               string            `json:"team_size"`
	ExperienceLevel        string            `json:"experience_level"`
	MainPainPoints         []string          `json:"main_pain_points"`
	Priorities             []string          `json:"priorities"`
	Constraints            map[string]string `json:"constraints,omitempty"`
	SensitiveData          bool              `json:"sensitive_data"`
	ComplianceRequirements []string          `json:"compliance_requirements"`
	PreferredWorkflow      string            `json:"preferred_workflow"`
	AdditionalContext      string            `json:"additional_context"`
	RawAnswers             map[string]string `json:"raw_answers,omitempty"`
}

// Preset returns the assessment used in non-interactive mode: a mid-size
// mixed team focused on testing and legacy maintenance.
func Preset() *NeedsAssessment {
	return &NeedsAssessment{
		TeamSize:        "4-8 (medium)",
		ExperienceLevel: "Mixed",
		MainPainPoints: []string{
			"Writing tests",
			"Understanding legacy code",
			"Documentation",
		},
		Priorities: []string{
			"Code quality",
			"Team skill growth",
		},
		SensitiveData:          true,
		ComplianceRequirements: []string{"GDPR"},
		PreferredWorkflow:      "CLI",
	}
}
