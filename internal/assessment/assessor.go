package assessment

import (
	"strconv"
	"strings"

	"github.com/JimmyBlanquet/assistant-architect/internal/common/console"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/profile"
)

// Question is a single questionnaire step. Options nil means free-form.
type Question struct {
	ID       string
	Phase    string
	Text     string
	Options  []string
	Required bool
}

// Assessor runs the structured needs dialogue over an IO surface.
type Assessor struct {
	questions  []Question
	assessment *NeedsAssessment
	io         console.IO
	log        logger.Logger
}

// NewAssessor builds an assessor with the standard question set.
func NewAssessor(io console.IO, log logger.Logger) *Assessor {
	return &Assessor{
		questions: standardQuestions(),
		assessment: &NeedsAssessment{
			Constraints: map[string]string{},
			RawAnswers:  map[string]string{},
		},
		io:  io,
		log: log,
	}
}

// NewAdaptiveAssessor extends the standard question set based on what the
// documentation analysis learned.
func NewAdaptiveAssessor(io console.IO, log logger.Logger, p *profile.ProjectProfile) *Assessor {
	a := NewAssessor(io, log)
	a.adaptQuestions(p)
	return a
}

func standardQuestions() []Question {
	return []Question{
		{
			ID:    "team_size",
			Phase: "context",
			Text:  "How large is your development team?",
			Options: []string{
				"1-3 (small)", "4-8 (medium)", "9-20 (large)", "20+ (very large)",
			},
			Required: true,
		},
		{
			ID:    "experience_level",
			Phase: "context",
			Text:  "What is the team's average experience on this project?",
			Options: []string{
				"Junior (< 2 years)", "Intermediate (2-5 years)", "Senior (5+ years)", "Mixed",
			},
			Required: true,
		},
		{
			ID:    "main_difficulty",
			Phase: "pain_points",
			Text:  "What slows your team down the most right now?",
			Options: []string{
				"Debugging and incident resolution",
				"Code reviews and quality",
				"Writing tests",
				"Understanding existing code",
				"Documentation",
				"Other",
			},
			Required: true,
		},
		{
			ID:       "secondary_difficulties",
			Phase:    "pain_points",
			Text:     "Any other significant difficulties?",
			Required: false,
		},
		{
			ID:    "priority",
			Phase: "priorities",
			Text:  "What is your main priority?",
			Options: []string{
				"Development speed",
				"Code quality",
				"Fewer bugs",
				"Team skill growth",
				"Legacy maintenance",
			},
			Required: true,
		},
		{
			ID:    "sensitive_data",
			Phase: "constraints",
			Text:  "Does the project handle sensitive data?",
			Options: []string{
				"Yes - banking/financial data",
				"Yes - personal data (GDPR)",
				"Yes - other sensitive data",
				"No",
			},
			Required: true,
		},
		{
			ID:    "compliance",
			Phase: "constraints",
			Text:  "Are there specific compliance requirements?",
			Options: []string{
				"GDPR", "PCI-DSS", "SOC2", "Internal standards", "None", "Other",
			},
			Required: true,
		},
		{
			ID:    "workflow_preference",
			Phase: "validation",
			Text:  "How do you prefer to interact with the assistant?",
			Options: []string{
				"CLI", "VS Code / IDE", "Both",
			},
			Required: true,
		},
		{
			ID:       "confirmation",
			Phase:    "validation",
			Text:     "Is this information correct? Anything to add?",
			Required: false,
		},
	}
}

// adaptQuestions inserts profile-driven questions where they are relevant.
func (a *Assessor) adaptQuestions(p *profile.ProjectProfile) {
	if p == nil {
		return
	}

	if contains(p.Stack, "Kafka") || contains(p.Patterns, "event-driven") {
		a.insertAfter("main_difficulty", Question{
			ID:    "messaging_difficulty",
			Phase: "pain_points",
			Text:  "Do you run into difficulties with messaging/events?",
			Options: []string{
				"Yes - complex debugging", "Yes - performance", "Yes - understanding flows", "No",
			},
			Required: true,
		})
	}

	if p.Complexity == profile.ComplexityHigh {
		a.insertAfter("secondary_difficulties", Question{
			ID:    "onboarding_issue",
			Phase: "pain_points",
			Text:  "Is onboarding new developers a problem?",
			Options: []string{
				"Yes - takes very long", "Yes - documentation is lacking", "No - process works",
			},
			Required: true,
		})
	}
}

func (a *Assessor) insertAfter(id string, q Question) {
	for i, existing := range a.questions {
		if existing.ID == id {
			a.questions = append(a.questions[:i+1], append([]Question{q}, a.questions[i+1:]...)...)
			return
		}
	}
	a.questions = append(a.questions, q)
}

func contains(items []string, needle string) bool {
	for _, it := range items {
		if it == needle {
			return true
		}
	}
	return false
}

// Run walks through every question, re-prompting while a required question
// has no answer, and returns the populated assessment.
func (a *Assessor) Run() (*NeedsAssessment, error) {
	a.io.Print("Assistant Architect - Needs Assessment")
	a.io.Print("A few questions to understand what your team needs.")

	for _, q := range a.questions {
		for {
			answer, err := a.io.Prompt(formatQuestion(q))
			if err != nil {
				return nil, err
			}
			answer = strings.TrimSpace(answer)
			if answer == "" && q.Required {
				a.io.Print("This question requires an answer.")
				continue
			}
			a.processAnswer(q, resolveOption(q, answer))
			break
		}
	}

	a.log.Info("needs assessment complete", map[string]interface{}{
		"painPoints": len(a.assessment.MainPainPoints),
		"compliance": len(a.assessment.ComplianceRequirements),
	})
	return a.assessment, nil
}

func formatQuestion(q Question) string {
	var sb strings.Builder
	sb.WriteString("\n[" + strings.ToUpper(q.Phase) + "] " + q.Text + "\n")
	if len(q.Options) > 0 {
		for i, opt := range q.Options {
			sb.WriteString("  " + strconv.Itoa(i+1) + ". " + opt + "\n")
		}
		sb.WriteString("Enter the option number (or free text): ")
	} else {
		sb.WriteString("Your answer: ")
	}
	return sb.String()
}

// resolveOption maps a numeric answer back to its option text.
func resolveOption(q Question, answer string) string {
	if len(q.Options) == 0 {
		return answer
	}
	idx, err := strconv.Atoi(answer)
	if err != nil || idx < 1 || idx > len(q.Options) {
		return answer
	}
	return q.Options[idx-1]
}

func (a *Assessor) processAnswer(q Question, answer string) {
	a.assessment.RawAnswers[q.ID] = answer

	switch q.ID {
	case "team_size":
		a.assessment.TeamSize = answer
	case "experience_level":
		a.assessment.ExperienceLevel = answer
	case "main_difficulty", "messaging_difficulty", "onboarding_issue":
		a.assessment.MainPainPoints = append(a.assessment.MainPainPoints, answer)
	case "secondary_difficulties":
		if answer != "" {
			a.assessment.AdditionalContext = answer
		}
	case "priority":
		a.assessment.Priorities = append(a.assessment.Priorities, answer)
	case "sensitive_data":
		a.assessment.SensitiveData = strings.HasPrefix(strings.ToLower(answer), "yes")
		if a.assessment.SensitiveData {
			a.assessment.Constraints["data_sensitivity"] = answer
		}
	case "compliance":
		lower := strings.ToLower(answer)
		if lower != "none" && lower != "no" {
			a.assessment.ComplianceRequirements = append(a.assessment.ComplianceRequirements, answer)
		}
	case "workflow_preference":
		a.assessment.PreferredWorkflow = answer
	case "confirmation":
		if answer != "" {
			a.assessment.AdditionalContext += "\n" + answer
		}
	}
}
