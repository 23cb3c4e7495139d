// Package profile models what the documentation analysis learned about a
// project and provides the analyzer that builds it.
package profile

// ProjectProfile is the extracted profile of a project from its
// documentation. Fields may be empty when the source material is thin; all
// scoring downstream treats missing fields as zero contribution.
type ProjectProfile struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Stack          []string               `json:"stack"`
	Patterns       []string               `json:"patterns"`
	Complexity     string                 `json:"complexity"`
	PainPoints     []string               `json:"pain_points"`
	Conventions    map[string]interface{} `json:"conventions,omitempty"`
	Features       []string               `json:"features"`
	Dependencies   []string               `json:"dependencies"`
	TeamIndicators map[string]interface{} `json:"team_indicators,omitempty"`
	RawContent     string                 `json:"-"`
}

// Complexity levels.
const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)
