package agent

import (
	"os"

	"gopkg.in/yaml.v3"

	stderrors "github.com/JimmyBlanquet/assistant-architect/internal/common/errors"
)

// EnterpriseRuleSet is an organization-wide policy applied to every
// generated agent.
type EnterpriseRuleSet struct {
	ID      string                 `yaml:"id" json:"id"`
	Name    string                 `yaml:"name" json:"name"`
	Enabled bool                   `yaml:"enabled" json:"enabled"`
	Actions map[string]string      `yaml:"actions" json:"actions"`
	Extra   map[string]interface{} `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// LoadEnterpriseRules reads a rule set from a YAML file.
func LoadEnterpriseRules(path string) (*EnterpriseRuleSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, stderrors.NewRulesLoadFailedError(path, err)
	}

	var rules EnterpriseRuleSet
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return nil, stderrors.NewRulesLoadFailedError(path, err)
	}
	return &rules, nil
}

// DefaultSecurityRules is the baseline data-protection rule set applied when
// no enterprise rules file is configured.
func DefaultSecurityRules() *EnterpriseRuleSet {
	return &EnterpriseRuleSet{
		ID:      "SEC-001",
		Name:    "Data protection",
		Enabled: true,
		Actions: map[string]string{
			"pii_detected":   "mask_or_reject",
			"financial_data": "reject",
			"credentials":    "reject_and_alert",
		},
	}
}
