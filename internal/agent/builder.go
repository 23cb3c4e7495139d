package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JimmyBlanquet/assistant-architect/internal/assessment"
	"github.com/JimmyBlanquet/assistant-architect/internal/catalog"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/llm"
	"github.com/JimmyBlanquet/assistant-architect/internal/profile"
)

// Builder assembles a deployable agent from a recommendation plus project
// context. The model provider is optional; without it prompts come from
// templates alone.
type Builder struct {
	catalog  *catalog.Catalog
	provider llm.Provider
	log      logger.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(cat *catalog.Catalog, provider llm.Provider, log logger.Logger) *Builder {
	return &Builder{catalog: cat, provider: provider, log: log}
}

// Build produces a complete agent for one recommendation.
func (b *Builder) Build(ctx context.Context, rec catalog.Recommendation, p *profile.ProjectProfile, a *assessment.NeedsAssessment, rules *EnterpriseRuleSet) (*Generated, error) {
	projectName := p.Name
	if projectName == "" {
		projectName = "Project"
	}

	g := &Generated{
		Name:         rec.Name + " - " + projectName,
		Type:         rec.AgentType,
		SystemPrompt: b.systemPrompt(rec, p, a),
		Config:       b.config(rec, p),
		Commands:     b.commands(rec, p),
		Knowledge:    b.knowledge(p),
		Rules:        b.rules(rules),
		Hooks:        defaultHooks(),
	}

	if b.provider != nil {
		b.enrichPrompt(ctx, g, rec, p)
	}

	if err := ValidateConfig(g.Config); err != nil {
		return nil, err
	}

	return g, nil
}

// systemPrompt renders the agent's AGENT.md content.
func (b *Builder) systemPrompt(rec catalog.Recommendation, p *profile.ProjectProfile, a *assessment.NeedsAssessment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", rec.Name)
	fmt.Fprintf(&sb, "## Role\nYou are a specialized assistant: **%s**.\n", rec.Description)
	fmt.Fprintf(&sb, "You work on the project %q with a team of developers.\n\n", orDefault(p.Name, "this project"))

	sb.WriteString("## Project Context\n")
	fmt.Fprintf(&sb, "- **Stack**: %s\n", orDefault(strings.Join(p.Stack, ", "), "not specified"))
	fmt.Fprintf(&sb, "- **Patterns**: %s\n", orDefault(strings.Join(p.Patterns, ", "), "not specified"))
	fmt.Fprintf(&sb, "- **Complexity**: %s\n\n", orDefault(p.Complexity, "unknown"))

	sb.WriteString("## Team Context\n")
	fmt.Fprintf(&sb, "- **Size**: %s\n", orDefault(a.TeamSize, "not specified"))
	fmt.Fprintf(&sb, "- **Level**: %s\n", orDefault(a.ExperienceLevel, "not specified"))
	fmt.Fprintf(&sb, "- **Priorities**: %s\n\n", orDefault(strings.Join(a.Priorities, ", "), "not specified"))

	sb.WriteString("## Your Capabilities\n")
	for _, cap := range rec.Capabilities {
		fmt.Fprintf(&sb, "- **%s**: %s\n", cap.Name, cap.Description)
	}

	sb.WriteString(`
## Conduct
1. Be concise and actionable
2. Adapt the level of detail to the team's experience
3. Always propose concrete solutions
4. Respect the project's conventions
5. Flag any potential security issue
`)

	if a.SensitiveData {
		sb.WriteString(`
## SENSITIVE DATA
This project handles sensitive data. You must:
- NEVER include real data in examples
- Always use synthetic data
- Alert when exposed sensitive data is detected
`)
	}

	if len(a.ComplianceRequirements) > 0 {
		fmt.Fprintf(&sb, "\n## Compliance\nRequirements: %s\nMake sure every suggestion respects these standards.\n",
			strings.Join(a.ComplianceRequirements, ", "))
	}

	return sb.String()
}

// config produces the agent's config.json content.
func (b *Builder) config(rec catalog.Recommendation, p *profile.ProjectProfile) map[string]interface{} {
	temperature := 0.7
	if rec.AgentType == "security-checker" {
		temperature = 0.3
	}

	capNames := make([]interface{}, len(rec.Capabilities))
	for i, cap := range rec.Capabilities {
		capNames[i] = cap.Name
	}

	stack := make([]interface{}, len(p.Stack))
	for i, s := range p.Stack {
		stack[i] = s
	}

	return map[string]interface{}{
		"agent_type": rec.AgentType,
		"name":       rec.Name,
		"version":    "1.0.0",
		"llm": map[string]interface{}{
			"provider":    "genai",
			"model":       "default",
			"temperature": temperature,
			"max_tokens":  4096,
		},
		"capabilities": capNames,
		"project": map[string]interface{}{
			"stack":      stack,
			"complexity": p.Complexity,
		},
	}
}

// commands derives slash commands from the detected specializations for
// technical experts, or from the capability triggers for assistants.
func (b *Builder) commands(rec catalog.Recommendation, p *profile.ProjectProfile) map[string]string {
	commands := map[string]string{}

	entry, ok := b.catalog.Get(rec.AgentType)
	if !ok {
		return commands
	}

	if entry.Category == catalog.CategoryTechnical {
		for _, spec := range catalog.DetectSpecializations(entry, p) {
			for _, cmd := range spec.Commands {
				name := strings.TrimPrefix(cmd, "/")
				if _, exists := commands[name]; exists {
					continue
				}
				commands[name] = commandDoc(name, spec.Name, spec.Capabilities)
			}
		}
		return commands
	}

	for _, cap := range entry.BaseCapabilities {
		name := cap.Name
		commands[name] = commandDoc(name, entry.Name, []string{cap.Description})
	}
	return commands
}

func commandDoc(name, domain string, capabilities []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# /%s\n\n%s assistance.\n\n## What I do\n", name, domain)
	for _, c := range capabilities {
		fmt.Fprintf(&sb, "- %s\n", c)
	}
	fmt.Fprintf(&sb, "\n## Usage\n/%s <describe your request>\n", name)
	return sb.String()
}

// knowledge produces the agent's knowledge base files.
func (b *Builder) knowledge(p *profile.ProjectProfile) map[string]string {
	knowledge := map[string]string{}

	if p.Description != "" || len(p.Patterns) > 0 {
		var sb strings.Builder
		sb.WriteString("# Project Architecture\n\n## Description\n")
		sb.WriteString(orDefault(p.Description, "Development project") + "\n\n## Stack\n")
		for _, tech := range p.Stack {
			sb.WriteString("- " + tech + "\n")
		}
		sb.WriteString("\n## Architectural Patterns\n")
		for _, pattern := range p.Patterns {
			sb.WriteString("- " + pattern + "\n")
		}
		sb.WriteString("\n## Complexity\n" + p.Complexity + "\n")
		knowledge["architecture.md"] = sb.String()
	}

	if len(p.Conventions) > 0 {
		raw, err := json.MarshalIndent(p.Conventions, "", "  ")
		if err == nil {
			knowledge["conventions.md"] = "# Project Conventions\n\n```json\n" + string(raw) + "\n```\n"
		}
	}

	return knowledge
}

// rules merges the configured enterprise rule set with the baseline
// security rules.
func (b *Builder) rules(enterprise *EnterpriseRuleSet) map[string]interface{} {
	rules := map[string]interface{}{}
	if enterprise != nil {
		rules["enterprise"] = enterprise
	}
	rules["security"] = DefaultSecurityRules()
	return rules
}

// enrichPrompt asks the provider for a project-specific addendum to the
// system prompt. Failures leave the template prompt untouched.
func (b *Builder) enrichPrompt(ctx context.Context, g *Generated, rec catalog.Recommendation, p *profile.ProjectProfile) {
	prompt := fmt.Sprintf(
		"Write a short working-style addendum for an assistant of type %q on a %s-complexity project using: %s. Two or three sentences.",
		rec.AgentType, orDefault(p.Complexity, "unknown"), strings.Join(p.Stack, ", "),
	)

	addendum, err := b.provider.Complete(ctx, prompt, llm.CompletionOptions{MaxTokens: 256})
	if err != nil {
		b.log.WithError(err).Warn("prompt enrichment failed, using template prompt", nil)
		return
	}
	if strings.TrimSpace(addendum) != "" {
		g.SystemPrompt += "\n## Working Style\n" + strings.TrimSpace(addendum) + "\n"
	}
}

// defaultHooks returns the metric hook scripts shipped with every agent.
func defaultHooks() map[string]string {
	return map[string]string{
		"on-conversation-start": `#!/bin/bash
# Hook: on-conversation-start

echo "[$(date -Iseconds)] SESSION_START user=$USER agent=$AGENT_TYPE" >> /tmp/assistant-architect-metrics.log
`,
		"on-task-complete": `#!/bin/bash
# Hook: on-task-complete

echo "[$(date -Iseconds)] TASK_COMPLETE task=$TASK_NAME duration=$DURATION" >> /tmp/assistant-architect-metrics.log
`,
		"on-code-generated": `#!/bin/bash
# Hook: on-code-generated

echo "[$(date -Iseconds)] CODE_GENERATED file=$FILE_PATH lines=$LINE_COUNT language=$LANGUAGE" >> /tmp/assistant-architect-metrics.log
`,
	}
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
