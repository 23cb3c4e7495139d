package llm

import (
	"context"
	"fmt"
	"strings"
)

// StaticProvider is a deterministic offline provider used for demo runs and
// tests. It never calls the network.
type StaticProvider struct{}

// NewStatic creates the offline provider.
func NewStatic() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Name() string { return "static" }

func (p *StaticProvider) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	summary := prompt
	if len(summary) > 80 {
		summary = summary[:80]
	}
	return fmt.Sprintf("Deterministic completion for: %s", strings.TrimSpace(summary)), nil
}

func (p *StaticProvider) Chat(ctx context.Context, messages []Message, opts CompletionOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(messages) == 0 {
		return "", fmt.Errorf("chat requires at least one message")
	}
	return p.Complete(ctx, messages[len(messages)-1].Content, opts)
}

// Analyze echoes the schema keys with placeholder values so callers exercise
// their extraction paths without a live model.
func (p *StaticProvider) Analyze(ctx context.Context, content string, schema map[string]interface{}) (map[string]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make(map[string]interface{}, len(schema))
	for key, hint := range schema {
		switch hint.(type) {
		case []string, []interface{}:
			result[key] = []interface{}{}
		case map[string]interface{}:
			result[key] = map[string]interface{}{}
		default:
			result[key] = ""
		}
	}
	return result, nil
}
