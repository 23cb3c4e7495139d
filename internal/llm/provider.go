// Package llm abstracts model providers behind a small interface so the
// pipeline can run against a hosted API or fully offline.
package llm

import (
	"context"

	stderrors "github.com/JimmyBlanquet/assistant-architect/internal/common/errors"
)

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionOptions tune a single provider call.
type CompletionOptions struct {
	MaxTokens   int
	Temperature float64
}

// Provider is the model surface the pipeline depends on.
type Provider interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// Complete returns a free-form completion for a prompt.
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
	// Chat returns a completion for a multi-turn conversation.
	Chat(ctx context.Context, messages []Message, opts CompletionOptions) (string, error)
	// Analyze extracts structured data from content guided by a schema hint.
	Analyze(ctx context.Context, content string, schema map[string]interface{}) (map[string]interface{}, error)
}

// Factory builds a provider from its configuration.
type Factory func() (Provider, error)

type registry struct {
	factories map[string]Factory
	order     []string
}

var providers = &registry{factories: map[string]Factory{}}

// Register adds a named provider factory. Later registrations replace
// earlier ones with the same name.
func Register(name string, f Factory) {
	if _, exists := providers.factories[name]; !exists {
		providers.order = append(providers.order, name)
	}
	providers.factories[name] = f
}

// Get builds the provider registered under name. An unknown name yields a
// recoverable error so the caller can fall back or re-prompt.
func Get(name string) (Provider, error) {
	f, ok := providers.factories[name]
	if !ok {
		return nil, stderrors.NewProviderUnknownError(name)
	}
	return f()
}

// Names lists registered provider names in registration order.
func Names() []string {
	out := make([]string, len(providers.order))
	copy(out, providers.order)
	return out
}
