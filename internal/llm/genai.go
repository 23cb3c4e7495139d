package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	stderrors "github.com/JimmyBlanquet/assistant-architect/internal/common/errors"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/metrics"
)

// GenAIConfig parameterizes the hosted generation API client.
type GenAIConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	MaxRetries  int
	Temperature float64
}

// GenAIProvider calls a hosted generation API over HTTP.
type GenAIProvider struct {
	config GenAIConfig
	client *http.Client
	log    logger.Logger
}

// NewGenAI creates the HTTP-backed provider. Request timeouts come from the
// per-call context, not the client.
func NewGenAI(cfg GenAIConfig, log logger.Logger) *GenAIProvider {
	return &GenAIProvider{
		config: cfg,
		client: &http.Client{},
		log:    log.WithFields(map[string]interface{}{"provider": "genai"}),
	}
}

func (p *GenAIProvider) Name() string { return "genai" }

func (p *GenAIProvider) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	body := map[string]interface{}{
		"prompt":      prompt,
		"model":       p.config.Model,
		"max_tokens":  p.maxTokens(opts),
		"temperature": opts.Temperature,
	}
	return p.generate(ctx, body)
}

func (p *GenAIProvider) Chat(ctx context.Context, messages []Message, opts CompletionOptions) (string, error) {
	body := map[string]interface{}{
		"messages":    messages,
		"model":       p.config.Model,
		"max_tokens":  p.maxTokens(opts),
		"temperature": opts.Temperature,
	}
	return p.generate(ctx, body)
}

func (p *GenAIProvider) Analyze(ctx context.Context, content string, schema map[string]interface{}) (map[string]interface{}, error) {
	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema is not serializable: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Extract structured information from the content below.\n")
	sb.WriteString("Respond with a single JSON object matching this shape:\n")
	sb.Write(schemaJSON)
	sb.WriteString("\n\nContent:\n")
	sb.WriteString(content)
	sb.WriteString("\n\nJSON:")

	raw, err := p.Complete(ctx, sb.String(), CompletionOptions{})
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &result); err != nil {
		return nil, fmt.Errorf("model response is not valid JSON: %w", err)
	}
	return result, nil
}

func (p *GenAIProvider) maxTokens(opts CompletionOptions) int {
	if opts.MaxTokens > 0 {
		return opts.MaxTokens
	}
	return p.config.MaxTokens
}

// generate posts the request with context timeout and exponential backoff
// retries on transport errors and non-200 statuses.
func (p *GenAIProvider) generate(ctx context.Context, requestBody map[string]interface{}) (string, error) {
	callStart := time.Now()
	defer func() {
		metrics.ProviderCallDuration.WithLabelValues("genai").Observe(time.Since(callStart).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	payload, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("request is not serializable: %w", err)
	}

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= p.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				metrics.ProviderCallsTotal.WithLabelValues("genai", "timeout").Inc()
				return "", stderrors.NewProviderTimeoutError("genai")
			}
		}

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, p.config.BaseURL+"/api/ai/generate", bytes.NewReader(payload))
		if reqErr != nil {
			return "", fmt.Errorf("build request: %w", reqErr)
		}
		req.Header.Set("Content-Type", "application/json")
		if p.config.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+p.config.APIKey)
		}

		resp, lastErr = p.client.Do(req)
		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}

		if ctx.Err() != nil {
			metrics.ProviderCallsTotal.WithLabelValues("genai", "timeout").Inc()
			return "", stderrors.NewProviderTimeoutError("genai")
		}
	}

	if lastErr != nil {
		metrics.ProviderCallsTotal.WithLabelValues("genai", "error").Inc()
		if ctx.Err() == context.DeadlineExceeded {
			return "", stderrors.NewProviderTimeoutError("genai")
		}
		return "", fmt.Errorf("generation request failed: %w", lastErr)
	}
	if resp == nil {
		metrics.ProviderCallsTotal.WithLabelValues("genai", "error").Inc()
		return "", fmt.Errorf("no successful response after %d attempts", p.config.MaxRetries+1)
	}
	defer resp.Body.Close()

	var apiResponse struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("genai", "error").Inc()
		return "", fmt.Errorf("decode response: %w", err)
	}

	metrics.ProviderCallsTotal.WithLabelValues("genai", "success").Inc()
	return apiResponse.Text, nil
}

// extractJSON strips markdown fences and surrounding prose from a model
// response that should contain one JSON object.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
		s = strings.TrimPrefix(s, "json")
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
