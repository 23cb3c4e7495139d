// Package errors provides standardized error handling for the recommendation
// and batch generation pipeline.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Recoverable input errors - the caller should re-prompt, never abort.
	ErrCodeSelectionInvalidFormat ErrorCode = "SELECTION_INVALID_FORMAT"
	ErrCodeSelectionOutOfRange    ErrorCode = "SELECTION_OUT_OF_RANGE"
	ErrCodeSelectionNoHighMatches ErrorCode = "SELECTION_NO_HIGH_MATCHES"
	ErrCodeSelectionNoUsefulMatch ErrorCode = "SELECTION_NO_USEFUL_MATCHES"
	ErrCodeNoFeedbackAvailable    ErrorCode = "NO_FEEDBACK_AVAILABLE"
	ErrCodeProviderUnknown        ErrorCode = "PROVIDER_UNKNOWN"

	// Per-item failures - isolated at the batch boundary.
	ErrCodeAgentGenerationFailed  ErrorCode = "AGENT_GENERATION_FAILED"
	ErrCodeAgentDeploymentFailed  ErrorCode = "AGENT_DEPLOYMENT_FAILED"
	ErrCodeConfigValidationFailed ErrorCode = "CONFIG_VALIDATION_FAILED"

	// Precondition violations - caller sequencing bugs, fatal for the call.
	ErrCodePreconditionFailed ErrorCode = "PRECONDITION_FAILED"

	// Collaborator failures.
	ErrCodeAnalysisFailed  ErrorCode = "ANALYSIS_FAILED"
	ErrCodeProviderTimeout ErrorCode = "PROVIDER_TIMEOUT"
	ErrCodeRulesLoadFailed ErrorCode = "RULES_LOAD_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code        ErrorCode              `json:"code"`
	Message     string                 `json:"message"`
	Details     string                 `json:"details,omitempty"`
	Recoverable bool                   `json:"recoverable"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// IsRecoverable reports whether err is a StandardError the caller should
// recover from by re-prompting rather than aborting the pipeline.
func IsRecoverable(err error) bool {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Recoverable
	}
	return false
}

// CodeOf extracts the error code from err, or "" for foreign errors.
func CodeOf(err error) ErrorCode {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// NewSelectionInvalidFormatError creates a recoverable selection parse error.
func NewSelectionInvalidFormatError(expr string) *StandardError {
	return &StandardError{
		Code:        ErrCodeSelectionInvalidFormat,
		Message:     "Selection expression could not be parsed",
		Details:     fmt.Sprintf("expression: %q", expr),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewSelectionOutOfRangeError creates a recoverable empty-selection error.
func NewSelectionOutOfRangeError(expr string, total int) *StandardError {
	return &StandardError{
		Code:        ErrCodeSelectionOutOfRange,
		Message:     "Selection expression yielded no valid indices",
		Details:     fmt.Sprintf("expression: %q, available: 1-%d", expr, total),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewSelectionNoHighMatchesError signals that the H shortcut matched nothing.
func NewSelectionNoHighMatchesError() *StandardError {
	return &StandardError{
		Code:        ErrCodeSelectionNoHighMatches,
		Message:     "No high priority recommendations available",
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewSelectionNoUsefulMatchesError signals that the U shortcut matched nothing.
func NewSelectionNoUsefulMatchesError() *StandardError {
	return &StandardError{
		Code:        ErrCodeSelectionNoUsefulMatch,
		Message:     "No recommendations rated as useful",
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewNoFeedbackAvailableError signals the U shortcut was used without feedback.
func NewNoFeedbackAvailableError() *StandardError {
	return &StandardError{
		Code:        ErrCodeNoFeedbackAvailable,
		Message:     "No feedback available, use A or H instead",
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewProviderUnknownError creates a recoverable unknown-provider error.
func NewProviderUnknownError(name string) *StandardError {
	return &StandardError{
		Code:        ErrCodeProviderUnknown,
		Message:     "Unknown model provider",
		Details:     fmt.Sprintf("provider: %s", name),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewAgentGenerationFailedError creates a per-item generation error.
func NewAgentGenerationFailedError(agentType string, err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeAgentGenerationFailed,
		Message:     "Agent generation failed",
		Details:     fmt.Sprintf("agentType: %s, error: %s", agentType, err.Error()),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewAgentDeploymentFailedError creates a per-item deployment error.
func NewAgentDeploymentFailedError(agentName string, err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeAgentDeploymentFailed,
		Message:     "Agent deployment failed",
		Details:     fmt.Sprintf("agent: %s, error: %s", agentName, err.Error()),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewConfigValidationFailedError creates a per-item schema validation error.
func NewConfigValidationFailedError(agentName, details string) *StandardError {
	return &StandardError{
		Code:        ErrCodeConfigValidationFailed,
		Message:     "Generated agent config failed schema validation",
		Details:     fmt.Sprintf("agent: %s, %s", agentName, details),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewPreconditionFailedError creates a fatal sequencing error.
func NewPreconditionFailedError(details string) *StandardError {
	return &StandardError{
		Code:        ErrCodePreconditionFailed,
		Message:     "Pipeline precondition not met",
		Details:     details,
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewAnalysisFailedError creates a documentation analysis error.
func NewAnalysisFailedError(err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeAnalysisFailed,
		Message:     "Documentation analysis failed",
		Details:     err.Error(),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewProviderTimeoutError creates a provider call timeout error.
func NewProviderTimeoutError(provider string) *StandardError {
	return &StandardError{
		Code:        ErrCodeProviderTimeout,
		Message:     "Model provider call timed out",
		Details:     fmt.Sprintf("provider: %s", provider),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewRulesLoadFailedError creates an enterprise rules loading error.
func NewRulesLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeRulesLoadFailed,
		Message:     "Enterprise rules could not be loaded",
		Details:     fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}
