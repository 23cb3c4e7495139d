package agent

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	stderrors "github.com/JimmyBlanquet/assistant-architect/internal/common/errors"
)

// configSchema describes the shape every generated config.json must have
// before an agent is allowed to deploy.
const configSchema = `{
	"type": "object",
	"required": ["agent_type", "name", "version", "llm", "capabilities"],
	"properties": {
		"agent_type": {"type": "string", "minLength": 1},
		"name": {"type": "string", "minLength": 1},
		"version": {"type": "string", "pattern": "^\\d+\\.\\d+\\.\\d+$"},
		"llm": {
			"type": "object",
			"required": ["provider", "model", "temperature", "max_tokens"],
			"properties": {
				"provider": {"type": "string", "minLength": 1},
				"model": {"type": "string", "minLength": 1},
				"temperature": {"type": "number", "minimum": 0, "maximum": 2},
				"max_tokens": {"type": "integer", "minimum": 1}
			}
		},
		"capabilities": {
			"type": "array",
			"items": {"type": "string"}
		},
		"project": {
			"type": "object",
			"properties": {
				"stack": {"type": "array", "items": {"type": "string"}},
				"complexity": {"type": "string"}
			}
		}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(configSchema)

// ValidateConfig checks a generated agent config against the schema.
func ValidateConfig(config map[string]interface{}) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(config))
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var details []string
	for _, e := range result.Errors() {
		details = append(details, e.String())
	}

	name, _ := config["name"].(string)
	return stderrors.NewConfigValidationFailedError(name, strings.Join(details, "; "))
}
