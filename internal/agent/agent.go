// Package agent builds deployable agent definitions out of recommendations
// and writes them to disk.
package agent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Generated is a fully built agent ready for deployment.
type Generated struct {
	Name         string                 `json:"name"`
	Type         string                 `json:"type"`
	SystemPrompt string                 `json:"system_prompt"`
	Config       map[string]interface{} `json:"config"`
	Commands     map[string]string      `json:"commands"`
	Knowledge    map[string]string      `json:"knowledge"`
	Rules        map[string]interface{} `json:"rules"`
	Hooks        map[string]string      `json:"hooks"`
}

// DirName is the directory the agent materializes into under the output
// root.
func (g *Generated) DirName() string {
	return "agent-" + strings.ReplaceAll(strings.ToLower(g.Name), " ", "-")
}

// WriteTo materializes the agent as a directory tree: AGENT.md, config.json,
// commands/, knowledge/, rules/ and hooks/. It returns the created file
// paths keyed by artifact name.
func (g *Generated) WriteTo(outputDir string) (map[string]string, error) {
	agentDir := filepath.Join(outputDir, g.DirName())
	if err := os.MkdirAll(agentDir, 0o755); err != nil {
		return nil, fmt.Errorf("create agent dir: %w", err)
	}

	created := map[string]string{}

	agentMD := filepath.Join(agentDir, "AGENT.md")
	if err := os.WriteFile(agentMD, []byte(g.SystemPrompt), 0o644); err != nil {
		return nil, fmt.Errorf("write AGENT.md: %w", err)
	}
	created["system_prompt"] = agentMD

	configJSON, err := json.MarshalIndent(g.Config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	configFile := filepath.Join(agentDir, "config.json")
	if err := os.WriteFile(configFile, configJSON, 0o644); err != nil {
		return nil, fmt.Errorf("write config.json: %w", err)
	}
	created["config"] = configFile

	if len(g.Commands) > 0 {
		dir := filepath.Join(agentDir, "commands")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		for name, content := range g.Commands {
			path := filepath.Join(dir, name+".md")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return nil, fmt.Errorf("write command %s: %w", name, err)
			}
			created["command_"+name] = path
		}
	}

	if len(g.Knowledge) > 0 {
		dir := filepath.Join(agentDir, "knowledge")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		for filename, content := range g.Knowledge {
			path := filepath.Join(dir, filename)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return nil, fmt.Errorf("write knowledge %s: %w", filename, err)
			}
			created["knowledge_"+filename] = path
		}
	}

	if len(g.Rules) > 0 {
		dir := filepath.Join(agentDir, "rules")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		for name, content := range g.Rules {
			path, err := writeRule(dir, name, content)
			if err != nil {
				return nil, err
			}
			created["rule_"+name] = path
		}
	}

	if len(g.Hooks) > 0 {
		dir := filepath.Join(agentDir, "hooks")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		for name, content := range g.Hooks {
			path := filepath.Join(dir, name+".sh")
			if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
				return nil, fmt.Errorf("write hook %s: %w", name, err)
			}
			created["hook_"+name] = path
		}
	}

	return created, nil
}

// writeRule serializes structured rules as YAML and plain text rules as
// markdown.
func writeRule(dir, name string, content interface{}) (string, error) {
	if s, ok := content.(string); ok {
		path := filepath.Join(dir, name+".md")
		if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
			return "", fmt.Errorf("write rule %s: %w", name, err)
		}
		return path, nil
	}

	raw, err := yaml.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("marshal rule %s: %w", name, err)
	}
	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write rule %s: %w", name, err)
	}
	return path, nil
}
