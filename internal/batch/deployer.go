package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JimmyBlanquet/assistant-architect/internal/agent"
	stderrors "github.com/JimmyBlanquet/assistant-architect/internal/common/errors"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/metrics"
)

// Deployment tracks one agent through deployment.
type Deployment struct {
	Agent    *agent.Generated
	Status   string
	Path     string
	Err      error
	Duration time.Duration
}

// DeployResult aggregates a finished deployment batch.
type DeployResult struct {
	Deployments   []Deployment
	OutputDir     string
	TotalDuration time.Duration
}

// SuccessCount returns how many agents deployed successfully.
func (r *DeployResult) SuccessCount() int {
	n := 0
	for _, d := range r.Deployments {
		if d.Status == StatusSuccess {
			n++
		}
	}
	return n
}

// ErrorCount returns how many agents failed to deploy.
func (r *DeployResult) ErrorCount() int {
	return len(r.Deployments) - r.SuccessCount()
}

// IsFullySuccessful reports whether every agent deployed.
func (r *DeployResult) IsFullySuccessful() bool {
	return r.ErrorCount() == 0
}

// DeployProgressFunc observes deployment after every status transition.
type DeployProgressFunc func(index int, d Deployment)

// Deployer writes generated agents to the destination directory with the
// same per-item isolation as the generator.
type Deployer struct {
	outputDir string
	log       logger.Logger
	progress  DeployProgressFunc
}

// NewDeployer creates a Deployer targeting outputDir. progress may be nil.
func NewDeployer(outputDir string, log logger.Logger, progress DeployProgressFunc) *Deployer {
	return &Deployer{outputDir: outputDir, log: log, progress: progress}
}

// Run deploys every agent in order. The destination directory is created
// first; a failing item never stops the batch.
func (d *Deployer) Run(agents []*agent.Generated) (*DeployResult, error) {
	if err := os.MkdirAll(d.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", d.outputDir, err)
	}

	result := &DeployResult{
		Deployments: make([]Deployment, len(agents)),
		OutputDir:   d.outputDir,
	}
	for i, a := range agents {
		result.Deployments[i] = Deployment{Agent: a, Status: StatusPending}
	}

	batchStart := time.Now()

	for i := range result.Deployments {
		d.transition(result, i, func(dep *Deployment) {
			dep.Status = StatusInProgress
		})

		itemStart := time.Now()
		path, err := d.deployOne(result.Deployments[i].Agent)
		elapsed := time.Since(itemStart)

		d.transition(result, i, func(dep *Deployment) {
			dep.Duration = elapsed
			if err != nil {
				dep.Status = StatusError
				dep.Err = err
			} else {
				dep.Status = StatusSuccess
				dep.Path = path
			}
		})

		if err != nil {
			metrics.DeploymentsTotal.WithLabelValues(StatusError).Inc()
			d.log.WithError(err).Error("agent deployment failed", map[string]interface{}{
				"agent": result.Deployments[i].Agent.Name,
			})
		} else {
			metrics.DeploymentsTotal.WithLabelValues(StatusSuccess).Inc()
		}
	}

	result.TotalDuration = time.Since(batchStart)

	d.log.Info("deployment batch finished", map[string]interface{}{
		"success":   result.SuccessCount(),
		"errors":    result.ErrorCount(),
		"total":     len(result.Deployments),
		"outputDir": d.outputDir,
	})
	return result, nil
}

// deployOne writes a single agent and isolates panics the same way the
// generator does.
func (d *Deployer) deployOne(a *agent.Generated) (path string, err error) {
	defer func() {
		if r := recover(); r != nil {
			path = ""
			err = stderrors.NewAgentDeploymentFailedError(a.Name, fmt.Errorf("writer panic: %v", r))
		}
	}()

	if _, werr := a.WriteTo(d.outputDir); werr != nil {
		return "", stderrors.NewAgentDeploymentFailedError(a.Name, werr)
	}
	return filepath.Join(d.outputDir, a.DirName()), nil
}

func (d *Deployer) transition(result *DeployResult, index int, apply func(*Deployment)) {
	apply(&result.Deployments[index])
	if d.progress != nil {
		d.progress(index, result.Deployments[index])
	}
}
