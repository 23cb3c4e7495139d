// Package batch runs agent generation and deployment over a list of
// selected recommendations with per-item failure isolation.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/JimmyBlanquet/assistant-architect/internal/agent"
	"github.com/JimmyBlanquet/assistant-architect/internal/assessment"
	"github.com/JimmyBlanquet/assistant-architect/internal/catalog"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/metrics"
	"github.com/JimmyBlanquet/assistant-architect/internal/profile"
)

// Item statuses. Every item starts pending; a batch run moves each through
// in_progress to exactly one terminal status.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusSuccess    = "success"
	StatusError      = "error"
)

// Item tracks one recommendation through the batch.
type Item struct {
	Recommendation catalog.Recommendation
	Status         string
	Agent          *agent.Generated
	Err            error
	Duration       time.Duration
}

// Result aggregates a finished batch.
type Result struct {
	Items         []Item
	TotalDuration time.Duration
}

// SuccessCount returns how many items finished successfully.
func (r *Result) SuccessCount() int {
	return r.countStatus(StatusSuccess)
}

// ErrorCount returns how many items failed.
func (r *Result) ErrorCount() int {
	return r.countStatus(StatusError)
}

// TotalCount returns the number of items in the batch.
func (r *Result) TotalCount() int {
	return len(r.Items)
}

// IsFullySuccessful reports whether no item failed.
func (r *Result) IsFullySuccessful() bool {
	return r.ErrorCount() == 0
}

// SuccessfulAgents returns the generated agents of successful items, in
// batch order.
func (r *Result) SuccessfulAgents() []*agent.Generated {
	var out []*agent.Generated
	for _, it := range r.Items {
		if it.Status == StatusSuccess {
			out = append(out, it.Agent)
		}
	}
	return out
}

func (r *Result) countStatus(status string) int {
	n := 0
	for _, it := range r.Items {
		if it.Status == status {
			n++
		}
	}
	return n
}

// ProgressFunc observes the batch after every status transition.
type ProgressFunc func(index int, item Item)

// AgentBuilder is the single-agent build surface the generator drives.
type AgentBuilder interface {
	Build(ctx context.Context, rec catalog.Recommendation, p *profile.ProjectProfile, a *assessment.NeedsAssessment, rules *agent.EnterpriseRuleSet) (*agent.Generated, error)
}

// Generator turns selected recommendations into agents, one at a time, in
// input order. One failing item never stops the batch.
type Generator struct {
	builder  AgentBuilder
	log      logger.Logger
	progress ProgressFunc
}

// NewGenerator creates a Generator. progress may be nil.
func NewGenerator(builder AgentBuilder, log logger.Logger, progress ProgressFunc) *Generator {
	return &Generator{builder: builder, log: log, progress: progress}
}

// Run executes the batch. All items are initialized to pending before any
// work starts, then processed strictly in order.
func (g *Generator) Run(ctx context.Context, recs []catalog.Recommendation, p *profile.ProjectProfile, a *assessment.NeedsAssessment, rules *agent.EnterpriseRuleSet) *Result {
	result := &Result{Items: make([]Item, len(recs))}
	for i, rec := range recs {
		result.Items[i] = Item{Recommendation: rec, Status: StatusPending}
	}

	batchStart := time.Now()

	for i := range result.Items {
		g.transition(result, i, func(it *Item) {
			it.Status = StatusInProgress
		})

		itemStart := time.Now()
		built, err := g.buildOne(ctx, result.Items[i].Recommendation, p, a, rules)
		elapsed := time.Since(itemStart)

		g.transition(result, i, func(it *Item) {
			it.Duration = elapsed
			if err != nil {
				it.Status = StatusError
				it.Err = err
			} else {
				it.Status = StatusSuccess
				it.Agent = built
			}
		})

		agentType := result.Items[i].Recommendation.AgentType
		metrics.GenerationDuration.WithLabelValues(agentType).Observe(elapsed.Seconds())
		if err != nil {
			metrics.GenerationsTotal.WithLabelValues(agentType, StatusError).Inc()
			g.log.WithError(err).Error("agent generation failed", map[string]interface{}{
				"agentType": agentType,
				"index":     i,
			})
		} else {
			metrics.GenerationsTotal.WithLabelValues(agentType, StatusSuccess).Inc()
		}
	}

	result.TotalDuration = time.Since(batchStart)

	g.log.Info("generation batch finished", map[string]interface{}{
		"success":  result.SuccessCount(),
		"errors":   result.ErrorCount(),
		"total":    result.TotalCount(),
		"duration": result.TotalDuration.String(),
	})
	return result
}

// buildOne isolates a single build, converting panics into per-item errors
// so a misbehaving builder cannot take down the batch.
func (g *Generator) buildOne(ctx context.Context, rec catalog.Recommendation, p *profile.ProjectProfile, a *assessment.NeedsAssessment, rules *agent.EnterpriseRuleSet) (built *agent.Generated, err error) {
	defer func() {
		if r := recover(); r != nil {
			built = nil
			err = fmt.Errorf("builder panic: %v", r)
		}
	}()
	return g.builder.Build(ctx, rec, p, a, rules)
}

// transition applies a status change and notifies the progress observer.
func (g *Generator) transition(result *Result, index int, apply func(*Item)) {
	apply(&result.Items[index])
	if g.progress != nil {
		g.progress(index, result.Items[index])
	}
}
