// Package metrics exposes Prometheus instrumentation for the pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ScoringPassesTotal counts recommendation passes by outcome.
	ScoringPassesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "architect_scoring_passes_total",
			Help: "Total number of recommendation scoring passes",
		},
		[]string{"status"},
	)

	// ScoringDuration tracks how long a full scoring pass takes.
	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "architect_scoring_duration_seconds",
			Help:    "Duration of recommendation scoring passes",
			Buckets: prometheus.DefBuckets,
		},
	)

	// RecommendationsEmitted tracks how many recommendations survive ranking.
	RecommendationsEmitted = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "architect_recommendations_emitted",
			Help:    "Number of recommendations emitted per scoring pass",
			Buckets: []float64{0, 1, 2, 4, 6, 8, 12},
		},
	)

	// GenerationsTotal counts per-agent generation outcomes.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "architect_generations_total",
			Help: "Total agent generation attempts by agent type and status",
		},
		[]string{"agent_type", "status"},
	)

	// GenerationDuration tracks per-agent generation time.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "architect_generation_duration_seconds",
			Help:    "Duration of single agent generation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"agent_type"},
	)

	// DeploymentsTotal counts per-agent deployment outcomes.
	DeploymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "architect_deployments_total",
			Help: "Total agent deployment attempts by status",
		},
		[]string{"status"},
	)

	// ProviderCallsTotal counts model provider calls by provider and outcome.
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "architect_provider_calls_total",
			Help: "Total model provider calls by provider and status",
		},
		[]string{"provider", "status"},
	)

	// ProviderCallDuration tracks model provider latency.
	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "architect_provider_call_duration_seconds",
			Help:    "Duration of model provider calls",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	// CacheHitsTotal counts analysis cache hits and misses.
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "architect_analysis_cache_total",
			Help: "Analysis cache lookups by result",
		},
		[]string{"result"},
	)

	// ActivePipelines tracks concurrently running pipeline sessions.
	ActivePipelines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "architect_active_pipelines",
			Help: "Number of pipeline sessions currently running",
		},
	)
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve starts the metrics endpoint on the given port. It blocks, so callers
// run it in a goroutine.
func Serve(port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return http.ListenAndServe(":"+port, mux)
}
