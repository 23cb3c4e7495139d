// cmd/architect/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/JimmyBlanquet/assistant-architect/internal/agent"
	"github.com/JimmyBlanquet/assistant-architect/internal/catalog"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/cache"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/config"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/console"
	cerrors "github.com/JimmyBlanquet/assistant-architect/internal/common/errors"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/logger"
	"github.com/JimmyBlanquet/assistant-architect/internal/common/metrics"
	"github.com/JimmyBlanquet/assistant-architect/internal/llm"
	"github.com/JimmyBlanquet/assistant-architect/internal/pipeline"
	"github.com/JimmyBlanquet/assistant-architect/internal/profile"
)

func main() {
	nonInteractive := flag.Bool("non-interactive", false, "Run with preset answers instead of prompts")
	providerName := flag.String("provider", "", "LLM provider to use (static, genai); overrides PROVIDER_NAME")
	maxAgents := flag.Int("max-agents", 0, "Maximum number of agents to generate; overrides CATALOG_MAX_RECOMMENDATIONS")
	minScore := flag.Float64("min-score", 0, "Minimum match score for recommendations; overrides CATALOG_MIN_SCORE")
	docsPath := flag.String("docs", "", "Directory of markdown docs to analyze")
	outputDir := flag.String("output", "", "Directory to deploy generated agents into; overrides GENERATION_OUTPUT_DIR")
	exportFeedback := flag.String("export-feedback", "", "Write the feedback session as JSON to this path")
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting assistant architect...")

	if cfg.Metrics.Enabled {
		go func() {
			zapLog.Info("Metrics server listening", zap.String("port", cfg.Metrics.Port))
			if err := metrics.Serve(cfg.Metrics.Port); err != nil {
				zapLog.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	// --- Register LLM providers ---
	llm.Register("static", func() (llm.Provider, error) {
		return llm.NewStatic(), nil
	})
	if cfg.Provider.GenAIBaseURL != "" {
		llm.Register("genai", func() (llm.Provider, error) {
			return llm.NewGenAI(llm.GenAIConfig{
				BaseURL:     cfg.Provider.GenAIBaseURL,
				APIKey:      cfg.Provider.GenAIAPIKey,
				Model:       cfg.Provider.GenAIModel,
				Timeout:     time.Duration(cfg.Provider.TimeoutMs) * time.Millisecond,
				MaxTokens:   cfg.Provider.MaxTokens,
				MaxRetries:  cfg.Provider.RetryAttempts,
				Temperature: 0.7,
			}, log), nil
		})
	}

	name := cfg.Provider.Name
	if *providerName != "" {
		name = *providerName
	}
	provider, err := llm.Get(name)
	if err != nil {
		zapLog.Fatal("provider init failed", zap.Error(err),
			zap.Strings("available", llm.Names()))
	}
	zapLog.Info("Provider ready", zap.String("provider", provider.Name()))

	// --- Analysis cache (optional) ---
	var analysisCache *cache.RedisCache
	if cfg.Cache.Enabled {
		c, err := cache.NewRedis(cfg.Cache.RedisURL, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		if err != nil {
			zapLog.Warn("Redis unavailable, analysis cache disabled", zap.Error(err))
		} else {
			analysisCache = c
			defer analysisCache.Close()
			zapLog.Info("Redis connected successfully")
		}
	}

	// --- Enterprise rules (optional) ---
	var rules *agent.EnterpriseRuleSet
	if path := cfg.Generation.EnterpriseRulesPath; path != "" {
		rules, err = agent.LoadEnterpriseRules(path)
		if err != nil {
			zapLog.Fatal("enterprise rules load failed", zap.Error(err))
		}
		zapLog.Info("Enterprise rules loaded", zap.String("path", path))
	} else {
		rules = agent.DefaultSecurityRules()
	}

	// --- Assemble the pipeline ---
	cat := catalog.New()
	analyzer := profile.NewAnalyzer(provider, analysisCache, log)
	builder := agent.NewBuilder(cat, provider, log)

	opts := pipeline.Options{
		NonInteractive:          *nonInteractive,
		DocsPath:                *docsPath,
		MinScore:                cfg.Catalog.MinScore,
		MaxAgents:               cfg.Catalog.MaxRecommendations,
		OutputDir:               cfg.Generation.OutputDir,
		ExportFeedbackPath:      *exportFeedback,
		Rules:                   rules,
		SelectionMaxAttempts:    cfg.Selection.MaxPromptAttempts,
		SelectionRequireConfirm: cfg.Selection.RequireConfirm,
	}
	if *minScore > 0 {
		opts.MinScore = *minScore
	}
	if *maxAgents > 0 {
		opts.MaxAgents = *maxAgents
	} else if *nonInteractive && opts.MaxAgents > 5 {
		// Unattended runs emit at most five agents unless overridden.
		opts.MaxAgents = 5
	}
	if *outputDir != "" {
		opts.OutputDir = *outputDir
	}
	if opts.DocsPath == "" {
		// Without docs the run starts from an empty profile; the assessment
		// still drives the transversal assistants.
		opts.Profile = &profile.ProjectProfile{}
	}

	p := pipeline.New(cat, analyzer, builder, console.NewStdio(), log, opts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		zapLog.Info("Shutdown signal received, aborting run...")
		cancel()
	}()

	if err := p.Run(ctx); err != nil {
		if cerrors.IsRecoverable(err) {
			fmt.Fprintf(os.Stderr, "aborted: %v\n", err)
			os.Exit(1)
		}
		zapLog.Fatal("pipeline failed", zap.Error(err),
			zap.String("code", string(cerrors.CodeOf(err))))
	}

	zapLog.Info("Assistant architect finished", zap.String("phase", string(p.Phase())))
}
