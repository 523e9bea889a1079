package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seaboard/crewmatch/internal/anonymize"
	"github.com/seaboard/crewmatch/internal/config"
	"github.com/seaboard/crewmatch/internal/embedding"
	"github.com/seaboard/crewmatch/internal/judge"
	"github.com/seaboard/crewmatch/internal/llm"
	"github.com/seaboard/crewmatch/internal/logger"
	"github.com/seaboard/crewmatch/internal/pipeline"
	"github.com/seaboard/crewmatch/internal/rerank"
	"github.com/seaboard/crewmatch/internal/scoring"
	"github.com/seaboard/crewmatch/internal/server"
	"github.com/seaboard/crewmatch/internal/store"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the match endpoint for candidate search briefs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	llmClient, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = llmClient.Close() }()

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, "")
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	defer func() { _ = embedder.Close() }()

	matcher := &pipeline.Matcher{
		Store:       store.NewCandidateRepo(db),
		Embedder:    embedder,
		LLM:         llmClient,
		Judge:       judge.NewLLMJudge(llmClient, 20*time.Second),
		Presenter:   anonymize.NewPresenter(llmClient, 20*time.Second),
		Weights:     scoring.DefaultWeights(),
		Log:         log,
		Concurrency: cfg.Concurrency,
		PoolSize:    cfg.PoolSize,
	}
	if cfg.RerankerURL != "" {
		matcher.Reranker = rerank.NewHTTPReranker(cfg.RerankerURL, 5*time.Second)
	}

	srv := server.New(server.Config{Port: cfg.Port, Env: cfg.Environment}, matcher, log)
	return srv.Start()
}
