package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ilomad/portfolio-assistant/internal/api/handlers"
	"github.com/ilomad/portfolio-assistant/internal/config"
	"github.com/ilomad/portfolio-assistant/internal/jobs"
	"github.com/ilomad/portfolio-assistant/internal/knowledge"
	"github.com/ilomad/portfolio-assistant/internal/llm"
	"github.com/ilomad/portfolio-assistant/internal/server"
	"github.com/ilomad/portfolio-assistant/internal/service"
	"github.com/ilomad/portfolio-assistant/internal/telemetry"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the portfolio assistant API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize Sentry with tracing if SENTRY_DSN is set
	if cfg.SentryDSN != "" {
		// Default to 10% sampling in production, 100% in development
		sampleRate := 0.1
		if cfg.Environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			TracesSampleRate: sampleRate,
			Debug:            cfg.Debug,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	overridePort(cmd, cfg)

	corpus, err := knowledge.Load(cfg.KnowledgePath)
	if err != nil {
		return fmt.Errorf("failed to load knowledge corpus: %w", err)
	}
	if corpus.Len() == 0 {
		log.Println("warning: knowledge corpus is empty, answers will degrade to the generic fallback")
	} else {
		log.Printf("knowledge corpus loaded: %d chunks", corpus.Len())
	}

	bank, err := service.LoadResponseBank()
	if err != nil {
		return fmt.Errorf("failed to load response bank: %w", err)
	}

	source := llm.NewSource()
	if cfg.HasOpenAI() {
		log.Println("embedding provider configured: semantic search enabled")
	} else {
		log.Println("no embedding provider configured: keyword search only")
	}
	switch {
	case cfg.HasGroq():
		log.Println("chat provider configured: groq")
	case cfg.HasOpenAI():
		log.Println("chat provider configured: openai")
	default:
		log.Println("no chat provider configured: templated answers only")
	}

	keyword := service.NewKeywordSearcher(corpus.Chunks())
	semantic := service.NewSemanticSearcher(corpus.Chunks(), &embedderSourceAdapter{source: source}, keyword)

	responder := service.NewResponder(service.ResponderConfig{
		Semantic:    semantic,
		Keyword:     keyword,
		Chat:        &chatSourceAdapter{source: source},
		Bank:        bank,
		CallTimeout: cfg.LLMTimeout,
	})

	var warmWorker *jobs.Worker
	if cfg.EmbedWarmInterval > 0 && cfg.HasOpenAI() {
		warmWorker = jobs.NewWorker(jobs.NewCacheWarmer(semantic), cfg.EmbedWarmInterval)
		go warmWorker.Start(ctx)
		log.Printf("embedding cache warmer started (interval: %v)", cfg.EmbedWarmInterval)
	}

	routerCfg := server.RouterConfig{
		ChatHandler: handlers.NewChatHandler(responder),
	}

	router := server.NewRouter(routerCfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	if warmWorker != nil {
		warmWorker.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}

// overridePort applies an explicitly set --port flag over the configured
// port. Changed distinguishes "-p 8080" from the flag default, so the flag
// wins even when it matches the default value.
func overridePort(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("port") {
		return
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}
}

// embedderSourceAdapter bridges llm.Source to the service interface. The nil
// check matters: returning a typed nil pointer directly would make the
// interface non-nil.
type embedderSourceAdapter struct {
	source *llm.Source
}

func (a *embedderSourceAdapter) Embedder() service.EmbeddingClient {
	if client := a.source.EmbeddingClient(); client != nil {
		return client
	}
	return nil
}

type chatSourceAdapter struct {
	source *llm.Source
}

func (a *chatSourceAdapter) Chat() service.ChatClient {
	if client := a.source.ChatClient(); client != nil {
		return client
	}
	return nil
}
