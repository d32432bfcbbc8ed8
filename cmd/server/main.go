package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vokinneberg/search-assistant/internal/agent"
	"github.com/vokinneberg/search-assistant/internal/config"
	"github.com/vokinneberg/search-assistant/internal/llm"
	"github.com/vokinneberg/search-assistant/internal/logger"
	"github.com/vokinneberg/search-assistant/internal/search"

	httphandler "github.com/vokinneberg/search-assistant/internal/http"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Set up logging
	level := cfg.LogLevel
	if cfg.Debug {
		level = "debug"
	}
	slog.SetDefault(logger.New(os.Stderr, level, cfg.LogFormat))

	if cfg.OpenAIAPIKey == "" {
		slog.Warn("OPENAI_API_KEY is not set, all queries will use the mock answer")
	}

	// Initialize search backend
	var backend agent.SearchBackend
	switch cfg.SearchBackend {
	case "searxng":
		backend = search.NewSearXNGBackend(cfg.SearXNGURL)
	default:
		backend = search.NewDuckDuckGoBackend()
	}
	slog.Info("Initialized search backend", "backend", backend.Name())

	// Initialize LLM client
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	slog.Info("Initialized OpenAI client", "model", cfg.OpenAIModel)

	// Initialize search agent
	searchAgent := agent.New(backend, llmClient, cfg.SearchLimit)
	slog.Info("Initialized search agent", "search_limit", cfg.SearchLimit)

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(searchAgent)

	// Create router
	r := httphandler.NewRouter(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server running", "host", cfg.ServerHost, "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
