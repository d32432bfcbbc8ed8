package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/vokinneberg/search-assistant/internal/agent"
	"github.com/vokinneberg/search-assistant/internal/cli"
	"github.com/vokinneberg/search-assistant/internal/config"
	"github.com/vokinneberg/search-assistant/internal/llm"
	"github.com/vokinneberg/search-assistant/internal/logger"
	"github.com/vokinneberg/search-assistant/internal/search"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Keep logs off the interactive prompt unless debugging
	level := "warn"
	if cfg.Debug {
		level = "debug"
	}
	slog.SetDefault(logger.New(os.Stderr, level, cfg.LogFormat))

	// Initialize search backend
	var backend agent.SearchBackend
	switch cfg.SearchBackend {
	case "searxng":
		backend = search.NewSearXNGBackend(cfg.SearXNGURL)
	default:
		backend = search.NewDuckDuckGoBackend()
	}

	// Initialize LLM client and search agent
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	searchAgent := agent.New(backend, llmClient, cfg.SearchLimit)

	if err := cli.Run(context.Background(), os.Stdin, os.Stdout, searchAgent); err != nil {
		slog.Error("Input error", "error", err)
		os.Exit(1)
	}
}
