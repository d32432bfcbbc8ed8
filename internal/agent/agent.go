package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vokinneberg/search-assistant/internal/search"
)

//go:generate mockgen -source=agent.go -destination=mock_searchbackend.go -package=agent SearchBackend

// SearchBackend defines the interface for web search operations
type SearchBackend interface {
	Search(ctx context.Context, query string, count int) ([]search.Result, error)
	Name() string
}

//go:generate mockgen -source=agent.go -destination=mock_llmclient.go -package=agent LLMClient

// LLMClient defines the interface for LLM summarization
type LLMClient interface {
	Summarize(ctx context.Context, searchResults, query string) (string, error)
}

// Agent answers search queries by combining a web search backend with LLM
// summarization. It never fails: any error in the pipeline is converted into
// a deterministic mock answer.
type Agent struct {
	backend     SearchBackend
	llmClient   LLMClient
	searchLimit int
}

// New creates a new search agent
func New(backend SearchBackend, llmClient LLMClient, searchLimit int) *Agent {
	return &Agent{
		backend:     backend,
		llmClient:   llmClient,
		searchLimit: searchLimit,
	}
}

// Answer produces an answer for the query. On any pipeline failure it
// returns the mock answer instead of an error, so callers always get text
// to render.
func (a *Agent) Answer(ctx context.Context, query string) string {
	answer, err := a.answer(ctx, query)
	if err != nil {
		slog.Warn("Falling back to mock answer", "error", err, "query", query)
		return MockResponse(query)
	}
	return answer
}

// answer runs the fallible pipeline: search, format, summarize, clean.
func (a *Agent) answer(ctx context.Context, query string) (string, error) {
	results, err := a.backend.Search(ctx, query, a.searchLimit)
	if err != nil {
		return "", fmt.Errorf("web search failed: %w", err)
	}

	resultsText := search.FormatResults(query, results)

	raw, err := a.llmClient.Summarize(ctx, resultsText, query)
	if err != nil {
		return "", fmt.Errorf("failed to summarize results: %w", err)
	}

	return CleanResponse(raw), nil
}

// MockResponse returns a deterministic substitute answer for the query, used
// when the live search pipeline is unavailable. The text echoes the query and
// carries a recognizable marker so it is distinguishable from a real answer.
func MockResponse(query string) string {
	return fmt.Sprintf(`Based on available information about %q, I can provide the following response:

This is a mock search response because the live search service is unavailable. For accurate, up-to-date information, please ensure API connections are working.

To get real search results:
1. Check your API key configuration
2. Verify network connectivity
3. Ensure the search service endpoints are accessible`, query)
}
