package search

import (
	"context"
	"fmt"
	"strings"
)

// Backend abstracts a web search engine.
type Backend interface {
	// Search performs a web search and returns up to count results.
	Search(ctx context.Context, query string, count int) ([]Result, error)
	// Name returns the backend identifier (e.g. "duckduckgo").
	Name() string
}

// Result represents a single search result.
type Result struct {
	Title   string
	URL     string
	Content string
}

// FormatResults converts search results to a compact text format for LLM consumption.
func FormatResults(query string, results []Result) string {
	if len(results) == 0 {
		return fmt.Sprintf("No search results found for %q.", query)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Search results for %q:\n\n", query)
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s\n   URL: %s\n   %s\n\n", i+1, r.Title, r.URL, r.Content)
	}
	return sb.String()
}
