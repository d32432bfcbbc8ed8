package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const ddgUserAgent = "search-assistant/1.0"

// ddgResponse models the relevant portion of the DuckDuckGo Instant Answer
// API response.
type ddgResponse struct {
	AbstractText   string `json:"AbstractText"`
	AbstractSource string `json:"AbstractSource"`
	AbstractURL    string `json:"AbstractURL"`
	Answer         string `json:"Answer"`
	AnswerType     string `json:"AnswerType"`
	Definition     string `json:"Definition"`
	DefinitionURL  string `json:"DefinitionURL"`
	Heading        string `json:"Heading"`
	RelatedTopics  []struct {
		FirstURL string `json:"FirstURL"`
		Text     string `json:"Text"`
	} `json:"RelatedTopics"`
}

// DuckDuckGoBackend searches the web via the free, unauthenticated DuckDuckGo
// Instant Answer API.
type DuckDuckGoBackend struct {
	client  *http.Client
	baseURL string
}

// NewDuckDuckGoBackend creates a search backend backed by the DuckDuckGo
// Instant Answer API. It requires no API key.
func NewDuckDuckGoBackend() *DuckDuckGoBackend {
	return &DuckDuckGoBackend{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: "https://api.duckduckgo.com/",
	}
}

func (b *DuckDuckGoBackend) Name() string { return "duckduckgo" }

func (b *DuckDuckGoBackend) Search(ctx context.Context, query string, count int) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", ddgUserAgent)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSearchBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("search failed (HTTP %d): %s", resp.StatusCode, string(body))
	}

	var ddgResp ddgResponse
	if err := json.Unmarshal(body, &ddgResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	results := collectDDGResults(ddgResp, count)

	slog.Debug("duckduckgo search completed", "query", query, "results", len(results))
	return results, nil
}

// collectDDGResults flattens the instant-answer sections into search results,
// in order of usefulness: abstract, direct answer, definition, related topics.
func collectDDGResults(r ddgResponse, count int) []Result {
	results := make([]Result, 0, count)

	if r.AbstractText != "" {
		results = append(results, Result{
			Title:   r.Heading,
			URL:     makeAbsoluteURL(r.AbstractURL),
			Content: r.AbstractText,
		})
	}
	if r.Answer != "" {
		results = append(results, Result{
			Title:   "Answer",
			Content: r.Answer,
		})
	}
	if r.Definition != "" {
		results = append(results, Result{
			Title:   "Definition",
			URL:     makeAbsoluteURL(r.DefinitionURL),
			Content: r.Definition,
		})
	}
	for _, topic := range r.RelatedTopics {
		if len(results) >= count {
			break
		}
		if topic.Text == "" {
			continue
		}
		results = append(results, Result{
			Title:   "Related topic",
			URL:     makeAbsoluteURL(topic.FirstURL),
			Content: topic.Text,
		})
	}

	if len(results) > count {
		results = results[:count]
	}
	return results
}

// makeAbsoluteURL converts relative DuckDuckGo URLs to absolute URLs
func makeAbsoluteURL(urlPath string) string {
	if urlPath == "" {
		return ""
	}
	if strings.HasPrefix(urlPath, "http://") || strings.HasPrefix(urlPath, "https://") {
		return urlPath
	}
	if strings.HasPrefix(urlPath, "/") {
		return "https://duckduckgo.com" + urlPath
	}
	return urlPath
}
