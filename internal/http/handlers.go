package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vokinneberg/search-assistant/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_queryagent.go -package=http QueryAgent

// QueryAgent defines the interface for answering search queries. It never
// fails: dependency outages are absorbed into a fallback answer.
type QueryAgent interface {
	Answer(ctx context.Context, query string) string
}

type SearchReq struct {
	Query string `json:"query"`
}

type Handler struct {
	agent QueryAgent
}

// NewHandlers initializes handlers with dependencies
func NewHandlers(agent QueryAgent) *Handler {
	return &Handler{
		agent: agent,
	}
}

// SearchHandler handles POST /api/search
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req SearchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Query == "" {
		errorResponse(w, http.StatusBadRequest, "Query is required", nil)
		return
	}

	answer := h.agent.Answer(r.Context(), req.Query)

	response := types.SearchResponse{
		Query:    req.Query,
		Response: answer,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// IndexHandler handles GET / with the empty query form
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	renderIndex(w, indexData{})
}

// SearchFormHandler handles POST / form submissions. An empty query simply
// re-renders the form with no answer.
func (h *Handler) SearchFormHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.FormValue("query"))
	if query == "" {
		renderIndex(w, indexData{})
		return
	}

	answer := h.agent.Answer(r.Context(), query)

	renderIndex(w, indexData{Query: query, Answer: answer})
}

// HealthHandler handles GET /health
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

type indexData struct {
	Query  string
	Answer string
}

func renderIndex(w http.ResponseWriter, data indexData) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		slog.Error("Error rendering page", "error", err)
		errorResponse(w, http.StatusInternalServerError, "Failed to render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Error writing page", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	if err := json.NewEncoder(w).Encode(types.ErrorResponse{
		Error:   http.StatusText(status),
		Message: errorMsg,
	}); err != nil {
		slog.Error("Error encoding error response", "error", err, "status", status)
	}
}

var indexTmpl = template.Must(template.New("index").Parse(indexPage))

const indexPage = `<!DOCTYPE html>
<html>
<head>
    <title>Search Assistant</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
        .container { max-width: 800px; margin: 0 auto; }
        h1 { color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
        textarea { width: 100%; height: 100px; margin-bottom: 10px; padding: 8px; }
        button { padding: 10px 15px; background-color: #4CAF50; color: white; border: none; cursor: pointer; }
        .answer { margin-top: 20px; white-space: pre-wrap; background-color: #f5f5f5; padding: 15px; border-radius: 5px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Search Assistant</h1>
        <p>Ask any question to search for information.</p>
        <form method="post" action="/">
            <label for="query">Enter your search query:</label><br>
            <textarea id="query" name="query">{{.Query}}</textarea><br>
            <button type="submit">Search</button>
        </form>
        {{if .Answer}}
        <div class="answer">{{.Answer}}</div>
        {{end}}
    </div>
</body>
</html>
`
