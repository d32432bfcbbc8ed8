package types

// SearchResponse represents a search query response
type SearchResponse struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
