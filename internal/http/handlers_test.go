package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/vokinneberg/search-assistant/internal/types"
)

func TestHandler_SearchHandler(t *testing.T) {
	tests := []struct {
		name        string
		requestBody interface{}
		setupMocks  func(*MockQueryAgent)
		wantStatus  int
		wantQuery   string
		wantAnswer  string
	}{
		{
			name: "successful query",
			requestBody: SearchReq{
				Query: "best restaurants in Paris",
			},
			setupMocks: func(agent *MockQueryAgent) {
				agent.EXPECT().
					Answer(gomock.Any(), "best restaurants in Paris").
					Return("Paris has many highly rated restaurants.")
			},
			wantStatus: http.StatusOK,
			wantQuery:  "best restaurants in Paris",
			wantAnswer: "Paris has many highly rated restaurants.",
		},
		{
			name:        "invalid JSON",
			requestBody: "invalid json",
			setupMocks:  func(*MockQueryAgent) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "missing query field",
			requestBody: map[string]string{},
			setupMocks:  func(*MockQueryAgent) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name: "empty query",
			requestBody: SearchReq{
				Query: "",
			},
			setupMocks: func(*MockQueryAgent) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAgent := NewMockQueryAgent(ctrl)
			tt.setupMocks(mockAgent)

			handler := NewHandlers(mockAgent)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("Failed to marshal request body: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.SearchHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("SearchHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var response types.SearchResponse
				if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
					t.Fatalf("SearchHandler() invalid JSON response: %v", err)
				}
				if response.Query != tt.wantQuery {
					t.Errorf("SearchHandler() query = %q, want %q", response.Query, tt.wantQuery)
				}
				if response.Response != tt.wantAnswer {
					t.Errorf("SearchHandler() response = %q, want %q", response.Response, tt.wantAnswer)
				}
			} else {
				var response types.ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
					t.Fatalf("SearchHandler() invalid JSON error body: %v", err)
				}
				if response.Error == "" {
					t.Error("SearchHandler() error body missing error key")
				}
			}
		})
	}
}

func TestHandler_IndexHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewHandlers(NewMockQueryAgent(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.IndexHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("IndexHandler() status = %d, want %d", w.Code, http.StatusOK)
	}

	page := w.Body.String()
	if !strings.Contains(page, `name="query"`) {
		t.Error("IndexHandler() page missing the query form")
	}
	if strings.Contains(page, `class="answer"`) {
		t.Error("IndexHandler() page contains an answer section before any submission")
	}
}

func TestHandler_SearchFormHandler(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		setupMocks func(*MockQueryAgent)
		wantAnswer string
	}{
		{
			name: "query answered and rendered",
			form: url.Values{"query": {"capital of France"}},
			setupMocks: func(agent *MockQueryAgent) {
				agent.EXPECT().
					Answer(gomock.Any(), "capital of France").
					Return("The capital of France is Paris.")
			},
			wantAnswer: "The capital of France is Paris.",
		},
		{
			name:       "empty query renders form without answer",
			form:       url.Values{"query": {""}},
			setupMocks: func(*MockQueryAgent) {},
		},
		{
			name:       "whitespace-only query renders form without answer",
			form:       url.Values{"query": {"   "}},
			setupMocks: func(*MockQueryAgent) {},
		},
		{
			name:       "missing query field renders form without answer",
			form:       url.Values{},
			setupMocks: func(*MockQueryAgent) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAgent := NewMockQueryAgent(ctrl)
			tt.setupMocks(mockAgent)

			handler := NewHandlers(mockAgent)

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()

			handler.SearchFormHandler(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("SearchFormHandler() status = %d, want %d", w.Code, http.StatusOK)
			}

			page := w.Body.String()
			if !strings.Contains(page, `name="query"`) {
				t.Error("SearchFormHandler() page missing the query form")
			}
			if tt.wantAnswer != "" {
				if !strings.Contains(page, tt.wantAnswer) {
					t.Errorf("SearchFormHandler() page missing answer %q", tt.wantAnswer)
				}
			} else if strings.Contains(page, `class="answer"`) {
				t.Error("SearchFormHandler() page contains an answer section for an empty query")
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		message    string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "error with message",
			status:     http.StatusBadRequest,
			message:    "Invalid request",
			err:        errors.New("validation failed"),
			wantStatus: http.StatusBadRequest,
			wantError:  "Bad Request",
		},
		{
			name:       "error without message",
			status:     http.StatusInternalServerError,
			message:    "Server error",
			err:        nil,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			errorResponse(w, tt.status, tt.message, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("errorResponse() status = %d, want %d", w.Code, tt.wantStatus)
			}

			var response types.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("errorResponse() invalid JSON: %v", err)
			}

			if response.Error != tt.wantError {
				t.Errorf("errorResponse() Error = %q, want %q", response.Error, tt.wantError)
			}

			if tt.message != "" {
				if !strings.Contains(response.Message, tt.message) {
					t.Errorf("errorResponse() Message = %q, want containing %q", response.Message, tt.message)
				}
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	HealthHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("HealthHandler() status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("HealthHandler() invalid JSON: %v", err)
	}

	if response["status"] != "ok" {
		t.Errorf("HealthHandler() status = %q, want %q", response["status"], "ok")
	}
}
