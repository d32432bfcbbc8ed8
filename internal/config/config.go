package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Logging configuration
	LogLevel  string
	LogFormat string
	Debug     bool

	// OpenAI configuration
	OpenAIAPIKey string
	OpenAIModel  string

	// Search configuration
	SearchBackend string
	SearXNGURL    string
	SearchLimit   int
}

// LoadConfig loads configuration from a .env file (if present), environment
// variables and command-line flags. Flags take precedence over environment
// variables.
func LoadConfig() (*Config, error) {
	// Best-effort: a missing .env file is not an error
	_ = godotenv.Load()

	cfg := &Config{}

	// Define flags
	serverHost := flag.String("server-host", getEnv("SERVER_HOST", ""), "Server listen host (empty = all interfaces)")
	serverPort := flag.String("server-port", getEnv("SERVER_PORT", "8080"), "Server port")
	logLevel := flag.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", getEnv("LOG_FORMAT", "text"), "Log format (text or json)")
	debug := flag.Bool("debug", getEnvAsBool("DEBUG", false), "Enable debug logging")
	openAIKey := flag.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key")
	openAIModel := flag.String("openai-model", getEnv("OPENAI_MODEL", "gpt-4.1-mini"), "OpenAI model for chat completions")
	searchBackend := flag.String("search-backend", getEnv("SEARCH_BACKEND", "duckduckgo"), "Web search backend (duckduckgo or searxng)")
	searxngURL := flag.String("searxng-url", getEnv("SEARXNG_URL", ""), "SearXNG instance URL (required for the searxng backend)")
	searchLimit := flag.Int("search-limit", getEnvAsInt("SEARCH_LIMIT", 5), "Number of search results to feed the model")

	flag.Parse()

	// Set config values
	cfg.ServerHost = *serverHost
	cfg.ServerPort = *serverPort
	cfg.LogLevel = *logLevel
	cfg.LogFormat = *logFormat
	cfg.Debug = *debug
	cfg.OpenAIAPIKey = *openAIKey
	cfg.OpenAIModel = *openAIModel
	cfg.SearchBackend = *searchBackend
	cfg.SearXNGURL = *searxngURL
	cfg.SearchLimit = *searchLimit

	// Validate fields. The OpenAI key is deliberately not required here:
	// without it every query degrades to the fallback answer at call time,
	// which keeps the service available for local experimentation.
	switch cfg.SearchBackend {
	case "duckduckgo":
	case "searxng":
		if cfg.SearXNGURL == "" {
			return nil, fmt.Errorf("SEARXNG_URL is required for the searxng backend (set via environment variable or -searxng-url flag)")
		}
	default:
		return nil, fmt.Errorf("unknown search backend %q (expected duckduckgo or searxng)", cfg.SearchBackend)
	}

	if cfg.SearchLimit <= 0 {
		return nil, fmt.Errorf("search limit must be positive, got %d", cfg.SearchLimit)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
