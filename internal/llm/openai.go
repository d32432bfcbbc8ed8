package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

// Summarize produces an answer to the query from the formatted search results
func (c *Client) Summarize(ctx context.Context, searchResults, query string) (string, error) {
	// Try to load prompts, with fallback to defaults
	systemPrompt := "You are a search assistant that provides accurate and relevant information.\nSummarize search results in a clear and concise manner.\nProvide proper attribution for information sources.\nIf the search results do not provide a clear answer, acknowledge this and suggest alternatives."

	// Try multiple possible paths
	promptPaths := []string{
		"prompts/system_prompt.txt",
		"./prompts/system_prompt.txt",
		"../prompts/system_prompt.txt",
	}
	for _, path := range promptPaths {
		if p, err := loadPrompt(path); err == nil {
			systemPrompt = p
			break
		}
	}

	summaryPromptTemplate := "Use the search results below to answer the question.\n\nSearch results:\n{results}\n\nQuestion: {query}\n\nSummarize the most relevant information in a clear and concise answer."

	summaryPaths := []string{
		"prompts/summary_prompt.txt",
		"./prompts/summary_prompt.txt",
		"../prompts/summary_prompt.txt",
	}
	for _, path := range summaryPaths {
		if p, err := loadPrompt(path); err == nil {
			summaryPromptTemplate = p
			break
		}
	}

	// Replace placeholders
	summaryPrompt := strings.ReplaceAll(summaryPromptTemplate, "{results}", searchResults)
	summaryPrompt = strings.ReplaceAll(summaryPrompt, "{query}", query)

	// Create chat completion using OpenAI Go client
	systemMsg := openai.SystemMessage(systemPrompt)
	userMsg := openai.UserMessage(summaryPrompt)
	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			systemMsg,
			userMsg,
		},
		Temperature: param.Opt[float64]{Value: 0.7},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return res.Choices[0].Message.Content, nil
}

// loadPrompt loads a prompt from a file
func loadPrompt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
