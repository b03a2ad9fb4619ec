// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/pdiddy/litreview/pkg/types"
)

// chatCompletionsURL is the OpenAI-compatible endpoint. Package-level var
// for test substitution.
var chatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// retryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var retryBaseDelay = 2 * time.Second

const defaultMaxRetries = 3

// OpenAIBackend implements Client against a chat-completions endpoint.
type OpenAIBackend struct {
	Config types.LLMConfig
	Client *http.Client
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends prompt as a single user message and returns the first
// choice's content. HTTP 429 responses are retried with exponential backoff;
// other non-200 statuses fail immediately.
func (b *OpenAIBackend) Generate(ctx context.Context, prompt string) (string, error) {
	if b.Config.APIKey == "" {
		return "", ErrNoAPIKey
	}

	reqBody := chatRequest{
		Model:       b.Config.Model,
		Temperature: b.Config.Temperature,
		MaxTokens:   b.Config.MaxTokens,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	client := b.Client
	if client == nil {
		client = &http.Client{Timeout: b.Config.Timeout}
	}

	maxRetries := b.Config.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatCompletionsURL, bytes.NewReader(bodyBytes))
		if err != nil {
			return "", fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+b.Config.APIKey)

		resp, err := client.Do(req)
		if err != nil {
			return "", fmt.Errorf("calling chat completions: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxRetries {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			backoff := time.Duration(math.Pow(2, float64(attempt))) * retryBaseDelay
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			continue
		}

		return decodeChatResponse(resp)
	}
}

func decodeChatResponse(resp *http.Response) (string, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("chat completions returned %d: %s", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("chat completions returned no choices")
	}
	return cr.Choices[0].Message.Content, nil
}
