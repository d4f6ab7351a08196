package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"swaad/internal/core"
)

const (
	defaultGroqModel  = "meta-llama/llama-4-scout-17b-16e-instruct"
	defaultGroqAPIURL = "https://api.groq.com/openai/v1/chat/completions"
)

type GroqClient struct {
	apiKey string
	model  string
	apiURL string
	http   *http.Client
}

func NewGroqClient() *GroqClient {
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultGroqModel
	}
	apiURL := os.Getenv("GROQ_API_URL")
	if apiURL == "" {
		apiURL = defaultGroqAPIURL
	}

	return &GroqClient{
		apiKey: os.Getenv("GROQ_API_KEY"),
		model:  model,
		apiURL: apiURL,
		http:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *GroqClient) Invoke(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("missing GROQ_API_KEY: %w", core.ErrUpstreamUnavailable)
	}
	if prompt == "" {
		return "", fmt.Errorf("empty prompt: %w", core.ErrInvalidArgument)
	}

	payload := map[string]any{
		"model": g.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": 0.2,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		// Transport failures and timeouts both land here.
		return "", fmt.Errorf("groq request failed: %v: %w", err, core.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("groq read failed: %v: %w", err, core.ErrUpstreamUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf(
			"groq api status %d: %s: %w",
			resp.StatusCode, string(raw), core.ErrUpstreamError,
		)
	}

	// OpenAI-compatible chat completions shape
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("groq envelope undecodable: %w", core.ErrUpstreamError)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty groq response: %w", core.ErrUpstreamError)
	}

	return result.Choices[0].Message.Content, nil
}
