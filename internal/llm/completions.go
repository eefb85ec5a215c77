package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CompletionRequest is the body accepted by a /v1/completions endpoint
type CompletionRequest struct {
	Model      string               `json:"model"`
	Prompt     string               `json:"prompt"`
	Parameters CompletionParameters `json:"parameters"`
}

// CompletionParameters holds generation parameters
type CompletionParameters struct {
	MaxTokens int `json:"max_tokens"`
}

// CompletionResponse is the text_completion response shape
type CompletionResponse struct {
	ID      string             `json:"id"`
	Object  string             `json:"object"`
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
}

// CompletionChoice is a single generated completion
type CompletionChoice struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// CompletionsClient is a TextGenerator that calls a completions adapter over HTTP.
type CompletionsClient struct {
	url        string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewCompletionsClient creates a client for the completions endpoint at baseURL
func NewCompletionsClient(baseURL, model string, maxTokens int, timeout time.Duration) *CompletionsClient {
	url := strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(url, "/v1/completions") {
		url += "/v1/completions"
	}
	return &CompletionsClient{
		url:        url,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GenerateContent posts the prompt and returns the first choice's text
func (c *CompletionsClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(CompletionRequest{
		Model:      c.model,
		Prompt:     prompt,
		Parameters: CompletionParameters{MaxTokens: c.maxTokens},
	})
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completions API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var completion CompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("error parsing response: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Text == "" {
		return "", ErrEmptyResponse
	}
	return completion.Choices[0].Text, nil
}
