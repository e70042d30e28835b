package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cvfolio/backend/pkg/llm"
)

const (
	providerName = "openai"
	defaultModel = "gpt-4o-mini"
)

// Client is a minimal OpenAI chat completions client.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	httpDo  *http.Client
}

// New creates a client. baseURL and model fall back to the public API and
// defaultModel when empty; an empty apiKey is allowed here and reported on
// the first call instead, so wiring stays unconditional.
func New(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// CompleteText sends the prompt as a single user message and returns the
// first choice's content. A response with no choices yields an empty string
// and no error; the caller decides how to treat missing content.
func (c *Client) CompleteText(ctx context.Context, prompt string, params llm.Params) (string, error) {
	if c.apiKey == "" {
		return "", llm.ErrMissingAPIKey
	}
	model := params.Model
	if model == "" {
		model = c.model
	}
	reqBody := chatCompletionsRequest{
		Model:       model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", &llm.UpstreamError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return "", &llm.UpstreamError{
			Provider: providerName,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("%v", errMap),
		}
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &llm.UpstreamError{Provider: providerName, Status: resp.StatusCode, Err: err}
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}
