package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cvfolio/backend/pkg/llm"
)

const (
	providerName = "google"
	defaultModel = "gemini-1.5-flash"
)

// Client is a minimal Gemini generateContent client. The API key is supplied
// either as the x-goog-api-key header (default) or as a key query parameter;
// both forms are accepted by the API and both are in use in the wild.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	keyViaQuery bool
	httpDo      *http.Client
}

func New(apiKey, baseURL, model string, keyViaQuery bool) *Client {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		keyViaQuery: keyViaQuery,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float32 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

// CompleteText sends the prompt and returns the first candidate's first part.
// A response with no candidates or no parts yields an empty string and no
// error; the caller decides how to treat missing content.
func (c *Client) CompleteText(ctx context.Context, prompt string, params llm.Params) (string, error) {
	if c.apiKey == "" {
		return "", llm.ErrMissingAPIKey
	}
	model := params.Model
	if model == "" {
		model = c.model
	}
	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if params.Temperature > 0 || params.MaxTokens > 0 {
		reqBody.GenerationConfig = &generationConfig{
			Temperature:     params.Temperature,
			MaxOutputTokens: params.MaxTokens,
		}
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	if c.keyViaQuery {
		endpoint += "?key=" + url.QueryEscape(c.apiKey)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if !c.keyViaQuery {
		httpReq.Header.Set("x-goog-api-key", c.apiKey)
	}

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
	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &llm.UpstreamError{Provider: providerName, Status: resp.StatusCode, Err: err}
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
