package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// ImageDataURLPrefix is prepended to the base64 image in the image_url part.
const ImageDataURLPrefix = "data:image/png;base64,"

// OpenAIConfig configures the chat-completions client.
type OpenAIConfig struct {
	Endpoint string        // full URL of the chat completions endpoint
	APIKey   string        // sent as the api-key query parameter
	Timeout  time.Duration // per-request transport timeout, 0 = none
}

// OpenAI is a client for OpenAI-compatible chat-completions endpoints with image input.
type OpenAI struct {
	cfg  OpenAIConfig
	http *http.Client
	log  *zap.Logger
}

// NewOpenAI constructs the client. A nil httpClient uses a default client with cfg.Timeout.
func NewOpenAI(cfg OpenAIConfig, httpClient *http.Client, log *zap.Logger) *OpenAI {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &OpenAI{cfg: cfg, http: httpClient, log: log}
}

type chatRequest struct {
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func buildChatRequest(req Request) chatRequest {
	limit := req.MaxTokens
	if limit <= 0 {
		limit = DefaultMaxTokens
	}
	return chatRequest{
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: req.Prompt},
				{Type: "image_url", ImageURL: &imageURL{URL: ImageDataURLPrefix + req.ImageBase64}},
			},
		}},
		MaxTokens: limit,
	}
}

func (c *OpenAI) endpointURL() (string, error) {
	u, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("api-key", c.cfg.APIKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Classify posts a single chat request and returns the first choice's text.
func (c *OpenAI) Classify(ctx context.Context, req Request) Result {
	text, err := c.classify(ctx, req)
	if err != nil {
		c.log.Warn("classification failed", zap.Error(err))
		return Absent
	}
	return Result{Text: text, OK: true}
}

func (c *OpenAI) classify(ctx context.Context, req Request) (string, error) {
	if req.Prompt == "" {
		return "", fmt.Errorf("empty prompt")
	}
	body, err := json.Marshal(buildChatRequest(req))
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}
	endpoint, err := c.endpointURL()
	if err != nil {
		return "", fmt.Errorf("endpoint: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("transport: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("status %s; body: %s", resp.Status, string(b))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	content := out.Choices[0].Message.Content
	if content == nil {
		return "", fmt.Errorf("choice without message content")
	}
	return *content, nil
}
