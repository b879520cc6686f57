package classifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiConfig holds Vertex AI settings.
type GeminiConfig struct {
	ProjectID       string
	Location        string
	Model           string
	CredentialsFile string
}

// contentGenerator is satisfied by *genai.GenerativeModel.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini classifies images with a Vertex AI generative model.
type Gemini struct {
	client *genai.Client
	// model returns a generator capped at maxTokens. A fresh handle per
	// call keeps concurrent requests from sharing generation settings.
	model func(maxTokens int32) contentGenerator
	log   *zap.Logger
}

// NewGemini connects to Vertex AI and prepares the model.
func NewGemini(ctx context.Context, cfg GeminiConfig, log *zap.Logger) (*Gemini, error) {
	opts := []option.ClientOption{}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("vertexai client: %w", err)
	}
	name := cfg.Model
	if name == "" {
		name = "gemini-1.5-flash"
	}
	model := func(maxTokens int32) contentGenerator {
		m := client.GenerativeModel(name)
		m.SetMaxOutputTokens(maxTokens)
		return m
	}
	return &Gemini{client: client, model: model, log: log}, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Classify sends the prompt and image, returning the first candidate's text.
func (g *Gemini) Classify(ctx context.Context, req Request) Result {
	text, err := g.classify(ctx, req)
	if err != nil {
		g.log.Warn("gemini classification failed", zap.Error(err))
		return Absent
	}
	return Result{Text: text, OK: true}
}

func (g *Gemini) classify(ctx context.Context, req Request) (string, error) {
	img, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	limit := req.MaxTokens
	if limit <= 0 {
		limit = DefaultMaxTokens
	}
	resp, err := g.model(int32(limit)).GenerateContent(ctx, genai.Text(req.Prompt), genai.ImageData("jpeg", img))
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates")
	}
	c := resp.Candidates[0]
	if c.Content == nil || len(c.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in candidate")
	}
	var sb strings.Builder
	for _, p := range c.Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("candidate has no text parts")
	}
	return sb.String(), nil
}
