// Package generate produces Ghostty theme documents from a keyword using
// an OpenAI-compatible chat completion endpoint.
package generate

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/vibejam/glaze/internal/theme"
)

// ChatCompleter is the slice of the OpenAI client the generator needs.
// *openai.Client satisfies it; tests substitute canned replies.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// MalformedError reports a model reply that could not be parsed as a
// theme document. Payload carries the raw reply so callers can show what
// the model actually said.
type MalformedError struct {
	Payload string
	Err     error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("model reply is not a valid theme document: %v", e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// Generator turns keywords into theme documents.
type Generator struct {
	Client ChatCompleter
	Model  string
	Logger *log.Logger
}

// New returns a Generator backed by client.
func New(client ChatCompleter, model string, logger *log.Logger) *Generator {
	return &Generator{
		Client: client,
		Model:  model,
		Logger: logger,
	}
}

// NewClient builds an OpenAI client for key. A non-empty baseURL points
// the client at an OpenAI-compatible endpoint instead of api.openai.com.
func NewClient(key, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(key)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Generate asks the model for a theme inspired by keyword, in JSON mode,
// and parses the reply. Transport failures come back wrapped; a reply
// that is not a parseable theme document comes back as a *MalformedError.
func (g *Generator) Generate(ctx context.Context, keyword string) (*theme.Document, error) {
	req := openai.ChatCompletionRequest{
		Model: g.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(keyword)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	if g.Logger != nil {
		g.Logger.Debug("requesting theme", "model", g.Model, "keyword", keyword)
	}

	resp, err := g.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("requesting completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("completion reply had no choices")
	}
	payload := resp.Choices[0].Message.Content

	doc, err := theme.Parse([]byte(payload))
	if err != nil {
		return nil, &MalformedError{Payload: payload, Err: err}
	}

	if g.Logger != nil {
		g.Logger.Debug("theme parsed", "keyword", keyword, "keys", len(doc.Keys()))
	}
	return doc, nil
}
