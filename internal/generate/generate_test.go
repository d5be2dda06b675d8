package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type fakeCompleter struct {
	req     openai.ChatCompletionRequest
	content string
	err     error
	choices int
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	resp := openai.ChatCompletionResponse{}
	for i := 0; i < f.choices; i++ {
		resp.Choices = append(resp.Choices, openai.ChatCompletionChoice{
			Message: openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: f.content,
			},
		})
	}
	return resp, nil
}

const validReply = `{"palette": {"0": "#0d0221", "1": "#ff124f"}, "background": "#0d0221", "foreground": "#d1f7ff"}`

func TestGenerateParsesReply(t *testing.T) {
	fake := &fakeCompleter{content: validReply, choices: 1}
	gen := New(fake, "gpt-4o", nil)

	doc, err := gen.Generate(context.Background(), "cyberpunk")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got, ok := doc.Scalar("background"); !ok || got != "#0d0221" {
		t.Errorf("Scalar(background) = %q, %v", got, ok)
	}
	if got, ok := doc.Color(1); !ok || got != "#ff124f" {
		t.Errorf("Color(1) = %q, %v", got, ok)
	}
}

func TestGenerateRequestShape(t *testing.T) {
	fake := &fakeCompleter{content: validReply, choices: 1}
	gen := New(fake, "gpt-4o", nil)

	if _, err := gen.Generate(context.Background(), "cyberpunk"); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	req := fake.req
	if req.Model != "gpt-4o" {
		t.Errorf("Model = %q, want %q", req.Model, "gpt-4o")
	}
	if req.ResponseFormat == nil || req.ResponseFormat.Type != openai.ChatCompletionResponseFormatTypeJSONObject {
		t.Error("request did not ask for JSON mode")
	}
	if len(req.Messages) != 2 {
		t.Fatalf("Messages = %d, want 2", len(req.Messages))
	}
	if req.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("Messages[0].Role = %q, want system", req.Messages[0].Role)
	}
	if req.Messages[1].Role != openai.ChatMessageRoleUser {
		t.Errorf("Messages[1].Role = %q, want user", req.Messages[1].Role)
	}
	user := req.Messages[1].Content
	if !strings.Contains(user, `"cyberpunk"`) {
		t.Error("user prompt does not carry the keyword")
	}
	if !strings.Contains(user, `"palette"`) || !strings.Contains(user, "selection-foreground") {
		t.Error("user prompt does not embed the schema description")
	}
}

func TestGenerateMalformedReply(t *testing.T) {
	raw := "Sure! Here is your theme: {\"palette\":"
	fake := &fakeCompleter{content: raw, choices: 1}
	gen := New(fake, "gpt-4o", nil)

	_, err := gen.Generate(context.Background(), "cyberpunk")
	if err == nil {
		t.Fatal("Generate() = nil error for a malformed reply")
	}

	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("Generate() error = %T, want *MalformedError", err)
	}
	if malformed.Payload != raw {
		t.Errorf("Payload = %q, want the raw reply", malformed.Payload)
	}
}

func TestGenerateTransportError(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("dial tcp: connection refused")}
	gen := New(fake, "gpt-4o", nil)

	_, err := gen.Generate(context.Background(), "cyberpunk")
	if err == nil {
		t.Fatal("Generate() = nil error for a transport failure")
	}
	var malformed *MalformedError
	if errors.As(err, &malformed) {
		t.Error("transport failure was reported as a malformed reply")
	}
}

func TestGenerateEmptyChoices(t *testing.T) {
	fake := &fakeCompleter{choices: 0}
	gen := New(fake, "gpt-4o", nil)

	if _, err := gen.Generate(context.Background(), "cyberpunk"); err == nil {
		t.Fatal("Generate() = nil error for an empty reply")
	}
}
