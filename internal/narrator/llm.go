package narrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4"

const systemPrompt = "You are an assistant that explains scheduling suggestions briefly and politely."

const promptLayout = "2006-01-02 15:04"

// LLM is a Narrator backed by an OpenAI-compatible chat model.
type LLM struct {
	client *openai.LLM
	model  string
}

// NewLLM constructs an LLM narrator. The token is required; the model falls
// back to DefaultModel when empty.
func NewLLM(token, model string) (*LLM, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("narrator: API token is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := openai.New(
		openai.WithToken(token),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating openai client: %w", err)
	}

	return &LLM{client: client, model: model}, nil
}

// Explain asks the model for a short explanation of the proposed move. Any
// transport or model failure is reported as ErrUnavailable so callers can
// degrade gracefully.
func (l *LLM) Explain(ctx context.Context, req Request) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, humanPrompt(req)),
	}

	resp, err := l.client.GenerateContent(ctx, messages, llms.WithTemperature(0.2))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrUnavailable
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func humanPrompt(req Request) string {
	return fmt.Sprintf(
		"Event '%s' was originally scheduled from %s to %s. We suggest moving it to %s - %s to avoid a conflict.",
		req.EventTitle,
		formatInstant(req.Original.Start),
		formatInstant(req.Original.End),
		formatInstant(req.Proposed.Start),
		formatInstant(req.Proposed.End),
	)
}

func formatInstant(t time.Time) string {
	return t.Format(promptLayout)
}
