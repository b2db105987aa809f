// Package openai provides a model.Completer implementation backed by the
// OpenAI Chat Completions API. Because the base URL is configurable it also
// serves any OpenAI-compatible endpoint, notably Ollama's /v1 API, which is
// the default deployment target for local reference agents.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/vodalus/moa/core"
	"github.com/vodalus/moa/model"
)

// Options configure the OpenAI completer.
type Options struct {
	// BaseURL overrides the API endpoint, e.g. "http://localhost:11434/v1"
	// for Ollama. Empty uses the SDK default.
	BaseURL string
	// APIKey is the bearer token. Ollama accepts any non-empty value.
	APIKey string
}

// Completer wraps the OpenAI Chat Completions API behind the generic
// model.Completer interface. The target model is carried per request so a
// single client can serve agents bound to different model identifiers.
type Completer struct {
	client openai.Client
}

// NewCompleter creates a new OpenAI completer using the official client.
func NewCompleter(optFns ...func(o *Options)) *Completer {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	return &Completer{client: openai.NewClient(clientOpts...)}
}

// NewCompleterFromClient creates a completer from an existing client.
func NewCompleterFromClient(client openai.Client) *Completer {
	return &Completer{client: client}
}

// Complete implements model.Completer using a single non-streaming chat
// completion call.
func (c *Completer) Complete(ctx context.Context, req model.Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: buildMessages(req.Messages),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(req.MaxTokens)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned no choices for model %s", req.Model)
	}
	return resp.Choices[0].Message.Content, nil
}

// buildMessages converts normalized messages into OpenAI chat messages.
func buildMessages(messages []core.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case core.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case core.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
