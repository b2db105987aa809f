// Package anthropic provides a model.Completer implementation backed by the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vodalus/moa/core"
	"github.com/vodalus/moa/model"
)

// defaultMaxTokens applies when the request carries no token budget; the
// Messages API requires an explicit value.
const defaultMaxTokens = 4096

// Options configure the Anthropic completer.
type Options struct {
	// APIKey is the Anthropic API key. Empty falls back to the SDK's
	// environment lookup.
	APIKey string
}

// Completer wraps the Anthropic Messages API behind the generic
// model.Completer interface.
type Completer struct {
	client anthropic.Client
}

// NewCompleter creates a new Anthropic completer using the official client.
func NewCompleter(optFns ...func(o *Options)) *Completer {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	return &Completer{client: anthropic.NewClient(clientOpts...)}
}

// Complete implements model.Completer using a single non-streaming messages
// call. System-role messages are lifted into the request's System blocks as
// required by the API.
func (c *Completer) Complete(ctx context.Context, req model.Request) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		Messages:  buildMessages(req.Messages),
		MaxTokens: defaultMaxTokens,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = req.MaxTokens
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if system := systemText(req.Messages); system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}

// buildMessages converts non-system messages into Anthropic message params.
func buildMessages(messages []core.Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case core.RoleAssistant:
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		case core.RoleUser:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return out
}

// systemText joins system-role messages into a single instruction block.
func systemText(messages []core.Message) string {
	var parts []string
	for _, m := range messages {
		if m.Role == core.RoleSystem {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}
