// Package agent implements the reference and synthesis agents of the
// orchestration engine. An Agent wraps a model identifier, a name and a
// system prompt, and exposes a single Generate operation that transparently
// handles one round of search-triggered re-querying.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/vodalus/moa/core"
	"github.com/vodalus/moa/logging"
	"github.com/vodalus/moa/model"
)

// Searcher performs a web search and returns an evidence block. It is
// satisfied by *websearch.Client.
type Searcher interface {
	Gather(ctx context.Context, query string) (string, error)
}

// Options configure an Agent.
type Options struct {
	// Searcher handles in-band search triggers. Nil disables the search
	// round: triggered responses are returned as plain text.
	Searcher Searcher
	Logger   logging.Logger
}

// Agent binds a name and system prompt to a target model. Agents hold no
// shared mutable state beyond the model identifier and are safe to invoke
// concurrently.
type Agent struct {
	name         string
	systemPrompt string
	completer    model.Completer
	searcher     Searcher
	logger       logging.Logger

	mu      sync.RWMutex
	modelID string
}

// New constructs an Agent targeting the given model identifier.
func New(name, modelID, systemPrompt string, completer model.Completer, optFns ...func(o *Options)) *Agent {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Agent{
		name:         name,
		modelID:      modelID,
		systemPrompt: systemPrompt,
		completer:    completer,
		searcher:     opts.Searcher,
		logger:       opts.Logger,
	}
}

// Name returns the agent's unique name.
func (a *Agent) Name() string { return a.name }

// SystemPrompt returns the agent's system prompt.
func (a *Agent) SystemPrompt() string { return a.systemPrompt }

// Model returns the current target model identifier.
func (a *Agent) Model() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.modelID
}

// SetModel retargets the agent to a different model identifier.
func (a *Agent) SetModel(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.modelID = id
}

// Generate produces a response to the message, handling at most one
// search-triggered re-query. The returned flag reports whether a search round
// was performed. If the final response parses as JSON it is re-serialized
// canonically; otherwise the raw text is returned unchanged.
func (a *Agent) Generate(ctx context.Context, message string) (string, bool, error) {
	messages := []core.Message{
		core.SystemMessage(a.systemPrompt),
		core.UserMessage(message),
	}

	raw, err := a.complete(ctx, messages)
	if err != nil {
		return "", false, fmt.Errorf("agent %s: %w", a.name, err)
	}

	searched := false
	if reply := ParseReply(raw); reply.Kind == ReplySearchRequest && a.searcher != nil {
		searched = true
		a.logger.Info("search trigger", "agent", a.name, "query", reply.Query)

		evidence, err := a.searcher.Gather(ctx, reply.Query)
		if err != nil {
			a.logger.Warn("search failed", "agent", a.name, "query", reply.Query, "error", err)
			evidence = "No relevant information found from the web search."
		}

		messages = append(messages,
			core.AssistantMessage(raw),
			core.UserMessage(fmt.Sprintf(
				"Here are the search results for '%s':\n\n%s\n\nPlease provide an updated response based on this information.",
				reply.Query, evidence,
			)),
		)

		// Exactly one search round per call: the re-queried response is not
		// scanned for further triggers.
		raw, err = a.complete(ctx, messages)
		if err != nil {
			return "", searched, fmt.Errorf("agent %s: %w", a.name, err)
		}
	}

	return canonicalizeJSON(raw), searched, nil
}

func (a *Agent) complete(ctx context.Context, messages []core.Message) (string, error) {
	return a.completer.Complete(ctx, model.Request{
		Model:    a.Model(),
		Messages: messages,
	})
}

// canonicalizeJSON re-serializes text that happens to be valid JSON; anything
// else passes through unchanged. Model output is untrusted, so a parse
// failure is not an error here.
func canonicalizeJSON(text string) string {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	out, err := json.Marshal(v)
	if err != nil {
		return text
	}
	return string(out)
}
