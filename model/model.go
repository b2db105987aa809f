// Package model defines the text-completion boundary of the orchestration
// engine. The engine treats inference as an opaque function: given a model
// identifier and a message exchange it returns a single completed text.
// Provider adapters live in the openai and anthropic subpackages; MockCompleter
// provides deterministic completions for tests and examples.
package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/vodalus/moa/core"
)

// Request captures the normalized completion input. Temperature and MaxTokens
// are optional; zero values defer to the provider's defaults.
type Request struct {
	Model       string         `json:"model"`
	Messages    []core.Message `json:"messages"`
	Temperature float64        `json:"temperature,omitempty"`
	MaxTokens   int64          `json:"max_tokens,omitempty"`
}

// LastUserMessage returns the content of the most recent user-role message,
// or the empty string if there is none.
func (r Request) LastUserMessage() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == core.RoleUser {
			return r.Messages[i].Content
		}
	}
	return ""
}

// Completer is the minimal interface required by agents to drive generation.
// Implementations must be safe for concurrent use; the orchestrator invokes
// Complete from multiple goroutines during reference fan-out.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// MockCompleter is a lightweight in-memory Completer useful for tests and
// examples. Responses are keyed by the last user message of the request; a
// CompleteFn hook can be installed for full per-request control. All calls
// are recorded and retrievable via Calls.
type MockCompleter struct {
	mu        sync.Mutex
	responses map[string]string
	calls     []Request

	// CompleteFn, when set, overrides the canned-response lookup entirely.
	CompleteFn func(req Request) (string, error)
}

// NewMockCompleter constructs an empty MockCompleter.
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{responses: make(map[string]string)}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockCompleter) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// Calls returns a copy of all requests observed so far.
func (m *MockCompleter) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]Request, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// Complete implements Completer. It matches the last user message against the
// registered responses, falling back to a generic echo completion.
func (m *MockCompleter) Complete(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	m.calls = append(m.calls, req)
	fn := m.CompleteFn
	m.mu.Unlock()

	if fn != nil {
		return fn(req)
	}

	input := req.LastUserMessage()

	m.mu.Lock()
	resp, ok := m.responses[input]
	m.mu.Unlock()

	if !ok {
		resp = fmt.Sprintf("Mock response to: %s", input)
	}
	return resp, nil
}
