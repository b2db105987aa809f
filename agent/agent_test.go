package agent

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vodalus/moa/model"
)

// recordingSearcher captures Gather queries and returns a canned evidence block.
type recordingSearcher struct {
	mu       sync.Mutex
	queries  []string
	evidence string
	err      error
}

func (s *recordingSearcher) Gather(_ context.Context, query string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	return s.evidence, s.err
}

func TestAgent_Generate_PlainResponse(t *testing.T) {
	mock := model.NewMockCompleter()
	mock.AddResponse("hello", "Hi there.")

	searcher := &recordingSearcher{}
	a := New("TestAgent", "test-model", "You are a test agent.", mock, func(o *Options) {
		o.Searcher = searcher
	})

	text, searched, err := a.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there.", text)
	assert.False(t, searched)
	assert.Len(t, mock.Calls(), 1)
	assert.Empty(t, searcher.queries)
}

func TestAgent_Generate_SearchRound(t *testing.T) {
	mock := model.NewMockCompleter()
	calls := 0
	mock.CompleteFn = func(req model.Request) (string, error) {
		calls++
		if calls == 1 {
			return "I should check. [SEARCH: solar flares]", nil
		}
		// The re-queried response still contains a marker; it must not
		// trigger a second round.
		return "[SEARCH: again] Solar flares disrupt radio communication.", nil
	}

	searcher := &recordingSearcher{evidence: "Based on the following results:\n\nflare evidence\n"}
	a := New("TestAgent", "test-model", "You are a test agent.", mock, func(o *Options) {
		o.Searcher = searcher
	})

	text, searched, err := a.Generate(context.Background(), "what about solar flares?")
	require.NoError(t, err)
	assert.True(t, searched)
	assert.Equal(t, "[SEARCH: again] Solar flares disrupt radio communication.", text)

	// Exactly one search and exactly one re-invocation.
	require.Equal(t, []string{"solar flares"}, searcher.queries)
	require.Len(t, mock.Calls(), 2)

	// The re-query carries the original response and the evidence.
	second := mock.Calls()[1]
	require.Len(t, second.Messages, 4)
	assert.Contains(t, second.Messages[3].Content, "search results for 'solar flares'")
	assert.Contains(t, second.Messages[3].Content, "flare evidence")
}

func TestAgent_Generate_SearchFailureSubstitutesSentinel(t *testing.T) {
	mock := model.NewMockCompleter()
	calls := 0
	mock.CompleteFn = func(req model.Request) (string, error) {
		calls++
		if calls == 1 {
			return "[SEARCH: broken query]", nil
		}
		return "best effort answer", nil
	}

	searcher := &recordingSearcher{err: errors.New("network down")}
	a := New("TestAgent", "test-model", "prompt", mock, func(o *Options) {
		o.Searcher = searcher
	})

	text, searched, err := a.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, searched)
	assert.Equal(t, "best effort answer", text)
	assert.Contains(t, mock.Calls()[1].Messages[3].Content, "No relevant information found")
}

func TestAgent_Generate_NoSearcherIgnoresTrigger(t *testing.T) {
	mock := model.NewMockCompleter()
	mock.AddResponse("q", "[SEARCH: something]")

	a := New("TestAgent", "test-model", "prompt", mock)

	text, searched, err := a.Generate(context.Background(), "q")
	require.NoError(t, err)
	assert.False(t, searched)
	assert.Equal(t, "[SEARCH: something]", text)
	assert.Len(t, mock.Calls(), 1)
}

func TestAgent_Generate_CompleterError(t *testing.T) {
	mock := model.NewMockCompleter()
	mock.CompleteFn = func(model.Request) (string, error) {
		return "", errors.New("model unavailable")
	}

	a := New("TestAgent", "test-model", "prompt", mock)

	_, _, err := a.Generate(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TestAgent")
}

func TestAgent_Generate_CanonicalizesJSON(t *testing.T) {
	mock := model.NewMockCompleter()
	mock.AddResponse("q", "{\"b\": 1,\n  \"a\": 2}")

	a := New("TestAgent", "test-model", "prompt", mock)

	text, _, err := a.Generate(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1}`, text)
}

func TestAgent_SetModel(t *testing.T) {
	a := New("TestAgent", "model-a", "prompt", model.NewMockCompleter())
	assert.Equal(t, "model-a", a.Model())
	a.SetModel("model-b")
	assert.Equal(t, "model-b", a.Model())
}
