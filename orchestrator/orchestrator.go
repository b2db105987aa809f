// Package orchestrator drives the end-to-end response turn: concurrent
// fan-out to reference agents, optional web augmentation, query-expansion
// driven multi-query archival retrieval, context assembly and the final
// synthesis call, with event-log and archival bookkeeping around it all.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vodalus/moa/agent"
	"github.com/vodalus/moa/core"
	"github.com/vodalus/moa/logging"
	"github.com/vodalus/moa/memory"
	"github.com/vodalus/moa/model"
)

// ErrAllAgentsFailed aborts a turn when no reference agent produced a usable
// response; no partial synthesis is attempted.
var ErrAllAgentsFailed = errors.New("all reference agents failed to generate responses")

// errorPrefix marks a reference response as unusable during fan-in.
const errorPrefix = "Error:"

// contextHeader opens the assembled synthesis prompt.
const contextHeader = "Consider the following context:\n==========Context===========\n"

// contextFooter separates the retrieved context from the literal question.
const contextFooter = "\n======================\nQuestion: "

// Options configure an Orchestrator.
type Options struct {
	// Search enables web augmentation; nil disables it regardless of
	// WebSearchEnabled.
	Search agent.Searcher
	// Splitter chunks uploaded documents. Nil uses the default policy.
	Splitter *memory.Splitter

	Temperature      float64
	MaxTokens        int64
	WebSearchEnabled bool
	Logger           logging.Logger
}

// Orchestrator owns one synthesis agent, a set of reference agents, the
// memory stores and the event log. Construct it once per session; a single
// control goroutine drives turns, and the only internal concurrency is the
// reference fan-out.
type Orchestrator struct {
	referenceAgents []*agent.Agent
	synthesisAgent  *agent.Agent
	completer       model.Completer
	search          agent.Searcher
	coreMemory      *memory.CoreMemory
	eventLog        *memory.EventLog
	archival        *memory.Archival
	splitter        *memory.Splitter

	temperature      float64
	maxTokens        int64
	webSearchEnabled bool
	primaryModel     string
	logger           logging.Logger
}

// New constructs an Orchestrator. Agent names must be unique across the
// reference set and the synthesis agent.
func New(
	referenceAgents []*agent.Agent,
	synthesisAgent *agent.Agent,
	completer model.Completer,
	coreMemory *memory.CoreMemory,
	archival *memory.Archival,
	optFns ...func(o *Options),
) (*Orchestrator, error) {
	if len(referenceAgents) == 0 {
		return nil, errors.New("at least one reference agent is required")
	}
	if synthesisAgent == nil {
		return nil, errors.New("a synthesis agent is required")
	}

	seen := map[string]bool{synthesisAgent.Name(): true}
	for _, a := range referenceAgents {
		if seen[a.Name()] {
			return nil, fmt.Errorf("duplicate agent name %q", a.Name())
		}
		seen[a.Name()] = true
	}

	opts := Options{
		Temperature:      0.7,
		MaxTokens:        1000,
		WebSearchEnabled: true,
		Logger:           logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Splitter == nil {
		opts.Splitter = memory.NewSplitter()
	}

	return &Orchestrator{
		referenceAgents:  referenceAgents,
		synthesisAgent:   synthesisAgent,
		completer:        completer,
		search:           opts.Search,
		coreMemory:       coreMemory,
		eventLog:         memory.NewEventLog(),
		archival:         archival,
		splitter:         opts.Splitter,
		temperature:      opts.Temperature,
		maxTokens:        opts.MaxTokens,
		webSearchEnabled: opts.WebSearchEnabled,
		primaryModel:     synthesisAgent.Model(),
		logger:           opts.Logger,
	}, nil
}

// referenceResult carries one reference agent's fan-out outcome.
type referenceResult struct {
	text     string
	searched bool
	err      error
}

// GetResponse runs one full turn for the user input and returns the
// synthesized answer plus whether any web search occurred along the way.
//
// The phases are strictly sequential; the reference fan-out is the only
// parallel region and it is a join, not a race. The user turn is committed to
// memory before fan-out, so an aborted turn may leave a user event with no
// assistant counterpart.
func (o *Orchestrator) GetResponse(ctx context.Context, input string) (string, bool, error) {
	o.updateMemory(ctx, core.RoleUser, input)

	results := o.fanOut(ctx, input)

	references, searched := o.fanIn(results)
	if len(references) == 0 {
		return "", false, ErrAllAgentsFailed
	}

	// Direct augmentation on the raw input, independent of any reference
	// agent's search round. Like the reference outputs, the evidence gates
	// the search flag but is superseded by retrieval context before the
	// synthesis call.
	if o.webSearchEnabled && o.search != nil {
		evidence, err := o.search.Gather(ctx, input)
		if err != nil {
			o.logger.Warn("direct web augmentation failed", "error", err)
		} else if strings.Contains(evidence, searchSuccessMarker) {
			searched = true
		}
	}

	expansion := o.expandQuery(ctx, input)

	prompt := o.buildContext(ctx, input, expansion)

	answer, err := o.completer.Complete(ctx, model.Request{
		Model: o.synthesisAgent.Model(),
		Messages: []core.Message{
			core.SystemMessage(o.synthesisAgent.SystemPrompt()),
			core.UserMessage(prompt),
		},
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
	})
	if err != nil {
		return "", searched, fmt.Errorf("synthesis: %w", err)
	}

	o.updateMemory(ctx, core.RoleAssistant, answer)

	return answer, searched, nil
}

// searchSuccessMarker mirrors websearch.SuccessMarker; the orchestrator
// depends only on the agent.Searcher interface, so the discriminator substring
// is restated here.
const searchSuccessMarker = "Based on the following results:"

// fanOut invokes every reference agent concurrently on the same input and
// joins all results. Agents observe only their own input, never each other's
// output.
func (o *Orchestrator) fanOut(ctx context.Context, input string) []referenceResult {
	results := make([]referenceResult, len(o.referenceAgents))

	var wg sync.WaitGroup
	for i, a := range o.referenceAgents {
		wg.Add(1)
		go func(i int, a *agent.Agent) {
			defer wg.Done()
			text, searched, err := a.Generate(ctx, input)
			results[i] = referenceResult{text: text, searched: searched, err: err}
		}(i, a)
	}
	wg.Wait()

	return results
}

// fanIn collects surviving reference outputs, dropping failed agents and
// responses carrying the reserved error prefix, and ORs the search flags.
func (o *Orchestrator) fanIn(results []referenceResult) ([]string, bool) {
	var references []string
	searched := false
	for i, r := range results {
		name := o.referenceAgents[i].Name()
		switch {
		case r.err != nil:
			o.logger.Warn("reference agent failed", "agent", name, "error", r.err)
		case strings.HasPrefix(r.text, errorPrefix):
			o.logger.Warn("reference agent returned error response", "agent", name)
		default:
			references = append(references, r.text)
		}
		searched = searched || r.searched
	}
	return references, searched
}

// expandQuery asks a transient single-purpose agent for auxiliary queries.
// Expansion is best-effort: any completion or parse failure yields an empty
// collection and the turn proceeds on the original query alone.
func (o *Orchestrator) expandQuery(ctx context.Context, input string) agent.QueryExpansion {
	expander := agent.New(
		agent.QueryExpansionAgentName,
		o.primaryModel,
		agent.QueryExpansionPrompt,
		o.completer,
		func(opts *agent.Options) { opts.Logger = o.logger },
	)

	output, _, err := expander.Generate(ctx, fmt.Sprintf("Consider the following query: %s", input))
	if err != nil {
		o.logger.Warn("query expansion call failed", "error", err)
		return agent.QueryExpansion{}
	}

	expansion, err := agent.ParseQueryExpansion(output)
	if err != nil {
		o.logger.Warn("query expansion parse failed", "error", err)
		return agent.QueryExpansion{}
	}
	return expansion
}

// buildContext retrieves top-k chunks for the original input and each
// expansion query, deduplicating by verbatim substring against the
// accumulating prompt, and assembles the final context-plus-question prompt.
func (o *Orchestrator) buildContext(ctx context.Context, input string, expansion agent.QueryExpansion) string {
	var b strings.Builder
	b.WriteString(contextHeader)

	chunks, err := o.retrieve(ctx, input)
	if err != nil {
		o.logger.Warn("archival retrieval failed", "query", input, "error", err)
	}
	if len(chunks) == 0 {
		b.WriteString("No relevant documents found in archival memory.\n\n")
	}
	for _, c := range chunks {
		b.WriteString(c.Content)
		b.WriteString("\n\n")
	}

	for _, q := range expansion.Queries {
		chunks, err := o.retrieve(ctx, q.Query)
		if err != nil {
			o.logger.Warn("archival retrieval failed", "query", q.Query, "error", err)
			continue
		}
		for _, c := range chunks {
			// Linear substring dedup, acceptable at the expected chunk scale.
			if strings.Contains(b.String(), c.Content) {
				continue
			}
			b.WriteString(c.Content)
			b.WriteString("\n\n")
		}
	}

	b.WriteString(contextFooter)
	b.WriteString(input)
	return b.String()
}

// retrieve fetches top-k chunks with k = min(3, max(1, count)).
func (o *Orchestrator) retrieve(ctx context.Context, query string) ([]core.RetrievedChunk, error) {
	k := min(3, max(1, o.archival.Count()))
	return o.archival.Retrieve(ctx, query, k)
}

// updateMemory appends a turn to the event log and indexes it as archival
// context for future retrieval. Indexing failures are logged, not fatal.
func (o *Orchestrator) updateMemory(ctx context.Context, role core.Role, message string) {
	o.eventLog.Add(role, message)
	if err := o.archival.Add(ctx, message); err != nil {
		o.logger.Warn("archival ingest failed", "role", string(role), "error", err)
	}
}
