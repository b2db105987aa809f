package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vodalus/moa/core"
	"github.com/vodalus/moa/memory"
)

// Command surface: each method maps 1:1 to a shell command and returns a
// human-readable status string. None of these participate in the turn
// pipeline; core memory in particular is mutated only through explicit user
// commands.

// ToggleWebSearch enables or disables direct web augmentation.
func (o *Orchestrator) ToggleWebSearch(enabled bool) string {
	o.webSearchEnabled = enabled
	if enabled {
		return "Web search enabled"
	}
	return "Web search disabled"
}

// WebSearchEnabled reports the current web augmentation setting.
func (o *Orchestrator) WebSearchEnabled() bool { return o.webSearchEnabled }

// LoadCoreMemory returns a copy of the structured core memory document.
func (o *Orchestrator) LoadCoreMemory() memory.CoreDocument {
	return o.coreMemory.Load()
}

// EditCoreMemory sets section.key = value in core memory, auto-creating an
// unknown section.
func (o *Orchestrator) EditCoreMemory(section, key, value string) (string, error) {
	if _, err := o.coreMemory.Edit(section, key, value); err != nil {
		return "", err
	}
	return fmt.Sprintf("Core memory updated: %s.%s = %s", section, key, value), nil
}

// ClearCoreMemory resets core memory to the empty three-section shape.
func (o *Orchestrator) ClearCoreMemory() (string, error) {
	if _, err := o.coreMemory.Clear(); err != nil {
		return "", err
	}
	return "Core memory cleared successfully.", nil
}

// SearchArchivalMemory returns up to five chunks similar to the query.
func (o *Orchestrator) SearchArchivalMemory(ctx context.Context, query string) ([]core.RetrievedChunk, error) {
	return o.archival.Retrieve(ctx, query, 5)
}

// AddToArchivalMemory indexes content directly.
func (o *Orchestrator) AddToArchivalMemory(ctx context.Context, content string) (string, error) {
	if err := o.archival.Add(ctx, content); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added to archival memory: %s", content), nil
}

// ClearArchivalMemory drops all archival chunks.
func (o *Orchestrator) ClearArchivalMemory(ctx context.Context) (string, error) {
	if err := o.archival.Clear(ctx); err != nil {
		return "", err
	}
	return "Archival memory cleared successfully.", nil
}

// SupersedeArchivalMemory adds corrected content as a new chunk. Archival
// memory is add-only: the superseded content is not removed, and the status
// string says so rather than hiding it.
func (o *Orchestrator) SupersedeArchivalMemory(ctx context.Context, newContent string) (string, error) {
	if err := o.archival.Add(ctx, newContent); err != nil {
		return "", err
	}
	return fmt.Sprintf("New content %q added to archival memory. Previous content is not removed: archival memory is add-only.", newContent), nil
}

// UploadDocument reads a file (txt, pdf or csv), splits it into chunks and
// indexes every chunk.
func (o *Orchestrator) UploadDocument(ctx context.Context, path string) (string, error) {
	content, err := memory.ReadDocument(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("file %s is empty or could not be read", path)
	}

	splits := o.splitter.Split(content)
	for _, chunk := range splits {
		if err := o.archival.Add(ctx, chunk); err != nil {
			return "", fmt.Errorf("index chunk of %s: %w", path, err)
		}
	}
	return fmt.Sprintf("Document %s uploaded and processed successfully. Added %d chunks to archival memory.", path, len(splits)), nil
}

// MemorySummary renders the bookkeeping block: archival chunk count, event
// log size and the current core memory content.
func (o *Orchestrator) MemorySummary() string {
	doc, err := json.MarshalIndent(o.coreMemory.Load(), "", "  ")
	if err != nil {
		doc = []byte("{}")
	}
	return fmt.Sprintf(
		"Archival Memories:%d\nConversation History Entries:%d\n\nCore Memory Content:\n%s",
		o.archival.Count(), o.eventLog.Len(), doc,
	)
}

// AgentNames lists the reference agents followed by the synthesis agent.
func (o *Orchestrator) AgentNames() []string {
	names := make([]string, 0, len(o.referenceAgents)+1)
	for _, a := range o.referenceAgents {
		names = append(names, a.Name())
	}
	return append(names, o.synthesisAgent.Name())
}

// Model returns the primary model identifier (the synthesis agent's model).
func (o *Orchestrator) Model() string { return o.primaryModel }

// SetModel retargets the synthesis agent and updates the primary-model alias
// used by the transient query-expansion agent.
func (o *Orchestrator) SetModel(id string) {
	o.primaryModel = id
	o.synthesisAgent.SetModel(id)
}

// EventLogLen returns the number of recorded conversational turns.
func (o *Orchestrator) EventLogLen() int { return o.eventLog.Len() }

// ArchivalCount returns the running archival chunk count.
func (o *Orchestrator) ArchivalCount() int { return o.archival.Count() }
