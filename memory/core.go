// Package memory implements the engine's two-tier memory model plus
// conversational bookkeeping: a small structured core memory persisted to a
// JSON file, an unbounded archival store of similarity-indexed text chunks
// backed by an embedded vector database, and an append-only event log.
// Document ingestion helpers (recursive splitting, txt/pdf/csv readers) live
// here as well because chunking policy determines retrieval granularity.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Core memory sections. The three named sections always exist; editing an
// unknown section auto-creates it.
const (
	SectionPersona    = "persona"
	SectionUser       = "user"
	SectionScratchpad = "scratchpad"
)

// Sections returns the fixed section names every core document starts with.
func Sections() []string {
	return []string{SectionPersona, SectionUser, SectionScratchpad}
}

// CoreDocument is the structured core memory content: section name to
// key/value mapping.
type CoreDocument map[string]map[string]string

// emptyCoreDocument returns a fresh document with the three named sections.
func emptyCoreDocument() CoreDocument {
	doc := make(CoreDocument, 3)
	for _, s := range Sections() {
		doc[s] = map[string]string{}
	}
	return doc
}

// clone deep-copies the document so callers cannot mutate internal state.
func (d CoreDocument) clone() CoreDocument {
	out := make(CoreDocument, len(d))
	for section, kv := range d {
		cp := make(map[string]string, len(kv))
		for k, v := range kv {
			cp[k] = v
		}
		out[section] = cp
	}
	return out
}

// CoreMemory is the file-backed structured store. It loads on construction
// and writes through on every edit and clear; persistence is last-write-wins
// with no transaction guarantees.
type CoreMemory struct {
	mu   sync.RWMutex
	path string
	doc  CoreDocument
}

// NewCoreMemory loads core memory from path, creating an empty three-section
// document (and any missing parent directories) on first run.
func NewCoreMemory(path string) (*CoreMemory, error) {
	m := &CoreMemory{path: path, doc: emptyCoreDocument()}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := m.persistLocked(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("read core memory: %w", err)
	default:
		var doc CoreDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse core memory %s: %w", path, err)
		}
		// The named sections are always present even if the file predates them.
		for _, s := range Sections() {
			if doc[s] == nil {
				doc[s] = map[string]string{}
			}
		}
		m.doc = doc
	}

	return m, nil
}

// Load returns a deep copy of the current document.
func (m *CoreMemory) Load() CoreDocument {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.doc.clone()
}

// Edit sets section.key = value, auto-creating an unknown section, and writes
// the document through to disk.
func (m *CoreMemory) Edit(section, key, value string) (CoreDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.doc[section] == nil {
		m.doc[section] = map[string]string{}
	}
	m.doc[section][key] = value

	if err := m.persistLocked(); err != nil {
		return nil, err
	}
	return m.doc.clone(), nil
}

// Clear resets the document to the empty three-section shape and persists it.
func (m *CoreMemory) Clear() (CoreDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.doc = emptyCoreDocument()
	if err := m.persistLocked(); err != nil {
		return nil, err
	}
	return m.doc.clone(), nil
}

// Path returns the backing file path.
func (m *CoreMemory) Path() string { return m.path }

func (m *CoreMemory) persistLocked() error {
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create core memory dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(m.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode core memory: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("write core memory: %w", err)
	}
	return nil
}
