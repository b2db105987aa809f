package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/philippgille/chromem-go"

	"github.com/vodalus/moa/core"
	"github.com/vodalus/moa/logging"
)

// ErrEmptyContent is returned when adding content that is empty after trimming.
var ErrEmptyContent = errors.New("content is empty")

// archivalCollection is the chromem collection holding all archival chunks.
const archivalCollection = "archival"

// Archival is the unbounded similarity-indexed chunk store backed by
// chromem-go, an embedded pure-Go vector database. Chunks are add-only: a
// correction is a new chunk (see the orchestrator's supersede operation), and
// retrieval ranking is delegated to the index's cosine similarity.
type Archival struct {
	mu     sync.RWMutex
	db     *chromem.DB
	col    *chromem.Collection
	embed  chromem.EmbeddingFunc
	count  int
	logger logging.Logger
}

// ArchivalOptions configure an Archival store.
type ArchivalOptions struct {
	Logger logging.Logger
}

// NewArchival creates an in-memory archival store using the given embedding
// function for both indexing and querying.
func NewArchival(embed chromem.EmbeddingFunc, optFns ...func(o *ArchivalOptions)) (*Archival, error) {
	opts := ArchivalOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(archivalCollection, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("create archival collection: %w", err)
	}

	return &Archival{db: db, col: col, embed: embed, logger: opts.Logger}, nil
}

// Add indexes a single chunk. Empty content (after trimming) is rejected.
func (a *Archival) Add(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	doc := chromem.Document{ID: core.NewID(), Content: content}
	if err := a.col.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("index chunk: %w", err)
	}
	a.count++
	return nil
}

// Retrieve returns up to k chunks most similar to the query, best-first. An
// empty index yields no results without error; k is clamped to the current
// chunk count internally.
func (a *Archival) Retrieve(ctx context.Context, query string, k int) ([]core.RetrievedChunk, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.count == 0 || k <= 0 {
		return nil, nil
	}
	if k > a.count {
		k = a.count
	}

	results, err := a.col.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("archival query: %w", err)
	}

	chunks := make([]core.RetrievedChunk, 0, len(results))
	for _, r := range results {
		chunks = append(chunks, core.RetrievedChunk{
			ID:      r.ID,
			Content: r.Content,
			Score:   float64(r.Similarity),
		})
	}
	return chunks, nil
}

// Clear drops all chunks and resets the running count.
func (a *Archival) Clear(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.db.DeleteCollection(archivalCollection); err != nil {
		return fmt.Errorf("drop archival collection: %w", err)
	}
	col, err := a.db.GetOrCreateCollection(archivalCollection, nil, a.embed)
	if err != nil {
		return fmt.Errorf("recreate archival collection: %w", err)
	}
	a.col = col
	a.count = 0
	return nil
}

// Count returns the running chunk count.
func (a *Archival) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.count
}
