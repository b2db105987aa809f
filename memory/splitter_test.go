package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitter_ShortTextIsOneChunk(t *testing.T) {
	s := NewSplitter()
	chunks := s.Split("a short paragraph")
	require.Len(t, chunks, 1)
	assert.Equal(t, "a short paragraph", chunks[0])
}

func TestSplitter_EmptyTextYieldsNothing(t *testing.T) {
	s := NewSplitter()
	assert.Empty(t, s.Split(""))
	assert.Empty(t, s.Split("   \n\n  "))
}

func TestSplitter_RespectsChunkSize(t *testing.T) {
	s := NewSplitter(func(o *SplitterOptions) { o.ChunkSize = 64 })

	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("some words in a line\n")
	}

	for _, chunk := range s.Split(b.String()) {
		assert.LessOrEqual(t, len(chunk), 64)
	}
}

func TestSplitter_PrefersParagraphBoundaries(t *testing.T) {
	s := NewSplitter(func(o *SplitterOptions) { o.ChunkSize = 40 })

	text := "first paragraph here\n\nsecond paragraph here\n\nthird paragraph here"
	chunks := s.Split(text)

	require.GreaterOrEqual(t, len(chunks), 2)
	assert.Equal(t, "first paragraph here\n\n", chunks[0], "separator is preserved as a suffix")
}

func TestSplitter_PreservesContentRoundTrip(t *testing.T) {
	s := NewSplitter(func(o *SplitterOptions) { o.ChunkSize = 32 })

	text := "alpha beta gamma delta\nepsilon zeta eta theta\n\niota kappa lambda mu nu xi omicron pi"
	chunks := s.Split(text)

	assert.Equal(t, text, strings.Join(chunks, ""), "concatenating chunks reproduces the input")
}

func TestSplitter_HardCutsUnbreakableRuns(t *testing.T) {
	s := NewSplitter(func(o *SplitterOptions) { o.ChunkSize = 10 })

	chunks := s.Split(strings.Repeat("x", 35))
	require.Len(t, chunks, 4)
	for _, chunk := range chunks[:3] {
		assert.Len(t, chunk, 10)
	}
	assert.Len(t, chunks[3], 5)
}
