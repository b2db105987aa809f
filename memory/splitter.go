package memory

import "strings"

// Splitting policy for document ingestion: a recursive separator cascade
// (paragraph, line, space, character) with a fixed maximum chunk size and no
// overlap, preserving separators in the output. This controls both embedding
// quality and dedup behavior during multi-query retrieval, so it is a policy
// decision rather than an incidental detail.
const defaultChunkSize = 512

// defaultSeparators is the cascade order; the empty string means a hard
// character cut.
var defaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter splits text into chunks of at most chunkSize bytes using a
// recursive separator cascade.
type Splitter struct {
	separators []string
	chunkSize  int
}

// SplitterOptions configure a Splitter.
type SplitterOptions struct {
	Separators []string
	ChunkSize  int
}

// NewSplitter creates a Splitter with the default cascade and chunk size.
func NewSplitter(optFns ...func(o *SplitterOptions)) *Splitter {
	opts := SplitterOptions{
		Separators: defaultSeparators,
		ChunkSize:  defaultChunkSize,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Splitter{separators: opts.Separators, chunkSize: opts.ChunkSize}
}

// Split divides text into chunks. Separators are kept as suffixes of the
// preceding piece, so concatenating the chunks reproduces the input. Chunks
// that are empty after trimming are dropped.
func (s *Splitter) Split(text string) []string {
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	if len(text) <= s.chunkSize {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}
	if len(separators) == 0 {
		return s.hardCut(text)
	}

	sep := separators[0]
	if sep == "" {
		return s.hardCut(text)
	}
	if !strings.Contains(text, sep) {
		return s.split(text, separators[1:])
	}

	var out []string
	var cur strings.Builder
	flush := func() {
		if chunk := cur.String(); strings.TrimSpace(chunk) != "" {
			out = append(out, chunk)
		}
		cur.Reset()
	}

	for _, piece := range strings.SplitAfter(text, sep) {
		if len(piece) > s.chunkSize {
			// Oversized piece: flush what we have and recurse with the
			// finer separators.
			flush()
			out = append(out, s.split(piece, separators[1:])...)
			continue
		}
		if cur.Len()+len(piece) > s.chunkSize {
			flush()
		}
		cur.WriteString(piece)
	}
	flush()
	return out
}

// hardCut slices text into chunkSize pieces at rune boundaries.
func (s *Splitter) hardCut(text string) []string {
	var out []string
	runes := []rune(text)
	for start := 0; start < len(runes); {
		end := start
		size := 0
		for end < len(runes) {
			rl := len(string(runes[end]))
			if size+rl > s.chunkSize && end > start {
				break
			}
			size += rl
			end++
		}
		chunk := string(runes[start:end])
		if strings.TrimSpace(chunk) != "" {
			out = append(out, chunk)
		}
		start = end
	}
	return out
}
