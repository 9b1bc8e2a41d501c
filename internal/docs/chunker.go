package docs

import "strings"

// Default chunking parameters for completion requests.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 20
)

// Chunk is a bounded slice of document text. Text carries an overlap prefix
// shared with the previous chunk; Overlap is the prefix length, so
// Text[Overlap:] is the portion unique to this chunk.
type Chunk struct {
	Text    string
	Overlap int
}

// Body returns the portion of the chunk not shared with its predecessor.
func (c Chunk) Body() string {
	if c.Overlap <= 0 || c.Overlap > len(c.Text) {
		return c.Text
	}
	return c.Text[c.Overlap:]
}

// SplitText splits text on newline boundaries into chunks of at most size
// characters. Lines accumulate greedily; when adding the next line would
// exceed the bound, a new chunk starts seeded with the trailing overlap of
// the previous chunk. A single line longer than size becomes its own
// oversized chunk. Concatenating the chunk bodies reproduces the input.
func SplitText(text string, size, overlap int) []Chunk {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	var chunks []Chunk
	var buf strings.Builder
	prefix := ""
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		full := prefix + buf.String()
		chunks = append(chunks, Chunk{Text: full, Overlap: len(prefix)})
		if overlap < len(full) {
			prefix = full[len(full)-overlap:]
		} else {
			prefix = full
		}
		buf.Reset()
	}
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		if buf.Len() > 0 && len(prefix)+buf.Len()+len(line) > size {
			flush()
		}
		buf.WriteString(line)
	}
	flush()
	return chunks
}
