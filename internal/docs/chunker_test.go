package docs

import (
	"strings"
	"testing"
)

func TestSplitTextReconstructsInput(t *testing.T) {
	var lines []string
	for i := 0; i < 80; i++ {
		lines = append(lines, strings.Repeat("clause text ", 5))
	}
	text := strings.Join(lines, "\n")
	chunks := SplitText(text, 1000, 20)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	var rebuilt strings.Builder
	for i, chunk := range chunks {
		if len(chunk.Text) > 1000 {
			t.Fatalf("chunk %d exceeds bound: %d chars", i, len(chunk.Text))
		}
		if i == 0 && chunk.Overlap != 0 {
			t.Fatalf("first chunk has overlap %d", chunk.Overlap)
		}
		if i > 0 {
			if chunk.Overlap != 20 {
				t.Fatalf("chunk %d overlap = %d, want 20", i, chunk.Overlap)
			}
			prev := chunks[i-1].Text
			if !strings.HasPrefix(chunk.Text, prev[len(prev)-20:]) {
				t.Fatalf("chunk %d does not start with trailing overlap of chunk %d", i, i-1)
			}
		}
		rebuilt.WriteString(chunk.Body())
	}
	if rebuilt.String() != text {
		t.Fatalf("chunk bodies do not reconstruct the input")
	}
}

func TestSplitTextShortInputSingleChunk(t *testing.T) {
	text := "Clause A violates statute X.\nClause B is standard."
	chunks := SplitText(text, 1000, 20)
	if len(chunks) != 1 {
		t.Fatalf("expected exactly one chunk, got %d", len(chunks))
	}
	if chunks[0].Text != text {
		t.Fatalf("chunk text = %q, want %q", chunks[0].Text, text)
	}
	if chunks[0].Overlap != 0 {
		t.Fatalf("unexpected overlap %d", chunks[0].Overlap)
	}
}

func TestSplitTextOversizedLineKeptWhole(t *testing.T) {
	long := strings.Repeat("x", 1500)
	text := "short line\n" + long + "\ntail line"
	chunks := SplitText(text, 1000, 20)
	found := false
	var rebuilt strings.Builder
	for _, chunk := range chunks {
		if strings.Contains(chunk.Body(), long) {
			found = true
		}
		rebuilt.WriteString(chunk.Body())
	}
	if !found {
		t.Fatalf("oversized line was split across chunks")
	}
	if rebuilt.String() != text {
		t.Fatalf("chunk bodies do not reconstruct the input")
	}
}

func TestSplitTextEmptyInput(t *testing.T) {
	if chunks := SplitText("", 1000, 20); len(chunks) != 0 {
		t.Fatalf("expected no chunks for empty input, got %d", len(chunks))
	}
}

func TestSplitTextDefaults(t *testing.T) {
	chunks := SplitText("one line", 0, -5)
	if len(chunks) != 1 {
		t.Fatalf("expected one chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "one line" {
		t.Fatalf("unexpected chunk text %q", chunks[0].Text)
	}
}
