package prompt

import (
	"strings"
	"testing"
)

func TestExchangeWithExcerpt(t *testing.T) {
	messages := Exchange("the clause text", "Summarize the document")
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != "system" {
		t.Fatalf("first message role = %q", messages[0].Role)
	}
	if !strings.Contains(messages[0].Content, "legal expert assistant") {
		t.Fatalf("system message missing persona: %q", messages[0].Content)
	}
	user := messages[1]
	if user.Role != "user" {
		t.Fatalf("second message role = %q", user.Role)
	}
	if user.Content != "Document Content: the clause text\n\nSummarize the document" {
		t.Fatalf("unexpected user message: %q", user.Content)
	}
}

func TestExchangeWithoutExcerpt(t *testing.T) {
	messages := Exchange("", "Summarize the document")
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[1].Content != "Summarize the document" {
		t.Fatalf("instruction-only message = %q", messages[1].Content)
	}
}
