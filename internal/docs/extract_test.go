package docs

import (
	"testing"
	"time"
)

func TestExtractPlainText(t *testing.T) {
	uploaded := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	extracted, err := Extract("notes.txt", []byte("Clause A violates statute X.\nClause B is standard."), uploaded)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if extracted.Content != "Clause A violates statute X.\nClause B is standard." {
		t.Fatalf("unexpected content: %q", extracted.Content)
	}
	meta := extracted.Metadata
	if meta.Pages != "N/A" || meta.Author != "Unknown" || meta.Modified != "N/A" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if meta.Created != "2025-03-14 09:30" {
		t.Fatalf("created = %q", meta.Created)
	}
}

func TestExtractRejectsInvalidUTF8(t *testing.T) {
	if _, err := Extract("notes.txt", []byte{0xff, 0xfe, 0xfd}, time.Now()); err == nil {
		t.Fatalf("expected decode error for invalid UTF-8")
	}
}

func TestExtractRejectsMalformedPDF(t *testing.T) {
	if _, err := Extract("contract.pdf", []byte("not a pdf at all"), time.Now()); err == nil {
		t.Fatalf("expected error for malformed pdf")
	}
}

func TestFingerprintStable(t *testing.T) {
	a := Fingerprint("contract.txt", []byte("body"))
	b := Fingerprint("contract.txt", []byte("body"))
	if a != b {
		t.Fatalf("fingerprint not stable: %q vs %q", a, b)
	}
	if a == Fingerprint("contract.txt", []byte("other body")) {
		t.Fatalf("fingerprint should change with content")
	}
	if a == Fingerprint("other.txt", []byte("body")) {
		t.Fatalf("fingerprint should change with name")
	}
	if len(a) != 16 {
		t.Fatalf("fingerprint length = %d, want 16", len(a))
	}
}
