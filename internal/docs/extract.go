package docs

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const timestampLayout = "2006-01-02 15:04"

// Extracted is the result of pulling text and metadata out of an upload.
type Extracted struct {
	Content  string
	Metadata Metadata
}

// Extract pulls the full text and metadata out of an uploaded file. PDF
// uploads go through the pdf reader; anything else is decoded as UTF-8
// plain text.
func Extract(name string, data []byte, uploadedAt time.Time) (Extracted, error) {
	if strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return extractPDF(data)
	}
	if !utf8.Valid(data) {
		return Extracted{}, fmt.Errorf("decode %s: not valid UTF-8 text", name)
	}
	return Extracted{
		Content: string(data),
		Metadata: Metadata{
			Pages:    "N/A",
			Author:   "Unknown",
			Created:  uploadedAt.Format(timestampLayout),
			Modified: "N/A",
		},
	}, nil
}

func extractPDF(data []byte) (Extracted, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Extracted{}, fmt.Errorf("read pdf: %w", err)
	}
	var content strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return Extracted{}, fmt.Errorf("extract page %d: %w", i, err)
		}
		content.WriteString(text)
	}
	meta := Metadata{
		Pages:    strconv.Itoa(reader.NumPage()),
		Author:   "Unknown",
		Created:  "Unknown",
		Modified: "Unknown",
	}
	info := reader.Trailer().Key("Info")
	if author := infoString(info, "Author"); author != "" {
		meta.Author = author
	}
	if created := infoString(info, "CreationDate"); created != "" {
		meta.Created = created
	}
	if modified := infoString(info, "ModDate"); modified != "" {
		meta.Modified = modified
	}
	return Extracted{Content: content.String(), Metadata: meta}, nil
}

func infoString(info pdf.Value, key string) string {
	if info.Kind() != pdf.Dict {
		return ""
	}
	value := info.Key(key)
	if value.Kind() != pdf.String {
		return ""
	}
	return strings.TrimSpace(value.Text())
}
