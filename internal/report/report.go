package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/legalmindpro/legalmind/internal/docs"
)

const (
	titleText  = "Legal Analysis Report"
	footerText = "Confidential - For Internal Use Only"
)

type Section struct {
	Title string
	Body  string
}

// Sections returns the three report sections for an analysis, substituting
// the fixed placeholders for empty fields so headers always have body text.
func Sections(analysis docs.Analysis) []Section {
	return []Section{
		{Title: "Executive Summary", Body: orPlaceholder(analysis.Summary, docs.NoSummary)},
		{Title: "Risk Assessment", Body: orPlaceholder(analysis.Risks, docs.NoRiskAssessment)},
		{Title: "Recommendations", Body: orPlaceholder(analysis.Recommendations, docs.NoRecommendations)},
	}
}

// Render lays out the printable analysis report and returns the finished
// PDF bytes. Rendering a document whose analysis holds only placeholders is
// valid output, not an error.
func Render(doc *docs.Document, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 15, 20)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Times", "B", 18)
	pdf.SetTextColor(255, 215, 0)
	pdf.CellFormat(0, 8, titleText, "", 1, "C", false, 0, "")

	pdf.SetFont("Times", "I", 10)
	pdf.SetTextColor(200, 200, 200)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Document: %s", doc.Name)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	for _, sec := range Sections(doc.Analysis) {
		pdf.SetFont("Times", "B", 14)
		pdf.SetTextColor(255, 215, 0)
		pdf.CellFormat(0, 6, sec.Title, "", 1, "", false, 0, "")
		pdf.SetFont("Times", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 6, tr(sec.Body), "", "", false)
		pdf.Ln(2)
	}

	pdf.SetY(-15)
	pdf.SetFont("Times", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, footerText, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the download name for a document's report.
func Filename(docName string) string {
	return docName + "_report.pdf"
}

// AttachmentName returns the report name used for the email attachment.
func AttachmentName(docName string) string {
	return docName + "_analysis_report.pdf"
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
