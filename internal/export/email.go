package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/mail"
	"os"
	"strings"

	mailjet "github.com/mailjet/mailjet-apiv3-go/v4"

	"github.com/legalmindpro/legalmind/internal/common"
	"github.com/legalmindpro/legalmind/internal/config"
	"github.com/legalmindpro/legalmind/internal/docs"
	"github.com/legalmindpro/legalmind/internal/report"
)

// Risk scores above this threshold switch the email's urgency language.
const urgentRiskThreshold = 70

// Mailer sends the analysis report and original document to a recipient
// through the transactional email provider.
type Mailer struct {
	client     *mailjet.Client
	sender     string
	senderName string
	logoPath   string
}

func NewMailer(cfg config.Config) *Mailer {
	var client *mailjet.Client
	if cfg.MailjetAPIKey != "" && cfg.MailjetSecretKey != "" {
		client = mailjet.NewMailjetClient(cfg.MailjetAPIKey, cfg.MailjetSecretKey)
	}
	return &Mailer{
		client:     client,
		sender:     cfg.SenderEmail,
		senderName: cfg.SenderName,
		logoPath:   cfg.LogoPath,
	}
}

// ValidateAddress checks the recipient against standard address syntax and
// returns the normalized address. Invalid addresses are rejected before any
// message is built or sent.
func ValidateAddress(addr string) (string, error) {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return "", fmt.Errorf("recipient address required")
	}
	parsed, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid recipient address %q: %w", trimmed, err)
	}
	return parsed.Address, nil
}

// SendReport dispatches the HTML report email with the rendered report and
// the original document content attached. recipient must already be
// validated via ValidateAddress.
func (m *Mailer) SendReport(recipient string, doc *docs.Document, reportPDF []byte) error {
	if m.client == nil {
		return fmt.Errorf("email provider not configured")
	}
	body, err := m.renderBody(doc)
	if err != nil {
		return err
	}
	attachments := mailjet.AttachmentsV31{
		{
			ContentType:   "application/pdf",
			Filename:      report.AttachmentName(doc.Name),
			Base64Content: base64.StdEncoding.EncodeToString(reportPDF),
		},
		{
			ContentType:   originalContentType(doc.Name),
			Filename:      doc.Name,
			Base64Content: base64.StdEncoding.EncodeToString([]byte(doc.Content)),
		},
	}
	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{{
			From:        &mailjet.RecipientV31{Email: m.sender, Name: m.senderName},
			To:          &mailjet.RecipientsV31{{Email: recipient}},
			Subject:     fmt.Sprintf("Legal Analysis Report: %s", doc.Name),
			HTMLPart:    body,
			Attachments: &attachments,
		}},
	}
	if _, err := m.client.SendMailV31(&messages); err != nil {
		return fmt.Errorf("send report email: %w", err)
	}
	common.Logger().Info("export: report emailed", "recipient", recipient, "document", doc.Name)
	return nil
}

var emailTemplate = template.Must(template.New("report_email").Parse(`<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6;">
    <div style="max-width: 600px; margin: 0 auto;">
      {{if .LogoSrc}}<img src="{{.LogoSrc}}" alt="LegalMind Pro Logo" style="max-width: 200px; margin-bottom: 20px;">{{end}}
      <h2 style="color: #2A2F4F;">Legal Document Analysis Report</h2>
      <p>Dear Client,</p>
      <p>We have completed the analysis of your document:
      <strong>{{.DocumentName}}</strong>. Please review the attached report containing:</p>
      <ul>
        <li>Comprehensive risk assessment</li>
        <li>Detailed recommendations</li>
        <li>Key legal implications</li>
      </ul>
      <h3 style="color: #2A2F4F; margin-top: 25px;">Risk Overview</h3>
      <p>Our analysis identified critical risks requiring attention.
      The document received a risk score of {{.RiskScore}}/100, indicating {{.RiskStatement}}.</p>
      <h3 style="color: #2A2F4F; margin-top: 25px;">Next Steps</h3>
      <ul>
        <li>Review the attached report and original document</li>
        <li>Prioritize implementation of recommendations</li>
        <li>Contact us for clarification if needed</li>
      </ul>
      <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
        <p>Best regards,<br><strong>The {{.SenderName}} Team</strong></p>
      </div>
    </div>
  </body>
</html>`))

type emailData struct {
	LogoSrc       template.URL
	DocumentName  string
	RiskScore     int
	RiskStatement string
	SenderName    string
}

func (m *Mailer) renderBody(doc *docs.Document) (string, error) {
	data := emailData{
		DocumentName:  doc.Name,
		RiskScore:     doc.Analysis.RiskScore,
		RiskStatement: riskStatement(doc.Analysis.RiskScore),
		SenderName:    m.senderName,
	}
	if logo, err := os.ReadFile(m.logoPath); err == nil {
		data.LogoSrc = template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(logo))
	} else {
		common.Logger().Warn("export: branding image unavailable, sending without it", "path", m.logoPath, "error", err)
	}
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email body: %w", err)
	}
	return buf.String(), nil
}

func riskStatement(score int) string {
	if score > urgentRiskThreshold {
		return "urgent attention required"
	}
	return "moderate risk level"
}

func originalContentType(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return "application/pdf"
	}
	return "text/plain; charset=utf-8"
}
