package config

import (
	"os"
	"strings"
)

// Config carries the credential material and endpoints the service needs.
// Values come from the environment; cmd/legalmind loads a .env file first.
type Config struct {
	Addr string

	CompletionAPIKey   string
	CompletionEndpoint string
	ChatModel          string

	SpreadsheetID   string
	SheetRange      string
	CredentialsFile string

	MailjetAPIKey    string
	MailjetSecretKey string
	SenderEmail      string
	SenderName       string
	LogoPath         string
}

// FromEnv builds a Config from the process environment, applying defaults
// for everything except credentials.
func FromEnv() Config {
	return Config{
		Addr:               envOr("LEGALMIND_ADDR", ":8080"),
		CompletionAPIKey:   strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		CompletionEndpoint: envOr("COMPLETION_ENDPOINT", "https://api.groq.com/openai/v1"),
		ChatModel:          envOr("CHAT_MODEL", "mixtral-8x7b-32768"),
		SpreadsheetID:      strings.TrimSpace(os.Getenv("SPREADSHEET_ID")),
		SheetRange:         envOr("SHEET_RANGE", "Sheet1!A1"),
		CredentialsFile:    strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE")),
		MailjetAPIKey:      strings.TrimSpace(os.Getenv("EMAIL_API_KEY")),
		MailjetSecretKey:   strings.TrimSpace(os.Getenv("EMAIL_API_SECRET")),
		SenderEmail:        envOr("SENDER_EMAIL", "legalmindpro@gmail.com"),
		SenderName:         envOr("SENDER_NAME", "LegalMind Pro"),
		LogoPath:           envOr("LOGO_PATH", "assets/logo.jpeg"),
	}
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
