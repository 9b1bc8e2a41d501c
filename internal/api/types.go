package api

import "github.com/legalmindpro/legalmind/internal/docs"

type uploadResponse struct {
	Documents []documentSummary `json:"documents"`
	Skipped   int               `json:"skipped,omitempty"`
	Errors    []uploadError     `json:"errors,omitempty"`
}

type uploadError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type documentSummary struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Selected   bool          `json:"selected"`
	Metadata   docs.Metadata `json:"metadata"`
	Analysis   docs.Analysis `json:"analysis"`
	UploadedAt string        `json:"uploaded_at"`
}

type documentDetail struct {
	documentSummary
	Preview   string `json:"preview"`
	Truncated bool   `json:"truncated"`
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type chatResponse struct {
	Answer   string `json:"answer,omitempty"`
	Error    string `json:"error,omitempty"`
	Provider string `json:"provider"`
}

type historyResponse struct {
	History []docs.ConversationTurn `json:"history"`
}

type viewRequest struct {
	Mode string `json:"mode"`
}

type emailExportRequest struct {
	Recipient string `json:"recipient"`
}

type sheetExportResponse struct {
	Rows int `json:"rows"`
}

type statusResponse struct {
	Status string `json:"status"`
}
