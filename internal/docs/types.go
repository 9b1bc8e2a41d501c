package docs

import "time"

// Conversation roles recorded in the session history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Placeholder strings rendered when an analysis field is unavailable.
const (
	NoSummary         = "No summary available."
	NoRiskAssessment  = "No risk assessment available."
	NoRecommendations = "No recommendations available."
)

// Metadata describes an uploaded document. Fields hold "Unknown" or "N/A"
// when the upload format does not carry them.
type Metadata struct {
	Pages    string `json:"pages"`
	Author   string `json:"author"`
	Created  string `json:"created"`
	Modified string `json:"modified"`
}

// Analysis holds the derived fields attached to one uploaded document.
// Once populated every field is present; unavailable fields carry the
// fixed placeholder strings.
type Analysis struct {
	RiskScore       int    `json:"risk_score"`
	Summary         string `json:"summary"`
	Risks           string `json:"risks"`
	Recommendations string `json:"recommendations"`
}

// Populated reports whether the analysis has been computed.
func (a Analysis) Populated() bool {
	return a.Summary != "" && a.Risks != "" && a.Recommendations != ""
}

// Document is one uploaded file together with its extracted text and
// computed analysis. Lives only in session memory.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Content    string    `json:"-"`
	Metadata   Metadata  `json:"metadata"`
	Analysis   Analysis  `json:"analysis"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ChunkResult is the per-chunk outcome of the risks-and-recommendations
// pass; consumed by the spreadsheet export.
type ChunkResult struct {
	Context         string `json:"context"`
	Risks           string `json:"risks"`
	Recommendations string `json:"recommendations"`
}

// ConversationTurn is one message in the session chat history.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
