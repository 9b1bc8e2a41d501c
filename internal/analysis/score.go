package analysis

import "strings"

// Risk score bounds reported to the UI and the email export.
const (
	minRiskScore = 20
	maxRiskScore = 80
)

// Clause-level terms that raise the heuristic risk score. Stems, so
// "terminated" and "termination" both count.
var riskTerms = []string{
	"terminat",
	"penalt",
	"liabilit",
	"indemnif",
	"breach",
	"damages",
	"arbitrat",
	"waiv",
	"default",
	"litigat",
}

// ScoreRisk derives a bounded risk score from the document text. Each
// distinct risk term found adds a fixed increment on top of the floor,
// clamped to the [minRiskScore, maxRiskScore] band.
func ScoreRisk(text string) int {
	lower := strings.ToLower(text)
	score := minRiskScore
	for _, term := range riskTerms {
		if strings.Contains(lower, term) {
			score += 6
		}
	}
	if score > maxRiskScore {
		score = maxRiskScore
	}
	return score
}
