package analysis

import "strings"

// Section labels the chunk prompt asks the model to emit.
const (
	riskLabel           = "Risks:"
	recommendationLabel = "Recommendations:"
)

// Per-chunk placeholders used when a response cannot be parsed.
const (
	NoRisksPlaceholder           = "No risks identified."
	NoRecommendationsPlaceholder = "No recommendations provided."
)

// ParseSections extracts the two labeled sections from a raw completion
// response. Both labels must appear, in order; the risks text is the span
// between them and the recommendations text is everything after the second
// label, each trimmed of surrounding whitespace. ok is false when the
// response does not match the grammar.
func ParseSections(raw string) (risks, recommendations string, ok bool) {
	riskStart := strings.Index(raw, riskLabel)
	recommendationStart := strings.Index(raw, recommendationLabel)
	if riskStart < 0 || recommendationStart < 0 || recommendationStart < riskStart+len(riskLabel) {
		return "", "", false
	}
	risks = strings.TrimSpace(raw[riskStart+len(riskLabel) : recommendationStart])
	recommendations = strings.TrimSpace(raw[recommendationStart+len(recommendationLabel):])
	return risks, recommendations, true
}
