package prompt

import (
	"fmt"

	"github.com/legalmindpro/legalmind/internal/llm"
)

const systemPrompt = "You are a legal expert assistant. Format responses with:\n" +
	"- Clear section headers in **bold**\n" +
	"- Bullet points for lists\n" +
	"- Numbered steps when appropriate\n" +
	"- Risk scores (1-5) for risk items\n" +
	"- Priority levels for recommendations"

// Exchange builds the two-message prompt sent to the completion service:
// the fixed legal-expert persona plus a user message carrying the document
// excerpt (when present) and the instruction.
func Exchange(excerpt, instruction string) []llm.Message {
	messages := []llm.Message{{Role: "system", Content: systemPrompt}}
	if excerpt != "" {
		messages = append(messages, llm.Message{
			Role:    "user",
			Content: fmt.Sprintf("Document Content: %s\n\n%s", excerpt, instruction),
		})
		return messages
	}
	return append(messages, llm.Message{Role: "user", Content: instruction})
}
