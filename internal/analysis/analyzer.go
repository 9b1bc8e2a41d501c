package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/legalmindpro/legalmind/internal/common"
	"github.com/legalmindpro/legalmind/internal/docs"
	"github.com/legalmindpro/legalmind/internal/llm"
	"github.com/legalmindpro/legalmind/internal/prompt"
)

// Uploads are truncated before analysis to stay within model input limits.
const maxAnalysisChars = 12000

const (
	summaryInstruction = "Provide a comprehensive 5-point executive summary with bold headings using **"
	risksInstruction   = "Identify and explain top 5 risks with:\n" +
		"1. Risk title in bold\n2. Severity score (1-5)\n3. Explanation"
	recommendationsInstruction = "Provide 5 detailed recommendations with:\n" +
		"1. Recommendation title in bold\n2. Implementation steps\n3. Priority level"
)

// Analyzer runs completion-backed analysis over uploaded documents.
type Analyzer struct {
	provider llm.Provider
}

func New(provider llm.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// AnalyzeDocument computes the full analysis record for an upload: risk
// score plus summary, risk, and recommendation narratives over the first
// maxAnalysisChars of text. A failed completion call degrades that field to
// its placeholder; the returned record always has every field populated.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, text string) docs.Analysis {
	excerpt := truncate(text, maxAnalysisChars)
	return docs.Analysis{
		RiskScore:       ScoreRisk(text),
		Summary:         a.respond(ctx, excerpt, summaryInstruction, docs.NoSummary),
		Risks:           a.respond(ctx, excerpt, risksInstruction, docs.NoRiskAssessment),
		Recommendations: a.respond(ctx, excerpt, recommendationsInstruction, docs.NoRecommendations),
	}
}

// Answer runs a free-form user prompt against an optional document excerpt.
func (a *Analyzer) Answer(ctx context.Context, excerpt, question string) (string, error) {
	return a.provider.Chat(ctx, prompt.Exchange(excerpt, question))
}

// ChunkReport splits the document text into overlapping chunks and runs the
// risks-and-recommendations prompt over each one in order. Chunks are
// processed strictly one at a time; a failed call or an unparseable
// response degrades that chunk alone to the fixed placeholders.
func (a *Analyzer) ChunkReport(ctx context.Context, text string) []docs.ChunkResult {
	logger := common.Logger()
	chunks := docs.SplitText(text, docs.DefaultChunkSize, docs.DefaultChunkOverlap)
	results := make([]docs.ChunkResult, 0, len(chunks))
	for i, chunk := range chunks {
		result := docs.ChunkResult{
			Context:         chunk.Text,
			Risks:           NoRisksPlaceholder,
			Recommendations: NoRecommendationsPlaceholder,
		}
		raw, err := a.provider.Chat(ctx, prompt.Exchange("", chunkInstruction(chunk.Text)))
		if err != nil {
			logger.Warn("analysis: chunk completion failed", "chunk", i, "error", err)
		} else if risks, recommendations, ok := ParseSections(raw); ok {
			result.Risks = risks
			result.Recommendations = recommendations
		} else {
			logger.Debug("analysis: chunk response missing section labels", "chunk", i)
		}
		results = append(results, result)
	}
	return results
}

func (a *Analyzer) respond(ctx context.Context, excerpt, instruction, fallback string) string {
	answer, err := a.provider.Chat(ctx, prompt.Exchange(excerpt, instruction))
	if err != nil {
		common.Logger().Warn("analysis: completion failed", "error", err)
		return fallback
	}
	if strings.TrimSpace(answer) == "" {
		return fallback
	}
	return answer
}

func chunkInstruction(chunk string) string {
	return fmt.Sprintf("Analyze the following text and provide a structured response:\n\n"+
		"Text: %s\n\n"+
		"Provide the following details:\n"+
		"- Risks: Summarize potential risks, issues, or hidden dependencies clearly.\n"+
		"- Recommendations: Suggest practical, clear, and actionable recommendations to mitigate the risks.\n\n"+
		"Output format:\n"+
		"Risks: <List the risks in simple points>\n"+
		"Recommendations: <List the recommendations in simple points>", chunk)
}

func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	return text[:limit]
}
