package analysis

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/legalmindpro/legalmind/internal/docs"
	"github.com/legalmindpro/legalmind/internal/llm"
)

type scriptedProvider struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (p *scriptedProvider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	p.calls++
	p.prompts = append(p.prompts, messages[len(messages)-1].Content)
	if p.err != nil {
		return "", p.err
	}
	if len(p.responses) == 0 {
		return "", fmt.Errorf("no scripted response")
	}
	resp := p.responses[0]
	if len(p.responses) > 1 {
		p.responses = p.responses[1:]
	}
	return resp, nil
}

func (p *scriptedProvider) Name() string { return "scripted" }

func TestChunkReportSingleChunk(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"Risks: none found\nRecommendations: review clause A"}}
	analyzer := New(provider)
	text := "Clause A violates statute X.\nClause B is standard."
	results := analyzer.ChunkReport(context.Background(), text)
	if len(results) != 1 {
		t.Fatalf("expected 1 chunk result, got %d", len(results))
	}
	if results[0].Context != text {
		t.Fatalf("context = %q, want %q", results[0].Context, text)
	}
	if results[0].Risks != "none found" {
		t.Fatalf("risks = %q, want %q", results[0].Risks, "none found")
	}
	if results[0].Recommendations != "review clause A" {
		t.Fatalf("recommendations = %q, want %q", results[0].Recommendations, "review clause A")
	}
	if provider.calls != 1 {
		t.Fatalf("expected 1 completion call, got %d", provider.calls)
	}
}

func TestChunkReportUnparseableFallsBackPerChunk(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		"unstructured answer",
		"Risks: vague indemnity\nRecommendations: tighten wording",
	}}
	analyzer := New(provider)
	line := strings.Repeat("a", 600)
	text := line + "\n" + line
	results := analyzer.ChunkReport(context.Background(), text)
	if len(results) != 2 {
		t.Fatalf("expected 2 chunk results, got %d", len(results))
	}
	if results[0].Risks != NoRisksPlaceholder || results[0].Recommendations != NoRecommendationsPlaceholder {
		t.Fatalf("chunk 0 should carry placeholders, got %+v", results[0])
	}
	if results[1].Risks != "vague indemnity" || results[1].Recommendations != "tighten wording" {
		t.Fatalf("chunk 1 should parse, got %+v", results[1])
	}
}

func TestChunkReportCompletionErrorAbsorbedPerChunk(t *testing.T) {
	provider := &scriptedProvider{err: fmt.Errorf("service unavailable")}
	analyzer := New(provider)
	results := analyzer.ChunkReport(context.Background(), "some clause text")
	if len(results) != 1 {
		t.Fatalf("expected 1 chunk result, got %d", len(results))
	}
	if results[0].Risks != NoRisksPlaceholder || results[0].Recommendations != NoRecommendationsPlaceholder {
		t.Fatalf("failed chunk should carry placeholders, got %+v", results[0])
	}
}

func TestAnalyzeDocumentPopulatesEveryField(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"the summary", "the risks", "the recommendations"}}
	analyzer := New(provider)
	analysis := analyzer.AnalyzeDocument(context.Background(), "plain agreement text")
	if analysis.Summary != "the summary" || analysis.Risks != "the risks" || analysis.Recommendations != "the recommendations" {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}
	if !analysis.Populated() {
		t.Fatalf("analysis should be populated")
	}
	if provider.calls != 3 {
		t.Fatalf("expected 3 completion calls, got %d", provider.calls)
	}
}

func TestAnalyzeDocumentFailureYieldsPlaceholders(t *testing.T) {
	provider := &scriptedProvider{err: fmt.Errorf("timeout")}
	analyzer := New(provider)
	analysis := analyzer.AnalyzeDocument(context.Background(), "text")
	if analysis.Summary != docs.NoSummary {
		t.Fatalf("summary = %q, want placeholder", analysis.Summary)
	}
	if analysis.Risks != docs.NoRiskAssessment {
		t.Fatalf("risks = %q, want placeholder", analysis.Risks)
	}
	if analysis.Recommendations != docs.NoRecommendations {
		t.Fatalf("recommendations = %q, want placeholder", analysis.Recommendations)
	}
	if !analysis.Populated() {
		t.Fatalf("analysis must never expose a partial state")
	}
}

func TestAnalyzeDocumentTruncatesExcerpt(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"s", "r", "c"}}
	analyzer := New(provider)
	long := strings.Repeat("z", maxAnalysisChars+500)
	analyzer.AnalyzeDocument(context.Background(), long)
	for i, p := range provider.prompts {
		if len(p) > maxAnalysisChars+300 {
			t.Fatalf("prompt %d not truncated: %d chars", i, len(p))
		}
	}
}

func TestScoreRiskBounds(t *testing.T) {
	if got := ScoreRisk("a plain note with no concerning language"); got != 20 {
		t.Fatalf("benign text score = %d, want 20", got)
	}
	loaded := "termination penalty liability indemnification breach damages arbitration waiver default litigation"
	if got := ScoreRisk(loaded); got != 80 {
		t.Fatalf("loaded text score = %d, want 80", got)
	}
	if got := ScoreRisk("early termination triggers a penalty"); got != 32 {
		t.Fatalf("two-term score = %d, want 32", got)
	}
}
