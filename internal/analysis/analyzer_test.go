package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/yojanabuddy/teachme/internal/llm"
)

func analyzerInput() Input {
	return Input{
		ConceptName:       "MGNREGA wage guarantee",
		ConceptDifficulty: "medium",
		Question:          "Why does the act guarantee days of work rather than a cash amount?",
		Answer:            "Because it gives 100 days of employment to rural households.",
		History: []HistoryTurn{
			{Speaker: "tutor", Message: "What does MGNREGA guarantee?"},
			{Speaker: "learner", Message: "Employment for rural people."},
		},
		CurrentScore: 20,
		Attempts:     2,
	}
}

func TestAnalyzer_ParsesJudgment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodAnalysis)})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	r, err := a.Analyze(context.Background(), analyzerInput())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if r.Understanding != UnderstandingGood {
		t.Errorf("understanding = %q, want good", r.Understanding)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("oracle calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "understanding-analysis" {
		t.Error("analysis request should carry the understanding-analysis schema")
	}
	if !strings.Contains(req.Messages[0].Content, "MGNREGA wage guarantee") {
		t.Error("prompt should name the concept")
	}
	if !strings.Contains(req.Messages[0].Content, "20/100") {
		t.Error("prompt should carry the current score")
	}
}

func TestAnalyzer_OracleDownBubblesUp(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	_, err := a.Analyze(context.Background(), analyzerInput())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T, want *llm.ErrProviderUnavailable", err)
	}
}

func TestAnalyzer_SchemaRejectionIsParseError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{
			Content: json.RawMessage(`{"understanding_demonstrated": 7}`),
			Err:     errors.New("schema validation failed"),
		},
	})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	_, err := a.Analyze(context.Background(), analyzerInput())
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
}
