package completion

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/yojanabuddy/teachme/internal/llm"
)

const sampleReport = `{
	"exam_risk_areas": [
		{"risk_level":"high","area":"GST revenue sharing","issue_type":"concept","fix":"Redo the devolution formula","exam_impact":"Direct 2-mark questions every year"}
	],
	"revision_plan": [
		{"focus":"GST council","task":"Write the voting split from memory","key_fact":"Centre holds one-third of GST council voting weight"},
		{"focus":"MGNREGA","task":"List the entitlements","key_fact":"100 days of guaranteed wage employment per rural household"},
		{"focus":"Answer structure","task":"Practice two 150-word answers","key_fact":"State the provision before the analysis"}
	],
	"performance_breakdown": {
		"conceptual_understanding": 72,
		"writing_skills": 60,
		"exam_readiness": 65,
		"consistency": 80,
		"strengths": ["Retains scheme numbers well"],
		"improvements": ["Connect provisions to their purpose"]
	},
	"motivational_message": "You mastered every concept you attempted today. Keep that pace."
}`

func sampleInput() Input {
	return Input{
		Subject: "Indian Polity",
		Concepts: []ConceptOutcome{
			{Name: "GST revenue sharing", Difficulty: "hard", FinalScore: 85, Attempts: 4, Misconceptions: []string{"thinks states set GST rates"}, ProbesAsked: 2},
			{Name: "MGNREGA wage guarantee", Difficulty: "medium", FinalScore: 90, Attempts: 3, ProbesAsked: 1},
		},
		TotalSteps:     7,
		CorrectAnswers: 5,
		Accuracy:       5.0 / 7.0,
		WeakConcepts:   []string{"GST devolution formula"},
	}
}

func TestCompletionAnalyzer_ParsesReport(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(sampleReport)})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	report, err := a.Analyze(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(report.RevisionPlan) != 3 {
		t.Errorf("revision plan items = %d, want 3", len(report.RevisionPlan))
	}
	if report.ExamRiskAreas[0].IssueType != IssueConcept {
		t.Errorf("issue_type = %q, want concept", report.ExamRiskAreas[0].IssueType)
	}
	if report.Performance.Consistency != 80 {
		t.Errorf("consistency = %d, want 80", report.Performance.Consistency)
	}
}

func TestCompletionAnalyzer_PromptCarriesEvidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(sampleReport)})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	if _, err := a.Analyze(context.Background(), sampleInput()); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	req := mock.Calls[0]
	prompt := req.Messages[0].Content
	for _, want := range []string{"7 answers", "5 correct", "71% accuracy", "thinks states set GST rates", "GST devolution formula"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if req.Schema == nil || req.Schema.Name != "completion-report" {
		t.Error("completion request should carry the completion-report schema")
	}
	if req.MaxTokens != 2048 {
		t.Errorf("max tokens = %d, want the large completion budget", req.MaxTokens)
	}
}

func TestCompletionAnalyzer_OracleFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	_, err := a.Analyze(context.Background(), sampleInput())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T, want *llm.ErrProviderUnavailable", err)
	}
}
