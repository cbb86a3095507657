package questions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/yojanabuddy/teachme/internal/analysis"
	"github.com/yojanabuddy/teachme/internal/llm"
)

func TestGenerator_ProbeTrimsQuotes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Why does the scheme cap the guarantee at 100 days per household?"`),
	})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	q, err := g.Next(context.Background(), Input{
		Action:      analysis.ActionProbe,
		ConceptName: "MGNREGA wage guarantee",
		Question:    "What does MGNREGA guarantee?",
		Answer:      "100 days of work.",
	})
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if strings.HasPrefix(q, `"`) {
		t.Errorf("wrapping quotes not trimmed: %q", q)
	}
	if !strings.Contains(q, "100 days") {
		t.Errorf("unexpected question: %q", q)
	}
}

func TestGenerator_ChallengeNamesMisconception(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`What if a household had already received the subsidy once?`)})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	_, err := g.Next(context.Background(), Input{
		Action:        analysis.ActionChallenge,
		ConceptName:   "PM-KISAN eligibility",
		Misconception: "thinks the transfer is one-time",
		Question:      "Who is eligible?",
		Answer:        "Every farmer gets it once.",
	})
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "thinks the transfer is one-time") {
		t.Error("challenge prompt should name the misconception")
	}
	if !strings.Contains(req.System, "what if") && !strings.Contains(req.System, `"what if"`) {
		t.Error("challenge system prompt should demand a what-if framing")
	}
}

func TestGenerator_ValidateNeverCallsOracle(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewGenerator(mock, DefaultGeneratorConfig())

	_, err := g.Next(context.Background(), Input{Action: analysis.ActionValidate})
	if err == nil {
		t.Error("expected error: VALIDATE has no oracle question")
	}
	if mock.CallCount() != 0 {
		t.Errorf("oracle called %d times for VALIDATE, want 0", mock.CallCount())
	}
}

func TestGenerator_OracleFailureIsFatal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	_, err := g.Next(context.Background(), Input{
		Action:      analysis.ActionProbe,
		ConceptName: "x",
	})
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %T, want *llm.ErrProviderUnavailable (no silent fallback question)", err)
	}
}

func TestGenerator_Opening(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`What do you already know about how GST revenue is split?`)})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	q, err := g.Opening(context.Background(), "GST revenue sharing", "hard", "Indian Economy")
	if err != nil {
		t.Fatalf("Opening failed: %v", err)
	}
	if q == "" {
		t.Fatal("empty opening question")
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "GST revenue sharing") {
		t.Error("opening prompt should name the concept")
	}
}

func TestValidationMessage(t *testing.T) {
	mid := ValidationMessage("GST revenue sharing", false)
	if !strings.Contains(mid, "next concept") {
		t.Errorf("mid-session validation should announce the next concept: %q", mid)
	}
	last := ValidationMessage("GST revenue sharing", true)
	if !strings.Contains(last, "revision plan") {
		t.Errorf("final validation should announce the revision plan: %q", last)
	}
}
