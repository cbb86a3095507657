package analysis

import (
	"encoding/json"
	"errors"
	"testing"
)

const goodAnalysis = `{
	"understanding_demonstrated": "good",
	"reasoning_quality": "moderate",
	"misconceptions_detected": ["thinks subsidy is a loan"],
	"needs_probing": true,
	"needs_scaffolding": false,
	"concept_grasped": false,
	"key_insight": "Knows the benefit amount but not the eligibility logic",
	"recommended_action": "PROBE"
}`

func TestParse_CleanJSON(t *testing.T) {
	r, err := Parse(json.RawMessage(goodAnalysis))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Understanding != UnderstandingGood {
		t.Errorf("understanding = %q, want good", r.Understanding)
	}
	if len(r.Misconceptions) != 1 || r.Misconceptions[0] != "thinks subsidy is a loan" {
		t.Errorf("misconceptions = %v", r.Misconceptions)
	}
	if r.Recommended != ActionProbe {
		t.Errorf("recommended = %q, want PROBE", r.Recommended)
	}
}

func TestParse_FencedJSON(t *testing.T) {
	fenced := "```json\n" + goodAnalysis + "\n```"
	r, err := Parse(json.RawMessage(fenced))
	if err != nil {
		t.Fatalf("Parse failed on fenced input: %v", err)
	}
	if !r.NeedsProbing {
		t.Error("needs_probing = false, want true")
	}
}

func TestParse_NormalizesCase(t *testing.T) {
	raw := `{"understanding_demonstrated":"Excellent","reasoning_quality":"STRONG","misconceptions_detected":[],"needs_probing":false,"needs_scaffolding":false,"concept_grasped":true,"key_insight":"solid","recommended_action":"move_on"}`
	r, err := Parse(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Understanding != UnderstandingExcellent {
		t.Errorf("understanding = %q, want excellent", r.Understanding)
	}
	if r.ReasoningQuality != ReasoningStrong {
		t.Errorf("reasoning = %q, want strong", r.ReasoningQuality)
	}
	if r.Recommended != ActionMoveOn {
		t.Errorf("recommended = %q, want MOVE_ON", r.Recommended)
	}
}

func TestParse_SalvagesTruncated(t *testing.T) {
	// Truncated mid-way through key_insight: complete pairs survive.
	truncated := `{"understanding_demonstrated": "partial", "concept_grasped": false, "needs_scaffolding": true, "misconceptions_detected": ["confuses centre and state schemes"], "key_insi`
	r, err := Parse(json.RawMessage(truncated))
	if err != nil {
		t.Fatalf("Parse failed to salvage: %v", err)
	}
	if r.Understanding != UnderstandingPartial {
		t.Errorf("understanding = %q, want partial", r.Understanding)
	}
	if !r.NeedsScaffolding {
		t.Error("needs_scaffolding = false, want true")
	}
	if len(r.Misconceptions) != 1 {
		t.Errorf("misconceptions = %v, want 1 entry", r.Misconceptions)
	}
}

func TestParse_SalvageNeedsCoreFields(t *testing.T) {
	// concept_grasped missing: salvage must refuse, not invent a judgment.
	raw := `{"understanding_demonstrated": "good", "needs_probing": tr`
	_, err := Parse(json.RawMessage(raw))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
}

func TestParse_BadEnumRejected(t *testing.T) {
	raw := `{"understanding_demonstrated":"amazing","reasoning_quality":"weak","misconceptions_detected":[],"needs_probing":false,"needs_scaffolding":false,"concept_grasped":true,"key_insight":"x","recommended_action":"PROBE"}`
	_, err := Parse(json.RawMessage(raw))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T, want *ParseError for out-of-contract enum", err)
	}
}

func TestParse_GarbageRejectedWithPrefix(t *testing.T) {
	_, err := Parse(json.RawMessage("I'm sorry, I can't help with that."))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if pe.RawPrefix == "" {
		t.Error("ParseError should carry a raw response prefix for diagnosis")
	}
}
