package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/yojanabuddy/teachme/internal/llm"
)

// rawPrefixLen bounds how much raw oracle output a ParseError carries.
// Enough for operator diagnosis, small enough for a log line.
const rawPrefixLen = 240

// ParseError indicates the oracle answered but its output could not be
// turned into a usable Result, even after fence stripping and salvage.
// It is fatal for the turn: inventing a default judgment would corrupt
// the mastery signal.
type ParseError struct {
	RawPrefix string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("analysis parse failed: %v (raw: %q)", e.Err, e.RawPrefix)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse turns raw oracle output into a validated Result. It strips markdown
// fences, unmarshals, and on failure runs a salvage pass that regex-extracts
// complete key/value pairs from the truncated or mangled text. Returns
// *ParseError when no acceptable Result can be recovered.
func Parse(raw json.RawMessage) (*Result, error) {
	cleaned := llm.StripFences(raw)

	var r Result
	if err := json.Unmarshal(cleaned, &r); err != nil {
		salvaged, ok := salvage(string(cleaned))
		if !ok {
			return nil, &ParseError{RawPrefix: prefix(raw), Err: err}
		}
		r = *salvaged
	}

	if err := checkResult(&r); err != nil {
		return nil, &ParseError{RawPrefix: prefix(raw), Err: err}
	}

	normalize(&r)
	return &r, nil
}

// checkResult enforces the contract's closed enums and required fields.
func checkResult(r *Result) error {
	switch Understanding(strings.ToLower(string(r.Understanding))) {
	case UnderstandingNone, UnderstandingPartial, UnderstandingGood, UnderstandingExcellent:
	default:
		return fmt.Errorf("understanding_demonstrated %q not in contract", r.Understanding)
	}

	if r.ReasoningQuality != "" {
		switch ReasoningQuality(strings.ToLower(string(r.ReasoningQuality))) {
		case ReasoningWeak, ReasoningModerate, ReasoningStrong:
		default:
			return fmt.Errorf("reasoning_quality %q not in contract", r.ReasoningQuality)
		}
	}

	if r.Recommended != "" && !ValidActions[Action(strings.ToUpper(string(r.Recommended)))] {
		return fmt.Errorf("recommended_action %q not in contract", r.Recommended)
	}

	return nil
}

func normalize(r *Result) {
	r.Understanding = Understanding(strings.ToLower(string(r.Understanding)))
	if r.ReasoningQuality != "" {
		r.ReasoningQuality = ReasoningQuality(strings.ToLower(string(r.ReasoningQuality)))
	}
	if r.Recommended != "" {
		r.Recommended = Action(strings.ToUpper(string(r.Recommended)))
	}
	if r.Misconceptions == nil {
		r.Misconceptions = []string{}
	}
}

// Salvage regexes. Each matches one complete key/value pair; incomplete
// trailing pairs in truncated output simply don't match.
var (
	stringFieldRe = regexp.MustCompile(`"(understanding_demonstrated|reasoning_quality|key_insight|recommended_action)"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	boolFieldRe   = regexp.MustCompile(`"(needs_probing|needs_scaffolding|concept_grasped)"\s*:\s*(true|false)`)
	arrayFieldRe  = regexp.MustCompile(`"misconceptions_detected"\s*:\s*(\[[^\]]*\])`)
)

// salvage extracts whatever complete key/value pairs survive in mangled
// output. It succeeds only when the two fields the policy cannot do
// without — understanding_demonstrated and concept_grasped — are present.
func salvage(s string) (*Result, bool) {
	r := &Result{Misconceptions: []string{}}
	gotUnderstanding := false
	gotGrasped := false

	for _, m := range stringFieldRe.FindAllStringSubmatch(s, -1) {
		val := unescape(m[2])
		switch m[1] {
		case "understanding_demonstrated":
			r.Understanding = Understanding(val)
			gotUnderstanding = true
		case "reasoning_quality":
			r.ReasoningQuality = ReasoningQuality(val)
		case "key_insight":
			r.KeyInsight = val
		case "recommended_action":
			r.Recommended = Action(val)
		}
	}

	for _, m := range boolFieldRe.FindAllStringSubmatch(s, -1) {
		val := m[2] == "true"
		switch m[1] {
		case "needs_probing":
			r.NeedsProbing = val
		case "needs_scaffolding":
			r.NeedsScaffolding = val
		case "concept_grasped":
			r.ConceptGrasped = val
			gotGrasped = true
		}
	}

	if m := arrayFieldRe.FindStringSubmatch(s); m != nil {
		var list []string
		if err := json.Unmarshal([]byte(m[1]), &list); err == nil {
			r.Misconceptions = list
		}
	}

	return r, gotUnderstanding && gotGrasped
}

func unescape(s string) string {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err != nil {
		return s
	}
	return out
}

func prefix(raw json.RawMessage) string {
	s := string(raw)
	if len(s) > rawPrefixLen {
		return s[:rawPrefixLen]
	}
	return s
}
