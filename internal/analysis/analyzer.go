package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"github.com/yojanabuddy/teachme/internal/llm"
)

// AnalyzerConfig holds configuration for the understanding analyzer.
type AnalyzerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultAnalyzerConfig returns sensible defaults. Analysis output is
// small structured JSON; 512 tokens is plenty.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Analyzer judges learner answers through a single oracle call per turn.
type Analyzer struct {
	provider llm.Provider
	cfg      AnalyzerConfig
}

// NewAnalyzer creates an Analyzer on the given oracle provider.
func NewAnalyzer(provider llm.Provider, cfg AnalyzerConfig) *Analyzer {
	return &Analyzer{provider: provider, cfg: cfg}
}

// Analyze classifies one learner answer. Transport failures (both oracle
// tiers down) bubble up as llm errors; content that cannot be parsed into
// the contract surfaces as *ParseError and is not retried.
func (a *Analyzer) Analyze(ctx context.Context, in Input) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "understanding-analysis")

	userMsg, err := buildAnalysisMessage(in)
	if err != nil {
		return nil, fmt.Errorf("build analysis prompt: %w", err)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      Schema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		// Schema rejection at the provider is a content problem; report
		// it as a parse failure so callers don't treat it as an outage.
		var invResp *llm.ErrInvalidResponse
		if errors.As(err, &invResp) {
			return nil, &ParseError{RawPrefix: prefix(invResp.Content), Err: invResp.Err}
		}
		return nil, err
	}

	return Parse(resp.Content)
}

const analysisSystemPrompt = `You are an expert tutor evaluating a learner's answer during a Socratic teaching session on a government-exam study concept.

Judge only what the answer demonstrates. Instructions:
- Grade understanding_demonstrated strictly: "excellent" requires a complete, causally reasoned answer.
- List misconceptions_detected only for beliefs that are actually wrong, one short phrase each. Never pad the list.
- Set concept_grasped true only when the learner could explain this concept to someone else.
- Set needs_scaffolding when the learner is lost; needs_probing when correct but shallow.
- key_insight is one sentence about what this answer revealed.
- Recommend exactly one next action from the allowed set.`

var analysisUserTemplate = template.Must(template.New("analysis").Parse(`Concept: {{.ConceptName}} (difficulty: {{.ConceptDifficulty}})
Current understanding score: {{.CurrentScore}}/100
Attempts on this concept: {{.Attempts}}

Conversation so far:
{{- range .History}}
[{{.Speaker}}] {{.Message}}
{{- end}}

Question asked:
{{.Question}}

Learner's answer:
{{.Answer}}`))

func buildAnalysisMessage(in Input) (string, error) {
	var buf bytes.Buffer
	if err := analysisUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
