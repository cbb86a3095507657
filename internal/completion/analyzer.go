package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/yojanabuddy/teachme/internal/llm"
)

// AnalyzerConfig holds completion analysis settings.
type AnalyzerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultAnalyzerConfig returns sensible defaults. The report is the
// largest oracle output in the engine, so it gets the largest budget.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxTokens:   2048,
		Temperature: 0.5,
	}
}

// Analyzer produces the one-time completion report.
type Analyzer struct {
	provider llm.Provider
	cfg      AnalyzerConfig
}

// NewAnalyzer creates an Analyzer on the given oracle provider.
func NewAnalyzer(provider llm.Provider, cfg AnalyzerConfig) *Analyzer {
	return &Analyzer{provider: provider, cfg: cfg}
}

// Analyze runs the single structured-output oracle call and returns the
// report. The caller persists it; this package never writes anything.
func (a *Analyzer) Analyze(ctx context.Context, in Input) (*Report, error) {
	ctx = llm.WithPurpose(ctx, "completion-report")

	userMsg, err := buildCompletionMessage(in)
	if err != nil {
		return nil, fmt.Errorf("build completion prompt: %w", err)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: completionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      Schema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var report Report
	if err := json.Unmarshal(llm.StripFences(resp.Content), &report); err != nil {
		return nil, fmt.Errorf("parse completion report: %w", err)
	}

	return &report, nil
}

const completionSystemPrompt = `You are an exam coach reviewing a finished tutoring session for a government-exam aspirant. Produce a risk-weighted debrief.

Instructions:
- Derive exam_risk_areas from the misconceptions and weak areas listed. High risk means likely lost marks in the actual exam.
- The revision_plan has exactly three items, most urgent first. Each key_fact is one memorizable sentence.
- Score the performance_breakdown honestly from the evidence; do not inflate.
- The motivational_message must reference something the learner actually did well in this session.`

var completionUserTemplate = template.Must(template.New("completion").Parse(`Subject: {{.Subject}}
Session: {{.TotalSteps}} answers, {{.CorrectAnswers}} correct ({{.AccuracyPct}}% accuracy)

Concepts covered:
{{- range .Concepts}}
- {{.Name}} (difficulty {{.Difficulty}}): final score {{.FinalScore}}/100, {{.Attempts}} attempts, {{.ProbesAsked}} probing questions
  {{- if .Misconceptions}}
  misconceptions: {{range $i, $m := .Misconceptions}}{{if $i}}; {{end}}{{$m}}{{end}}
  {{- end}}
{{- end}}

{{- if .WeakConcepts}}

Weak concept areas: {{range $i, $w := .WeakConcepts}}{{if $i}}; {{end}}{{$w}}{{end}}
{{- end}}
{{- if .WeakWriting}}
Weak writing areas: {{range $i, $w := .WeakWriting}}{{if $i}}; {{end}}{{$w}}{{end}}
{{- end}}
{{- if .ExamMistakes}}
Recurring exam mistakes: {{range $i, $w := .ExamMistakes}}{{if $i}}; {{end}}{{$w}}{{end}}
{{- end}}`))

func buildCompletionMessage(in Input) (string, error) {
	t := completionUserTemplate
	var buf bytes.Buffer
	if err := t.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
