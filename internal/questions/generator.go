// Package questions produces the learner-facing question for a selected
// pedagogical action. Phrasing is delegated to the oracle under Socratic
// constraints; validation messages are composed locally with no oracle call.
package questions

import (
	"context"
	"fmt"

	"github.com/yojanabuddy/teachme/internal/analysis"
	"github.com/yojanabuddy/teachme/internal/llm"
)

// GeneratorConfig holds question generation settings.
type GeneratorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGeneratorConfig returns sensible defaults. Questions are a
// sentence or two; temperature is higher than analysis so consecutive
// probes don't read identically.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:   200,
		Temperature: 0.7,
	}
}

// Generator phrases the next question through the oracle.
type Generator struct {
	provider llm.Provider
	cfg      GeneratorConfig
}

// NewGenerator creates a Generator on the given oracle provider.
func NewGenerator(provider llm.Provider, cfg GeneratorConfig) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Input carries the context for one next-question generation.
type Input struct {
	Action            analysis.Action
	ConceptName       string
	ConceptDifficulty string
	Question          string // the question the learner just answered
	Answer            string
	Misconception     string // named misconception (CHALLENGE only)
	KeyInsight        string
	History           []analysis.HistoryTurn

	// GenericProbe selects the fallback "explain your reasoning" framing
	// used when the analyzer asked for nothing in particular.
	GenericProbe bool
}

// Opening generates the opening question for a concept. Used at session
// creation and on every concept advancement.
func (g *Generator) Opening(ctx context.Context, conceptName, difficulty, subject string) (string, error) {
	ctx = llm.WithPurpose(ctx, "question-opening")

	userMsg, err := renderTemplate(openingUserTemplate, struct {
		ConceptName       string
		ConceptDifficulty string
		Subject           string
	}{conceptName, difficulty, subject})
	if err != nil {
		return "", fmt.Errorf("build opening prompt: %w", err)
	}

	return g.generate(ctx, openingSystemPrompt, userMsg)
}

// Next generates the question for the selected action. VALIDATE and
// MOVE_ON never reach the oracle; callers use ValidationMessage for those.
// An oracle failure here is fatal to the turn — there is no canned
// fallback question, to avoid issuing a nonsensical prompt to the learner.
func (g *Generator) Next(ctx context.Context, in Input) (string, error) {
	var system string
	switch in.Action {
	case analysis.ActionProbe:
		ctx = llm.WithPurpose(ctx, "question-probe")
		system = probeSystemPrompt
		if in.GenericProbe {
			system = probeSystemPrompt + "\n\nThe learner's answer gave little to work with: ask them to walk through their reasoning step by step."
		}
	case analysis.ActionScaffold:
		ctx = llm.WithPurpose(ctx, "question-scaffold")
		system = scaffoldSystemPrompt
	case analysis.ActionChallenge:
		ctx = llm.WithPurpose(ctx, "question-challenge")
		system = challengeSystemPrompt
	default:
		return "", fmt.Errorf("no oracle question for action %q", in.Action)
	}

	userMsg, err := renderTemplate(nextUserTemplate, in)
	if err != nil {
		return "", fmt.Errorf("build question prompt: %w", err)
	}

	return g.generate(ctx, system, userMsg)
}

func (g *Generator) generate(ctx context.Context, system, userMsg string) (string, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}

	return llm.TrimQuotes(string(resp.Content)), nil
}

// ValidationMessage is the congratulatory transition shown when a concept
// is mastered. Composed locally: there is nothing for the oracle to decide.
func ValidationMessage(conceptName string, isLast bool) string {
	if isLast {
		return fmt.Sprintf("Excellent — you've got %s down. That was the last concept in this lesson; your revision plan is ready.", conceptName)
	}
	return fmt.Sprintf("Excellent — you've got %s down. Let's move to the next concept.", conceptName)
}
