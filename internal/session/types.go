// Package session implements the adaptive tutoring session engine: the
// concept-by-concept state machine, the per-answer orchestration of
// analysis, policy and question generation, and the one-time completion
// report. All state lives on the Session record; the engine itself is
// stateless between calls.
package session

import (
	"time"

	"github.com/yojanabuddy/teachme/internal/analysis"
	"github.com/yojanabuddy/teachme/internal/completion"
)

// Mode distinguishes the adaptive mastery loop from the superseded
// fixed-sequence design still present in stored sessions.
type Mode string

const (
	// ModeAdaptive is the mastery-loop machine: one concept at a time,
	// advanced only when the mastery gate passes.
	ModeAdaptive Mode = "adaptive"

	// ModeFixed is the legacy six-step sequence. No new sessions are
	// created in this mode; the engine only finishes existing ones.
	ModeFixed Mode = "fixed"
)

// Speaker identifies who produced a conversation turn.
type Speaker string

const (
	SpeakerTutor   Speaker = "tutor"
	SpeakerLearner Speaker = "learner"
)

// TurnType classifies a conversation turn by its pedagogical role.
type TurnType string

const (
	TurnAnswer      TurnType = "ANSWER"
	TurnProbe       TurnType = "PROBING_QUESTION"
	TurnScaffold    TurnType = "SCAFFOLDING"
	TurnChallenge   TurnType = "CHALLENGE"
	TurnValidation  TurnType = "VALIDATION"
	TurnFixedPrompt TurnType = "FIXED_PROMPT" // legacy mode only
)

// turnTypeFor maps the selected action to the tutor turn's type.
func turnTypeFor(action analysis.Action) TurnType {
	switch action {
	case analysis.ActionScaffold:
		return TurnScaffold
	case analysis.ActionChallenge:
		return TurnChallenge
	case analysis.ActionMoveOn, analysis.ActionValidate:
		return TurnValidation
	default:
		return TurnProbe
	}
}

// ConversationTurn is one message in a concept's conversation history.
// TurnNumber is monotonic within the concept's current window, starting
// at 1 with the concept's opening question.
type ConversationTurn struct {
	TurnNumber int       `json:"turn_number"`
	Speaker    Speaker   `json:"speaker"`
	Message    string    `json:"message"`
	Type       TurnType  `json:"type"`
	Timestamp  time.Time `json:"timestamp"`

	// Validation is the full analyzer judgment for learner turns. It is
	// a snapshot: later turns never rewrite it. Nil on tutor turns.
	Validation *analysis.Result `json:"validation_result,omitempty"`
}

// Concept is one teachable unit's live state within a session.
type Concept struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`

	// UnderstandingScore starts at 0 and moves by the grade deltas,
	// clamped to [0,100]. Prior exposure earns no head start.
	UnderstandingScore int `json:"understanding_score"`

	// Attempts counts accepted learner answers on this concept.
	Attempts int `json:"attempts"`

	IsMastered bool `json:"is_mastered"`

	// MisconceptionsIdentified is append-only: a misconception stays
	// recorded even after the learner corrects it.
	MisconceptionsIdentified []string `json:"misconceptions_identified"`

	ProbingQuestionsAsked int `json:"probing_questions_asked"`

	// Turns is the concept's full conversation history. WindowStart
	// marks where the current working window begins; mastering the
	// concept closes the window but keeps the turns.
	Turns       []ConversationTurn `json:"turns"`
	WindowStart int                `json:"window_start"`
}

// Window returns the concept's current working turns.
func (c *Concept) Window() []ConversationTurn {
	if c.WindowStart >= len(c.Turns) {
		return nil
	}
	return c.Turns[c.WindowStart:]
}

// LastQuestion returns the most recent tutor message in the window; it is
// the question the next learner answer responds to.
func (c *Concept) LastQuestion() string {
	w := c.Window()
	for i := len(w) - 1; i >= 0; i-- {
		if w[i].Speaker == SpeakerTutor {
			return w[i].Message
		}
	}
	return ""
}

// nextTurnNumber is 1 for an empty window, else last number + 1.
func (c *Concept) nextTurnNumber() int {
	w := c.Window()
	if len(w) == 0 {
		return 1
	}
	return w[len(w)-1].TurnNumber + 1
}

// appendTurn adds one turn to the concept with the next window-local number.
func (c *Concept) appendTurn(speaker Speaker, message string, typ TurnType, at time.Time, v *analysis.Result) {
	c.Turns = append(c.Turns, ConversationTurn{
		TurnNumber: c.nextTurnNumber(),
		Speaker:    speaker,
		Message:    message,
		Type:       typ,
		Timestamp:  at,
		Validation: v,
	})
}

// closeWindow retires the current working window. The turns stay in
// history but stop feeding analyzer and generator prompts.
func (c *Concept) closeWindow() {
	c.WindowStart = len(c.Turns)
}

// recordMisconceptions appends newly detected misconceptions, skipping
// exact duplicates already on record.
func (c *Concept) recordMisconceptions(detected []string) []string {
	seen := make(map[string]bool, len(c.MisconceptionsIdentified))
	for _, m := range c.MisconceptionsIdentified {
		seen[m] = true
	}
	var fresh []string
	for _, m := range detected {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		fresh = append(fresh, m)
		c.MisconceptionsIdentified = append(c.MisconceptionsIdentified, m)
	}
	return fresh
}

// Misconception is a session-level record of one detected misconception.
type Misconception struct {
	Concept      string    `json:"concept"`
	Description  string    `json:"description"`
	IdentifiedAt time.Time `json:"identified_at"`
}

// FixedStep is one pre-generated step of a legacy fixed-mode session.
type FixedStep struct {
	QuestionType string `json:"question_type"`
	Question     string `json:"question"`
}

// Session is the full state of one tutoring session.
type Session struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	NoteID  string `json:"note_id"`
	Subject string `json:"subject"`
	Mode    Mode   `json:"mode"`

	Concepts            []Concept `json:"concepts"`
	CurrentConceptIndex int       `json:"current_concept_index"`
	ConceptsMastered    int       `json:"concepts_mastered"`
	IsCompleted         bool      `json:"is_completed"`

	// Raw counters across the whole session. An answer counts correct
	// when the analyzer graded it good or excellent.
	TotalSteps     int `json:"total_steps"`
	CorrectAnswers int `json:"correct_answers"`

	// Aggregated weak-area lists feeding the completion report.
	WeakConcepts   []string        `json:"weak_concepts"`
	WeakWriting    []string        `json:"weak_writing"`
	ExamMistakes   []string        `json:"exam_mistakes"`
	Misconceptions []Misconception `json:"misconceptions"`

	// Completion is set exactly once, when the last concept is mastered,
	// and never regenerated afterwards.
	Completion *completion.Report `json:"completion,omitempty"`

	// Fixed-mode fields; unused on adaptive sessions.
	FixedSteps  []FixedStep `json:"fixed_steps,omitempty"`
	CurrentStep int         `json:"current_step,omitempty"` // 1-based

	// Version is the optimistic-concurrency token. The store rejects a
	// write whose version no longer matches the stored row.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActiveConcept returns the concept currently being taught, or nil on a
// completed session.
func (s *Session) ActiveConcept() *Concept {
	if s.IsCompleted || s.CurrentConceptIndex < 0 || s.CurrentConceptIndex >= len(s.Concepts) {
		return nil
	}
	return &s.Concepts[s.CurrentConceptIndex]
}

// Accuracy is the session-wide correct-answer ratio in [0,1].
func (s *Session) Accuracy() float64 {
	if s.TotalSteps == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalSteps)
}

// historyWindow converts the concept's working window into the prompt
// history shape shared by the analyzer and the question generator.
func historyWindow(c *Concept) []analysis.HistoryTurn {
	w := c.Window()
	out := make([]analysis.HistoryTurn, 0, len(w))
	for _, t := range w {
		speaker := "tutor"
		if t.Speaker == SpeakerLearner {
			speaker = "learner"
		}
		out = append(out, analysis.HistoryTurn{Speaker: speaker, Message: t.Message})
	}
	return out
}
