package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yojanabuddy/teachme/internal/analysis"
	"github.com/yojanabuddy/teachme/internal/completion"
	"github.com/yojanabuddy/teachme/internal/notes"
	"github.com/yojanabuddy/teachme/internal/policy"
	"github.com/yojanabuddy/teachme/internal/questions"
)

// Repo is the session persistence contract.
type Repo interface {
	// Create stores a brand-new session.
	Create(ctx context.Context, s *Session) error

	// Get returns the session, or ErrNotFound.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// UpdateConditional writes the session only if the stored version
	// still matches s.Version, then bumps it. A mismatch returns
	// ErrConflict and writes nothing.
	UpdateConditional(ctx context.Context, s *Session) error
}

// Engine orchestrates the tutoring loop. It holds no per-session state;
// everything it needs lives on the Session record it loads per call.
type Engine struct {
	sessions   Repo
	notes      notes.Repo
	analyzer   *analysis.Analyzer
	generator  *questions.Generator
	completion *completion.Analyzer
	now        func() time.Time
}

// NewEngine wires the engine's collaborators.
func NewEngine(sessions Repo, noteRepo notes.Repo, an *analysis.Analyzer, gen *questions.Generator, comp *completion.Analyzer) *Engine {
	return &Engine{
		sessions:   sessions,
		notes:      noteRepo,
		analyzer:   an,
		generator:  gen,
		completion: comp,
		now:        time.Now,
	}
}

// StartResult is the response to a session start.
type StartResult struct {
	SessionID     string `json:"session_id"`
	TotalConcepts int    `json:"total_concepts"`
	ConceptIndex  int    `json:"concept_index"`
	ConceptName   string `json:"concept_name"`
	Question      string `json:"question"`
	TurnType      string `json:"turn_type"`
}

// ConceptStatus reports the active concept's state after a turn.
type ConceptStatus struct {
	Index              int    `json:"index"`
	Name               string `json:"name"`
	UnderstandingScore int    `json:"understanding_score"`
	Attempts           int    `json:"attempts"`
	IsMastered         bool   `json:"is_mastered"`
	MovedToNext        bool   `json:"moved_to_next"`
}

// SessionStatus reports session-wide progress after a turn.
type SessionStatus struct {
	IsCompleted      bool `json:"is_completed"`
	ConceptsMastered int  `json:"concepts_mastered"`
	TotalConcepts    int  `json:"total_concepts"`
}

// SubmitResult is the response to one accepted answer.
type SubmitResult struct {
	// Message is the tutor's reply: the next question, or the validation
	// transition on mastery. On mastery of a non-final concept it is the
	// validation message and NextQuestion carries the new concept's
	// opening question.
	Message      string           `json:"message"`
	NextQuestion string           `json:"next_question,omitempty"`
	TurnType     string           `json:"turn_type"`
	Action       string           `json:"action"`
	Analysis     *analysis.Result `json:"understanding_analysis"`
	Concept      ConceptStatus    `json:"concept_status"`
	Session      SessionStatus    `json:"session_status"`
}

// Summary is the response to a completion-summary fetch. It is assembled
// from stored state only; the report bytes never change between fetches.
type Summary struct {
	SessionID        string             `json:"session_id"`
	Subject          string             `json:"subject"`
	ConceptsMastered int                `json:"concepts_mastered"`
	TotalConcepts    int                `json:"total_concepts"`
	TotalSteps       int                `json:"total_steps"`
	CorrectAnswers   int                `json:"correct_answers"`
	AccuracyPct      int                `json:"accuracy_pct"`
	IssueCounts      map[string]int     `json:"issue_counts"`
	Report           *completion.Report `json:"report,omitempty"`
}

// Start creates a new adaptive session on the given note and returns the
// first concept's opening question. Nothing is persisted if the opening
// question cannot be generated.
func (e *Engine) Start(ctx context.Context, noteID, userID string) (*StartResult, error) {
	note, err := e.notes.Get(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("load note: %w", err)
	}
	if note.UserID != userID {
		return nil, ErrNotAuthorized
	}

	concepts := note.UsableConcepts()
	if len(concepts) == 0 {
		return nil, ErrNoContent
	}

	first := concepts[0]
	opening, err := e.generator.Opening(ctx, first.Name, first.Difficulty, note.Subject)
	if err != nil {
		return nil, fmt.Errorf("opening question: %w", err)
	}

	now := e.now()
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		NoteID:    note.ID,
		Subject:   note.Subject,
		Mode:      ModeAdaptive,
		Concepts:  make([]Concept, 0, len(concepts)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, c := range concepts {
		sess.Concepts = append(sess.Concepts, Concept{
			Name:       c.Name,
			Difficulty: c.Difficulty,
		})
	}
	sess.Concepts[0].appendTurn(SpeakerTutor, opening, TurnProbe, now, nil)

	if err := e.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &StartResult{
		SessionID:     sess.ID,
		TotalConcepts: len(sess.Concepts),
		ConceptIndex:  0,
		ConceptName:   first.Name,
		Question:      opening,
		TurnType:      string(TurnProbe),
	}, nil
}

// SubmitAnswer runs one turn of the loop: analyze the answer, pick the
// action, generate the tutor's reply, then persist everything in one
// conditional write. Any oracle failure before the write leaves the
// stored session untouched — the learner resubmits the same answer.
func (e *Engine) SubmitAnswer(ctx context.Context, sessionID, userID, answer string) (*SubmitResult, error) {
	sess, err := e.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.UserID != userID {
		return nil, ErrNotAuthorized
	}
	if sess.IsCompleted {
		return nil, fmt.Errorf("%w: session already completed", ErrInvalidState)
	}
	if sess.Mode == ModeFixed {
		return e.submitFixed(ctx, sess, answer)
	}

	concept := sess.ActiveConcept()
	if concept == nil {
		return nil, fmt.Errorf("%w: no active concept", ErrInvalidState)
	}
	question := concept.LastQuestion()

	result, err := e.analyzer.Analyze(ctx, analysis.Input{
		ConceptName:       concept.Name,
		ConceptDifficulty: concept.Difficulty,
		Question:          question,
		Answer:            answer,
		History:           historyWindow(concept),
		CurrentScore:      concept.UnderstandingScore,
		Attempts:          concept.Attempts,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze answer: %w", err)
	}

	decision := policy.Select(result, concept.UnderstandingScore)

	// Generate the tutor's reply before mutating anything, so a
	// generation failure aborts the turn cleanly.
	var reply string
	isLast := sess.CurrentConceptIndex == len(sess.Concepts)-1
	if decision.Mastered {
		reply = questions.ValidationMessage(concept.Name, isLast)
	} else {
		reply, err = e.generator.Next(ctx, questions.Input{
			Action:            decision.Action,
			ConceptName:       concept.Name,
			ConceptDifficulty: concept.Difficulty,
			Question:          question,
			Answer:            answer,
			Misconception:     firstNonEmpty(result.Misconceptions),
			KeyInsight:        result.KeyInsight,
			History:           historyWindow(concept),
			GenericProbe:      decision.GenericProbe,
		})
		if err != nil {
			return nil, fmt.Errorf("next question: %w", err)
		}
	}

	now := e.now()

	// The accepted answer and the tutor's reply land as exactly one
	// turn pair on the active concept.
	concept.appendTurn(SpeakerLearner, answer, TurnAnswer, now, result)
	concept.appendTurn(SpeakerTutor, reply, turnTypeFor(decision.Action), now, nil)

	concept.Attempts++
	concept.UnderstandingScore = decision.NewScore
	if decision.Action == analysis.ActionProbe {
		concept.ProbingQuestionsAsked++
	}
	for _, m := range concept.recordMisconceptions(result.Misconceptions) {
		sess.Misconceptions = append(sess.Misconceptions, Misconception{
			Concept:      concept.Name,
			Description:  m,
			IdentifiedAt: now,
		})
		sess.WeakConcepts = appendUnique(sess.WeakConcepts, concept.Name)
	}
	if result.ReasoningQuality == analysis.ReasoningWeak {
		sess.WeakWriting = appendUnique(sess.WeakWriting, concept.Name+": unstructured reasoning")
	}

	sess.TotalSteps++
	if result.Understanding == analysis.UnderstandingGood || result.Understanding == analysis.UnderstandingExcellent {
		sess.CorrectAnswers++
	}

	status := ConceptStatus{
		Index:              sess.CurrentConceptIndex,
		Name:               concept.Name,
		UnderstandingScore: concept.UnderstandingScore,
		Attempts:           concept.Attempts,
	}

	var nextQuestion string
	if decision.Mastered {
		concept.IsMastered = true
		concept.closeWindow()
		sess.ConceptsMastered++
		status.IsMastered = true

		if isLast {
			report, err := e.completion.Analyze(ctx, completionInput(sess))
			if err != nil {
				return nil, fmt.Errorf("completion report: %w", err)
			}
			sess.IsCompleted = true
			sess.Completion = report
		} else {
			next := &sess.Concepts[sess.CurrentConceptIndex+1]
			nextQuestion, err = e.generator.Opening(ctx, next.Name, next.Difficulty, sess.Subject)
			if err != nil {
				return nil, fmt.Errorf("opening question: %w", err)
			}
			sess.CurrentConceptIndex++
			next.appendTurn(SpeakerTutor, nextQuestion, TurnProbe, now, nil)
			status.MovedToNext = true
		}
	}

	sess.UpdatedAt = now
	if err := e.sessions.UpdateConditional(ctx, sess); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Message:      reply,
		NextQuestion: nextQuestion,
		TurnType:     string(turnTypeFor(decision.Action)),
		Action:       string(decision.Action),
		Analysis:     result,
		Concept:      status,
		Session: SessionStatus{
			IsCompleted:      sess.IsCompleted,
			ConceptsMastered: sess.ConceptsMastered,
			TotalConcepts:    len(sess.Concepts),
		},
	}, nil
}

// CompletionSummary returns the stored completion report plus session
// counters. It never regenerates the report.
func (e *Engine) CompletionSummary(ctx context.Context, sessionID, userID string) (*Summary, error) {
	sess, err := e.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.UserID != userID {
		return nil, ErrNotAuthorized
	}
	if !sess.IsCompleted {
		return nil, fmt.Errorf("%w: session not completed", ErrInvalidState)
	}

	counts := map[string]int{}
	if sess.Completion != nil {
		for _, r := range sess.Completion.ExamRiskAreas {
			counts[r.IssueType]++
		}
	}

	return &Summary{
		SessionID:        sess.ID,
		Subject:          sess.Subject,
		ConceptsMastered: sess.ConceptsMastered,
		TotalConcepts:    len(sess.Concepts),
		TotalSteps:       sess.TotalSteps,
		CorrectAnswers:   sess.CorrectAnswers,
		AccuracyPct:      int(sess.Accuracy()*100 + 0.5),
		IssueCounts:      counts,
		Report:           sess.Completion,
	}, nil
}

// completionInput gathers the evidence the completion analyzer reads.
func completionInput(s *Session) completion.Input {
	outcomes := make([]completion.ConceptOutcome, 0, len(s.Concepts))
	for _, c := range s.Concepts {
		outcomes = append(outcomes, completion.ConceptOutcome{
			Name:           c.Name,
			Difficulty:     c.Difficulty,
			FinalScore:     c.UnderstandingScore,
			Attempts:       c.Attempts,
			Misconceptions: c.MisconceptionsIdentified,
			ProbesAsked:    c.ProbingQuestionsAsked,
		})
	}
	return completion.Input{
		Subject:        s.Subject,
		Concepts:       outcomes,
		TotalSteps:     s.TotalSteps,
		CorrectAnswers: s.CorrectAnswers,
		Accuracy:       s.Accuracy(),
		WeakConcepts:   s.WeakConcepts,
		WeakWriting:    s.WeakWriting,
		ExamMistakes:   s.ExamMistakes,
	}
}

func firstNonEmpty(ss []string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}

func appendUnique(ss []string, s string) []string {
	for _, v := range ss {
		if v == s {
			return ss
		}
	}
	return append(ss, s)
}
