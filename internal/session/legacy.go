package session

import (
	"context"
	"fmt"
)

// Legacy fixed-mode sessions: the superseded design generated all six
// question steps up front and walked them in order, with no analysis and
// no mastery gate. No new sessions are created in this mode; the engine
// only lets existing stored ones run to the end.

// submitFixed advances a fixed-mode session by one step.
func (e *Engine) submitFixed(ctx context.Context, sess *Session, answer string) (*SubmitResult, error) {
	if sess.CurrentStep < 1 || sess.CurrentStep > len(sess.FixedSteps) {
		return nil, fmt.Errorf("%w: fixed session at step %d of %d", ErrInvalidState, sess.CurrentStep, len(sess.FixedSteps))
	}

	now := e.now()
	concept := &sess.Concepts[0]
	concept.appendTurn(SpeakerLearner, answer, TurnAnswer, now, nil)
	concept.Attempts++
	sess.TotalSteps++

	var reply string
	turnType := TurnFixedPrompt
	if sess.CurrentStep == len(sess.FixedSteps) {
		// Last step answered: the fixed sequence is done. Fixed sessions
		// still get a completion report so the summary endpoint works
		// uniformly across both modes.
		report, err := e.completion.Analyze(ctx, completionInput(sess))
		if err != nil {
			return nil, fmt.Errorf("completion report: %w", err)
		}
		sess.IsCompleted = true
		sess.Completion = report
		concept.closeWindow()
		reply = "That was the final step. Your session summary is ready."
		turnType = TurnValidation
	} else {
		sess.CurrentStep++
		next := sess.FixedSteps[sess.CurrentStep-1]
		reply = next.Question
		concept.appendTurn(SpeakerTutor, reply, TurnFixedPrompt, now, nil)
	}

	sess.UpdatedAt = now
	if err := e.sessions.UpdateConditional(ctx, sess); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Message:  reply,
		TurnType: string(turnType),
		Concept: ConceptStatus{
			Index:    0,
			Name:     concept.Name,
			Attempts: concept.Attempts,
		},
		Session: SessionStatus{
			IsCompleted:      sess.IsCompleted,
			ConceptsMastered: sess.ConceptsMastered,
			TotalConcepts:    len(sess.Concepts),
		},
	}, nil
}
