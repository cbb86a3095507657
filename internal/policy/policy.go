// Package policy is the deterministic decision table that turns an
// understanding analysis into the next pedagogical action. It is pure: no
// oracle, no clock, no randomness — same inputs, same action, always.
package policy

import "github.com/yojanabuddy/teachme/internal/analysis"

// MasteryThreshold is the minimum understanding score for a concept to be
// considered mastered.
const MasteryThreshold = 80

// Score deltas per understanding grade.
const (
	DeltaNone      = -10
	DeltaPartial   = 5
	DeltaGood      = 15
	DeltaExcellent = 25
)

// Decision is the selected move for the next turn.
type Decision struct {
	Action   analysis.Action
	NewScore int

	// Mastered is true when this turn crossed the mastery gate:
	// concept_grasped asserted AND the updated score at or above threshold.
	Mastered bool

	// GenericProbe marks the default branch, where the analyzer asked for
	// nothing in particular and the learner still needs a next question.
	GenericProbe bool
}

// Select maps an analysis and the concept's pre-turn score to the final
// action. Precedence, independent of the analyzer's own recommendation:
//
//  1. grasped and newScore at threshold → MOVE_ON (mastery)
//  2. needs_scaffolding → SCAFFOLD
//  3. any misconception detected → CHALLENGE
//  4. needs_probing → PROBE
//  5. otherwise → PROBE with a generic reasoning question
//
// The mastery override in rule 1 means a MOVE_ON recommendation from the
// analyzer is ignored whenever the score gate fails, and vice versa.
func Select(a *analysis.Result, currentScore int) Decision {
	newScore := UpdateScore(currentScore, a.Understanding)

	if a.ConceptGrasped && newScore >= MasteryThreshold {
		return Decision{Action: analysis.ActionMoveOn, NewScore: newScore, Mastered: true}
	}
	if a.NeedsScaffolding {
		return Decision{Action: analysis.ActionScaffold, NewScore: newScore}
	}
	if len(a.Misconceptions) > 0 {
		return Decision{Action: analysis.ActionChallenge, NewScore: newScore}
	}
	if a.NeedsProbing {
		return Decision{Action: analysis.ActionProbe, NewScore: newScore}
	}

	// Never leave a turn unanswered.
	return Decision{Action: analysis.ActionProbe, NewScore: newScore, GenericProbe: true}
}

// UpdateScore applies the delta table for one graded answer, clamped to [0,100].
func UpdateScore(current int, u analysis.Understanding) int {
	delta := 0
	switch u {
	case analysis.UnderstandingNone:
		delta = DeltaNone
	case analysis.UnderstandingPartial:
		delta = DeltaPartial
	case analysis.UnderstandingGood:
		delta = DeltaGood
	case analysis.UnderstandingExcellent:
		delta = DeltaExcellent
	}
	return clamp(current + delta)
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
