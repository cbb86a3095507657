// Package analysis implements the understanding analyzer: a single
// schema-constrained oracle call that classifies a learner's free-text
// answer, plus the response parser that turns possibly fenced or partially
// malformed oracle output into a validated judgment.
package analysis

// Understanding grades how much of the concept the answer demonstrated.
type Understanding string

const (
	UnderstandingNone      Understanding = "none"
	UnderstandingPartial   Understanding = "partial"
	UnderstandingGood      Understanding = "good"
	UnderstandingExcellent Understanding = "excellent"
)

// ReasoningQuality grades how the learner argued, independent of coverage.
type ReasoningQuality string

const (
	ReasoningWeak     ReasoningQuality = "weak"
	ReasoningModerate ReasoningQuality = "moderate"
	ReasoningStrong   ReasoningQuality = "strong"
)

// Action is the pedagogical move for the next turn.
type Action string

const (
	ActionProbe     Action = "PROBE"
	ActionChallenge Action = "CHALLENGE"
	ActionScaffold  Action = "SCAFFOLD"
	ActionValidate  Action = "VALIDATE"
	ActionMoveOn    Action = "MOVE_ON"
)

// ValidActions is the closed set an analyzer recommendation must come from.
var ValidActions = map[Action]bool{
	ActionProbe:     true,
	ActionChallenge: true,
	ActionScaffold:  true,
	ActionValidate:  true,
	ActionMoveOn:    true,
}

// Result is the analyzer's structured judgment of one learner answer.
type Result struct {
	Understanding    Understanding    `json:"understanding_demonstrated"`
	ReasoningQuality ReasoningQuality `json:"reasoning_quality"`
	Misconceptions   []string         `json:"misconceptions_detected"`
	NeedsProbing     bool             `json:"needs_probing"`
	NeedsScaffolding bool             `json:"needs_scaffolding"`
	ConceptGrasped   bool             `json:"concept_grasped"`
	KeyInsight       string           `json:"key_insight"`
	Recommended      Action           `json:"recommended_action"`
}

// HistoryTurn is one message from the active concept's conversation window,
// as the analyzer prompt sees it.
type HistoryTurn struct {
	Speaker string // "tutor" or "learner"
	Message string
}

// Input carries everything the analyzer needs to judge one answer.
type Input struct {
	ConceptName       string
	ConceptDifficulty string
	Question          string // the question the answer responds to
	Answer            string // the learner's raw answer text
	History           []HistoryTurn
	CurrentScore      int
	Attempts          int
}
