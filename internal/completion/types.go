// Package completion implements the post-session performance summarizer.
// It runs exactly once, when the last concept is mastered, and its report
// is stored on the session verbatim — fetching the summary later returns
// the stored bytes, never a regeneration.
package completion

// Issue types used to categorize exam risk areas.
const (
	IssueConcept     = "concept"
	IssueWriting     = "writing"
	IssueExamMistake = "exam-mistake"
)

// RiskArea is one exam-risk finding.
type RiskArea struct {
	RiskLevel  string `json:"risk_level"` // high, medium, low
	Area       string `json:"area"`       // the specific concept or skill
	IssueType  string `json:"issue_type"` // concept, writing, exam-mistake
	Fix        string `json:"fix"`        // one-line remedy
	ExamImpact string `json:"exam_impact"`
}

// RevisionItem is one entry of the fixed three-item revision plan.
type RevisionItem struct {
	Focus   string `json:"focus"`
	Task    string `json:"task"`
	KeyFact string `json:"key_fact"` // the one fact to memorize
}

// Breakdown holds the four 0-100 performance scores plus qualitative lists.
type Breakdown struct {
	ConceptualUnderstanding int      `json:"conceptual_understanding"`
	WritingSkills           int      `json:"writing_skills"`
	ExamReadiness           int      `json:"exam_readiness"`
	Consistency             int      `json:"consistency"`
	Strengths               []string `json:"strengths"`
	Improvements            []string `json:"improvements"`
}

// Report is the completion analyzer's full output.
type Report struct {
	ExamRiskAreas []RiskArea     `json:"exam_risk_areas"`
	RevisionPlan  []RevisionItem `json:"revision_plan"` // always exactly 3
	Performance   Breakdown      `json:"performance_breakdown"`
	Motivation    string         `json:"motivational_message"`
}

// ConceptOutcome summarizes one concept for the completion prompt.
type ConceptOutcome struct {
	Name           string
	Difficulty     string
	FinalScore     int
	Attempts       int
	Misconceptions []string
	ProbesAsked    int
}

// Input is everything the completion analyzer reads.
type Input struct {
	Subject        string
	Concepts       []ConceptOutcome
	TotalSteps     int
	CorrectAnswers int
	Accuracy       float64 // correct / total, 0.0-1.0
	WeakConcepts   []string
	WeakWriting    []string
	ExamMistakes   []string
}

// AccuracyPct is the accuracy as a rounded whole percentage, for prompts.
func (in Input) AccuracyPct() int {
	return int(in.Accuracy*100 + 0.5)
}
