package policy

import (
	"testing"

	"github.com/yojanabuddy/teachme/internal/analysis"
)

func TestUpdateScore_DeltaTable(t *testing.T) {
	tests := []struct {
		current int
		grade   analysis.Understanding
		want    int
	}{
		{50, analysis.UnderstandingNone, 40},
		{50, analysis.UnderstandingPartial, 55},
		{50, analysis.UnderstandingGood, 65},
		{50, analysis.UnderstandingExcellent, 75},
		{5, analysis.UnderstandingNone, 0},    // clamp low
		{95, analysis.UnderstandingExcellent, 100}, // clamp high
		{0, analysis.UnderstandingNone, 0},
		{100, analysis.UnderstandingExcellent, 100},
	}

	for _, tt := range tests {
		if got := UpdateScore(tt.current, tt.grade); got != tt.want {
			t.Errorf("UpdateScore(%d, %s) = %d, want %d", tt.current, tt.grade, got, tt.want)
		}
	}
}

func TestSelect_MasteryOverridesRecommendation(t *testing.T) {
	// Score 75 + good = 90 with grasped → MOVE_ON even though the
	// analyzer recommended PROBE.
	a := &analysis.Result{
		Understanding:  analysis.UnderstandingGood,
		ConceptGrasped: true,
		NeedsProbing:   true,
		Recommended:    analysis.ActionProbe,
	}
	d := Select(a, 75)
	if d.Action != analysis.ActionMoveOn {
		t.Errorf("action = %s, want MOVE_ON", d.Action)
	}
	if !d.Mastered {
		t.Error("Mastered = false, want true")
	}
	if d.NewScore != 90 {
		t.Errorf("newScore = %d, want 90", d.NewScore)
	}
}

func TestSelect_GraspedBelowThresholdDoesNotMove(t *testing.T) {
	// Fresh concept: excellent first answer reaches only 25. Grasped is
	// true but the score gate fails, so MOVE_ON is forbidden.
	a := &analysis.Result{
		Understanding:  analysis.UnderstandingExcellent,
		ConceptGrasped: true,
		Recommended:    analysis.ActionMoveOn,
	}
	d := Select(a, 0)
	if d.Action == analysis.ActionMoveOn {
		t.Fatal("MOVE_ON selected below mastery threshold")
	}
	if d.Mastered {
		t.Error("Mastered = true below threshold")
	}
	if d.NewScore != 25 {
		t.Errorf("newScore = %d, want 25", d.NewScore)
	}
}

func TestSelect_HighScoreNotGraspedDoesNotMove(t *testing.T) {
	a := &analysis.Result{
		Understanding:  analysis.UnderstandingGood,
		ConceptGrasped: false,
		NeedsProbing:   true,
	}
	d := Select(a, 80) // 80+15=95, but not grasped
	if d.Action == analysis.ActionMoveOn {
		t.Error("MOVE_ON selected without concept_grasped")
	}
}

func TestSelect_Precedence(t *testing.T) {
	tests := []struct {
		name string
		a    analysis.Result
		want analysis.Action
	}{
		{
			"scaffold beats challenge",
			analysis.Result{Understanding: analysis.UnderstandingNone, NeedsScaffolding: true, Misconceptions: []string{"x"}},
			analysis.ActionScaffold,
		},
		{
			"challenge beats probe",
			analysis.Result{Understanding: analysis.UnderstandingPartial, Misconceptions: []string{"x"}, NeedsProbing: true},
			analysis.ActionChallenge,
		},
		{
			"probe when flagged",
			analysis.Result{Understanding: analysis.UnderstandingGood, NeedsProbing: true},
			analysis.ActionProbe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Select(&tt.a, 30)
			if d.Action != tt.want {
				t.Errorf("action = %s, want %s", d.Action, tt.want)
			}
		})
	}
}

func TestSelect_DefaultGenericProbe(t *testing.T) {
	a := &analysis.Result{Understanding: analysis.UnderstandingPartial}
	d := Select(a, 30)
	if d.Action != analysis.ActionProbe {
		t.Errorf("action = %s, want PROBE", d.Action)
	}
	if !d.GenericProbe {
		t.Error("GenericProbe = false, want true on the default branch")
	}
}

func TestSelect_Deterministic(t *testing.T) {
	a := &analysis.Result{
		Understanding:  analysis.UnderstandingPartial,
		Misconceptions: []string{"believes the subsidy is unconditional"},
	}
	first := Select(a, 45)
	for i := 0; i < 50; i++ {
		if got := Select(a, 45); got != first {
			t.Fatalf("Select not deterministic: %+v vs %+v", got, first)
		}
	}
}
