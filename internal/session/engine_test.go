package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/yojanabuddy/teachme/internal/analysis"
	"github.com/yojanabuddy/teachme/internal/completion"
	"github.com/yojanabuddy/teachme/internal/llm"
	"github.com/yojanabuddy/teachme/internal/notes"
	"github.com/yojanabuddy/teachme/internal/questions"
)

// memSessionRepo stores sessions as JSON blobs, like the real store does.
// Serializing on every read/write means engine mutations that are never
// written back stay invisible, which is exactly what the no-partial-state
// tests need to observe.
type memSessionRepo struct {
	mu   sync.Mutex
	rows map[string][]byte
	vers map[string]int64
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{rows: map[string][]byte{}, vers: map[string]int64{}}
}

func (r *memSessionRepo) Create(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	r.rows[s.ID] = raw
	r.vers[s.ID] = s.Version
	return nil
}

func (r *memSessionRepo) Get(_ context.Context, id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	s.Version = r.vers[id]
	return &s, nil
}

func (r *memSessionRepo) UpdateConditional(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vers[s.ID] != s.Version {
		return ErrConflict
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	r.rows[s.ID] = raw
	r.vers[s.ID] = s.Version + 1
	return nil
}

type memNoteRepo struct {
	notes map[string]*notes.Note
}

func (r *memNoteRepo) Get(_ context.Context, id string) (*notes.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	return n, nil
}

func (r *memNoteRepo) Put(_ context.Context, n *notes.Note) error {
	r.notes[n.ID] = n
	return nil
}

func (r *memNoteRepo) ListByUser(_ context.Context, _ string) ([]*notes.Note, error) {
	return nil, nil
}

func testNote() *notes.Note {
	return &notes.Note{
		ID:      "note-1",
		UserID:  "user-1",
		Title:   "Fiscal federalism",
		Subject: "Indian Polity",
		Concepts: []notes.Concept{
			{Name: "GST revenue sharing", Difficulty: "hard"},
			{Name: "Finance Commission", Difficulty: "medium"},
		},
	}
}

// analysisJSON builds a canned analyzer response.
func analysisJSON(t *testing.T, r analysis.Result) llm.MockResponse {
	t.Helper()
	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	return llm.MockResponse{Content: raw}
}

func questionJSON(q string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`"` + q + `"`)}
}

const reportJSON = `{
	"exam_risk_areas": [{"risk_level":"medium","area":"GST devolution","issue_type":"concept","fix":"Redo the formula","exam_impact":"2-mark factual"}],
	"revision_plan": [
		{"focus":"a","task":"b","key_fact":"c"},
		{"focus":"d","task":"e","key_fact":"f"},
		{"focus":"g","task":"h","key_fact":"i"}
	],
	"performance_breakdown": {"conceptual_understanding":80,"writing_skills":70,"exam_readiness":75,"consistency":85,"strengths":["recall"],"improvements":["structure"]},
	"motivational_message": "Strong session."
}`

func newTestEngine(mock *llm.MockProvider) (*Engine, *memSessionRepo) {
	sessions := newMemSessionRepo()
	noteRepo := &memNoteRepo{notes: map[string]*notes.Note{"note-1": testNote()}}
	e := NewEngine(
		sessions,
		noteRepo,
		analysis.NewAnalyzer(mock, analysis.DefaultAnalyzerConfig()),
		questions.NewGenerator(mock, questions.DefaultGeneratorConfig()),
		completion.NewAnalyzer(mock, completion.DefaultAnalyzerConfig()),
	)
	e.now = func() time.Time { return time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC) }
	return e, sessions
}

func mustStart(t *testing.T, e *Engine, mock *llm.MockProvider) *StartResult {
	t.Helper()
	mock.AddResponse(questionJSON("What is GST revenue sharing?"))
	res, err := e.Start(context.Background(), "note-1", "user-1")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return res
}

func TestStart_SeedsFirstConcept(t *testing.T) {
	mock := llm.NewMockProvider()
	e, sessions := newTestEngine(mock)

	res := mustStart(t, e, mock)
	if res.TotalConcepts != 2 || res.ConceptIndex != 0 {
		t.Errorf("got %d concepts at index %d, want 2 at 0", res.TotalConcepts, res.ConceptIndex)
	}
	if res.Question != "What is GST revenue sharing?" {
		t.Errorf("opening question = %q", res.Question)
	}

	sess, err := sessions.Get(context.Background(), res.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	c := sess.ActiveConcept()
	if c.UnderstandingScore != 0 {
		t.Errorf("seed score = %d, want 0", c.UnderstandingScore)
	}
	if len(c.Turns) != 1 || c.Turns[0].TurnNumber != 1 || c.Turns[0].Speaker != SpeakerTutor {
		t.Errorf("opening turn not seeded: %+v", c.Turns)
	}
}

func TestStart_EmptyNote(t *testing.T) {
	mock := llm.NewMockProvider()
	e, _ := newTestEngine(mock)
	e.notes.(*memNoteRepo).notes["empty"] = &notes.Note{ID: "empty", UserID: "user-1", Concepts: []notes.Concept{{Name: "  "}}}

	_, err := e.Start(context.Background(), "empty", "user-1")
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("error = %v, want ErrNoContent", err)
	}
	if mock.CallCount() != 0 {
		t.Error("empty note should be rejected before any oracle call")
	}
}

func TestStart_WrongUser(t *testing.T) {
	mock := llm.NewMockProvider()
	e, _ := newTestEngine(mock)

	_, err := e.Start(context.Background(), "note-1", "someone-else")
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("error = %v, want ErrNotAuthorized", err)
	}
}

func TestSubmitAnswer_AppendsExactlyOneTurnPair(t *testing.T) {
	mock := llm.NewMockProvider()
	e, sessions := newTestEngine(mock)
	res := mustStart(t, e, mock)

	mock.AddResponse(analysisJSON(t, analysis.Result{
		Understanding:    analysis.UnderstandingPartial,
		ReasoningQuality: analysis.ReasoningModerate,
		NeedsProbing:     true,
		Recommended:      analysis.ActionProbe,
	}))
	mock.AddResponse(questionJSON("Why does the Centre compensate states?"))

	out, err := e.SubmitAnswer(context.Background(), res.SessionID, "user-1", "States share GST with the Centre.")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if out.Action != string(analysis.ActionProbe) || out.TurnType != string(TurnProbe) {
		t.Errorf("action=%s turnType=%s, want PROBE/PROBING_QUESTION", out.Action, out.TurnType)
	}
	if out.Concept.UnderstandingScore != 5 {
		t.Errorf("score = %d, want 0+5", out.Concept.UnderstandingScore)
	}

	sess, _ := sessions.Get(context.Background(), res.SessionID)
	c := sess.ActiveConcept()
	if len(c.Turns) != 3 {
		t.Fatalf("turns = %d, want 3 (opening + answer + probe)", len(c.Turns))
	}
	for i, turn := range c.Turns {
		if turn.TurnNumber != i+1 {
			t.Errorf("turn %d numbered %d, want monotonic from 1", i, turn.TurnNumber)
		}
	}
	if c.Turns[1].Validation == nil {
		t.Error("learner turn should carry the analysis snapshot")
	}
	if c.Turns[2].Validation != nil {
		t.Error("tutor turn should not carry an analysis snapshot")
	}
	if c.ProbingQuestionsAsked != 1 {
		t.Errorf("probes asked = %d, want 1", c.ProbingQuestionsAsked)
	}
}

func TestSubmitAnswer_OracleFailureWritesNothing(t *testing.T) {
	mock := llm.NewMockProvider()
	e, sessions := newTestEngine(mock)
	res := mustStart(t, e, mock)

	before, _ := sessions.Get(context.Background(), res.SessionID)

	mock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	_, err := e.SubmitAnswer(context.Background(), res.SessionID, "user-1", "an answer")
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error = %v, want provider unavailable", err)
	}

	after, _ := sessions.Get(context.Background(), res.SessionID)
	b1, _ := json.Marshal(before)
	b2, _ := json.Marshal(after)
	if string(b1) != string(b2) {
		t.Error("failed turn must leave stored session byte-identical")
	}
}

func TestSubmitAnswer_QuestionFailureWritesNothing(t *testing.T) {
	mock := llm.NewMockProvider()
	e, sessions := newTestEngine(mock)
	res := mustStart(t, e, mock)

	// Analysis succeeds; question generation fails. The graded analysis
	// must not be persisted on its own.
	mock.AddResponse(analysisJSON(t, analysis.Result{
		Understanding: analysis.UnderstandingGood,
		NeedsProbing:  true,
		Recommended:   analysis.ActionProbe,
	}))
	mock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	if _, err := e.SubmitAnswer(context.Background(), res.SessionID, "user-1", "an answer"); err == nil {
		t.Fatal("expected error")
	}

	sess, _ := sessions.Get(context.Background(), res.SessionID)
	c := sess.ActiveConcept()
	if len(c.Turns) != 1 || c.Attempts != 0 || c.UnderstandingScore != 0 {
		t.Errorf("partial state written: turns=%d attempts=%d score=%d", len(c.Turns), c.Attempts, c.UnderstandingScore)
	}
}

func TestSubmitAnswer_MasteryAdvancesConcept(t *testing.T) {
	mock := llm.NewMockProvider()
	e, sessions := newTestEngine(mock)
	res := mustStart(t, e, mock)

	// Walk the first concept to 80: 25+25+25+5.
	grades := []analysis.Understanding{
		analysis.UnderstandingExcellent,
		analysis.UnderstandingExcellent,
		analysis.UnderstandingExcellent,
	}
	for _, g := range grades {
		mock.AddResponse(analysisJSON(t, analysis.Result{Understanding: g, NeedsProbing: true, Recommended: analysis.ActionProbe}))
		mock.AddResponse(questionJSON("Go deeper."))
		if _, err := e.SubmitAnswer(context.Background(), res.SessionID, "user-1", "answer"); err != nil {
			t.Fatal(err)
		}
	}

	// 75 + 5 = 80 with concept_grasped: the mastery gate passes.
	mock.AddResponse(analysisJSON(t, analysis.Result{
		Understanding:  analysis.UnderstandingPartial,
		ConceptGrasped: true,
		Recommended:    analysis.ActionMoveOn,
	}))
	mock.AddResponse(questionJSON("What does the Finance Commission do?"))

	out, err := e.SubmitAnswer(context.Background(), res.SessionID, "user-1", "final answer")
	if err != nil {
		t.Fatal(err)
	}
	if !out.Concept.IsMastered || !out.Concept.MovedToNext {
		t.Errorf("concept status = %+v, want mastered and advanced", out.Concept)
	}
	if !strings.Contains(out.Message, "GST revenue sharing") {
		t.Errorf("validation message = %q, want it to name the concept", out.Message)
	}
	if out.NextQuestion != "What does the Finance Commission do?" {
		t.Errorf("next question = %q", out.NextQuestion)
	}
	if out.Session.ConceptsMastered != 1 || out.Session.IsCompleted {
		t.Errorf("session status = %+v", out.Session)
	}

	sess, _ := sessions.Get(context.Background(), res.SessionID)
	if sess.CurrentConceptIndex != 1 {
		t.Errorf("concept index = %d, want 1", sess.CurrentConceptIndex)
	}
	first := &sess.Concepts[0]
	if !first.IsMastered || len(first.Window()) != 0 {
		t.Error("mastered concept should keep history but close its window")
	}
	second := sess.ActiveConcept()
	if len(second.Turns) != 1 || second.Turns[0].TurnNumber != 1 {
		t.Errorf("next concept should open with turn 1, got %+v", second.Turns)
	}
	if second.UnderstandingScore != 0 {
		t.Errorf("next concept seeded at %d, want 0", second.UnderstandingScore)
	}
}

// masterConcept drives the active concept straight through the gate.
func masterConcept(t *testing.T, e *Engine, mock *llm.MockProvider, sessionID string, tail ...llm.MockResponse) *SubmitResult {
	t.Helper()
	for i := 0; i < 3; i++ {
		mock.AddResponse(analysisJSON(t, analysis.Result{Understanding: analysis.UnderstandingExcellent, NeedsProbing: true, Recommended: analysis.ActionProbe}))
		mock.AddResponse(questionJSON("Go deeper."))
		if _, err := e.SubmitAnswer(context.Background(), sessionID, "user-1", "answer"); err != nil {
			t.Fatal(err)
		}
	}
	mock.AddResponse(analysisJSON(t, analysis.Result{Understanding: analysis.UnderstandingExcellent, ConceptGrasped: true, Recommended: analysis.ActionMoveOn}))
	for _, r := range tail {
		mock.AddResponse(r)
	}
	out, err := e.SubmitAnswer(context.Background(), sessionID, "user-1", "final answer")
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestSubmitAnswer_LastConceptCompletesSession(t *testing.T) {
	mock := llm.NewMockProvider()
	e, sessions := newTestEngine(mock)
	res := mustStart(t, e, mock)

	masterConcept(t, e, mock, res.SessionID, questionJSON("Opening for concept 2."))
	out := masterConcept(t, e, mock, res.SessionID, llm.MockResponse{Content: json.RawMessage(reportJSON)})

	if !out.Session.IsCompleted || out.Session.ConceptsMastered != 2 {
		t.Errorf("session status = %+v, want completed with 2 mastered", out.Session)
	}
	if out.NextQuestion != "" {
		t.Errorf("completed session got next question %q", out.NextQuestion)
	}

	sess, _ := sessions.Get(context.Background(), res.SessionID)
	if sess.Completion == nil || sess.Completion.Motivation != "Strong session." {
		t.Error("completion report not stored")
	}

	// A completed session rejects further answers before any oracle call.
	calls := mock.CallCount()
	_, err := e.SubmitAnswer(context.Background(), res.SessionID, "user-1", "one more")
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("error = %v, want ErrInvalidState", err)
	}
	if mock.CallCount() != calls {
		t.Error("completed-session rejection must not call the oracle")
	}
}

func TestSubmitAnswer_CompletionFailureLeavesSessionActive(t *testing.T) {
	mock := llm.NewMockProvider()
	e, sessions := newTestEngine(mock)
	res := mustStart(t, e, mock)

	masterConcept(t, e, mock, res.SessionID, questionJSON("Opening for concept 2."))

	for i := 0; i < 3; i++ {
		mock.AddResponse(analysisJSON(t, analysis.Result{Understanding: analysis.UnderstandingExcellent, NeedsProbing: true, Recommended: analysis.ActionProbe}))
		mock.AddResponse(questionJSON("Go deeper."))
		if _, err := e.SubmitAnswer(context.Background(), res.SessionID, "user-1", "answer"); err != nil {
			t.Fatal(err)
		}
	}
	mock.AddResponse(analysisJSON(t, analysis.Result{Understanding: analysis.UnderstandingExcellent, ConceptGrasped: true, Recommended: analysis.ActionMoveOn}))
	mock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	if _, err := e.SubmitAnswer(context.Background(), res.SessionID, "user-1", "final answer"); err == nil {
		t.Fatal("expected completion failure to surface")
	}

	sess, _ := sessions.Get(context.Background(), res.SessionID)
	if sess.IsCompleted || sess.Completion != nil {
		t.Error("failed completion must not mark the session completed")
	}
	if sess.Concepts[1].IsMastered {
		t.Error("failed completion must not persist the mastery either")
	}
}

func TestSubmitAnswer_MisconceptionTracking(t *testing.T) {
	mock := llm.NewMockProvider()
	e, sessions := newTestEngine(mock)
	res := mustStart(t, e, mock)

	for i := 0; i < 2; i++ {
		mock.AddResponse(analysisJSON(t, analysis.Result{
			Understanding:  analysis.UnderstandingPartial,
			Misconceptions: []string{"thinks states set GST rates"},
			Recommended:    analysis.ActionChallenge,
		}))
		mock.AddResponse(questionJSON("If states set rates, why did compensation cess exist?"))
		out, err := e.SubmitAnswer(context.Background(), res.SessionID, "user-1", "states set their own GST rates")
		if err != nil {
			t.Fatal(err)
		}
		if out.Action != string(analysis.ActionChallenge) {
			t.Errorf("action = %s, want CHALLENGE", out.Action)
		}
	}

	sess, _ := sessions.Get(context.Background(), res.SessionID)
	c := sess.ActiveConcept()
	if len(c.MisconceptionsIdentified) != 1 {
		t.Errorf("misconceptions = %v, want the duplicate collapsed", c.MisconceptionsIdentified)
	}
	if len(sess.Misconceptions) != 1 || sess.Misconceptions[0].Concept != "GST revenue sharing" {
		t.Errorf("session misconception records = %+v", sess.Misconceptions)
	}
	if len(sess.WeakConcepts) != 1 {
		t.Errorf("weak concepts = %v", sess.WeakConcepts)
	}
}

func TestSubmitAnswer_VersionConflict(t *testing.T) {
	mock := llm.NewMockProvider()
	e, sessions := newTestEngine(mock)
	res := mustStart(t, e, mock)

	// A concurrent request advances the session first.
	mock.AddResponse(analysisJSON(t, analysis.Result{Understanding: analysis.UnderstandingGood, NeedsProbing: true, Recommended: analysis.ActionProbe}))
	mock.AddResponse(questionJSON("Go deeper."))
	if _, err := e.SubmitAnswer(context.Background(), res.SessionID, "user-1", "answer"); err != nil {
		t.Fatal(err)
	}

	// This request read the session before that write landed, so its
	// conditional write collides.
	e.sessions = &staleReadRepo{Repo: sessions, staleVersion: 0}
	mock.AddResponse(analysisJSON(t, analysis.Result{Understanding: analysis.UnderstandingGood, NeedsProbing: true, Recommended: analysis.ActionProbe}))
	mock.AddResponse(questionJSON("Go deeper."))

	_, err := e.SubmitAnswer(context.Background(), res.SessionID, "user-1", "answer")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict", err)
	}
}

// staleReadRepo serves reads at an old version so the conditional write
// collides, the way a lost race with a concurrent request would.
type staleReadRepo struct {
	Repo
	staleVersion int64
}

func (r *staleReadRepo) Get(ctx context.Context, id string) (*Session, error) {
	s, err := r.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Version = r.staleVersion
	return s, nil
}

func TestSubmitAnswer_NotFoundAndNotAuthorized(t *testing.T) {
	mock := llm.NewMockProvider()
	e, _ := newTestEngine(mock)
	res := mustStart(t, e, mock)

	if _, err := e.SubmitAnswer(context.Background(), "missing", "user-1", "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if _, err := e.SubmitAnswer(context.Background(), res.SessionID, "intruder", "a"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("error = %v, want ErrNotAuthorized", err)
	}
}

func TestCompletionSummary_StableAcrossFetches(t *testing.T) {
	mock := llm.NewMockProvider()
	e, _ := newTestEngine(mock)
	res := mustStart(t, e, mock)

	masterConcept(t, e, mock, res.SessionID, questionJSON("Opening for concept 2."))
	masterConcept(t, e, mock, res.SessionID, llm.MockResponse{Content: json.RawMessage(reportJSON)})

	calls := mock.CallCount()
	first, err := e.CompletionSummary(context.Background(), res.SessionID, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.CompletionSummary(context.Background(), res.SessionID, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if mock.CallCount() != calls {
		t.Error("summary fetch must never call the oracle")
	}

	b1, _ := json.Marshal(first)
	b2, _ := json.Marshal(second)
	if string(b1) != string(b2) {
		t.Error("summary must be byte-identical across fetches")
	}
	if first.IssueCounts["concept"] != 1 {
		t.Errorf("issue counts = %v", first.IssueCounts)
	}
	if first.TotalSteps != 8 || first.CorrectAnswers != 8 {
		t.Errorf("counters = %d/%d, want 8/8", first.CorrectAnswers, first.TotalSteps)
	}
}

func TestCompletionSummary_RequiresCompletion(t *testing.T) {
	mock := llm.NewMockProvider()
	e, _ := newTestEngine(mock)
	res := mustStart(t, e, mock)

	_, err := e.CompletionSummary(context.Background(), res.SessionID, "user-1")
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("error = %v, want ErrInvalidState", err)
	}
}

func TestSubmitFixed_WalksStoredSteps(t *testing.T) {
	mock := llm.NewMockProvider()
	e, sessions := newTestEngine(mock)

	sess := &Session{
		ID:      "legacy-1",
		UserID:  "user-1",
		NoteID:  "note-1",
		Subject: "Indian Polity",
		Mode:    ModeFixed,
		Concepts: []Concept{{
			Name:       "MGNREGA",
			Difficulty: "medium",
			Turns:      []ConversationTurn{{TurnNumber: 1, Speaker: SpeakerTutor, Message: "Define MGNREGA.", Type: TurnFixedPrompt}},
		}},
		FixedSteps: []FixedStep{
			{QuestionType: "recall", Question: "Define MGNREGA."},
			{QuestionType: "application", Question: "Who funds the wages?"},
		},
		CurrentStep: 1,
	}
	if err := sessions.Create(context.Background(), sess); err != nil {
		t.Fatal(err)
	}

	out, err := e.SubmitAnswer(context.Background(), "legacy-1", "user-1", "rural wage guarantee act")
	if err != nil {
		t.Fatal(err)
	}
	if out.Message != "Who funds the wages?" || out.TurnType != string(TurnFixedPrompt) {
		t.Errorf("step 1 reply = %q (%s)", out.Message, out.TurnType)
	}
	if mock.CallCount() != 0 {
		t.Error("fixed-mode steps must not call the analyzer")
	}

	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(reportJSON)})
	out, err = e.SubmitAnswer(context.Background(), "legacy-1", "user-1", "the Centre")
	if err != nil {
		t.Fatal(err)
	}
	if !out.Session.IsCompleted {
		t.Error("final fixed step should complete the session")
	}

	stored, _ := sessions.Get(context.Background(), "legacy-1")
	if stored.Completion == nil {
		t.Error("fixed-mode completion should store a report")
	}
}
