package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yojanabuddy/teachme/internal/llm"
	"github.com/yojanabuddy/teachme/internal/notes"
	"github.com/yojanabuddy/teachme/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testSession() *session.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &session.Session{
		ID:      "sess-1",
		UserID:  "user-1",
		NoteID:  "note-1",
		Subject: "Indian Polity",
		Mode:    session.ModeAdaptive,
		Concepts: []session.Concept{
			{
				Name:       "GST revenue sharing",
				Difficulty: "hard",
				Turns: []session.ConversationTurn{
					{TurnNumber: 1, Speaker: session.SpeakerTutor, Message: "What is GST revenue sharing?", Type: session.TurnProbe, Timestamp: now},
				},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSessionRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testSession()); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Subject != "Indian Polity" || got.Mode != session.ModeAdaptive {
		t.Errorf("scalar fields lost: %+v", got)
	}
	if len(got.Concepts) != 1 || len(got.Concepts[0].Turns) != 1 {
		t.Fatalf("nested document lost: %+v", got.Concepts)
	}
	if got.Concepts[0].Turns[0].Message != "What is GST revenue sharing?" {
		t.Errorf("turn message = %q", got.Concepts[0].Turns[0].Message)
	}
	if got.Version != 0 {
		t.Errorf("fresh session version = %d, want 0", got.Version)
	}
}

func TestSessionRepo_GetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.SessionRepo().Get(context.Background(), "nope")
	if !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("error = %v, want session.ErrNotFound", err)
	}
}

func TestSessionRepo_ConditionalUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testSession()); err != nil {
		t.Fatal(err)
	}

	// Two requests read the same version.
	a, _ := repo.Get(ctx, "sess-1")
	b, _ := repo.Get(ctx, "sess-1")

	a.TotalSteps = 1
	if err := repo.UpdateConditional(ctx, a); err != nil {
		t.Fatalf("first writer: %v", err)
	}

	b.TotalSteps = 99
	err := repo.UpdateConditional(ctx, b)
	if !errors.Is(err, session.ErrConflict) {
		t.Fatalf("second writer error = %v, want session.ErrConflict", err)
	}

	// The losing write must not have landed.
	got, _ := repo.Get(ctx, "sess-1")
	if got.TotalSteps != 1 {
		t.Errorf("total steps = %d, want the first writer's 1", got.TotalSteps)
	}
	if got.Version != 1 {
		t.Errorf("version = %d, want 1 after one successful write", got.Version)
	}
}

func TestNoteRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.NoteRepo()
	ctx := context.Background()

	n := &notes.Note{
		ID:      "note-1",
		UserID:  "user-1",
		Title:   "Fiscal federalism",
		Subject: "Indian Polity",
		Concepts: []notes.Concept{
			{Name: "GST revenue sharing", Difficulty: "hard"},
			{Name: "Finance Commission", Difficulty: "medium"},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Put(ctx, n); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "note-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Concepts) != 2 || got.Concepts[1].Name != "Finance Commission" {
		t.Errorf("concepts = %+v", got.Concepts)
	}

	// Put is an upsert.
	n.Title = "Fiscal federalism (revised)"
	if err := repo.Put(ctx, n); err != nil {
		t.Fatalf("re-put: %v", err)
	}
	got, _ = repo.Get(ctx, "note-1")
	if got.Title != "Fiscal federalism (revised)" {
		t.Errorf("title = %q after upsert", got.Title)
	}

	list, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("list = %d notes, want 1", len(list))
	}
}

func TestLLMEventLog_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	log := s.LLMEvents()
	ctx := context.Background()

	events := []llm.RequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "understanding-analysis", InputTokens: 900, OutputTokens: 120, LatencyMs: 600, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-probe", InputTokens: 400, OutputTokens: 40, LatencyMs: 450, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "understanding-analysis", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := log.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := log.Query(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("events = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Sequence <= all[i-1].Sequence {
			t.Error("sequence must be strictly increasing")
		}
	}

	analyses, err := log.Query(ctx, QueryOpts{Purpose: "understanding-analysis"})
	if err != nil {
		t.Fatal(err)
	}
	if len(analyses) != 2 {
		t.Errorf("analysis events = %d, want 2", len(analyses))
	}

	failed, err := log.Query(ctx, QueryOpts{Failed: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(failed) != 1 || failed[0].ErrorMessage != "rate limited" {
		t.Errorf("failed events = %+v", failed)
	}
}
