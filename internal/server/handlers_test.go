package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yojanabuddy/teachme/internal/analysis"
	"github.com/yojanabuddy/teachme/internal/completion"
	"github.com/yojanabuddy/teachme/internal/llm"
	"github.com/yojanabuddy/teachme/internal/notes"
	"github.com/yojanabuddy/teachme/internal/questions"
	"github.com/yojanabuddy/teachme/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memSessions struct {
	rows map[string]*session.Session
}

func (r *memSessions) Create(_ context.Context, s *session.Session) error {
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *memSessions) Get(_ context.Context, id string) (*session.Session, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSessions) UpdateConditional(_ context.Context, s *session.Session) error {
	stored, ok := r.rows[s.ID]
	if !ok {
		return session.ErrNotFound
	}
	if stored.Version != s.Version {
		return session.ErrConflict
	}
	cp := *s
	cp.Version++
	r.rows[s.ID] = &cp
	return nil
}

type memNotes struct {
	rows map[string]*notes.Note
}

func (r *memNotes) Get(_ context.Context, id string) (*notes.Note, error) {
	n, ok := r.rows[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return n, nil
}

func (r *memNotes) Put(_ context.Context, n *notes.Note) error {
	r.rows[n.ID] = n
	return nil
}

func (r *memNotes) ListByUser(_ context.Context, _ string) ([]*notes.Note, error) {
	return nil, nil
}

func newTestServer(mock *llm.MockProvider) *gin.Engine {
	noteRepo := &memNotes{rows: map[string]*notes.Note{
		"note-1": {
			ID:      "note-1",
			UserID:  "user-1",
			Subject: "Indian Polity",
			Concepts: []notes.Concept{
				{Name: "GST revenue sharing", Difficulty: "hard"},
			},
		},
	}}
	engine := session.NewEngine(
		&memSessions{rows: map[string]*session.Session{}},
		noteRepo,
		analysis.NewAnalyzer(mock, analysis.DefaultAnalyzerConfig()),
		questions.NewGenerator(mock, questions.DefaultGeneratorConfig()),
		completion.NewAnalyzer(mock, completion.DefaultAnalyzerConfig()),
	)
	return NewHandlers(engine).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestServer(llm.NewMockProvider())
	w := doJSON(t, router, http.MethodGet, "/healthz", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestStartSession(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"What is GST revenue sharing?"`)})
	router := newTestServer(mock)

	w := doJSON(t, router, http.MethodPost, "/v1/teachme/sessions", "user-1", `{"note_id":"note-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var res session.StartResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.SessionID == "" || res.Question != "What is GST revenue sharing?" {
		t.Errorf("start result = %+v", res)
	}
}

func TestStartSession_MissingUser(t *testing.T) {
	router := newTestServer(llm.NewMockProvider())
	w := doJSON(t, router, http.MethodPost, "/v1/teachme/sessions", "", `{"note_id":"note-1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestStartSession_UnknownNote(t *testing.T) {
	router := newTestServer(llm.NewMockProvider())
	w := doJSON(t, router, http.MethodPost, "/v1/teachme/sessions", "user-1", `{"note_id":"nope"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", w.Code, w.Body.String())
	}
}

func TestSubmitAnswer_FullTurn(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"What is GST revenue sharing?"`)})
	router := newTestServer(mock)

	w := doJSON(t, router, http.MethodPost, "/v1/teachme/sessions", "user-1", `{"note_id":"note-1"}`)
	var start session.StartResult
	if err := json.Unmarshal(w.Body.Bytes(), &start); err != nil {
		t.Fatal(err)
	}

	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{
		"understanding_demonstrated": "partial",
		"reasoning_quality": "moderate",
		"misconceptions_detected": [],
		"needs_probing": true,
		"needs_scaffolding": false,
		"concept_grasped": false,
		"key_insight": "",
		"recommended_action": "PROBE"
	}`)})
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`"Why does the Centre compensate states?"`)})

	w = doJSON(t, router, http.MethodPost, "/v1/teachme/sessions/"+start.SessionID+"/answers", "user-1",
		`{"answer":"States share GST with the Centre."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var res session.SubmitResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Action != "PROBE" || res.Concept.UnderstandingScore != 5 {
		t.Errorf("submit result = %+v", res)
	}
}

func TestSubmitAnswer_WrongUserIs403(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Q?"`)})
	router := newTestServer(mock)

	w := doJSON(t, router, http.MethodPost, "/v1/teachme/sessions", "user-1", `{"note_id":"note-1"}`)
	var start session.StartResult
	if err := json.Unmarshal(w.Body.Bytes(), &start); err != nil {
		t.Fatal(err)
	}

	w = doJSON(t, router, http.MethodPost, "/v1/teachme/sessions/"+start.SessionID+"/answers", "intruder", `{"answer":"hi"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestSubmitAnswer_BlankAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Q?"`)})
	router := newTestServer(mock)

	w := doJSON(t, router, http.MethodPost, "/v1/teachme/sessions", "user-1", `{"note_id":"note-1"}`)
	var start session.StartResult
	if err := json.Unmarshal(w.Body.Bytes(), &start); err != nil {
		t.Fatal(err)
	}

	calls := mock.CallCount()
	w = doJSON(t, router, http.MethodPost, "/v1/teachme/sessions/"+start.SessionID+"/answers", "user-1", `{"answer":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if mock.CallCount() != calls {
		t.Error("blank answer must be rejected before the oracle")
	}
}

func TestSubmitAnswer_OracleDownIs502(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Q?"`)})
	router := newTestServer(mock)

	w := doJSON(t, router, http.MethodPost, "/v1/teachme/sessions", "user-1", `{"note_id":"note-1"}`)
	var start session.StartResult
	if err := json.Unmarshal(w.Body.Bytes(), &start); err != nil {
		t.Fatal(err)
	}

	mock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	w = doJSON(t, router, http.MethodPost, "/v1/teachme/sessions/"+start.SessionID+"/answers", "user-1", `{"answer":"an answer"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502, body %s", w.Code, w.Body.String())
	}

	var errRes ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &errRes); err != nil {
		t.Fatal(err)
	}
	if errRes.Code != "ORACLE_UNAVAILABLE" {
		t.Errorf("code = %q", errRes.Code)
	}
	if strings.Contains(strings.ToLower(errRes.Error), "provider") {
		t.Errorf("learner-facing message leaks internals: %q", errRes.Error)
	}
}

func TestSummary_NotCompletedIs409(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Q?"`)})
	router := newTestServer(mock)

	w := doJSON(t, router, http.MethodPost, "/v1/teachme/sessions", "user-1", `{"note_id":"note-1"}`)
	var start session.StartResult
	if err := json.Unmarshal(w.Body.Bytes(), &start); err != nil {
		t.Fatal(err)
	}

	w = doJSON(t, router, http.MethodGet, "/v1/teachme/sessions/"+start.SessionID+"/summary", "user-1", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}
