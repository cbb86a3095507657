package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yojanabuddy/teachme/ent"
	"github.com/yojanabuddy/teachme/ent/tutorsession"
	"github.com/yojanabuddy/teachme/internal/session"
)

// SessionRepo implements session.Repo on the ent client. The session
// document is stored as JSON; the scalar columns carry what queries and
// the conditional write need.
type SessionRepo struct {
	client *ent.Client
}

func (r *SessionRepo) Create(ctx context.Context, s *session.Session) error {
	data, err := sessionToMap(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	_, err = r.client.TutorSession.Create().
		SetID(s.ID).
		SetUserID(s.UserID).
		SetNoteID(s.NoteID).
		SetMode(string(s.Mode)).
		SetIsCompleted(s.IsCompleted).
		SetVersion(s.Version).
		SetData(data).
		SetCreatedAt(s.CreatedAt).
		SetUpdatedAt(s.UpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SessionRepo) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	row, err := r.client.TutorSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, session.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return rowToSession(row)
}

// UpdateConditional writes the session only if the stored version still
// matches s.Version. Zero affected rows means a concurrent writer got
// there first; nothing is written and the caller sees ErrConflict.
func (r *SessionRepo) UpdateConditional(ctx context.Context, s *session.Session) error {
	data, err := sessionToMap(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	n, err := r.client.TutorSession.Update().
		Where(
			tutorsession.ID(s.ID),
			tutorsession.Version(s.Version),
		).
		SetMode(string(s.Mode)).
		SetIsCompleted(s.IsCompleted).
		SetVersion(s.Version + 1).
		SetData(data).
		SetUpdatedAt(s.UpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if n == 0 {
		// Distinguish a lost race from a deleted session.
		exists, err := r.client.TutorSession.Query().
			Where(tutorsession.ID(s.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check session: %w", err)
		}
		if !exists {
			return session.ErrNotFound
		}
		return session.ErrConflict
	}
	return nil
}

// ListByUser returns the user's sessions, newest first.
func (r *SessionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*session.Session, error) {
	q := r.client.TutorSession.Query().
		Where(tutorsession.UserID(userID)).
		Order(ent.Desc(tutorsession.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]*session.Session, 0, len(rows))
	for _, row := range rows {
		s, err := rowToSession(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// sessionToMap converts a session to the JSON document shape ent stores.
func sessionToMap(s *session.Session) (map[string]any, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// rowToSession rebuilds a session from its stored document. The version
// comes from the column, which is the value conditional writes race on.
func rowToSession(row *ent.TutorSession) (*session.Session, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal session data: %w", err)
	}
	var s session.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	s.Version = row.Version
	return &s, nil
}
