package store

import (
	"context"
	"encoding/json"
	"fmt"

	entnote "github.com/yojanabuddy/teachme/ent/note"

	"github.com/yojanabuddy/teachme/ent"
	"github.com/yojanabuddy/teachme/internal/notes"
	"github.com/yojanabuddy/teachme/internal/session"
)

// noteRepo implements notes.Repo on the ent client.
type noteRepo struct {
	client *ent.Client
}

func (r *noteRepo) Get(ctx context.Context, noteID string) (*notes.Note, error) {
	row, err := r.client.Note.Get(ctx, noteID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("note %s: %w", noteID, session.ErrNotFound)
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return rowToNote(row)
}

func (r *noteRepo) Put(ctx context.Context, n *notes.Note) error {
	concepts, err := conceptsToMaps(n.Concepts)
	if err != nil {
		return fmt.Errorf("marshal concepts: %w", err)
	}

	err = r.client.Note.Create().
		SetID(n.ID).
		SetUserID(n.UserID).
		SetTitle(n.Title).
		SetSubject(n.Subject).
		SetConcepts(concepts).
		SetCreatedAt(n.CreatedAt).
		OnConflictColumns(entnote.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("put note: %w", err)
	}
	return nil
}

func (r *noteRepo) ListByUser(ctx context.Context, userID string) ([]*notes.Note, error) {
	rows, err := r.client.Note.Query().
		Where(entnote.UserID(userID)).
		Order(ent.Desc(entnote.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	out := make([]*notes.Note, 0, len(rows))
	for _, row := range rows {
		n, err := rowToNote(row)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func conceptsToMaps(cs []notes.Concept) ([]map[string]any, error) {
	b, err := json.Marshal(cs)
	if err != nil {
		return nil, err
	}
	var m []map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func rowToNote(row *ent.Note) (*notes.Note, error) {
	b, err := json.Marshal(row.Concepts)
	if err != nil {
		return nil, fmt.Errorf("marshal note concepts: %w", err)
	}
	var cs []notes.Concept
	if err := json.Unmarshal(b, &cs); err != nil {
		return nil, fmt.Errorf("unmarshal note concepts: %w", err)
	}
	return &notes.Note{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Subject:   row.Subject,
		Concepts:  cs,
		CreatedAt: row.CreatedAt,
	}, nil
}
