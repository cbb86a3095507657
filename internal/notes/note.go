// Package notes holds the lesson-source model the tutoring engine reads.
// Content extraction (audio/PDF/DOCX transcription, summarization) happens
// upstream; by the time a note reaches this engine it already carries its
// key concepts.
package notes

import (
	"context"
	"strings"
	"time"
)

// Concept is one teachable unit within a note, as extracted upstream.
type Concept struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"` // easy, medium, hard
}

// Note is a lesson source: a processed study note with its key concepts.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Concepts  []Concept `json:"concepts"`
	CreatedAt time.Time `json:"created_at"`
}

// UsableConcepts filters out blank concept names. A note with none left
// cannot seed a tutoring session.
func (n *Note) UsableConcepts() []Concept {
	out := make([]Concept, 0, len(n.Concepts))
	for _, c := range n.Concepts {
		if strings.TrimSpace(c.Name) != "" {
			out = append(out, c)
		}
	}
	return out
}

// Repo is the note persistence contract.
type Repo interface {
	// Get returns the note, or an error wrapping session.ErrNotFound
	// when absent.
	Get(ctx context.Context, noteID string) (*Note, error)

	// Put stores a note (seed and dev tooling).
	Put(ctx context.Context, n *Note) error

	// ListByUser returns the user's notes, newest first.
	ListByUser(ctx context.Context, userID string) ([]*Note, error)
}
