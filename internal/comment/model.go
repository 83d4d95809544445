// Package comment provides the comment record and its in-memory store.
package comment

import (
	"strings"
	"time"
)

// Comment is a rated note on the current movie.
type Comment struct {
	ID        int64     `json:"id"`
	Comment   string    `json:"comment"`
	Note      int       `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// MaxNote is the highest rating a comment can carry.
const MaxNote = 5

// Stars renders a rating as filled and empty stars, clamped to [0, MaxNote].
func Stars(note int) string {
	if note < 0 {
		note = 0
	}
	if note > MaxNote {
		note = MaxNote
	}
	return strings.Repeat("★", note) + strings.Repeat("☆", MaxNote-note)
}

// EventKind identifies a store mutation.
type EventKind int

const (
	EventAdded EventKind = iota + 1
	EventDeleted
)

// String returns the event kind name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Event describes a single change to the store.
type Event struct {
	Kind    EventKind
	Comment Comment
}

// Listener is called after each store mutation.
type Listener func(Event)
