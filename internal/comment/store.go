package comment

import (
	"sync"
	"time"
)

// Store holds the comments for the lifetime of the process.
// Inputs are trusted; callers validate before calling Add.
type Store struct {
	mu       sync.RWMutex
	comments []Comment
	nextID   int64

	listenerMu     sync.Mutex
	listeners      []listenerEntry
	nextListenerID int

	now func() time.Time
}

type listenerEntry struct {
	id int
	fn Listener
}

// NewStore creates an empty comment store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Add appends a new comment and returns it.
func (s *Store) Add(text string, note int) Comment {
	s.mu.Lock()
	s.nextID++
	c := Comment{
		ID:        s.nextID,
		Comment:   text,
		Note:      note,
		CreatedAt: s.now().UTC(),
	}
	s.comments = append(s.comments, c)
	s.mu.Unlock()

	s.notify(Event{Kind: EventAdded, Comment: c})
	return c
}

// Delete removes the comment with the given ID.
// It reports whether a comment was removed; an unknown ID is a no-op.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	idx := -1
	for i, c := range s.comments {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.comments[idx]
	s.comments = append(s.comments[:idx:idx], s.comments[idx+1:]...)
	s.mu.Unlock()

	s.notify(Event{Kind: EventDeleted, Comment: removed})
	return true
}

// All returns a copy of the comments in insertion order.
func (s *Store) All() []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Comment, len(s.comments))
	copy(out, s.comments)
	return out
}

// Get returns the comment with the given ID.
func (s *Store) Get(id int64) (Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.comments {
		if c.ID == id {
			return c, true
		}
	}
	return Comment{}, false
}

// Len returns the number of stored comments.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.comments)
}

// Subscribe registers fn to be called after every mutation, in
// registration order. The returned func removes the listener.
func (s *Store) Subscribe(fn Listener) func() {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	s.nextListenerID++
	id := s.nextListenerID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		s.listenerMu.Lock()
		defer s.listenerMu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// notify runs listeners outside the data lock so they may read the store.
func (s *Store) notify(ev Event) {
	s.listenerMu.Lock()
	listeners := make([]listenerEntry, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenerMu.Unlock()

	for _, l := range listeners {
		l.fn(ev)
	}
}
