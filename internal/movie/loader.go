package movie

import (
	"context"
	"log/slog"
	"sync"
)

// State is the progress of the one-shot fetch.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Fetcher retrieves a movie. *Client implements it.
type Fetcher interface {
	Random(ctx context.Context) (*Movie, error)
}

// Snapshot is a point-in-time view of the loader.
type Snapshot struct {
	State State  `json:"state"`
	Movie *Movie `json:"movie,omitempty"`
	Error string `json:"error,omitempty"`
}

// Loader fetches a movie exactly once and remembers the outcome.
type Loader struct {
	fetcher Fetcher
	once    sync.Once
	done    chan struct{}

	mu    sync.RWMutex
	state Snapshot
}

// NewLoader creates a loader in the loading state.
func NewLoader(f Fetcher) *Loader {
	return &Loader{
		fetcher: f,
		done:    make(chan struct{}),
		state:   Snapshot{State: StateLoading},
	}
}

// Start launches the fetch in the background. Calls after the first are no-ops.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		go l.run(ctx)
	})
}

// Done is closed once the fetch has finished, successfully or not.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Snapshot returns the current state.
func (l *Loader) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *Loader) run(ctx context.Context) {
	defer close(l.done)

	m, err := l.fetcher.Random(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		slog.Error("fetching movie", "error", err)
		l.state = Snapshot{State: StateFailed, Error: err.Error()}
		return
	}
	slog.Info("movie loaded", "title", m.Title)
	l.state = Snapshot{State: StateReady, Movie: m}
}
