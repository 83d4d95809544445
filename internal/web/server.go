// Package web provides the HTTP server and handlers for the movie-notes web UI.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"

	"github.com/evcraddock/movie-notes/internal/comment"
	"github.com/evcraddock/movie-notes/internal/logging"
	"github.com/evcraddock/movie-notes/internal/movie"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// RevisionHeader reports how many times the comment list has changed.
const RevisionHeader = "X-Comments-Revision"

// Server is the web UI HTTP server.
type Server struct {
	store       *comment.Store
	loader      *movie.Loader
	templates   *template.Template
	router      *mux.Router
	revision    atomic.Int64
	unsubscribe func()
}

// NewServer creates a web server that renders the given store and movie loader.
func NewServer(store *comment.Store, loader *movie.Loader) (*Server, error) {
	funcMap := template.FuncMap{
		"formatRating":  comment.Stars,
		"formatAverage": tmplFormatAverage,
		"itoa":          strconv.Itoa,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		store:     store,
		loader:    loader,
		templates: tmpl,
		router:    mux.NewRouter(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	s.router.HandleFunc("/comments", s.handleCommentPost).Methods(http.MethodPost)
	s.router.HandleFunc("/comments/{id:[0-9]+}/delete", s.handleCommentDelete).Methods(http.MethodPost)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/comments", s.apiListComments).Methods(http.MethodGet)
	api.HandleFunc("/comments", s.apiAddComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id:[0-9]+}", s.apiGetComment).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id:[0-9]+}", s.apiDeleteComment).Methods(http.MethodDelete)
	api.HandleFunc("/movie", s.apiMovie).Methods(http.MethodGet)

	// A subrouter's MethodNotAllowedHandler is never reached, so each API
	// path ends with a catch-all that answers in JSON.
	for _, path := range []string{"/comments", "/comments/{id:[0-9]+}", "/movie"} {
		api.HandleFunc(path, s.apiMethodNotAllowed)
	}
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	s.unsubscribe = store.Subscribe(s.onCommentsChanged)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close detaches the server from the store.
func (s *Server) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// ListenAndServe serves on the given port until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           logging.RequestLogger(s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting web UI", "url", fmt.Sprintf("http://localhost:%d", port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		slog.Info("shutting down web UI")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}

// Revision returns the number of store mutations observed.
func (s *Server) Revision() int64 {
	return s.revision.Load()
}

// onCommentsChanged is the store listener.
func (s *Server) onCommentsChanged(ev comment.Event) {
	rev := s.revision.Add(1)
	slog.Debug("comments changed",
		"event", ev.Kind.String(),
		"id", ev.Comment.ID,
		"count", s.store.Len(),
		"revision", rev,
	)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// Template helper functions

func tmplFormatAverage(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.1f", f)
}
