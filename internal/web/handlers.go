package web

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/evcraddock/movie-notes/internal/comment"
	"github.com/evcraddock/movie-notes/internal/form"
	"github.com/evcraddock/movie-notes/internal/movie"
)

type pageData struct {
	Movie    movie.Snapshot
	Comments []comment.Comment
	Draft    form.Draft
	Errors   form.FieldErrors
	Notes    []int
}

// newPageData reads the current view state. An empty draft renders a reset form.
func (s *Server) newPageData(draft form.Draft, errs form.FieldErrors) pageData {
	return pageData{
		Movie:    s.loader.Snapshot(),
		Comments: s.store.All(),
		Draft:    draft,
		Errors:   errs,
		Notes:    form.Notes,
	}
}

// handlePage renders the movie card, comment list and form.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(RevisionHeader, strconv.FormatInt(s.Revision(), 10))
	s.render(w, "page.html", s.newPageData(form.Draft{}, nil), http.StatusOK)
}

// handleCommentPost validates the form and adds a comment via HTMX or form POST.
func (s *Server) handleCommentPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	draft := form.DraftFromForm(r.PostForm)
	sub, errs := form.Validate(draft)
	if errs != nil {
		slog.Debug("comment rejected", "fields", len(errs))
		// HTMX only swaps 2xx responses, so field errors come back as 200.
		if isHTMX(r) {
			s.renderPartial(w, "comments-section", s.newPageData(draft, errs), http.StatusOK)
			return
		}
		s.render(w, "page.html", s.newPageData(draft, errs), http.StatusUnprocessableEntity)
		return
	}

	s.store.Add(sub.Comment, sub.Note)

	if isHTMX(r) {
		s.renderPartial(w, "comments-section", s.newPageData(form.Draft{}, nil), http.StatusOK)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleCommentDelete removes a comment. Unknown IDs are ignored.
func (s *Server) handleCommentDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseCommentID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	s.store.Delete(id)

	if isHTMX(r) {
		s.renderPartial(w, "comments-section", s.newPageData(form.Draft{}, nil), http.StatusOK)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// render executes a full page template.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}, code int) {
	s.execute(w, name, data, code, "Error rendering template")
}

// renderPartial executes a named template block (no layout).
func (s *Server) renderPartial(w http.ResponseWriter, name string, data interface{}, code int) {
	s.execute(w, name, data, code, "Error rendering partial")
}

// execute renders into memory first so a template failure can still set the status.
func (s *Server) execute(w http.ResponseWriter, name string, data interface{}, code int, failMsg string) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("rendering template", "template", name, "error", err)
		http.Error(w, fmt.Sprintf("%s: %v", failMsg, err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("writing response", "error", err)
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// parseCommentID reads the {id} route variable.
func parseCommentID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
