package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evcraddock/movie-notes/internal/comment"
	"github.com/evcraddock/movie-notes/internal/movie"
)

func TestListComments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/comments" {
			t.Errorf("path = %q, want /api/comments", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]comment.Comment{{ID: 1, Comment: "Great", Note: 5}}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	comments, err := New(srv.URL).ListComments()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(comments))
	}
	if comments[0].Comment != "Great" || comments[0].Note != 5 {
		t.Errorf("comment = %+v", comments[0])
	}
}

func TestAddComment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("content-type = %q", ct)
		}
		var body AddCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Comment != "Okay" || body.Note == nil || *body.Note != 3 || !body.AcceptConditions {
			t.Errorf("body = %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(comment.Comment{ID: 7, Comment: body.Comment, Note: *body.Note}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	note := 3
	c, err := New(srv.URL).AddComment(AddCommentRequest{Comment: "Okay", Note: &note, AcceptConditions: true})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.ID != 7 {
		t.Errorf("id = %d, want 7", c.ID)
	}
}

func TestAddCommentOmitsMissingNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if _, ok := body["note"]; ok {
			t.Errorf("body = %v, want no note key", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		writeBody(t, w, `{"error":"validation failed","fields":{"note":"Rating is required"}}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL).AddComment(AddCommentRequest{Comment: "Okay", AcceptConditions: true})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Fields["note"] != "Rating is required" {
		t.Errorf("note = %q", verr.Fields["note"])
	}
}

func TestAddCommentValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		writeBody(t, w, `{"error":"validation failed","fields":{"note":"Rating must be between 1 and 5","comment":"Comment is required"}}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL).AddComment(AddCommentRequest{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Fields["note"] != "Rating must be between 1 and 5" {
		t.Errorf("note = %q", verr.Fields["note"])
	}
	want := "invalid comment: comment: Comment is required; note: Rating must be between 1 and 5"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestDeleteComment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Path != "/api/comments/42" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := New(srv.URL).DeleteComment(42); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestGetMovie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/movie" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeBody(t, w, `{"state":"ready","movie":{"original_title":"Heat","vote_count":10}}`)
	}))
	defer srv.Close()

	snap, err := New(srv.URL + "/").GetMovie()
	if err != nil {
		t.Fatalf("movie: %v", err)
	}
	if snap.State != movie.StateReady || snap.Movie.Title != "Heat" || snap.Movie.VoteCount != 10 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		writeBody(t, w, `{"error":"comment not found"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListComments()
	if err == nil || err.Error() != "comment not found" {
		t.Errorf("error = %v, want comment not found", err)
	}
}

func TestServerErrorNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListComments()
	if err == nil || !strings.Contains(err.Error(), "Bad Gateway") {
		t.Errorf("error = %v, want Bad Gateway", err)
	}
}

func TestConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).ListComments()
	if err == nil || !strings.Contains(err.Error(), "request failed") {
		t.Errorf("error = %v, want request failed", err)
	}
}

func writeBody(t *testing.T, w http.ResponseWriter, s string) {
	t.Helper()
	if _, err := w.Write([]byte(s)); err != nil {
		t.Errorf("write: %v", err)
	}
}
