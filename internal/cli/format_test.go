package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/evcraddock/movie-notes/internal/comment"
	"github.com/evcraddock/movie-notes/internal/movie"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("abcdefghijkl", 8); got != "abcde..." {
		t.Errorf("got %q, want abcde...", got)
	}
	if got := truncate("ééééééééé", 6); got != "ééé..." {
		t.Errorf("got %q, want rune-safe truncation", got)
	}
}

func TestPrintCommentTable(t *testing.T) {
	var buf bytes.Buffer
	err := printCommentTable(&buf, []comment.Comment{
		{ID: 1, Comment: "Great movie", Note: 5},
		{ID: 2, Comment: "Okay", Note: 3},
	})
	if err != nil {
		t.Fatalf("print: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Great movie") || !strings.Contains(out, "★★★☆☆") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "Total: 2 comments") {
		t.Errorf("expected total line in %q", out)
	}
}

func TestPrintCommentTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printCommentTable(&buf, nil); err != nil {
		t.Fatalf("print: %v", err)
	}
	if buf.String() != "No comments yet.\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintMovie(t *testing.T) {
	tests := []struct {
		name string
		snap movie.Snapshot
		want string
	}{
		{"loading", movie.Snapshot{State: movie.StateLoading}, "Loading ..."},
		{"failed", movie.Snapshot{State: movie.StateFailed, Error: "HTTP error 500"}, "Error: An error occurred. Detail: HTTP error 500"},
		{"ready", movie.Snapshot{State: movie.StateReady, Movie: &movie.Movie{Title: "Heat", VoteAverage: 8.3, VoteCount: 900}}, "8.3 (900 votes)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printMovie(&buf, &tt.snap)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
