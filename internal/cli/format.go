package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/evcraddock/movie-notes/internal/comment"
	"github.com/evcraddock/movie-notes/internal/movie"
)

// printJSON marshals v as indented JSON and writes it to out.
func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printCommentTable prints comments as a formatted table.
func printCommentTable(out io.Writer, comments []comment.Comment) error {
	if len(comments) == 0 {
		fmt.Fprintln(out, "No comments yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tRATING\tCOMMENT"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t------\t-------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, c := range comments {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, comment.Stars(c.Note), truncate(c.Comment, 60)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Fprintf(out, "\nTotal: %d comments\n", len(comments))
	return nil
}

// printCommentSingle prints a newly added comment in text format.
func printCommentSingle(out io.Writer, c *comment.Comment) {
	fmt.Fprintf(out, "Comment #%d added.\n  %s %s\n", c.ID, comment.Stars(c.Note), c.Comment)
}

// printMovie prints the movie card, or the loader state when there is no movie.
func printMovie(out io.Writer, snap *movie.Snapshot) {
	switch snap.State {
	case movie.StateLoading:
		fmt.Fprintln(out, "Loading ...")
		return
	case movie.StateFailed:
		fmt.Fprintf(out, "Error: An error occurred. Detail: %s\n", snap.Error)
		return
	}
	if snap.Movie == nil {
		fmt.Fprintln(out, "No movie.")
		return
	}

	m := snap.Movie
	fmt.Fprintln(out, m.Title)
	fmt.Fprintf(out, "  Released: %s\n", m.ReleaseDate)
	fmt.Fprintf(out, "  Rating:   %.1f (%d votes)\n", m.VoteAverage, m.VoteCount)
	if m.PosterPath != "" {
		fmt.Fprintf(out, "  Poster:   %s\n", m.PosterPath)
	}
	if m.Overview != "" {
		fmt.Fprintf(out, "\n  %s\n", m.Overview)
	}
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
