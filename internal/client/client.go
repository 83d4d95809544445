// Package client provides an HTTP client for the movie-notes REST API.
package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/evcraddock/movie-notes/internal/comment"
	"github.com/evcraddock/movie-notes/internal/movie"
)

// Client is an HTTP client for the movie-notes API.
type Client struct {
	http *resty.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(30 * time.Second),
	}
}

// ValidationError is returned when the server rejects a comment.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return "invalid comment: " + strings.Join(parts, "; ")
}

// AddCommentRequest is the body of POST /api/comments. A nil Note is
// left out of the body.
type AddCommentRequest struct {
	Comment          string `json:"comment"`
	Note             *int   `json:"note,omitempty"`
	AcceptConditions bool   `json:"accept_conditions"`
}

// ListComments returns all comments in insertion order.
func (c *Client) ListComments() ([]comment.Comment, error) {
	var comments []comment.Comment
	if err := c.do(c.http.R(), http.MethodGet, "/api/comments", &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment submits a comment. The server validates it.
func (c *Client) AddComment(req AddCommentRequest) (*comment.Comment, error) {
	var comm comment.Comment
	if err := c.do(c.http.R().SetBody(req), http.MethodPost, "/api/comments", &comm); err != nil {
		return nil, err
	}
	return &comm, nil
}

// DeleteComment removes a comment. Unknown IDs are not an error.
func (c *Client) DeleteComment(id int64) error {
	return c.do(c.http.R(), http.MethodDelete, fmt.Sprintf("/api/comments/%d", id), nil)
}

// GetMovie returns the movie loader state of the server.
func (c *Client) GetMovie() (*movie.Snapshot, error) {
	var snap movie.Snapshot
	if err := c.do(c.http.R(), http.MethodGet, "/api/movie", &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// do executes a request and decodes the response into result.
func (c *Client) do(req *resty.Request, method, path string, result interface{}) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	body := resp.Body()

	if resp.IsError() {
		var errResp struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		if json.Unmarshal(body, &errResp) == nil {
			if len(errResp.Fields) > 0 {
				return &ValidationError{Fields: errResp.Fields}
			}
			if errResp.Error != "" {
				return fmt.Errorf("%s", errResp.Error)
			}
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode()))
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
