// Package movie fetches a random movie record from the public movie API.
package movie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// DefaultURL returns a JSON array holding one random movie.
const DefaultURL = "https://jsonfakery.com/movies/random/1"

// ErrNoMovie is returned when the API answers with an empty list.
var ErrNoMovie = errors.New("no movie in response")

// Movie holds the fields of the remote record that are displayed.
type Movie struct {
	Title       string  `json:"original_title"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// Client fetches movies from a fixed URL.
type Client struct {
	http *resty.Client
	url  string
}

// NewClient creates a movie client. An empty url uses DefaultURL.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		http: resty.New().SetHeader("Accept", "application/json"),
		url:  url,
	}
}

// URL returns the endpoint the client fetches from.
func (c *Client) URL() string {
	return c.url
}

// Random makes a single request and returns the first movie in the response.
// There is no retry.
func (c *Client) Random(ctx context.Context) (*Movie, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error %d", resp.StatusCode())
	}

	var movies []Movie
	if err := json.Unmarshal(resp.Body(), &movies); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(movies) == 0 {
		return nil, ErrNoMovie
	}

	return &movies[0], nil
}
