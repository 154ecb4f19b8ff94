// Package fetch performs the HTTP side of an import run: building the
// ordered endpoint candidate list and fetching one URL at a time. There is
// no same-endpoint retry; callers advance to the next candidate on any
// transport failure or non-success status.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/clubfeed/fixture-export/internal/config"
)

// UserAgent identifies the exporter to the fixture feed.
const UserAgent = "Mozilla/5.0 (compatible; fixture-export/1.0)"

// Response carries what the extraction core needs from one fetch.
type Response struct {
	Status int
	Header http.Header
	Body   string
}

// OK reports whether the response carries a success status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Client fetches endpoint candidates with a fixed timeout and a polite
// request rate across candidates.
type Client struct {
	httpClient *http.Client
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient creates a client from cfg. When cfg carries an API key it is
// attached to every request as a bearer credential.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		limiter:    rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// Get fetches one URL and returns status plus body text. Errors are
// transport-level only; a non-2xx status is returned as a Response for the
// caller to judge.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json, text/html, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   string(body),
	}, nil
}

// Endpoints returns the ordered candidate URLs for cfg. Candidates are tried
// in sequence until one returns a usable payload.
func Endpoints(cfg *config.Config) []string {
	club := url.PathEscape(cfg.ClubID)
	params := url.Values{}
	params.Set("club_id", cfg.ClubID)
	params.Set("sort_by", cfg.SortBy)
	params.Set("show", cfg.Show)
	params.Set("method", cfg.Method)

	return []string{
		cfg.BaseURL + "fixtures?" + params.Encode(),
		cfg.BaseURL + "club/" + club + "/fixtures",
		cfg.BaseURL + "v1/fixtures/" + club,
	}
}
