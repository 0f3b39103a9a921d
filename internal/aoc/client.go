package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gisleudo-cortez/aoc-init/internal/model"
)

// unlockNotice is the phrase the site puts in 400 responses for puzzles that
// have not been released yet.
const unlockNotice = "Please don't repeatedly request this endpoint before it unlocks!"

// ErrNotReleased is returned when the requested puzzle is not available yet.
//
// The site signals this either with a 404 on the day page or with a 400
// carrying the unlock notice on the input endpoint.
var ErrNotReleased = errors.New("puzzle not released yet")

// ErrBadSession is returned on 401/403 responses, which in practice mean the
// session cookie is invalid or has expired.
var ErrBadSession = errors.New("session cookie rejected (invalid or expired)")

// StatusError is returned for any other non-success response.
type StatusError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// URL is the request URL.
	URL string

	// Body is a snippet of the response body, useful with -verbose.
	Body string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

// ClientConfig configures a Client.
type ClientConfig struct {
	// BaseURL is the puzzle site base URL, without trailing slash.
	BaseURL string

	// Session is the session cookie value sent with every request.
	Session string

	// UserAgent identifies the tool; empty uses a default.
	UserAgent string

	// Timeout bounds each request; zero uses a default.
	Timeout time.Duration
}

// Client fetches puzzle content over HTTP.
//
// Every request carries the session cookie and the configured User-Agent.
// There are no retries: each call maps one-to-one onto a single GET, and
// failures come back classified (ErrNotReleased, ErrBadSession, StatusError)
// so the caller can print something the user can act on.
//
// Example usage:
//
//	client := aoc.NewClient(aoc.ClientConfig{
//	    BaseURL: "https://adventofcode.com",
//	    Session: cookie,
//	})
//
//	input, err := client.FetchInput(ctx, ch)
//	if errors.Is(err, aoc.ErrNotReleased) {
//	    fmt.Println("come back at midnight")
//	}
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    string
	userAgent  string
}

// NewClient creates a Client from the given configuration, filling in
// defaults for the user agent and timeout.
func NewClient(cfg ClientConfig) *Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "aoc-init/0.3"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		session:    cfg.Session,
		userAgent:  userAgent,
	}
}

// BaseURL returns the configured site base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchInput downloads the puzzle input text for the challenge.
func (c *Client) FetchInput(ctx context.Context, ch model.Challenge) (string, error) {
	return c.get(ctx, ch.InputURL(c.baseURL))
}

// FetchStatementPage downloads the raw HTML of the puzzle statement page.
func (c *Client) FetchStatementPage(ctx context.Context, ch model.Challenge) (string, error) {
	return c.get(ctx, ch.URL(c.baseURL))
}

// FetchCalendar downloads the raw HTML of the year calendar page, which
// links every released day.
func (c *Client) FetchCalendar(ctx context.Context, year int) (string, error) {
	return c.get(ctx, fmt.Sprintf("%s/%d", c.baseURL, year))
}

// get performs an authenticated GET and returns the body text.
//
// Status classification:
//   - 200: body returned
//   - 404, or 400 with the unlock notice: ErrNotReleased
//   - 401/403: ErrBadSession
//   - anything else: *StatusError with a body snippet
func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response from %s: %w", url, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return string(body), nil
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%s: %w", url, ErrNotReleased)
	case resp.StatusCode == http.StatusBadRequest && strings.Contains(string(body), unlockNotice):
		return "", fmt.Errorf("%s: %w", url, ErrNotReleased)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%s: %w", url, ErrBadSession)
	default:
		return "", &StatusError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Body:       snippet(string(body)),
		}
	}
}

// snippet shortens a response body for error messages.
func snippet(body string) string {
	const max = 200
	body = strings.TrimSpace(body)
	if len(body) > max {
		return body[:max] + "..."
	}
	return body
}
