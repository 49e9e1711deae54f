// Package http provides an HTTP-based implementation of startog.ProjectSource
// for project lists served by a web server.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mran/startog"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Source implements startog.ProjectSource at compile time.
var _ startog.ProjectSource = (*Source)(nil)

// Source loads projects from a JSON document at a URL.
type Source struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Source.
type Option func(*Source)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithClient sets the HTTP client. The timeout option is ignored when a
// client is provided.
func WithClient(c *http.Client) Option {
	return func(s *Source) {
		s.client = c
	}
}

// NewSource creates a new Source for url.
func NewSource(url string, opts ...Option) *Source {
	s := &Source{
		url:     url,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{
			Timeout: s.timeout,
		}
	}

	return s
}

// LoadProjects fetches and decodes the project list.
func (s *Source) LoadProjects(ctx context.Context) ([]*startog.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, s.url)
	}

	return startog.DecodeProjects(resp.Body)
}

// String returns the URL the source loads from.
func (s *Source) String() string {
	return s.url
}
