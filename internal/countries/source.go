// Package countries loads country border records from the upstream dataset.
package countries

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/persistorai/landroute/internal/models"
)

// DefaultDataURL is the public mledoze/countries dataset.
const DefaultDataURL = "https://raw.githubusercontent.com/mledoze/countries/master/countries.json"

// maxDocumentSize caps how much of the upstream document is read.
const maxDocumentSize = 64 << 20

// Source produces the raw country records a border graph is built from.
type Source interface {
	Fetch(ctx context.Context) ([]models.CountryRecord, error)
	Name() string
}

// HTTPSource fetches the dataset over HTTP(S).
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource for url with the given request timeout.
func NewHTTPSource(rawURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    rawURL,
		client: &http.Client{Timeout: timeout},
	}
}

// Name returns the URL the source reads from.
func (s *HTTPSource) Name() string { return s.url }

// Fetch downloads and decodes the dataset. Any status other than 200 is an error.
func (s *HTTPSource) Fetch(ctx context.Context) ([]models.CountryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("countries: create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("countries: request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("countries: unexpected HTTP status: %d", resp.StatusCode)
	}

	return Decode(io.LimitReader(resp.Body, maxDocumentSize))
}

// FileSource reads the dataset from a local JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string { return "file://" + s.path }

// Fetch reads and decodes the file.
func (s *FileSource) Fetch(_ context.Context) ([]models.CountryRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("countries: open %s: %w", s.path, err)
	}
	defer f.Close()

	return Decode(io.LimitReader(f, maxDocumentSize))
}

// NewSource picks a Source from the URL scheme: file:// reads from disk,
// anything else goes over HTTP.
func NewSource(rawURL string, timeout time.Duration) (Source, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("countries: parse data URL: %w", err)
	}

	switch u.Scheme {
	case "file":
		return NewFileSource(u.Path), nil
	case "http", "https":
		return NewHTTPSource(rawURL, timeout), nil
	default:
		return nil, fmt.Errorf("countries: unsupported data URL scheme %q", u.Scheme)
	}
}
