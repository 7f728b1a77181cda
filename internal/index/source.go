package index

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"sitesearch/internal/domain"
)

// DefaultLocation is where the site publishes its search index
const DefaultLocation = "index.json"

// maxIndexSize bounds how much of a response body is read
const maxIndexSize = 32 << 20

// Source fetches the raw index document
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// HTTPSource fetches the index with a single GET request
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Fetch performs the GET. Any non-2xx status is an error.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build index request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("index not found: %s returned %s", s.URL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIndexSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read index body: %w", err)
	}
	return data, nil
}

func (s *HTTPSource) String() string { return s.URL }

// FileSource reads the index from a local file
type FileSource struct {
	Path string
}

// Fetch reads the file
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}
	return data, nil
}

func (s *FileSource) String() string { return s.Path }

// NewSource picks a source for the location: http(s) URLs are fetched over
// the network, anything else is treated as a file path.
func NewSource(location string) Source {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return &HTTPSource{URL: location}
	}
	return &FileSource{Path: strings.TrimPrefix(location, "file://")}
}

// Decode parses an index document. A missing pages field is an empty list.
func Decode(data []byte) ([]domain.Page, error) {
	var payload *domain.IndexPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse index: %w", err)
	}
	if payload == nil || payload.Pages == nil {
		return []domain.Page{}, nil
	}
	return payload.Pages, nil
}
