package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fetcher retrieves a single JSON resource by logical path, e.g.
// "data/versions.json". Implementations make exactly one attempt per call:
// no retries, no caching.
type Fetcher interface {
	JSON(ctx context.Context, path string, v any) error
}

// Error describes a failed fetch. Status is the HTTP status code, or 0 when
// the request never produced a response (network failure, parse failure, or
// a non-HTTP fetcher).
type Error struct {
	Path   string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTP fetches resources relative to a base URL over HTTP.
type HTTP struct {
	base   string
	client *http.Client
}

func NewHTTP(base string, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTP{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

func (f *HTTP) JSON(ctx context.Context, path string, v any) error {
	url := f.base + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Error{Path: path, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", "docnav/0.1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return &Error{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return &Error{Path: path, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &Error{Path: path, Err: fmt.Errorf("decoding JSON: %w", err)}
	}
	return nil
}

// Dir fetches resources from a dataset directory laid out exactly like the
// served tree (data/versions.json, data/{version}/...). Used by the serve
// command and by tests.
type Dir struct {
	root string
}

func NewDir(root string) *Dir {
	return &Dir{root: root}
}

func (f *Dir) JSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return &Error{Path: path, Err: err}
	}

	data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(path)))
	if err != nil {
		return &Error{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &Error{Path: path, Err: fmt.Errorf("decoding JSON: %w", err)}
	}
	return nil
}
