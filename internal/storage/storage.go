// Package storage keeps uploaded import files until a worker fetches them.
package storage

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ErrOutsideStore is returned when a file URL points outside the store directory.
var ErrOutsideStore = errors.New("blob URL is outside the store")

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// BlobStore stores uploaded files and fetches them back by URL.
type BlobStore interface {
	// Store writes r under a name derived from its content and returns the URL.
	Store(ctx context.Context, name string, r io.Reader) (string, error)
	// Fetch returns the full text behind url.
	Fetch(ctx context.Context, url string) (string, error)
}

// LocalStore keeps blobs in a directory and serves them as file:// URLs. It
// can also fetch http(s) URLs, so jobs may point at an external object store.
type LocalStore struct {
	dir    string
	client *http.Client
}

// NewLocalStore creates the directory if needed and returns a store rooted there.
func NewLocalStore(dir string, fetchTimeout time.Duration) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve blob dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &LocalStore{
		dir:    abs,
		client: &http.Client{Timeout: fetchTimeout},
	}, nil
}

// Store implements BlobStore. The content is written to a temp file first and
// renamed into place once fully written.
func (s *LocalStore) Store(ctx context.Context, name string, r io.Reader) (string, error) {
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	hasher := xxhash.New()
	if _, err := io.Copy(tmp, io.TeeReader(&ctxReader{ctx: ctx, r: r}, hasher)); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close blob: %w", err)
	}

	key := hex.EncodeToString(hasher.Sum(nil)) + "-" + sanitize(name)
	path := filepath.Join(s.dir, key)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("move blob into place: %w", err)
	}

	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String(), nil
}

// Fetch implements BlobStore.
func (s *LocalStore) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse blob URL: %w", err)
	}

	switch u.Scheme {
	case "file":
		return s.readFile(filepath.FromSlash(u.Path))
	case "http", "https":
		return s.download(ctx, rawURL)
	default:
		return "", fmt.Errorf("unsupported blob URL scheme %q", u.Scheme)
	}
}

func (s *LocalStore) readFile(path string) (string, error) {
	clean := filepath.Clean(path)
	if !strings.HasPrefix(clean, s.dir+string(filepath.Separator)) {
		return "", ErrOutsideStore
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return "", fmt.Errorf("read blob: %w", err)
	}
	return string(data), nil
}

func (s *LocalStore) download(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch blob: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch blob: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read blob body: %w", err)
	}
	return string(data), nil
}

func sanitize(name string) string {
	base := unsafeNameChars.ReplaceAllString(filepath.Base(name), "_")
	if base == "" || base == "." || base == ".." {
		return "upload.csv"
	}
	return base
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
