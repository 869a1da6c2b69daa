// Package scraper downloads card and set assets into the storage root.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"dominionleague/internal/logger"
)

const defaultTimeout = 30 * time.Second

// Downloader fetches one URL into one file.
type Downloader struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// DownloaderOptions configures a Downloader. Zero values pick defaults.
type DownloaderOptions struct {
	Client    *http.Client
	Timeout   time.Duration
	UserAgent string
}

// NewDownloader creates a downloader. A nil logger discards output.
func NewDownloader(opts DownloaderOptions, log *slog.Logger) *Downloader {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Downloader{
		httpClient: client,
		userAgent:  opts.UserAgent,
		logger:     log,
	}
}

// Download fetches source and stores the body at destination, creating
// parent directories. The body goes to a temporary file in the same directory
// which is renamed over destination, so a failed download never leaves a
// truncated file behind.
func (d *Downloader) Download(ctx context.Context, destination, source string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return &FetchError{URL: source, Err: fmt.Errorf("create request: %w", err)}
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return &FetchError{URL: source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{URL: source, StatusCode: resp.StatusCode}
	}

	size, err := writeAtomic(destination, resp.Body)
	if err != nil {
		// A body that fails mid-stream is a fetch failure; nothing was stored.
		var rerr *readErr
		if errors.As(err, &rerr) {
			return &FetchError{URL: source, Err: rerr.err}
		}
		return err
	}

	d.logger.Debug("downloaded asset",
		"url", source,
		"path", destination,
		"size", size,
	)
	return nil
}

// writeAtomic copies body into path via a temp file. Filesystem failures are
// returned as *WriteError and read failures from body as *readErr.
func writeAtomic(path string, body io.Reader) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, &WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.part")
	if err != nil {
		return 0, &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	n, err := io.Copy(tmp, &readErrMarker{r: body})
	if err != nil {
		tmp.Close()
		var rerr *readErr
		if errors.As(err, &rerr) {
			return 0, rerr
		}
		return 0, &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return 0, &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return 0, &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return 0, &WriteError{Path: path, Err: err}
	}
	return n, nil
}

// readErr tags errors that came from the response body rather than the file.
type readErr struct{ err error }

func (e *readErr) Error() string { return e.err.Error() }

type readErrMarker struct{ r io.Reader }

func (m *readErrMarker) Read(p []byte) (int, error) {
	n, err := m.r.Read(p)
	if err != nil && err != io.EOF {
		return n, &readErr{err: err}
	}
	return n, err
}
