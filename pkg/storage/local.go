package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/metrics"
	"go.uber.org/zap"
)

const localBackend = "local"

// LocalClient stores images on disk; the HTTP server exposes Dir under BaseURL
type LocalClient struct {
	validator
	dir     string
	baseURL string
}

// NewLocalClient creates the upload directory and returns a disk-backed store.
// baseURL is the public URL prefix the directory is served under,
// e.g. "http://localhost:8080/uploads".
func NewLocalClient(dir, baseURL string, maxImageBytes int64) (*LocalClient, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	logger.Info("Local storage initialized",
		zap.String("dir", dir),
		zap.String("base_url", baseURL),
	)

	return &LocalClient{
		validator: newValidator(maxImageBytes),
		dir:       dir,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}, nil
}

// Dir returns the directory files are written to
func (l *LocalClient) Dir() string {
	return l.dir
}

// pathFor maps a key onto the storage directory, refusing keys that escape it
func (l *LocalClient) pathFor(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(l.dir, cleaned), nil
}

func recordLocal(operation, status string, start time.Time) {
	duration := metrics.MeasureDuration(start)
	metrics.StorageRequestDuration.WithLabelValues(localBackend, operation, status).Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(localBackend, operation, status).Inc()
}

// Upload writes data to disk and returns its public URL
func (l *LocalClient) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	start := time.Now()

	target, err := l.pathFor(key)
	if err != nil {
		recordLocal("write", "error", start)
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		recordLocal("write", "error", start)
		return "", fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil { //nolint:gosec // served publicly
		recordLocal("write", "error", start)
		return "", fmt.Errorf("failed to write %s: %w", key, err)
	}

	recordLocal("write", "success", start)
	return l.baseURL + "/" + filepath.ToSlash(filepath.Clean(filepath.FromSlash(key))), nil
}

// Delete removes the file behind url. A file that is already gone is not an error.
func (l *LocalClient) Delete(_ context.Context, url string) error {
	key, ok := keyFromURL(l.baseURL, url)
	if !ok {
		return ErrNotOwned
	}

	start := time.Now()

	target, err := l.pathFor(key)
	if err != nil {
		recordLocal("remove", "error", start)
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		recordLocal("remove", "error", start)
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}

	recordLocal("remove", "success", start)
	return nil
}

// Owns reports whether url points into the upload directory under prefix
func (l *LocalClient) Owns(url, prefix string) bool {
	return ownsKey(l.baseURL, url, prefix)
}
