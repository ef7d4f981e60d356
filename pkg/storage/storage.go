// Package storage keeps uploaded images in S3-compatible object storage or on local disk.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxImageBytes is the upload limit used when none is configured
const DefaultMaxImageBytes = 2 * 1024 * 1024

// ErrNotOwned is returned when asked to delete a URL the store did not issue
var ErrNotOwned = errors.New("url is not managed by this store")

// Client stores images and hands out their public URLs
type Client interface {
	// Upload stores data under key and returns its public URL
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Delete removes the object behind a URL previously returned by Upload
	Delete(ctx context.Context, url string) error
	// Owns reports whether url points into this store under the given key prefix.
	// An empty prefix matches any key the store issued.
	Owns(url, prefix string) bool
	ValidateImageType(contentType string) error
	ValidateImageSize(size int64) error
}

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// normalizeContentType drops parameters such as "; charset=binary"
func normalizeContentType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// validator carries the image rules shared by every backend
type validator struct {
	maxBytes int64
}

func newValidator(maxBytes int64) validator {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return validator{maxBytes: maxBytes}
}

// ValidateImageType accepts jpeg, jpg, png, gif and webp images
func (v validator) ValidateImageType(contentType string) error {
	if _, ok := imageExtensions[normalizeContentType(contentType)]; !ok {
		return fmt.Errorf("invalid file type: %s. Allowed types: jpeg, jpg, png, gif, webp", contentType)
	}
	return nil
}

// ValidateImageSize rejects empty files and files above the configured limit
func (v validator) ValidateImageSize(size int64) error {
	if size <= 0 {
		return fmt.Errorf("file is empty")
	}
	if size > v.maxBytes {
		return fmt.Errorf("file too large: %d bytes (max %d bytes)", size, v.maxBytes)
	}
	return nil
}

// NewKey builds a unique object key such as "profiles/<uuid>.png"
func NewKey(prefix, contentType string) string {
	ext, ok := imageExtensions[normalizeContentType(contentType)]
	if !ok {
		ext = "bin"
	}
	return path.Join(prefix, fmt.Sprintf("%s.%s", uuid.NewString(), ext))
}

// keyFromURL returns the object key of url relative to base
func keyFromURL(base, url string) (string, bool) {
	prefix := strings.TrimRight(base, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

// ownsKey reports whether url maps to a key under prefix
func ownsKey(base, url, prefix string) bool {
	key, ok := keyFromURL(base, url)
	if !ok {
		return false
	}
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return true
	}
	return strings.HasPrefix(key, prefix+"/") && len(key) > len(prefix)+1
}

var (
	_ Client = (*S3Client)(nil)
	_ Client = (*LocalClient)(nil)
)
