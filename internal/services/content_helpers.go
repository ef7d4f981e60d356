package services

import (
	"context"
	"errors"
	"strings"

	"github.com/devfolio/portfolio-api/pkg/circuitbreaker"
	apperrors "github.com/devfolio/portfolio-api/pkg/errors"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/metrics"
	"github.com/devfolio/portfolio-api/pkg/retry"
	"github.com/devfolio/portfolio-api/pkg/slug"
	"github.com/devfolio/portfolio-api/pkg/storage"
	"github.com/devfolio/portfolio-api/pkg/tracing"
	"go.uber.org/zap"
)

const titleTakenMessage = "The title has already been taken."

// slugFromTitle derives the slug for a title, rejecting titles that keep no
// ASCII letter or digit after transliteration.
func slugFromTitle(title string) (string, error) {
	s := slug.Make(title)
	if s == "" {
		return "", NewValidationError("title", "The title field must contain at least one Latin letter or digit.")
	}
	return s, nil
}

// conflictAsValidation reports a duplicate slug as a title validation error
func conflictAsValidation(err error) error {
	if errors.Is(err, apperrors.ErrConflict) {
		return NewValidationError("title", titleTakenMessage)
	}
	return err
}

// optionalText turns "" into nil and trims surrounding whitespace
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// patchText applies an optional-field patch: nil keeps current, "" clears it
func patchText(current, patch *string) *string {
	if patch == nil {
		return current
	}
	return optionalText(patch)
}

func sameText(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// removeStoredImage deletes an image kept under the resource's own key prefix.
// External URLs and keys owned by other resources are left alone; failures are only logged.
func removeStoredImage(ctx context.Context, store storage.Client, resource, prefix string, url *string) {
	if store == nil || url == nil || *url == "" || !store.Owns(*url, prefix) {
		return
	}

	ctx, span := tracing.StartSpan(ctx, "storage.delete_image")
	defer span.End()

	policy := retry.StorageConfig()
	policy.Retryable = func(err error) bool {
		return !errors.Is(err, storage.ErrNotOwned) && !errors.Is(err, circuitbreaker.ErrOpen)
	}

	err := retry.Do(ctx, policy, "delete_"+resource+"_image", func() error {
		return store.Delete(ctx, *url)
	})
	if err != nil {
		metrics.ImageReplacements.WithLabelValues(resource, "delete_failed").Inc()
		logger.Warn("Failed to delete stored image",
			zap.String("resource", resource),
			zap.String("url", *url),
			zap.Error(err))
		return
	}

	metrics.ImageReplacements.WithLabelValues(resource, "deleted").Inc()
}

func recordWrite(resource, operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
		if _, ok := AsValidationError(err); ok {
			status = "invalid"
		} else if errors.Is(err, apperrors.ErrNotFound) {
			status = "not_found"
		}
	}
	metrics.ContentWrites.WithLabelValues(resource, operation, status).Inc()
}
