package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/repository"
	apperrors "github.com/devfolio/portfolio-api/pkg/errors"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/metrics"
	"github.com/devfolio/portfolio-api/pkg/storage"
	"go.uber.org/zap"
)

const (
	profileImageField  = "profile_image"
	profileImagePrefix = "profiles"
)

// ProfileService manages the site owner's profile and its picture
type ProfileService struct {
	repo  repository.ProfileRepositoryInterface
	store storage.Client
}

// NewProfileService creates a new profile service instance
func NewProfileService(repo repository.ProfileRepositoryInterface, store storage.Client) *ProfileService {
	return &ProfileService{repo: repo, store: store}
}

// Show returns the stored profile or the default one when nothing was saved yet
func (s *ProfileService) Show(ctx context.Context) (*models.Profile, error) {
	profile, err := s.repo.Get(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return models.DefaultProfile(), nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Update applies text changes and optionally replaces the profile image.
// The new image is uploaded before the row is saved and the previous one is
// removed only after the save succeeded.
func (s *ProfileService) Update(ctx context.Context, req *models.UpdateProfileRequest, image *models.ImageUpload) (profile *models.Profile, err error) {
	defer func() { recordWrite("profile", "update", err) }()

	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if image != nil {
		if err := s.validateImage(image); err != nil {
			return nil, err
		}
	}

	profile, err = s.current(ctx)
	if err != nil {
		return nil, err
	}
	oldImage := profile.ProfileImage

	profile.Name = patchText(profile.Name, req.Name)
	profile.JobTitle = patchText(profile.JobTitle, req.JobTitle)
	profile.Bio = patchText(profile.Bio, req.Bio)
	profile.Email = patchText(profile.Email, req.Email)
	profile.Phone = patchText(profile.Phone, req.Phone)
	profile.Location = patchText(profile.Location, req.Location)

	var uploaded *string
	if image != nil {
		key := storage.NewKey(profileImagePrefix, image.ContentType)
		url, err := s.store.Upload(ctx, key, image.Data, image.ContentType)
		if err != nil {
			metrics.ImageReplacements.WithLabelValues("profile", "upload_failed").Inc()
			return nil, fmt.Errorf("failed to store profile image: %w", err)
		}
		uploaded = &url
		profile.ProfileImage = uploaded
	}

	saved, err := s.repo.Save(ctx, profile)
	if err != nil {
		// The row still points at the old image, so the fresh upload is orphaned
		removeStoredImage(ctx, s.store, "profile", profileImagePrefix, uploaded)
		return nil, err
	}

	if uploaded != nil {
		metrics.ImageReplacements.WithLabelValues("profile", "uploaded").Inc()
		logger.Info("Profile image replaced", zap.String("url", *uploaded))
		if !sameText(oldImage, uploaded) {
			removeStoredImage(ctx, s.store, "profile", profileImagePrefix, oldImage)
		}
	}

	return saved, nil
}

// RemoveImage clears the profile image and deletes the stored file
func (s *ProfileService) RemoveImage(ctx context.Context) (profile *models.Profile, err error) {
	defer func() { recordWrite("profile", "remove_image", err) }()

	profile, err = s.current(ctx)
	if err != nil {
		return nil, err
	}
	oldImage := profile.ProfileImage
	if oldImage == nil {
		return profile, nil
	}

	profile.ProfileImage = nil
	saved, err := s.repo.Save(ctx, profile)
	if err != nil {
		return nil, err
	}

	removeStoredImage(ctx, s.store, "profile", profileImagePrefix, oldImage)
	return saved, nil
}

// current loads the stored profile, starting from an empty one when none exists
func (s *ProfileService) current(ctx context.Context) (*models.Profile, error) {
	profile, err := s.repo.Get(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &models.Profile{}, nil
	}
	return profile, err
}

func (s *ProfileService) validateImage(image *models.ImageUpload) error {
	if err := s.store.ValidateImageType(image.ContentType); err != nil {
		return NewValidationError(profileImageField, "The profile image must be a file of type: jpeg, jpg, png, gif, webp.")
	}
	size := image.Size
	if size == 0 {
		size = int64(len(image.Data))
	}
	if err := s.store.ValidateImageSize(size); err != nil {
		return NewValidationError(profileImageField, fmt.Sprintf("The profile image is invalid: %v.", err))
	}
	return nil
}
