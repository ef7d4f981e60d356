package repository

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/models"
)

// ProfileRepositoryInterface defines profile data access operations
type ProfileRepositoryInterface interface {
	Get(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, p *models.Profile) (*models.Profile, error)
}

// ProfileRepository handles the singleton profile row
type ProfileRepository struct {
	db ProfileDataSource
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db ProfileDataSource) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get returns the stored profile or a NotFound error when none was saved yet
func (r *ProfileRepository) Get(ctx context.Context) (*models.Profile, error) {
	return r.db.GetProfile(ctx)
}

// Save creates or replaces the profile
func (r *ProfileRepository) Save(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	return r.db.UpsertProfile(ctx, p)
}
