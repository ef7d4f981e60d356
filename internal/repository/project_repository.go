package repository

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/cache"
	"github.com/devfolio/portfolio-api/internal/models"
)

// ProjectRepositoryInterface defines project data access operations
type ProjectRepositoryInterface interface {
	ListPublished(ctx context.Context) ([]*models.Project, error)
	ListAll(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	GetPublished(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	Update(ctx context.Context, p *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id int64) (*string, error)
}

// ProjectRepository serves projects from the database with a cached public listing
type ProjectRepository struct {
	db    ProjectDataSource
	cache *cache.ContentCache
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db ProjectDataSource, contentCache *cache.ContentCache) *ProjectRepository {
	return &ProjectRepository{db: db, cache: contentCache}
}

// ListPublished returns published projects, newest first
func (r *ProjectRepository) ListPublished(ctx context.Context) ([]*models.Project, error) {
	return cache.GetOrLoad(ctx, r.cache, cache.PublishedProjectsKey, func(ctx context.Context) ([]*models.Project, error) {
		return r.db.ListProjects(ctx, true)
	})
}

// ListAll returns projects of every status, newest first
func (r *ProjectRepository) ListAll(ctx context.Context) ([]*models.Project, error) {
	return r.db.ListProjects(ctx, false)
}

// GetByID returns a project regardless of status
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return r.db.GetProject(ctx, id)
}

// GetPublished returns a project only when it is published
func (r *ProjectRepository) GetPublished(ctx context.Context, id int64) (*models.Project, error) {
	return r.db.GetPublishedProject(ctx, id)
}

// Create stores a new project
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	created, err := r.db.CreateProject(ctx, p)
	if err != nil {
		return nil, err
	}
	r.invalidate()
	return created, nil
}

// Update stores changes to an existing project
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	updated, err := r.db.UpdateProject(ctx, p)
	if err != nil {
		return nil, err
	}
	r.invalidate()
	return updated, nil
}

// Delete removes a project and returns the image it referenced
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (*string, error) {
	image, err := r.db.DeleteProject(ctx, id)
	if err != nil {
		return nil, err
	}
	r.invalidate()
	return image, nil
}

func (r *ProjectRepository) invalidate() {
	if r.cache != nil {
		r.cache.Invalidate(cache.PublishedProjectsKey)
	}
}
