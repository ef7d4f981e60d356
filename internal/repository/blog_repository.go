package repository

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/cache"
	"github.com/devfolio/portfolio-api/internal/models"
)

// BlogRepositoryInterface defines blog data access operations
type BlogRepositoryInterface interface {
	ListPublished(ctx context.Context) ([]*models.Blog, error)
	ListAll(ctx context.Context) ([]*models.Blog, error)
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
	ViewBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Create(ctx context.Context, b *models.Blog) (*models.Blog, error)
	Update(ctx context.Context, b *models.Blog) (*models.Blog, error)
	Delete(ctx context.Context, id int64) (*string, error)
}

// BlogRepository serves blog posts from the database with a cached public listing
type BlogRepository struct {
	db    BlogDataSource
	cache *cache.ContentCache
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db BlogDataSource, contentCache *cache.ContentCache) *BlogRepository {
	return &BlogRepository{db: db, cache: contentCache}
}

// ListPublished returns published posts, most recently published first.
// View counters in the cached listing may lag behind until the next reload.
func (r *BlogRepository) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	return cache.GetOrLoad(ctx, r.cache, cache.PublishedBlogsKey, func(ctx context.Context) ([]*models.Blog, error) {
		return r.db.ListBlogs(ctx, true)
	})
}

// ListAll returns posts of every status, newest first
func (r *BlogRepository) ListAll(ctx context.Context) ([]*models.Blog, error) {
	return r.db.ListBlogs(ctx, false)
}

// GetByID returns a post regardless of status without counting a view
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	return r.db.GetBlog(ctx, id)
}

// ViewBySlug returns a published post and counts one view
func (r *BlogRepository) ViewBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return r.db.ViewPublishedBlog(ctx, slug)
}

// Create stores a new post
func (r *BlogRepository) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	created, err := r.db.CreateBlog(ctx, b)
	if err != nil {
		return nil, err
	}
	r.invalidate()
	return created, nil
}

// Update stores changes to an existing post
func (r *BlogRepository) Update(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	updated, err := r.db.UpdateBlog(ctx, b)
	if err != nil {
		return nil, err
	}
	r.invalidate()
	return updated, nil
}

// Delete removes a post and returns the image it referenced
func (r *BlogRepository) Delete(ctx context.Context, id int64) (*string, error) {
	image, err := r.db.DeleteBlog(ctx, id)
	if err != nil {
		return nil, err
	}
	r.invalidate()
	return image, nil
}

func (r *BlogRepository) invalidate() {
	if r.cache != nil {
		r.cache.Invalidate(cache.PublishedBlogsKey)
	}
}
