package services

import (
	"context"
	"strings"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/repository"
	"github.com/devfolio/portfolio-api/pkg/metrics"
	"github.com/devfolio/portfolio-api/pkg/storage"
)

const blogImagePrefix = "blogs"

// BlogService manages blog posts and their publication lifecycle
type BlogService struct {
	repo  repository.BlogRepositoryInterface
	store storage.Client
	now   func() time.Time
}

// NewBlogService creates a new blog service instance
func NewBlogService(repo repository.BlogRepositoryInterface, store storage.Client) *BlogService {
	return &BlogService{repo: repo, store: store, now: time.Now}
}

// ListPublished returns the public blog listing
func (s *BlogService) ListPublished(ctx context.Context) ([]*models.Blog, error) {
	return s.repo.ListPublished(ctx)
}

// ListAll returns posts of every status for the admin
func (s *BlogService) ListAll(ctx context.Context) ([]*models.Blog, error) {
	return s.repo.ListAll(ctx)
}

// ViewBySlug returns a published post and counts the view
func (s *BlogService) ViewBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	blog, err := s.repo.ViewBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	metrics.BlogViews.Inc()
	return blog, nil
}

// Get returns a post of any status without counting a view
func (s *BlogService) Get(ctx context.Context, id int64) (*models.Blog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BlogService) Create(ctx context.Context, req *models.CreateBlogRequest) (blog *models.Blog, err error) {
	defer func() { recordWrite("blog", "create", err) }()

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	blogSlug, err := slugFromTitle(title)
	if err != nil {
		return nil, err
	}

	blog = &models.Blog{
		Title:   title,
		Slug:    blogSlug,
		Content: req.Content,
		Excerpt: optionalText(req.Excerpt),
		Image:   optionalText(req.Image),
		Tags:    optionalText(req.Tags),
		Status:  models.StatusDraft,
	}
	if req.Status != nil {
		blog.Status = *req.Status
	}
	if models.IsPublished(blog.Status) {
		publishedAt := s.now().UTC()
		blog.PublishedAt = &publishedAt
	}

	created, err := s.repo.Create(ctx, blog)
	if err != nil {
		return nil, conflictAsValidation(err)
	}
	return created, nil
}

func (s *BlogService) Update(ctx context.Context, id int64, req *models.UpdateBlogRequest) (blog *models.Blog, err error) {
	defer func() { recordWrite("blog", "update", err) }()

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	blog, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldImage := blog.Image

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		blogSlug, err := slugFromTitle(title)
		if err != nil {
			return nil, err
		}
		blog.Title = title
		blog.Slug = blogSlug
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	blog.Excerpt = patchText(blog.Excerpt, req.Excerpt)
	blog.Image = patchText(blog.Image, req.Image)
	blog.Tags = patchText(blog.Tags, req.Tags)
	if req.Status != nil {
		blog.Status = *req.Status
	}

	// First publication stamps published_at; later saves keep the stored value
	if models.IsPublished(blog.Status) && blog.PublishedAt == nil {
		publishedAt := s.now().UTC()
		blog.PublishedAt = &publishedAt
	}

	updated, err := s.repo.Update(ctx, blog)
	if err != nil {
		return nil, conflictAsValidation(err)
	}

	if !sameText(oldImage, updated.Image) {
		removeStoredImage(ctx, s.store, "blog", blogImagePrefix, oldImage)
	}

	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { recordWrite("blog", "delete", err) }()

	image, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	removeStoredImage(ctx, s.store, "blog", blogImagePrefix, image)
	return nil
}
