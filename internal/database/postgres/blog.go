package postgres

import (
	"context"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const blogColumns = "id, title, slug, content, excerpt, image, tags, status, views, published_at, created_at, updated_at"

func scanBlog(row pgx.Row) (*models.Blog, error) {
	var b models.Blog
	err := row.Scan(
		&b.ID, &b.Title, &b.Slug, &b.Content, &b.Excerpt, &b.Image, &b.Tags,
		&b.Status, &b.Views, &b.PublishedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBlogs returns blog posts. Published listings are ordered by publication
// date, the full admin listing by creation date.
func (c *Client) ListBlogs(ctx context.Context, publishedOnly bool) ([]*models.Blog, error) {
	start := time.Now()
	operation := "listBlogs"

	query := "SELECT " + blogColumns + " FROM blogs"
	args := []any{}
	if publishedOnly {
		query += " WHERE status = $1 ORDER BY published_at DESC NULLS LAST, id DESC"
		args = append(args, models.StatusPublished)
	} else {
		query += " ORDER BY created_at DESC, id DESC"
	}

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		observe(ctx, operation, start, err)
		return nil, mapError(err, "Blog")
	}

	blogs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Blog, error) {
		return scanBlog(row)
	})
	observe(ctx, operation, start, err,
		zap.Bool("published_only", publishedOnly),
		zap.Int("count", len(blogs)),
	)
	if err != nil {
		return nil, mapError(err, "Blog")
	}

	return blogs, nil
}

// GetBlog fetches a blog post by ID regardless of status, without counting a view
func (c *Client) GetBlog(ctx context.Context, id int64) (*models.Blog, error) {
	start := time.Now()

	blog, err := scanBlog(c.pool.QueryRow(ctx, "SELECT "+blogColumns+" FROM blogs WHERE id = $1", id))
	observe(ctx, "getBlog", start, err, zap.Int64("id", id))

	return blog, mapError(err, "Blog")
}

// ViewPublishedBlog returns a published post by slug and counts the view in
// the same statement.
func (c *Client) ViewPublishedBlog(ctx context.Context, slug string) (*models.Blog, error) {
	start := time.Now()

	blog, err := scanBlog(c.pool.QueryRow(ctx, `
		UPDATE blogs
		SET views = views + 1
		WHERE slug = $1 AND status = $2
		RETURNING `+blogColumns,
		slug, models.StatusPublished,
	))
	observe(ctx, "viewPublishedBlog", start, err, zap.String("slug", slug))

	return blog, mapError(err, "Blog")
}

// CreateBlog inserts a blog post and returns the stored row
func (c *Client) CreateBlog(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	start := time.Now()

	created, err := scanBlog(c.pool.QueryRow(ctx, `
		INSERT INTO blogs (title, slug, content, excerpt, image, tags, status, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+blogColumns,
		b.Title, b.Slug, b.Content, b.Excerpt, b.Image, b.Tags, b.Status, b.PublishedAt,
	))
	observe(ctx, "createBlog", start, err, zap.String("slug", b.Slug))

	return created, mapError(err, "Blog")
}

// UpdateBlog writes every mutable column of b. A stored published_at is never
// overwritten; b.PublishedAt only fills it when it is still empty.
func (c *Client) UpdateBlog(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	start := time.Now()

	updated, err := scanBlog(c.pool.QueryRow(ctx, `
		UPDATE blogs
		SET title = $2, slug = $3, content = $4, excerpt = $5, image = $6, tags = $7,
		    status = $8, published_at = COALESCE(published_at, $9), updated_at = NOW()
		WHERE id = $1
		RETURNING `+blogColumns,
		b.ID, b.Title, b.Slug, b.Content, b.Excerpt, b.Image, b.Tags, b.Status, b.PublishedAt,
	))
	observe(ctx, "updateBlog", start, err, zap.Int64("id", b.ID))

	return updated, mapError(err, "Blog")
}

// DeleteBlog removes a blog post and returns the image it referenced
func (c *Client) DeleteBlog(ctx context.Context, id int64) (*string, error) {
	start := time.Now()

	var image *string
	err := c.pool.QueryRow(ctx, "DELETE FROM blogs WHERE id = $1 RETURNING image", id).Scan(&image)
	observe(ctx, "deleteBlog", start, err, zap.Int64("id", id))

	if err != nil {
		return nil, mapError(err, "Blog")
	}
	return image, nil
}
