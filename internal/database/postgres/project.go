package postgres

import (
	"context"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const projectColumns = "id, title, slug, description, tech_stack, image, demo_url, github_url, status, created_at, updated_at"

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.TechStack,
		&p.Image, &p.DemoURL, &p.GithubURL, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProjects returns projects newest first, optionally only published ones
func (c *Client) ListProjects(ctx context.Context, publishedOnly bool) ([]*models.Project, error) {
	start := time.Now()
	operation := "listProjects"

	query := "SELECT " + projectColumns + " FROM projects"
	args := []any{}
	if publishedOnly {
		query += " WHERE status = $1"
		args = append(args, models.StatusPublished)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		observe(ctx, operation, start, err)
		return nil, mapError(err, "Project")
	}

	projects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Project, error) {
		return scanProject(row)
	})
	observe(ctx, operation, start, err,
		zap.Bool("published_only", publishedOnly),
		zap.Int("count", len(projects)),
	)
	if err != nil {
		return nil, mapError(err, "Project")
	}

	return projects, nil
}

// GetProject fetches a project by ID regardless of status
func (c *Client) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	start := time.Now()

	project, err := scanProject(c.pool.QueryRow(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = $1", id))
	observe(ctx, "getProject", start, err, zap.Int64("id", id))

	return project, mapError(err, "Project")
}

// GetPublishedProject fetches a project by ID only if it is published
func (c *Client) GetPublishedProject(ctx context.Context, id int64) (*models.Project, error) {
	start := time.Now()

	project, err := scanProject(c.pool.QueryRow(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = $1 AND status = $2", id, models.StatusPublished))
	observe(ctx, "getPublishedProject", start, err, zap.Int64("id", id))

	return project, mapError(err, "Project")
}

// CreateProject inserts a project and returns the stored row
func (c *Client) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	start := time.Now()

	created, err := scanProject(c.pool.QueryRow(ctx, `
		INSERT INTO projects (title, slug, description, tech_stack, image, demo_url, github_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+projectColumns,
		p.Title, p.Slug, p.Description, p.TechStack, p.Image, p.DemoURL, p.GithubURL, p.Status,
	))
	observe(ctx, "createProject", start, err, zap.String("slug", p.Slug))

	return created, mapError(err, "Project")
}

// UpdateProject writes every mutable column of p
func (c *Client) UpdateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	start := time.Now()

	updated, err := scanProject(c.pool.QueryRow(ctx, `
		UPDATE projects
		SET title = $2, slug = $3, description = $4, tech_stack = $5,
		    image = $6, demo_url = $7, github_url = $8, status = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING `+projectColumns,
		p.ID, p.Title, p.Slug, p.Description, p.TechStack, p.Image, p.DemoURL, p.GithubURL, p.Status,
	))
	observe(ctx, "updateProject", start, err, zap.Int64("id", p.ID))

	return updated, mapError(err, "Project")
}

// DeleteProject removes a project and returns the image it referenced
func (c *Client) DeleteProject(ctx context.Context, id int64) (*string, error) {
	start := time.Now()

	var image *string
	err := c.pool.QueryRow(ctx, "DELETE FROM projects WHERE id = $1 RETURNING image", id).Scan(&image)
	observe(ctx, "deleteProject", start, err, zap.Int64("id", id))

	if err != nil {
		return nil, mapError(err, "Project")
	}
	return image, nil
}
