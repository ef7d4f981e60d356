package postgres

import (
	"context"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const skillColumns = "id, name, level, category, sort_order, created_at, updated_at"

func scanSkill(row pgx.Row) (*models.Skill, error) {
	var s models.Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Level, &s.Category, &s.Order, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSkills returns all skills in display order
func (c *Client) ListSkills(ctx context.Context) ([]*models.Skill, error) {
	start := time.Now()
	operation := "listSkills"

	rows, err := c.pool.Query(ctx, "SELECT "+skillColumns+" FROM skills ORDER BY sort_order ASC, id ASC")
	if err != nil {
		observe(ctx, operation, start, err)
		return nil, mapError(err, "Skill")
	}

	skills, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Skill, error) {
		return scanSkill(row)
	})
	observe(ctx, operation, start, err, zap.Int("count", len(skills)))
	if err != nil {
		return nil, mapError(err, "Skill")
	}

	return skills, nil
}

// GetSkill fetches a skill by ID
func (c *Client) GetSkill(ctx context.Context, id int64) (*models.Skill, error) {
	start := time.Now()

	skill, err := scanSkill(c.pool.QueryRow(ctx, "SELECT "+skillColumns+" FROM skills WHERE id = $1", id))
	observe(ctx, "getSkill", start, err, zap.Int64("id", id))

	return skill, mapError(err, "Skill")
}

// CreateSkill inserts a skill and returns the stored row
func (c *Client) CreateSkill(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	start := time.Now()

	created, err := scanSkill(c.pool.QueryRow(ctx, `
		INSERT INTO skills (name, level, category, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING `+skillColumns,
		s.Name, s.Level, s.Category, s.Order,
	))
	observe(ctx, "createSkill", start, err)

	return created, mapError(err, "Skill")
}

// UpdateSkill writes every mutable column of s
func (c *Client) UpdateSkill(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	start := time.Now()

	updated, err := scanSkill(c.pool.QueryRow(ctx, `
		UPDATE skills
		SET name = $2, level = $3, category = $4, sort_order = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+skillColumns,
		s.ID, s.Name, s.Level, s.Category, s.Order,
	))
	observe(ctx, "updateSkill", start, err, zap.Int64("id", s.ID))

	return updated, mapError(err, "Skill")
}

// DeleteSkill removes a skill
func (c *Client) DeleteSkill(ctx context.Context, id int64) error {
	start := time.Now()

	tag, err := c.pool.Exec(ctx, "DELETE FROM skills WHERE id = $1", id)
	if err == nil && tag.RowsAffected() == 0 {
		err = pgx.ErrNoRows
	}
	observe(ctx, "deleteSkill", start, err, zap.Int64("id", id))

	if err != nil {
		return mapError(err, "Skill")
	}
	return nil
}
