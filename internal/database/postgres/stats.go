package postgres

import (
	"context"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
)

// GetStats counts stored content in a single round trip
func (c *Client) GetStats(ctx context.Context) (*models.Stats, error) {
	start := time.Now()

	var s models.Stats
	err := c.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM blogs),
			(SELECT COUNT(*) FROM skills),
			(SELECT COUNT(*) FROM contacts),
			(SELECT COUNT(*) FROM projects WHERE status = $1),
			(SELECT COUNT(*) FROM blogs WHERE status = $1),
			(SELECT COUNT(*) FROM contacts WHERE NOT is_read)`,
		models.StatusPublished,
	).Scan(
		&s.TotalProjects, &s.TotalBlogs, &s.TotalSkills, &s.TotalMessages,
		&s.PublishedProjects, &s.PublishedBlogs, &s.UnreadMessages,
	)
	observe(ctx, "getStats", start, err)

	if err != nil {
		return nil, mapError(err, "Stats")
	}
	return &s, nil
}
