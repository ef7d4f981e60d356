package postgres

import (
	"context"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5"
)

// profileKey is the primary key of the single profile row
const profileKey = 1

const profileColumns = "name, job_title, bio, profile_image, email, phone, location, updated_at"

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	var updatedAt time.Time
	err := row.Scan(&p.Name, &p.JobTitle, &p.Bio, &p.ProfileImage, &p.Email, &p.Phone, &p.Location, &updatedAt)
	if err != nil {
		return nil, err
	}
	p.UpdatedAt = &updatedAt
	return &p, nil
}

// GetProfile fetches the stored profile; NotFound until one is saved
func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	start := time.Now()

	profile, err := scanProfile(c.pool.QueryRow(ctx, "SELECT "+profileColumns+" FROM profiles WHERE id = $1", profileKey))
	observe(ctx, "getProfile", start, err)

	return profile, mapError(err, "Profile")
}

// UpsertProfile creates or replaces the single profile row
func (c *Client) UpsertProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	start := time.Now()

	saved, err := scanProfile(c.pool.QueryRow(ctx, `
		INSERT INTO profiles (id, name, job_title, bio, profile_image, email, phone, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    job_title = EXCLUDED.job_title,
		    bio = EXCLUDED.bio,
		    profile_image = EXCLUDED.profile_image,
		    email = EXCLUDED.email,
		    phone = EXCLUDED.phone,
		    location = EXCLUDED.location,
		    updated_at = NOW()
		RETURNING `+profileColumns,
		profileKey, p.Name, p.JobTitle, p.Bio, p.ProfileImage, p.Email, p.Phone, p.Location,
	))
	observe(ctx, "upsertProfile", start, err)

	return saved, mapError(err, "Profile")
}
