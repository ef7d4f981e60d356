package postgres

import (
	"context"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const contactColumns = "id, name, email, subject, message, is_read, created_at, updated_at"

func scanContact(row pgx.Row) (*models.Contact, error) {
	var m models.Contact
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListContacts returns contact messages newest first
func (c *Client) ListContacts(ctx context.Context) ([]*models.Contact, error) {
	start := time.Now()
	operation := "listContacts"

	rows, err := c.pool.Query(ctx, "SELECT "+contactColumns+" FROM contacts ORDER BY created_at DESC, id DESC")
	if err != nil {
		observe(ctx, operation, start, err)
		return nil, mapError(err, "Contact")
	}

	contacts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Contact, error) {
		return scanContact(row)
	})
	observe(ctx, operation, start, err, zap.Int("count", len(contacts)))
	if err != nil {
		return nil, mapError(err, "Contact")
	}

	return contacts, nil
}

// GetContact fetches a contact message by ID
func (c *Client) GetContact(ctx context.Context, id int64) (*models.Contact, error) {
	start := time.Now()

	contact, err := scanContact(c.pool.QueryRow(ctx, "SELECT "+contactColumns+" FROM contacts WHERE id = $1", id))
	observe(ctx, "getContact", start, err, zap.Int64("id", id))

	return contact, mapError(err, "Contact")
}

// CreateContact stores a contact form submission
func (c *Client) CreateContact(ctx context.Context, m *models.Contact) (*models.Contact, error) {
	start := time.Now()

	created, err := scanContact(c.pool.QueryRow(ctx, `
		INSERT INTO contacts (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING `+contactColumns,
		m.Name, m.Email, m.Subject, m.Message,
	))
	observe(ctx, "createContact", start, err)

	return created, mapError(err, "Contact")
}

// SetContactRead changes the read flag, the only mutable column of a message
func (c *Client) SetContactRead(ctx context.Context, id int64, isRead bool) (*models.Contact, error) {
	start := time.Now()

	contact, err := scanContact(c.pool.QueryRow(ctx, `
		UPDATE contacts SET is_read = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+contactColumns,
		id, isRead,
	))
	observe(ctx, "setContactRead", start, err, zap.Int64("id", id), zap.Bool("is_read", isRead))

	return contact, mapError(err, "Contact")
}

// DeleteContact removes a contact message
func (c *Client) DeleteContact(ctx context.Context, id int64) error {
	start := time.Now()

	tag, err := c.pool.Exec(ctx, "DELETE FROM contacts WHERE id = $1", id)
	if err == nil && tag.RowsAffected() == 0 {
		err = pgx.ErrNoRows
	}
	observe(ctx, "deleteContact", start, err, zap.Int64("id", id))

	if err != nil {
		return mapError(err, "Contact")
	}
	return nil
}
