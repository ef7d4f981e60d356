package repository

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/models"
)

// ContactRepositoryInterface defines contact message data access operations
type ContactRepositoryInterface interface {
	List(ctx context.Context) ([]*models.Contact, error)
	GetByID(ctx context.Context, id int64) (*models.Contact, error)
	Create(ctx context.Context, m *models.Contact) (*models.Contact, error)
	SetRead(ctx context.Context, id int64, isRead bool) (*models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

// ContactRepository handles contact message data access
type ContactRepository struct {
	db ContactDataSource
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db ContactDataSource) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) List(ctx context.Context) ([]*models.Contact, error) {
	return r.db.ListContacts(ctx)
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	return r.db.GetContact(ctx, id)
}

func (r *ContactRepository) Create(ctx context.Context, m *models.Contact) (*models.Contact, error) {
	return r.db.CreateContact(ctx, m)
}

func (r *ContactRepository) SetRead(ctx context.Context, id int64, isRead bool) (*models.Contact, error) {
	return r.db.SetContactRead(ctx, id, isRead)
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	return r.db.DeleteContact(ctx, id)
}
