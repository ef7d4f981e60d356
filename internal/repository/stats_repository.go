package repository

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/models"
)

// StatsRepositoryInterface defines dashboard counter access
type StatsRepositoryInterface interface {
	Get(ctx context.Context) (*models.Stats, error)
}

// StatsRepository reads dashboard counters
type StatsRepository struct {
	db StatsDataSource
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db StatsDataSource) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Get(ctx context.Context) (*models.Stats, error) {
	return r.db.GetStats(ctx)
}
