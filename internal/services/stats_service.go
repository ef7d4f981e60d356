package services

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/repository"
)

// StatsService provides dashboard counters
type StatsService struct {
	repo repository.StatsRepositoryInterface
}

// NewStatsService creates a new stats service instance
func NewStatsService(repo repository.StatsRepositoryInterface) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Get(ctx context.Context) (*models.Stats, error) {
	return s.repo.Get(ctx)
}
