package repository

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/cache"
	"github.com/devfolio/portfolio-api/internal/models"
)

// SkillRepositoryInterface defines skill data access operations
type SkillRepositoryInterface interface {
	List(ctx context.Context) ([]*models.Skill, error)
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
	Create(ctx context.Context, s *models.Skill) (*models.Skill, error)
	Update(ctx context.Context, s *models.Skill) (*models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

// SkillRepository serves skills from the database with a cached listing
type SkillRepository struct {
	db    SkillDataSource
	cache *cache.ContentCache
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db SkillDataSource, contentCache *cache.ContentCache) *SkillRepository {
	return &SkillRepository{db: db, cache: contentCache}
}

// List returns all skills in display order
func (r *SkillRepository) List(ctx context.Context) ([]*models.Skill, error) {
	return cache.GetOrLoad(ctx, r.cache, cache.SkillsKey, r.db.ListSkills)
}

// GetByID returns a single skill
func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	return r.db.GetSkill(ctx, id)
}

// Create stores a new skill
func (r *SkillRepository) Create(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	created, err := r.db.CreateSkill(ctx, s)
	if err != nil {
		return nil, err
	}
	r.invalidate()
	return created, nil
}

// Update stores changes to an existing skill
func (r *SkillRepository) Update(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	updated, err := r.db.UpdateSkill(ctx, s)
	if err != nil {
		return nil, err
	}
	r.invalidate()
	return updated, nil
}

// Delete removes a skill
func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.DeleteSkill(ctx, id); err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *SkillRepository) invalidate() {
	if r.cache != nil {
		r.cache.Invalidate(cache.SkillsKey)
	}
}
