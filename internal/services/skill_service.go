package services

import (
	"context"
	"strings"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/repository"
)

// SkillService manages the skills chart
type SkillService struct {
	repo repository.SkillRepositoryInterface
}

// NewSkillService creates a new skill service instance
func NewSkillService(repo repository.SkillRepositoryInterface) *SkillService {
	return &SkillService{repo: repo}
}

func (s *SkillService) List(ctx context.Context) ([]*models.Skill, error) {
	return s.repo.List(ctx)
}

func (s *SkillService) Get(ctx context.Context, id int64) (*models.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SkillService) Create(ctx context.Context, req *models.CreateSkillRequest) (skill *models.Skill, err error) {
	defer func() { recordWrite("skill", "create", err) }()

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	skill = &models.Skill{
		Name:     strings.TrimSpace(req.Name),
		Level:    *req.Level,
		Category: optionalText(req.Category),
	}
	if req.Order != nil {
		skill.Order = *req.Order
	}

	return s.repo.Create(ctx, skill)
}

func (s *SkillService) Update(ctx context.Context, id int64, req *models.UpdateSkillRequest) (skill *models.Skill, err error) {
	defer func() { recordWrite("skill", "update", err) }()

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	skill, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		skill.Name = strings.TrimSpace(*req.Name)
	}
	if req.Level != nil {
		skill.Level = *req.Level
	}
	skill.Category = patchText(skill.Category, req.Category)
	if req.Order != nil {
		skill.Order = *req.Order
	}

	return s.repo.Update(ctx, skill)
}

func (s *SkillService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { recordWrite("skill", "delete", err) }()
	return s.repo.Delete(ctx, id)
}
