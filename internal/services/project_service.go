package services

import (
	"context"
	"strings"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/repository"
	"github.com/devfolio/portfolio-api/pkg/storage"
)

// projectImagePrefix is the storage key prefix project images live under
const projectImagePrefix = "projects"

// ProjectService manages portfolio projects
type ProjectService struct {
	repo  repository.ProjectRepositoryInterface
	store storage.Client
}

// NewProjectService creates a new project service instance
func NewProjectService(repo repository.ProjectRepositoryInterface, store storage.Client) *ProjectService {
	return &ProjectService{repo: repo, store: store}
}

// ListPublished returns the public project listing
func (s *ProjectService) ListPublished(ctx context.Context) ([]*models.Project, error) {
	return s.repo.ListPublished(ctx)
}

// ListAll returns projects of every status for the admin
func (s *ProjectService) ListAll(ctx context.Context) ([]*models.Project, error) {
	return s.repo.ListAll(ctx)
}

// GetPublished returns a project visible to the public
func (s *ProjectService) GetPublished(ctx context.Context, id int64) (*models.Project, error) {
	return s.repo.GetPublished(ctx, id)
}

// Get returns a project of any status
func (s *ProjectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, req *models.CreateProjectRequest) (project *models.Project, err error) {
	defer func() { recordWrite("project", "create", err) }()

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	projectSlug, err := slugFromTitle(title)
	if err != nil {
		return nil, err
	}

	project = &models.Project{
		Title:       title,
		Slug:        projectSlug,
		Description: req.Description,
		TechStack:   strings.TrimSpace(req.TechStack),
		Image:       optionalText(req.Image),
		DemoURL:     optionalText(req.DemoURL),
		GithubURL:   optionalText(req.GithubURL),
		Status:      models.StatusDraft,
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return nil, conflictAsValidation(err)
	}
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, id int64, req *models.UpdateProjectRequest) (project *models.Project, err error) {
	defer func() { recordWrite("project", "update", err) }()

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	project, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldImage := project.Image

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		projectSlug, err := slugFromTitle(title)
		if err != nil {
			return nil, err
		}
		project.Title = title
		project.Slug = projectSlug
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.TechStack != nil {
		project.TechStack = strings.TrimSpace(*req.TechStack)
	}
	project.Image = patchText(project.Image, req.Image)
	project.DemoURL = patchText(project.DemoURL, req.DemoURL)
	project.GithubURL = patchText(project.GithubURL, req.GithubURL)
	if req.Status != nil {
		project.Status = *req.Status
	}

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return nil, conflictAsValidation(err)
	}

	if !sameText(oldImage, updated.Image) {
		removeStoredImage(ctx, s.store, "project", projectImagePrefix, oldImage)
	}

	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { recordWrite("project", "delete", err) }()

	image, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	removeStoredImage(ctx, s.store, "project", projectImagePrefix, image)
	return nil
}
