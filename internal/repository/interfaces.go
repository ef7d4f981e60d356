package repository

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/models"
)

// SkillDataSource is the persistence surface needed for skills
type SkillDataSource interface {
	ListSkills(ctx context.Context) ([]*models.Skill, error)
	GetSkill(ctx context.Context, id int64) (*models.Skill, error)
	CreateSkill(ctx context.Context, s *models.Skill) (*models.Skill, error)
	UpdateSkill(ctx context.Context, s *models.Skill) (*models.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}

// ProjectDataSource is the persistence surface needed for projects
type ProjectDataSource interface {
	ListProjects(ctx context.Context, publishedOnly bool) ([]*models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	GetPublishedProject(ctx context.Context, id int64) (*models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) (*models.Project, error)
	UpdateProject(ctx context.Context, p *models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) (*string, error)
}

// BlogDataSource is the persistence surface needed for blog posts
type BlogDataSource interface {
	ListBlogs(ctx context.Context, publishedOnly bool) ([]*models.Blog, error)
	GetBlog(ctx context.Context, id int64) (*models.Blog, error)
	ViewPublishedBlog(ctx context.Context, slug string) (*models.Blog, error)
	CreateBlog(ctx context.Context, b *models.Blog) (*models.Blog, error)
	UpdateBlog(ctx context.Context, b *models.Blog) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id int64) (*string, error)
}

// ContactDataSource is the persistence surface needed for contact messages
type ContactDataSource interface {
	ListContacts(ctx context.Context) ([]*models.Contact, error)
	GetContact(ctx context.Context, id int64) (*models.Contact, error)
	CreateContact(ctx context.Context, m *models.Contact) (*models.Contact, error)
	SetContactRead(ctx context.Context, id int64, isRead bool) (*models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

// ProfileDataSource is the persistence surface needed for the profile
type ProfileDataSource interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpsertProfile(ctx context.Context, p *models.Profile) (*models.Profile, error)
}

// StatsDataSource computes dashboard counters
type StatsDataSource interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}
