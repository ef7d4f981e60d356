package services

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/models"
)

// SkillServiceInterface defines the skills operations used by handlers
type SkillServiceInterface interface {
	List(ctx context.Context) ([]*models.Skill, error)
	Get(ctx context.Context, id int64) (*models.Skill, error)
	Create(ctx context.Context, req *models.CreateSkillRequest) (*models.Skill, error)
	Update(ctx context.Context, id int64, req *models.UpdateSkillRequest) (*models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectServiceInterface defines the project operations used by handlers
type ProjectServiceInterface interface {
	ListPublished(ctx context.Context) ([]*models.Project, error)
	ListAll(ctx context.Context) ([]*models.Project, error)
	GetPublished(ctx context.Context, id int64) (*models.Project, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id int64, req *models.UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

// BlogServiceInterface defines the blog operations used by handlers
type BlogServiceInterface interface {
	ListPublished(ctx context.Context) ([]*models.Blog, error)
	ListAll(ctx context.Context) ([]*models.Blog, error)
	ViewBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Get(ctx context.Context, id int64) (*models.Blog, error)
	Create(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, error)
	Update(ctx context.Context, id int64, req *models.UpdateBlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, id int64) error
}

// ContactServiceInterface defines the contact operations used by handlers
type ContactServiceInterface interface {
	Submit(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error)
	List(ctx context.Context) ([]*models.Contact, error)
	Get(ctx context.Context, id int64) (*models.Contact, error)
	MarkRead(ctx context.Context, id int64, req *models.MarkContactRequest) (*models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

// ProfileServiceInterface defines the profile operations used by handlers
type ProfileServiceInterface interface {
	Show(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, req *models.UpdateProfileRequest, image *models.ImageUpload) (*models.Profile, error)
	RemoveImage(ctx context.Context) (*models.Profile, error)
}

// StatsServiceInterface defines the dashboard operations used by handlers
type StatsServiceInterface interface {
	Get(ctx context.Context) (*models.Stats, error)
}

// AuthServiceInterface defines the authentication operations used by handlers and middleware
type AuthServiceInterface interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*models.AdminSession, error)
	Logout(ctx context.Context, session *models.AdminSession) error
}

var (
	_ SkillServiceInterface   = (*SkillService)(nil)
	_ ProjectServiceInterface = (*ProjectService)(nil)
	_ BlogServiceInterface    = (*BlogService)(nil)
	_ ContactServiceInterface = (*ContactService)(nil)
	_ ProfileServiceInterface = (*ProfileService)(nil)
	_ StatsServiceInterface   = (*StatsService)(nil)
	_ AuthServiceInterface    = (*AuthService)(nil)
)
