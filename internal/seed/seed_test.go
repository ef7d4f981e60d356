package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/pkg/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSkills struct{ mock.Mock }

func (m *mockSkills) List(ctx context.Context) ([]*models.Skill, error) { return nil, nil }
func (m *mockSkills) Get(ctx context.Context, id int64) (*models.Skill, error) {
	return nil, nil
}
func (m *mockSkills) Create(ctx context.Context, req *models.CreateSkillRequest) (*models.Skill, error) {
	args := m.Called(ctx, req)
	return &models.Skill{Name: req.Name, Level: *req.Level}, args.Error(0)
}
func (m *mockSkills) Update(ctx context.Context, id int64, req *models.UpdateSkillRequest) (*models.Skill, error) {
	return nil, nil
}
func (m *mockSkills) Delete(ctx context.Context, id int64) error { return nil }

type mockProjects struct{ mock.Mock }

func (m *mockProjects) ListPublished(ctx context.Context) ([]*models.Project, error) { return nil, nil }
func (m *mockProjects) ListAll(ctx context.Context) ([]*models.Project, error)       { return nil, nil }
func (m *mockProjects) GetPublished(ctx context.Context, id int64) (*models.Project, error) {
	return nil, nil
}
func (m *mockProjects) Get(ctx context.Context, id int64) (*models.Project, error) { return nil, nil }
func (m *mockProjects) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	args := m.Called(ctx, req)
	return &models.Project{Title: req.Title}, args.Error(0)
}
func (m *mockProjects) Update(ctx context.Context, id int64, req *models.UpdateProjectRequest) (*models.Project, error) {
	return nil, nil
}
func (m *mockProjects) Delete(ctx context.Context, id int64) error { return nil }

type mockBlogs struct{ mock.Mock }

func (m *mockBlogs) ListPublished(ctx context.Context) ([]*models.Blog, error) { return nil, nil }
func (m *mockBlogs) ListAll(ctx context.Context) ([]*models.Blog, error)       { return nil, nil }
func (m *mockBlogs) ViewBySlug(ctx context.Context, s string) (*models.Blog, error) {
	return nil, nil
}
func (m *mockBlogs) Get(ctx context.Context, id int64) (*models.Blog, error) { return nil, nil }
func (m *mockBlogs) Create(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, error) {
	args := m.Called(ctx, req)
	return &models.Blog{Title: req.Title}, args.Error(0)
}
func (m *mockBlogs) Update(ctx context.Context, id int64, req *models.UpdateBlogRequest) (*models.Blog, error) {
	return nil, nil
}
func (m *mockBlogs) Delete(ctx context.Context, id int64) error { return nil }

type mockContacts struct{ mock.Mock }

func (m *mockContacts) Submit(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error) {
	args := m.Called(ctx, req)
	return &models.Contact{Email: req.Email}, args.Error(0)
}
func (m *mockContacts) List(ctx context.Context) ([]*models.Contact, error) { return nil, nil }
func (m *mockContacts) Get(ctx context.Context, id int64) (*models.Contact, error) {
	return nil, nil
}
func (m *mockContacts) MarkRead(ctx context.Context, id int64, req *models.MarkContactRequest) (*models.Contact, error) {
	return nil, nil
}
func (m *mockContacts) Delete(ctx context.Context, id int64) error { return nil }

func newMocks() (*mockSkills, *mockProjects, *mockBlogs, *mockContacts) {
	return new(mockSkills), new(mockProjects), new(mockBlogs), new(mockContacts)
}

func TestSeeder_Run(t *testing.T) {
	skills, projects, blogs, contacts := newMocks()
	ctx := context.Background()

	var projectTitles, blogTitles []string
	skills.On("Create", ctx, mock.MatchedBy(func(r *models.CreateSkillRequest) bool {
		return r.Name != "" && *r.Level >= 0 && *r.Level <= 100
	})).Return(nil)
	projects.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		projectTitles = append(projectTitles, args.Get(1).(*models.CreateProjectRequest).Title)
	}).Return(nil)
	blogs.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		blogTitles = append(blogTitles, args.Get(1).(*models.CreateBlogRequest).Title)
	}).Return(nil)
	contacts.On("Submit", ctx, mock.MatchedBy(func(r *models.CreateContactRequest) bool {
		return r.Email != "" && len(r.Message) >= 10
	})).Return(nil)

	result, err := NewSeeder(skills, projects, blogs, contacts).Run(ctx, Options{
		Skills: 3, Projects: 4, Blogs: 5, Contacts: 2, Seed: 42,
	})

	require.NoError(t, err)
	assert.Equal(t, &Result{Skills: 3, Projects: 4, Blogs: 5, Contacts: 2}, result)
	skills.AssertNumberOfCalls(t, "Create", 3)
	contacts.AssertNumberOfCalls(t, "Submit", 2)

	assertDistinctSlugs(t, projectTitles)
	assertDistinctSlugs(t, blogTitles)
}

func assertDistinctSlugs(t *testing.T, titles []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, title := range titles {
		s := slug.Make(title)
		assert.NotEmpty(t, s, "title %q has no slug", title)
		assert.False(t, seen[s], "duplicate slug %q", s)
		seen[s] = true
	}
}

func TestSeeder_Run_StopsOnError(t *testing.T) {
	skills, projects, blogs, contacts := newMocks()
	ctx := context.Background()

	skills.On("Create", ctx, mock.Anything).Return(nil)
	projects.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()

	result, err := NewSeeder(skills, projects, blogs, contacts).Run(ctx, Options{
		Skills: 2, Projects: 3, Blogs: 1, Contacts: 1, Seed: 7,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "project 1")
	assert.Equal(t, 2, result.Skills)
	assert.Equal(t, 0, result.Projects)
	blogs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	contacts.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSeeder_Reproducible(t *testing.T) {
	a := NewSeeder(nil, nil, nil, nil)
	b := NewSeeder(nil, nil, nil, nil)
	ctx := context.Background()

	_, err := a.Run(ctx, Options{Seed: 99})
	require.NoError(t, err)
	_, err = b.Run(ctx, Options{Seed: 99})
	require.NoError(t, err)

	assert.Equal(t, a.contactRequest(), b.contactRequest())
}
