// Package seed fills a development database with demo portfolio content.
// Records go through the services so slugs, validation and publish dates
// behave exactly as they do for the admin API.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/services"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/slug"
	"go.uber.org/zap"
)

// Options controls how many records of each kind are created
type Options struct {
	Skills   int
	Projects int
	Blogs    int
	Contacts int
	// Seed makes the generated content reproducible; 0 picks a random seed
	Seed int64
}

// DefaultOptions returns a small but representative data set
func DefaultOptions() Options {
	return Options{Skills: 8, Projects: 4, Blogs: 6, Contacts: 5}
}

// Result counts the records that were created
type Result struct {
	Skills   int
	Projects int
	Blogs    int
	Contacts int
}

var skillCategories = []string{"Frontend", "Backend", "DevOps", "Database", "Tools"}

var techStacks = []string{
	"Go, PostgreSQL, Redis",
	"TypeScript, React, Tailwind",
	"Python, FastAPI, Docker",
	"Go, gRPC, Kubernetes",
	"Vue, Node.js, MongoDB",
}

// Seeder creates demo records through the service layer
type Seeder struct {
	skills   services.SkillServiceInterface
	projects services.ProjectServiceInterface
	blogs    services.BlogServiceInterface
	contacts services.ContactServiceInterface
	faker    *gofakeit.Faker
}

func NewSeeder(
	skills services.SkillServiceInterface,
	projects services.ProjectServiceInterface,
	blogs services.BlogServiceInterface,
	contacts services.ContactServiceInterface,
) *Seeder {
	return &Seeder{
		skills:   skills,
		projects: projects,
		blogs:    blogs,
		contacts: contacts,
	}
}

// Run creates the requested records and stops at the first failure
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	s.faker = gofakeit.New(opts.Seed)
	result := &Result{}

	for i := 0; i < opts.Skills; i++ {
		if _, err := s.skills.Create(ctx, s.skillRequest(i)); err != nil {
			return result, fmt.Errorf("failed to seed skill %d: %w", i+1, err)
		}
		result.Skills++
	}

	for i := 0; i < opts.Projects; i++ {
		if _, err := s.projects.Create(ctx, s.projectRequest(i)); err != nil {
			return result, fmt.Errorf("failed to seed project %d: %w", i+1, err)
		}
		result.Projects++
	}

	for i := 0; i < opts.Blogs; i++ {
		if _, err := s.blogs.Create(ctx, s.blogRequest(i)); err != nil {
			return result, fmt.Errorf("failed to seed blog post %d: %w", i+1, err)
		}
		result.Blogs++
	}

	for i := 0; i < opts.Contacts; i++ {
		if _, err := s.contacts.Submit(ctx, s.contactRequest()); err != nil {
			return result, fmt.Errorf("failed to seed contact message %d: %w", i+1, err)
		}
		result.Contacts++
	}

	logger.Info("Seeded demo content",
		zap.Int("skills", result.Skills),
		zap.Int("projects", result.Projects),
		zap.Int("blogs", result.Blogs),
		zap.Int("contacts", result.Contacts))

	return result, nil
}

func (s *Seeder) skillRequest(i int) *models.CreateSkillRequest {
	level := s.faker.Number(40, 100)
	order := i + 1
	category := skillCategories[i%len(skillCategories)]
	return &models.CreateSkillRequest{
		Name:     s.faker.ProgrammingLanguage(),
		Level:    &level,
		Category: &category,
		Order:    &order,
	}
}

// Titles carry the index so generated slugs never collide
func (s *Seeder) projectRequest(i int) *models.CreateProjectRequest {
	status := models.StatusPublished
	if i%3 == 2 {
		status = models.StatusDraft
	}
	demo := s.faker.URL()
	github := "https://github.com/" + slug.Make(s.faker.Username()) + "/" + slug.Make(s.faker.AppName())
	return &models.CreateProjectRequest{
		Title:       fmt.Sprintf("%s %d", s.faker.AppName(), i+1),
		Description: s.faker.Paragraph(1, 3, 12, " "),
		TechStack:   techStacks[i%len(techStacks)],
		DemoURL:     &demo,
		GithubURL:   &github,
		Status:      &status,
	}
}

func (s *Seeder) blogRequest(i int) *models.CreateBlogRequest {
	status := models.StatusPublished
	if i%4 == 3 {
		status = models.StatusDraft
	}
	excerpt := s.faker.Sentence(15)
	tags := strings.Join([]string{s.faker.HackerNoun(), s.faker.HackerVerb(), s.faker.BuzzWord()}, ",")
	return &models.CreateBlogRequest{
		Title:   fmt.Sprintf("%s %d", strings.TrimSuffix(s.faker.Sentence(5), "."), i+1),
		Content: s.faker.Paragraph(3, 5, 15, "\n\n"),
		Excerpt: &excerpt,
		Tags:    &tags,
		Status:  &status,
	}
}

func (s *Seeder) contactRequest() *models.CreateContactRequest {
	return &models.CreateContactRequest{
		Name:    s.faker.Name(),
		Email:   s.faker.Email(),
		Subject: s.faker.Sentence(4),
		Message: s.faker.Paragraph(1, 2, 12, " "),
	}
}
