package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBlogService_Create_DraftHasNoPublishedAt(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := services.NewBlogService(mockRepo, new(MockStorageClient))
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(b *models.Blog) bool {
		return b.Slug == "getting-started-with-go" && b.Status == models.StatusDraft && b.PublishedAt == nil
	})).Return(&models.Blog{ID: 1}, nil).Once()

	_, err := service.Create(ctx, &models.CreateBlogRequest{
		Title:   "Getting Started with Go",
		Content: "Go is a statically typed language.",
	})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestBlogService_Create_PublishedStampsPublishedAt(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := services.NewBlogService(mockRepo, new(MockStorageClient))
	ctx := context.Background()
	before := time.Now().UTC().Add(-time.Second)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(b *models.Blog) bool {
		return b.PublishedAt != nil && b.PublishedAt.After(before)
	})).Return(&models.Blog{ID: 1}, nil).Once()

	_, err := service.Create(ctx, &models.CreateBlogRequest{
		Title:   "Launch",
		Content: "We are live.",
		Status:  strPtr(models.StatusPublished),
	})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestBlogService_Create_ExcerptTooLong(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := services.NewBlogService(mockRepo, new(MockStorageClient))

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}

	_, err := service.Create(context.Background(), &models.CreateBlogRequest{
		Title:   "Post",
		Content: "Body",
		Excerpt: strPtr(string(long)),
	})

	ve, ok := services.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"The excerpt field must not be greater than 500 characters."}, ve.Fields["excerpt"])
}

func TestBlogService_Update_FirstPublishSetsPublishedAt(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := services.NewBlogService(mockRepo, new(MockStorageClient))
	ctx := context.Background()

	draft := &models.Blog{ID: 5, Title: "Draft", Slug: "draft", Content: "x", Status: models.StatusDraft}
	mockRepo.On("GetByID", ctx, int64(5)).Return(draft, nil).Once()
	mockRepo.On("Update", ctx, mock.MatchedBy(func(b *models.Blog) bool {
		return b.Status == models.StatusPublished && b.PublishedAt != nil
	})).Return(draft, nil).Once()

	_, err := service.Update(ctx, 5, &models.UpdateBlogRequest{Status: strPtr(models.StatusPublished)})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestBlogService_Update_RepublishKeepsPublishedAt(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := services.NewBlogService(mockRepo, new(MockStorageClient))
	ctx := context.Background()

	firstPublished := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	post := &models.Blog{ID: 5, Title: "Post", Slug: "post", Content: "x", Status: models.StatusDraft, PublishedAt: &firstPublished}

	mockRepo.On("GetByID", ctx, int64(5)).Return(post, nil).Once()
	mockRepo.On("Update", ctx, mock.MatchedBy(func(b *models.Blog) bool {
		return b.PublishedAt != nil && b.PublishedAt.Equal(firstPublished)
	})).Return(post, nil).Once()

	_, err := service.Update(ctx, 5, &models.UpdateBlogRequest{Status: strPtr(models.StatusPublished)})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestBlogService_Update_UnpublishKeepsPublishedAt(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := services.NewBlogService(mockRepo, new(MockStorageClient))
	ctx := context.Background()

	firstPublished := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	post := &models.Blog{ID: 5, Title: "Post", Slug: "post", Content: "x", Status: models.StatusPublished, PublishedAt: &firstPublished}

	mockRepo.On("GetByID", ctx, int64(5)).Return(post, nil).Once()
	mockRepo.On("Update", ctx, mock.MatchedBy(func(b *models.Blog) bool {
		return b.Status == models.StatusDraft && b.PublishedAt.Equal(firstPublished)
	})).Return(post, nil).Once()

	_, err := service.Update(ctx, 5, &models.UpdateBlogRequest{Status: strPtr(models.StatusDraft)})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestBlogService_ViewBySlug(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := services.NewBlogService(mockRepo, new(MockStorageClient))
	ctx := context.Background()

	mockRepo.On("ViewBySlug", ctx, "hello-world").Return(&models.Blog{ID: 1, Slug: "hello-world", Views: 11}, nil).Once()

	blog, err := service.ViewBySlug(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, int64(11), blog.Views)

	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
