package services_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/services"
	"github.com/devfolio/portfolio-api/pkg/httpclient"
	"github.com/devfolio/portfolio-api/pkg/recaptcha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validContactRequest() *models.CreateContactRequest {
	return &models.CreateContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I would like to work with you.",
	}
}

func TestContactService_Submit(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, httpclient.NewStandardClient(time.Second), "")
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Contact) bool {
		return c.Email == "jane@example.com" && !c.IsRead
	})).Return(&models.Contact{ID: 10}, nil).Once()

	contact, err := service.Submit(ctx, validContactRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(10), contact.ID)

	mockRepo.AssertExpectations(t)
}

func TestContactService_Submit_MessageTooShort(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, httpclient.NewStandardClient(time.Second), "")

	req := validContactRequest()
	req.Message = "Hi there!"

	_, err := service.Submit(context.Background(), req)

	ve, ok := services.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"The message field must be at least 10 characters."}, ve.Fields["message"])
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactService_Submit_InvalidEmail(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, httpclient.NewStandardClient(time.Second), "")

	req := validContactRequest()
	req.Email = "not-an-email"

	_, err := service.Submit(context.Background(), req)

	ve, ok := services.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"The email field must be a valid email address."}, ve.Fields["email"])
}

func TestContactService_Submit_NotifiesTrigger(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		wg.Done()
	}))
	defer server.Close()

	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, httpclient.NewStandardClient(time.Second), server.URL+"/hooks/contact/")
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.Anything).Return(&models.Contact{ID: 42}, nil).Once()

	_, err := service.Submit(ctx, validContactRequest())
	require.NoError(t, err)

	wg.Wait()
	assert.Equal(t, "/hooks/contact/42", gotPath)
}

func TestContactService_MarkRead(t *testing.T) {
	tests := []struct {
		name string
		req  *models.MarkContactRequest
		want bool
	}{
		{name: "empty body marks read", req: &models.MarkContactRequest{}, want: true},
		{name: "explicit read", req: &models.MarkContactRequest{IsRead: boolPtr(true)}, want: true},
		{name: "mark unread", req: &models.MarkContactRequest{IsRead: boolPtr(false)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockContactRepository)
			service := services.NewContactService(mockRepo, nil, "")
			ctx := context.Background()

			mockRepo.On("SetRead", ctx, int64(3), tt.want).Return(&models.Contact{ID: 3, IsRead: tt.want}, nil).Once()

			contact, err := service.MarkRead(ctx, 3, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, contact.IsRead)
			mockRepo.AssertExpectations(t)
		})
	}
}

type MockCaptchaVerifier struct {
	mock.Mock
}

func (m *MockCaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	args := m.Called(ctx, token, remoteIP)
	return args.Error(0)
}

func TestContactService_Submit_Captcha(t *testing.T) {
	ctx := context.Background()

	t.Run("missing token", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		verifier := new(MockCaptchaVerifier)
		service := services.NewContactService(mockRepo, nil, "").WithCaptcha(verifier)

		_, err := service.Submit(ctx, validContactRequest())

		ve, ok := services.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "recaptcha_token")
		verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejected token", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		verifier := new(MockCaptchaVerifier)
		service := services.NewContactService(mockRepo, nil, "").WithCaptcha(verifier)

		req := validContactRequest()
		req.RecaptchaToken = "bad"
		req.RemoteIP = "10.0.0.2"
		verifier.On("Verify", ctx, "bad", "10.0.0.2").Return(recaptcha.ErrRejected).Once()

		_, err := service.Submit(ctx, req)

		ve, ok := services.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, []string{"The captcha verification failed. Please try again."}, ve.Fields["recaptcha_token"])
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("provider unavailable", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		verifier := new(MockCaptchaVerifier)
		service := services.NewContactService(mockRepo, nil, "").WithCaptcha(verifier)

		req := validContactRequest()
		req.RecaptchaToken = "tok"
		verifier.On("Verify", ctx, "tok", "").Return(errors.New("timeout")).Once()

		_, err := service.Submit(ctx, req)

		require.Error(t, err)
		_, ok := services.AsValidationError(err)
		assert.False(t, ok)
	})

	t.Run("accepted token", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		verifier := new(MockCaptchaVerifier)
		service := services.NewContactService(mockRepo, nil, "").WithCaptcha(verifier)

		req := validContactRequest()
		req.RecaptchaToken = "good"
		verifier.On("Verify", ctx, "good", "").Return(nil).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(&models.Contact{ID: 5}, nil).Once()

		contact, err := service.Submit(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(5), contact.ID)
		verifier.AssertExpectations(t)
	})
}
