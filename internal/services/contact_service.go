package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/repository"
	"github.com/devfolio/portfolio-api/pkg/httpclient"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/metrics"
	"github.com/devfolio/portfolio-api/pkg/recaptcha"
	"github.com/devfolio/portfolio-api/pkg/trigger"
	"go.uber.org/zap"
)

// CaptchaVerifier checks a client-side captcha token
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// ContactService handles contact form submissions and the admin inbox
type ContactService struct {
	repo       repository.ContactRepositoryInterface
	httpClient httpclient.Client
	triggerURL string
	captcha    CaptchaVerifier
}

// NewContactService creates a new contact service instance.
// When triggerURL is set every stored message is announced to it.
func NewContactService(repo repository.ContactRepositoryInterface, httpClient httpclient.Client, triggerURL string) *ContactService {
	return &ContactService{
		repo:       repo,
		httpClient: httpClient,
		triggerURL: triggerURL,
	}
}

// WithCaptcha makes Submit require a token accepted by v
func (s *ContactService) WithCaptcha(v CaptchaVerifier) *ContactService {
	s.captcha = v
	return s
}

// Submit validates and stores a public contact message
func (s *ContactService) Submit(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error) {
	if err := validateStruct(req); err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("invalid").Inc()
		return nil, err
	}

	if s.captcha != nil {
		if err := s.checkCaptcha(ctx, req); err != nil {
			return nil, err
		}
	}

	contact, err := s.repo.Create(ctx, &models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	})
	if err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.ContactFormSubmissions.WithLabelValues("success").Inc()
	logger.Info("Contact message received",
		zap.Int64("contact_id", contact.ID),
		zap.String("subject", contact.Subject))

	trigger.CallAsync(s.triggerURL, strconv.FormatInt(contact.ID, 10), s.httpClient)

	return contact, nil
}

func (s *ContactService) checkCaptcha(ctx context.Context, req *models.CreateContactRequest) error {
	if strings.TrimSpace(req.RecaptchaToken) == "" {
		metrics.ContactFormSubmissions.WithLabelValues("invalid").Inc()
		return NewValidationError("recaptcha_token", "The recaptcha token field is required.")
	}

	if err := s.captcha.Verify(ctx, req.RecaptchaToken, req.RemoteIP); err != nil {
		if errors.Is(err, recaptcha.ErrRejected) {
			metrics.ContactFormSubmissions.WithLabelValues("captcha_failed").Inc()
			return NewValidationError("recaptcha_token", "The captcha verification failed. Please try again.")
		}
		metrics.ContactFormSubmissions.WithLabelValues("error").Inc()
		return err
	}
	return nil
}

func (s *ContactService) List(ctx context.Context) ([]*models.Contact, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) Get(ctx context.Context, id int64) (*models.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

// MarkRead sets the read flag; a request without is_read marks the message read
func (s *ContactService) MarkRead(ctx context.Context, id int64, req *models.MarkContactRequest) (contact *models.Contact, err error) {
	defer func() { recordWrite("contact", "mark_read", err) }()

	isRead := true
	if req != nil && req.IsRead != nil {
		isRead = *req.IsRead
	}
	return s.repo.SetRead(ctx, id, isRead)
}

func (s *ContactService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { recordWrite("contact", "delete", err) }()
	return s.repo.Delete(ctx, id)
}
