package services

import (
	"context"
	"net/http"
	"regexp"

	"github.com/aurora-jewelry/aurora-store/catalog-service/models"
	"github.com/aurora-jewelry/aurora-store/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// emailPattern accepts local@domain.tld with no embedded whitespace. This
// is deliberately looser than validator's "email" tag; the storefront has
// always accepted anything of this shape.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService handles contact form and newsletter submissions. Both are
// best-effort: submissions are validated and logged, never persisted.
type ContactService interface {
	SubmitContact(ctx context.Context, req *models.ContactRequest) (*models.SubmissionResponse, *ServiceError)
	SubscribeNewsletter(ctx context.Context, req *models.NewsletterRequest) (*models.SubmissionResponse, *ServiceError)
}

type contactServiceImpl struct {
	validate *validator.Validate
	logger   *zap.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(logger *zap.Logger) ContactService {
	return &contactServiceImpl{
		validate: validator.New(),
		logger:   logger,
	}
}

type contactFields struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

func (s *contactServiceImpl) SubmitContact(ctx context.Context, req *models.ContactRequest) (*models.SubmissionResponse, *ServiceError) {
	fields := contactFields{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.validate.Struct(fields); err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "All fields are required"}
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid email address"}
	}

	s.logger.Info("Contact form submission",
		zap.String("request_id", logger.FromContext(ctx)),
		zap.String("submission_id", uuid.NewString()),
		zap.String("name", req.Name),
		zap.String("email", req.Email),
		zap.String("subject", req.Subject),
		zap.String("message", req.Message),
	)

	return &models.SubmissionResponse{
		Success: true,
		Message: "Thank you for your message! We'll get back to you soon.",
	}, nil
}

func (s *contactServiceImpl) SubscribeNewsletter(ctx context.Context, req *models.NewsletterRequest) (*models.SubmissionResponse, *ServiceError) {
	if req.Email == "" {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Email is required"}
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid email address"}
	}

	s.logger.Info("Newsletter subscription",
		zap.String("request_id", logger.FromContext(ctx)),
		zap.String("submission_id", uuid.NewString()),
		zap.String("email", req.Email),
	)

	return &models.SubmissionResponse{
		Success: true,
		Message: "Thank you for subscribing to our newsletter!",
	}, nil
}
