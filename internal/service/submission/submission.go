package submission

import (
	"context"
	"fmt"
	"time"

	"nexcraft-service/internal/domain/contact"
	"nexcraft-service/internal/domain/status"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// ContactStore persists contact-form submissions.
type ContactStore interface {
	Insert(ctx context.Context, s *contact.Submission) error
	List(ctx context.Context) ([]contact.Submission, error)
	Delete(ctx context.Context, id string) error
}

// StatusStore persists status checks.
type StatusStore interface {
	Insert(ctx context.Context, c *status.Check) error
	List(ctx context.Context) ([]status.Check, error)
}

// Notifier pushes a freshly created submission to listening admin
// dashboards. Best effort; failures never affect the request.
type Notifier interface {
	NotifySubmission(s *contact.Submission)
}

type Service struct {
	contacts ContactStore
	checks   StatusStore
	notifier Notifier
	logger   *zap.Logger
}

func NewService(contacts ContactStore, checks StatusStore, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{
		contacts: contacts,
		checks:   checks,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *Service) CreateContact(ctx context.Context, req *contact.CreateRequest) (*contact.Submission, error) {
	sub := &contact.Submission{
		ID:              ulid.Make().String(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		ServiceInterest: req.ServiceInterest,
		Budget:          req.Budget,
		Message:         req.Message,
		Timestamp:       time.Now().UTC(),
	}

	if err := s.contacts.Insert(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifySubmission(sub)
	}

	s.logger.Info("contact submission received",
		zap.String("submission_id", sub.ID),
		zap.String("service_interest", sub.ServiceInterest),
	)
	return sub, nil
}

// ListContacts returns submissions newest first.
func (s *Service) ListContacts(ctx context.Context) ([]contact.Submission, error) {
	return s.contacts.List(ctx)
}

func (s *Service) DeleteContact(ctx context.Context, id string) error {
	return s.contacts.Delete(ctx, id)
}

func (s *Service) CreateStatusCheck(ctx context.Context, req *status.CreateRequest) (*status.Check, error) {
	check := &status.Check{
		ID:         ulid.Make().String(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.checks.Insert(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to create status check: %w", err)
	}
	return check, nil
}

func (s *Service) ListStatusChecks(ctx context.Context) ([]status.Check, error) {
	return s.checks.List(ctx)
}
