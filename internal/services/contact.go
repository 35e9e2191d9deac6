package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/brightforge/academy-backend/internal/data/store"
	"github.com/brightforge/academy-backend/internal/domain"
	"github.com/brightforge/academy-backend/internal/platform/apierr"
	"github.com/brightforge/academy-backend/internal/platform/logger"
)

type ContactService interface {
	// Submit persists a contact-form submission. All four fields are
	// required; nothing is emailed anywhere.
	Submit(ctx context.Context, name, email, subject, message string) (*domain.ContactSubmission, error)
	ListSubmissions(ctx context.Context) ([]*domain.ContactSubmission, error)
}

type contactService struct {
	log   *logger.Logger
	store store.Store
}

func NewContactService(baseLog *logger.Logger, recordStore store.Store) ContactService {
	return &contactService{
		log:   baseLog.With("service", "ContactService"),
		store: recordStore,
	}
}

func (s *contactService) Submit(ctx context.Context, name, email, subject, message string) (*domain.ContactSubmission, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || subject == "" || message == "" {
		return nil, apierr.Validation("missing_required_field", fmt.Errorf("name, email, subject and message are required"))
	}

	submission, err := s.store.InsertContactSubmission(ctx, name, email, subject, message)
	if err != nil {
		s.log.Error("Submit failed", "error", err, "email", email)
		return nil, fmt.Errorf("insert contact submission: %w", err)
	}
	return submission, nil
}

func (s *contactService) ListSubmissions(ctx context.Context) ([]*domain.ContactSubmission, error) {
	submissions, err := s.store.ListContactSubmissions(ctx)
	if err != nil {
		s.log.Error("ListSubmissions failed", "error", err)
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	return submissions, nil
}
