package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brightforge/academy-backend/internal/data/store"
	"github.com/brightforge/academy-backend/internal/domain"
	"github.com/brightforge/academy-backend/internal/platform/apierr"
	"github.com/brightforge/academy-backend/internal/platform/logger"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, email, name, courseTitle string) (*domain.Enrollment, error)
	// Check reports whether the (courseTitle, email) pair is enrolled and
	// returns the record when it is.
	Check(ctx context.Context, courseTitle, email string) (*domain.Enrollment, bool, error)
	List(ctx context.Context) ([]*domain.Enrollment, error)
	Stats(ctx context.Context) (*domain.EnrollmentStats, error)
}

type enrollmentService struct {
	log   *logger.Logger
	store store.Store
}

func NewEnrollmentService(baseLog *logger.Logger, recordStore store.Store) EnrollmentService {
	return &enrollmentService{
		log:   baseLog.With("service", "EnrollmentService"),
		store: recordStore,
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, email, name, courseTitle string) (*domain.Enrollment, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	courseTitle = strings.TrimSpace(courseTitle)
	if email == "" || name == "" || courseTitle == "" {
		return nil, apierr.Validation("missing_required_field", fmt.Errorf("email, name and courseTitle are required"))
	}

	enrollment, err := s.store.InsertEnrollment(ctx, email, name, courseTitle)
	if errors.Is(err, store.ErrDuplicateEnrollment) {
		return nil, apierr.Conflict("duplicate_enrollment", fmt.Errorf("already enrolled in %q", courseTitle))
	}
	if err != nil {
		s.log.Error("Enroll failed", "error", err, "course_title", courseTitle, "email", email)
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}
	return enrollment, nil
}

func (s *enrollmentService) Check(ctx context.Context, courseTitle, email string) (*domain.Enrollment, bool, error) {
	enrollment, err := s.store.FindEnrollment(ctx, courseTitle, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		s.log.Error("Check failed", "error", err, "course_title", courseTitle, "email", email)
		return nil, false, fmt.Errorf("find enrollment: %w", err)
	}
	return enrollment, true, nil
}

func (s *enrollmentService) List(ctx context.Context) ([]*domain.Enrollment, error) {
	enrollments, err := s.store.ListEnrollments(ctx)
	if err != nil {
		s.log.Error("List failed", "error", err)
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

func (s *enrollmentService) Stats(ctx context.Context) (*domain.EnrollmentStats, error) {
	stats, err := s.store.EnrollmentStats(ctx)
	if err != nil {
		s.log.Error("Stats failed", "error", err)
		return nil, fmt.Errorf("enrollment stats: %w", err)
	}
	return stats, nil
}
