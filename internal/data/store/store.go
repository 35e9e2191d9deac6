package store

import (
	"context"
	"errors"
	"sort"

	"github.com/brightforge/academy-backend/internal/domain"
)

var (
	// ErrDuplicateEnrollment is returned when the (email, course) pair is
	// already enrolled.
	ErrDuplicateEnrollment = errors.New("duplicate enrollment")
	// ErrNotFound is returned by FindEnrollment when no record matches.
	ErrNotFound = errors.New("enrollment not found")
)

// Store persists the enrollment and contact-submission collections. It is
// the only component that touches the underlying storage; services operate
// through this contract. Every mutating operation durably persists before
// returning.
type Store interface {
	// Init is idempotent; it loads persisted state or verifies the storage
	// handle. An unreadable or corrupt file leaves the store empty but
	// usable.
	Init(ctx context.Context) error

	// ListEnrollments returns all enrollments, most recent first.
	ListEnrollments(ctx context.Context) ([]*domain.Enrollment, error)
	// FindEnrollment matches courseTitle and email exactly, returning
	// ErrNotFound when absent.
	FindEnrollment(ctx context.Context, courseTitle, email string) (*domain.Enrollment, error)
	// InsertEnrollment atomically checks for an existing (courseTitle,
	// email) pair, returning ErrDuplicateEnrollment if present, otherwise
	// creates a record with a fresh id and current timestamp.
	InsertEnrollment(ctx context.Context, email, name, courseTitle string) (*domain.Enrollment, error)
	// EnrollmentStats aggregates totals, distinct emails and per-course
	// counts (count desc, title asc on ties).
	EnrollmentStats(ctx context.Context) (*domain.EnrollmentStats, error)

	// ListContactSubmissions returns all submissions, most recent first.
	ListContactSubmissions(ctx context.Context) ([]*domain.ContactSubmission, error)
	// InsertContactSubmission creates a record unconditionally.
	InsertContactSubmission(ctx context.Context, name, email, subject, message string) (*domain.ContactSubmission, error)

	Close() error
}

func sortEnrollmentsDesc(list []*domain.Enrollment) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].EnrolledAt.Equal(list[j].EnrolledAt) {
			return list[i].EnrolledAt.After(list[j].EnrolledAt)
		}
		return list[i].ID.String() > list[j].ID.String()
	})
}

func sortSubmissionsDesc(list []*domain.ContactSubmission) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].SubmittedAt.Equal(list[j].SubmittedAt) {
			return list[i].SubmittedAt.After(list[j].SubmittedAt)
		}
		return list[i].ID.String() > list[j].ID.String()
	})
}

func sortCourseCountsDesc(list []domain.CourseEnrollmentCount) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Count != list[j].Count {
			return list[i].Count > list[j].Count
		}
		return list[i].CourseTitle < list[j].CourseTitle
	})
}
