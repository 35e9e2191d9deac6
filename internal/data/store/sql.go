package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightforge/academy-backend/internal/domain"
	"github.com/brightforge/academy-backend/internal/platform/logger"
)

type sqlStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewSQLStore wraps a gorm handle whose schema has already been migrated.
// The unique index on (email, course_title) makes the storage engine the
// final arbiter of the one-enrollment-per-pair invariant.
func NewSQLStore(db *gorm.DB, baseLog *logger.Logger) Store {
	return &sqlStore{db: db, log: baseLog.With("store", "SQLStore")}
}

func (s *sqlStore) Init(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *sqlStore) ListEnrollments(ctx context.Context) ([]*domain.Enrollment, error) {
	results := make([]*domain.Enrollment, 0)
	if err := s.db.WithContext(ctx).
		Order("enrolled_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *sqlStore) FindEnrollment(ctx context.Context, courseTitle, email string) (*domain.Enrollment, error) {
	var result domain.Enrollment
	err := s.db.WithContext(ctx).
		Where("course_title = ? AND email = ?", courseTitle, email).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *sqlStore) InsertEnrollment(ctx context.Context, email, name, courseTitle string) (*domain.Enrollment, error) {
	enrollment := &domain.Enrollment{
		ID:          uuid.New(),
		Email:       email,
		Name:        name,
		CourseTitle: courseTitle,
		EnrolledAt:  time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Enrollment{}).
			Where("course_title = ? AND email = ?", courseTitle, email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEnrollment
		}
		return tx.Create(enrollment).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The unique index caught a race the pre-check did not see.
		err = ErrDuplicateEnrollment
	}
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *sqlStore) EnrollmentStats(ctx context.Context) (*domain.EnrollmentStats, error) {
	stats := &domain.EnrollmentStats{
		EnrollmentsByCourse: make([]domain.CourseEnrollmentCount, 0),
	}
	if err := s.db.WithContext(ctx).
		Model(&domain.Enrollment{}).
		Count(&stats.TotalEnrollments).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Model(&domain.Enrollment{}).
		Distinct("email").
		Count(&stats.UniqueUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Model(&domain.Enrollment{}).
		Select("course_title, COUNT(*) AS count").
		Group("course_title").
		Order("count DESC, course_title ASC").
		Scan(&stats.EnrollmentsByCourse).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *sqlStore) ListContactSubmissions(ctx context.Context) ([]*domain.ContactSubmission, error) {
	results := make([]*domain.ContactSubmission, 0)
	if err := s.db.WithContext(ctx).
		Order("submitted_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *sqlStore) InsertContactSubmission(ctx context.Context, name, email, subject, message string) (*domain.ContactSubmission, error) {
	submission := &domain.ContactSubmission{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		Subject:     subject,
		Message:     message,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(submission).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *sqlStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
