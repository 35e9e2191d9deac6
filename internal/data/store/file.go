package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brightforge/academy-backend/internal/domain"
	"github.com/brightforge/academy-backend/internal/platform/logger"
)

const (
	enrollmentsFile = "enrollments.json"
	submissionsFile = "contact_submissions.json"
)

type enrollmentDocument struct {
	Enrollments []*domain.Enrollment `json:"enrollments"`
}

type submissionDocument struct {
	ContactSubmissions []*domain.ContactSubmission `json:"contactSubmissions"`
}

// fileStore keeps both collections in memory and rewrites the backing JSON
// document on every mutation, via a temp file and atomic rename so an
// interrupted write never truncates existing data. A single mutex
// serializes mutations, which also closes the check-then-insert race.
type fileStore struct {
	dir string
	log *logger.Logger

	mu          sync.Mutex
	initialized bool
	enrollments []*domain.Enrollment
	submissions []*domain.ContactSubmission
}

func NewFileStore(dir string, baseLog *logger.Logger) Store {
	return &fileStore{dir: dir, log: baseLog.With("store", "FileStore")}
}

func (s *fileStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initLocked()
}

func (s *fileStore) initLocked() error {
	if s.initialized {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	var enrollmentDoc enrollmentDocument
	s.loadDocument(enrollmentsFile, &enrollmentDoc)
	s.enrollments = enrollmentDoc.Enrollments

	var submissionDoc submissionDocument
	s.loadDocument(submissionsFile, &submissionDoc)
	s.submissions = submissionDoc.ContactSubmissions

	s.initialized = true
	s.log.Info("File store initialized",
		"dir", s.dir,
		"enrollments", len(s.enrollments),
		"contact_submissions", len(s.submissions),
	)
	return nil
}

// loadDocument leaves doc zero-valued when the file is missing, unreadable
// or corrupt; the store starts empty rather than aborting.
func (s *fileStore) loadDocument(name string, doc any) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		s.log.Warn("Could not read store file, starting empty", "file", name, "error", err)
		return
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		s.log.Warn("Could not parse store file, starting empty", "file", name, "error", err)
	}
}

func (s *fileStore) ListEnrollments(ctx context.Context) ([]*domain.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(); err != nil {
		return nil, err
	}
	results := make([]*domain.Enrollment, len(s.enrollments))
	copy(results, s.enrollments)
	sortEnrollmentsDesc(results)
	return results, nil
}

func (s *fileStore) FindEnrollment(ctx context.Context, courseTitle, email string) (*domain.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(); err != nil {
		return nil, err
	}
	for _, e := range s.enrollments {
		if e.CourseTitle == courseTitle && e.Email == email {
			return e, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fileStore) InsertEnrollment(ctx context.Context, email, name, courseTitle string) (*domain.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(); err != nil {
		return nil, err
	}
	for _, e := range s.enrollments {
		if e.CourseTitle == courseTitle && e.Email == email {
			return nil, ErrDuplicateEnrollment
		}
	}
	enrollment := &domain.Enrollment{
		ID:          uuid.New(),
		Email:       email,
		Name:        name,
		CourseTitle: courseTitle,
		EnrolledAt:  time.Now().UTC(),
	}
	next := make([]*domain.Enrollment, 0, len(s.enrollments)+1)
	next = append(next, s.enrollments...)
	next = append(next, enrollment)
	if err := s.writeDocumentLocked(enrollmentsFile, enrollmentDocument{Enrollments: next}); err != nil {
		return nil, fmt.Errorf("persist enrollments: %w", err)
	}
	s.enrollments = next
	return enrollment, nil
}

func (s *fileStore) EnrollmentStats(ctx context.Context) (*domain.EnrollmentStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(); err != nil {
		return nil, err
	}
	emails := make(map[string]struct{}, len(s.enrollments))
	perCourse := make(map[string]int64)
	for _, e := range s.enrollments {
		emails[e.Email] = struct{}{}
		perCourse[e.CourseTitle]++
	}
	byCourse := make([]domain.CourseEnrollmentCount, 0, len(perCourse))
	for title, count := range perCourse {
		byCourse = append(byCourse, domain.CourseEnrollmentCount{CourseTitle: title, Count: count})
	}
	sortCourseCountsDesc(byCourse)
	return &domain.EnrollmentStats{
		TotalEnrollments:    int64(len(s.enrollments)),
		UniqueUsers:         int64(len(emails)),
		EnrollmentsByCourse: byCourse,
	}, nil
}

func (s *fileStore) ListContactSubmissions(ctx context.Context) ([]*domain.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(); err != nil {
		return nil, err
	}
	results := make([]*domain.ContactSubmission, len(s.submissions))
	copy(results, s.submissions)
	sortSubmissionsDesc(results)
	return results, nil
}

func (s *fileStore) InsertContactSubmission(ctx context.Context, name, email, subject, message string) (*domain.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.initLocked(); err != nil {
		return nil, err
	}
	submission := &domain.ContactSubmission{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		Subject:     subject,
		Message:     message,
		SubmittedAt: time.Now().UTC(),
	}
	next := make([]*domain.ContactSubmission, 0, len(s.submissions)+1)
	next = append(next, s.submissions...)
	next = append(next, submission)
	if err := s.writeDocumentLocked(submissionsFile, submissionDocument{ContactSubmissions: next}); err != nil {
		return nil, fmt.Errorf("persist contact submissions: %w", err)
	}
	s.submissions = next
	return submission, nil
}

func (s *fileStore) writeDocumentLocked(name string, doc any) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, "."+name+"-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (s *fileStore) Close() error {
	return nil
}
