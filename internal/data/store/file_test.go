package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestFileStoreInsertAndFind(t *testing.T) {
	ctx := context.Background()
	s := newFileTestStore(t)
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	created, err := s.InsertEnrollment(ctx, "a@x.com", "Ann", "Intro")
	if err != nil {
		t.Fatalf("InsertEnrollment: %v", err)
	}

	found, err := s.FindEnrollment(ctx, "Intro", "a@x.com")
	if err != nil {
		t.Fatalf("FindEnrollment: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("FindEnrollment returned %s, want %s", found.ID, created.ID)
	}

	if _, err := s.FindEnrollment(ctx, "Intro", "b@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("FindEnrollment unknown email: err=%v, want ErrNotFound", err)
	}
}

func TestFileStoreDuplicateInsert(t *testing.T) {
	ctx := context.Background()
	s := newFileTestStore(t)

	if _, err := s.InsertEnrollment(ctx, "a@x.com", "Ann", "Intro"); err != nil {
		t.Fatalf("first InsertEnrollment: %v", err)
	}
	if _, err := s.InsertEnrollment(ctx, "a@x.com", "Ann", "Intro"); !errors.Is(err, ErrDuplicateEnrollment) {
		t.Fatalf("second InsertEnrollment: err=%v, want ErrDuplicateEnrollment", err)
	}

	list, err := s.ListEnrollments(ctx)
	if err != nil {
		t.Fatalf("ListEnrollments: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("store size changed on duplicate: len=%d, want 1", len(list))
	}
}

func TestFileStoreListOrder(t *testing.T) {
	ctx := context.Background()
	s := newFileTestStore(t)

	pairs := [][2]string{
		{"a@x.com", "Intro"},
		{"b@x.com", "Intro"},
		{"a@x.com", "Advanced"},
	}
	for _, p := range pairs {
		if _, err := s.InsertEnrollment(ctx, p[0], "User", p[1]); err != nil {
			t.Fatalf("InsertEnrollment(%s, %s): %v", p[0], p[1], err)
		}
	}

	list, err := s.ListEnrollments(ctx)
	if err != nil {
		t.Fatalf("ListEnrollments: %v", err)
	}
	if len(list) != len(pairs) {
		t.Fatalf("len=%d, want %d", len(list), len(pairs))
	}
	for i := 1; i < len(list); i++ {
		if list[i].EnrolledAt.After(list[i-1].EnrolledAt) {
			t.Fatalf("list not sorted descending at index %d", i)
		}
	}
}

func TestFileStoreStats(t *testing.T) {
	ctx := context.Background()
	s := newFileTestStore(t)

	inserts := []struct{ email, course string }{
		{"one@x.com", "A"},
		{"two@x.com", "A"},
		{"three@x.com", "A"},
		{"one@x.com", "B"},
	}
	for _, in := range inserts {
		if _, err := s.InsertEnrollment(ctx, in.email, "User", in.course); err != nil {
			t.Fatalf("InsertEnrollment(%s, %s): %v", in.email, in.course, err)
		}
	}

	stats, err := s.EnrollmentStats(ctx)
	if err != nil {
		t.Fatalf("EnrollmentStats: %v", err)
	}
	if stats.TotalEnrollments != 4 {
		t.Fatalf("TotalEnrollments=%d, want 4", stats.TotalEnrollments)
	}
	if stats.UniqueUsers != 3 {
		t.Fatalf("UniqueUsers=%d, want 3", stats.UniqueUsers)
	}
	if len(stats.EnrollmentsByCourse) != 2 {
		t.Fatalf("EnrollmentsByCourse len=%d, want 2", len(stats.EnrollmentsByCourse))
	}
	if stats.EnrollmentsByCourse[0].CourseTitle != "A" || stats.EnrollmentsByCourse[0].Count != 3 {
		t.Fatalf("first course=%+v, want A/3", stats.EnrollmentsByCourse[0])
	}
	if stats.EnrollmentsByCourse[1].CourseTitle != "B" || stats.EnrollmentsByCourse[1].Count != 1 {
		t.Fatalf("second course=%+v, want B/1", stats.EnrollmentsByCourse[1])
	}
}

func TestFileStoreContactSubmissions(t *testing.T) {
	ctx := context.Background()
	s := newFileTestStore(t)

	// Identical submissions are all accepted; no uniqueness check applies.
	for i := 0; i < 3; i++ {
		if _, err := s.InsertContactSubmission(ctx, "Ann", "a@x.com", "Hello", "Same message"); err != nil {
			t.Fatalf("InsertContactSubmission %d: %v", i, err)
		}
	}

	list, err := s.ListContactSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListContactSubmissions: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len=%d, want 3", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].SubmittedAt.After(list[i-1].SubmittedAt) {
			t.Fatalf("list not sorted descending at index %d", i)
		}
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	log := testLogger(t)

	s := NewFileStore(dir, log)
	if _, err := s.InsertEnrollment(ctx, "a@x.com", "Ann", "Intro"); err != nil {
		t.Fatalf("InsertEnrollment: %v", err)
	}
	if _, err := s.InsertContactSubmission(ctx, "Ann", "a@x.com", "Hi", "Message"); err != nil {
		t.Fatalf("InsertContactSubmission: %v", err)
	}

	// Persisted layout: one object with one named array field per document.
	raw, err := os.ReadFile(filepath.Join(dir, enrollmentsFile))
	if err != nil {
		t.Fatalf("read enrollments document: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("parse enrollments document: %v", err)
	}
	if _, ok := doc["enrollments"]; !ok || len(doc) != 1 {
		t.Fatalf("unexpected enrollments document shape: %v", doc)
	}

	reopened := NewFileStore(dir, log)
	if err := reopened.Init(ctx); err != nil {
		t.Fatalf("Init reopened: %v", err)
	}
	if err := reopened.Init(ctx); err != nil {
		t.Fatalf("second Init: %v", err)
	}

	enrollments, err := reopened.ListEnrollments(ctx)
	if err != nil {
		t.Fatalf("ListEnrollments reopened: %v", err)
	}
	if len(enrollments) != 1 || enrollments[0].Email != "a@x.com" {
		t.Fatalf("reopened enrollments=%v, want the persisted record", enrollments)
	}
	submissions, err := reopened.ListContactSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListContactSubmissions reopened: %v", err)
	}
	if len(submissions) != 1 {
		t.Fatalf("reopened submissions len=%d, want 1", len(submissions))
	}
}

func TestFileStoreCorruptDocumentStartsEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, enrollmentsFile), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt document: %v", err)
	}

	s := NewFileStore(dir, testLogger(t))
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init with corrupt document: %v", err)
	}

	list, err := s.ListEnrollments(ctx)
	if err != nil {
		t.Fatalf("ListEnrollments: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("len=%d, want 0", len(list))
	}

	// Store stays usable after the fallback.
	if _, err := s.InsertEnrollment(ctx, "a@x.com", "Ann", "Intro"); err != nil {
		t.Fatalf("InsertEnrollment after fallback: %v", err)
	}
}

func TestFileStoreConcurrentDuplicateInsert(t *testing.T) {
	ctx := context.Background()
	s := newFileTestStore(t)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.InsertEnrollment(ctx, "a@x.com", "Ann", "Intro")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrDuplicateEnrollment):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("successes=%d, want exactly 1", successes)
	}

	list, err := s.ListEnrollments(ctx)
	if err != nil {
		t.Fatalf("ListEnrollments: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len=%d, want 1", len(list))
	}
}
