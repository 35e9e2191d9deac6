package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/brightforge/academy-backend/internal/domain"
	"github.com/brightforge/academy-backend/internal/platform/logger"
)

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("init logger: %v", err)
	}
	return log
}

func newFileTestStore(tb testing.TB) Store {
	tb.Helper()
	return NewFileStore(tb.TempDir(), testLogger(tb))
}

func newSQLTestStore(tb testing.TB) (Store, *gorm.DB) {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Enrollment{}, &domain.ContactSubmission{}); err != nil {
		tb.Fatalf("auto migrate: %v", err)
	}
	return NewSQLStore(db, testLogger(tb)), db
}

func enrollmentAt(tb testing.TB, ts time.Time) *domain.Enrollment {
	tb.Helper()
	return &domain.Enrollment{
		ID:          uuid.New(),
		Email:       "sort@example.com",
		Name:        "Sort",
		CourseTitle: "Sorting",
		EnrolledAt:  ts,
	}
}

func TestSortEnrollmentsDesc(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	oldest := enrollmentAt(t, base.Add(-48*time.Hour))
	middle := enrollmentAt(t, base.Add(-time.Hour))
	newest := enrollmentAt(t, base)

	list := []*domain.Enrollment{oldest, newest, middle}
	sortEnrollmentsDesc(list)

	want := []*domain.Enrollment{newest, middle, oldest}
	for i := range want {
		if list[i].ID != want[i].ID {
			t.Fatalf("position %d: got %s want %s", i, list[i].EnrolledAt, want[i].EnrolledAt)
		}
	}
}

func TestSortCourseCountsDesc(t *testing.T) {
	counts := []domain.CourseEnrollmentCount{
		{CourseTitle: "Zebra", Count: 2},
		{CourseTitle: "Intro", Count: 5},
		{CourseTitle: "Apple", Count: 2},
	}
	sortCourseCountsDesc(counts)

	wantTitles := []string{"Intro", "Apple", "Zebra"}
	for i, title := range wantTitles {
		if counts[i].CourseTitle != title {
			t.Fatalf("position %d: got %q want %q", i, counts[i].CourseTitle, title)
		}
	}
}
