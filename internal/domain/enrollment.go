package domain

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment records a single (email, course) registration. Records are
// immutable once written; there is no update or delete path.
type Enrollment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"column:email;not null;uniqueIndex:idx_enrollment_email_course" json:"email"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	CourseTitle string    `gorm:"column:course_title;not null;uniqueIndex:idx_enrollment_email_course" json:"courseTitle"`
	EnrolledAt  time.Time `gorm:"column:enrolled_at;not null;index" json:"enrolledAt"`
}

func (Enrollment) TableName() string { return "enrollment" }

// CourseEnrollmentCount is one row of the per-course aggregate.
type CourseEnrollmentCount struct {
	CourseTitle string `gorm:"column:course_title" json:"courseTitle"`
	Count       int64  `gorm:"column:count" json:"count"`
}

// EnrollmentStats aggregates the enrollment collection. EnrollmentsByCourse
// is sorted by count descending, course title ascending on ties.
type EnrollmentStats struct {
	TotalEnrollments    int64                   `json:"totalEnrollments"`
	UniqueUsers         int64                   `json:"uniqueUsers"`
	EnrollmentsByCourse []CourseEnrollmentCount `json:"enrollmentsByCourse"`
}
