package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a free-form message from the contact form. No
// uniqueness constraint applies; submissions are immutable and never deleted.
type ContactSubmission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Email       string    `gorm:"column:email;not null" json:"email"`
	Subject     string    `gorm:"column:subject;not null" json:"subject"`
	Message     string    `gorm:"column:message;not null" json:"message"`
	SubmittedAt time.Time `gorm:"column:submitted_at;not null;index" json:"submittedAt"`
}

func (ContactSubmission) TableName() string { return "contact_submission" }
