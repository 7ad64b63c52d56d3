package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationStatus is the review lifecycle of an application. The lowercase
// set below is canonical; client layers must not introduce case variants.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationAccepted  ApplicationStatus = "accepted"
)

// Application links a profile to a job. (job_id, profile_id) is unique so a
// consultant cannot apply to the same job twice.
type Application struct {
	ID          uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	JobID       uuid.UUID         `json:"job_id" gorm:"type:char(36);not null;uniqueIndex:idx_job_profile"`
	ProfileID   uuid.UUID         `json:"profile_id" gorm:"type:char(36);not null;uniqueIndex:idx_job_profile"`
	CoverLetter string            `json:"cover_letter" gorm:"type:text"`
	Status      ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	AppliedAt   time.Time         `json:"applied_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `json:"-" gorm:"index"`

	// Relations
	Job     Job     `json:"job,omitempty" gorm:"foreignKey:JobID"`
	Profile Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
