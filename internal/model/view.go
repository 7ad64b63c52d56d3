package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileView is an append-only event recording a profile being viewed.
// ViewerID is nil for anonymous views.
type ProfileView struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ProfileID uuid.UUID  `json:"profile_id" gorm:"type:char(36);not null;index"`
	ViewerID  *uuid.UUID `json:"viewer_id,omitempty" gorm:"type:char(36)"`
	ViewedAt  time.Time  `json:"viewed_at" gorm:"autoCreateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (v *ProfileView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// JobView is an append-only event recording a job posting being viewed.
type JobView struct {
	ID       uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	JobID    uuid.UUID  `json:"job_id" gorm:"type:char(36);not null;index"`
	ViewerID *uuid.UUID `json:"viewer_id,omitempty" gorm:"type:char(36)"`
	ViewedAt time.Time  `json:"viewed_at" gorm:"autoCreateTime"`
}

// BeforeCreate sets UUID before creating the record.
func (v *JobView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
