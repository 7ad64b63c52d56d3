package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsultantStatus is the review lifecycle of a consultant registration.
type ConsultantStatus string

const (
	ConsultantPending  ConsultantStatus = "pending"
	ConsultantApproved ConsultantStatus = "approved"
	ConsultantRejected ConsultantStatus = "rejected"
	ConsultantDraft    ConsultantStatus = "draft"
)

// Specialization is the practice area a consultant registers under.
type Specialization string

const (
	SpecializationDataEngineering  Specialization = "data-engineering"
	SpecializationMachineLearning  Specialization = "machine-learning"
	SpecializationDataArchitecture Specialization = "data-architecture"
	SpecializationAnalytics        Specialization = "analytics"
	SpecializationMigration        Specialization = "migration"
)

// Consultant is the fuller-featured registration entity used by the
// specialized sign-up flow, distinct from Profile.
type Consultant struct {
	ID              uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName       string           `json:"first_name" gorm:"size:255;not null"`
	LastName        string           `json:"last_name" gorm:"size:255;not null"`
	Handle          string           `json:"handle" gorm:"uniqueIndex;size:30;not null"`
	Email           string           `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone           string           `json:"phone" gorm:"size:50"`
	Linkedin        string           `json:"linkedin" gorm:"size:512"`
	Location        string           `json:"location" gorm:"size:255"`
	CVPath          string           `json:"cv_path" gorm:"size:512"`
	YearsExperience string           `json:"years_experience" gorm:"size:10;not null"` // 1-2, 3-5, 6-10, 10+
	Specialization  Specialization   `json:"specialization" gorm:"type:varchar(30);not null"`
	HourlyRateRange string           `json:"hourly_rate_range" gorm:"size:10"` // 50-75 .. 200+
	Availability    string           `json:"availability" gorm:"size:20"`
	Certifications  StringList       `json:"certifications" gorm:"type:text"`
	Skills          StringList       `json:"skills" gorm:"type:text;not null"`
	Industries      StringList       `json:"industries" gorm:"type:text"`
	Bio             string           `json:"bio" gorm:"type:text;not null"`
	Status          ConsultantStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `json:"-" gorm:"index"`

	// Relations. Deleting a consultant cascades to their references.
	References []ConsultantReference `json:"references,omitempty" gorm:"foreignKey:ConsultantID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Consultant) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ConsultantReference is a past project reference attached to a consultant
// registration, with explicit consent to contact the referee.
type ConsultantReference struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ConsultantID       uuid.UUID  `json:"consultant_id" gorm:"type:char(36);not null;index"`
	ProjectName        string     `json:"project_name" gorm:"size:255;not null"`
	ProjectDescription string     `json:"project_description" gorm:"type:text"`
	Duration           string     `json:"duration" gorm:"size:255"`
	ManagerName        string     `json:"manager_name" gorm:"size:255;not null"`
	ManagerEmail       string     `json:"manager_email" gorm:"size:255;not null"`
	Technologies       StringList `json:"technologies" gorm:"type:text"`
	PermissionToContact bool      `json:"permission_to_contact" gorm:"default:false"`
	CreatedAt          time.Time  `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *ConsultantReference) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
