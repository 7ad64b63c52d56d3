package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmploymentType is the engagement model of a job posting.
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentContract EmploymentType = "contract"
	EmploymentRemote   EmploymentType = "remote"
)

// ExperienceLevel buckets a job by seniority.
type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceExpert ExperienceLevel = "expert"
)

// SalaryType says what period a salary range covers.
type SalaryType string

const (
	SalaryYearly  SalaryType = "yearly"
	SalaryHourly  SalaryType = "hourly"
	SalaryDaily   SalaryType = "daily"
	SalaryProject SalaryType = "project"
)

// VerificationStatus is the administrative approval state of a job,
// independent of whether the poster keeps the job active.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// Job is a posting owned by a company. application_count and view_count are
// denormalized counters incremented by apply/view events.
type Job struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	CompanyID    uuid.UUID       `json:"company_id" gorm:"type:char(36);not null;index"`
	Title        string          `json:"title" gorm:"size:255;not null"`
	Description  string          `json:"description" gorm:"type:text;not null"`
	Requirements StringList      `json:"requirements" gorm:"type:text"`
	Skills       StringList      `json:"skills" gorm:"type:text"`
	Location     string          `json:"location" gorm:"size:255;index"`
	Type         EmploymentType  `json:"type" gorm:"type:varchar(20);not null"`
	Experience   ExperienceLevel `json:"experience_level" gorm:"column:experience_level;type:varchar(20)"`
	SalaryMin    int             `json:"salary_min"`
	SalaryMax    int             `json:"salary_max"`
	SalaryType   SalaryType      `json:"salary_type" gorm:"type:varchar(20)"`

	// Platform-specific narrative fields
	PlatformUsage      string     `json:"platform_usage" gorm:"type:text"`
	ProjectVision      string     `json:"project_vision" gorm:"type:text"`
	ProjectScope       string     `json:"project_scope" gorm:"type:text"`
	ProjectDuration    string     `json:"project_duration" gorm:"size:255"`
	PlatformComponents StringList `json:"platform_components" gorm:"type:text"`
	DataVolume         string     `json:"data_volume" gorm:"size:255"`

	// Team and decision makers
	KeyTeamMembers   StringList `json:"key_team_members" gorm:"type:text"`
	DecisionMakers   StringList `json:"decision_makers" gorm:"type:text"`
	TechnicalContact string     `json:"technical_contact" gorm:"size:255"`
	HiringManager    string     `json:"hiring_manager" gorm:"size:255"`

	// Verification sub-record
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"type:varchar(20);not null;default:'pending';index"`
	VerificationNotes  string             `json:"verification_notes" gorm:"type:text"`
	VerifiedByID       *uuid.UUID         `json:"verified_by_id,omitempty" gorm:"type:char(36)"`
	VerifiedAt         *time.Time         `json:"verified_at,omitempty"`

	IsActive         bool           `json:"is_active" gorm:"default:true;index"`
	ApplicationCount int            `json:"application_count" gorm:"default:0"`
	ViewCount        int            `json:"view_count" gorm:"default:0"`
	PostedByID       uuid.UUID      `json:"posted_by_id" gorm:"type:char(36);not null;index"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations. Deleting a job cascades to its applications and view events.
	Company      Company       `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	PostedBy     User          `json:"-" gorm:"foreignKey:PostedByID"`
	Applications []Application `json:"-" gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	Views        []JobView     `json:"-" gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// PubliclyVisible reports whether the job appears in public listings.
// A job is listed iff the poster keeps it active and an admin approved it.
func (j *Job) PubliclyVisible() bool {
	return j.IsActive && j.VerificationStatus == VerificationApproved
}
