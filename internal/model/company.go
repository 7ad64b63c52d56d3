package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanySize buckets a company by headcount.
type CompanySize string

const (
	CompanySizeStartup    CompanySize = "startup"
	CompanySizeSmall      CompanySize = "small"
	CompanySizeMedium     CompanySize = "medium"
	CompanySizeLarge      CompanySize = "large"
	CompanySizeEnterprise CompanySize = "enterprise"
)

// Company is an organization posting jobs, owned by the creating user.
type Company struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string         `json:"name" gorm:"size:255;not null;index"`
	Description string         `json:"description" gorm:"type:text"`
	Website     string         `json:"website" gorm:"size:512"`
	Industry    string         `json:"industry" gorm:"size:255"`
	Size        CompanySize    `json:"size" gorm:"type:varchar(20)"`
	Location    string         `json:"location" gorm:"size:255"`
	LogoURL     string         `json:"logo_url" gorm:"size:512"`
	CreatedByID uuid.UUID      `json:"created_by_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations. Deleting a company cascades to its jobs.
	CreatedBy User  `json:"-" gorm:"foreignKey:CreatedByID"`
	Jobs      []Job `json:"jobs,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
