package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Availability represents how much of a consultant's time is on offer.
type Availability string

const (
	AvailabilityAvailable    Availability = "available"
	AvailabilityBusy         Availability = "busy"
	AvailabilityNotAvailable Availability = "not_available"
)

// Profile is a consultant's public professional profile. One per user.
type Profile struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID       `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	Title           string          `json:"title" gorm:"size:255;not null"`
	Bio             string          `json:"bio" gorm:"type:text"`
	Location        string          `json:"location" gorm:"size:255"`
	Skills          StringList      `json:"skills" gorm:"type:text"`
	Experience      int             `json:"experience"` // years
	HourlyRate      decimal.Decimal `json:"hourly_rate" gorm:"type:decimal(10,2);default:0"`
	Availability    Availability    `json:"availability" gorm:"type:varchar(20)"`
	Certifications  StringList      `json:"certifications" gorm:"type:text"`
	PortfolioURL    string          `json:"portfolio_url" gorm:"size:512"`
	LinkedinURL     string          `json:"linkedin_url" gorm:"size:512"`
	GithubURL       string          `json:"github_url" gorm:"size:512"`
	IsPublic        bool            `json:"is_public" gorm:"default:true"`
	CompletionScore int             `json:"completion_score" gorm:"default:0"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	User         User          `json:"-" gorm:"foreignKey:UserID"`
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Views        []ProfileView `json:"-" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
