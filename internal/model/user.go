package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role classifies a user and gates which views and permissions apply.
type Role string

const (
	RoleConsultant Role = "consultant"
	RoleCompany    Role = "company"
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
)

// UserStatus represents the moderation lifecycle of a user account.
type UserStatus string

const (
	UserStatusPending       UserStatus = "pending"
	UserStatusEmailVerified UserStatus = "email_verified"
	UserStatusApproved      UserStatus = "approved"
	UserStatusRejected      UserStatus = "rejected"
	UserStatusSuspended     UserStatus = "suspended"
)

// User represents a registered account in the marketplace.
type User struct {
	ID            uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Email         string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName     string         `json:"first_name" gorm:"size:255"`
	LastName      string         `json:"last_name" gorm:"size:255"`
	Role          Role           `json:"role" gorm:"type:varchar(20);not null;default:'consultant';index"`
	Status        UserStatus     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	EmailVerified bool           `json:"email_verified" gorm:"default:false"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Profile   *Profile  `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Companies []Company `json:"companies,omitempty" gorm:"foreignKey:CreatedByID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
