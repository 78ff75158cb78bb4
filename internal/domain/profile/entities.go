package profile

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already registered")
	ErrRoleMismatch  = errors.New("action not allowed for this role")
	ErrInvalidRole   = errors.New("role must be founder, investor or reviewer")
)

type Role string

const (
	RoleFounder  Role = "founder"
	RoleInvestor Role = "investor"
	RoleReviewer Role = "reviewer"
)

// Role is assigned at signup and never changes; a mismatch at a role-scoped
// action is an authorization failure, not a correction.
type Profile struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID      string    `gorm:"size:32;uniqueIndex:ux_profiles_user_id" json:"user_id"`
	FullName    string    `gorm:"size:255" json:"full_name"`
	Email       string    `gorm:"size:255" json:"email"`
	CompanyName string    `gorm:"size:255" json:"company_name"`
	Bio         string    `gorm:"type:text" json:"bio"`
	Role        Role      `gorm:"type:enum('founder','investor','reviewer');not null" json:"role"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
