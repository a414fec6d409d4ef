package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents a platform role
type UserRole string

const (
	RoleMember     UserRole = "member"
	RoleOrgAdmin   UserRole = "org_admin"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super_admin"
)

// User represents an authenticated platform user
type User struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email          string     `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName    string     `json:"display_name" gorm:"type:varchar(255)"`
	Role           UserRole   `json:"role" gorm:"type:varchar(50);default:'member'"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// IsPlatformAdmin reports whether the user can read any organization.
func (u *User) IsPlatformAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
