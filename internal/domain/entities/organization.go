package entities

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents a tenant of the platform
type Organization struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Industry  *string   `json:"industry,omitempty" gorm:"type:varchar(100)"`
	Website   string    `json:"website,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
