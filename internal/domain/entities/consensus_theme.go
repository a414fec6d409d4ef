package entities

import (
	"time"

	"github.com/google/uuid"
)

// ThemeQuote is one quote inside a theme's JSONB quote list.
type ThemeQuote struct {
	Text      string  `json:"text"`
	Speaker   string  `json:"speaker"`
	Role      string  `json:"role"`
	Sentiment float64 `json:"sentiment"`
}

// ConsensusTheme is a recurring topic surfaced across evidence sources.
// Sentiment is numeric in [-1, 1]; the categorical label is derived at
// aggregation time.
type ConsensusTheme struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	ThemeName      string    `json:"theme_name" gorm:"type:varchar(255);not null"`
	Description    string    `json:"description" gorm:"type:text"`
	Frequency      int       `json:"frequency"`
	Sentiment      float64   `json:"sentiment"`
	Interviewees   int       `json:"interviewees"`

	QuotesRaw []byte       `json:"-" gorm:"column:quotes;type:jsonb"`
	Quotes    []ThemeQuote `json:"quotes" gorm:"-"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for ConsensusTheme
func (ConsensusTheme) TableName() string {
	return "consensus_themes"
}
