package entities

import (
	"time"

	"github.com/google/uuid"
)

// DimensionScore is one dimension's score within an assessment snapshot.
type DimensionScore struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AssessmentID uuid.UUID         `json:"assessment_id" gorm:"type:uuid;not null;index"`
	Dimension    DimensionCategory `json:"dimension" gorm:"type:varchar(50);not null"`
	Score        float64           `json:"score" gorm:"not null"`
	MaxScore     float64           `json:"max_score" gorm:"not null"`
	Weight       float64           `json:"weight" gorm:"default:1"`

	Evidence      []DimensionEvidence `json:"evidence,omitempty" gorm:"foreignKey:DimensionScoreID"`
	Subdimensions []SubdimensionScore `json:"subdimensions,omitempty" gorm:"foreignKey:DimensionScoreID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for DimensionScore
func (DimensionScore) TableName() string {
	return "organization_dimension_scores"
}

// DimensionEvidence is a quoted data point supporting a dimension score.
type DimensionEvidence struct {
	ID               uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DimensionScoreID uuid.UUID     `json:"dimension_score_id" gorm:"type:uuid;not null;index"`
	Source           string        `json:"source" gorm:"type:varchar(50)"`
	Quote            string        `json:"quote" gorm:"type:text"`
	Sentiment        SentimentType `json:"sentiment" gorm:"type:varchar(20)"`
	Confidence       float64       `json:"confidence"`
	Timestamp        time.Time     `json:"timestamp"`
}

// TableName specifies the table name for DimensionEvidence
func (DimensionEvidence) TableName() string {
	return "organization_dimension_evidence"
}

// SubdimensionScore is a named sub-score under one dimension.
type SubdimensionScore struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DimensionScoreID uuid.UUID `json:"dimension_score_id" gorm:"type:uuid;not null;index"`
	Name             string    `json:"name" gorm:"type:varchar(255);not null"`
	Score            float64   `json:"score"`
	MaxScore         float64   `json:"max_score"`
}

// TableName specifies the table name for SubdimensionScore
func (SubdimensionScore) TableName() string {
	return "organization_subdimension_scores"
}
