package entities

import (
	"time"

	"github.com/google/uuid"
)

// AIRecommendation is one ranked improvement recommendation for an
// organization. Priority is not stored; it is derived from Timeframe and
// SortOrder at aggregation time.
type AIRecommendation struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`
	AssessmentID   *uuid.UUID `json:"assessment_id,omitempty" gorm:"type:uuid;index"`

	Title            string                  `json:"title" gorm:"type:varchar(500);not null"`
	Description      string                  `json:"description,omitempty" gorm:"type:text"`
	Rationale        string                  `json:"rationale,omitempty" gorm:"type:text"`
	Timeframe        RecommendationTimeframe `json:"timeframe" gorm:"type:varchar(20);default:'short_term'"`
	SortOrder        int                     `json:"sort_order" gorm:"default:99"`
	RelatedDimension string                  `json:"related_dimension,omitempty" gorm:"type:varchar(50)"`
	ExpectedImpact   string                  `json:"expected_impact,omitempty" gorm:"type:text"`
	EffortRequired   string                  `json:"effort_required,omitempty" gorm:"type:varchar(50)"`
	EstimatedCost    string                  `json:"estimated_cost_range,omitempty" gorm:"column:estimated_cost_range;type:varchar(100)"`
	Status           string                  `json:"status,omitempty" gorm:"type:varchar(20);default:'pending'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for AIRecommendation
func (AIRecommendation) TableName() string {
	return "ai_recommendations"
}
