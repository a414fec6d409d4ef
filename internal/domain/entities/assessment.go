package entities

import (
	"time"

	"github.com/google/uuid"
)

// Assessment is one evaluation snapshot for an organization. All evidence
// rows anchor to the snapshot with the most recent AssessmentDate.
type Assessment struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	AssessmentDate time.Time `json:"assessment_date" gorm:"not null;index"`

	// OverallScore is the overall maturity on the 0-10 scale.
	OverallScore float64 `json:"overall_score" gorm:"column:overall_maturity"`

	// Legacy four-axis snapshot scores, 0-10 each.
	TechnicalScore  float64 `json:"technical_score"`
	HumanScore      float64 `json:"human_score"`
	BusinessScore   float64 `json:"business_score"`
	AIAdoptionScore float64 `json:"ai_adoption_score" gorm:"column:ai_adoption_score"`

	ConfidenceLevel float64  `json:"confidence_level,omitempty"`
	IndustryAverage *float64 `json:"industry_average,omitempty"`
	Percentile      *float64 `json:"percentile,omitempty"`
	DataSource      string   `json:"data_source,omitempty" gorm:"type:varchar(50)"`
	TranscriptCount int      `json:"transcript_count,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Assessment
func (Assessment) TableName() string {
	return "organization_assessments"
}

// ExecutiveSummary is the free-text narrative attached to one assessment.
type ExecutiveSummary struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AssessmentID uuid.UUID `json:"assessment_id" gorm:"type:uuid;not null;uniqueIndex"`
	Summary      string    `json:"summary" gorm:"column:executive_summary;type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for ExecutiveSummary
func (ExecutiveSummary) TableName() string {
	return "executive_summaries"
}
