package entities

import (
	"time"

	"github.com/google/uuid"
)

// GapSource is one evidence item inside a reality gap's JSONB lists.
type GapSource struct {
	Type       string  `json:"type"`
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence"`
}

// RealityGap records the discrepancy between leadership perception and
// evidence-derived reality for one dimension. Both LeadershipPerception and
// ActualEvidence are on the 0-10 scale; GapSize may be stored by the
// ingestion pipeline or left at zero, in which case it is derived from the
// two operands.
type RealityGap struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	Dimension      string    `json:"dimension" gorm:"type:varchar(50)"`

	LeadershipPerception float64 `json:"leadership_perception"`
	ActualEvidence       float64 `json:"actual_evidence"`
	GapSize              float64 `json:"gap_size"`

	SupportingEvidenceRaw    []byte `json:"-" gorm:"column:supporting_evidence;type:jsonb"`
	ContradictingEvidenceRaw []byte `json:"-" gorm:"column:contradicting_evidence;type:jsonb"`

	// Populated from the raw JSONB columns by the repository.
	SupportingEvidence    []GapSource `json:"supporting_evidence" gorm:"-"`
	ContradictingEvidence []GapSource `json:"contradicting_evidence" gorm:"-"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for RealityGap
func (RealityGap) TableName() string {
	return "reality_gaps"
}
