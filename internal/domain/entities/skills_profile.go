package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ToolUsage is one tool inside a profile's tools_used JSONB list. The
// ingestion pipeline writes either a plain tool name or an object with a
// proficiency, so both encodings unmarshal into this type.
type ToolUsage struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// UnmarshalJSON accepts both "ToolName" and {"name": ..., "proficiency": ...}.
func (t *ToolUsage) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		t.Name = name
		t.Proficiency = ""
		return nil
	}
	type alias ToolUsage
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = ToolUsage(a)
	return nil
}

// ProfileEvidence is one evidence item inside a profile's JSONB list.
type ProfileEvidence struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// SkillsProfile is one observed person's AI skill signals.
type SkillsProfile struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`
	AssessmentID   *uuid.UUID `json:"assessment_id,omitempty" gorm:"type:uuid;index"`
	UserID         *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid"`

	PersonName   string  `json:"person_name" gorm:"type:varchar(255)"`
	Title        string  `json:"title" gorm:"type:varchar(255)"`
	Department   string  `json:"department" gorm:"type:varchar(255)"`
	AISkillLevel string  `json:"ai_skill_level" gorm:"column:ai_skill_level;type:varchar(50)"`
	AISkillScore float64 `json:"ai_skill_score" gorm:"column:ai_skill_score"`

	ToolsUsedRaw           []byte `json:"-" gorm:"column:tools_used;type:jsonb"`
	EvidenceRaw            []byte `json:"-" gorm:"column:evidence;type:jsonb"`
	RecommendedTrainingRaw []byte `json:"-" gorm:"column:recommended_training;type:jsonb"`

	// Populated from the raw JSONB columns by the repository.
	ToolsUsed           []ToolUsage       `json:"tools_used" gorm:"-"`
	Evidence            []ProfileEvidence `json:"evidence" gorm:"-"`
	RecommendedTraining []string          `json:"recommended_training" gorm:"-"`

	IsChampion      bool   `json:"is_champion" gorm:"default:false"`
	ChampionReason  string `json:"champion_reason,omitempty" gorm:"type:text"`
	GrowthPotential string `json:"growth_potential,omitempty" gorm:"type:varchar(50)"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for SkillsProfile
func (SkillsProfile) TableName() string {
	return "skills_profiles"
}
