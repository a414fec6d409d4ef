package entities

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisEntity is a tool, concept or process extracted from assessment
// evidence, with aggregate frequency and sentiment.
type AnalysisEntity struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AssessmentID   uuid.UUID     `json:"assessment_id" gorm:"type:uuid;not null;index"`
	Name           string        `json:"name" gorm:"type:varchar(255);not null"`
	Type           EntityType    `json:"type" gorm:"type:varchar(50);not null"`
	Frequency      int           `json:"frequency"`
	Sentiment      SentimentType `json:"sentiment" gorm:"type:varchar(20)"`
	SentimentScore float64       `json:"sentiment_score"`
	FirstMentioned time.Time     `json:"first_mentioned"`
	LastMentioned  time.Time     `json:"last_mentioned"`

	Mentions      []EntityMention      `json:"mentions,omitempty" gorm:"foreignKey:EntityID"`
	Relationships []EntityRelationship `json:"relationships,omitempty" gorm:"foreignKey:EntityID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for AnalysisEntity
func (AnalysisEntity) TableName() string {
	return "organization_analysis_entities"
}

// EntityMention is one contextual mention of an analysis entity.
type EntityMention struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EntityID  uuid.UUID     `json:"entity_id" gorm:"type:uuid;not null;index"`
	Context   string        `json:"context" gorm:"type:text"`
	Speaker   string        `json:"speaker" gorm:"type:varchar(255)"`
	Sentiment SentimentType `json:"sentiment" gorm:"type:varchar(20)"`
	Timestamp time.Time     `json:"timestamp"`
}

// TableName specifies the table name for EntityMention
func (EntityMention) TableName() string {
	return "organization_entity_mentions"
}

// EntityRelationship is a weighted edge between two analysis entities.
type EntityRelationship struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EntityID         uuid.UUID `json:"entity_id" gorm:"type:uuid;not null;index"`
	RelatedEntityID  uuid.UUID `json:"related_entity_id" gorm:"type:uuid;not null;index"`
	RelationshipType string    `json:"relationship_type" gorm:"type:varchar(50)"`
	Strength         float64   `json:"strength"`
}

// TableName specifies the table name for EntityRelationship
func (EntityRelationship) TableName() string {
	return "organization_entity_relationships"
}
