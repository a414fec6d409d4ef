package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

// AssessmentRepository defines the interface for assessment analytics data
// access. Finders that look up a single record return (nil, nil) when the
// record does not exist; list finders return empty slices.
type AssessmentRepository interface {
	// LatestAssessment retrieves the most recent assessment for an organization
	LatestAssessment(ctx context.Context, orgID uuid.UUID) (*entities.Assessment, error)

	// DimensionScores retrieves dimension scores for an assessment
	DimensionScores(ctx context.Context, assessmentID uuid.UUID, filters DimensionScoreFilters) ([]*entities.DimensionScore, error)

	// RealityGaps retrieves all reality gaps for an organization
	RealityGaps(ctx context.Context, orgID uuid.UUID) ([]*entities.RealityGap, error)

	// TopRealityGaps retrieves the largest reality gaps for an organization
	TopRealityGaps(ctx context.Context, orgID uuid.UUID, limit int) ([]*entities.RealityGap, error)

	// ConsensusThemes retrieves consensus themes for an organization,
	// most frequent first
	ConsensusThemes(ctx context.Context, orgID uuid.UUID, limit int) ([]*entities.ConsensusTheme, error)

	// AnalysisEntities retrieves extracted entities for an assessment with
	// mentions and relationships preloaded
	AnalysisEntities(ctx context.Context, assessmentID uuid.UUID, filters EntityFilters) ([]*entities.AnalysisEntity, error)

	// EntityNames resolves entity IDs to display names in one query
	EntityNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)

	// SkillsProfiles retrieves skills profiles for an organization
	SkillsProfiles(ctx context.Context, orgID uuid.UUID, filters SkillsProfileFilters) ([]*entities.SkillsProfile, error)

	// CountSkillsProfiles counts all skills profiles for an organization
	CountSkillsProfiles(ctx context.Context, orgID uuid.UUID) (int64, error)

	// Recommendations retrieves recommendations for an organization ordered
	// by sort_order
	Recommendations(ctx context.Context, orgID uuid.UUID, filters RecommendationFilters) ([]*entities.AIRecommendation, error)

	// CountRecommendations counts all recommendations for an organization
	CountRecommendations(ctx context.Context, orgID uuid.UUID) (int64, error)

	// ExecutiveSummary retrieves the executive summary for an assessment;
	// returns (nil, nil) when absent
	ExecutiveSummary(ctx context.Context, assessmentID uuid.UUID) (*entities.ExecutiveSummary, error)
}

// DimensionScoreFilters represents filter options for dimension scores
type DimensionScoreFilters struct {
	Category             *entities.DimensionCategory
	IncludeEvidence      bool
	IncludeSubdimensions bool
}

// EntityFilters represents filter options for analysis entities
type EntityFilters struct {
	Type         *entities.EntityType
	Sentiment    *entities.SentimentType
	MinFrequency int
	Limit        int
}

// SkillsProfileFilters represents filter options for skills profiles
type SkillsProfileFilters struct {
	Department string
	SkillLevel string
	Limit      int
}

// RecommendationFilters represents filter options for recommendations
type RecommendationFilters struct {
	Timeframe *entities.RecommendationTimeframe
	Limit     int
}
