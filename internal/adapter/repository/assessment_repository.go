package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orgmind/assessment-engine/internal/domain/entities"
	repo "github.com/orgmind/assessment-engine/internal/domain/repositories"
)

// AssessmentRepository implements the assessment analytics repository using GORM
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{
		db: db,
	}
}

// LatestAssessment retrieves the most recent assessment for an organization
func (r *AssessmentRepository) LatestAssessment(ctx context.Context, orgID uuid.UUID) (*entities.Assessment, error) {
	var assessment entities.Assessment
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("assessment_date DESC").
		First(&assessment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest assessment: %w", err)
	}
	return &assessment, nil
}

// DimensionScores retrieves dimension scores for an assessment. Evidence and
// subdimensions are preloaded in batched queries when requested.
func (r *AssessmentRepository) DimensionScores(ctx context.Context, assessmentID uuid.UUID, filters repo.DimensionScoreFilters) ([]*entities.DimensionScore, error) {
	query := r.db.WithContext(ctx).Where("assessment_id = ?", assessmentID)

	if filters.Category != nil {
		query = query.Where("dimension = ?", *filters.Category)
	}
	if filters.IncludeEvidence {
		query = query.Preload("Evidence", func(db *gorm.DB) *gorm.DB {
			return db.Order("confidence DESC")
		})
	}
	if filters.IncludeSubdimensions {
		query = query.Preload("Subdimensions", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		})
	}

	var scores []*entities.DimensionScore
	if err := query.Order("dimension ASC").Find(&scores).Error; err != nil {
		return nil, fmt.Errorf("failed to find dimension scores: %w", err)
	}
	return scores, nil
}

// RealityGaps retrieves all reality gaps for an organization
func (r *AssessmentRepository) RealityGaps(ctx context.Context, orgID uuid.UUID) ([]*entities.RealityGap, error) {
	var gaps []*entities.RealityGap
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("gap_size DESC").
		Find(&gaps).Error; err != nil {
		return nil, fmt.Errorf("failed to find reality gaps: %w", err)
	}
	for _, g := range gaps {
		decodeGapEvidence(g)
	}
	return gaps, nil
}

// TopRealityGaps retrieves the largest reality gaps for an organization
func (r *AssessmentRepository) TopRealityGaps(ctx context.Context, orgID uuid.UUID, limit int) ([]*entities.RealityGap, error) {
	var gaps []*entities.RealityGap
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("gap_size DESC").
		Limit(limit).
		Find(&gaps).Error; err != nil {
		return nil, fmt.Errorf("failed to find top reality gaps: %w", err)
	}
	for _, g := range gaps {
		decodeGapEvidence(g)
	}
	return gaps, nil
}

// ConsensusThemes retrieves consensus themes for an organization, most
// frequent first
func (r *AssessmentRepository) ConsensusThemes(ctx context.Context, orgID uuid.UUID, limit int) ([]*entities.ConsensusTheme, error) {
	query := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("frequency DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var themes []*entities.ConsensusTheme
	if err := query.Find(&themes).Error; err != nil {
		return nil, fmt.Errorf("failed to find consensus themes: %w", err)
	}
	for _, t := range themes {
		if len(t.QuotesRaw) > 0 {
			_ = json.Unmarshal(t.QuotesRaw, &t.Quotes)
		}
		if t.Quotes == nil {
			t.Quotes = []entities.ThemeQuote{}
		}
	}
	return themes, nil
}

// AnalysisEntities retrieves extracted entities for an assessment with
// mentions and relationships preloaded in batched queries
func (r *AssessmentRepository) AnalysisEntities(ctx context.Context, assessmentID uuid.UUID, filters repo.EntityFilters) ([]*entities.AnalysisEntity, error) {
	query := r.db.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Preload("Mentions", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp DESC")
		}).
		Preload("Relationships", func(db *gorm.DB) *gorm.DB {
			return db.Order("strength DESC")
		})

	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.Sentiment != nil {
		query = query.Where("sentiment = ?", *filters.Sentiment)
	}
	if filters.MinFrequency > 0 {
		query = query.Where("frequency >= ?", filters.MinFrequency)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var result []*entities.AnalysisEntity
	if err := query.Order("frequency DESC").Find(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to find analysis entities: %w", err)
	}
	return result, nil
}

// EntityNames resolves entity IDs to display names in one query
func (r *AssessmentRepository) EntityNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []struct {
		ID   uuid.UUID
		Name string
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.AnalysisEntity{}).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve entity names: %w", err)
	}
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

// SkillsProfiles retrieves skills profiles for an organization
func (r *AssessmentRepository) SkillsProfiles(ctx context.Context, orgID uuid.UUID, filters repo.SkillsProfileFilters) ([]*entities.SkillsProfile, error) {
	query := r.db.WithContext(ctx).Where("organization_id = ?", orgID)

	if filters.Department != "" {
		query = query.Where("department = ?", filters.Department)
	}
	if filters.SkillLevel != "" {
		query = query.Where("ai_skill_level = ?", filters.SkillLevel)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var profiles []*entities.SkillsProfile
	if err := query.Order("ai_skill_score DESC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to find skills profiles: %w", err)
	}
	for _, p := range profiles {
		decodeProfileJSON(p)
	}
	return profiles, nil
}

// CountSkillsProfiles counts all skills profiles for an organization
func (r *AssessmentRepository) CountSkillsProfiles(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.SkillsProfile{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count skills profiles: %w", err)
	}
	return count, nil
}

// Recommendations retrieves recommendations for an organization ordered by
// sort_order
func (r *AssessmentRepository) Recommendations(ctx context.Context, orgID uuid.UUID, filters repo.RecommendationFilters) ([]*entities.AIRecommendation, error) {
	query := r.db.WithContext(ctx).Where("organization_id = ?", orgID)

	if filters.Timeframe != nil {
		query = query.Where("timeframe = ?", *filters.Timeframe)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var recs []*entities.AIRecommendation
	if err := query.Order("sort_order ASC, created_at ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to find recommendations: %w", err)
	}
	return recs, nil
}

// CountRecommendations counts all recommendations for an organization
func (r *AssessmentRepository) CountRecommendations(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.AIRecommendation{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recommendations: %w", err)
	}
	return count, nil
}

// ExecutiveSummary retrieves the executive summary for an assessment;
// returns (nil, nil) when absent
func (r *AssessmentRepository) ExecutiveSummary(ctx context.Context, assessmentID uuid.UUID) (*entities.ExecutiveSummary, error) {
	var summary entities.ExecutiveSummary
	if err := r.db.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		First(&summary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find executive summary: %w", err)
	}
	return &summary, nil
}

// decodeGapEvidence unpacks the JSONB evidence columns into typed slices.
// Malformed payloads degrade to empty lists rather than failing the request.
func decodeGapEvidence(g *entities.RealityGap) {
	if len(g.SupportingEvidenceRaw) > 0 {
		_ = json.Unmarshal(g.SupportingEvidenceRaw, &g.SupportingEvidence)
	}
	if len(g.ContradictingEvidenceRaw) > 0 {
		_ = json.Unmarshal(g.ContradictingEvidenceRaw, &g.ContradictingEvidence)
	}
	if g.SupportingEvidence == nil {
		g.SupportingEvidence = []entities.GapSource{}
	}
	if g.ContradictingEvidence == nil {
		g.ContradictingEvidence = []entities.GapSource{}
	}
}

// decodeProfileJSON unpacks a skills profile's JSONB columns into typed fields.
func decodeProfileJSON(p *entities.SkillsProfile) {
	if len(p.ToolsUsedRaw) > 0 {
		_ = json.Unmarshal(p.ToolsUsedRaw, &p.ToolsUsed)
	}
	if len(p.EvidenceRaw) > 0 {
		_ = json.Unmarshal(p.EvidenceRaw, &p.Evidence)
	}
	if len(p.RecommendedTrainingRaw) > 0 {
		_ = json.Unmarshal(p.RecommendedTrainingRaw, &p.RecommendedTraining)
	}
	if p.ToolsUsed == nil {
		p.ToolsUsed = []entities.ToolUsage{}
	}
	if p.Evidence == nil {
		p.Evidence = []entities.ProfileEvidence{}
	}
	if p.RecommendedTraining == nil {
		p.RecommendedTraining = []string{}
	}
}
