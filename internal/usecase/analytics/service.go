package analytics

import (
	"context"

	"github.com/google/uuid"

	"github.com/orgmind/assessment-engine/errors"
	"github.com/orgmind/assessment-engine/internal/adapter/dto/insight"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
	"github.com/orgmind/assessment-engine/internal/domain/repositories"
)

const topGapsInSummary = 5

// Service fetches evidence rows for one organization and runs exactly one
// pure aggregation per call. All I/O happens here, before aggregation; the
// builders only ever see materialized rows.
type Service struct {
	orgRepo        repositories.OrganizationRepository
	assessmentRepo repositories.AssessmentRepository
}

// NewService creates a new analytics service
func NewService(orgRepo repositories.OrganizationRepository, assessmentRepo repositories.AssessmentRepository) *Service {
	return &Service{
		orgRepo:        orgRepo,
		assessmentRepo: assessmentRepo,
	}
}

// requireOrganization loads the organization or raises NotFound.
func (s *Service) requireOrganization(ctx context.Context, orgID uuid.UUID) (*entities.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, errors.ErrFetchFailed("organization", err)
	}
	if org == nil {
		return nil, errors.ErrOrganizationNotFound(orgID.String())
	}
	return org, nil
}

// requireAssessment loads the latest assessment or raises NotFound. Used by
// the paths where an absent assessment is an error rather than an empty state.
func (s *Service) requireAssessment(ctx context.Context, orgID uuid.UUID) (*entities.Assessment, error) {
	assessment, err := s.assessmentRepo.LatestAssessment(ctx, orgID)
	if err != nil {
		return nil, errors.ErrFetchFailed("assessment", err)
	}
	if assessment == nil {
		return nil, errors.ErrAssessmentNotFound(orgID.String())
	}
	return assessment, nil
}

// MaturityScoresParams narrows the maturity scores fetch.
type MaturityScoresParams struct {
	Category             *entities.DimensionCategory
	IncludeEvidence      bool
	IncludeSubdimensions bool
	EvidenceLimit        int // 0 = all
}

// MaturityScores returns the per-dimension maturity score payload.
func (s *Service) MaturityScores(ctx context.Context, orgID uuid.UUID, params MaturityScoresParams) (*insight.MaturityScoresResponse, error) {
	if _, err := s.requireOrganization(ctx, orgID); err != nil {
		return nil, err
	}
	assessment, err := s.requireAssessment(ctx, orgID)
	if err != nil {
		return nil, err
	}

	scores, err := s.assessmentRepo.DimensionScores(ctx, assessment.ID, repositories.DimensionScoreFilters{
		Category:             params.Category,
		IncludeEvidence:      params.IncludeEvidence,
		IncludeSubdimensions: params.IncludeSubdimensions,
	})
	if err != nil {
		return nil, errors.ErrFetchFailed("dimension scores", err)
	}

	resp := BuildMaturityScores(orgID, assessment, scores, params.EvidenceLimit)
	return &resp, nil
}

// RealityGaps returns the perception-vs-reality gap payload.
func (s *Service) RealityGaps(ctx context.Context, orgID uuid.UUID, filter GapFilter) (*insight.RealityGapsResponse, error) {
	if _, err := s.requireOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	gaps, err := s.assessmentRepo.RealityGaps(ctx, orgID)
	if err != nil {
		return nil, errors.ErrFetchFailed("reality gaps", err)
	}

	resp := BuildRealityGaps(orgID, gaps, filter)
	return &resp, nil
}

// ConsensusThemes returns the theme consensus payload.
func (s *Service) ConsensusThemes(ctx context.Context, orgID uuid.UUID, sentiment *entities.SentimentType, limit int) (*insight.ConsensusThemesResponse, error) {
	if _, err := s.requireOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	themes, err := s.assessmentRepo.ConsensusThemes(ctx, orgID, limit)
	if err != nil {
		return nil, errors.ErrFetchFailed("consensus themes", err)
	}

	resp := BuildConsensusThemes(orgID, themes, sentiment)
	return &resp, nil
}

// AnalysisEntities returns the entity frequency payload. Relationship names
// are resolved with one batched lookup over the whole result set.
func (s *Service) AnalysisEntities(ctx context.Context, orgID uuid.UUID, filters repositories.EntityFilters) (*insight.AnalysisEntitiesResponse, error) {
	if _, err := s.requireOrganization(ctx, orgID); err != nil {
		return nil, err
	}
	assessment, err := s.requireAssessment(ctx, orgID)
	if err != nil {
		return nil, err
	}

	list, err := s.assessmentRepo.AnalysisEntities(ctx, assessment.ID, filters)
	if err != nil {
		return nil, errors.ErrFetchFailed("analysis entities", err)
	}

	idSet := map[uuid.UUID]struct{}{}
	var relatedIDs []uuid.UUID
	for _, e := range list {
		relationships := e.Relationships
		if len(relationships) > maxEntityRelationships {
			relationships = relationships[:maxEntityRelationships]
		}
		for _, rel := range relationships {
			if _, seen := idSet[rel.RelatedEntityID]; !seen {
				idSet[rel.RelatedEntityID] = struct{}{}
				relatedIDs = append(relatedIDs, rel.RelatedEntityID)
			}
		}
	}
	names, err := s.assessmentRepo.EntityNames(ctx, relatedIDs)
	if err != nil {
		return nil, errors.ErrFetchFailed("related entity names", err)
	}

	resp := BuildAnalysisEntities(orgID, assessment.ID, list, names)
	return &resp, nil
}

// TeamSkills returns the team skill profile payload.
func (s *Service) TeamSkills(ctx context.Context, orgID uuid.UUID, filters repositories.SkillsProfileFilters, departmentBreakdown bool) (*insight.TeamSkillsResponse, error) {
	if _, err := s.requireOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	profiles, err := s.assessmentRepo.SkillsProfiles(ctx, orgID, filters)
	if err != nil {
		return nil, errors.ErrFetchFailed("skills profiles", err)
	}

	resp := BuildTeamSkills(orgID, profiles, departmentBreakdown)
	return &resp, nil
}

// Recommendations returns the prioritized recommendations payload.
func (s *Service) Recommendations(ctx context.Context, orgID uuid.UUID, timeframe *entities.RecommendationTimeframe, priority *RecommendationPriority, limit int) (*insight.RecommendationsResponse, error) {
	if _, err := s.requireOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	recs, err := s.assessmentRepo.Recommendations(ctx, orgID, repositories.RecommendationFilters{
		Timeframe: timeframe,
		Limit:     limit,
	})
	if err != nil {
		return nil, errors.ErrFetchFailed("recommendations", err)
	}

	resp := BuildRecommendations(orgID, recs, priority)
	return &resp, nil
}

// AssessmentSummary returns the executive rollup. An organization without an
// assessment yields a zero-valued summary, not an error.
func (s *Service) AssessmentSummary(ctx context.Context, orgID uuid.UUID) (*insight.AssessmentSummaryResponse, error) {
	org, err := s.requireOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	assessment, err := s.assessmentRepo.LatestAssessment(ctx, orgID)
	if err != nil {
		return nil, errors.ErrFetchFailed("assessment", err)
	}

	input := SummaryInput{
		Organization: org,
		Assessment:   assessment,
	}

	if assessment != nil {
		summary, err := s.assessmentRepo.ExecutiveSummary(ctx, assessment.ID)
		if err != nil {
			return nil, errors.ErrFetchFailed("executive summary", err)
		}
		if summary != nil {
			input.ExecutiveSummary = summary.Summary
		}

		input.TopGaps, err = s.assessmentRepo.TopRealityGaps(ctx, orgID, topGapsInSummary)
		if err != nil {
			return nil, errors.ErrFetchFailed("reality gaps", err)
		}

		input.Recommendations, err = s.assessmentRepo.CountRecommendations(ctx, orgID)
		if err != nil {
			return nil, errors.ErrFetchFailed("recommendations", err)
		}

		input.Participants, err = s.assessmentRepo.CountSkillsProfiles(ctx, orgID)
		if err != nil {
			return nil, errors.ErrFetchFailed("skills profiles", err)
		}
	}

	resp := BuildAssessmentSummary(input)
	return &resp, nil
}
