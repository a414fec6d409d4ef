package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/orgmind/assessment-engine/errors"
	"github.com/orgmind/assessment-engine/internal/adapter/dto/insight"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
	"github.com/orgmind/assessment-engine/internal/domain/repositories"
	"github.com/orgmind/assessment-engine/internal/usecase/analytics"
)

const (
	defaultThemeLimit          = 50
	defaultEntityLimit         = 100
	defaultSkillsLimit         = 100
	defaultRecommendationLimit = 100
)

// Insight serves the per-organization analytics endpoints. Each handler
// validates its filters, delegates to the analytics service and writes one
// payload.
type Insight struct {
	service *analytics.Service
	logger  *zap.Logger
}

// NewInsight creates a new insight handler
func NewInsight(service *analytics.Service, logger *zap.Logger) *Insight {
	return &Insight{
		service: service,
		logger:  logger,
	}
}

func (h *Insight) orgID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("Invalid organization id")
	}
	return id, nil
}

// MaturityScores returns dimension scores with evidence for the latest assessment
// GET /v1/organizations/:id/maturity-scores
func (h *Insight) MaturityScores(c echo.Context) error {
	orgID, err := h.orgID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req insight.MaturityScoresRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	params := analytics.MaturityScoresParams{
		IncludeEvidence:      req.IncludeEvidence == nil || *req.IncludeEvidence,
		IncludeSubdimensions: req.IncludeSubdimensions == nil || *req.IncludeSubdimensions,
		EvidenceLimit:        req.EvidenceLimit,
	}
	if req.Category != nil {
		category := entities.DimensionCategory(*req.Category)
		params.Category = &category
	}

	resp, err := h.service.MaturityScores(c.Request().Context(), orgID, params)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, resp)
}

// RealityGaps returns perception-vs-evidence gaps by dimension
// GET /v1/organizations/:id/reality-gaps
func (h *Insight) RealityGaps(c echo.Context) error {
	orgID, err := h.orgID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req insight.RealityGapsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	filter := analytics.GapFilter{Dimension: req.Dimension}
	if req.Severity != nil {
		severity := analytics.GapSeverity(*req.Severity)
		filter.Severity = &severity
	}
	if req.Direction != nil {
		direction := analytics.GapDirection(*req.Direction)
		filter.Direction = &direction
	}

	resp, err := h.service.RealityGaps(c.Request().Context(), orgID, filter)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, resp)
}

// ConsensusThemes returns recurring themes with quotes and sentiment
// GET /v1/organizations/:id/consensus-themes
func (h *Insight) ConsensusThemes(c echo.Context) error {
	orgID, err := h.orgID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req insight.ConsensusThemesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultThemeLimit
	}
	var sentiment *entities.SentimentType
	if req.Sentiment != nil {
		s := entities.SentimentType(*req.Sentiment)
		sentiment = &s
	}

	resp, err := h.service.ConsensusThemes(c.Request().Context(), orgID, sentiment, limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, resp)
}

// AnalysisEntities returns extracted entities with mentions and relationships
// GET /v1/organizations/:id/analysis-entities
func (h *Insight) AnalysisEntities(c echo.Context) error {
	orgID, err := h.orgID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req insight.AnalysisEntitiesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	filters := repositories.EntityFilters{
		MinFrequency: req.MinFrequency,
		Limit:        req.Limit,
	}
	if filters.Limit == 0 {
		filters.Limit = defaultEntityLimit
	}
	if req.Type != nil {
		t := entities.EntityType(*req.Type)
		filters.Type = &t
	}
	if req.Sentiment != nil {
		s := entities.SentimentType(*req.Sentiment)
		filters.Sentiment = &s
	}

	resp, err := h.service.AnalysisEntities(c.Request().Context(), orgID, filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, resp)
}

// TeamSkills returns member skill profiles with distribution and gaps
// GET /v1/organizations/:id/team-skills
func (h *Insight) TeamSkills(c echo.Context) error {
	orgID, err := h.orgID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req insight.TeamSkillsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	filters := repositories.SkillsProfileFilters{
		Department: req.Department,
		Limit:      req.Limit,
	}
	if filters.Limit == 0 {
		filters.Limit = defaultSkillsLimit
	}
	if req.SkillLevel != nil {
		filters.SkillLevel = *req.SkillLevel
	}

	resp, err := h.service.TeamSkills(c.Request().Context(), orgID, filters, req.DepartmentBreakdown)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, resp)
}

// Recommendations returns prioritized recommendations grouped by timeframe
// GET /v1/organizations/:id/recommendations
func (h *Insight) Recommendations(c echo.Context) error {
	orgID, err := h.orgID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req insight.RecommendationsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultRecommendationLimit
	}
	var timeframe *entities.RecommendationTimeframe
	if req.Timeframe != nil {
		t := entities.RecommendationTimeframe(*req.Timeframe)
		timeframe = &t
	}
	var priority *analytics.RecommendationPriority
	if req.Priority != nil {
		p := analytics.RecommendationPriority(*req.Priority)
		priority = &p
	}

	resp, err := h.service.Recommendations(c.Request().Context(), orgID, timeframe, priority, limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, resp)
}

// AssessmentSummary returns the executive rollup for the dashboard header
// GET /v1/organizations/:id/assessment-summary
func (h *Insight) AssessmentSummary(c echo.Context) error {
	orgID, err := h.orgID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.service.AssessmentSummary(c.Request().Context(), orgID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, resp)
}

// Health returns health status
// GET /health
func (h *Insight) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}
