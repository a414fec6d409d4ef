package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/orgmind/assessment-engine/errors"
	"github.com/orgmind/assessment-engine/internal/adapter/dto/insight"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
	"github.com/orgmind/assessment-engine/internal/domain/repositories"
	"github.com/orgmind/assessment-engine/internal/usecase/analytics"
	pkgvalidator "github.com/orgmind/assessment-engine/pkg/validator"
)

type stubOrgRepo struct {
	org *entities.Organization
}

func (s *stubOrgRepo) FindByID(_ context.Context, _ uuid.UUID) (*entities.Organization, error) {
	return s.org, nil
}

func (s *stubOrgRepo) IsMember(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return false, nil
}

type stubAssessmentRepo struct {
	assessment *entities.Assessment
	scores     []*entities.DimensionScore
	gaps       []*entities.RealityGap

	scoreFilters repositories.DimensionScoreFilters
}

func (s *stubAssessmentRepo) LatestAssessment(_ context.Context, _ uuid.UUID) (*entities.Assessment, error) {
	return s.assessment, nil
}

func (s *stubAssessmentRepo) DimensionScores(_ context.Context, _ uuid.UUID, filters repositories.DimensionScoreFilters) ([]*entities.DimensionScore, error) {
	s.scoreFilters = filters
	return s.scores, nil
}

func (s *stubAssessmentRepo) RealityGaps(_ context.Context, _ uuid.UUID) ([]*entities.RealityGap, error) {
	return s.gaps, nil
}

func (s *stubAssessmentRepo) TopRealityGaps(_ context.Context, _ uuid.UUID, _ int) ([]*entities.RealityGap, error) {
	return s.gaps, nil
}

func (s *stubAssessmentRepo) ConsensusThemes(_ context.Context, _ uuid.UUID, _ int) ([]*entities.ConsensusTheme, error) {
	return nil, nil
}

func (s *stubAssessmentRepo) AnalysisEntities(_ context.Context, _ uuid.UUID, _ repositories.EntityFilters) ([]*entities.AnalysisEntity, error) {
	return nil, nil
}

func (s *stubAssessmentRepo) EntityNames(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]string, error) {
	return nil, nil
}

func (s *stubAssessmentRepo) SkillsProfiles(_ context.Context, _ uuid.UUID, _ repositories.SkillsProfileFilters) ([]*entities.SkillsProfile, error) {
	return nil, nil
}

func (s *stubAssessmentRepo) CountSkillsProfiles(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubAssessmentRepo) Recommendations(_ context.Context, _ uuid.UUID, _ repositories.RecommendationFilters) ([]*entities.AIRecommendation, error) {
	return nil, nil
}

func (s *stubAssessmentRepo) CountRecommendations(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubAssessmentRepo) ExecutiveSummary(_ context.Context, _ uuid.UUID) (*entities.ExecutiveSummary, error) {
	return nil, nil
}

type envelope struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Details map[string]string `json:"details"`
}

func newTestHandler(orgRepo *stubOrgRepo, assessmentRepo *stubAssessmentRepo) (*echo.Echo, *Insight) {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	svc := analytics.NewService(orgRepo, assessmentRepo)
	return e, NewInsight(svc, zap.NewNop())
}

func doRequest(e *echo.Echo, orgID, query string, fn echo.HandlerFunc) *httptest.ResponseRecorder {
	target := "/v1/organizations/" + orgID + "/x"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(orgID)
	if err := fn(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestHealth(t *testing.T) {
	e, h := newTestHandler(&stubOrgRepo{}, &stubAssessmentRepo{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	if err := h.Health(e.NewContext(req, rec)); err != nil {
		t.Fatalf("health failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMaturityScoresSuccess(t *testing.T) {
	org := &entities.Organization{ID: uuid.New(), Name: "Acme"}
	assessment := &entities.Assessment{ID: uuid.New(), OrganizationID: org.ID, OverallScore: 5.5}
	repo := &stubAssessmentRepo{
		assessment: assessment,
		scores: []*entities.DimensionScore{
			{Dimension: entities.DimensionIndividual, Score: 6, MaxScore: 10},
		},
	}
	e, h := newTestHandler(&stubOrgRepo{org: org}, repo)

	rec := doRequest(e, org.ID.String(), "", h.MaturityScores)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if env.Code != int(errors.ErrorCode_HTTP_OK) || env.Message != "success" {
		t.Fatalf("unexpected envelope %+v", env)
	}

	var data insight.MaturityScoresResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if len(data.Dimensions) != 1 || data.Dimensions[0].Percentage != 60 {
		t.Fatalf("unexpected payload %+v", data)
	}
}

func TestMaturityScoresDefaultsIncludeEverything(t *testing.T) {
	org := &entities.Organization{ID: uuid.New(), Name: "Acme"}
	assessment := &entities.Assessment{ID: uuid.New(), OrganizationID: org.ID}
	repo := &stubAssessmentRepo{
		assessment: assessment,
		scores: []*entities.DimensionScore{
			{
				Dimension: entities.DimensionIndividual,
				Score:     6,
				MaxScore:  10,
				Evidence:  []entities.DimensionEvidence{{Quote: "q", Confidence: 0.9}},
				Subdimensions: []entities.SubdimensionScore{
					{Name: "tooling", Score: 3, MaxScore: 4},
				},
			},
		},
	}
	e, h := newTestHandler(&stubOrgRepo{org: org}, repo)

	rec := doRequest(e, org.ID.String(), "", h.MaturityScores)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Absent flags mean full evidence and subdimensions
	if !repo.scoreFilters.IncludeEvidence || !repo.scoreFilters.IncludeSubdimensions {
		t.Fatalf("paramless request must fetch evidence and subdimensions, got %+v", repo.scoreFilters)
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	var data insight.MaturityScoresResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if len(data.Dimensions[0].Evidence) != 1 || len(data.Dimensions[0].Subdimensions) != 1 {
		t.Fatalf("default response must carry evidence and subdimensions, got %+v", data.Dimensions[0])
	}
}

func TestMaturityScoresExplicitOptOut(t *testing.T) {
	org := &entities.Organization{ID: uuid.New(), Name: "Acme"}
	repo := &stubAssessmentRepo{assessment: &entities.Assessment{ID: uuid.New()}}
	e, h := newTestHandler(&stubOrgRepo{org: org}, repo)

	rec := doRequest(e, org.ID.String(), "include_evidence=false&include_subdimensions=false", h.MaturityScores)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if repo.scoreFilters.IncludeEvidence || repo.scoreFilters.IncludeSubdimensions {
		t.Fatalf("explicit opt-out must skip evidence and subdimensions, got %+v", repo.scoreFilters)
	}
}

func TestMaturityScoresInvalidCategory(t *testing.T) {
	org := &entities.Organization{ID: uuid.New(), Name: "Acme"}
	e, h := newTestHandler(&stubOrgRepo{org: org}, &stubAssessmentRepo{})

	rec := doRequest(e, org.ID.String(), "category=bogus", h.MaturityScores)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if env.Code != int(errors.ErrorCode_INVALID_FILTER) {
		t.Fatalf("expected INVALID_FILTER, got %d", env.Code)
	}
	if env.Details["allowed"] == "" {
		t.Fatalf("expected allowed values in details, got %v", env.Details)
	}
}

func TestMaturityScoresUnknownOrganization(t *testing.T) {
	e, h := newTestHandler(&stubOrgRepo{}, &stubAssessmentRepo{})

	rec := doRequest(e, uuid.NewString(), "", h.MaturityScores)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if env.Code != int(errors.ErrorCode_ORG_NOT_FOUND) {
		t.Fatalf("expected ORG_NOT_FOUND, got %d", env.Code)
	}
}

func TestMaturityScoresInvalidOrgID(t *testing.T) {
	e, h := newTestHandler(&stubOrgRepo{}, &stubAssessmentRepo{})

	rec := doRequest(e, "not-a-uuid", "", h.MaturityScores)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRealityGapsSuccess(t *testing.T) {
	org := &entities.Organization{ID: uuid.New(), Name: "Acme"}
	repo := &stubAssessmentRepo{
		gaps: []*entities.RealityGap{
			{Dimension: "cultural", LeadershipPerception: 8, ActualEvidence: 3},
		},
	}
	e, h := newTestHandler(&stubOrgRepo{org: org}, repo)

	rec := doRequest(e, org.ID.String(), "severity=critical", h.RealityGaps)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	var data insight.RealityGapsResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if data.Summary.TotalGaps != 1 || data.Gaps[0].Severity != "critical" {
		t.Fatalf("unexpected payload %+v", data)
	}
}

func TestAssessmentSummaryWithoutAssessment(t *testing.T) {
	org := &entities.Organization{ID: uuid.New(), Name: "Acme"}
	e, h := newTestHandler(&stubOrgRepo{org: org}, &stubAssessmentRepo{})

	rec := doRequest(e, org.ID.String(), "", h.AssessmentSummary)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	var data insight.AssessmentSummaryResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if data.MaturityLevel != "exploring" || data.MaturityScore != 0 {
		t.Fatalf("unexpected payload %+v", data)
	}
}
