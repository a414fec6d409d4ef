package analytics

import (
	"fmt"

	"github.com/orgmind/assessment-engine/internal/adapter/dto/insight"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

const noAssessmentSummary = "No assessment has been completed for this organization yet."

// SummaryInput carries the rows and counts the composer rolls up.
type SummaryInput struct {
	Organization     *entities.Organization
	Assessment       *entities.Assessment // nil when none exists
	ExecutiveSummary string
	TopGaps          []*entities.RealityGap
	Recommendations  int64
	Participants     int64
}

// strengthAxes pairs each legacy four-axis score with its display label.
// A score of 5 or more on the 0-10 scale counts the axis as a strength,
// each axis checked independently.
var strengthAxes = []struct {
	label string
	score func(*entities.Assessment) float64
}{
	{"Technical Infrastructure", func(a *entities.Assessment) float64 { return a.TechnicalScore }},
	{"Human Capital Readiness", func(a *entities.Assessment) float64 { return a.HumanScore }},
	{"Business Strategy Alignment", func(a *entities.Assessment) float64 { return a.BusinessScore }},
	{"AI Adoption Progress", func(a *entities.Assessment) float64 { return a.AIAdoptionScore }},
}

// BuildAssessmentSummary composes the executive-facing rollup. A missing
// assessment yields a well-formed zero-valued summary, not an error.
func BuildAssessmentSummary(in SummaryInput) insight.AssessmentSummaryResponse {
	resp := insight.AssessmentSummaryResponse{
		OrganizationID:   in.Organization.ID.String(),
		OrganizationName: in.Organization.Name,
		MaturityLevel:    string(LevelExploring),
		ExecutiveSummary: noAssessmentSummary,
		TopStrengths:     []string{},
		CriticalGaps:     []string{},
	}

	if in.Assessment == nil {
		return resp
	}

	a := in.Assessment
	date := a.AssessmentDate
	resp.AssessmentDate = &date
	resp.MaturityScore = a.OverallScore * 10
	resp.MaturityLevel = string(LevelForScore(a.OverallScore))
	resp.ConfidenceLevel = a.ConfidenceLevel
	resp.DataSource = a.DataSource
	resp.TranscriptCount = a.TranscriptCount

	resp.ExecutiveSummary = in.ExecutiveSummary

	for _, axis := range strengthAxes {
		if axis.score(a) >= 5 {
			resp.TopStrengths = append(resp.TopStrengths, axis.label)
		}
	}

	for _, g := range in.TopGaps {
		resp.CriticalGaps = append(resp.CriticalGaps, fmt.Sprintf("%s (gap: %.1f)", g.Dimension, gapSizeRaw(g)))
	}

	participants := int(in.Participants)
	if participants == 0 {
		participants = a.TranscriptCount
	}

	resp.KeyMetrics = insight.KeyMetrics{
		DimensionCount:       4,
		StrengthsCount:       len(resp.TopStrengths),
		GapsCount:            len(resp.CriticalGaps),
		RecommendationsCount: int(in.Recommendations),
		ParticipantCount:     participants,
	}

	if a.IndustryAverage != nil {
		comparison := &insight.IndustryComparison{IndustryAverage: *a.IndustryAverage * 10}
		if a.Percentile != nil {
			comparison.Percentile = *a.Percentile
		}
		resp.IndustryComparison = comparison
	}

	return resp
}
