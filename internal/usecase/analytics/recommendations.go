package analytics

import (
	"strings"

	"github.com/google/uuid"

	"github.com/orgmind/assessment-engine/internal/adapter/dto/insight"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

// RecommendationPriority is the derived urgency bucket.
type RecommendationPriority string

const (
	PriorityCritical RecommendationPriority = "critical"
	PriorityHigh     RecommendationPriority = "high"
	PriorityMedium   RecommendationPriority = "medium"
	PriorityLow      RecommendationPriority = "low"
)

const recommendationConfidence = 0.7

// recommendationCategories maps a free-text related dimension to its
// recommendation category; unrecognized values default to process.
var recommendationCategories = map[string]string{
	"technical":      "infrastructure",
	"human":          "training",
	"business":       "strategy",
	"ai_adoption":    "tools",
	"individual":     "training",
	"leadership":     "strategy",
	"cultural":       "culture",
	"embedding":      "process",
	"velocity":       "tools",
	"strategy":       "strategy",
	"culture":        "culture",
	"process":        "process",
	"tools":          "tools",
	"training":       "training",
	"governance":     "governance",
	"infrastructure": "infrastructure",
}

// recommendationDimensions maps a free-text related dimension onto the
// canonical five-value dimension set; unrecognized values default to
// individual.
var recommendationDimensions = map[string]entities.DimensionCategory{
	"individual":     entities.DimensionIndividual,
	"leadership":     entities.DimensionLeadership,
	"cultural":       entities.DimensionCultural,
	"embedding":      entities.DimensionEmbedding,
	"velocity":       entities.DimensionVelocity,
	"technical":      entities.DimensionEmbedding,
	"human":          entities.DimensionIndividual,
	"business":       entities.DimensionLeadership,
	"ai_adoption":    entities.DimensionVelocity,
	"strategy":       entities.DimensionLeadership,
	"culture":        entities.DimensionCultural,
	"process":        entities.DimensionEmbedding,
	"tools":          entities.DimensionEmbedding,
	"training":       entities.DimensionIndividual,
	"governance":     entities.DimensionLeadership,
	"infrastructure": entities.DimensionEmbedding,
}

// PriorityFor derives the urgency bucket from timeframe and sort order.
func PriorityFor(timeframe entities.RecommendationTimeframe, sortOrder int) RecommendationPriority {
	switch {
	case timeframe == entities.TimeframeImmediate && sortOrder <= 2:
		return PriorityCritical
	case timeframe == entities.TimeframeImmediate || sortOrder <= 3:
		return PriorityHigh
	case timeframe == entities.TimeframeShortTerm || sortOrder <= 6:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// CategoryFor maps a related dimension string to its recommendation category.
func CategoryFor(relatedDimension string) string {
	if c, ok := recommendationCategories[strings.ToLower(relatedDimension)]; ok {
		return c
	}
	return "process"
}

// TargetDimensionFor maps a related dimension string onto the canonical set.
func TargetDimensionFor(relatedDimension string) entities.DimensionCategory {
	if d, ok := recommendationDimensions[strings.ToLower(relatedDimension)]; ok {
		return d
	}
	return entities.DimensionIndividual
}

// ImprovementFor is the fixed per-timeframe score improvement placeholder.
func ImprovementFor(timeframe entities.RecommendationTimeframe) float64 {
	switch timeframe {
	case entities.TimeframeImmediate:
		return 10
	case entities.TimeframeShortTerm:
		return 7
	default:
		return 5
	}
}

// NormalizeEffort folds effort synonyms onto low/medium/high.
func NormalizeEffort(effort string) string {
	switch strings.ToLower(effort) {
	case "low", "minimal":
		return "low"
	case "high", "significant", "major":
		return "high"
	default:
		return "medium"
	}
}

// BuildRecommendations transforms recommendation rows into the prioritized
// payload. The priority filter applies after derivation; the three timeframe
// buckets partition the filtered set.
func BuildRecommendations(orgID uuid.UUID, recs []*entities.AIRecommendation, priorityFilter *RecommendationPriority) insight.RecommendationsResponse {
	resp := insight.RecommendationsResponse{
		OrganizationID:    orgID.String(),
		Immediate:         []insight.RecommendationDetail{},
		ShortTerm:         []insight.RecommendationDetail{},
		LongTerm:          []insight.RecommendationDetail{},
		CategoryBreakdown: map[string]int{},
	}

	totalIncrease := 0.0

	for _, rec := range recs {
		timeframe := rec.Timeframe
		if timeframe == "" {
			timeframe = entities.TimeframeShortTerm
		}
		sortOrder := rec.SortOrder
		if sortOrder == 0 {
			sortOrder = 99
		}
		priority := PriorityFor(timeframe, sortOrder)
		if priorityFilter != nil && priority != *priorityFilter {
			continue
		}

		description := rec.Description
		if description == "" {
			description = rec.Rationale
		}
		title := rec.Title
		if title == "" {
			title = "Untitled Recommendation"
		}
		status := rec.Status
		if status == "" {
			status = "pending"
		}

		improvement := ImprovementFor(timeframe)
		detail := insight.RecommendationDetail{
			ID:                  rec.ID.String(),
			Title:               title,
			Description:         description,
			Rationale:           rec.Rationale,
			Priority:            string(priority),
			Category:            CategoryFor(rec.RelatedDimension),
			TargetDimension:     string(TargetDimensionFor(rec.RelatedDimension)),
			Timeframe:           string(timeframe),
			SortOrder:           sortOrder,
			Effort:              NormalizeEffort(rec.EffortRequired),
			EstimatedCost:       rec.EstimatedCost,
			Status:              status,
			ExpectedImprovement: improvement,
			Confidence:          recommendationConfidence,
		}

		switch timeframe {
		case entities.TimeframeImmediate:
			resp.Immediate = append(resp.Immediate, detail)
		case entities.TimeframeLongTerm:
			resp.LongTerm = append(resp.LongTerm, detail)
		default:
			resp.ShortTerm = append(resp.ShortTerm, detail)
		}

		switch priority {
		case PriorityCritical:
			resp.PriorityBreakdown.Critical++
		case PriorityHigh:
			resp.PriorityBreakdown.High++
		case PriorityMedium:
			resp.PriorityBreakdown.Medium++
		default:
			resp.PriorityBreakdown.Low++
		}
		resp.CategoryBreakdown[detail.Category]++

		totalIncrease += improvement
	}

	resp.TotalCount = len(resp.Immediate) + len(resp.ShortTerm) + len(resp.LongTerm)

	timeToAchieve := "6-12 months"
	if len(resp.LongTerm) > len(resp.Immediate)+len(resp.ShortTerm) {
		timeToAchieve = "12-24 months"
	} else if len(resp.Immediate) > len(resp.ShortTerm)+len(resp.LongTerm) {
		timeToAchieve = "3-6 months"
	}

	resp.EstimatedImpact = insight.EstimatedImpact{
		TotalPotentialIncrease: round2(totalIncrease),
		TimeToAchieve:          timeToAchieve,
		Confidence:             recommendationConfidence,
	}

	return resp
}
