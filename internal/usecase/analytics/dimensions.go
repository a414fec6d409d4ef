package analytics

import (
	"github.com/google/uuid"

	"github.com/orgmind/assessment-engine/internal/adapter/dto/insight"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

// dimensionDisplayNames maps every dimension key, canonical or legacy, to its
// human-readable name.
var dimensionDisplayNames = map[string]string{
	"individual":  "Individual Readiness",
	"leadership":  "Leadership & Strategy",
	"cultural":    "Cultural Alignment",
	"embedding":   "Operational Embedding",
	"velocity":    "Innovation Velocity",
	"technical":   "Technical Infrastructure",
	"human":       "Human Capital",
	"business":    "Business Strategy",
	"ai_adoption": "AI Adoption",
}

// DimensionDisplayName returns the readable name for a dimension key, falling
// back to the key itself for unknown values.
func DimensionDisplayName(dimension string) string {
	if name, ok := dimensionDisplayNames[dimension]; ok {
		return name
	}
	return dimension
}

// canonicalDimensions maps legacy axis names onto the canonical five-value
// dimension set. Unknown values map to individual.
var canonicalDimensions = map[string]entities.DimensionCategory{
	"individual":  entities.DimensionIndividual,
	"leadership":  entities.DimensionLeadership,
	"cultural":    entities.DimensionCultural,
	"embedding":   entities.DimensionEmbedding,
	"velocity":    entities.DimensionVelocity,
	"technical":   entities.DimensionEmbedding,
	"human":       entities.DimensionIndividual,
	"business":    entities.DimensionLeadership,
	"ai_adoption": entities.DimensionVelocity,
}

// CanonicalDimension maps a dimension key, canonical or legacy, onto the
// canonical five-value set.
func CanonicalDimension(dimension string) entities.DimensionCategory {
	if d, ok := canonicalDimensions[dimension]; ok {
		return d
	}
	return entities.DimensionIndividual
}

// BuildMaturityScores transforms dimension score rows into the maturity
// scores payload. evidenceLimit caps the attached evidence per dimension;
// zero means all rows (they arrive ordered by descending confidence).
func BuildMaturityScores(orgID uuid.UUID, assessment *entities.Assessment, scores []*entities.DimensionScore, evidenceLimit int) insight.MaturityScoresResponse {
	dimensions := make([]insight.DimensionScoreDetail, 0, len(scores))
	totalScore := 0.0
	totalMaxScore := 0.0
	dataPoints := 0

	for _, ds := range scores {
		percentage := 0.0
		if ds.MaxScore > 0 {
			percentage = ds.Score / ds.MaxScore * 100
		}
		weight := ds.Weight
		if weight == 0 {
			weight = 1
		}

		detail := insight.DimensionScoreDetail{
			Dimension:     string(ds.Dimension),
			DisplayName:   DimensionDisplayName(string(ds.Dimension)),
			Score:         ds.Score,
			MaxScore:      ds.MaxScore,
			Percentage:    round2(percentage),
			Weight:        weight,
			WeightedScore: round2(ds.Score * weight),
			MaturityLevel: string(LevelForPercentage(percentage)),
		}

		evidence := ds.Evidence
		if evidenceLimit > 0 && len(evidence) > evidenceLimit {
			evidence = evidence[:evidenceLimit]
		}
		for _, ev := range evidence {
			detail.Evidence = append(detail.Evidence, insight.EvidenceItem{
				Source:     ev.Source,
				Quote:      ev.Quote,
				Sentiment:  string(ev.Sentiment),
				Confidence: ev.Confidence,
				Timestamp:  ev.Timestamp,
			})
		}
		dataPoints += len(detail.Evidence)

		for _, sd := range ds.Subdimensions {
			subPct := 0.0
			if sd.MaxScore > 0 {
				subPct = sd.Score / sd.MaxScore * 100
			}
			detail.Subdimensions = append(detail.Subdimensions, insight.SubdimensionItem{
				Name:       sd.Name,
				Score:      sd.Score,
				MaxScore:   sd.MaxScore,
				Percentage: round2(subPct),
			})
		}

		dimensions = append(dimensions, detail)
		totalScore += ds.Score
		totalMaxScore += ds.MaxScore
	}

	overallPercentage := 0.0
	if totalMaxScore > 0 {
		overallPercentage = totalScore / totalMaxScore * 100
	}

	return insight.MaturityScoresResponse{
		OrganizationID:    orgID.String(),
		AssessmentID:      assessment.ID.String(),
		AssessmentDate:    assessment.AssessmentDate,
		OverallScore:      assessment.OverallScore,
		OverallPercentage: round2(overallPercentage),
		MaturityLevel:     string(LevelForScore(assessment.OverallScore)),
		Dimensions:        dimensions,
		Metadata: insight.ScoringMetadata{
			Algorithm:    "weighted-dimension-v2",
			Version:      "2.0.0",
			CalculatedAt: assessment.AssessmentDate,
			DataPoints:   dataPoints,
		},
	}
}
