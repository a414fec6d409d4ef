package analytics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/orgmind/assessment-engine/internal/adapter/dto/insight"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

// GapDirection classifies whether leadership over- or under-estimates.
type GapDirection string

const (
	DirectionOverestimation  GapDirection = "overestimation"
	DirectionUnderestimation GapDirection = "underestimation"
	DirectionAligned         GapDirection = "aligned"
)

// GapSeverity buckets the absolute gap magnitude on the 0-10 scale.
type GapSeverity string

const (
	SeverityCritical    GapSeverity = "critical"
	SeveritySignificant GapSeverity = "significant"
	SeverityModerate    GapSeverity = "moderate"
	SeverityMinor       GapSeverity = "minor"
)

// GapFilter narrows the gap set before summary statistics are computed.
type GapFilter struct {
	Dimension *string
	Severity  *GapSeverity
	Direction *GapDirection
}

// gapSizeRaw prefers the stored gap size and falls back to the difference of
// the two operands. Both are in raw 0-10 units. The two sources can disagree
// for older rows; the stored value wins whenever it is non-zero.
func gapSizeRaw(g *entities.RealityGap) float64 {
	if g.GapSize != 0 {
		return g.GapSize
	}
	return g.LeadershipPerception - g.ActualEvidence
}

// DirectionForGap applies the one-point deadband on the 0-10 scale.
func DirectionForGap(gapSize float64) GapDirection {
	switch {
	case gapSize > 1:
		return DirectionOverestimation
	case gapSize < -1:
		return DirectionUnderestimation
	default:
		return DirectionAligned
	}
}

// SeverityForGap buckets |gapSize|; boundary values fall into the higher bucket.
func SeverityForGap(gapSize float64) GapSeverity {
	abs := gapSize
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 4:
		return SeverityCritical
	case abs >= 2.5:
		return SeveritySignificant
	case abs >= 1.5:
		return SeverityModerate
	default:
		return SeverityMinor
	}
}

func gapImpact(severity GapSeverity) string {
	if severity == SeverityCritical || severity == SeveritySignificant {
		return "High priority for addressing"
	}
	return "Monitor and address as needed"
}

func gapRecommendation(direction GapDirection) string {
	switch direction {
	case DirectionOverestimation:
		return "Leadership may be overestimating capabilities in this area. Consider deeper assessment."
	case DirectionUnderestimation:
		return "There may be hidden strengths in this area that leadership is not fully aware of."
	default:
		return "Perception and evidence are well aligned."
	}
}

// BuildRealityGaps transforms gap rows into the reality gaps payload. The
// filter is applied before summary statistics, so the summary always reflects
// the returned subset.
func BuildRealityGaps(orgID uuid.UUID, gaps []*entities.RealityGap, filter GapFilter) insight.RealityGapsResponse {
	var filterDimension *entities.DimensionCategory
	if filter.Dimension != nil {
		d := CanonicalDimension(*filter.Dimension)
		filterDimension = &d
	}

	details := make([]insight.GapDetail, 0, len(gaps))

	// per-dimension |gap| accumulation in first-seen order
	dimOrder := make([]entities.DimensionCategory, 0, 5)
	dimTotals := make(map[entities.DimensionCategory]float64)
	dimCounts := make(map[entities.DimensionCategory]int)

	overestimations, underestimations, aligned := 0, 0, 0
	totalAbsGap := 0.0

	for _, g := range gaps {
		dimension := CanonicalDimension(g.Dimension)
		raw := gapSizeRaw(g)
		direction := DirectionForGap(raw)
		severity := SeverityForGap(raw)

		if filterDimension != nil && dimension != *filterDimension {
			continue
		}
		if filter.Severity != nil && severity != *filter.Severity {
			continue
		}
		if filter.Direction != nil && direction != *filter.Direction {
			continue
		}

		absGapPct := raw * 10
		if absGapPct < 0 {
			absGapPct = -absGapPct
		}

		details = append(details, insight.GapDetail{
			Dimension:       string(dimension),
			DisplayName:     DimensionDisplayName(g.Dimension),
			PerceptionScore: g.LeadershipPerception * 10,
			EvidenceScore:   g.ActualEvidence * 10,
			GapSize:         absGapPct,
			Direction:       string(direction),
			Severity:        string(severity),
			Description: fmt.Sprintf("Gap between leadership perception (%.1f) and actual evidence (%.1f)",
				g.LeadershipPerception, g.ActualEvidence),
			Impact:                gapImpact(severity),
			Recommendation:        gapRecommendation(direction),
			SupportingEvidence:    gapEvidenceItems(g.SupportingEvidence),
			ContradictingEvidence: gapEvidenceItems(g.ContradictingEvidence),
		})

		switch direction {
		case DirectionOverestimation:
			overestimations++
		case DirectionUnderestimation:
			underestimations++
		default:
			aligned++
		}

		totalAbsGap += absGapPct
		if _, seen := dimTotals[dimension]; !seen {
			dimOrder = append(dimOrder, dimension)
		}
		dimTotals[dimension] += absGapPct
		dimCounts[dimension]++
	}

	averageGapSize := 0.0
	if len(details) > 0 {
		averageGapSize = round2(totalAbsGap / float64(len(details)))
	}

	// highest mean |gap|; ties keep the first-seen dimension
	mostMisaligned := ""
	maxAvg := 0.0
	for _, dim := range dimOrder {
		avg := dimTotals[dim] / float64(dimCounts[dim])
		if avg > maxAvg {
			maxAvg = avg
			mostMisaligned = string(dim)
		}
	}

	overallAlignment := round2(100 - averageGapSize)
	if overallAlignment < 0 {
		overallAlignment = 0
	}

	return insight.RealityGapsResponse{
		OrganizationID: orgID.String(),
		Gaps:           details,
		Summary: insight.GapsSummary{
			TotalGaps:               len(details),
			Overestimations:         overestimations,
			Underestimations:        underestimations,
			Aligned:                 aligned,
			AverageGapSize:          averageGapSize,
			MostMisalignedDimension: mostMisaligned,
			OverallAlignment:        overallAlignment,
		},
	}
}

func gapEvidenceItems(sources []entities.GapSource) []insight.GapEvidenceItem {
	items := make([]insight.GapEvidenceItem, 0, len(sources))
	for _, s := range sources {
		items = append(items, insight.GapEvidenceItem{
			Type:       s.Type,
			Content:    s.Content,
			Confidence: s.Confidence,
		})
	}
	return items
}
