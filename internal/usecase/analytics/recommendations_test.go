package analytics

import (
	"testing"

	"github.com/google/uuid"

	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

func TestPriorityFor(t *testing.T) {
	cases := []struct {
		timeframe entities.RecommendationTimeframe
		sortOrder int
		want      RecommendationPriority
	}{
		{entities.TimeframeImmediate, 1, PriorityCritical},
		{entities.TimeframeImmediate, 2, PriorityCritical},
		{entities.TimeframeImmediate, 3, PriorityHigh},
		{entities.TimeframeImmediate, 99, PriorityHigh},
		{entities.TimeframeShortTerm, 3, PriorityHigh},
		{entities.TimeframeShortTerm, 4, PriorityMedium},
		{entities.TimeframeShortTerm, 99, PriorityMedium},
		{entities.TimeframeLongTerm, 3, PriorityHigh},
		{entities.TimeframeLongTerm, 6, PriorityMedium},
		{entities.TimeframeLongTerm, 7, PriorityLow},
	}
	for _, c := range cases {
		if got := PriorityFor(c.timeframe, c.sortOrder); got != c.want {
			t.Errorf("PriorityFor(%s, %d) = %s, want %s", c.timeframe, c.sortOrder, got, c.want)
		}
	}
}

func TestCategoryFor(t *testing.T) {
	cases := map[string]string{
		"technical":   "infrastructure",
		"human":       "training",
		"business":    "strategy",
		"ai_adoption": "tools",
		"Culture":     "culture",
		"governance":  "governance",
		"":            "process",
		"mystery":     "process",
	}
	for input, want := range cases {
		if got := CategoryFor(input); got != want {
			t.Errorf("CategoryFor(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTargetDimensionFor(t *testing.T) {
	cases := map[string]entities.DimensionCategory{
		"strategy":       entities.DimensionLeadership,
		"tools":          entities.DimensionEmbedding,
		"training":       entities.DimensionIndividual,
		"infrastructure": entities.DimensionEmbedding,
		"velocity":       entities.DimensionVelocity,
		"unknown":        entities.DimensionIndividual,
	}
	for input, want := range cases {
		if got := TargetDimensionFor(input); got != want {
			t.Errorf("TargetDimensionFor(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestNormalizeEffort(t *testing.T) {
	cases := map[string]string{
		"low":         "low",
		"Minimal":     "low",
		"high":        "high",
		"significant": "high",
		"major":       "high",
		"medium":      "medium",
		"":            "medium",
		"unknown":     "medium",
	}
	for input, want := range cases {
		if got := NormalizeEffort(input); got != want {
			t.Errorf("NormalizeEffort(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBuildRecommendations(t *testing.T) {
	orgID := uuid.New()
	recs := []*entities.AIRecommendation{
		{ID: uuid.New(), Title: "Stand up AI council", Timeframe: entities.TimeframeImmediate, SortOrder: 1, RelatedDimension: "governance"},
		{ID: uuid.New(), Title: "Pilot copilots", Timeframe: entities.TimeframeImmediate, SortOrder: 5, RelatedDimension: "tools", EffortRequired: "significant"},
		{ID: uuid.New(), Title: "Train analysts", Timeframe: entities.TimeframeShortTerm, SortOrder: 2, RelatedDimension: "training"},
		{ID: uuid.New(), Rationale: "Process debt blocks rollout"},
		{ID: uuid.New(), Title: "Replatform data stack", Timeframe: entities.TimeframeLongTerm, SortOrder: 10, RelatedDimension: "infrastructure"},
	}

	resp := BuildRecommendations(orgID, recs, nil)

	if resp.TotalCount != 5 {
		t.Fatalf("expected 5 recommendations, got %d", resp.TotalCount)
	}
	if len(resp.Immediate) != 2 || len(resp.ShortTerm) != 2 || len(resp.LongTerm) != 1 {
		t.Fatalf("unexpected partition %d/%d/%d", len(resp.Immediate), len(resp.ShortTerm), len(resp.LongTerm))
	}

	if resp.PriorityBreakdown.Critical != 1 || resp.PriorityBreakdown.High != 2 || resp.PriorityBreakdown.Medium != 1 || resp.PriorityBreakdown.Low != 1 {
		t.Errorf("unexpected priority breakdown %+v", resp.PriorityBreakdown)
	}

	// Empty timeframe defaults to short_term and zero sort order to 99
	fallback := resp.ShortTerm[1]
	if fallback.Title != "Untitled Recommendation" {
		t.Errorf("expected default title, got %q", fallback.Title)
	}
	if fallback.Description != "Process debt blocks rollout" {
		t.Errorf("description must fall back to rationale, got %q", fallback.Description)
	}
	if fallback.SortOrder != 99 || fallback.Priority != string(PriorityMedium) {
		t.Errorf("unexpected fallback %+v", fallback)
	}
	if fallback.Status != "pending" {
		t.Errorf("expected pending status, got %q", fallback.Status)
	}

	if resp.CategoryBreakdown["governance"] != 1 || resp.CategoryBreakdown["process"] != 1 {
		t.Errorf("unexpected category breakdown %v", resp.CategoryBreakdown)
	}

	// 10 + 10 + 7 + 7 + 5
	if resp.EstimatedImpact.TotalPotentialIncrease != 39 {
		t.Errorf("expected total increase 39, got %v", resp.EstimatedImpact.TotalPotentialIncrease)
	}
	if resp.EstimatedImpact.TimeToAchieve != "6-12 months" {
		t.Errorf("unexpected time to achieve %q", resp.EstimatedImpact.TimeToAchieve)
	}
	if resp.EstimatedImpact.Confidence != 0.7 {
		t.Errorf("unexpected confidence %v", resp.EstimatedImpact.Confidence)
	}
}

func TestBuildRecommendationsPriorityFilter(t *testing.T) {
	recs := []*entities.AIRecommendation{
		{ID: uuid.New(), Title: "A", Timeframe: entities.TimeframeImmediate, SortOrder: 1},
		{ID: uuid.New(), Title: "B", Timeframe: entities.TimeframeImmediate, SortOrder: 5},
		{ID: uuid.New(), Title: "C", Timeframe: entities.TimeframeLongTerm, SortOrder: 10},
	}
	high := PriorityHigh
	resp := BuildRecommendations(uuid.New(), recs, &high)
	if resp.TotalCount != 1 || len(resp.Immediate) != 1 {
		t.Fatalf("expected only the high recommendation, got %+v", resp)
	}
	if resp.Immediate[0].Title != "B" {
		t.Fatalf("unexpected recommendation %s", resp.Immediate[0].Title)
	}
}

func TestBuildRecommendationsTimeToAchieve(t *testing.T) {
	immediate := &entities.AIRecommendation{ID: uuid.New(), Title: "A", Timeframe: entities.TimeframeImmediate, SortOrder: 1}
	longTerm := &entities.AIRecommendation{ID: uuid.New(), Title: "B", Timeframe: entities.TimeframeLongTerm, SortOrder: 9}

	resp := BuildRecommendations(uuid.New(), []*entities.AIRecommendation{longTerm, longTerm}, nil)
	if resp.EstimatedImpact.TimeToAchieve != "12-24 months" {
		t.Errorf("long-term dominance: got %q", resp.EstimatedImpact.TimeToAchieve)
	}

	resp = BuildRecommendations(uuid.New(), []*entities.AIRecommendation{immediate, immediate}, nil)
	if resp.EstimatedImpact.TimeToAchieve != "3-6 months" {
		t.Errorf("immediate dominance: got %q", resp.EstimatedImpact.TimeToAchieve)
	}
}

func TestBuildRecommendationsEmpty(t *testing.T) {
	resp := BuildRecommendations(uuid.New(), nil, nil)
	if resp.TotalCount != 0 {
		t.Fatalf("expected 0 recommendations, got %d", resp.TotalCount)
	}
	if resp.Immediate == nil || resp.ShortTerm == nil || resp.LongTerm == nil {
		t.Fatalf("timeframe buckets must be non-nil")
	}
	if resp.CategoryBreakdown == nil {
		t.Fatalf("category breakdown must be non-nil")
	}
}
