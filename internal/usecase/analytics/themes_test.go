package analytics

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

func TestSentimentLabel(t *testing.T) {
	cases := []struct {
		score float64
		want  entities.SentimentType
	}{
		{0.3, entities.SentimentPositive},
		{0.9, entities.SentimentPositive},
		{0.29, entities.SentimentNeutral},
		{0, entities.SentimentNeutral},
		{-0.29, entities.SentimentNeutral},
		{-0.3, entities.SentimentNegative},
		{-1, entities.SentimentNegative},
	}
	for _, c := range cases {
		if got := SentimentLabel(c.score); got != c.want {
			t.Errorf("SentimentLabel(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestDominantSentiment(t *testing.T) {
	cases := []struct {
		name   string
		labels []entities.SentimentType
		want   entities.SentimentType
	}{
		{
			"clear positive",
			[]entities.SentimentType{entities.SentimentPositive, entities.SentimentPositive, entities.SentimentPositive, entities.SentimentNegative},
			entities.SentimentPositive,
		},
		{
			"close counts are mixed",
			[]entities.SentimentType{entities.SentimentPositive, entities.SentimentNegative, entities.SentimentPositive},
			entities.SentimentMixed,
		},
		{
			"tie is mixed",
			[]entities.SentimentType{entities.SentimentPositive, entities.SentimentNegative},
			entities.SentimentMixed,
		},
	}
	for _, c := range cases {
		if got := DominantSentiment(c.labels); got != c.want {
			t.Errorf("%s: DominantSentiment = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestBuildConsensusThemes(t *testing.T) {
	orgID := uuid.New()
	themes := []*entities.ConsensusTheme{
		{ThemeName: "Automation excitement", Frequency: 10, Sentiment: 0.5},
		{ThemeName: "Tooling friction", Frequency: 10, Sentiment: -0.5},
		{ThemeName: "Training appetite", Frequency: 1, Sentiment: 0.5},
	}

	resp := BuildConsensusThemes(orgID, themes, nil)
	if len(resp.Themes) != 3 {
		t.Fatalf("expected 3 themes, got %d", len(resp.Themes))
	}

	totalPct := 0.0
	for _, d := range resp.Themes {
		totalPct += d.FrequencyPercentage
	}
	if math.Abs(totalPct-100) > 0.05 {
		t.Errorf("frequency percentages must sum to ~100, got %v", totalPct)
	}

	if resp.Summary.DominantSentiment != string(entities.SentimentMixed) {
		t.Errorf("expected mixed dominant sentiment, got %s", resp.Summary.DominantSentiment)
	}
	if resp.Summary.ConsensusScore != 50 {
		t.Errorf("expected consensus score 50, got %v", resp.Summary.ConsensusScore)
	}
	if resp.Summary.ConsensusStrength != "moderate" {
		t.Errorf("expected moderate strength, got %s", resp.Summary.ConsensusStrength)
	}
	if len(resp.Summary.TopThemes) != 3 || resp.Summary.TopThemes[0] != "Automation excitement" {
		t.Errorf("unexpected top themes %v", resp.Summary.TopThemes)
	}
}

func TestBuildConsensusThemesSentimentFilterKeepsDenominator(t *testing.T) {
	orgID := uuid.New()
	themes := []*entities.ConsensusTheme{
		{ThemeName: "A", Frequency: 30, Sentiment: 0.5},
		{ThemeName: "B", Frequency: 70, Sentiment: -0.5},
	}

	positive := entities.SentimentPositive
	resp := BuildConsensusThemes(orgID, themes, &positive)
	if len(resp.Themes) != 1 {
		t.Fatalf("expected 1 theme after filter, got %d", len(resp.Themes))
	}
	// Denominator stays the pre-filter total frequency
	if resp.Themes[0].FrequencyPercentage != 30 {
		t.Fatalf("expected frequency percentage 30, got %v", resp.Themes[0].FrequencyPercentage)
	}
	if resp.Summary.TotalThemes != 1 {
		t.Fatalf("summary must reflect the filtered set, got %d", resp.Summary.TotalThemes)
	}
}

func TestBuildConsensusThemesQuoteCap(t *testing.T) {
	quotes := make([]entities.ThemeQuote, 0, 12)
	for i := 0; i < 12; i++ {
		quotes = append(quotes, entities.ThemeQuote{Text: "q", Sentiment: 0.6})
	}
	themes := []*entities.ConsensusTheme{
		{ThemeName: "A", Frequency: 1, Sentiment: 0.5, Quotes: quotes},
	}

	resp := BuildConsensusThemes(uuid.New(), themes, nil)
	if len(resp.Themes[0].Quotes) != maxThemeQuotes {
		t.Fatalf("expected %d quotes, got %d", maxThemeQuotes, len(resp.Themes[0].Quotes))
	}
	if resp.Themes[0].Quotes[0].Sentiment != string(entities.SentimentPositive) {
		t.Fatalf("quote sentiment must be labeled, got %s", resp.Themes[0].Quotes[0].Sentiment)
	}
}

func TestBuildConsensusThemesEmpty(t *testing.T) {
	resp := BuildConsensusThemes(uuid.New(), nil, nil)
	if resp.Themes == nil || len(resp.Themes) != 0 {
		t.Fatalf("expected empty non-nil themes, got %v", resp.Themes)
	}
	if resp.Summary.ConsensusStrength != "weak" {
		t.Fatalf("expected weak strength, got %s", resp.Summary.ConsensusStrength)
	}
	// No clear winner without any theme, same as a tied tally
	if resp.Summary.DominantSentiment != string(entities.SentimentMixed) {
		t.Fatalf("expected mixed sentiment, got %s", resp.Summary.DominantSentiment)
	}
	if resp.Summary.TopThemes == nil {
		t.Fatalf("top themes must be non-nil")
	}
}
