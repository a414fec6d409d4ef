package analytics

import (
	"github.com/google/uuid"

	"github.com/orgmind/assessment-engine/internal/adapter/dto/insight"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

const maxThemeQuotes = 10

// SentimentLabel converts a numeric sentiment in [-1, 1] to its categorical
// label. A single numeric value never yields mixed; mixed only arises at the
// aggregate level.
func SentimentLabel(score float64) entities.SentimentType {
	switch {
	case score >= 0.3:
		return entities.SentimentPositive
	case score <= -0.3:
		return entities.SentimentNegative
	default:
		return entities.SentimentNeutral
	}
}

// sentimentTallyOrder fixes the tally iteration order so ties resolve the
// same way on every run.
var sentimentTallyOrder = []entities.SentimentType{
	entities.SentimentPositive,
	entities.SentimentNegative,
	entities.SentimentNeutral,
	entities.SentimentMixed,
}

// DominantSentiment tallies labels and reports mixed when the top two counts
// differ by at most one.
func DominantSentiment(labels []entities.SentimentType) entities.SentimentType {
	counts := map[entities.SentimentType]int{}
	for _, l := range labels {
		counts[l]++
	}

	top := entities.SentimentNeutral
	topCount, secondCount := -1, -1
	for _, s := range sentimentTallyOrder {
		c := counts[s]
		if c > topCount {
			secondCount = topCount
			top, topCount = s, c
		} else if c > secondCount {
			secondCount = c
		}
	}

	if topCount-secondCount <= 1 {
		return entities.SentimentMixed
	}
	return top
}

// BuildConsensusThemes transforms theme rows into the consensus themes
// payload. The frequency denominator is the summed frequency of the supplied
// (pre-filter) set, floored at 1; the sentiment filter applies after
// classification but before the summary.
func BuildConsensusThemes(orgID uuid.UUID, themes []*entities.ConsensusTheme, sentimentFilter *entities.SentimentType) insight.ConsensusThemesResponse {
	totalFrequency := 0
	for _, t := range themes {
		totalFrequency += t.Frequency
	}
	if totalFrequency < 1 {
		totalFrequency = 1
	}

	details := make([]insight.ThemeDetail, 0, len(themes))
	for _, t := range themes {
		label := SentimentLabel(t.Sentiment)
		if sentimentFilter != nil && label != *sentimentFilter {
			continue
		}

		quotes := t.Quotes
		if len(quotes) > maxThemeQuotes {
			quotes = quotes[:maxThemeQuotes]
		}
		quoteItems := make([]insight.ThemeQuoteItem, 0, len(quotes))
		for _, q := range quotes {
			quoteItems = append(quoteItems, insight.ThemeQuoteItem{
				Text:      q.Text,
				Speaker:   q.Speaker,
				Role:      q.Role,
				Sentiment: string(SentimentLabel(q.Sentiment)),
			})
		}

		details = append(details, insight.ThemeDetail{
			ThemeName:           t.ThemeName,
			Description:         t.Description,
			Frequency:           t.Frequency,
			FrequencyPercentage: round2(float64(t.Frequency) / float64(totalFrequency) * 100),
			Sentiment:           string(label),
			SentimentScore:      t.Sentiment,
			Interviewees:        t.Interviewees,
			Quotes:              quoteItems,
		})
	}

	return insight.ConsensusThemesResponse{
		OrganizationID: orgID.String(),
		Themes:         details,
		Summary:        themesSummary(details),
	}
}

// themesSummary aggregates the filtered theme set. A zero-theme set is weak
// by definition.
func themesSummary(details []insight.ThemeDetail) insight.ThemesSummary {
	summary := insight.ThemesSummary{
		TotalThemes:       len(details),
		DominantSentiment: string(entities.SentimentMixed),
		TopThemes:         []string{},
		ConsensusStrength: "weak",
	}
	if len(details) == 0 {
		return summary
	}

	labels := make([]entities.SentimentType, 0, len(details))
	sentimentCounts := map[entities.SentimentType]int{}
	totalPct := 0.0
	for _, d := range details {
		label := entities.SentimentType(d.Sentiment)
		labels = append(labels, label)
		sentimentCounts[label]++
		totalPct += d.FrequencyPercentage
	}
	summary.DominantSentiment = string(DominantSentiment(labels))

	for i, d := range details {
		if i >= 5 {
			break
		}
		summary.TopThemes = append(summary.TopThemes, d.ThemeName)
	}

	avgFrequency := totalPct / float64(len(details))
	maxCount := 0
	for _, c := range sentimentCounts {
		if c > maxCount {
			maxCount = c
		}
	}
	dominantShare := float64(maxCount) / float64(len(details))

	summary.ConsensusScore = round2((avgFrequency + dominantShare*100) / 2)
	switch {
	case summary.ConsensusScore >= 60:
		summary.ConsensusStrength = "strong"
	case summary.ConsensusScore >= 35:
		summary.ConsensusStrength = "moderate"
	}
	return summary
}
