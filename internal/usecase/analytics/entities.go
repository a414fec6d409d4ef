package analytics

import (
	"math"

	"github.com/google/uuid"

	"github.com/orgmind/assessment-engine/internal/adapter/dto/insight"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

const (
	maxEntityMentions      = 10
	maxEntityRelationships = 5
)

// BuildAnalysisEntities transforms entity rows into the analysis entities
// payload. Rows arrive frequency-ordered with mentions and relationships
// preloaded; relatedNames resolves relationship targets to display names and
// must cover every RelatedEntityID in the set (batched by the caller).
func BuildAnalysisEntities(orgID, assessmentID uuid.UUID, list []*entities.AnalysisEntity, relatedNames map[uuid.UUID]string) insight.AnalysisEntitiesResponse {
	totalFrequency := 0
	for _, e := range list {
		totalFrequency += e.Frequency
	}
	if totalFrequency < 1 {
		totalFrequency = 1
	}

	details := make([]insight.EntityDetail, 0, len(list))
	byType := insight.EntitiesByType{
		AITools:           []insight.EntityDetail{},
		AIConcepts:        []insight.EntityDetail{},
		BusinessProcesses: []insight.EntityDetail{},
		Challenges:        []insight.EntityDetail{},
		Opportunities:     []insight.EntityDetail{},
		Competitors:       []insight.EntityDetail{},
		Technologies:      []insight.EntityDetail{},
	}
	typesPresent := map[entities.EntityType]bool{}

	mostPositive, mostNegative := "", ""
	bestPositive, worstNegative := 0.0, 0.0

	for _, e := range list {
		mentions := e.Mentions
		if len(mentions) > maxEntityMentions {
			mentions = mentions[:maxEntityMentions]
		}
		mentionItems := make([]insight.MentionItem, 0, len(mentions))
		for _, m := range mentions {
			mentionItems = append(mentionItems, insight.MentionItem{
				Context:   m.Context,
				Speaker:   m.Speaker,
				Sentiment: string(m.Sentiment),
				Timestamp: m.Timestamp,
			})
		}

		relationships := e.Relationships
		if len(relationships) > maxEntityRelationships {
			relationships = relationships[:maxEntityRelationships]
		}
		relationshipItems := make([]insight.RelationshipItem, 0, len(relationships))
		for _, rel := range relationships {
			name := relatedNames[rel.RelatedEntityID]
			if name == "" {
				name = "Unknown"
			}
			relationshipItems = append(relationshipItems, insight.RelationshipItem{
				RelatedEntity:    name,
				RelationshipType: rel.RelationshipType,
				Strength:         rel.Strength,
			})
		}

		detail := insight.EntityDetail{
			ID:                  e.ID.String(),
			Name:                e.Name,
			Type:                string(e.Type),
			Frequency:           e.Frequency,
			FrequencyPercentage: round2(float64(e.Frequency) / float64(totalFrequency) * 100),
			Sentiment:           string(e.Sentiment),
			SentimentScore:      e.SentimentScore,
			FirstMentioned:      e.FirstMentioned,
			LastMentioned:       e.LastMentioned,
			Mentions:            mentionItems,
			Relationships:       relationshipItems,
		}
		details = append(details, detail)
		typesPresent[e.Type] = true

		switch e.Type {
		case entities.EntityTypeAITool:
			byType.AITools = append(byType.AITools, detail)
		case entities.EntityTypeAIConcept:
			byType.AIConcepts = append(byType.AIConcepts, detail)
		case entities.EntityTypeBusinessProcess:
			byType.BusinessProcesses = append(byType.BusinessProcesses, detail)
		case entities.EntityTypeChallenge:
			byType.Challenges = append(byType.Challenges, detail)
		case entities.EntityTypeOpportunity:
			byType.Opportunities = append(byType.Opportunities, detail)
		case entities.EntityTypeCompetitor:
			byType.Competitors = append(byType.Competitors, detail)
		case entities.EntityTypeTechnology:
			byType.Technologies = append(byType.Technologies, detail)
		}

		if e.Sentiment == entities.SentimentPositive &&
			(mostPositive == "" || e.SentimentScore > bestPositive) {
			mostPositive, bestPositive = e.Name, e.SentimentScore
		}
		if e.Sentiment == entities.SentimentNegative &&
			(mostNegative == "" || e.SentimentScore < worstNegative) {
			mostNegative, worstNegative = e.Name, e.SentimentScore
		}
	}

	mostMentioned := ""
	if len(details) > 0 {
		mostMentioned = details[0].Name
	}
	diversity := int(math.Round(float64(len(typesPresent)) / float64(len(entities.EntityTypes)) * 100))

	return insight.AnalysisEntitiesResponse{
		OrganizationID: orgID.String(),
		AssessmentID:   assessmentID.String(),
		Entities:       details,
		ByType:         byType,
		Summary: insight.EntitiesSummary{
			TotalEntities:   len(details),
			MostMentioned:   mostMentioned,
			MostPositive:    mostPositive,
			MostNegative:    mostNegative,
			EntityDiversity: diversity,
		},
	}
}
