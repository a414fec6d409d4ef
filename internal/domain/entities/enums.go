package entities

// DimensionCategory is the fixed five-value maturity dimension axis.
type DimensionCategory string

const (
	DimensionIndividual DimensionCategory = "individual"
	DimensionLeadership DimensionCategory = "leadership"
	DimensionCultural   DimensionCategory = "cultural"
	DimensionEmbedding  DimensionCategory = "embedding"
	DimensionVelocity   DimensionCategory = "velocity"
)

// DimensionCategories lists the canonical dimensions in their fixed order.
var DimensionCategories = []DimensionCategory{
	DimensionIndividual,
	DimensionLeadership,
	DimensionCultural,
	DimensionEmbedding,
	DimensionVelocity,
}

// SentimentType is a categorical sentiment label.
type SentimentType string

const (
	SentimentPositive SentimentType = "positive"
	SentimentNegative SentimentType = "negative"
	SentimentNeutral  SentimentType = "neutral"
	SentimentMixed    SentimentType = "mixed"
)

// EntityType is the fixed seven-value analysis entity classification.
type EntityType string

const (
	EntityTypeAITool          EntityType = "ai_tool"
	EntityTypeAIConcept       EntityType = "ai_concept"
	EntityTypeBusinessProcess EntityType = "business_process"
	EntityTypeChallenge       EntityType = "challenge"
	EntityTypeOpportunity     EntityType = "opportunity"
	EntityTypeCompetitor      EntityType = "competitor"
	EntityTypeTechnology      EntityType = "technology"
)

// EntityTypes lists all entity types in their fixed order.
var EntityTypes = []EntityType{
	EntityTypeAITool,
	EntityTypeAIConcept,
	EntityTypeBusinessProcess,
	EntityTypeChallenge,
	EntityTypeOpportunity,
	EntityTypeCompetitor,
	EntityTypeTechnology,
}

// RecommendationTimeframe buckets a recommendation by execution horizon.
type RecommendationTimeframe string

const (
	TimeframeImmediate RecommendationTimeframe = "immediate"
	TimeframeShortTerm RecommendationTimeframe = "short_term"
	TimeframeLongTerm  RecommendationTimeframe = "long_term"
)
