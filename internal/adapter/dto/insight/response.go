package insight

import "time"

// ---- Maturity scores ----

// EvidenceItem is one evidence quote attached to a dimension score
type EvidenceItem struct {
	Source     string    `json:"source"`
	Quote      string    `json:"quote"`
	Sentiment  string    `json:"sentiment"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// SubdimensionItem is one sub-dimension score with its own percentage
type SubdimensionItem struct {
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Percentage float64 `json:"percentage"`
}

// DimensionScoreDetail is one scored maturity dimension
type DimensionScoreDetail struct {
	Dimension     string             `json:"dimension"`
	DisplayName   string             `json:"display_name"`
	Score         float64            `json:"score"`
	MaxScore      float64            `json:"max_score"`
	Percentage    float64            `json:"percentage"`
	Weight        float64            `json:"weight"`
	WeightedScore float64            `json:"weighted_score"`
	MaturityLevel string             `json:"maturity_level"`
	Evidence      []EvidenceItem     `json:"evidence,omitempty"`
	Subdimensions []SubdimensionItem `json:"subdimensions,omitempty"`
}

// ScoringMetadata describes how the maturity scores were computed
type ScoringMetadata struct {
	Algorithm    string    `json:"algorithm"`
	Version      string    `json:"version"`
	CalculatedAt time.Time `json:"calculated_at"`
	DataPoints   int       `json:"data_points"`
}

// MaturityScoresResponse is the maturity scores endpoint payload
type MaturityScoresResponse struct {
	OrganizationID    string                 `json:"organization_id"`
	AssessmentID      string                 `json:"assessment_id"`
	AssessmentDate    time.Time              `json:"assessment_date"`
	OverallScore      float64                `json:"overall_score"`
	OverallPercentage float64                `json:"overall_percentage"`
	MaturityLevel     string                 `json:"maturity_level"`
	Dimensions        []DimensionScoreDetail `json:"dimensions"`
	Metadata          ScoringMetadata        `json:"metadata"`
}

// ---- Reality gaps ----

// GapEvidenceItem is one supporting or contradicting evidence source
type GapEvidenceItem struct {
	Type       string  `json:"type"`
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence"`
}

// GapDetail is one perception-vs-reality gap
type GapDetail struct {
	Dimension             string            `json:"dimension"`
	DisplayName           string            `json:"display_name"`
	PerceptionScore       float64           `json:"perception_score"`
	EvidenceScore         float64           `json:"evidence_score"`
	GapSize               float64           `json:"gap_size"`
	Direction             string            `json:"direction"`
	Severity              string            `json:"severity"`
	Description           string            `json:"description"`
	Impact                string            `json:"impact"`
	Recommendation        string            `json:"recommendation"`
	SupportingEvidence    []GapEvidenceItem `json:"supporting_evidence"`
	ContradictingEvidence []GapEvidenceItem `json:"contradicting_evidence"`
}

// GapsSummary aggregates the filtered gap set
type GapsSummary struct {
	TotalGaps               int     `json:"total_gaps"`
	Overestimations         int     `json:"overestimations"`
	Underestimations        int     `json:"underestimations"`
	Aligned                 int     `json:"aligned"`
	AverageGapSize          float64 `json:"average_gap_size"`
	MostMisalignedDimension string  `json:"most_misaligned_dimension"`
	OverallAlignment        float64 `json:"overall_alignment"`
}

// RealityGapsResponse is the reality gaps endpoint payload
type RealityGapsResponse struct {
	OrganizationID string      `json:"organization_id"`
	Gaps           []GapDetail `json:"gaps"`
	Summary        GapsSummary `json:"summary"`
}

// ---- Consensus themes ----

// ThemeQuoteItem is one quote attached to a theme
type ThemeQuoteItem struct {
	Text      string `json:"text"`
	Speaker   string `json:"speaker"`
	Role      string `json:"role"`
	Sentiment string `json:"sentiment"`
}

// ThemeDetail is one consensus theme with derived sentiment label
type ThemeDetail struct {
	ThemeName           string           `json:"theme_name"`
	Description         string           `json:"description"`
	Frequency           int              `json:"frequency"`
	FrequencyPercentage float64          `json:"frequency_percentage"`
	Sentiment           string           `json:"sentiment"`
	SentimentScore      float64          `json:"sentiment_score"`
	Interviewees        int              `json:"interviewees"`
	Quotes              []ThemeQuoteItem `json:"quotes"`
}

// ThemesSummary aggregates the filtered theme set
type ThemesSummary struct {
	TotalThemes       int      `json:"total_themes"`
	DominantSentiment string   `json:"dominant_sentiment"`
	TopThemes         []string `json:"top_themes"`
	ConsensusScore    float64  `json:"consensus_score"`
	ConsensusStrength string   `json:"consensus_strength"`
}

// ConsensusThemesResponse is the consensus themes endpoint payload
type ConsensusThemesResponse struct {
	OrganizationID string        `json:"organization_id"`
	Themes         []ThemeDetail `json:"themes"`
	Summary        ThemesSummary `json:"summary"`
}

// ---- Analysis entities ----

// MentionItem is one contextual mention of an entity
type MentionItem struct {
	Context   string    `json:"context"`
	Speaker   string    `json:"speaker"`
	Sentiment string    `json:"sentiment"`
	Timestamp time.Time `json:"timestamp"`
}

// RelationshipItem is one weighted edge to another entity, with its name resolved
type RelationshipItem struct {
	RelatedEntity    string  `json:"related_entity"`
	RelationshipType string  `json:"relationship_type"`
	Strength         float64 `json:"strength"`
}

// EntityDetail is one extracted entity with frequency and sentiment
type EntityDetail struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Type                string             `json:"type"`
	Frequency           int                `json:"frequency"`
	FrequencyPercentage float64            `json:"frequency_percentage"`
	Sentiment           string             `json:"sentiment"`
	SentimentScore      float64            `json:"sentiment_score"`
	FirstMentioned      time.Time          `json:"first_mentioned"`
	LastMentioned       time.Time          `json:"last_mentioned"`
	Mentions            []MentionItem      `json:"mentions"`
	Relationships       []RelationshipItem `json:"relationships"`
}

// EntitiesByType groups entities under every type key, empty lists included
type EntitiesByType struct {
	AITools           []EntityDetail `json:"ai_tool"`
	AIConcepts        []EntityDetail `json:"ai_concept"`
	BusinessProcesses []EntityDetail `json:"business_process"`
	Challenges        []EntityDetail `json:"challenge"`
	Opportunities     []EntityDetail `json:"opportunity"`
	Competitors       []EntityDetail `json:"competitor"`
	Technologies      []EntityDetail `json:"technology"`
}

// EntitiesSummary aggregates the returned entity set
type EntitiesSummary struct {
	TotalEntities   int    `json:"total_entities"`
	MostMentioned   string `json:"most_mentioned"`
	MostPositive    string `json:"most_positive"`
	MostNegative    string `json:"most_negative"`
	EntityDiversity int    `json:"entity_diversity"`
}

// AnalysisEntitiesResponse is the analysis entities endpoint payload
type AnalysisEntitiesResponse struct {
	OrganizationID string          `json:"organization_id"`
	AssessmentID   string          `json:"assessment_id"`
	Entities       []EntityDetail  `json:"entities"`
	ByType         EntitiesByType  `json:"by_type"`
	Summary        EntitiesSummary `json:"summary"`
}

// ---- Team skills ----

// SkillEntry is one skill attributed to a member
type SkillEntry struct {
	Name  string  `json:"name"`
	Level string  `json:"level"`
	Score float64 `json:"score"`
}

// MemberSkills is the per-person slice of the team skills payload
type MemberSkills struct {
	PersonName       string       `json:"person_name"`
	Title            string       `json:"title"`
	Department       string       `json:"department"`
	OverallLevel     string       `json:"overall_level"`
	OverallScore     float64      `json:"overall_score"`
	IsChampion       bool         `json:"is_champion"`
	ChampionReason   string       `json:"champion_reason,omitempty"`
	GrowthPotential  string       `json:"growth_potential,omitempty"`
	Strengths        []string     `json:"strengths"`
	Skills           []SkillEntry `json:"skills"`
	DevelopmentAreas []string     `json:"development_areas"`
}

// SkillDistribution counts members per ordinal skill level
type SkillDistribution struct {
	None         int `json:"none"`
	Beginner     int `json:"beginner"`
	Intermediate int `json:"intermediate"`
	Advanced     int `json:"advanced"`
	Expert       int `json:"expert"`
}

// SkillAggregate is one skill ranked by its mean score across members
type SkillAggregate struct {
	Name         string  `json:"name"`
	AverageScore float64 `json:"average_score"`
	Level        string  `json:"level"`
	MemberCount  int     `json:"member_count"`
}

// SkillGapItem is one skill whose mean score falls below the intermediate target
type SkillGapItem struct {
	Name               string  `json:"name"`
	AverageScore       float64 `json:"average_score"`
	Gap                float64 `json:"gap"`
	MembersBelowTarget int     `json:"members_below_target"`
}

// TeamSkillsSummary aggregates one member subset
type TeamSkillsSummary struct {
	TotalMembers int               `json:"total_members"`
	Distribution SkillDistribution `json:"distribution"`
	AverageScore float64           `json:"average_score"`
	AverageLevel string            `json:"average_level"`
	TopSkills    []SkillAggregate  `json:"top_skills"`
	SkillGaps    []SkillGapItem    `json:"skill_gaps"`
	Champions    []string          `json:"champions"`
}

// TeamSkillsResponse is the team skills endpoint payload
type TeamSkillsResponse struct {
	OrganizationID      string                       `json:"organization_id"`
	Members             []MemberSkills               `json:"members"`
	Summary             TeamSkillsSummary            `json:"summary"`
	DepartmentBreakdown map[string]TeamSkillsSummary `json:"department_breakdown,omitempty"`
}

// ---- Recommendations ----

// RecommendationDetail is one prioritized recommendation
type RecommendationDetail struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	Rationale           string  `json:"rationale,omitempty"`
	Priority            string  `json:"priority"`
	Category            string  `json:"category"`
	TargetDimension     string  `json:"target_dimension"`
	Timeframe           string  `json:"timeframe"`
	SortOrder           int     `json:"sort_order"`
	Effort              string  `json:"effort"`
	EstimatedCost       string  `json:"estimated_cost,omitempty"`
	Status              string  `json:"status"`
	ExpectedImprovement float64 `json:"expected_improvement"`
	Confidence          float64 `json:"confidence"`
}

// PriorityBreakdown counts recommendations per derived priority
type PriorityBreakdown struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// EstimatedImpact is the aggregate improvement estimate
type EstimatedImpact struct {
	TotalPotentialIncrease float64 `json:"total_potential_increase"`
	TimeToAchieve          string  `json:"time_to_achieve"`
	Confidence             float64 `json:"confidence"`
}

// RecommendationsResponse is the recommendations endpoint payload
type RecommendationsResponse struct {
	OrganizationID    string                 `json:"organization_id"`
	TotalCount        int                    `json:"total_count"`
	Immediate         []RecommendationDetail `json:"immediate"`
	ShortTerm         []RecommendationDetail `json:"short_term"`
	LongTerm          []RecommendationDetail `json:"long_term"`
	PriorityBreakdown PriorityBreakdown      `json:"priority_breakdown"`
	CategoryBreakdown map[string]int         `json:"category_breakdown"`
	EstimatedImpact   EstimatedImpact        `json:"estimated_impact"`
}

// ---- Assessment summary ----

// KeyMetrics is the headline metric block of the assessment summary
type KeyMetrics struct {
	DimensionCount       int `json:"dimension_count"`
	StrengthsCount       int `json:"strengths_count"`
	GapsCount            int `json:"gaps_count"`
	RecommendationsCount int `json:"recommendations_count"`
	ParticipantCount     int `json:"participant_count"`
}

// IndustryComparison relates the organization's score to its industry
type IndustryComparison struct {
	IndustryAverage float64 `json:"industry_average"`
	Percentile      float64 `json:"percentile"`
}

// AssessmentSummaryResponse is the assessment summary endpoint payload
type AssessmentSummaryResponse struct {
	OrganizationID     string              `json:"organization_id"`
	OrganizationName   string              `json:"organization_name"`
	AssessmentDate     *time.Time          `json:"assessment_date,omitempty"`
	MaturityScore      float64             `json:"maturity_score"`
	MaturityLevel      string              `json:"maturity_level"`
	ConfidenceLevel    float64             `json:"confidence_level"`
	ExecutiveSummary   string              `json:"executive_summary"`
	KeyMetrics         KeyMetrics          `json:"key_metrics"`
	TopStrengths       []string            `json:"top_strengths"`
	CriticalGaps       []string            `json:"critical_gaps"`
	IndustryComparison *IndustryComparison `json:"industry_comparison,omitempty"`
	DataSource         string              `json:"data_source,omitempty"`
	TranscriptCount    int                 `json:"transcript_count"`
}
