package insight

// MaturityScoresRequest represents query parameters for the maturity scores
// endpoint. Evidence and subdimensions are opt-out: absent flags mean both
// are attached in full.
type MaturityScoresRequest struct {
	Category             *string `query:"category" validate:"omitempty,oneof=individual leadership cultural embedding velocity"`
	IncludeEvidence      *bool   `query:"include_evidence"`
	IncludeSubdimensions *bool   `query:"include_subdimensions"`
	EvidenceLimit        int     `query:"evidence_limit" validate:"omitempty,min=1,max=100"`
}

// RealityGapsRequest represents query parameters for the reality gaps endpoint.
// Dimension accepts the canonical five categories plus the legacy axis names
// still present in older gap rows.
type RealityGapsRequest struct {
	Dimension *string `query:"dimension" validate:"omitempty,oneof=individual leadership cultural embedding velocity technical human business ai_adoption"`
	Severity  *string `query:"severity" validate:"omitempty,oneof=critical significant moderate minor"`
	Direction *string `query:"direction" validate:"omitempty,oneof=overestimation underestimation aligned"`
}

// ConsensusThemesRequest represents query parameters for the consensus themes endpoint
type ConsensusThemesRequest struct {
	Sentiment *string `query:"sentiment" validate:"omitempty,oneof=positive negative neutral"`
	Limit     int     `query:"limit" validate:"omitempty,min=1,max=100"`
}

// AnalysisEntitiesRequest represents query parameters for the analysis entities endpoint
type AnalysisEntitiesRequest struct {
	Type         *string `query:"type" validate:"omitempty,oneof=ai_tool ai_concept business_process challenge opportunity competitor technology"`
	Sentiment    *string `query:"sentiment" validate:"omitempty,oneof=positive negative neutral mixed"`
	MinFrequency int     `query:"min_frequency" validate:"omitempty,min=0"`
	Limit        int     `query:"limit" validate:"omitempty,min=1,max=200"`
}

// TeamSkillsRequest represents query parameters for the team skills endpoint
type TeamSkillsRequest struct {
	Department          string  `query:"department"`
	SkillLevel          *string `query:"skill_level" validate:"omitempty,oneof=none beginner intermediate advanced expert"`
	Limit               int     `query:"limit" validate:"omitempty,min=1,max=200"`
	DepartmentBreakdown bool    `query:"department_breakdown"`
}

// RecommendationsRequest represents query parameters for the recommendations endpoint
type RecommendationsRequest struct {
	Timeframe *string `query:"timeframe" validate:"omitempty,oneof=immediate short_term long_term"`
	Priority  *string `query:"priority" validate:"omitempty,oneof=critical high medium low"`
	Limit     int     `query:"limit" validate:"omitempty,min=1,max=100"`
}
