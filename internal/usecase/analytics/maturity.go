package analytics

// MaturityLevel is one of the five ordinal maturity labels.
type MaturityLevel string

const (
	LevelExploring     MaturityLevel = "exploring"
	LevelExperimenting MaturityLevel = "experimenting"
	LevelEstablishing  MaturityLevel = "establishing"
	LevelEvolving      MaturityLevel = "evolving"
	LevelExcelling     MaturityLevel = "excelling"
)

// LevelForScore maps a 0-10 maturity score to its ordinal label. Total over
// all real inputs; thresholds are half-open ascending at 2, 4, 6 and 8.
func LevelForScore(score float64) MaturityLevel {
	switch {
	case score >= 8:
		return LevelExcelling
	case score >= 6:
		return LevelEvolving
	case score >= 4:
		return LevelEstablishing
	case score >= 2:
		return LevelExperimenting
	default:
		return LevelExploring
	}
}

// LevelForPercentage maps a 0-100 score to its ordinal label.
func LevelForPercentage(score float64) MaturityLevel {
	return LevelForScore(score / 10)
}

// LevelRank returns the ordinal rank of a maturity level, exploring = 0.
func LevelRank(level MaturityLevel) int {
	switch level {
	case LevelExcelling:
		return 4
	case LevelEvolving:
		return 3
	case LevelEstablishing:
		return 2
	case LevelExperimenting:
		return 1
	default:
		return 0
	}
}
