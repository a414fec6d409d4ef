package analytics

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/orgmind/assessment-engine/internal/adapter/dto/insight"
	"github.com/orgmind/assessment-engine/internal/domain/entities"
)

// SkillLevel is one of the five ordinal AI skill levels.
type SkillLevel string

const (
	SkillNone         SkillLevel = "none"
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

const (
	maxMemberStrengths   = 5
	maxDevelopmentAreas  = 5
	maxSummarySkills     = 10
	skillTargetLevel     = SkillIntermediate
	overallSkillName     = "Overall AI Skills"
	championStrengthName = "AI Champion"
)

// skillLevelSynonyms normalizes the free-text level strings the ingestion
// pipeline records.
var skillLevelSynonyms = map[string]SkillLevel{
	"expert":        SkillExpert,
	"advanced_user": SkillExpert,
	"advanced":      SkillAdvanced,
	"proficient":    SkillAdvanced,
	"intermediate":  SkillIntermediate,
	"moderate":      SkillIntermediate,
	"beginner":      SkillBeginner,
	"basic":         SkillBeginner,
	"learning":      SkillBeginner,
}

// skillLevelScores is the representative numeric score per level, used for
// averaging and re-classification.
var skillLevelScores = map[SkillLevel]float64{
	SkillNone:         0,
	SkillBeginner:     35,
	SkillIntermediate: 60,
	SkillAdvanced:     80,
	SkillExpert:       95,
}

// NormalizeSkillLevel maps a free-text level string onto the five-level
// scale; unrecognized or empty input maps to none.
func NormalizeSkillLevel(level string) SkillLevel {
	if l, ok := skillLevelSynonyms[strings.ToLower(level)]; ok {
		return l
	}
	return SkillNone
}

// SkillLevelScore returns the representative numeric score for a level.
func SkillLevelScore(level SkillLevel) float64 {
	return skillLevelScores[level]
}

// ScoreToSkillLevel re-classifies a numeric score onto the five-level scale.
func ScoreToSkillLevel(score float64) SkillLevel {
	switch {
	case score >= 90:
		return SkillExpert
	case score >= 70:
		return SkillAdvanced
	case score >= 50:
		return SkillIntermediate
	case score >= 25:
		return SkillBeginner
	default:
		return SkillNone
	}
}

// BuildTeamSkills transforms skills profiles into the team skills payload.
// When withDepartmentBreakdown is set the summary is additionally computed
// once per distinct department present.
func BuildTeamSkills(orgID uuid.UUID, profiles []*entities.SkillsProfile, withDepartmentBreakdown bool) insight.TeamSkillsResponse {
	members := make([]insight.MemberSkills, 0, len(profiles))
	for _, p := range profiles {
		members = append(members, buildMemberSkills(p))
	}

	resp := insight.TeamSkillsResponse{
		OrganizationID: orgID.String(),
		Members:        members,
		Summary:        summarizeMembers(members),
	}

	if withDepartmentBreakdown {
		breakdown := map[string]insight.TeamSkillsSummary{}
		for _, m := range members {
			if m.Department == "" {
				continue
			}
			if _, done := breakdown[m.Department]; done {
				continue
			}
			var subset []insight.MemberSkills
			for _, other := range members {
				if other.Department == m.Department {
					subset = append(subset, other)
				}
			}
			breakdown[m.Department] = summarizeMembers(subset)
		}
		if len(breakdown) > 0 {
			resp.DepartmentBreakdown = breakdown
		}
	}

	return resp
}

// buildMemberSkills flattens one profile into its skills list: an overall
// entry first, then one entry per recorded tool (proficiency defaults to
// intermediate when unspecified).
func buildMemberSkills(p *entities.SkillsProfile) insight.MemberSkills {
	level := NormalizeSkillLevel(p.AISkillLevel)
	overallScore := p.AISkillScore
	if overallScore == 0 {
		overallScore = SkillLevelScore(level)
	}

	skills := make([]insight.SkillEntry, 0, len(p.ToolsUsed)+1)
	skills = append(skills, insight.SkillEntry{
		Name:  overallSkillName,
		Level: string(level),
		Score: overallScore,
	})
	for _, tool := range p.ToolsUsed {
		name := tool.Name
		if name == "" {
			name = "Unknown"
		}
		proficiency := tool.Proficiency
		if proficiency == "" {
			proficiency = string(SkillIntermediate)
		}
		toolLevel := NormalizeSkillLevel(proficiency)
		skills = append(skills, insight.SkillEntry{
			Name:  name,
			Level: string(toolLevel),
			Score: SkillLevelScore(toolLevel),
		})
	}

	strengths := make([]string, 0, maxMemberStrengths)
	for _, ev := range p.Evidence {
		if ev.Type != "strength" {
			continue
		}
		strengths = append(strengths, ev.Content)
		if len(strengths) == maxMemberStrengths {
			break
		}
	}
	if len(strengths) == 0 && p.IsChampion {
		strengths = append(strengths, championStrengthName)
	}

	developmentAreas := p.RecommendedTraining
	if len(developmentAreas) > maxDevelopmentAreas {
		developmentAreas = developmentAreas[:maxDevelopmentAreas]
	}

	name := p.PersonName
	if name == "" {
		name = "Unknown"
	}

	return insight.MemberSkills{
		PersonName:       name,
		Title:            p.Title,
		Department:       p.Department,
		OverallLevel:     string(level),
		OverallScore:     overallScore,
		IsChampion:       p.IsChampion,
		ChampionReason:   p.ChampionReason,
		GrowthPotential:  p.GrowthPotential,
		Strengths:        strengths,
		Skills:           skills,
		DevelopmentAreas: developmentAreas,
	}
}

// summarizeMembers aggregates one member subset: level distribution, mean
// score, top skills by mean score and gaps against the intermediate target.
func summarizeMembers(members []insight.MemberSkills) insight.TeamSkillsSummary {
	summary := insight.TeamSkillsSummary{
		TotalMembers: len(members),
		AverageLevel: string(SkillNone),
		TopSkills:    []insight.SkillAggregate{},
		SkillGaps:    []insight.SkillGapItem{},
		Champions:    []string{},
	}
	if len(members) == 0 {
		return summary
	}

	type aggregate struct {
		total       float64
		count       int
		belowTarget int
	}
	aggregates := map[string]*aggregate{}
	var skillOrder []string

	totalScore := 0.0
	targetScore := SkillLevelScore(skillTargetLevel)

	for _, m := range members {
		switch SkillLevel(m.OverallLevel) {
		case SkillExpert:
			summary.Distribution.Expert++
		case SkillAdvanced:
			summary.Distribution.Advanced++
		case SkillIntermediate:
			summary.Distribution.Intermediate++
		case SkillBeginner:
			summary.Distribution.Beginner++
		default:
			summary.Distribution.None++
		}
		totalScore += m.OverallScore

		if m.IsChampion {
			summary.Champions = append(summary.Champions, m.PersonName)
		}

		for _, s := range m.Skills {
			agg, ok := aggregates[s.Name]
			if !ok {
				agg = &aggregate{}
				aggregates[s.Name] = agg
				skillOrder = append(skillOrder, s.Name)
			}
			agg.total += s.Score
			agg.count++
			if s.Score < targetScore {
				agg.belowTarget++
			}
		}
	}

	summary.AverageScore = round2(totalScore / float64(len(members)))
	summary.AverageLevel = string(ScoreToSkillLevel(summary.AverageScore))

	topSkills := make([]insight.SkillAggregate, 0, len(skillOrder))
	gaps := make([]insight.SkillGapItem, 0, len(skillOrder))
	for _, name := range skillOrder {
		agg := aggregates[name]
		avg := round2(agg.total / float64(agg.count))
		topSkills = append(topSkills, insight.SkillAggregate{
			Name:         name,
			AverageScore: avg,
			Level:        string(ScoreToSkillLevel(avg)),
			MemberCount:  agg.count,
		})
		if gap := round2(targetScore - avg); gap > 0 {
			gaps = append(gaps, insight.SkillGapItem{
				Name:               name,
				AverageScore:       avg,
				Gap:                gap,
				MembersBelowTarget: agg.belowTarget,
			})
		}
	}

	// score-descending with name ascending as the deterministic tie-break
	sort.SliceStable(topSkills, func(i, j int) bool {
		if topSkills[i].AverageScore != topSkills[j].AverageScore {
			return topSkills[i].AverageScore > topSkills[j].AverageScore
		}
		return topSkills[i].Name < topSkills[j].Name
	})
	if len(topSkills) > maxSummarySkills {
		topSkills = topSkills[:maxSummarySkills]
	}
	summary.TopSkills = topSkills

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Gap != gaps[j].Gap {
			return gaps[i].Gap > gaps[j].Gap
		}
		return gaps[i].Name < gaps[j].Name
	})
	if len(gaps) > maxSummarySkills {
		gaps = gaps[:maxSummarySkills]
	}
	summary.SkillGaps = gaps

	return summary
}
