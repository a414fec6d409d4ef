package analytics

import "testing"

func TestLevelForScore(t *testing.T) {
	cases := []struct {
		score float64
		want  MaturityLevel
	}{
		{0, LevelExploring},
		{1.99, LevelExploring},
		{2, LevelExperimenting},
		{3.5, LevelExperimenting},
		{4, LevelEstablishing},
		{5.9, LevelEstablishing},
		{6, LevelEvolving},
		{7.2, LevelEvolving},
		{8, LevelExcelling},
		{10, LevelExcelling},
	}
	for _, c := range cases {
		if got := LevelForScore(c.score); got != c.want {
			t.Errorf("LevelForScore(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestLevelForPercentage(t *testing.T) {
	if got := LevelForPercentage(80); got != LevelExcelling {
		t.Fatalf("LevelForPercentage(80) = %s, want excelling", got)
	}
	if got := LevelForPercentage(59.9); got != LevelEstablishing {
		t.Fatalf("LevelForPercentage(59.9) = %s, want establishing", got)
	}
}

func TestLevelForScoreMonotonic(t *testing.T) {
	prev := -1
	for score := 0.0; score <= 10.0; score += 0.25 {
		rank := LevelRank(LevelForScore(score))
		if rank < prev {
			t.Fatalf("level rank decreased at score %v: %d < %d", score, rank, prev)
		}
		prev = rank
	}
}
