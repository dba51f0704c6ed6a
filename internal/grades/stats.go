package grades

type Stats struct {
	Min   float64
	Avg   float64
	Max   float64
	Count int
}

type RoundedStats struct {
	Min int `yaml:"min"`
	Avg int `yaml:"avg"`
	Max int `yaml:"max"`
}

func (s Stats) Rounded() RoundedStats {
	return RoundedStats{
		Min: Round(s.Min),
		Avg: Round(s.Avg),
		Max: Round(s.Max),
	}
}

func CalcStats(scores []float64) Stats {
	stats := Stats{Count: len(scores)}
	if len(scores) == 0 {
		return stats
	}

	stats.Min, stats.Max = scores[0], scores[0]
	sum := 0.0
	for _, score := range scores {
		if score < stats.Min {
			stats.Min = score
		}
		if score > stats.Max {
			stats.Max = score
		}
		sum += score
	}
	stats.Avg = sum / float64(len(scores))
	return stats
}

func (g *Gradebook) AssignmentStats(name string) (*Stats, error) {
	scores, err := g.AssignmentScores(name)
	if err != nil {
		return nil, err
	}
	stats := CalcStats(scores)
	return &stats, nil
}
