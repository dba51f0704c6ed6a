package grades

import (
	"strings"

	"golang.org/x/exp/slices"
)

type StudentGrade struct {
	Name    string
	ID      string
	Percent int
	Score   StudentScore
}

type AssignmentSummary struct {
	Name        string        `yaml:"name"`
	ID          string        `yaml:"id"`
	MaxPoints   int           `yaml:"max_points"`
	Submissions int           `yaml:"submissions"`
	Stats       *RoundedStats `yaml:"stats,omitempty"`
	Buckets     []int         `yaml:"buckets,omitempty"`
}

// CalcStandings grades every roster student, ordered by name.
func (g *Gradebook) CalcStandings() ([]StudentGrade, error) {
	students := g.Roster.Students()
	standings := make([]StudentGrade, 0, len(students))
	for _, student := range students {
		score, err := g.CalcStudentScore(student.Name)
		if err != nil {
			return nil, err
		}
		standings = append(standings, StudentGrade{
			Name:    student.Name,
			ID:      student.ID,
			Percent: score.Percent(),
			Score:   *score,
		})
	}

	slices.SortFunc(standings, func(lhs, rhs StudentGrade) int {
		return strings.Compare(lhs.Name, rhs.Name)
	})
	return standings, nil
}

// SummarizeAssignments lists every catalog assignment in catalog order.
// Assignments nobody submitted carry no stats.
func (g *Gradebook) SummarizeAssignments() []AssignmentSummary {
	assignments := g.Catalog.Assignments()
	summaries := make([]AssignmentSummary, len(assignments))
	for i, assignment := range assignments {
		summaries[i] = AssignmentSummary{
			Name:      assignment.Name,
			ID:        assignment.ID,
			MaxPoints: assignment.MaxPoints,
		}

		scores, err := g.AssignmentScores(assignment.Name)
		if err != nil {
			continue
		}
		stats := CalcStats(scores).Rounded()
		histogram := Histogram{Buckets: BucketScores(scores)}
		summaries[i].Submissions = len(scores)
		summaries[i].Stats = &stats
		summaries[i].Buckets = histogram.Counts()
	}
	return summaries
}
