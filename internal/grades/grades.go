package grades

import (
	"math"

	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/internal/loader"
	"github.com/bigredeye/gradebook/internal/models"
)

var (
	ErrStudentNotFound    = errors.New("Student not found")
	ErrAssignmentNotFound = errors.New("Assignment not found")
)

// Gradebook is the read-only snapshot every query runs against.
type Gradebook struct {
	Roster      *loader.Roster
	Catalog     *loader.Catalog
	Submissions []models.Submission
}

func NewGradebook(roster *loader.Roster, catalog *loader.Catalog, submissions []models.Submission) *Gradebook {
	return &Gradebook{
		Roster:      roster,
		Catalog:     catalog,
		Submissions: submissions,
	}
}

// Round rounds half to even.
func Round(value float64) int {
	return int(math.RoundToEven(value))
}

type StudentScore struct {
	Earned float64
	Total  int
}

// Percent is 0 when the student has no submissions at all.
func (s StudentScore) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return Round(s.Earned / float64(s.Total) * 100)
}

// CalcStudentScore sums earned and max points over every submission of the
// student. Repeated submissions for one assignment are each counted, and
// assignments without submissions stay out of the total.
func (g *Gradebook) CalcStudentScore(name string) (*StudentScore, error) {
	id, found := g.Roster.Lookup(name)
	if !found {
		return nil, ErrStudentNotFound
	}

	score := &StudentScore{}
	for _, assignment := range g.Catalog.Assignments() {
		for _, submission := range g.Submissions {
			if submission.StudentID != id || submission.AssignmentID != assignment.ID {
				continue
			}
			score.Earned += submission.Percent / 100.0 * float64(assignment.MaxPoints)
			score.Total += assignment.MaxPoints
		}
	}
	return score, nil
}

func (g *Gradebook) CalcStudentGrade(name string) (int, error) {
	score, err := g.CalcStudentScore(name)
	if err != nil {
		return 0, err
	}
	return score.Percent(), nil
}

// AssignmentScores returns the percents of every submission for the named
// assignment. An unknown name and an assignment nobody submitted are both
// ErrAssignmentNotFound.
func (g *Gradebook) AssignmentScores(name string) ([]float64, error) {
	assignment, found := g.Catalog.Lookup(name)
	if !found {
		return nil, ErrAssignmentNotFound
	}

	scores := make([]float64, 0)
	for _, submission := range g.Submissions {
		if submission.AssignmentID == assignment.ID {
			scores = append(scores, submission.Percent)
		}
	}
	if len(scores) == 0 {
		return nil, ErrAssignmentNotFound
	}
	return scores, nil
}
