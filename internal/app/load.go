package app

import (
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/config"
	"github.com/bigredeye/gradebook/internal/grades"
	"github.com/bigredeye/gradebook/internal/loader"
)

// LoadGradebook runs all three loaders. Any failure is fatal for the run.
func LoadGradebook(conf *config.Config, logger *zap.Logger) (*grades.Gradebook, error) {
	l := loader.NewLoader(logger)

	roster, err := l.LoadStudents(conf.Data.Students)
	if err != nil {
		return nil, err
	}

	catalog, err := l.LoadAssignments(conf.Data.Assignments)
	if err != nil {
		return nil, err
	}

	submissions, err := l.LoadSubmissions(conf.Data.Submissions)
	if err != nil {
		return nil, err
	}

	return grades.NewGradebook(roster, catalog, submissions), nil
}
