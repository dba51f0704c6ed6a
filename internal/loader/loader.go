package loader

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/models"
)

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger.With(lf.Module("loader"))}
}

func (l *Loader) open(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open %s", path)
	}
	if info, err := file.Stat(); err == nil {
		l.logger.Debug("Reading file", lf.Path(path), lf.Size(info.Size()))
	}
	return file, nil
}

func (l *Loader) LoadStudents(path string) (*Roster, error) {
	file, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	roster, err := ParseStudents(file)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load students from %s", path)
	}
	l.logger.Debug("Loaded students", lf.Path(path), lf.Count(roster.Len()))
	return roster, nil
}

func (l *Loader) LoadAssignments(path string) (*Catalog, error) {
	file, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	catalog, err := ParseAssignments(file)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load assignments from %s", path)
	}
	l.logger.Debug("Loaded assignments", lf.Path(path), lf.Count(catalog.Len()))
	return catalog, nil
}

func (l *Loader) loadSubmissionsFile(path string) ([]models.Submission, error) {
	file, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	submissions, err := ParseSubmissions(file)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load submissions from %s", path)
	}
	return submissions, nil
}

// LoadSubmissions reads every regular file in dir in lexical order.
func (l *Loader) LoadSubmissions(dir string) ([]models.Submission, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to list submissions in %s", dir)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	submissions := make([]models.Submission, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			l.logger.Debug("Skipping directory", lf.Path(filepath.Join(dir, entry.Name())))
			continue
		}

		fileSubmissions, err := l.loadSubmissionsFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, fileSubmissions...)
	}

	l.logger.Debug("Loaded submissions", lf.Path(dir), lf.Count(len(submissions)))
	return submissions, nil
}
