package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/grades"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	"github.com/bigredeye/gradebook/internal/report"
)

const (
	MenuStudentGrade    = "1"
	MenuAssignmentStats = "2"
	MenuAssignmentGraph = "3"

	invalidSelection = "Invalid selection"
)

var menu = []string{
	MenuStudentGrade + ". Student grade",
	MenuAssignmentStats + ". Assignment statistics",
	MenuAssignmentGraph + ". Assignment graph",
}

// App answers one query against a loaded gradebook and prints the result.
// Not-found answers are printed, not returned.
type App struct {
	book     *grades.Gradebook
	renderer report.Renderer
	out      io.Writer
	logger   *zap.Logger
}

func New(book *grades.Gradebook, renderer report.Renderer, out io.Writer, logger *zap.Logger) *App {
	return &App{
		book:     book,
		renderer: renderer,
		out:      out,
		logger:   logger.With(lf.Module("app")),
	}
}

// NormalizeName makes user input comparable with loaded names.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (a *App) printNotFound(err error) error {
	if errors.Is(err, grades.ErrStudentNotFound) || errors.Is(err, grades.ErrAssignmentNotFound) {
		_, err = fmt.Fprintln(a.out, err.Error())
	}
	return err
}

func (a *App) logAssignment(msg, name string, fields ...zap.Field) {
	assignment, _ := a.book.Catalog.Lookup(name)
	fields = append(fields, lf.AssignmentName(name), lf.AssignmentID(assignment.ID))
	a.logger.Debug(msg, fields...)
}

func (a *App) PrintGrade(name string) error {
	name = NormalizeName(name)
	grade, err := a.book.CalcStudentGrade(name)
	if err != nil {
		a.logger.Debug("No grade", lf.StudentName(name), zap.Error(err))
		return a.printNotFound(err)
	}

	id, _ := a.book.Roster.Lookup(name)
	a.logger.Debug("Calculated grade", lf.StudentName(name), lf.StudentID(id), zap.Int("grade", grade))
	_, err = fmt.Fprintf(a.out, "%d%%\n", grade)
	return err
}

func (a *App) PrintStats(name string) error {
	name = NormalizeName(name)
	stats, err := a.book.AssignmentStats(name)
	if err != nil {
		a.logger.Debug("No stats", lf.AssignmentName(name), zap.Error(err))
		return a.printNotFound(err)
	}

	a.logAssignment("Calculated stats", name, lf.Count(stats.Count))
	rounded := stats.Rounded()
	_, err = fmt.Fprintf(a.out, "Min: %d%%\nAvg: %d%%\nMax: %d%%\n", rounded.Min, rounded.Avg, rounded.Max)
	return err
}

func (a *App) Graph(name string) error {
	name = NormalizeName(name)
	histogram, err := a.book.AssignmentHistogram(name)
	if err != nil {
		a.logger.Debug("No histogram", lf.AssignmentName(name), zap.Error(err))
		return a.printNotFound(err)
	}

	a.logAssignment("Rendering histogram", name)
	return a.renderer.Render(histogram)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "Failed to read input")
	}
	return strings.TrimSpace(line), nil
}

func (a *App) prompt(reader *bufio.Reader, question string) (string, error) {
	if _, err := fmt.Fprint(a.out, question); err != nil {
		return "", err
	}
	return readLine(reader)
}

// RunMenu shows the menu, reads one selection and answers it.
func (a *App) RunMenu(in io.Reader) error {
	reader := bufio.NewReader(in)

	for _, item := range menu {
		if _, err := fmt.Fprintln(a.out, item); err != nil {
			return err
		}
	}

	choice, err := a.prompt(reader, "Enter your selection: ")
	if err != nil {
		return err
	}

	var question string
	var query func(name string) error
	switch choice {
	case MenuStudentGrade:
		question, query = "What is the student's name: ", a.PrintGrade
	case MenuAssignmentStats:
		question, query = "What is the assignment name: ", a.PrintStats
	case MenuAssignmentGraph:
		question, query = "What is the assignment name: ", a.Graph
	default:
		a.logger.Debug("Invalid selection", zap.String("choice", choice))
		_, err = fmt.Fprintln(a.out, invalidSelection)
		return err
	}

	name, err := a.prompt(reader, question)
	if err != nil {
		return err
	}
	return query(name)
}
