package loader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/internal/models"
)

const linesPerAssignment = 3

// Catalog maps lowercased assignment names to assignments, ordered the same
// way as Roster.
type Catalog struct {
	assignments map[string]models.Assignment
	names       []string
}

func NewCatalog() *Catalog {
	return &Catalog{assignments: make(map[string]models.Assignment)}
}

func (c *Catalog) Add(assignment models.Assignment) {
	if _, found := c.assignments[assignment.Name]; !found {
		c.names = append(c.names, assignment.Name)
	}
	c.assignments[assignment.Name] = assignment
}

func (c *Catalog) Lookup(name string) (assignment models.Assignment, found bool) {
	assignment, found = c.assignments[name]
	return
}

func (c *Catalog) Len() int {
	return len(c.names)
}

func (c *Catalog) Assignments() []models.Assignment {
	assignments := make([]models.Assignment, len(c.names))
	for i, name := range c.names {
		assignments[i] = c.assignments[name]
	}
	return assignments
}

// ParseAssignments reads name / id / points triples from the non-empty lines
// of input. A trailing incomplete triple is dropped.
func ParseAssignments(input io.Reader) (*Catalog, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Failed to read assignments")
	}

	catalog := NewCatalog()
	for i := 0; i+linesPerAssignment <= len(lines); i += linesPerAssignment {
		name, id, rawPoints := lines[i], lines[i+1], lines[i+2]
		points, err := strconv.Atoi(rawPoints)
		if err != nil {
			return nil, errors.Wrapf(err, "Invalid points %q for assignment %q", rawPoints, name)
		}
		catalog.Add(models.Assignment{
			Name:      strings.ToLower(name),
			ID:        id,
			MaxPoints: points,
		})
	}
	return catalog, nil
}
