package loader

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/internal/models"
)

// Roster maps lowercased student names to ids. A repeated name keeps its
// first position and takes the latest id.
type Roster struct {
	ids   map[string]string
	names []string
}

func NewRoster() *Roster {
	return &Roster{ids: make(map[string]string)}
}

func (r *Roster) Add(student models.Student) {
	if _, found := r.ids[student.Name]; !found {
		r.names = append(r.names, student.Name)
	}
	r.ids[student.Name] = student.ID
}

func (r *Roster) Lookup(name string) (id string, found bool) {
	id, found = r.ids[name]
	return
}

func (r *Roster) Len() int {
	return len(r.names)
}

// Students returns entries in first-seen order.
func (r *Roster) Students() []models.Student {
	students := make([]models.Student, len(r.names))
	for i, name := range r.names {
		students[i] = models.Student{Name: name, ID: r.ids[name]}
	}
	return students
}

// otherDigits holds characters with a digit value outside the decimal digit
// category: superscripts, subscripts, circled and parenthesized digits.
var otherDigits = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(otherDigits, r)
}

// ParseStudentLine splits "<digits><name>" at the first non-digit.
// A line without leading digits yields an empty id.
func ParseStudentLine(line string) models.Student {
	line = strings.TrimSpace(line)
	split := strings.IndexFunc(line, func(r rune) bool {
		return !isDigit(r)
	})
	if split == -1 {
		split = len(line)
	}
	return models.Student{
		Name: strings.ToLower(strings.TrimSpace(line[split:])),
		ID:   line[:split],
	}
}

func ParseStudents(input io.Reader) (*Roster, error) {
	roster := NewRoster()
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		roster.Add(ParseStudentLine(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Failed to read students")
	}
	return roster, nil
}
