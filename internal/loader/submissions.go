package loader

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/internal/models"
)

const (
	submissionSeparator = "|"
	submissionFields    = 3
)

// ParseSubmissions accepts every "<student>|<assignment>|<percent>" line and
// silently skips lines with any other number of fields. A percent that is
// not a finite number fails the whole parse.
func ParseSubmissions(input io.Reader) ([]models.Submission, error) {
	submissions := make([]models.Submission, 0)
	scanner := bufio.NewScanner(input)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parts := strings.Split(strings.TrimSpace(scanner.Text()), submissionSeparator)
		if len(parts) != submissionFields {
			continue
		}

		rawPercent := strings.TrimSpace(parts[2])
		percent, err := strconv.ParseFloat(rawPercent, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Line %d: invalid percent %q", lineNo, rawPercent)
		}
		if math.IsNaN(percent) || math.IsInf(percent, 0) {
			return nil, errors.Errorf("Line %d: invalid percent %q", lineNo, rawPercent)
		}
		submissions = append(submissions, models.Submission{
			StudentID:    strings.TrimSpace(parts[0]),
			AssignmentID: strings.TrimSpace(parts[1]),
			Percent:      percent,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Failed to read submissions")
	}
	return submissions, nil
}
