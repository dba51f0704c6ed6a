package grades

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/internal/loader"
	"github.com/bigredeye/gradebook/internal/models"
)

const someRoster = `
101alice
102bob
103carol
104dave
`

const someCatalog = `
homework1
A1
50
Project 1
P1
100
lab
L1
20
`

func makeGradebook(t *testing.T, submissions ...models.Submission) *Gradebook {
	t.Helper()
	roster, err := loader.ParseStudents(strings.NewReader(someRoster))
	if err != nil {
		t.Fatal("Failed to parse roster:", err)
	}
	catalog, err := loader.ParseAssignments(strings.NewReader(someCatalog))
	if err != nil {
		t.Fatal("Failed to parse catalog:", err)
	}
	return NewGradebook(roster, catalog, submissions)
}

func submission(student, assignment string, percent float64) models.Submission {
	return models.Submission{StudentID: student, AssignmentID: assignment, Percent: percent}
}

func checkGrade(t *testing.T, book *Gradebook, name string, expected int) {
	t.Helper()
	grade, err := book.CalcStudentGrade(name)
	if err != nil {
		t.Fatalf("Failed to calc grade for %s: %v", name, err)
	}
	if grade != expected {
		t.Fatalf("Invalid grade for %s: %d, expected: %d", name, grade, expected)
	}
}

func TestStudentGrade(t *testing.T) {
	book := makeGradebook(t, submission("101", "A1", 80.0))
	checkGrade(t, book, "alice", 80)
}

func TestStudentGradeWeighted(t *testing.T) {
	book := makeGradebook(t,
		submission("101", "A1", 100),
		submission("101", "P1", 50),
		submission("102", "L1", 75),
	)

	// (50 + 50) / 150
	checkGrade(t, book, "alice", 67)
	// lab is the only graded assignment for bob
	checkGrade(t, book, "bob", 75)
}

func TestStudentGradeWithoutSubmissions(t *testing.T) {
	book := makeGradebook(t, submission("101", "A1", 80), submission("999", "A1", 10))
	checkGrade(t, book, "carol", 0)
}

func TestStudentNotFound(t *testing.T) {
	book := makeGradebook(t, submission("101", "A1", 80))

	_, err := book.CalcStudentGrade("eve")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("Expected ErrStudentNotFound, got %v", err)
	}
}

func TestStudentGradeRepeatedSubmissions(t *testing.T) {
	book := makeGradebook(t,
		submission("102", "P1", 50),
		submission("102", "P1", 60),
	)

	score, err := book.CalcStudentScore("bob")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(StudentScore{Earned: 110, Total: 200}, *score); diff != "" {
		t.Fatalf("Invalid score (-want +got):\n%s", diff)
	}
	checkGrade(t, book, "bob", 55)
}

func TestStudentGradeIgnoresOrphans(t *testing.T) {
	book := makeGradebook(t,
		submission("101", "A1", 40),
		submission("101", "ZZ", 100),
	)
	checkGrade(t, book, "alice", 40)
}

func TestRoundHalfToEven(t *testing.T) {
	cases := map[float64]int{
		0.5:  0,
		1.5:  2,
		2.5:  2,
		62.5: 62,
		63.5: 64,
		80.4: 80,
		80.6: 81,
	}
	for value, expected := range cases {
		if got := Round(value); got != expected {
			t.Fatalf("Invalid round(%v): %d, expected: %d", value, got, expected)
		}
	}

	// 12.5 of 20 points is exactly 62.5%
	book := makeGradebook(t, submission("103", "L1", 62.5))
	checkGrade(t, book, "carol", 62)
}

func TestQueriesArePure(t *testing.T) {
	book := makeGradebook(t,
		submission("101", "A1", 33),
		submission("101", "P1", 71),
		submission("102", "A1", 90),
	)

	first, err := book.CalcStandings()
	if err != nil {
		t.Fatal(err)
	}
	second, err := book.CalcStandings()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Standings differ between calls:\n%s", diff)
	}

	statsA, _ := book.AssignmentStats("homework1")
	statsB, _ := book.AssignmentStats("homework1")
	if diff := cmp.Diff(statsA, statsB); diff != "" {
		t.Fatalf("Stats differ between calls:\n%s", diff)
	}
}

func TestAssignmentStats(t *testing.T) {
	book := makeGradebook(t, submission("101", "A1", 80.0))

	stats, err := book.AssignmentStats("homework1")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(RoundedStats{Min: 80, Avg: 80, Max: 80}, stats.Rounded()); diff != "" {
		t.Fatalf("Invalid stats (-want +got):\n%s", diff)
	}
}

func TestAssignmentStatsRoundsAtTheEnd(t *testing.T) {
	book := makeGradebook(t,
		submission("101", "P1", 60.4),
		submission("102", "P1", 66.4),
		submission("103", "P1", 87.5),
		submission("104", "P1", 70.3),
	)

	stats, err := book.AssignmentStats("project 1")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Count != 4 {
		t.Fatalf("Invalid count: %d", stats.Count)
	}
	if math.Abs(stats.Avg-71.15) > 1e-9 {
		t.Fatalf("Invalid avg: %v", stats.Avg)
	}
	if diff := cmp.Diff(RoundedStats{Min: 60, Avg: 71, Max: 88}, stats.Rounded()); diff != "" {
		t.Fatalf("Invalid stats (-want +got):\n%s", diff)
	}
}

func TestAssignmentNotFound(t *testing.T) {
	book := makeGradebook(t, submission("101", "A1", 80))

	if _, err := book.AssignmentStats("essay"); !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("Expected ErrAssignmentNotFound for unknown name, got %v", err)
	}
	if _, err := book.AssignmentStats("lab"); !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("Expected ErrAssignmentNotFound without submissions, got %v", err)
	}
	if _, err := book.AssignmentHistogram("lab"); !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("Expected ErrAssignmentNotFound for histogram, got %v", err)
	}
}

func TestStandings(t *testing.T) {
	book := makeGradebook(t,
		submission("104", "A1", 50),
		submission("101", "A1", 100),
	)

	standings, err := book.CalcStandings()
	if err != nil {
		t.Fatal(err)
	}

	expected := []StudentGrade{
		{Name: "alice", ID: "101", Percent: 100, Score: StudentScore{Earned: 50, Total: 50}},
		{Name: "bob", ID: "102", Percent: 0},
		{Name: "carol", ID: "103", Percent: 0},
		{Name: "dave", ID: "104", Percent: 50, Score: StudentScore{Earned: 25, Total: 50}},
	}
	if diff := cmp.Diff(expected, standings); diff != "" {
		t.Fatalf("Invalid standings (-want +got):\n%s", diff)
	}
}

func TestSummarizeAssignments(t *testing.T) {
	book := makeGradebook(t,
		submission("101", "A1", 10),
		submission("102", "A1", 90),
	)

	expected := []AssignmentSummary{
		{
			Name: "homework1", ID: "A1", MaxPoints: 50, Submissions: 2,
			Stats:   &RoundedStats{Min: 10, Avg: 50, Max: 90},
			Buckets: []int{1, 0, 0, 1},
		},
		{Name: "project 1", ID: "P1", MaxPoints: 100},
		{Name: "lab", ID: "L1", MaxPoints: 20},
	}
	if diff := cmp.Diff(expected, book.SummarizeAssignments()); diff != "" {
		t.Fatalf("Invalid summary (-want +got):\n%s", diff)
	}
}

func TestStandingsSortedByName(t *testing.T) {
	roster, err := loader.ParseStudents(strings.NewReader("3zed\n1mike\n2adam\n"))
	if err != nil {
		t.Fatal(err)
	}
	catalog, err := loader.ParseAssignments(strings.NewReader(someCatalog))
	if err != nil {
		t.Fatal(err)
	}
	book := NewGradebook(roster, catalog, []models.Submission{submission("1", "A1", 50)})

	standings, err := book.CalcStandings()
	if err != nil {
		t.Fatal(err)
	}

	names := make([]string, len(standings))
	for i, student := range standings {
		names[i] = student.Name
	}
	if diff := cmp.Diff([]string{"adam", "mike", "zed"}, names); diff != "" {
		t.Fatalf("Standings must be ordered by name (-want +got):\n%s", diff)
	}
	if standings[1].Percent != 50 {
		t.Fatalf("Invalid grade for mike: %d", standings[1].Percent)
	}
}
