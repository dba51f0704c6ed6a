package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bigredeye/gradebook/internal/grades"
	"github.com/bigredeye/gradebook/internal/loader"
)

func makeGradebook(t *testing.T) *grades.Gradebook {
	t.Helper()
	roster, err := loader.ParseStudents(strings.NewReader("102bob\n101alice\n"))
	if err != nil {
		t.Fatal(err)
	}
	catalog, err := loader.ParseAssignments(strings.NewReader("homework1\nA1\n50\nProject 1\nP1\n100\n"))
	if err != nil {
		t.Fatal(err)
	}
	submissions, err := loader.ParseSubmissions(strings.NewReader("101|A1|10\n102|A1|90\n"))
	if err != nil {
		t.Fatal(err)
	}
	return grades.NewGradebook(roster, catalog, submissions)
}

func TestDumpStandings(t *testing.T) {
	out := &bytes.Buffer{}
	if err := dumpStandings(makeGradebook(t), out); err != nil {
		t.Fatal(err)
	}

	expected := "alice  101  10%\nbob    102  90%\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Fatalf("Invalid standings (-want +got):\n%s", diff)
	}
}

func TestDumpStats(t *testing.T) {
	out := &bytes.Buffer{}
	if err := dumpStats(makeGradebook(t), out); err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{
		"- name: homework1",
		"  submissions: 2",
		"    avg: 50",
		"- name: project 1",
		"  submissions: 0",
	} {
		if !strings.Contains(out.String(), line) {
			t.Fatalf("Missing %q in:\n%s", line, out.String())
		}
	}
	if strings.Count(out.String(), "stats:") != 1 {
		t.Fatalf("Only submitted assignments carry stats:\n%s", out.String())
	}
}
