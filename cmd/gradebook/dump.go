package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/bigredeye/gradebook/internal/app"
	"github.com/bigredeye/gradebook/internal/grades"
)

func makeDumpStandingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Dump grades of all students",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := app.LoadGradebook(conf, log)
			if err != nil {
				return err
			}
			return dumpStandings(book, cmd.OutOrStdout())
		},
	}
}

func dumpStandings(book *grades.Gradebook, out io.Writer) error {
	standings, err := book.CalcStandings()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, student := range standings {
		fmt.Fprintf(w, "%s\t%s\t%d%%\n", student.Name, student.ID, student.Percent)
	}
	return w.Flush()
}

type statsDump struct {
	Assignments []grades.AssignmentSummary `yaml:"assignments"`
}

func makeDumpStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Dump statistics of all assignments as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := app.LoadGradebook(conf, log)
			if err != nil {
				return err
			}
			return dumpStats(book, cmd.OutOrStdout())
		},
	}
}

func dumpStats(book *grades.Gradebook, out io.Writer) error {
	body, err := yaml.Marshal(statsDump{Assignments: book.SummarizeAssignments()})
	if err != nil {
		return errors.Wrap(err, "Failed to marshal stats")
	}
	_, err = out.Write(body)
	return err
}
