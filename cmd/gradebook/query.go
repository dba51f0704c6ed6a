package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bigredeye/gradebook/internal/app"
	"github.com/bigredeye/gradebook/internal/report"
)

func makeApp(cmd *cobra.Command) (*app.App, error) {
	book, err := app.LoadGradebook(conf, log)
	if err != nil {
		return nil, err
	}

	renderer, err := report.NewRenderer(conf.Report.Format, conf.Report.Dir, cmd.OutOrStdout(), log)
	if err != nil {
		return nil, err
	}

	return app.New(book, renderer, cmd.OutOrStdout(), log), nil
}

func runMenu(cmd *cobra.Command) error {
	a, err := makeApp(cmd)
	if err != nil {
		return err
	}
	return a.RunMenu(cmd.InOrStdin())
}

func makeMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}
}

func makeGradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grade <student name>",
		Short: "Print overall grade of a student",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := makeApp(cmd)
			if err != nil {
				return err
			}
			return a.PrintGrade(strings.Join(args, " "))
		},
	}
}

func makeStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <assignment name>",
		Short: "Print min, average and max score of an assignment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := makeApp(cmd)
			if err != nil {
				return err
			}
			return a.PrintStats(strings.Join(args, " "))
		},
	}
}

func makeGraphCommand() *cobra.Command {
	var format string
	var dir string

	cmd := &cobra.Command{
		Use:   "graph <assignment name>",
		Short: "Draw a histogram of assignment scores",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				conf.Report.Format = format
			}
			if cmd.Flags().Changed("dir") {
				conf.Report.Dir = dir
			}

			a, err := makeApp(cmd)
			if err != nil {
				return err
			}
			return a.Graph(strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Report format: text or png")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory for png reports")

	return cmd
}
