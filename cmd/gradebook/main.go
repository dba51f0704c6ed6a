package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/config"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	zlog "github.com/bigredeye/gradebook/pkg/log"
)

var (
	log  = zap.NewNop()
	conf *config.Config
)

var flags struct {
	config      string
	students    string
	assignments string
	submissions string
}

var (
	rootCmd = &cobra.Command{
		Use:               "gradebook",
		Short:             "Student grades and assignment statistics",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dump the whole gradebook",
	}
)

func setup(cmd *cobra.Command, args []string) error {
	var err error
	conf, err = config.ParseConfig(flags.config)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("students") {
		conf.Data.Students = flags.students
	}
	if cmd.Flags().Changed("assignments") {
		conf.Data.Assignments = flags.assignments
	}
	if cmd.Flags().Changed("submissions") {
		conf.Data.Submissions = flags.submissions
	}

	logger, err := zlog.Init(zlog.Options{
		Level:      conf.Log.Level,
		File:       conf.Log.File,
		Production: conf.Log.Production,
	})
	if err != nil {
		return err
	}
	log = logger.With(lf.RunID(uuid.NewString()))
	return nil
}

func initCommands() {
	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flags.config, "config", "", "Path to the config")
	persistent.StringVar(&flags.students, "students", "", "Students file")
	persistent.StringVar(&flags.assignments, "assignments", "", "Assignments file")
	persistent.StringVar(&flags.submissions, "submissions", "", "Submissions directory")

	dumpCmd.AddCommand(makeDumpStandingsCommand())
	dumpCmd.AddCommand(makeDumpStatsCommand())
	rootCmd.AddCommand(makeMenuCommand())
	rootCmd.AddCommand(makeGradeCommand())
	rootCmd.AddCommand(makeStatsCommand())
	rootCmd.AddCommand(makeGraphCommand())
	rootCmd.AddCommand(dumpCmd)
}

func init() {
	initCommands()
}

func main() {
	defer zlog.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s\n", err.Error())
		zlog.Sync()
		os.Exit(1)
	}
}
