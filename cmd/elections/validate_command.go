package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/TvBMcMaster/gsa-election-validation/internal/fileutil"
	"github.com/TvBMcMaster/gsa-election-validation/internal/logging"
	"github.com/TvBMcMaster/gsa-election-validation/internal/runlock"
	"github.com/TvBMcMaster/gsa-election-validation/internal/validate"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var resultsFlag string
	var studentsFlag string
	var destFlag string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate form ballots against the student roster",
		Long: `Validate cross-checks every ballot row from the online form export
against the student list supplied by the university. Accepted rows are
written to validated_results.csv, rejected rows to voided_results.csv with a
reason, both under the destination directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			if err := fileutil.CheckInputFile(resultsFlag); err != nil {
				return fmt.Errorf("results: %w", err)
			}
			if err := fileutil.CheckInputFile(studentsFlag); err != nil {
				return fmt.Errorf("students: %w", err)
			}

			dest := destFlag
			if dest == "" {
				dest = "validation_results_" + time.Now().Format("20060102")
			}

			logger, err := ctx.newRunLogger(cfg)
			if err != nil {
				return err
			}

			if err := fileutil.EnsureDestination(dest); err != nil {
				if !errors.Is(err, fileutil.ErrDirExists) {
					return err
				}
				logger.Warn("destination directory exists, results will be overwritten",
					logging.String("destination", dest),
				)
			}

			lock, err := runlock.Acquire(dest)
			if err != nil {
				return err
			}
			defer lock.Release()

			summary, err := validate.Run(validate.Options{
				ResultsPath:       resultsFlag,
				RosterPath:        studentsFlag,
				Destination:       dest,
				RosterHeaderLines: cfg.Roster.HeaderLines,
				RosterStatusLabel: cfg.Roster.StatusLabel,
			}, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderSummary("Validation Summary", [][2]string{
				{"Entries", strconv.Itoa(summary.Entries)},
				{"Validated", strconv.Itoa(summary.Validated)},
				{"Voided", strconv.Itoa(summary.Voided)},
				{"Skipped", strconv.Itoa(summary.Skipped)},
			}))
			fmt.Fprintf(out, "Saved validated entries to %s\n", filepath.Join(dest, validate.ValidatedFileName))
			fmt.Fprintf(out, "Saved voided entries to %s\n", filepath.Join(dest, validate.VoidedFileName))
			return nil
		},
	}

	cmd.Flags().StringVarP(&resultsFlag, "results", "r", "", "Results CSV file from the online form")
	cmd.Flags().StringVarP(&studentsFlag, "students", "s", "", "Student list CSV file from the university")
	cmd.Flags().StringVarP(&destFlag, "destination", "d", "", "Destination directory for output files (default: validation_results_<date>)")

	return cmd
}
