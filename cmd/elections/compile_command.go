package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/TvBMcMaster/gsa-election-validation/internal/compile"
	"github.com/TvBMcMaster/gsa-election-validation/internal/fileutil"
	"github.com/TvBMcMaster/gsa-election-validation/internal/layout"
	"github.com/TvBMcMaster/gsa-election-validation/internal/logging"
	"github.com/TvBMcMaster/gsa-election-validation/internal/runlock"
)

func newCompileCommand(ctx *commandContext) *cobra.Command {
	var directoryFlag string

	cmd := &cobra.Command{
		Use:   "compile <validated-file>",
		Short: "Split validated ballots into per-contest vote files",
		Long: `Compile reads a validated results file produced by the validate command
and breaks its votes up into one CSV file per contest (for example
humanities.csv) inside the output directory, for easy tallying.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			validatedPath := args[0]
			if err := fileutil.CheckInputFile(validatedPath); err != nil {
				return fmt.Errorf("validated file: %w", err)
			}

			columnMap, err := layout.Build(cfg.Layout)
			if err != nil {
				return err
			}

			dest := directoryFlag
			if dest == "" {
				dest = "compiled_results_" + time.Now().Format("20060102")
			}

			logger, err := ctx.newRunLogger(cfg)
			if err != nil {
				return err
			}

			if err := fileutil.EnsureDestination(dest); err != nil {
				if !errors.Is(err, fileutil.ErrDirExists) {
					return err
				}
				logger.Warn("output directory exists, compiled files will be overwritten",
					logging.String("directory", dest),
				)
			}

			lock, err := runlock.Acquire(dest)
			if err != nil {
				return err
			}
			defer lock.Release()

			summary, err := compile.Run(validatedPath, dest, columnMap, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderSummary("Compilation Summary", [][2]string{
				{"Rows", strconv.Itoa(summary.Rows)},
				{"Votes", strconv.Itoa(summary.Votes)},
				{"Empty Votes", strconv.Itoa(summary.EmptyVotes)},
			}))
			fmt.Fprintf(out, "Compiled votes written to %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&directoryFlag, "directory", "d", "", "Output directory for compiled votes (default: compiled_results_<date>)")

	return cmd
}
