package validate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/TvBMcMaster/gsa-election-validation/internal/ballot"
	"github.com/TvBMcMaster/gsa-election-validation/internal/logging"
	"github.com/TvBMcMaster/gsa-election-validation/internal/roster"
)

// Options configures one validation run.
type Options struct {
	// ResultsPath is the ballot export from the online form.
	ResultsPath string
	// RosterPath is the student list supplied by the university.
	RosterPath string
	// Destination is the directory receiving the validated and voided files.
	// It must already exist.
	Destination string
	// RosterHeaderLines is the number of leading roster lines to skip.
	RosterHeaderLines int
	// RosterStatusLabel overrides the roster's special-status sentinel when
	// non-empty.
	RosterStatusLabel string
}

// Run executes the validation stage: it loads the roster, reads every ballot
// row, and partitions rows into the validated and voided files under the
// destination directory.
//
// Malformed rows are logged and skipped. Any other failure aborts the run
// immediately; open output files are released on every exit path.
func Run(opts Options, logger *slog.Logger) (Summary, error) {
	logger.Info("validating election results",
		logging.String("results", opts.ResultsPath),
		logging.String("students", opts.RosterPath),
	)

	students, err := roster.Load(opts.RosterPath, opts.RosterHeaderLines, opts.RosterStatusLabel, logger)
	if err != nil {
		return Summary{}, err
	}

	file, err := os.Open(opts.ResultsPath)
	if err != nil {
		return Summary{}, fmt.Errorf("open results: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Summary{}, fmt.Errorf("results file %s is empty", opts.ResultsPath)
		}
		return Summary{}, fmt.Errorf("read results header: %w", err)
	}

	splitter, err := NewSplitter(opts.Destination, header, time.Now(), logger)
	if err != nil {
		return Summary{}, err
	}
	defer splitter.Close()

	validator := NewValidator(students, ballot.FormFormat)

	line := 1
	for {
		fields, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// Row corruption of unknown shape: abort rather than guess.
			return splitter.Summary(), fmt.Errorf("read results row %d: %w", line+1, err)
		}
		line++

		verdict, err := validator.Validate(fields)
		if err != nil {
			if errors.Is(err, ballot.ErrMalformed) {
				logger.Error("bad formatting in results row, skipping",
					logging.String("file", opts.ResultsPath),
					logging.Int("line", line),
				)
				splitter.Skip()
				continue
			}
			return splitter.Summary(), err
		}

		if err := splitter.Route(fields, validator.Identity(fields), verdict); err != nil {
			return splitter.Summary(), err
		}
	}

	summary := splitter.Summary()
	if err := splitter.Close(); err != nil {
		return summary, fmt.Errorf("close output files: %w", err)
	}

	logger.Info("validation complete",
		logging.Int("entries", summary.Entries),
		logging.Int("validated", summary.Validated),
		logging.Int("voided", summary.Voided),
		logging.Int("skipped", summary.Skipped),
		logging.String("validated_file", filepath.Join(opts.Destination, ValidatedFileName)),
		logging.String("voided_file", filepath.Join(opts.Destination, VoidedFileName)),
	)
	return summary, nil
}
