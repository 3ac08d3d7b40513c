// Package roster loads the authoritative voter roll into a lookup keyed by
// normalized identity.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/TvBMcMaster/gsa-election-validation/internal/ballot"
	"github.com/TvBMcMaster/gsa-election-validation/internal/logging"
)

// Entry holds the eligibility attributes recorded for one voter. Entries are
// built once at load time and never mutated afterwards.
type Entry struct {
	Affiliation   string
	International bool
}

// Roster maps lowercased identities to their roster entries.
type Roster map[string]Entry

// Load parses the roster file into a Roster, skipping headerLines leading
// lines before interpreting records. statusLabel overrides the source's
// special-status sentinel when non-empty.
//
// Records too short for the required fields are logged and skipped; they do
// not abort the load. When an identity appears more than once the last
// occurrence wins — callers relying on uniqueness must ensure the source has
// none.
func Load(path string, headerLines int, statusLabel string, logger *slog.Logger) (Roster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer file.Close()

	logger.Info("reading student list", logging.String("path", path))

	format := ballot.RosterFormat
	if statusLabel != "" {
		format.StatusLabel = statusLabel
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	students := make(Roster)
	line := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read roster: %w", err)
		}
		line++
		if line <= headerLines {
			continue
		}

		vals, err := format.Extract(record)
		if err != nil {
			logger.Error("cannot parse roster record",
				logging.Int("line", line),
				logging.Error(err),
			)
			continue
		}
		students[vals.Identity] = Entry{
			Affiliation:   vals.Affiliation,
			International: vals.Status,
		}
	}

	logger.Info("student list loaded",
		logging.Int("lines", line),
		logging.Int("students", len(students)),
	)
	return students, nil
}
