package compile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/TvBMcMaster/gsa-election-validation/internal/layout"
	"github.com/TvBMcMaster/gsa-election-validation/internal/logging"
	"github.com/TvBMcMaster/gsa-election-validation/internal/textutil"
)

// contestFiles owns one output file per contest for the duration of a run.
type contestFiles struct {
	files  map[string]*os.File
	logger *slog.Logger
}

// openContestFiles creates one file per contest under dest, named by the
// filesystem-safe transform of the contest name. On any failure every
// already-open file is closed before returning.
func openContestFiles(dest string, contests []layout.Contest, logger *slog.Logger) (*contestFiles, error) {
	cf := &contestFiles{files: make(map[string]*os.File, len(contests)), logger: logger}
	for _, contest := range contests {
		path := filepath.Join(dest, textutil.ContestFileName(contest.Name))
		f, err := os.Create(path)
		if err != nil {
			cf.close()
			return nil, fmt.Errorf("create contest file %s: %w", path, err)
		}
		cf.files[contest.Name] = f
	}
	return cf, nil
}

// write appends one (identity, vote) record to the contest's stream.
func (cf *contestFiles) write(contest, identity, vote string) error {
	f, ok := cf.files[contest]
	if !ok {
		return fmt.Errorf("no output file for contest %q", contest)
	}
	if _, err := fmt.Fprintf(f, "%s,%s\n", identity, vote); err != nil {
		return fmt.Errorf("write vote for %s: %w", contest, err)
	}
	return nil
}

func (cf *contestFiles) close() {
	for name, f := range cf.files {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil {
			cf.logger.Warn("cannot close contest file",
				logging.String("contest", name),
				logging.Error(err),
			)
		}
		cf.files[name] = nil
	}
}

// Extractor slices validated rows into per-contest vote records.
type Extractor struct {
	m      *layout.Map
	files  *contestFiles
	logger *slog.Logger

	votes      int
	emptyVotes int
}

// field returns the row's value at col, or "" when the row is too short.
// A missing slot is handled by the same policy as a blank vote.
func field(fields []string, col int) string {
	if col < 0 || col >= len(fields) {
		return ""
	}
	return fields[col]
}

// ExtractRow runs the three extraction passes over one validated row. The
// passes are independent: a single row can contribute regional,
// supplementary, and at-large votes simultaneously.
func (e *Extractor) ExtractRow(fields []string) error {
	identity := field(fields, e.m.Identity)
	if identity == "" {
		e.logger.Warn("row has no identity value, skipping")
		return nil
	}
	affiliation := field(fields, e.m.Affiliation)

	// Pass 1: the regional contest matching the voter's affiliation.
	if contest, ok := e.m.Regional[affiliation]; ok {
		if err := e.extractSlots(contest, identity, fields); err != nil {
			return err
		}
	}

	// Pass 2: the supplementary pool, when the voter opted in.
	if field(fields, e.m.EligibilityFlag) == e.m.EligibilityLabel {
		if err := e.extractSlots(e.m.Supplementary, identity, fields); err != nil {
			return err
		}
	}

	// Pass 3: every round of every at-large contest.
	for round := 0; round < e.m.Rounds; round++ {
		for _, name := range e.m.AtLargeOrder {
			contest := e.m.AtLarge[name]
			if err := e.extractVote(contest, identity, field(fields, contest.Start+round)); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Extractor) extractSlots(contest layout.Contest, identity string, fields []string) error {
	for i := 0; i < contest.Slots; i++ {
		if err := e.extractVote(contest, identity, field(fields, contest.Start+i)); err != nil {
			return err
		}
	}
	return nil
}

// extractVote applies the blank-vote policy: an empty value is never
// written as a record, it is logged and skipped.
func (e *Extractor) extractVote(contest layout.Contest, identity, vote string) error {
	if vote == "" {
		e.logger.Warn("empty vote found",
			logging.String("contest", contest.Name),
			logging.String("identity", identity),
		)
		e.emptyVotes++
		return nil
	}
	e.logger.Debug("vote extracted",
		logging.String("contest", contest.Name),
		logging.String("identity", identity),
		logging.String("vote", vote),
	)
	e.votes++
	return e.files.write(contest.Name, identity, vote)
}
