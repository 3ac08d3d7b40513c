package validate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/TvBMcMaster/gsa-election-validation/internal/logging"
)

const (
	// ValidatedFileName is the validation stage's accepted-rows output.
	ValidatedFileName = "validated_results.csv"
	// VoidedFileName is the validation stage's rejected-rows output.
	VoidedFileName = "voided_results.csv"
	// PreambleLines is the number of lines each output file carries before
	// data rows: two comment lines plus the echoed source header.
	PreambleLines = 3

	timestampLayout = "2006-01-02 15:04:05"
)

// Summary holds the run-wide counters for the validation stage. Entries
// counts every row read, including rows skipped as malformed, so
// Validated + Voided + Skipped == Entries.
type Summary struct {
	Entries   int
	Validated int
	Voided    int
	Skipped   int
}

// Splitter routes verdicts to the validated and voided output files. Both
// files are seeded with their comment preamble and header exactly once, at
// construction, before any row is routed.
type Splitter struct {
	validated *os.File
	voided    *os.File
	logger    *slog.Logger
	summary   Summary
}

// NewSplitter creates the two output files under dest and writes their
// preambles. header is the ballot source's header row, echoed verbatim into
// both files (the voided file gains a trailing Reason field). The caller
// must Close the splitter on every exit path.
func NewSplitter(dest string, header []string, now time.Time, logger *slog.Logger) (*Splitter, error) {
	validated, err := createWithPreamble(
		filepath.Join(dest, ValidatedFileName),
		"VALIDATED STUDENTS", now, strings.Join(header, ","))
	if err != nil {
		return nil, err
	}

	voided, err := createWithPreamble(
		filepath.Join(dest, VoidedFileName),
		"VOIDED STUDENTS", now, strings.Join(append(append([]string{}, header...), "Reason"), ","))
	if err != nil {
		validated.Close()
		return nil, err
	}

	return &Splitter{validated: validated, voided: voided, logger: logger}, nil
}

func createWithPreamble(path, label string, now time.Time, header string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	_, err = fmt.Fprintf(f, "# %s\n# Results From %s\n%s\n", label, now.Format(timestampLayout), header)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("write preamble to %s: %w", path, err)
	}
	return f, nil
}

// Route appends the row to the stream the verdict selects: accepted rows go
// verbatim to the validated file, rejected rows to the voided file with the
// human-readable reason appended.
func (s *Splitter) Route(fields []string, identity string, verdict Verdict) error {
	s.summary.Entries++

	if verdict.Accepted {
		s.summary.Validated++
		if _, err := fmt.Fprintln(s.validated, strings.Join(fields, ",")); err != nil {
			return fmt.Errorf("write validated row: %w", err)
		}
		return nil
	}

	reason := verdict.Description()
	s.logger.Info("voiding student",
		logging.String("identity", identity),
		logging.String("reason", reason),
	)
	s.summary.Voided++
	line := strings.Join(append(append([]string{}, fields...), reason), ",")
	if _, err := fmt.Fprintln(s.voided, line); err != nil {
		return fmt.Errorf("write voided row: %w", err)
	}
	return nil
}

// Skip records a malformed row that was dropped without routing.
func (s *Splitter) Skip() {
	s.summary.Entries++
	s.summary.Skipped++
}

// Summary returns the counters accumulated so far.
func (s *Splitter) Summary() Summary {
	return s.summary
}

// Close releases both output files.
func (s *Splitter) Close() error {
	var firstErr error
	for _, f := range []*os.File{s.validated, s.voided} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.validated, s.voided = nil, nil
	return firstErr
}
