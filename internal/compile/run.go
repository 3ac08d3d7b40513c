package compile

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/TvBMcMaster/gsa-election-validation/internal/layout"
	"github.com/TvBMcMaster/gsa-election-validation/internal/logging"
	"github.com/TvBMcMaster/gsa-election-validation/internal/validate"
)

// Summary holds the run-wide counters for the compilation stage.
type Summary struct {
	Rows       int
	Votes      int
	EmptyVotes int
}

// Run executes the compilation stage: it reads the validated ballot file,
// skips its preamble, and appends each row's votes to the per-contest files
// under dest. Contest files are created up front and released on every exit
// path.
func Run(validatedPath, dest string, m *layout.Map, logger *slog.Logger) (Summary, error) {
	logger.Info("compiling election results",
		logging.String("validated", validatedPath),
		logging.String("destination", dest),
	)

	file, err := os.Open(validatedPath)
	if err != nil {
		return Summary{}, fmt.Errorf("open validated file: %w", err)
	}
	defer file.Close()

	buffered := bufio.NewReader(file)
	for i := 0; i < validate.PreambleLines; i++ {
		if _, err := buffered.ReadString('\n'); err != nil {
			return Summary{}, fmt.Errorf("validated file %s ends inside its preamble", validatedPath)
		}
	}

	files, err := openContestFiles(dest, m.Contests(), logger)
	if err != nil {
		return Summary{}, err
	}
	defer files.close()

	extractor := &Extractor{m: m, files: files, logger: logger}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1

	rows := 0
	for {
		fields, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Summary{Rows: rows}, fmt.Errorf("read validated row: %w", err)
		}
		rows++

		if err := extractor.ExtractRow(fields); err != nil {
			return Summary{Rows: rows}, err
		}
	}

	summary := Summary{
		Rows:       rows,
		Votes:      extractor.votes,
		EmptyVotes: extractor.emptyVotes,
	}
	logger.Info("compilation complete",
		logging.Int("rows", summary.Rows),
		logging.Int("votes", summary.Votes),
		logging.Int("empty_votes", summary.EmptyVotes),
	)
	return summary, nil
}
