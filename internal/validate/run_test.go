package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TvBMcMaster/gsa-election-validation/internal/logging"
)

const testRosterCSV = "Faculty,Last,First,Program,Year,Email,Status\n" +
	"Science,Doe,Jane,PhD,2,jdoe@x.edu,Visa\n" +
	"Humanities,Roe,Rick,MA,1,rroe@x.edu,\n" +
	"Business,Poe,Pat,MBA,1,ppoe@x.edu,\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPartitionsEveryRow(t *testing.T) {
	dir := t.TempDir()
	rosterPath := writeFile(t, dir, "students.csv", testRosterCSV)
	resultsPath := writeFile(t, dir, "results.csv",
		"Timestamp,Email,International\n"+
			"t1,JDOE@X.EDU,Yes\n"+ // accepted (international matches)
			"t2,rroe@x.edu,No\n"+ // accepted
			"t3,ppoe@x.edu,Yes\n"+ // voided: status mismatch
			"t4,ghost@x.edu,No\n"+ // voided: not on roster
			"t5\n"+ // skipped: malformed
			"t6,rroe@x.edu,Yes\n") // voided: status mismatch
	dest := filepath.Join(dir, "out")
	if err := os.Mkdir(dest, 0o755); err != nil {
		t.Fatal(err)
	}

	summary, err := Run(Options{
		ResultsPath:       resultsPath,
		RosterPath:        rosterPath,
		Destination:       dest,
		RosterHeaderLines: 1,
	}, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	if summary.Entries != 6 {
		t.Errorf("entries = %d, want 6", summary.Entries)
	}
	if summary.Validated != 2 || summary.Voided != 3 || summary.Skipped != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.Validated+summary.Voided+summary.Skipped != summary.Entries {
		t.Errorf("counters do not sum to entries: %+v", summary)
	}

	validated, err := os.ReadFile(filepath.Join(dest, ValidatedFileName))
	if err != nil {
		t.Fatal(err)
	}
	voided, err := os.ReadFile(filepath.Join(dest, VoidedFileName))
	if err != nil {
		t.Fatal(err)
	}

	// Every routed row lands in exactly one output file.
	for _, row := range []string{"t1,", "t2,"} {
		if !strings.Contains(string(validated), row) {
			t.Errorf("validated file missing row %q", row)
		}
		if strings.Contains(string(voided), row) {
			t.Errorf("row %q also present in voided file", row)
		}
	}
	for _, row := range []string{"t3,", "t4,", "t6,"} {
		if !strings.Contains(string(voided), row) {
			t.Errorf("voided file missing row %q", row)
		}
		if strings.Contains(string(validated), row) {
			t.Errorf("row %q also present in validated file", row)
		}
	}
	if strings.Contains(string(validated), "t5") || strings.Contains(string(voided), "t5") {
		t.Error("skipped row leaked into an output file")
	}

	if !strings.Contains(string(voided), "t4,ghost@x.edu,No,Not in Student List") {
		t.Errorf("voided reason missing:\n%s", voided)
	}
}

func TestRunMissingResultsFile(t *testing.T) {
	dir := t.TempDir()
	rosterPath := writeFile(t, dir, "students.csv", testRosterCSV)

	_, err := Run(Options{
		ResultsPath:       filepath.Join(dir, "absent.csv"),
		RosterPath:        rosterPath,
		Destination:       dir,
		RosterHeaderLines: 1,
	}, logging.NewNop())
	if err == nil {
		t.Fatal("expected error for missing results file")
	}
}

func TestRunEmptyResultsFile(t *testing.T) {
	dir := t.TempDir()
	rosterPath := writeFile(t, dir, "students.csv", testRosterCSV)
	resultsPath := writeFile(t, dir, "results.csv", "")

	_, err := Run(Options{
		ResultsPath:       resultsPath,
		RosterPath:        rosterPath,
		Destination:       dir,
		RosterHeaderLines: 1,
	}, logging.NewNop())
	if err == nil {
		t.Fatal("expected error for empty results file")
	}
}

func TestRunAbortsOnCorruptRow(t *testing.T) {
	dir := t.TempDir()
	rosterPath := writeFile(t, dir, "students.csv", testRosterCSV)
	// A bare quote mid-row is a CSV syntax error, not a short row.
	resultsPath := writeFile(t, dir, "results.csv",
		"Timestamp,Email,International\n"+
			"t1,jdoe@x.edu,Yes\n"+
			"t2,\"broken,No\n")
	dest := filepath.Join(dir, "out")
	if err := os.Mkdir(dest, 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Run(Options{
		ResultsPath:       resultsPath,
		RosterPath:        rosterPath,
		Destination:       dest,
		RosterHeaderLines: 1,
	}, logging.NewNop())
	if err == nil {
		t.Fatal("expected fatal error for corrupt row")
	}
}
