package compile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TvBMcMaster/gsa-election-validation/internal/config"
	"github.com/TvBMcMaster/gsa-election-validation/internal/layout"
	"github.com/TvBMcMaster/gsa-election-validation/internal/logging"
)

// testLayout packs two regional contests with two slots each, a two-slot
// supplementary pool, and one at-large contest voted over two rounds:
//
//	col (0-based): 0 identity, 1 affiliation, 2-3 Science, 4-5 Arts,
//	               6 flag, 7-8 International, 9-10 President rounds.
func testLayout(t *testing.T) *layout.Map {
	t.Helper()
	cfg := config.Layout{
		IdentityColumn:          1,
		AffiliationColumn:       2,
		RegionalOffset:          3,
		RegionalVotesPerContest: 2,
		RegionalContests:        []string{"Science", "Arts"},
		EligibilityFlagColumn:   7,
		EligibilityFlagLabel:    "Yes",
		SupplementaryContest:    "International",
		AtLargeOffset:           10,
		AtLargeVotesPerRound:    2,
		AtLargeContests:         []string{"President"},
	}
	m, err := layout.Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

const testPreamble = "# VALIDATED STUDENTS\n# Results From 2020-03-01 09:30:00\nEmail,Faculty,S1,S2,A1,A2,Intl,I1,I2,P1,P2\n"

func writeValidated(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "validated_results.csv")
	if err := os.WriteFile(path, []byte(testPreamble+rows), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readContest(t *testing.T, dest, file string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dest, file))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRunThreePassExtraction(t *testing.T) {
	m := testLayout(t)
	validated := writeValidated(t,
		"a@x.edu,Science,Alice,Bob,,,Yes,Carol,Dan,Eve,Frank\n"+
			"b@x.edu,Arts,,,Gina,Hal,No,,,Ian,Jo\n")
	dest := t.TempDir()

	summary, err := Run(validated, dest, m, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Rows != 2 {
		t.Errorf("rows = %d, want 2", summary.Rows)
	}
	if summary.Votes != 10 {
		t.Errorf("votes = %d, want 10", summary.Votes)
	}
	if summary.EmptyVotes != 0 {
		t.Errorf("empty votes = %d, want 0", summary.EmptyVotes)
	}

	if got := readContest(t, dest, "science.csv"); got != "a@x.edu,Alice\na@x.edu,Bob\n" {
		t.Errorf("science.csv:\n%s", got)
	}
	if got := readContest(t, dest, "arts.csv"); got != "b@x.edu,Gina\nb@x.edu,Hal\n" {
		t.Errorf("arts.csv:\n%s", got)
	}
	// Only the opted-in voter contributes to the supplementary pool.
	if got := readContest(t, dest, "international.csv"); got != "a@x.edu,Carol\na@x.edu,Dan\n" {
		t.Errorf("international.csv:\n%s", got)
	}
	// Every row contributes to every at-large round.
	if got := readContest(t, dest, "president.csv"); got != "a@x.edu,Eve\na@x.edu,Frank\nb@x.edu,Ian\nb@x.edu,Jo\n" {
		t.Errorf("president.csv:\n%s", got)
	}
}

func TestRunSkipsEmptyVotes(t *testing.T) {
	m := testLayout(t)
	validated := writeValidated(t,
		"b@x.edu,Arts,,,Gina,,No,,,Hank,\n")
	dest := t.TempDir()

	summary, err := Run(validated, dest, m, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Votes != 2 {
		t.Errorf("votes = %d, want 2", summary.Votes)
	}
	// One blank Arts slot, one blank President round.
	if summary.EmptyVotes != 2 {
		t.Errorf("empty votes = %d, want 2", summary.EmptyVotes)
	}

	if got := readContest(t, dest, "arts.csv"); got != "b@x.edu,Gina\n" {
		t.Errorf("empty vote must never be written:\n%s", got)
	}
	if got := readContest(t, dest, "president.csv"); got != "b@x.edu,Hank\n" {
		t.Errorf("president.csv:\n%s", got)
	}
}

func TestRunIdempotent(t *testing.T) {
	m := testLayout(t)
	validated := writeValidated(t,
		"a@x.edu,Science,Alice,Bob,,,Yes,Carol,Dan,Eve,Frank\n")

	first := t.TempDir()
	second := t.TempDir()
	if _, err := Run(validated, first, m, logging.NewNop()); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(validated, second, m, logging.NewNop()); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"science.csv", "arts.csv", "international.csv", "president.csv"} {
		a := readContest(t, first, name)
		b := readContest(t, second, name)
		if a != b {
			t.Errorf("%s differs between runs:\n%q\n%q", name, a, b)
		}
	}
}

func TestRunCreatesOneFilePerContest(t *testing.T) {
	m := testLayout(t)
	validated := writeValidated(t, "")
	dest := t.TempDir()

	if _, err := Run(validated, dest, m, logging.NewNop()); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("files = %d, want 4", len(entries))
	}
	for _, name := range []string{"science.csv", "arts.csv", "international.csv", "president.csv"} {
		if readContest(t, dest, name) != "" {
			t.Errorf("%s should be empty with no rows", name)
		}
	}
}

func TestRunTruncatedPreamble(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validated_results.csv")
	if err := os.WriteFile(path, []byte("# VALIDATED STUDENTS\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(path, t.TempDir(), testLayout(t), logging.NewNop()); err == nil {
		t.Fatal("expected error for truncated preamble")
	}
}

func TestRunMissingValidatedFile(t *testing.T) {
	if _, err := Run(filepath.Join(t.TempDir(), "absent.csv"), t.TempDir(), testLayout(t), logging.NewNop()); err == nil {
		t.Fatal("expected error for missing validated file")
	}
}
