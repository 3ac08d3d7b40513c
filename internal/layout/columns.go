package layout

import (
	"fmt"

	"github.com/TvBMcMaster/gsa-election-validation/internal/config"
)

// Contest locates one contest's vote slots in a validated ballot row.
type Contest struct {
	// Name is the contest's human-readable name, used for output files.
	Name string
	// Start is the 0-based column of the contest's first vote slot.
	Start int
	// Slots is the number of consecutive vote columns.
	Slots int
}

// Map is the compiled column layout for one run. All indices are 0-based.
// Built once from configuration and immutable afterwards.
type Map struct {
	// Identity and Affiliation locate the voter columns in a validated row.
	Identity    int
	Affiliation int

	// Regional contests, keyed by contest name, packed contiguously in
	// declaration order. RegionalOrder preserves that order.
	Regional      map[string]Contest
	RegionalOrder []string

	// EligibilityFlag is the column whose value is compared against
	// EligibilityLabel to opt a ballot into the supplementary pool.
	EligibilityFlag  int
	EligibilityLabel string
	// Supplementary is the opt-in pool; its vote slots start in the column
	// immediately after the eligibility flag.
	Supplementary Contest

	// AtLarge contests occupy one column each; extraction addresses round r
	// of contest c at column c.Start + r.
	AtLarge      map[string]Contest
	AtLargeOrder []string
	// Rounds is the number of at-large vote rounds per ballot.
	Rounds int
}

// Build computes the column map from a validated layout configuration,
// converting the operator-facing 1-based positions to 0-based indices.
// Regional contest i starts at regional_offset-1 + i*slots; at-large contest
// i sits at atlarge_offset-1 + i. Build fails when the regional,
// supplementary, and at-large blocks overlap.
func Build(cfg config.Layout) (*Map, error) {
	m := &Map{
		Identity:         cfg.IdentityColumn - 1,
		Affiliation:      cfg.AffiliationColumn - 1,
		Regional:         make(map[string]Contest, len(cfg.RegionalContests)),
		RegionalOrder:    append([]string{}, cfg.RegionalContests...),
		EligibilityFlag:  cfg.EligibilityFlagColumn - 1,
		EligibilityLabel: cfg.EligibilityFlagLabel,
		AtLarge:          make(map[string]Contest, len(cfg.AtLargeContests)),
		AtLargeOrder:     append([]string{}, cfg.AtLargeContests...),
		Rounds:           cfg.AtLargeVotesPerRound,
	}

	col := cfg.RegionalOffset - 1
	for _, name := range cfg.RegionalContests {
		m.Regional[name] = Contest{Name: name, Start: col, Slots: cfg.RegionalVotesPerContest}
		col += cfg.RegionalVotesPerContest
	}

	m.Supplementary = Contest{
		Name: cfg.SupplementaryContest,
		// The flag column immediately precedes the pool's vote slots:
		// 1-based flag column == 0-based first vote slot.
		Start: cfg.EligibilityFlagColumn,
		Slots: cfg.RegionalVotesPerContest,
	}

	col = cfg.AtLargeOffset - 1
	for _, name := range cfg.AtLargeContests {
		m.AtLarge[name] = Contest{Name: name, Start: col, Slots: 1}
		col++
	}

	if err := m.checkOverlap(); err != nil {
		return nil, err
	}
	return m, nil
}

type span struct {
	label string
	start int
	end   int // exclusive
}

func (m *Map) checkOverlap() error {
	spans := make([]span, 0, 3)

	if n := len(m.RegionalOrder); n > 0 {
		first := m.Regional[m.RegionalOrder[0]]
		last := m.Regional[m.RegionalOrder[n-1]]
		spans = append(spans, span{"regional contests", first.Start, last.Start + last.Slots})
	}
	spans = append(spans, span{"supplementary pool", m.Supplementary.Start, m.Supplementary.Start + m.Supplementary.Slots})
	if n := len(m.AtLargeOrder); n > 0 {
		first := m.AtLarge[m.AtLargeOrder[0]]
		spans = append(spans, span{"at-large contests", first.Start, first.Start + n})
	}

	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].start < spans[j].end && spans[j].start < spans[i].end {
				return fmt.Errorf("layout: %s (columns %d-%d) overlap %s (columns %d-%d)",
					spans[i].label, spans[i].start+1, spans[i].end,
					spans[j].label, spans[j].start+1, spans[j].end)
			}
		}
	}
	return nil
}

// Contests returns every contest the map addresses, in output order:
// regional contests, the supplementary pool, then at-large contests.
func (m *Map) Contests() []Contest {
	out := make([]Contest, 0, len(m.RegionalOrder)+1+len(m.AtLargeOrder))
	for _, name := range m.RegionalOrder {
		out = append(out, m.Regional[name])
	}
	out = append(out, m.Supplementary)
	for _, name := range m.AtLargeOrder {
		out = append(out, m.AtLarge[name])
	}
	return out
}
