package ballot

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrMalformed reports a row with fewer fields than the format's designated
// positions require. Callers skip such rows rather than guessing at partial
// data.
var ErrMalformed = errors.New("malformed row")

// Format describes where the validation fields live in one delimited source.
// Columns are 0-based. A negative column designates a field the source does
// not carry at all, which is distinct from carrying an empty value.
type Format struct {
	IdentityColumn    int
	AffiliationColumn int
	StatusColumn      int
	// StatusLabel is the sentinel value marking the special-status flag as
	// set (e.g. "Visa" in the roster, "Yes" on the form).
	StatusLabel string
}

// FormFormat is the layout of ballot rows exported from the online form:
// identity in the second column, self-declared international status in the
// third, and no faculty column.
var FormFormat = Format{
	IdentityColumn:    1,
	AffiliationColumn: -1,
	StatusColumn:      2,
	StatusLabel:       "Yes",
}

// RosterFormat is the layout of the roster export supplied by the
// university: faculty first, identity in the sixth column, status in the
// seventh.
var RosterFormat = Format{
	IdentityColumn:    5,
	AffiliationColumn: 0,
	StatusColumn:      6,
	StatusLabel:       "Visa",
}

// Values holds the fields extracted from one row. Affiliation and Status
// are meaningful only when their Has flag is set; an unset flag means the
// source format does not carry the field.
type Values struct {
	Identity       string
	Affiliation    string
	HasAffiliation bool
	Status         bool
	HasStatus      bool
}

var titleCaser = cases.Title(language.Und)

// Extract pulls the format's designated fields out of a raw row. The
// identity is lowercased and the affiliation title-cased so comparisons are
// consistent across sources. Returns ErrMalformed when the row is too short
// for a designated position.
func (f Format) Extract(fields []string) (Values, error) {
	if f.IdentityColumn < 0 || f.IdentityColumn >= len(fields) {
		return Values{}, fmt.Errorf("%w: no identity at column %d", ErrMalformed, f.IdentityColumn)
	}

	vals := Values{
		Identity: strings.ToLower(strings.TrimSpace(fields[f.IdentityColumn])),
	}

	if f.AffiliationColumn >= 0 {
		if f.AffiliationColumn >= len(fields) {
			return Values{}, fmt.Errorf("%w: no affiliation at column %d", ErrMalformed, f.AffiliationColumn)
		}
		vals.Affiliation = titleCaser.String(strings.TrimSpace(fields[f.AffiliationColumn]))
		vals.HasAffiliation = true
	}

	if f.StatusColumn >= 0 {
		if f.StatusColumn >= len(fields) {
			return Values{}, fmt.Errorf("%w: no status at column %d", ErrMalformed, f.StatusColumn)
		}
		vals.Status = fields[f.StatusColumn] == f.StatusLabel
		vals.HasStatus = true
	}

	return vals, nil
}
