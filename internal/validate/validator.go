package validate

import (
	"strconv"
	"strings"

	"github.com/TvBMcMaster/gsa-election-validation/internal/ballot"
	"github.com/TvBMcMaster/gsa-election-validation/internal/roster"
)

// Validator checks ballot rows against a loaded roster.
type Validator struct {
	roster roster.Roster
	format ballot.Format
}

// NewValidator returns a Validator for rows laid out per format.
func NewValidator(r roster.Roster, format ballot.Format) *Validator {
	return &Validator{roster: r, format: format}
}

// Validate computes the verdict for one raw ballot row. The first failing
// check wins. The special-status check only applies when the row format
// carries no affiliation column: a present affiliation settles the verdict
// on its own.
//
// A non-nil error wraps ballot.ErrMalformed and means the row must be
// skipped entirely, counted as neither validated nor voided.
func (v *Validator) Validate(fields []string) (Verdict, error) {
	vals, err := v.format.Extract(fields)
	if err != nil {
		return Verdict{}, err
	}

	entry, ok := v.roster[vals.Identity]
	if !ok {
		return Reject(ReasonNotOnRoster, vals.Identity, ""), nil
	}

	if vals.HasAffiliation {
		if !strings.EqualFold(vals.Affiliation, entry.Affiliation) {
			return Reject(ReasonAffiliationMismatch, vals.Affiliation, entry.Affiliation), nil
		}
	} else if vals.HasStatus && vals.Status != entry.International {
		return Reject(ReasonStatusMismatch,
			strconv.FormatBool(vals.Status),
			strconv.FormatBool(entry.International)), nil
	}

	return Accept(), nil
}

// Identity extracts the row's normalized identity for logging. Returns an
// empty string when the row is too short.
func (v *Validator) Identity(fields []string) string {
	vals, err := v.format.Extract(fields)
	if err != nil {
		return ""
	}
	return vals.Identity
}
