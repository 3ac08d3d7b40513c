package validate

import "fmt"

// Reason identifies why a ballot row was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNotOnRoster
	ReasonAffiliationMismatch
	ReasonStatusMismatch
)

// Verdict is the outcome of checking one ballot row against the roster.
// Rejections are expected business outcomes, not errors: they carry a reason
// and the mismatched values for the voided file's audit trail.
type Verdict struct {
	Accepted bool
	Reason   Reason
	// Expected is the value seen on the ballot row, Actual the value the
	// roster records for that identity.
	Expected string
	Actual   string
}

// Accept returns an accepting verdict.
func Accept() Verdict {
	return Verdict{Accepted: true}
}

// Reject returns a rejecting verdict for the given reason.
func Reject(reason Reason, expected, actual string) Verdict {
	return Verdict{Reason: reason, Expected: expected, Actual: actual}
}

// Description returns the human-readable reason string appended to rows in
// the voided file. Accepted verdicts have no description.
func (v Verdict) Description() string {
	switch v.Reason {
	case ReasonNotOnRoster:
		return "Not in Student List"
	case ReasonAffiliationMismatch:
		return fmt.Sprintf("Incorrect Faculty: Expected [%s] Got [%s]", v.Expected, v.Actual)
	case ReasonStatusMismatch:
		return fmt.Sprintf("Incorrect International Status: Expected [%s] Got [%s]", v.Expected, v.Actual)
	default:
		return ""
	}
}
