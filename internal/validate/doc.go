// Package validate implements the validation stage of the election
// pipeline: each submitted ballot row is cross-checked against the voter
// roster and routed to the validated or voided output file with run-wide
// counters for the final summary.
package validate
