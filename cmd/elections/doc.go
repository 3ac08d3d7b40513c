// Command elections validates online-form election ballots against the
// university's student roster and compiles validated ballots into
// per-contest vote files ready for tallying.
package main
