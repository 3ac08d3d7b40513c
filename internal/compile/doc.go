// Package compile implements the compilation stage of the election
// pipeline: validated ballot rows are sliced into per-contest vote files
// using the compiled column map, ready for downstream tallying.
package compile
