// Package textutil provides small string helpers shared across the election
// pipeline, primarily the transform from human-readable contest names to
// filesystem-safe output file names.
package textutil
