// Package layout compiles the 1-based ballot layout configuration into an
// immutable 0-based column map. The off-by-one conversion and the packed
// contest arithmetic live here and nowhere else, so the compilation stage
// can address columns without recomputing offsets.
package layout
