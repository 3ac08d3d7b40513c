// Package ballot describes the fixed layouts of the delimited sources the
// pipeline reads (the roster export and the online form export) and extracts
// validation fields from raw rows.
package ballot
