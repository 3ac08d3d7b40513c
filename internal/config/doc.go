// Package config loads and validates election pipeline configuration.
//
// It supplies repository defaults matching the historical GSA ballot layout,
// reads TOML files, and merges user-supplied values over the defaults
// key-by-key. Environment variables provide a final override for logging
// options. Always obtain settings through this package so downstream code
// receives validated column positions and contest lists.
package config
