// Package logging constructs slog loggers for the election pipeline.
//
// Two output formats are supported: "console", a compact timestamped
// key=value rendering for operators watching a run, and "json" for log
// collection. The log level replaces the old process-wide debug toggle;
// components receive an explicit *slog.Logger and never consult globals.
package logging
