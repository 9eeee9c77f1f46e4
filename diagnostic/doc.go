// Package diagnostic holds the shared diagnostic record shape and the
// closed set of structured error types used across catalog, schema, foundry,
// and identity (spec §4.G).
//
// Every error type here carries the fields a caller needs to pattern-match
// on (asset ID, category, schema ID, diagnostics, cause) plus a
// human-readable Error() string. [Formatter] renders the stable multi-line
// form used by CLI output and logs.
package diagnostic
