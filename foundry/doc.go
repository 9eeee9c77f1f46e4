// Package foundry implements the reference-catalog lookups and
// magic-number content-detection engine (spec §4.D): MIME type, country
// (ISO 3166-1), and HTTP status catalogs, plus a priority-ordered
// signature matcher over exact byte patterns and heuristic detectors
// (NDJSON, YAML, CSV, protobuf, plain text).
//
// The four reference catalogs are embedded JSON documents (go:embed),
// versioned independently of the vendored four-category asset tree that
// package catalog indexes — grounded on gofulmen's appidentity-validation.go,
// which embeds its schema the same way rather than reading it from disk
// at runtime.
package foundry
