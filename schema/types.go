package schema

import "github.com/fulmenhq/crucible-go/diagnostic"

// Draft identifies the JSON Schema draft a document declares via its
// "$schema" keyword.
type Draft string

const (
	Draft202012  Draft = "2020-12"
	Draft07      Draft = "07"
	DraftUnknown Draft = "unknown"
)

// State is the registry's per-schema lifecycle state (spec §4.C): a
// schema starts UNKNOWN, becomes DISCOVERED once the catalog has indexed
// its file, PARSED once its raw content has been decoded, and finally
// either READY (compiled successfully) or FAILED (compile or meta-schema
// validation error).
type State string

const (
	StateUnknown    State = "UNKNOWN"
	StateDiscovered State = "DISCOVERED"
	StateParsed     State = "PARSED"
	StateReady      State = "READY"
	StateFailed     State = "FAILED"
)

// Descriptor is a single registry entry (spec §3 "Schema Entry").
type Descriptor struct {
	ID           string
	Kind         string
	Version      string
	Path         string
	RelativePath string
	Draft        Draft
	State        State
}

// ValidationResult is the outcome of a data validation call (spec §4.C
// validateData / validateFileBySchemaId).
type ValidationResult struct {
	Valid       bool
	Diagnostics []diagnostic.Diagnostic
	Source      diagnostic.Source
}

// ValidateOptions controls how a single validation call is executed.
type ValidateOptions struct {
	// UseBridge requests the external-binary bridge when one is
	// configured and its Probe succeeds; on absence or failure the call
	// falls back to the in-process engine (spec §4.C, SPEC_FULL §C.3).
	UseBridge bool
}
