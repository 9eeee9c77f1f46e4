// Package schema implements the schema registry and validator (spec
// §4.C): a lazily-loaded catalog of JSON Schema documents (draft 2020-12
// and draft-07), a promise-memoized compiled-validator cache, canonical
// normalization and comparison, schema export with provenance, and an
// optional external-binary validation bridge with fallback to the
// in-process engine.
//
// The registry's discovery/lazy-load shape is grounded on the sibling
// gofulmen schema catalog (see [Registry] and its ensureLoaded), and its
// validator wraps [github.com/santhosh-tekuri/jsonschema/v5] the same way
// gofulmen's Validator does: compile once per schema ID, memoize for the
// process lifetime, translate the library's [jsonschema.ValidationError]
// tree into the shared [github.com/fulmenhq/crucible-go/diagnostic.Diagnostic] shape.
package schema
