// Package identity resolves the host application's identity descriptor
// (spec §4.F): a process-wide, first-wins registration slot plus an
// ordered discovery chain (explicit path, environment variable, ancestor
// filesystem search, embedded fallback) backed by a resolved-path cache.
//
// This package is self-contained: it embeds its own copy of the identity
// JSON Schema with a //go:embed directive and compiles it directly with
// santhosh-tekuri/jsonschema/v5, independent of the [catalog]/[schema]
// registry machinery used for vendored Crucible assets. gofulmen's
// appidentity package is grounded the same way, for the same reason — an
// identity-file consumer should not need a resolved vendored asset tree
// just to validate a ".fulmen/app.yaml" (see DESIGN.md).
package identity
