// Package fulmen is the public surface binding (spec §2 component I):
// a thin, category-scoped façade over the catalog, schema, foundry,
// similarity, and identity packages, backed by process-wide defaults so
// a consuming application can reach the whole library without wiring a
// [catalog.Catalog] or [schema.Registry] by hand.
//
// Each category gets its own file (catalog.go, schema.go, foundry.go,
// similarity.go, identity.go) of convenience functions that delegate to [catalog.DefaultCatalog] and
// [schema.DefaultRegistry], mirroring how gofulmen's crucible-helpers.go
// layers named convenience functions over its SchemaRegistry/
// StandardsRegistry package variables. Applications needing a non-default
// base directory or telemetry hooks should use a [Client] instead.
package fulmen
