package fulmen

import (
	"github.com/fulmenhq/crucible-go/catalog"
	"github.com/fulmenhq/crucible-go/schema"
	"github.com/fulmenhq/crucible-go/telemetry"
)

// Client bundles a [catalog.Catalog] and [schema.Registry] wired to a
// common base directory and telemetry hooks, for consumers who cannot
// use the process-wide defaults ([catalog.DefaultCatalog],
// [schema.DefaultRegistry]) — for example, a test harness pointing at a
// fixture tree, or a process hosting more than one vendored asset tree.
// The package-level convenience functions in this package all delegate
// to the process-wide defaults; Client is the escape hatch.
type Client struct {
	Catalog  *catalog.Catalog
	Registry *schema.Registry
}

// NewClient wires a [Client] to baseDir, installing the default
// external-binary bridge on its schema registry.
func NewClient(baseDir string, hooks telemetry.Hooks) *Client {
	cat := catalog.NewCatalog(baseDir, hooks)
	reg := schema.NewRegistry(cat, hooks)
	reg.SetBridge(schema.DefaultBridge())
	return &Client{Catalog: cat, Registry: reg}
}
