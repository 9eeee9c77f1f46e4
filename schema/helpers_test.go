package schema_test

import (
	"testing"

	"github.com/fulmenhq/crucible-go/catalog"
	"github.com/fulmenhq/crucible-go/schema"
	"github.com/fulmenhq/crucible-go/telemetry"
)

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	cat := catalog.NewCatalog("testdata/fixture-root", telemetry.Hooks{})
	return schema.NewRegistry(cat, telemetry.Hooks{})
}
