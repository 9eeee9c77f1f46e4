package catalog_test

import "github.com/fulmenhq/crucible-go/telemetry"

func telemetryNoop() telemetry.Hooks {
	return telemetry.Hooks{}
}
