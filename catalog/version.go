package catalog

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// CrucibleVersion is the vendored sync metadata read from
// .crucible/metadata/sync-keys.yaml (spec §6 "Version metadata").
type CrucibleVersion struct {
	Version    string `yaml:"version"`
	Commit     string `yaml:"commit"`
	SyncedAt   string `yaml:"syncedAt"`
	Dirty      bool   `yaml:"dirty"`
	SyncMethod string `yaml:"syncMethod"`
}

// unknownCrucibleVersion is the fallback returned when the metadata file is
// absent or malformed. Commit/SyncedAt/SyncMethod are left empty (the
// nearest Go equivalent of the spec's literal null), Version is "unknown",
// and Dirty is false.
var unknownCrucibleVersion = CrucibleVersion{Version: "unknown"}

// GetCrucibleVersion reads the vendored sync metadata file. Absence or a
// parse failure yields [unknownCrucibleVersion] rather than an error (spec
// §4.B, §6): this call never fails.
func (c *Catalog) GetCrucibleVersion() CrucibleVersion {
	path := filepath.Join(c.baseDir, ".crucible", "metadata", "sync-keys.yaml")

	raw, err := os.ReadFile(path)
	if err != nil {
		return unknownCrucibleVersion
	}

	var v CrucibleVersion
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return unknownCrucibleVersion
	}
	if v.Version == "" {
		v.Version = "unknown"
	}
	return v
}
