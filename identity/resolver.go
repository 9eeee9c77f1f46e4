package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/fulmenhq/crucible-go/diagnostic"
)

// EnvPathVar is the environment variable consulted at precedence step 2
// (spec §4.F discovery precedence).
const EnvPathVar = "FULMEN_APP_IDENTITY_PATH"

// identityFilename is the well-known relative path searched for during
// ancestor discovery (spec "Identity file": ".fulmen/app.yaml").
const identityFilename = ".fulmen/app.yaml"

// maxAncestorDepth bounds the upward filesystem walk in LoadOptions'
// ancestor-search step to 64 directory levels.
const maxAncestorDepth = 64

var (
	embeddedMu   sync.Mutex
	embeddedSlot *Identity // nil until RegisterEmbeddedIdentity succeeds

	identityCacheMu sync.Mutex
	identityCache   = map[string]Identity{}
)

// RegisterEmbeddedIdentity parses (if a string) and validates src, then
// stores it as the process's embedded identity fallback. A second call
// fails with [diagnostic.AppIdentityReasonAlreadyRegistered]; the slot is
// compare-and-set, first-write-wins (spec §4.F invariants). A validation
// failure leaves the slot untouched.
func RegisterEmbeddedIdentity(src any) error {
	id, err := decodeIdentitySource(src)
	if err != nil {
		return err
	}
	if err := ValidateIdentity(id); err != nil {
		return err
	}

	embeddedMu.Lock()
	defer embeddedMu.Unlock()
	if embeddedSlot != nil {
		return &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonAlreadyRegistered}
	}
	frozen := cloneIdentity(id)
	embeddedSlot = &frozen
	return nil
}

func decodeIdentitySource(src any) (Identity, error) {
	switch v := src.(type) {
	case Identity:
		return v, nil
	case string:
		var f identityFile
		if err := yaml.Unmarshal([]byte(v), &f); err != nil {
			return Identity{}, &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonInvalid, Cause: err}
		}
		return f.toIdentity(), nil
	default:
		return Identity{}, &diagnostic.AppIdentityError{
			Reason: diagnostic.AppIdentityReasonInvalid,
			Cause:  fmt.Errorf("identity: unsupported source type %T (want string or Identity)", src),
		}
	}
}

// HasEmbeddedIdentity reports whether an embedded identity has been
// registered.
func HasEmbeddedIdentity() bool {
	embeddedMu.Lock()
	defer embeddedMu.Unlock()
	return embeddedSlot != nil
}

// GetEmbeddedIdentity returns a copy of the embedded identity, if any.
func GetEmbeddedIdentity() (Identity, bool) {
	embeddedMu.Lock()
	defer embeddedMu.Unlock()
	if embeddedSlot == nil {
		return Identity{}, false
	}
	return cloneIdentity(*embeddedSlot), true
}

// ClearEmbeddedIdentity resets the embedded-identity slot. Test-only
// (spec §4.F): production code registers at most once per process.
func ClearEmbeddedIdentity() {
	embeddedMu.Lock()
	defer embeddedMu.Unlock()
	embeddedSlot = nil
}

// ClearIdentityCache empties the resolved-path identity cache. Test-only.
func ClearIdentityCache() {
	identityCacheMu.Lock()
	defer identityCacheMu.Unlock()
	identityCache = map[string]Identity{}
}

// LoadOptions configures [LoadIdentity]'s discovery.
type LoadOptions struct {
	// Path, if non-empty, is precedence step 1: an explicit file path.
	Path string
	// StartDir is the directory ancestor search (precedence step 3)
	// begins from. Empty means the current working directory.
	StartDir string
}

// LoadIdentity executes the four-step precedence chain (spec §4.F):
// explicit path, FULMEN_APP_IDENTITY_PATH, ancestor ".fulmen/app.yaml"
// search from StartDir upward, embedded fallback. The first source that
// applies is used exclusively: if that source's file is missing or
// invalid, LoadIdentity fails without trying the next source. Results are
// cached by resolved path (the embedded fallback is cached under the
// sentinel key "embedded").
func LoadIdentity(opts LoadOptions) (Identity, error) {
	resolvedPath, searched, useEmbedded, err := resolveIdentitySource(opts)
	if err != nil {
		return Identity{}, err
	}

	cacheKey := resolvedPath
	if useEmbedded {
		cacheKey = "embedded"
	}

	identityCacheMu.Lock()
	if cached, ok := identityCache[cacheKey]; ok {
		identityCacheMu.Unlock()
		return cloneIdentity(cached), nil
	}
	identityCacheMu.Unlock()

	var id Identity
	if useEmbedded {
		embedded, ok := GetEmbeddedIdentity()
		if !ok {
			return Identity{}, &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonNotFound, SearchedPaths: searched}
		}
		id = embedded
	} else {
		loaded, err := loadIdentityFile(resolvedPath)
		if err != nil {
			return Identity{}, err
		}
		id = loaded
	}

	identityCacheMu.Lock()
	identityCache[cacheKey] = cloneIdentity(id)
	identityCacheMu.Unlock()

	return cloneIdentity(id), nil
}

// resolveIdentitySource applies the precedence chain without reading or
// validating file contents, returning which source was selected.
func resolveIdentitySource(opts LoadOptions) (path string, searched []string, useEmbedded bool, err error) {
	if opts.Path != "" {
		return opts.Path, nil, false, nil
	}
	if envPath := os.Getenv(EnvPathVar); envPath != "" {
		return envPath, nil, false, nil
	}

	startDir := opts.StartDir
	if startDir == "" {
		startDir, err = os.Getwd()
		if err != nil {
			return "", nil, false, &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonNotFound, Cause: err}
		}
	}
	current := startDir
	for i := 0; i < maxAncestorDepth; i++ {
		candidate := filepath.Join(current, identityFilename)
		searched = append(searched, candidate)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, nil, false, nil
		}
		next := filepath.Dir(current)
		if next == current {
			break
		}
		current = next
	}

	if HasEmbeddedIdentity() {
		return "", searched, true, nil
	}
	return "", searched, false, &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonNotFound, SearchedPaths: searched}
}

func loadIdentityFile(path string) (Identity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Identity{}, &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonNotFound, IdentityPath: path, Cause: err}
	}
	var f identityFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Identity{}, &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonInvalid, IdentityPath: path, Cause: err}
	}
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return Identity{}, &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonInvalid, IdentityPath: path, Cause: err}
	}
	if err := validateDecoded(path, v); err != nil {
		return Identity{}, err
	}
	return f.toIdentity(), nil
}

// GetBinaryName, GetVendor, GetEnvPrefix, and GetConfigName are
// convenience wrappers over [LoadIdentity] with the default options
// (spec §4.F convenience helpers).
func GetBinaryName() (string, error) {
	id, err := LoadIdentity(LoadOptions{})
	if err != nil {
		return "", err
	}
	return id.BinaryName, nil
}

func GetVendor() (string, error) {
	id, err := LoadIdentity(LoadOptions{})
	if err != nil {
		return "", err
	}
	return id.Vendor, nil
}

func GetEnvPrefix() (string, error) {
	id, err := LoadIdentity(LoadOptions{})
	if err != nil {
		return "", err
	}
	return id.EnvPrefix, nil
}

func GetConfigName() (string, error) {
	id, err := LoadIdentity(LoadOptions{})
	if err != nil {
		return "", err
	}
	return id.ConfigName, nil
}

// GetTelemetryNamespace returns Metadata["telemetry_namespace"] if set,
// otherwise falling back to BinaryName (spec §4.F).
func GetTelemetryNamespace() (string, error) {
	id, err := LoadIdentity(LoadOptions{})
	if err != nil {
		return "", err
	}
	if ns, ok := id.Metadata["telemetry_namespace"].(string); ok && ns != "" {
		return ns, nil
	}
	return id.BinaryName, nil
}

// GetConfigIdentifiers returns the frozen {Vendor, ConfigName} pair (spec
// §4.F getConfigIdentifiers).
func GetConfigIdentifiers() (ConfigIdentifiers, error) {
	id, err := LoadIdentity(LoadOptions{})
	if err != nil {
		return ConfigIdentifiers{}, err
	}
	return ConfigIdentifiers{Vendor: id.Vendor, ConfigName: id.ConfigName}, nil
}

var envVarSanitizer = regexp.MustCompile(`[^A-Z0-9_]`)

// BuildEnvVar returns "${env_prefix}${SANITIZE_UPPER(key)}" where
// SANITIZE replaces any character outside [A-Z0-9_] with "_" (spec
// §4.F buildEnvVar).
func BuildEnvVar(key string) (string, error) {
	id, err := LoadIdentity(LoadOptions{})
	if err != nil {
		return "", err
	}
	sanitized := envVarSanitizer.ReplaceAllString(strings.ToUpper(key), "_")
	return id.EnvPrefix + sanitized, nil
}

// GetEnvVar looks up the process environment variable named by
// [BuildEnvVar] (spec §4.F getEnvVar).
func GetEnvVar(key string) (string, error) {
	name, err := BuildEnvVar(key)
	if err != nil {
		return "", err
	}
	return os.Getenv(name), nil
}
