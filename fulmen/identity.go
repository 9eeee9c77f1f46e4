package fulmen

import "github.com/fulmenhq/crucible-go/identity"

// RegisterEmbeddedIdentity registers the process's embedded-identity
// fallback (spec §4.F). Fails if one is already registered.
func RegisterEmbeddedIdentity(src any) error {
	return identity.RegisterEmbeddedIdentity(src)
}

// LoadIdentity executes the identity discovery precedence chain.
func LoadIdentity(opts identity.LoadOptions) (identity.Identity, error) {
	return identity.LoadIdentity(opts)
}

// GetBinaryName returns the resolved identity's binary name.
func GetBinaryName() (string, error) {
	return identity.GetBinaryName()
}

// GetVendor returns the resolved identity's vendor.
func GetVendor() (string, error) {
	return identity.GetVendor()
}

// GetEnvPrefix returns the resolved identity's environment variable
// prefix.
func GetEnvPrefix() (string, error) {
	return identity.GetEnvPrefix()
}

// GetConfigIdentifiers returns the resolved identity's vendor/config-name
// pair.
func GetConfigIdentifiers() (identity.ConfigIdentifiers, error) {
	return identity.GetConfigIdentifiers()
}

// BuildEnvVar returns the sanitized, prefixed environment variable name
// for key under the resolved identity.
func BuildEnvVar(key string) (string, error) {
	return identity.BuildEnvVar(key)
}

// GetEnvVar reads the process environment variable named by
// [BuildEnvVar].
func GetEnvVar(key string) (string, error) {
	return identity.GetEnvVar(key)
}
