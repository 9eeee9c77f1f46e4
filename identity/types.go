package identity

// Identity is the descriptor of the host application (spec §4.F Data
// Model: Identity). Callers receive copies from [LoadIdentity] and
// [GetEmbeddedIdentity]; the Metadata map is copied on every return, so
// adding, replacing or deleting a top-level key of a returned map does not
// reach cached or embedded state. Maps and slices nested inside Metadata
// are not copied and remain shared with that state.
type Identity struct {
	BinaryName  string
	Vendor      string
	EnvPrefix   string
	ConfigName  string
	Description string
	Metadata    map[string]any
}

// ConfigIdentifiers is the frozen pair returned by [GetConfigIdentifiers].
type ConfigIdentifiers struct {
	Vendor     string
	ConfigName string
}

func cloneIdentity(id Identity) Identity {
	out := id
	if id.Metadata != nil {
		out.Metadata = make(map[string]any, len(id.Metadata))
		for k, v := range id.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

type identityFile struct {
	App struct {
		BinaryName  string `json:"binary_name" yaml:"binary_name"`
		Vendor      string `json:"vendor" yaml:"vendor"`
		EnvPrefix   string `json:"env_prefix" yaml:"env_prefix"`
		ConfigName  string `json:"config_name" yaml:"config_name"`
		Description string `json:"description" yaml:"description"`
	} `json:"app" yaml:"app"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

func (f identityFile) toIdentity() Identity {
	return Identity{
		BinaryName:  f.App.BinaryName,
		Vendor:      f.App.Vendor,
		EnvPrefix:   f.App.EnvPrefix,
		ConfigName:  f.App.ConfigName,
		Description: f.App.Description,
		Metadata:    f.Metadata,
	}
}
