package identity

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed app-identity.schema.json
var identitySchemaJSON []byte

var (
	identitySchemaOnce sync.Once
	identitySchema     *jsonschema.Schema
	identitySchemaErr  error
)

// compiledIdentitySchema compiles the embedded identity schema once per
// process. A compile failure here indicates a defect in this package's
// embedded document, not a caller error, so callers surface it wrapped as
// an [diagnostic.AppIdentityError] with [diagnostic.AppIdentityReasonInvalid].
func compiledIdentitySchema() (*jsonschema.Schema, error) {
	identitySchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		const url = "mem://crucible-go/identity/app-identity.schema.json"
		if err := c.AddResource(url, bytes.NewReader(identitySchemaJSON)); err != nil {
			identitySchemaErr = err
			return
		}
		identitySchema, identitySchemaErr = c.Compile(url)
	})
	return identitySchema, identitySchemaErr
}
