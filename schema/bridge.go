package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"

	"github.com/fulmenhq/crucible-go/diagnostic"
)

// Bridge is the external-binary validation strategy (spec §4.C,
// SPEC_FULL §C.3): an alternative to the in-process jsonschema engine
// that shells out to a separately-installed validator. Probe reports
// whether the bridge's binary is available on the current host; Validate
// runs it against a schema file and a data file, both already on disk.
type Bridge interface {
	Probe() bool
	Validate(ctx context.Context, schemaPath, dataPath string) ([]diagnostic.Diagnostic, error)
}

// execBridge shells out to a configurable binary (default "goneat")
// expected to support a "validate --schema <path> <data>" invocation that
// prints a JSON array of {severity,message,pointer,keyword} objects to
// stdout and exits non-zero only on a usage or execution error (schema
// violations are reported as diagnostics, not process failure).
type execBridge struct {
	binary string
}

// DefaultBridge returns the bridge strategy that shells out to "goneat",
// the external validator SPEC_FULL §C.3 names as the reference bridge
// binary.
func DefaultBridge() Bridge {
	return &execBridge{binary: "goneat"}
}

// NewExecBridge returns a bridge that shells out to an arbitrary binary
// name or path, for deployments that vendor a differently-named
// validator.
func NewExecBridge(binary string) Bridge {
	return &execBridge{binary: binary}
}

func (b *execBridge) Probe() bool {
	_, err := exec.LookPath(b.binary)
	return err == nil
}

type bridgeDiagnostic struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Pointer  string `json:"pointer"`
	Keyword  string `json:"keyword"`
}

func (b *execBridge) Validate(ctx context.Context, schemaPath, dataPath string) ([]diagnostic.Diagnostic, error) {
	path, err := exec.LookPath(b.binary)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, path, "validate", "--schema", schemaPath, dataPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr != nil {
		if _, isExit := runErr.(*exec.ExitError); !isExit {
			// The binary could not be started at all (not an exit-code
			// failure reporting violations); treat as bridge failure.
			return nil, runErr
		}
	}

	var raw []bridgeDiagnostic
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		return nil, err
	}

	out := make([]diagnostic.Diagnostic, len(raw))
	for i, d := range raw {
		sev := diagnostic.Severity(d.Severity)
		if sev == "" {
			sev = diagnostic.SeverityError
		}
		out[i] = diagnostic.Diagnostic{
			Severity: sev,
			Message:  d.Message,
			Pointer:  d.Pointer,
			Keyword:  d.Keyword,
			Source:   diagnostic.SourceExternalBinary,
		}
	}
	return out, nil
}
