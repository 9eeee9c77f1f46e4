package diagnostic

import "errors"

// ExitCode is the shared CLI exit-code taxonomy (spec §6). The core exposes
// the enum and [ExitCodeFor]; the CLI only invokes it.
type ExitCode int

const (
	ExitSuccess         ExitCode = 0
	ExitGeneralFailure  ExitCode = 1
	ExitInvalidArgument ExitCode = 2
	ExitFileNotFound    ExitCode = 51
	ExitWriteFailed     ExitCode = 52
	ExitDataInvalid     ExitCode = 60
)

// ExitCodeFor maps an error from the diagnostic taxonomy to the shared exit
// code the CLI should return. nil maps to [ExitSuccess].
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}

	var assetErr *AssetNotFoundError
	var invalidErr *InvalidAssetIdError
	var schemaErr *SchemaValidationError
	var exportErr *SchemaExportError
	var identityErr *AppIdentityError

	switch {
	case errors.As(err, &assetErr):
		return ExitFileNotFound
	case errors.As(err, &invalidErr):
		return ExitInvalidArgument
	case errors.As(err, &schemaErr):
		return ExitDataInvalid
	case errors.As(err, &exportErr):
		switch exportErr.Reason {
		case ExportReasonFileExists, ExportReasonWriteFailed:
			return ExitWriteFailed
		case ExportReasonInvalidFormat:
			return ExitInvalidArgument
		default:
			return ExitGeneralFailure
		}
	case errors.As(err, &identityErr):
		if identityErr.Reason == AppIdentityReasonNotFound {
			return ExitFileNotFound
		}
		return ExitDataInvalid
	default:
		return ExitGeneralFailure
	}
}
