package fulmen

import (
	"context"
	"io"

	"github.com/fulmenhq/crucible-go/foundry"
)

// DetectContent identifies the MIME type of an in-memory byte sample.
func DetectContent(data []byte) (*foundry.Detection, error) {
	return foundry.Detect(data)
}

// DetectContentFile identifies the MIME type of a file's leading bytes.
func DetectContentFile(path string) (*foundry.Detection, error) {
	return foundry.DetectFile(path)
}

// DetectContentStream identifies the MIME type of a stream's leading
// bytes, honoring ctx cancellation.
func DetectContentStream(ctx context.Context, r io.Reader, bytesToRead int) (*foundry.Detection, error) {
	return foundry.DetectStream(ctx, r, bytesToRead)
}

// GetMimeType looks up a MIME type entry by its canonical string.
func GetMimeType(mime string) (foundry.MimeEntry, bool, error) {
	return foundry.GetMimeType(mime)
}

// GetMimeTypeByExtension looks up a MIME type entry by file extension.
func GetMimeTypeByExtension(ext string) (foundry.MimeEntry, bool, error) {
	return foundry.GetMimeTypeByExtension(ext)
}

// ListMimeTypes returns every catalogued MIME type entry.
func ListMimeTypes() ([]foundry.MimeEntry, error) {
	return foundry.ListMimeTypes()
}

// GetCountryByAlpha2 looks up a country entry by its ISO 3166-1 alpha-2
// code.
func GetCountryByAlpha2(code string) (foundry.CountryEntry, bool, error) {
	return foundry.GetCountryByAlpha2(code)
}

// GetCountryByAlpha3 looks up a country entry by its ISO 3166-1 alpha-3
// code.
func GetCountryByAlpha3(code string) (foundry.CountryEntry, bool, error) {
	return foundry.GetCountryByAlpha3(code)
}

// ListCountries returns every catalogued country entry.
func ListCountries() ([]foundry.CountryEntry, error) {
	return foundry.ListCountries()
}

// GetHTTPStatus looks up an HTTP status entry by numeric code.
func GetHTTPStatus(code int) (foundry.HTTPStatusEntry, bool, error) {
	return foundry.GetHTTPStatus(code)
}

// ListHTTPStatuses returns every catalogued HTTP status entry.
func ListHTTPStatuses() ([]foundry.HTTPStatusEntry, error) {
	return foundry.ListHTTPStatuses()
}
