package foundry

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/fulmenhq/crucible-go/diagnostic"
)

//go:embed catalogdata/mime-types.json
var embeddedMimeTypes []byte

//go:embed catalogdata/countries.json
var embeddedCountries []byte

//go:embed catalogdata/http-statuses.json
var embeddedHTTPStatuses []byte

//go:embed catalogdata/magic-numbers.json
var embeddedMagicNumbers []byte

type mimeCatalogFile struct {
	Version string      `json:"version"`
	Entries []MimeEntry `json:"entries"`
}

type countryCatalogFile struct {
	Version string         `json:"version"`
	Entries []CountryEntry `json:"entries"`
}

type httpStatusCatalogFile struct {
	Version string            `json:"version"`
	Entries []HTTPStatusEntry `json:"entries"`
}

type magicNumberCatalogFile struct {
	Version string            `json:"version"`
	Entries []magicNumberFile `json:"entries"`
}

type magicNumberFile struct {
	MimeType      string            `json:"mimeType"`
	Priority      int               `json:"priority"`
	MatchStrategy string            `json:"matchStrategy"`
	Patterns      []magicPatternRaw `json:"patterns"`
}

type magicPatternRaw struct {
	Offset      int    `json:"offset"`
	BytesHex    string `json:"bytesHex"`
	MaskHex     string `json:"maskHex"`
	Description string `json:"description"`
}

var (
	catalogOnce sync.Once
	catalogErr  error

	mimeByType     map[string]MimeEntry
	mimeByExt      map[string]MimeEntry
	mimeOrder      []MimeEntry
	countryByA2    map[string]CountryEntry
	countryByA3    map[string]CountryEntry
	countryByNum   map[string]CountryEntry
	countryOrder   []CountryEntry
	httpStatuses   map[int]HTTPStatusEntry
	magicSignatures []Signature
)

// ensureCatalogs parses the embedded JSON documents into lookup indices,
// once per process. A parse failure is cached and returned on every
// subsequent call (the embedded data never changes at runtime, so a
// failure here indicates a build-time defect, not a transient one).
func ensureCatalogs() error {
	catalogOnce.Do(func() {
		catalogErr = loadAllCatalogs()
	})
	return catalogErr
}

func loadAllCatalogs() error {
	var mimeFile mimeCatalogFile
	if err := json.Unmarshal(embeddedMimeTypes, &mimeFile); err != nil {
		return &diagnostic.FoundryCatalogError{Catalog: "mime-types", Cause: err}
	}
	mimeByType = make(map[string]MimeEntry, len(mimeFile.Entries))
	mimeByExt = make(map[string]MimeEntry, len(mimeFile.Entries)*2)
	mimeOrder = make([]MimeEntry, len(mimeFile.Entries))
	for i, e := range mimeFile.Entries {
		mimeOrder[i] = e
		mimeByType[lowerASCII(e.MimeType)] = e
		for _, ext := range e.Extensions {
			mimeByExt[lowerASCII(ext)] = e
		}
	}

	var countryFile countryCatalogFile
	if err := json.Unmarshal(embeddedCountries, &countryFile); err != nil {
		return &diagnostic.FoundryCatalogError{Catalog: "countries", Cause: err}
	}
	countryByA2 = make(map[string]CountryEntry, len(countryFile.Entries))
	countryByA3 = make(map[string]CountryEntry, len(countryFile.Entries))
	countryByNum = make(map[string]CountryEntry, len(countryFile.Entries))
	countryOrder = make([]CountryEntry, len(countryFile.Entries))
	for i, e := range countryFile.Entries {
		countryOrder[i] = e
		countryByA2[upperASCII(e.Alpha2)] = e
		countryByA3[upperASCII(e.Alpha3)] = e
		countryByNum[padNumeric(e.Numeric)] = e
	}

	var statusFile httpStatusCatalogFile
	if err := json.Unmarshal(embeddedHTTPStatuses, &statusFile); err != nil {
		return &diagnostic.FoundryCatalogError{Catalog: "http-statuses", Cause: err}
	}
	httpStatuses = make(map[int]HTTPStatusEntry, len(statusFile.Entries))
	for _, e := range statusFile.Entries {
		httpStatuses[e.Code] = e
	}

	var magicFile magicNumberCatalogFile
	if err := json.Unmarshal(embeddedMagicNumbers, &magicFile); err != nil {
		return &diagnostic.FoundryCatalogError{Catalog: "magic-numbers", Cause: err}
	}
	magicSignatures = make([]Signature, len(magicFile.Entries))
	for i, e := range magicFile.Entries {
		patterns := make([]Pattern, len(e.Patterns))
		for j, p := range e.Patterns {
			pat, err := decodePattern(p)
			if err != nil {
				return &diagnostic.FoundryCatalogError{Catalog: "magic-numbers", Cause: err}
			}
			patterns[j] = pat
		}
		magicSignatures[i] = Signature{
			MimeType:      e.MimeType,
			Priority:      e.Priority,
			MatchStrategy: MatchStrategy(e.MatchStrategy),
			Patterns:      patterns,
		}
	}

	return nil
}
