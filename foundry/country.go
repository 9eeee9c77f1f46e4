package foundry

// GetCountryByAlpha2 looks up a country by its uppercase 2-letter code
// (case-insensitive on input).
func GetCountryByAlpha2(code string) (CountryEntry, bool, error) {
	if err := ensureCatalogs(); err != nil {
		return CountryEntry{}, false, err
	}
	e, ok := countryByA2[upperASCII(code)]
	return e, ok, nil
}

// GetCountryByAlpha3 looks up a country by its uppercase 3-letter code
// (case-insensitive on input).
func GetCountryByAlpha3(code string) (CountryEntry, bool, error) {
	if err := ensureCatalogs(); err != nil {
		return CountryEntry{}, false, err
	}
	e, ok := countryByA3[upperASCII(code)]
	return e, ok, nil
}

// GetCountryByNumeric looks up a country by its numeric code, accepting
// either a bare or already left-padded-to-3-digits string (spec §4.D
// getCountryByNumeric).
func GetCountryByNumeric(code string) (CountryEntry, bool, error) {
	if err := ensureCatalogs(); err != nil {
		return CountryEntry{}, false, err
	}
	e, ok := countryByNum[padNumeric(code)]
	return e, ok, nil
}

// ListCountries returns every catalog entry, in declaration order.
func ListCountries() ([]CountryEntry, error) {
	if err := ensureCatalogs(); err != nil {
		return nil, err
	}
	out := make([]CountryEntry, len(countryOrder))
	copy(out, countryOrder)
	return out, nil
}
