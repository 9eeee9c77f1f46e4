package foundry

// GetHTTPStatus looks up the catalog entry for a numeric HTTP status
// code.
func GetHTTPStatus(code int) (HTTPStatusEntry, bool, error) {
	if err := ensureCatalogs(); err != nil {
		return HTTPStatusEntry{}, false, err
	}
	e, ok := httpStatuses[code]
	return e, ok, nil
}

// ListHTTPStatuses returns every catalog entry. Map iteration order is
// not guaranteed; callers that need a stable order should sort by Code.
func ListHTTPStatuses() ([]HTTPStatusEntry, error) {
	if err := ensureCatalogs(); err != nil {
		return nil, err
	}
	out := make([]HTTPStatusEntry, 0, len(httpStatuses))
	for _, e := range httpStatuses {
		out = append(out, e)
	}
	return out, nil
}
