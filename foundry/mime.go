package foundry

import "strings"

// GetMimeType looks up a catalog entry by canonical MIME string,
// case-insensitive (spec §4.D getMimeType). The returned entry is an
// independent deep copy; mutating its Extensions slice does not affect
// the catalog.
func GetMimeType(mime string) (MimeEntry, bool, error) {
	if err := ensureCatalogs(); err != nil {
		return MimeEntry{}, false, err
	}
	e, ok := mimeByType[lowerASCII(mime)]
	return cloneMimeEntry(e), ok, nil
}

// GetMimeTypeByExtension looks up a catalog entry by file extension,
// case-insensitive, accepting the extension with or without a leading
// dot (spec §4.D getMimeTypeByExtension).
func GetMimeTypeByExtension(ext string) (MimeEntry, bool, error) {
	if err := ensureCatalogs(); err != nil {
		return MimeEntry{}, false, err
	}
	ext = strings.TrimPrefix(lowerASCII(ext), ".")
	e, ok := mimeByExt[ext]
	return cloneMimeEntry(e), ok, nil
}

func cloneMimeEntry(e MimeEntry) MimeEntry {
	exts := make([]string, len(e.Extensions))
	copy(exts, e.Extensions)
	e.Extensions = exts
	return e
}

// IsSupportedMimeType reports whether mime is a known catalog entry.
func IsSupportedMimeType(mime string) (bool, error) {
	_, ok, err := GetMimeType(mime)
	return ok, err
}

// ListMimeTypes returns every catalog entry, in declaration order.
func ListMimeTypes() ([]MimeEntry, error) {
	if err := ensureCatalogs(); err != nil {
		return nil, err
	}
	out := make([]MimeEntry, len(mimeOrder))
	for i, e := range mimeOrder {
		out[i] = cloneMimeEntry(e)
	}
	return out, nil
}
