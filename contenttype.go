package s3

import (
	"path/filepath"
	"strings"
)

// DefaultContentType is sent for every extension not in the table.
const DefaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	".html": "text/html",
	".json": "application/json",
	".sig":  "application/pgp-signature",
}

// ContentTypeFor maps the extension of path to a content type.
func ContentTypeFor(path string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}

	return DefaultContentType
}
