package mapping

import "strings"

const byteOrderMark = "\ufeff"

// NormalizePath cleans a path field read from a mapping file: surrounding
// whitespace, quotes and byte-order marks are removed and backslashes become
// forward slashes. Normalizing an already normalized path is a no-op.
func NormalizePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), `"`)
	p = strings.Trim(strings.TrimSpace(p), byteOrderMark)
	return strings.ReplaceAll(p, `\`, "/")
}

// NormalizeIdentifier trims surrounding whitespace from an identifier field.
func NormalizeIdentifier(id string) string {
	return strings.TrimSpace(id)
}
