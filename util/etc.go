package util

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FixUnicode normalizes a user-typed path to NFC; some terminals
// (notably on macOS) hand over decomposed unicode.
func FixUnicode(in string) string {
	return norm.NFC.String(in)
}

// DeriveOutputName swaps the extension of filename for ext, so
// "report.pdf" with ext "png" becomes "report.png".
func DeriveOutputName(filename string, ext string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return base + "." + strings.TrimPrefix(ext, ".")
}
