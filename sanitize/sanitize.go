package sanitize

import (
	"strings"

	"golang.org/x/text/width"
)

// FoldWidth maps full-width and half-width variants to their canonical ASCII
// forms, so "１９９８" becomes "1998" and "Ｖ" becomes "V".
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// TrimToUpper trims whitespace and converts to uppercase in one operation.
func TrimToUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Normalize applies the full pre-processing pipeline: trim surrounding
// whitespace, fold width variants to ASCII, uppercase. This is the only
// transformation applied to user input before recognition.
func Normalize(s string) string {
	return strings.ToUpper(FoldWidth(strings.TrimSpace(s)))
}
