// Package sanitize turns enumeration literals into legal C++ identifiers.
package sanitize

import "strings"

var replacer = strings.NewReplacer(
	"/", "",
	"+", "positive",
	"-", "negative",
	"%", "percent",
)

// Identifier deletes path separators and spells out plus, minus and
// percent signs. No other characters are altered. The replacement words
// contain none of the replaced characters, so Identifier is idempotent.
func Identifier(s string) string {
	return replacer.Replace(s)
}
