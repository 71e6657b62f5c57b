package bridge

import (
	"regexp"
	"strings"
)

// fenceMarker matches a triple-backtick tag, with or without a language
// annotation such as ```graphql.
var fenceMarker = regexp.MustCompile("```[a-zA-Z]*")

// Sanitize cleans a raw completion into a single-line query string: code
// fence markers are stripped, line breaks collapse to single spaces and
// surrounding whitespace is trimmed.
func Sanitize(raw string) string {
	cleaned := fenceMarker.ReplaceAllString(raw, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}
