// Package sanitize cleans model output before it is handed to a parser.
// Models regularly wrap JSON in markdown code fences even when told not to.
package sanitize

import (
	"regexp"
	"strings"
)

// codeFence matches a fence marker with an optional language tag, e.g.
// "```json" or a bare "```", plus any trailing whitespace. Markers are
// removed wherever they occur; this is textual substitution, not a
// markdown parse.
var codeFence = regexp.MustCompile("```[a-zA-Z0-9]*[ \t]*\r?\n?")

// JSON strips all code-fence markers from text and trims surrounding
// whitespace. Input without fences passes through unchanged apart from
// the trim.
func JSON(text string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(text, ""))
}
