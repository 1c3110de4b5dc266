// internal/app/system/sanitize/sanitize.go
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips all markup from author-entered text (titles, descriptions,
// question and option text) and trims surrounding whitespace. Survey content
// is echoed back to beneficiaries, so nothing tag-shaped survives authoring.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Slice sanitizes every element in place and returns the slice.
func Slice(ss []string) []string {
	for i, s := range ss {
		ss[i] = Text(s)
	}
	return ss
}
