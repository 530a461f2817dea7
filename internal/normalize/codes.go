package normalize

import (
	"regexp"
	"strings"
)

var innerSpace = regexp.MustCompile(`\s+`)

// Code canonicalizes a procedure code: trim, uppercase, strip inner
// whitespace. Punctuation is kept because OpenDental marker codes like
// "~GRP~" are not alphanumeric. Returns "" for blank input.
func Code(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	return innerSpace.ReplaceAllString(s, "")
}
