package validation

import (
	"regexp"
	"strings"
)

// tagRegex matches anything that looks like a markup tag. Stripping it is a
// defense against user text smuggling HTML into the notification emails; the
// mail templates still escape whatever survives.
var tagRegex = regexp.MustCompile(`<[^>]*>`)

// Field maxima in characters (runes). Input longer than the maximum is
// truncated before validation, never rejected for length alone.
const (
	MaxNameLen        = 200
	MaxEmailLen       = 254
	MaxURLLen         = 500
	MaxCoverLetterLen = 1000
)

// Sanitize strips tag-like substrings, trims surrounding whitespace and
// truncates to max runes, in that order. It runs before any validation rule.
func Sanitize(s string, max int) string {
	s = tagRegex.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > max {
		s = string(runes[:max])
	}
	return s
}
