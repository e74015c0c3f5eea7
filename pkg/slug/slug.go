// Package slug derives URL-safe identifiers from human-readable names.
//
// The registry computes a slug for every named entity it stores. Client-side
// creation must produce byte-identical slugs, otherwise a created entity can
// never be found again by the slug the server derived for it.
package slug

import (
	"regexp"
	"strings"
)

// Word class is RE2's ASCII \w. The registry's own slugifier operates on
// ASCII; unicode letters are stripped rather than transliterated.
var (
	invalidChars  = regexp.MustCompile(`[^\w.\s-]`)
	edgeRuns      = regexp.MustCompile(`^[.\s]+|[.\s]+$`)
	separatorRuns = regexp.MustCompile(`[-.\s]+`)
)

// Make converts an arbitrary name into the registry's slug form:
// strip everything outside [word, hyphen, period, whitespace], trim
// leading/trailing periods and whitespace, collapse each remaining run of
// hyphens/periods/whitespace to a single hyphen, and lowercase.
//
// Make is idempotent: Make(Make(s)) == Make(s). No length cap is applied;
// the registry may truncate server-side.
func Make(s string) string {
	s = invalidChars.ReplaceAllString(s, "")
	s = edgeRuns.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}
