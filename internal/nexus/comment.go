package nexus

import "regexp"

// commentRE matches a bracketed NEXUS comment. The match is non-greedy and
// spans newlines, so each '[' pairs with the nearest following ']'.
// Nested comments are out of scope (see the package doc).
var commentRE = regexp.MustCompile(`(?s)\[.*?\]`)

// StripComments removes every bracket-delimited comment span from text.
// The operation is a pure transform and idempotent: text with no remaining
// bracket pairs is returned unchanged.
func StripComments(text string) string {
	return commentRE.ReplaceAllString(text, "")
}
