package match

import "strings"

// separatorReplacer maps the separator characters that show up
// inconsistently in free-text tags ("co-op" vs "co op" vs "co_op",
// "CS/Math" vs "cs math") to a single space.
var separatorReplacer = strings.NewReplacer("-", " ", "/", " ", "_", " ")

// Normalize canonicalizes a free-text token for comparison: lowercases,
// replaces hyphen, slash and underscore with a space, and trims
// surrounding whitespace. Empty input yields an empty string.
//
// Normalize is idempotent. Every tag comparison in this package runs on
// normalized forms of both sides; normalized and raw forms are never mixed.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(separatorReplacer.Replace(strings.ToLower(s)))
}

// normalizeSet normalizes every tag and collapses duplicates.
func normalizeSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[Normalize(tag)] = true
	}
	delete(set, "")
	return set
}
