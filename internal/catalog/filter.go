package catalog

import "strings"

// Filter returns the subsequence of fields matching the search term and
// entity filter, truncated to maxRows entries when maxRows > 0.
//
// Steps apply in a fixed order so truncation drops the same rows every time:
// entity match first (case-sensitive, exact), then case-insensitive substring
// match of the term against field, description and entity (any of the three),
// then truncation. Relative catalog order is always preserved and an empty
// result is a normal outcome, not an error. An entityFilter naming no entity
// in the catalog matches nothing.
func Filter(defs []FieldDefinition, searchTerm, entityFilter string, maxRows int) []FieldDefinition {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	out := make([]FieldDefinition, 0, len(defs))
	for _, fd := range defs {
		if entityFilter != EntityAll && fd.Entity != entityFilter {
			continue
		}
		if term != "" && !matchesTerm(fd, term) {
			continue
		}
		out = append(out, fd)
		if maxRows > 0 && len(out) == maxRows {
			break
		}
	}
	return out
}

// matchesTerm reports whether the lowercased term is a substring of the
// field path, description or entity name.
func matchesTerm(fd FieldDefinition, term string) bool {
	return strings.Contains(strings.ToLower(fd.Field), term) ||
		strings.Contains(strings.ToLower(fd.Description), term) ||
		strings.Contains(strings.ToLower(fd.Entity), term)
}
