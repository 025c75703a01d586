package cookies

import (
	"regexp"
	"sort"
	"strings"
)

// Cookie listings arrive as free text: one name per line, or separated
// by commas or semicolons, possibly as name=value pairs.
var separatorPattern = regexp.MustCompile(`[\n,;]+`)

// ParseNames splits a raw cookie listing into distinct names. Values
// after the first '=' are stripped, names are deduplicated
// case-insensitively (first spelling wins), and the result is sorted
// case-insensitively. Malformed input degrades to fewer tokens, never
// an error.
func ParseNames(raw string) []string {
	if raw == "" {
		return nil
	}

	seen := make(map[string]bool)
	var names []string

	for _, token := range separatorPattern.Split(raw, -1) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if idx := strings.Index(token, "="); idx >= 0 {
			token = strings.TrimSpace(token[:idx])
		}
		if token == "" {
			continue
		}

		key := strings.ToLower(token)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, token)
	}

	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	return names
}
