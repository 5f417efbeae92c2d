package model

import "strings"

// ParseTags splits a comma-delimited tag field into a normalized list:
// trimmed, lower-cased, blanks dropped. An empty field yields an empty list,
// never a singleton blank tag.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// MissingTags returns the required tags absent from have, preserving the
// order of required. Comparison is case-insensitive through ParseTags.
func MissingTags(required, have []string) []string {
	var missing []string
	for _, r := range required {
		found := false
		for _, h := range have {
			if r == h {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, r)
		}
	}
	return missing
}

// ContainsTag reports whether the raw comma-delimited field contains the
// given value as a substring, case-insensitively. Used by roster queries.
func ContainsTag(field, value string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(strings.TrimSpace(value)))
}
