package normalize

import (
	"strings"
)

// ToLowerDotPath normalizes a message key to a lowercase dot-separated path.
// Double underscores (__) are treated as level separators and converted to dots.
// Single underscores within a level are preserved. Surrounding whitespace is removed.
// Examples:
//   - "INT__OVERFLOW" → "int.overflow"
//   - "NOT_UTF8" → "not_utf8"
//   - "Char.Too_Many" → "char.too_many"
func ToLowerDotPath(key string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(key), "__", ".")
	return strings.ToLower(normalized)
}

// ApplyPrefix combines a prefix with a key to create a nested message path.
// If prefix is empty, returns the key unchanged.
// Otherwise, returns "prefix.key".
// Examples:
//   - ApplyPrefix("int", "overflow") → "int.overflow"
//   - ApplyPrefix("", "generic") → "generic"
func ApplyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + "." + key
}
