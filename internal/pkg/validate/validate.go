package validate

import "strings"

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MaxLen counts runes, not bytes, so multi-byte names are not penalized.
func MaxLen(value string, limit int) bool {
	return len([]rune(value)) <= limit
}
