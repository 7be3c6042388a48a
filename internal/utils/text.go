package utils

import "strings"

// NormalizeInput trims user input. An empty result means the input should be ignored.
func NormalizeInput(s string) string {
	return strings.TrimSpace(s)
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
