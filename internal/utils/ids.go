package utils

import (
	"strings"

	"github.com/google/uuid"
)

const (
	PrefixMessage      = "msg"
	PrefixConversation = "conv"
	PrefixPlan         = "plan"
	PrefixSession      = "sess"
)

// NewID returns a random, prefixed identifier such as "msg_1b4e28ba2fa1...".
// Random UUIDs keep ids unique even when created within the same millisecond.
func NewID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// HasPrefix reports whether id was generated by NewID with the given prefix.
func HasPrefix(id, prefix string) bool {
	rest, ok := strings.CutPrefix(id, prefix+"_")
	if !ok || len(rest) != 32 {
		return false
	}
	for _, c := range rest {
		if !((c >= 'a' && c <= 'f') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}
