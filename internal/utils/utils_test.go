package utils

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		wantPrefix string
	}{
		{"message id", PrefixMessage, "msg_"},
		{"conversation id", PrefixConversation, "conv_"},
		{"plan id", PrefixPlan, "plan_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewID(tt.prefix)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("NewID(%q) = %q, want prefix %q", tt.prefix, got, tt.wantPrefix)
			}
			if !HasPrefix(got, tt.prefix) {
				t.Errorf("HasPrefix(%q, %q) = false", got, tt.prefix)
			}
		})
	}

	if got := NewID(""); len(got) != 32 {
		t.Errorf("NewID(\"\") length = %d, want 32", len(got))
	}
}

func TestNewIDUniqueness(t *testing.T) {
	const iterations = 10000
	seen := make(map[string]bool, iterations)
	for i := 0; i < iterations; i++ {
		id := NewID(PrefixMessage)
		if seen[id] {
			t.Fatalf("NewID generated duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		prefix string
		want   bool
	}{
		{"valid", "msg_0123456789abcdef0123456789abcdef", "msg", true},
		{"wrong prefix", "conv_0123456789abcdef0123456789abcdef", "msg", false},
		{"too short", "msg_0123", "msg", false},
		{"uppercase", "msg_0123456789ABCDEF0123456789ABCDEF", "msg", false},
		{"clock based", "1718000000000", "msg", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPrefix(tt.id, tt.prefix); got != tt.want {
				t.Errorf("HasPrefix(%q, %q) = %v, want %v", tt.id, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Goa", "Goa"},
		{"  5 days \n", "5 days"},
		{"   ", ""},
		{"\t\n", ""},
	}
	for _, tt := range tests {
		if got := NormalizeInput(tt.in); got != tt.want {
			t.Errorf("NormalizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Goa - Cultural Explorer", 50, "Goa - Cultural Explorer"},
		{"Goa - Cultural Explorer", 8, "Goa -..."},
		{"₹50,000", 3, "₹50"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
