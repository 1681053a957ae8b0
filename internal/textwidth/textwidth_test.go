package textwidth

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"日本語", 6}, // wide runes take two cells
	}
	for _, tt := range tests {
		if got := String(tt.input); got != tt.want {
			t.Errorf("String(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestRune(t *testing.T) {
	if got := Rune('x'); got != 1 {
		t.Errorf("Rune('x') = %d, want 1", got)
	}
	if got := Rune('語'); got != 2 {
		t.Errorf("Rune('語') = %d, want 2", got)
	}
}
