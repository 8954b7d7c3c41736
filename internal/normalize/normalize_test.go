package normalize

import "testing"

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		s    string
		sub  string
		want bool
	}{
		{name: "mixed case", s: "Beach Cleanup", sub: "beach", want: true},
		{name: "substring", s: "Beach Cleanup", sub: "CLEAN", want: true},
		{name: "no match", s: "Beach Cleanup", sub: "food", want: false},
		{name: "empty sub matches", s: "anything", sub: "", want: true},
		{name: "non-ascii fold", s: "Straße", sub: "STRASSE", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.s, tt.sub); got != tt.want {
				t.Errorf("Contains(%q, %q) = %v, want %v", tt.s, tt.sub, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal("HIGH", "high") {
		t.Error("Equal should ignore case")
	}
	if Equal("high", "low") {
		t.Error("different strings must not be equal")
	}
}
