package hidden

import "testing"

func TestIsHidden(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"", false},
		{".", true},
		{"..", true},
		{".git", true},
		{"visible.txt", false},
		{"a.b.c", false},
		{string([]byte{0xff}), false}, // invalid UTF-8 first rune
	}
	for _, c := range cases {
		if got := IsHidden(c.name); got != c.want {
			t.Errorf("IsHidden(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}
