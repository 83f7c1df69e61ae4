package grading

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Hello,  World! ", "hello world"},
		{"MIXED Case", "mixed case"},
		{"", ""},
		{"...", ""},
	}
	for _, c := range cases {
		if got := normalize(c.in); got != c.want {
			t.Errorf("normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"same", "same", 0},
	}
	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio("Photosynthesis uses light", "photosynthesis uses light."); got != 1 {
		t.Errorf("identical-after-normalize ratio = %f, want 1", got)
	}
	if got := Ratio("mitochondria", "completely different thing"); got > 0.5 {
		t.Errorf("unrelated ratio = %f, want low", got)
	}
	if got := Ratio("", ""); got != 1 {
		t.Errorf("empty ratio = %f, want 1", got)
	}
}
