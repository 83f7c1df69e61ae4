package quiz

import "testing"

func TestShuffleOptionsRemapsAnswer(t *testing.T) {
	for i := 0; i < 20; i++ {
		q := Question{
			Text:    "Capital of France?",
			Type:    TypeMultipleChoice,
			Options: []string{"Paris", "London", "Berlin", "Madrid"},
			Answer:  "a",
		}
		shuffleOne(&q)
		idx := letterIndex(q.Answer)
		if idx < 0 || idx >= len(q.Options) {
			t.Fatalf("answer %q does not address an option", q.Answer)
		}
		if q.Options[idx] != "Paris" {
			t.Fatalf("answer %q points at %q, want Paris", q.Answer, q.Options[idx])
		}
	}
}

func TestShuffleOptionsSkipsDegenerate(t *testing.T) {
	one := Question{Options: []string{"only"}, Answer: "a"}
	shuffleOne(&one)
	if one.Answer != "a" {
		t.Errorf("single-option answer changed to %q", one.Answer)
	}

	none := Question{Answer: "True"}
	shuffleOne(&none)
	if none.Answer != "True" {
		t.Errorf("optionless answer changed to %q", none.Answer)
	}

	// key not addressing an option: options may move, the key must not
	bad := Question{Options: []string{"x", "y"}, Answer: "z"}
	shuffleOne(&bad)
	if bad.Answer != "z" {
		t.Errorf("unmappable answer changed to %q", bad.Answer)
	}
}

func TestLetterIndex(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"a", 0}, {"B", 1}, {"c.", 2}, {"d)", 3}, {"", -1}, {"1", -1}, {"ab", -1},
	}
	for _, c := range cases {
		if got := letterIndex(c.in); got != c.want {
			t.Errorf("letterIndex(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
