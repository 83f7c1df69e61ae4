package quiz

import (
	"math/rand"
	"strings"
)

// ShuffleOptions reorders every multiple-choice question's options and remaps
// the answer letter so it keeps pointing at the correct option. The top-level
// rand source is used so concurrent generate actions never share rng state.
func ShuffleOptions(qs []Question) {
	for i := range qs {
		shuffleOne(&qs[i])
	}
}

func shuffleOne(q *Question) {
	if len(q.Options) < 2 {
		return
	}
	correct := ""
	if idx := letterIndex(q.Answer); idx >= 0 && idx < len(q.Options) {
		correct = q.Options[idx]
	}
	rand.Shuffle(len(q.Options), func(i, j int) {
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
	})
	if correct == "" {
		return
	}
	for i, opt := range q.Options {
		if opt == correct {
			q.Answer = string(rune('a' + i))
			return
		}
	}
}

// letterIndex maps an answer letter ("a", "B.") to its option index, or -1.
func letterIndex(ans string) int {
	ans = strings.TrimSpace(strings.ToLower(ans))
	if ans == "" {
		return -1
	}
	c := ans[0]
	if c < 'a' || c > 'z' {
		return -1
	}
	if len(ans) > 1 && ans[1] != '.' && ans[1] != ')' {
		return -1
	}
	return int(c - 'a')
}
