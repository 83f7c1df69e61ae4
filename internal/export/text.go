package export

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/quiz"
)

const resultsHeader = "== Results =="

// FormatText serializes a quiz, and its graded result when one exists, as
// flat text lines suitable for a .txt download.
func FormatText(qz quiz.Quiz, result *grading.Summary) string {
	var b strings.Builder
	for i, q := range qz.Questions {
		fmt.Fprintf(&b, "Q%d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "%c. %s\n", 'a'+j, opt)
		}
		ans := q.Answer
		if ans == "" {
			ans = "N/A"
		}
		fmt.Fprintf(&b, "Answer: %s\n\n", ans)
	}
	if result != nil {
		b.WriteString(resultsHeader + "\n")
		for _, v := range result.Verdicts {
			if v.Correct {
				fmt.Fprintf(&b, "- Q%d correct (your answer: %s)\n", v.Number, v.Given)
			} else {
				fmt.Fprintf(&b, "- Q%d incorrect (your answer: %s | correct: %s)\n", v.Number, v.Given, v.Expected)
			}
		}
		fmt.Fprintf(&b, "Score: %d/%d\n", result.Score, result.Total)
	}
	return b.String()
}

// ParseText reads exported text back into question records. The results
// section, when present, is not quiz content and is dropped first.
func ParseText(s, quizType string) []quiz.Question {
	if i := strings.Index(s, resultsHeader); i >= 0 {
		s = s[:i]
	}
	return quiz.ParseLines(s, quizType)
}
