package quiz

// Quiz types, matching the values the UI submits.
const (
	TypeMultipleChoice = "multiple-choice"
	TypeTrueFalse      = "true-false"
	TypeOpenEnded      = "open-ended"
)

func ValidType(t string) bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeOpenEnded:
		return true
	}
	return false
}

type Question struct {
	Text string `json:"text"`
	Type string `json:"type"`
	// Options is empty unless the question is multiple-choice. Options are
	// addressed by letter: Options[0] is "a", Options[1] is "b", and so on.
	Options []string `json:"options,omitempty"`
	// Answer is the key: a lowercase letter for multiple-choice, "True" or
	// "False" for true-false, a reference sentence for open-ended.
	Answer string `json:"answer,omitempty"`
}

type Quiz struct {
	ID        string     `json:"id"`
	Topic     string     `json:"topic"`
	Type      string     `json:"type"`
	Questions []Question `json:"questions"`
	CreatedAt int64      `json:"created_at,omitempty"`
}

// Redacted returns a copy safe to hand to the quiz taker: answer keys are
// withheld until grading.
func (q Quiz) Redacted() Quiz {
	out := q
	out.Questions = make([]Question, len(q.Questions))
	copy(out.Questions, q.Questions)
	for i := range out.Questions {
		out.Questions[i].Answer = ""
	}
	return out
}
