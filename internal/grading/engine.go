package grading

import "strings"

// Q is a minimal view of a question needed for grading.
type Q struct {
	Type   string
	Answer string
}

// Verdict is the outcome for a single question, 1-based.
type Verdict struct {
	Number   int    `json:"number"`
	Correct  bool   `json:"correct"`
	Given    string `json:"given"`
	Expected string `json:"expected"`
}

type Summary struct {
	Score    int       `json:"score"`
	Total    int       `json:"total"`
	Verdicts []Verdict `json:"verdicts"`
}

// Strategy grades a single question.
type Strategy interface {
	Grade(q Q, response string) bool
}

type Option func(*config)

type config struct {
	fuzzyThreshold float64 // open-ended answers must beat this ratio
}

func WithFuzzyThreshold(t float64) Option {
	return func(c *config) { c.fuzzyThreshold = t }
}

// Engine routes by question type to the correct Strategy.
type Engine struct {
	strategies map[string]Strategy
}

// NewEngine installs built-in strategies.
func NewEngine(opts ...Option) *Engine {
	cfg := &config{fuzzyThreshold: 0.8}
	for _, o := range opts {
		o(cfg)
	}
	return &Engine{
		strategies: map[string]Strategy{
			"multiple-choice": choiceStrategy{},
			"true-false":      choiceStrategy{},
			"open-ended":      fuzzyStrategy{threshold: cfg.fuzzyThreshold},
		},
	}
}

// Grade scores one response. A blank response or an unknown question type is
// always incorrect.
func (e *Engine) Grade(q Q, response string) bool {
	if strings.TrimSpace(response) == "" {
		return false
	}
	s, ok := e.strategies[q.Type]
	if !ok {
		return false
	}
	return s.Grade(q, response)
}

// GradeAll scores a full quiz. Responses are keyed by 1-based question
// number; questions without a response count as incorrect.
func (e *Engine) GradeAll(questions []Q, responses map[int]string) Summary {
	sum := Summary{Total: len(questions)}
	for i, q := range questions {
		given := responses[i+1]
		v := Verdict{
			Number:   i + 1,
			Correct:  e.Grade(q, given),
			Given:    given,
			Expected: q.Answer,
		}
		if v.Correct {
			sum.Score++
		}
		sum.Verdicts = append(sum.Verdicts, v)
	}
	return sum
}

// choiceStrategy covers multiple-choice and true-false: case-insensitive
// equality against the key, with a bare option letter ("b" or "b. Paris")
// accepted when the key is a single letter.
type choiceStrategy struct{}

func (choiceStrategy) Grade(q Q, response string) bool {
	key := strings.TrimSpace(q.Answer)
	resp := strings.TrimSpace(response)
	if strings.EqualFold(key, resp) {
		return true
	}
	if len(key) == 1 {
		if l, ok := choiceLetter(resp); ok {
			return strings.EqualFold(key, l)
		}
	}
	return false
}

// choiceLetter pulls the option letter out of an answer like "b" or "b. Paris".
func choiceLetter(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	c := s[0] | 0x20 // ascii lowercase
	if c < 'a' || c > 'z' {
		return "", false
	}
	if len(s) > 1 {
		switch s[1] {
		case '.', ')', ':', ' ':
		default:
			return "", false
		}
	}
	return string(c), true
}

// fuzzyStrategy grades open-ended answers by normalized similarity against
// the reference answer.
type fuzzyStrategy struct{ threshold float64 }

func (s fuzzyStrategy) Grade(q Q, response string) bool {
	return Ratio(response, q.Answer) > s.threshold
}
