package quiz

import (
	"encoding/json"
	"regexp"
	"strings"
)

// modelPayload is the JSON shape the prompt asks the model for: questions
// paired positionally with answers.
type modelPayload struct {
	Questions []modelQuestion `json:"questions"`
	Answers   []string        `json:"answers"`
}

type modelQuestion struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// ParseResponse turns a raw model reply into question records. Best effort:
// a JSON block is tried first, then a line-based scrape. Malformed entries
// are skipped rather than failing the batch, so the result may be shorter
// than requested, or empty.
func ParseResponse(raw, quizType string) []Question {
	if qs := parseJSON(raw, quizType); len(qs) > 0 {
		return qs
	}
	return ParseLines(raw, quizType)
}

func parseJSON(raw, quizType string) []Question {
	blob := extractJSON(raw)
	if blob == "" {
		return nil
	}
	var p modelPayload
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return nil
	}
	var out []Question
	for i, mq := range p.Questions {
		text := strings.TrimSpace(mq.Text)
		if text == "" {
			continue
		}
		if quizType == TypeMultipleChoice && len(mq.Options) == 0 {
			continue
		}
		q := Question{Text: text, Type: quizType}
		if quizType == TypeMultipleChoice {
			q.Options = trimAll(mq.Options)
		}
		// a missing paired answer stays empty: gradeable as wrong, never fatal
		if i < len(p.Answers) {
			q.Answer = strings.TrimSpace(p.Answers[i])
		}
		out = append(out, q)
	}
	return out
}

var fenceRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// extractJSON locates a JSON object inside model output that may carry
// markdown fences or prose around it. Braces inside strings are ignored;
// truncated output gets its open braces closed so a partial reply still has
// a chance to decode.
func extractJSON(s string) string {
	if m := fenceRe.FindStringSubmatch(s); len(m) > 1 && strings.Contains(m[1], "{") {
		s = m[1]
	}
	start := strings.Index(s, "{")
	if start < 0 {
		return ""
	}
	s = s[start:]
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[:i+1]
				}
			}
		}
	}
	if inString {
		s += `"`
	}
	return s + strings.Repeat("}", depth)
}

var (
	questionRe = regexp.MustCompile(`^(?:Q(?:uestion)?\s*)?(\d+)[.)]\s*(.*)$`)
	optionRe   = regexp.MustCompile(`^([a-zA-Z])[.)]\s+(.+)$`)
	answerRe   = regexp.MustCompile(`(?i)^answer\s*[:.]\s*(.*)$`)
)

// ParseLines scrapes loosely formatted quiz text: a numbered line starts a
// question, lettered lines are options, an "Answer:" line sets the key.
// Extra whitespace and absent markers are tolerated; one record is produced
// per numbered entry.
func ParseLines(raw, quizType string) []Question {
	var out []Question
	var cur *Question
	flush := func() {
		if cur != nil && strings.TrimSpace(cur.Text) != "" {
			out = append(out, *cur)
		}
		cur = nil
	}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := questionRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &Question{Text: strings.TrimSpace(m[2]), Type: quizType}
			continue
		}
		if cur == nil {
			continue
		}
		if m := answerRe.FindStringSubmatch(line); m != nil {
			cur.Answer = strings.TrimSpace(m[1])
			continue
		}
		if m := optionRe.FindStringSubmatch(line); m != nil && quizType != TypeOpenEnded {
			cur.Options = append(cur.Options, strings.TrimSpace(m[2]))
			continue
		}
		// anything else continues the question text
		cur.Text = strings.TrimSpace(cur.Text + " " + line)
	}
	flush()
	return out
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
