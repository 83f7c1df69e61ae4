package quiz

import "testing"

const jsonReply = `{
  "questions": [
    {"text": "What is the capital of France?", "options": ["Paris", "London", "Berlin", "Madrid"]},
    {"text": "Which planet is closest to the sun?", "options": ["Mercury", "Venus", "Earth", "Mars"]}
  ],
  "answers": ["a", "a"]
}`

func TestParseResponseJSON(t *testing.T) {
	qs := ParseResponse(jsonReply, TypeMultipleChoice)
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Text != "What is the capital of France?" {
		t.Errorf("text = %q", qs[0].Text)
	}
	if len(qs[0].Options) != 4 || qs[0].Options[0] != "Paris" {
		t.Errorf("options = %v", qs[0].Options)
	}
	if qs[0].Answer != "a" || qs[1].Answer != "a" {
		t.Errorf("answers = %q, %q", qs[0].Answer, qs[1].Answer)
	}
	if qs[0].Type != TypeMultipleChoice {
		t.Errorf("type = %q", qs[0].Type)
	}
}

func TestParseResponseFencedJSON(t *testing.T) {
	raw := "Here is your quiz:\n```json\n" + jsonReply + "\n```\nEnjoy!"
	if qs := ParseResponse(raw, TypeMultipleChoice); len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
}

func TestParseResponseTruncatedJSON(t *testing.T) {
	// closing braces missing: brace balancing should repair it
	raw := `{"questions": [{"text": "Is water wet?"}], "answers": ["True"]`
	qs := ParseResponse(raw, TypeTrueFalse)
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].Answer != "True" {
		t.Errorf("answer = %q, want True", qs[0].Answer)
	}
}

func TestParseJSONSkipsMalformedEntries(t *testing.T) {
	raw := `{
  "questions": [
    {"text": "Good question?", "options": ["x", "y"]},
    {"options": ["no", "text"]},
    {"text": "MCQ without options"}
  ],
  "answers": ["a"]
}`
	qs := ParseResponse(raw, TypeMultipleChoice)
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1 (malformed skipped)", len(qs))
	}
	if qs[0].Text != "Good question?" {
		t.Errorf("text = %q", qs[0].Text)
	}
}

func TestParseJSONMissingAnswerDefaultsEmpty(t *testing.T) {
	raw := `{"questions": [{"text": "One?"}, {"text": "Two?"}], "answers": ["yes"]}`
	qs := ParseResponse(raw, TypeOpenEnded)
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[1].Answer != "" {
		t.Errorf("unpaired answer = %q, want empty", qs[1].Answer)
	}
}

func TestParseLinesNumberedEntries(t *testing.T) {
	raw := `
1. What is the capital of France?
a. Paris
b. London
Answer: a

2) Which planet is closest to the sun?
a) Mercury
b) Venus
Answer: a

3. Is water wet?
Answer: True
`
	qs := ParseLines(raw, TypeMultipleChoice)
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want one per numbered entry (3)", len(qs))
	}
	if len(qs[0].Options) != 2 {
		t.Errorf("q1 options = %v", qs[0].Options)
	}
	if qs[1].Answer != "a" {
		t.Errorf("q2 answer = %q", qs[1].Answer)
	}
	if len(qs[2].Options) != 0 {
		t.Errorf("q3 should have no options, got %v", qs[2].Options)
	}
}

func TestParseLinesToleratesMess(t *testing.T) {
	raw := "intro chatter to ignore\n\n  1.   Spaced   question?  \nsecond line of the question\nAnswer: yes\n"
	qs := ParseLines(raw, TypeOpenEnded)
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].Text != "Spaced   question? second line of the question" {
		t.Errorf("text = %q", qs[0].Text)
	}
	if qs[0].Answer != "yes" {
		t.Errorf("answer = %q", qs[0].Answer)
	}
}

func TestParseLinesEmptyInput(t *testing.T) {
	if qs := ParseLines("", TypeOpenEnded); len(qs) != 0 {
		t.Fatalf("got %d questions from empty input", len(qs))
	}
	if qs := ParseResponse("no structure here at all", TypeOpenEnded); len(qs) != 0 {
		t.Fatalf("got %d questions from unstructured text", len(qs))
	}
}

func TestParseResponseFallsBackToLines(t *testing.T) {
	raw := "Sure! Here is the quiz:\n1. First question?\nAnswer: one\n2. Second question?\nAnswer: two\n"
	qs := ParseResponse(raw, TypeOpenEnded)
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2 via line fallback", len(qs))
	}
}
