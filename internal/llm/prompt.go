package llm

import "fmt"

// BuildPrompt formats topic, count and quiz type into the instruction sent to
// the model. Strict JSON output is requested because it parses far more
// reliably than free text; the caller still treats the reply as best-effort.
func BuildPrompt(numQuestions int, quizType, topic string) string {
	return fmt.Sprintf(`You are an expert quiz creator. Generate %d %s questions about the following topic: %q.

Output ONLY a valid JSON object with keys:
{
  "questions": [
    {
      "text": "Question text",
      "options": ["Option1", "Option2", "Option3", "Option4"]
    }
  ],
  "answers": ["a", "b", "c"]
}

IMPORTANT:
- No extra text outside the JSON.
- "options" only for multiple-choice questions.
- Multiple-choice answers must be lowercase letters matching the option position.
- True/False answers must be exactly "True" or "False".
- Open-ended answers: a short reference answer string.
- "answers" must have one entry per question, in order.`, numQuestions, quizType, topic)
}
