package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/export"
	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/quiz"
)

// GenerateQuizHandler runs the build-prompt → call-model → parse flow and
// returns the stored quiz with answer keys withheld.
func GenerateQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			APIKey       string `json:"api_key"`
			Topic        string `json:"topic"`
			NumQuestions int    `json:"num_questions"`
			QuizType     string `json:"quiz_type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		q, err := svc.Generate(r.Context(), req.APIKey, req.Topic, req.NumQuestions, req.QuizType)
		if err != nil {
			switch {
			case errors.Is(err, quiz.ErrAPIKeyRequired):
				http.Error(w, "enter an API key to generate a quiz", http.StatusBadRequest)
			case errors.Is(err, quiz.ErrUpstream), errors.Is(err, quiz.ErrNoQuestions):
				http.Error(w, err.Error(), http.StatusBadGateway)
			default:
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(q.Redacted())
	}
}

func GetQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := store.Get(chi.URLParam(r, "quizID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(q.Redacted())
	}
}

// GradeQuizHandler scores submitted answers, keyed by 1-based question
// number, and records the result for export.
func GradeQuizHandler(store quiz.Store, engine *grading.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		var req struct {
			Answers map[string]string `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		qz, err := store.Get(id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		qs := make([]grading.Q, len(qz.Questions))
		for i, q := range qz.Questions {
			qs[i] = grading.Q{Type: q.Type, Answer: q.Answer}
		}
		responses := make(map[int]string, len(req.Answers))
		for k, v := range req.Answers {
			if n, err := strconv.Atoi(strings.TrimSpace(k)); err == nil {
				responses[n] = v
			}
		}
		sum := engine.GradeAll(qs, responses)
		if err := store.SetResult(id, sum); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sum)
	}
}

// ExportQuizHandler serves the quiz, with the latest results when graded, as
// a plain-text download.
func ExportQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		qz, err := store.Get(id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		var result *grading.Summary
		if sum, ok := store.Result(id); ok {
			result = &sum
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="quiz.txt"`)
		_, _ = w.Write([]byte(export.FormatText(qz, result)))
	}
}

// ResetQuizHandler discards all question and answer state for one quiz.
func ResetQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(chi.URLParam(r, "quizID")); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
