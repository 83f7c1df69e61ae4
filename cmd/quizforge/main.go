package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/quizforge/quizforge/internal/api/http"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/webui"
)

func main() {
	cfg := config.FromEnv()

	// the sweeper dies with the process; only tests need Close
	store := quiz.NewMemoryStore(cfg.QuizTTL)

	factory, defaultKey := generatorFactory(cfg)
	svc := quiz.NewService(store, factory,
		quiz.WithDefaultAPIKey(defaultKey),
		quiz.WithRetries(cfg.GenerateRetries),
		quiz.WithMaxQuestions(cfg.MaxQuestions),
	)
	engine := grading.NewEngine(grading.WithFuzzyThreshold(cfg.FuzzyThreshold))

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Route("/api/quizzes", func(qr chi.Router) {
		qr.Post("/", api.GenerateQuizHandler(svc))
		qr.Route("/{quizID}", func(ir chi.Router) {
			ir.Get("/", api.GetQuizHandler(store))
			ir.Post("/grade", api.GradeQuizHandler(store, engine))
			ir.Get("/export", api.ExportQuizHandler(store))
			ir.Delete("/", api.ResetQuizHandler(store))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Handle("/*", webui.Handler())

	log.Printf("listening on %s (provider=%s)", cfg.HTTPAddr, cfg.Provider)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

// generatorFactory picks the configured model backend and its server-side
// default key. Clients are opened per generate action because keys are
// caller-supplied.
func generatorFactory(cfg config.Config) (quiz.GeneratorFactory, string) {
	switch cfg.Provider {
	case "openai":
		return func(_ context.Context, apiKey string) (quiz.Generator, error) {
			return llm.NewOpenAI(apiKey, cfg.OpenAIModel)
		}, cfg.OpenAIAPIKey
	default:
		return func(ctx context.Context, apiKey string) (quiz.Generator, error) {
			return llm.NewGemini(ctx, apiKey, cfg.GeminiModel)
		}, cfg.GeminiAPIKey
	}
}
