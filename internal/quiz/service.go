package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/llm"
)

var (
	ErrAPIKeyRequired = errors.New("api key required")
	ErrNoQuestions    = errors.New("model returned no usable questions")
	// ErrUpstream marks failures of the hosted model call itself, so the
	// HTTP layer can answer 502 instead of 400.
	ErrUpstream = errors.New("model backend failure")
)

// Generator is one hosted-model backend. Implementations live in internal/llm.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}

// GeneratorFactory opens a Generator for one generate action, authenticated
// with the caller-supplied key.
type GeneratorFactory func(ctx context.Context, apiKey string) (Generator, error)

type Service struct {
	store      Store
	newGen     GeneratorFactory
	defaultKey string
	retries    int
	maxCount   int
}

type ServiceOption func(*Service)

// WithDefaultAPIKey injects a server-side key used when a request carries none.
func WithDefaultAPIKey(k string) ServiceOption {
	return func(s *Service) { s.defaultKey = k }
}

func WithRetries(n int) ServiceOption {
	return func(s *Service) { s.retries = n }
}

func WithMaxQuestions(n int) ServiceOption {
	return func(s *Service) { s.maxCount = n }
}

func NewService(store Store, newGen GeneratorFactory, opts ...ServiceOption) *Service {
	s := &Service{
		store:    store,
		newGen:   newGen,
		retries:  2,
		maxCount: 30,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Generate runs one full generate action: build prompt, call the model,
// parse, shuffle, store. The call is synchronous; the caller's context bounds
// the network call.
func (s *Service) Generate(ctx context.Context, apiKey, topic string, count int, quizType string) (Quiz, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Quiz{}, errors.New("topic required")
	}
	if !ValidType(quizType) {
		return Quiz{}, fmt.Errorf("unknown quiz type %q", quizType)
	}
	if count < 1 || count > s.maxCount {
		return Quiz{}, fmt.Errorf("question count must be between 1 and %d", s.maxCount)
	}
	if apiKey = strings.TrimSpace(apiKey); apiKey == "" {
		apiKey = s.defaultKey
	}
	if apiKey == "" {
		return Quiz{}, ErrAPIKeyRequired
	}

	gen, err := s.newGen(ctx, apiKey)
	if err != nil {
		return Quiz{}, fmt.Errorf("%w: open client: %v", ErrUpstream, err)
	}
	defer gen.Close()

	prompt := llm.BuildPrompt(count, quizType, topic)
	var questions []Question
	var lastErr error
	for attempt := 0; attempt <= s.retries; attempt++ {
		raw, err := gen.Generate(ctx, prompt)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrUpstream, err)
			continue
		}
		if questions = ParseResponse(raw, quizType); len(questions) > 0 {
			break
		}
		lastErr = ErrNoQuestions
	}
	if len(questions) == 0 {
		if lastErr == nil {
			lastErr = ErrNoQuestions
		}
		return Quiz{}, lastErr
	}

	if quizType == TypeMultipleChoice {
		ShuffleOptions(questions)
	}

	q := Quiz{
		ID:        uuid.NewString(),
		Topic:     topic,
		Type:      quizType,
		Questions: questions,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.store.Put(q); err != nil {
		return Quiz{}, fmt.Errorf("store quiz: %w", err)
	}
	return q, nil
}
