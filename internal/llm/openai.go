package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAI is the alternative backend, via langchaingo's OpenAI binding.
type OpenAI struct {
	llm *openai.LLM
}

func NewOpenAI(apiKey, modelName string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("openai: api key required")
	}
	l, err := openai.New(openai.WithToken(apiKey), openai.WithModel(modelName))
	if err != nil {
		return nil, fmt.Errorf("openai: new client: %w", err)
	}
	return &OpenAI{llm: l}, nil
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, o.llm, prompt, llms.WithTemperature(0.2))
	if err != nil {
		return "", fmt.Errorf("openai: generate: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func (o *OpenAI) Close() error { return nil }
