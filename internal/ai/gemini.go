package ai

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Gemini generates conversational answers from matched scheme context.
//
// The model call is strictly best effort: callers treat any error here as a
// cue to fall back to the raw context string, never as a user-facing failure.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGemini creates a client for the given API key and model name.
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Answer asks the model to reply to the user's question using the matched
// scheme context, in the user's language.
func (g *Gemini) Answer(ctx context.Context, question, schemeContext string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"The user asked: %q. Use the following schemes data to answer clearly in the same language as the user:\n%s",
		question, schemeContext,
	)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("model returned an empty answer")
	}
	return text, nil
}
