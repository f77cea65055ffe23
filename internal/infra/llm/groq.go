// Package llm is the chat completion collaborator. Groq exposes an
// OpenAI-compatible API, so the client is langchaingo's openai model
// pointed at the Groq endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/ironlady/leadbot/internal/entity"
	"github.com/ironlady/leadbot/internal/infra/http/middleware"
)

const (
	defaultModel   = "llama-3.3-70b-versatile"
	defaultBaseURL = "https://api.groq.com/openai/v1"
)

type Client struct {
	model llms.Model
}

func NewGroqClient() (*Client, error) {
	key := os.Getenv("GROQ_API_KEY")
	if key == "" {
		return nil, errors.New("GROQ_API_KEY is not set")
	}

	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultModel
	}
	baseURL := os.Getenv("GROQ_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	m, err := openai.New(
		openai.WithToken(key),
		openai.WithModel(model),
		openai.WithBaseURL(baseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groq client: %w", err)
	}

	log.Info().Str("model", model).Str("base_url", baseURL).Msg("llm: Groq client configured")
	return &Client{model: m}, nil
}

// NewClient wraps an existing model. Used by tests.
func NewClient(model llms.Model) *Client {
	return &Client{model: model}
}

// Complete sends the system prompt, the profile context block and the
// full message history, and returns the assistant text.
func (c *Client) Complete(ctx context.Context, profile entity.UserProfile, history []entity.Message) (string, error) {
	msgs := make([]llms.MessageContent, 0, len(history)+1)
	msgs = append(msgs, llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt+ContextBlock(profile)))

	for _, m := range history {
		role := schema.ChatMessageTypeHuman
		if m.Role == entity.RoleAssistant {
			role = schema.ChatMessageTypeAI
		}
		msgs = append(msgs, llms.TextParts(role, m.Content))
	}

	resp, err := c.model.GenerateContent(ctx, msgs,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(1024),
		llms.WithTopP(0.9),
	)
	if err != nil {
		middleware.RecordIntegrationError("groq")
		log.Error().Err(err).Msg("llm: chat completion failed")
		return "", fmt.Errorf("failed to generate a response: %w", err)
	}
	if len(resp.Choices) == 0 {
		middleware.RecordIntegrationError("groq")
		return "", errors.New("failed to generate a response: no choices returned")
	}

	return resp.Choices[0].Content, nil
}
