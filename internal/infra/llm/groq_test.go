package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/ironlady/leadbot/internal/entity"
)

// stubModel satisfies llms.Model and records the messages it was given.
type stubModel struct {
	received []llms.MessageContent
	reply    string
	err      error
}

func (s *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	s.received = messages
	if s.err != nil {
		return nil, s.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: s.reply}},
	}, nil
}

func (s *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return s.reply, s.err
}

func TestCompleteBuildsSystemAndHistory(t *testing.T) {
	stub := &stubModel{reply: "Tell me more about your goals."}
	client := NewClient(stub)

	history := []entity.Message{
		{Role: entity.RoleUser, Content: "hi"},
		{Role: entity.RoleAssistant, Content: "hello!"},
		{Role: entity.RoleUser, Content: "I want a promotion"},
	}
	profile := entity.UserProfile{Experience: "8 years", Challenges: []string{"salary"}}

	reply, err := client.Complete(context.Background(), profile, history)

	assert.NoError(t, err)
	assert.Equal(t, "Tell me more about your goals.", reply)

	assert.Len(t, stub.received, 4)
	assert.Equal(t, schema.ChatMessageTypeSystem, stub.received[0].Role)
	assert.Equal(t, schema.ChatMessageTypeHuman, stub.received[1].Role)
	assert.Equal(t, schema.ChatMessageTypeAI, stub.received[2].Role)
	assert.Equal(t, schema.ChatMessageTypeHuman, stub.received[3].Role)

	system := stub.received[0].Parts[0].(llms.TextContent).Text
	assert.Contains(t, system, "Iron Lady")
	assert.Contains(t, system, "USER CONTEXT:")
	assert.Contains(t, system, "Experience: 8 years")
}

func TestCompletePropagatesModelError(t *testing.T) {
	stub := &stubModel{err: errors.New("rate limited")}
	client := NewClient(stub)

	reply, err := client.Complete(context.Background(), entity.UserProfile{}, nil)

	assert.Empty(t, reply)
	assert.ErrorContains(t, err, "failed to generate a response")
}

func TestContextBlock(t *testing.T) {
	block := ContextBlock(entity.UserProfile{
		Name:       "Asha",
		Experience: "12 years",
		Challenges: []string{"confidence", "politics"},
	})

	assert.Contains(t, block, "USER CONTEXT:")
	assert.Contains(t, block, "Name: Asha")
	assert.Contains(t, block, "Challenges: confidence, politics")
}

func TestContextBlockEmptyProfile(t *testing.T) {
	assert.Empty(t, ContextBlock(entity.UserProfile{}))
}

func TestGreeting(t *testing.T) {
	assert.Contains(t, Greeting(), "Iron Lady")
	assert.Contains(t, Greeting(), "78,000+")
}
