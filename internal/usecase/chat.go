package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ironlady/leadbot/internal/catalog"
	"github.com/ironlady/leadbot/internal/engine"
	"github.com/ironlady/leadbot/internal/entity"
)

// Shown to the visitor when the LLM collaborator fails. The reply is
// appended to the transcript like any other assistant turn, so a failed
// generation never corrupts the conversation.
const fallbackReply = "I'm sorry, I couldn't generate a response right now. Please try sending your message again."

type ChatService struct {
	Conversations ConversationRepository
	Completer     ChatCompleter
	Greeting      string
}

func NewChatService(conversations ConversationRepository, completer ChatCompleter, greeting string) *ChatService {
	return &ChatService{
		Conversations: conversations,
		Completer:     completer,
		Greeting:      greeting,
	}
}

// InitSession hands out a session ID and the canned greeting. Nothing is
// persisted: a visitor who never types leaves no record behind.
func (s *ChatService) InitSession() InitSessionOutput {
	return InitSessionOutput{
		SessionID: entity.NewSessionID(),
		Message:   s.Greeting,
	}
}

// SendMessage is the per-turn unit of work: load or materialize the
// conversation, append the user entry, merge extracted profile signals,
// ask the LLM for a reply, append it and save the whole document.
func (s *ChatService) SendMessage(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	if strings.TrimSpace(input.SessionID) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "Session ID and message are required",
		}
	}

	conv, err := s.Conversations.Find(ctx, input.SessionID)
	switch {
	case errors.Is(err, entity.ErrConversationNotFound):
		// First message from this session: materialize the record now.
		conv = entity.NewConversation(input.SessionID, input.UserAgent, input.IPAddress)
	case err != nil:
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load conversation: " + err.Error()}
	}

	conv.Append(entity.RoleUser, input.Message)

	delta := engine.Extract(input.Message)
	conv.ApplyDelta(delta.Experience, delta.Challenges)

	reply, err := s.Completer.Complete(ctx, conv.UserProfile, conv.Messages)
	if err != nil {
		reply = fallbackReply
	}
	conv.Append(entity.RoleAssistant, reply)

	if err := s.Conversations.Save(ctx, conv); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist conversation: " + err.Error()}
	}

	return &SendMessageOutput{
		Message: reply,
		Conversation: ConversationBrief{
			TotalMessages: len(conv.Messages),
			UserProfile:   conv.UserProfile,
		},
	}, nil
}

func (s *ChatService) GetConversation(ctx context.Context, sessionID string) (*entity.Conversation, error) {
	conv, err := s.Conversations.Find(ctx, sessionID)
	if errors.Is(err, entity.ErrConversationNotFound) {
		return nil, &DomainError{Code: CodeNotFound, Message: "Conversation not found"}
	}
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return conv, nil
}

// UpdateProfile applies an explicit profile edit. Provided fields
// overwrite; omitted fields are untouched.
func (s *ChatService) UpdateProfile(ctx context.Context, sessionID string, update ProfileUpdate) (*entity.UserProfile, error) {
	conv, err := s.GetConversation(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		conv.UserProfile.Name = *update.Name
	}
	if update.Email != nil {
		conv.UserProfile.Email = *update.Email
	}
	if update.Phone != nil {
		conv.UserProfile.Phone = *update.Phone
	}
	if update.Experience != nil {
		conv.UserProfile.Experience = *update.Experience
	}
	if update.CurrentRole != nil {
		conv.UserProfile.CurrentRole = *update.CurrentRole
	}
	if update.CareerGoals != nil {
		conv.UserProfile.CareerGoals = update.CareerGoals
	}
	if update.Challenges != nil {
		conv.UserProfile.Challenges = update.Challenges
	}
	conv.UpdatedAt = time.Now()

	if err := s.Conversations.Save(ctx, conv); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist profile: " + err.Error()}
	}
	return &conv.UserProfile, nil
}

// Recommendations runs the recommender over the stored profile, records
// what was surfaced and returns the program cards.
func (s *ChatService) Recommendations(ctx context.Context, sessionID string) ([]catalog.Program, error) {
	conv, err := s.GetConversation(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	programs := engine.Recommend(conv.UserProfile)

	now := time.Now()
	records := make([]entity.Recommendation, 0, len(programs))
	for _, p := range programs {
		records = append(records, entity.Recommendation{
			ProgramID:     p.ID,
			ProgramName:   p.Name,
			RecommendedAt: now,
		})
	}
	conv.RecommendedPrograms = records
	conv.UpdatedAt = now

	if err := s.Conversations.Save(ctx, conv); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist recommendations: " + err.Error()}
	}
	return programs, nil
}

// EndSession deletes the conversation at tab close. The caller cannot act
// on failure, so this always succeeds; a missed delete just leaves an
// orphaned record for manual cleanup.
func (s *ChatService) EndSession(ctx context.Context, sessionID string) {
	_ = s.Conversations.Delete(ctx, sessionID)
}
