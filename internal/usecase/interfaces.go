package usecase

import (
	"context"

	"github.com/ironlady/leadbot/internal/entity"
	"github.com/ironlady/leadbot/internal/infra/queue"
)

// ConversationRepository persists whole conversation documents. Save is an
// upsert of the entire record, so each request's read-modify-save is
// atomic from the store's perspective.
type ConversationRepository interface {
	Find(ctx context.Context, sessionID string) (*entity.Conversation, error)
	Save(ctx context.Context, c *entity.Conversation) error
	Delete(ctx context.Context, sessionID string) error
}

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByEmail(ctx context.Context, email string) (*entity.Lead, error)
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, status string, limit, page int) ([]entity.Lead, int, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*entity.LeadStats, error)
}

// ChatCompleter is the LLM collaborator: system prompt and profile context
// in, assistant text out. It is a blocking remote call; retry policy
// belongs to the implementation, not here.
type ChatCompleter interface {
	Complete(ctx context.Context, profile entity.UserProfile, history []entity.Message) (string, error)
}

type LeadEventProducer interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}
