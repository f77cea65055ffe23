package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ironlady/leadbot/internal/entity"
	"github.com/ironlady/leadbot/internal/infra/queue"
)

type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) Find(ctx context.Context, sessionID string) (*entity.Conversation, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Conversation), args.Error(1)
}

func (m *MockConversationRepository) Save(ctx context.Context, c *entity.Conversation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConversationRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, status string, limit, page int) ([]entity.Lead, int, error) {
	args := m.Called(ctx, status, limit, page)
	var leads []entity.Lead
	if args.Get(0) != nil {
		leads = args.Get(0).([]entity.Lead)
	}
	return leads, args.Int(1), args.Error(2)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) Stats(ctx context.Context) (*entity.LeadStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadStats), args.Error(1)
}

type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) Complete(ctx context.Context, profile entity.UserProfile, history []entity.Message) (string, error) {
	args := m.Called(ctx, profile, history)
	return args.String(0), args.Error(1)
}

type MockLeadEventProducer struct {
	mock.Mock
}

func (m *MockLeadEventProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
