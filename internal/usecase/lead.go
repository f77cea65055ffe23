package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ironlady/leadbot/internal/entity"
	"github.com/ironlady/leadbot/internal/infra/queue"
)

type LeadService struct {
	Leads         LeadRepository
	Conversations ConversationRepository
	Producer      LeadEventProducer
}

func NewLeadService(leads LeadRepository, conversations ConversationRepository, producer LeadEventProducer) *LeadService {
	return &LeadService{
		Leads:         leads,
		Conversations: conversations,
		Producer:      producer,
	}
}

// Create converts a session's profile into a persisted lead. At most one
// lead may exist per email; duplicates are a conflict, never an
// overwrite.
func (s *LeadService) Create(ctx context.Context, input CreateLeadInput) (*CreateLeadOutput, error) {
	if validationErrors := ValidateCreateLeadInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: validationMessage(validationErrors),
		}
	}

	lead := entity.NewLead(input.Name, input.Email, input.Phone)
	lead.Experience = input.Experience
	lead.CurrentRole = input.CurrentRole
	if input.CareerGoals != nil {
		lead.CareerGoals = input.CareerGoals
	}
	if input.Challenges != nil {
		lead.Challenges = input.Challenges
	}
	if input.InterestedPrograms != nil {
		lead.InterestedPrograms = input.InterestedPrograms
	}
	lead.SessionID = input.SessionID

	existing, err := s.Leads.FindByEmail(ctx, lead.Email)
	if err != nil && !errors.Is(err, entity.ErrLeadNotFound) {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if existing != nil {
		return nil, &DomainError{Code: CodeConflict, Message: "A lead with this email already exists"}
	}

	// Back-fill the owning conversation if it still exists.
	if input.SessionID != "" {
		s.backfillConversation(ctx, input, lead)
	}

	if err := s.Leads.Create(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			// Lost the race with a concurrent submission.
			return nil, &DomainError{Code: CodeConflict, Message: "A lead with this email already exists"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist lead: " + err.Error()}
	}

	if s.Producer != nil {
		payload := queue.LeadCapturedPayload{
			LeadID:      lead.ID,
			Name:        lead.Name,
			Email:       lead.Email,
			Phone:       lead.Phone,
			Experience:  lead.Experience,
			CurrentRole: lead.CurrentRole,
			CareerGoals: lead.CareerGoals,
			Challenges:  lead.Challenges,
			SessionID:   lead.SessionID,
			CapturedAt:  lead.CreatedAt,
		}
		for _, p := range lead.InterestedPrograms {
			payload.InterestedPrograms = append(payload.InterestedPrograms, p.ProgramName)
		}
		if err := s.Producer.PublishLeadCaptured(ctx, payload); err != nil {
			// The lead is saved; a missed alert is not worth failing the request.
			log.Error().Err(err).Str("lead_id", lead.ID).Msg("failed to publish lead-captured event")
		}
	}

	return &CreateLeadOutput{LeadID: lead.ID, Name: lead.Name, Email: lead.Email}, nil
}

func (s *LeadService) backfillConversation(ctx context.Context, input CreateLeadInput, lead *entity.Lead) {
	conv, err := s.Conversations.Find(ctx, input.SessionID)
	if err != nil {
		return
	}

	conv.LeadCaptured = true
	conv.UserProfile.Name = lead.Name
	conv.UserProfile.Email = lead.Email
	conv.UserProfile.Phone = lead.Phone
	if input.Experience != "" {
		conv.UserProfile.Experience = input.Experience
	}
	if input.CurrentRole != "" {
		conv.UserProfile.CurrentRole = input.CurrentRole
	}
	if input.CareerGoals != nil {
		conv.UserProfile.CareerGoals = input.CareerGoals
	}
	if input.Challenges != nil {
		conv.UserProfile.Challenges = input.Challenges
	}
	conv.UpdatedAt = time.Now()

	if err := s.Conversations.Save(ctx, conv); err != nil {
		log.Error().Err(err).Str("session_id", input.SessionID).Msg("failed to back-fill conversation on lead capture")
	}
}

func (s *LeadService) List(ctx context.Context, status string, limit, page int) (*LeadListOutput, error) {
	if status != "" && !entity.IsValidLeadStatus(status) {
		return nil, &DomainError{Code: CodeValidation, Message: "invalid status filter"}
	}
	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}

	leads, total, err := s.Leads.List(ctx, status, limit, page)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	pages := total / limit
	if total%limit > 0 {
		pages++
	}
	return &LeadListOutput{
		Leads: leads,
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	}, nil
}

func (s *LeadService) Get(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := s.Leads.FindByID(ctx, id)
	if errors.Is(err, entity.ErrLeadNotFound) {
		return nil, &DomainError{Code: CodeNotFound, Message: "Lead not found"}
	}
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return lead, nil
}

func (s *LeadService) Update(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if input.Status != "" && !entity.IsValidLeadStatus(input.Status) {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "Invalid status. Must be one of: new, contacted, enrolled, not_interested",
		}
	}

	lead, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		lead.Status = input.Status
	}
	if input.Notes != "" {
		lead.Notes = input.Notes
	}
	lead.UpdatedAt = time.Now()

	if err := s.Leads.Update(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return lead, nil
}

func (s *LeadService) Delete(ctx context.Context, id string) error {
	err := s.Leads.Delete(ctx, id)
	if errors.Is(err, entity.ErrLeadNotFound) {
		return &DomainError{Code: CodeNotFound, Message: "Lead not found"}
	}
	if err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return nil
}

func (s *LeadService) Stats(ctx context.Context) (*entity.LeadStats, error) {
	stats, err := s.Leads.Stats(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return stats, nil
}
