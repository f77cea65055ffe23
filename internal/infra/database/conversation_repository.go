package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ironlady/leadbot/internal/entity"
)

// ConversationRepository stores conversations as document-shaped rows:
// the transcript, profile and recommendations live in JSONB columns and
// every Save upserts the whole record, so a request's read-modify-save
// is atomic at the row level.
type ConversationRepository struct {
	DB *sql.DB
}

func NewConversationRepository(db *sql.DB) *ConversationRepository {
	return &ConversationRepository{DB: db}
}

func (r *ConversationRepository) Find(ctx context.Context, sessionID string) (*entity.Conversation, error) {
	query := `
		SELECT session_id, messages, user_profile, recommended_programs, lead_captured,
		       user_agent, ip_address, started_at, last_activity, total_messages,
		       created_at, updated_at
		FROM conversations
		WHERE session_id = $1
	`

	var (
		conv        entity.Conversation
		messages    []byte
		profile     []byte
		recommended []byte
	)

	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(
		&conv.SessionID,
		&messages,
		&profile,
		&recommended,
		&conv.LeadCaptured,
		&conv.Metadata.UserAgent,
		&conv.Metadata.IPAddress,
		&conv.Metadata.StartedAt,
		&conv.Metadata.LastActivity,
		&conv.Metadata.TotalMessages,
		&conv.CreatedAt,
		&conv.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrConversationNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("db: failed to load conversation")
		return nil, err
	}

	if err := json.Unmarshal(messages, &conv.Messages); err != nil {
		return nil, fmt.Errorf("corrupt messages document: %w", err)
	}
	if err := json.Unmarshal(profile, &conv.UserProfile); err != nil {
		return nil, fmt.Errorf("corrupt profile document: %w", err)
	}
	if len(recommended) > 0 {
		if err := json.Unmarshal(recommended, &conv.RecommendedPrograms); err != nil {
			return nil, fmt.Errorf("corrupt recommendations document: %w", err)
		}
	}

	return &conv, nil
}

func (r *ConversationRepository) Save(ctx context.Context, c *entity.Conversation) error {
	messages, err := json.Marshal(c.Messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}
	profile, err := json.Marshal(c.UserProfile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	recommended, err := json.Marshal(c.RecommendedPrograms)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	query := `
		INSERT INTO conversations (
			session_id, messages, user_profile, recommended_programs, lead_captured,
			user_agent, ip_address, started_at, last_activity, total_messages,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (session_id)
		DO UPDATE SET
			messages = EXCLUDED.messages,
			user_profile = EXCLUDED.user_profile,
			recommended_programs = EXCLUDED.recommended_programs,
			lead_captured = EXCLUDED.lead_captured,
			last_activity = EXCLUDED.last_activity,
			total_messages = EXCLUDED.total_messages,
			updated_at = EXCLUDED.updated_at
	`

	_, err = r.DB.ExecContext(ctx, query,
		c.SessionID,
		messages,
		profile,
		recommended,
		c.LeadCaptured,
		c.Metadata.UserAgent,
		c.Metadata.IPAddress,
		c.Metadata.StartedAt,
		c.Metadata.LastActivity,
		c.Metadata.TotalMessages,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		log.Error().Err(err).Str("session_id", c.SessionID).Msg("db: failed to save conversation")
	}
	return err
}

// Delete is idempotent: removing an absent session is not an error.
func (r *ConversationRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM conversations WHERE session_id = $1`, sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("db: failed to delete conversation")
	}
	return err
}
