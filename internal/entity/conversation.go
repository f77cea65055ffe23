package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	// IMPORTANT: no usecase or infra imports here.
)

var ErrConversationNotFound = errors.New("conversation not found")

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// UserProfile accumulates signals extracted turn by turn. Challenges are
// appended, never deduplicated, so the same tag can appear more than once
// across a conversation.
type UserProfile struct {
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	CurrentRole string   `json:"currentRole,omitempty"`
	CareerGoals []string `json:"careerGoals,omitempty"`
	Challenges  []string `json:"challenges,omitempty"`
}

type Recommendation struct {
	ProgramID     string    `json:"programId"`
	ProgramName   string    `json:"programName"`
	RecommendedAt time.Time `json:"recommendedAt"`
}

type ConversationMetadata struct {
	UserAgent     string    `json:"userAgent,omitempty"`
	IPAddress     string    `json:"ipAddress,omitempty"`
	StartedAt     time.Time `json:"startedAt"`
	LastActivity  time.Time `json:"lastActivity"`
	TotalMessages int       `json:"totalMessages"`
}

// Conversation is a single visitor's chat lifetime, keyed by session ID.
// It is only persisted once the visitor has sent a message.
type Conversation struct {
	SessionID           string               `json:"sessionId"`
	Messages            []Message            `json:"messages"`
	UserProfile         UserProfile          `json:"userProfile"`
	RecommendedPrograms []Recommendation     `json:"recommendedPrograms,omitempty"`
	LeadCaptured        bool                 `json:"leadCaptured"`
	Metadata            ConversationMetadata `json:"metadata"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// NewSessionID builds an opaque token, unique enough for chat traffic:
// millisecond timestamp plus a random suffix.
func NewSessionID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix)
}

// Factory
func NewConversation(sessionID, userAgent, ipAddress string) *Conversation {
	now := time.Now()
	return &Conversation{
		SessionID: sessionID,
		Messages:  []Message{},
		Metadata: ConversationMetadata{
			UserAgent:    userAgent,
			IPAddress:    ipAddress,
			StartedAt:    now,
			LastActivity: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append adds an entry to the transcript and refreshes activity metadata.
func (c *Conversation) Append(role, content string) {
	now := time.Now()
	c.Messages = append(c.Messages, Message{Role: role, Content: content, Timestamp: now})
	c.Metadata.LastActivity = now
	c.Metadata.TotalMessages = len(c.Messages)
	c.UpdatedAt = now
}

// ApplyDelta merges an extraction result into the profile. Experience
// overwrites when present; challenges append without deduplication.
func (c *Conversation) ApplyDelta(experience string, challenges []string) {
	if experience != "" {
		c.UserProfile.Experience = experience
	}
	if len(challenges) > 0 {
		c.UserProfile.Challenges = append(c.UserProfile.Challenges, challenges...)
	}
}
