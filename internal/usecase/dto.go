package usecase

import (
	"github.com/ironlady/leadbot/internal/entity"
)

type InitSessionOutput struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type SendMessageInput struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`

	// Request metadata, recorded when the conversation materializes.
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}

type SendMessageOutput struct {
	Message      string            `json:"message"`
	Conversation ConversationBrief `json:"conversation"`
}

type ConversationBrief struct {
	TotalMessages int                `json:"totalMessages"`
	UserProfile   entity.UserProfile `json:"userProfile"`
}

// ProfileUpdate carries an explicit profile edit. Pointer and nil-slice
// fields distinguish "not provided" from "set to empty".
type ProfileUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Experience  *string  `json:"experience,omitempty"`
	CurrentRole *string  `json:"currentRole,omitempty"`
	CareerGoals []string `json:"careerGoals,omitempty"`
	Challenges  []string `json:"challenges,omitempty"`
}

type CreateLeadInput struct {
	SessionID          string                     `json:"sessionId"`
	Name               string                     `json:"name"`
	Email              string                     `json:"email"`
	Phone              string                     `json:"phone"`
	Experience         string                     `json:"experience"`
	CurrentRole        string                     `json:"currentRole"`
	CareerGoals        []string                   `json:"careerGoals"`
	Challenges         []string                   `json:"challenges"`
	InterestedPrograms []entity.InterestedProgram `json:"interestedPrograms"`
}

type CreateLeadOutput struct {
	LeadID string `json:"leadId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type UpdateLeadInput struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type LeadListOutput struct {
	Leads      []entity.Lead `json:"leads"`
	Pagination Pagination    `json:"pagination"`
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}
