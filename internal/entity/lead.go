package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrEmailAlreadyExists = errors.New("a lead with this email already exists")
)

const (
	LeadStatusNew           = "new"
	LeadStatusContacted     = "contacted"
	LeadStatusEnrolled      = "enrolled"
	LeadStatusNotInterested = "not_interested"
)

// LeadStatuses lists the valid values in the order they appear in the
// sales pipeline.
var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusEnrolled,
	LeadStatusNotInterested,
}

func IsValidLeadStatus(status string) bool {
	for _, s := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type InterestedProgram struct {
	ProgramID   string `json:"programId"`
	ProgramName string `json:"programName"`
}

// Lead is a captured contact record. Its lifetime is independent of the
// conversation that produced it: a lead may reference a session that was
// deleted at tab close.
type Lead struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	Phone              string              `json:"phone"`
	Experience         string              `json:"experience,omitempty"`
	CurrentRole        string              `json:"currentRole,omitempty"`
	CareerGoals        []string            `json:"careerGoals"`
	Challenges         []string            `json:"challenges"`
	InterestedPrograms []InterestedProgram `json:"interestedPrograms"`
	SessionID          string              `json:"sessionId,omitempty"`
	Status             string              `json:"status"`
	Source             string              `json:"source"`
	Notes              string              `json:"notes,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// Factory. Email is stored lower-cased; the unique index on leads is on
// lower(email).
func NewLead(name, email, phone string) *Lead {
	now := time.Now()
	return &Lead{
		ID:                 uuid.New().String(),
		Name:               strings.TrimSpace(name),
		Email:              strings.ToLower(strings.TrimSpace(email)),
		Phone:              strings.TrimSpace(phone),
		CareerGoals:        []string{},
		Challenges:         []string{},
		InterestedPrograms: []InterestedProgram{},
		Status:             LeadStatusNew,
		Source:             "chatbot",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// LeadStats is the reporting rollup served to the sales dashboard.
type LeadStats struct {
	Total         int `json:"total"`
	New           int `json:"new"`
	Contacted     int `json:"contacted"`
	Enrolled      int `json:"enrolled"`
	NotInterested int `json:"notInterested"`
	Last7Days     int `json:"last7Days"`
}
