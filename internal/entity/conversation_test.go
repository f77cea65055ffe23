package entity

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionIDFormat(t *testing.T) {
	id := NewSessionID()
	assert.Regexp(t, regexp.MustCompile(`^session_\d+_[0-9a-f]{8}$`), id)
	assert.NotEqual(t, id, NewSessionID())
}

func TestAppendUpdatesMetadata(t *testing.T) {
	conv := NewConversation("session_1_abc", "agent", "10.0.0.1")
	assert.Equal(t, 0, conv.Metadata.TotalMessages)

	conv.Append(RoleUser, "hello")
	conv.Append(RoleAssistant, "hi!")

	assert.Len(t, conv.Messages, 2)
	assert.Equal(t, 2, conv.Metadata.TotalMessages)
	assert.Equal(t, RoleUser, conv.Messages[0].Role)
	assert.False(t, conv.Messages[0].Timestamp.IsZero())
	assert.False(t, conv.Metadata.LastActivity.Before(conv.Metadata.StartedAt))
}

func TestApplyDeltaExperienceOverwrites(t *testing.T) {
	conv := NewConversation("session_2_def", "", "")

	conv.ApplyDelta("5 years", nil)
	assert.Equal(t, "5 years", conv.UserProfile.Experience)

	conv.ApplyDelta("8 years", nil)
	assert.Equal(t, "8 years", conv.UserProfile.Experience)

	// An empty delta leaves the last value alone.
	conv.ApplyDelta("", nil)
	assert.Equal(t, "8 years", conv.UserProfile.Experience)
}

func TestApplyDeltaChallengesAccumulate(t *testing.T) {
	conv := NewConversation("session_3_ghi", "", "")

	conv.ApplyDelta("", []string{"salary"})
	conv.ApplyDelta("", []string{"salary", "confidence"})

	assert.Equal(t, []string{"salary", "salary", "confidence"}, conv.UserProfile.Challenges)
}

func TestNewLeadNormalizes(t *testing.T) {
	lead := NewLead("  Asha Rao ", " Asha.Rao@Example.COM ", " 9876543210 ")

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Asha Rao", lead.Name)
	assert.Equal(t, "asha.rao@example.com", lead.Email)
	assert.Equal(t, "9876543210", lead.Phone)
	assert.Equal(t, LeadStatusNew, lead.Status)
	assert.Equal(t, "chatbot", lead.Source)
	assert.NotNil(t, lead.CareerGoals)
	assert.NotNil(t, lead.InterestedPrograms)
}

func TestIsValidLeadStatus(t *testing.T) {
	for _, s := range LeadStatuses {
		assert.True(t, IsValidLeadStatus(s), s)
	}
	assert.False(t, IsValidLeadStatus("archived"))
	assert.False(t, IsValidLeadStatus(""))
}
