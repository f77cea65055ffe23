package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"plain years", "I have 8 years of experience", "8 years"},
		{"plus suffix", "around 8+ years in tech", "8 years"},
		{"mixed case", "I bring 5 Years to the table", "5 years"},
		{"singular", "just 1 year so far", "1 years"},
		{"no space", "12years in sales", "12 years"},
		{"first match wins", "3 years here, 10 years overall", "3 years"},
		{"zero", "0 years", "0 years"},
		{"no match", "I work in marketing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := Extract(tt.message)
			assert.Equal(t, tt.expected, delta.Experience)
		})
	}
}

func TestExtractChallenges(t *testing.T) {
	delta := Extract("I feel underpaid and full of self-doubt")
	assert.Equal(t, []string{"salary", "confidence"}, delta.Challenges)
}

func TestExtractChallengesTableOrder(t *testing.T) {
	// Regardless of where keywords appear in the message, tags come out
	// in table order.
	delta := Extract("office politics plus pay issues plus discrimination")
	assert.Equal(t, []string{"gender bias", "salary", "politics"}, delta.Challenges)
}

func TestExtractCaseInsensitive(t *testing.T) {
	delta := Extract("BURNOUT is real and my SALARY is low")
	assert.Equal(t, []string{"salary", "work-life balance"}, delta.Challenges)
}

func TestExtractExperienceAndChallenge(t *testing.T) {
	delta := Extract("I have 8 years experience and feel underpaid")
	assert.Equal(t, "8 years", delta.Experience)
	assert.Equal(t, []string{"salary"}, delta.Challenges)
}

func TestExtractNothing(t *testing.T) {
	delta := Extract("Hello there!")
	assert.Empty(t, delta.Experience)
	assert.Empty(t, delta.Challenges)
}

func TestExtractTagEmittedOncePerMessage(t *testing.T) {
	delta := Extract("my pay is low, my salary is low, my compensation is low")
	assert.Equal(t, []string{"salary"}, delta.Challenges)
}
