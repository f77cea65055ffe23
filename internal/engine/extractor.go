// Package engine contains the profile extractor and the program
// recommender. Both are pure functions: no I/O, deterministic, total.
package engine

import (
	"regexp"
	"strings"
)

// Matches "8 years", "8+ years", "5Years". Only the first occurrence in a
// message is used.
var experiencePattern = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?`)

type challengeRule struct {
	tag      string
	keywords []string
}

// The keyword table. A tag is emitted when any of its keywords appears as
// a substring of the lower-cased message. Output order is table order.
var challengeRules = []challengeRule{
	{"gender bias", []string{"bias", "discrimination", "sexism"}},
	{"salary", []string{"salary", "pay", "compensation", "underpaid"}},
	{"promotion", []string{"promotion", "career growth", "advancement"}},
	{"confidence", []string{"confidence", "imposter", "self-doubt"}},
	{"work-life balance", []string{"work life", "balance", "burnout"}},
	{"leadership", []string{"leadership", "management", "team lead"}},
	{"politics", []string{"politics", "office politics", "workplace dynamics"}},
}

// ProfileDelta is the partial profile parsed out of a single message.
// Experience is empty when the message carries no years signal.
type ProfileDelta struct {
	Experience string
	Challenges []string
}

// Extract parses one user message into structured profile signals. It
// never fails; a message with no matches yields an empty delta.
func Extract(message string) ProfileDelta {
	var delta ProfileDelta

	if m := experiencePattern.FindStringSubmatch(message); m != nil {
		delta.Experience = m[1] + " years"
	}

	lower := strings.ToLower(message)
	for _, rule := range challengeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				delta.Challenges = append(delta.Challenges, rule.tag)
				break
			}
		}
	}

	return delta
}
