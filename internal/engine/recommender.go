package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ironlady/leadbot/internal/catalog"
	"github.com/ironlady/leadbot/internal/entity"
)

var firstInteger = regexp.MustCompile(`\d+`)

// bandRule is one guarded rule of the recommendation decision table.
// Rules are evaluated top to bottom; the first band whose upper bound
// covers the profile's experience wins. maxYears < 0 means unbounded.
type bandRule struct {
	maxYears int
	programs func(p entity.UserProfile) []string
}

var bands = []bandRule{
	{maxYears: 8, programs: func(entity.UserProfile) []string {
		return []string{catalog.ProgramMasterclass, catalog.ProgramLEP}
	}},
	{maxYears: 15, programs: func(entity.UserProfile) []string {
		return []string{catalog.ProgramLEP, catalog.ProgramMBW}
	}},
	{maxYears: -1, programs: seniorPrograms},
}

// Past 15 years everyone gets MBW as the base; the elite programs append
// on salary/crore and board signals, in that fixed order.
func seniorPrograms(p entity.UserProfile) []string {
	ids := []string{catalog.ProgramMBW}
	if hasChallenge(p, "salary") || goalContains(p, "crore") {
		ids = append(ids, catalog.ProgramOneCroreClub)
	}
	if hasChallenge(p, "board") || goalContains(p, "board") {
		ids = append(ids, catalog.ProgramBoardMembers)
	}
	return ids
}

// Recommend maps the accumulated profile to an ordered, never-empty list
// of programs. It is pure and idempotent: no memory of prior calls.
func Recommend(p entity.UserProfile) []catalog.Program {
	years := ExperienceYears(p.Experience)

	var ids []string
	for _, band := range bands {
		if band.maxYears < 0 || years <= band.maxYears {
			ids = band.programs(p)
			break
		}
	}

	out := make([]catalog.Program, 0, len(ids))
	for _, id := range ids {
		if prog, ok := catalog.Get(id); ok {
			out = append(out, prog)
		}
	}

	// Structurally unreachable, but the contract says never empty.
	if len(out) == 0 {
		if prog, ok := catalog.Get(catalog.ProgramMasterclass); ok {
			out = append(out, prog)
		}
	}
	return out
}

// ExperienceYears parses the first integer embedded in an experience
// descriptor like "7 years". Absent or unparseable input counts as 0.
func ExperienceYears(experience string) int {
	m := firstInteger.FindString(experience)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

func hasChallenge(p entity.UserProfile, tag string) bool {
	for _, c := range p.Challenges {
		if c == tag {
			return true
		}
	}
	return false
}

func goalContains(p entity.UserProfile, substr string) bool {
	for _, g := range p.CareerGoals {
		if strings.Contains(strings.ToLower(g), substr) {
			return true
		}
	}
	return false
}
