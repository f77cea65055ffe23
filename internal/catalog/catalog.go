// Package catalog holds the static program data: the five training
// programs, the persona table and the success stories. Everything here is
// defined at process start and never mutated.
package catalog

import "encoding/json"

// Program identifiers, used as lookup keys throughout the engine.
const (
	ProgramMasterclass  = "masterclass"
	ProgramLEP          = "lep"
	ProgramMBW          = "mbw"
	ProgramOneCroreClub = "oneCroreClub"
	ProgramBoardMembers = "boardMembers"
)

// Level is the program tier. Ordering matters: Entry < Intermediate <
// Advanced < Elite.
type Level int

const (
	LevelEntry Level = iota
	LevelIntermediate
	LevelAdvanced
	LevelElite
)

func (l Level) String() string {
	switch l {
	case LevelEntry:
		return "Entry Level"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	case LevelElite:
		return "Elite"
	}
	return "Unknown"
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

type Program struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Tagline        string   `json:"tagline"`
	PriceINR       *int     `json:"price"` // nil means "contact us for pricing"
	OriginalPrice  *int     `json:"originalPrice,omitempty"`
	Duration       string   `json:"duration"`
	Format         string   `json:"format"`
	Level          Level    `json:"level"`
	TargetAudience []string `json:"targetAudience"`
	Outcomes       []string `json:"outcomes"`
	Topics         []string `json:"topics"`
	Includes       []string `json:"includes"`
	BestFor        []string `json:"bestFor"`
}

// Get returns the program for an identifier. The second return is false
// for unknown ids; that is the catalog's only failure mode.
func Get(id string) (Program, bool) {
	p, ok := byID[id]
	return p, ok
}

// List returns all programs in declaration order. The slice is a copy, so
// callers cannot mutate the catalog.
func List() []Program {
	out := make([]Program, len(programs))
	copy(out, programs)
	return out
}

var byID = func() map[string]Program {
	m := make(map[string]Program, len(programs))
	for _, p := range programs {
		m[p.ID] = p
	}
	return m
}()

func intPtr(v int) *int { return &v }
