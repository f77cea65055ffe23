package catalog

// Persona maps an experience band to the programs typically recommended
// for it. The table informs the assistant's context; the actual routing
// lives in the engine package.
type Persona struct {
	Experience          string
	Challenges          []string
	RecommendedPrograms []string
}

var Personas = map[string]Persona{
	"entry_level": {
		Experience:          "5-8 years",
		Challenges:          []string{"gender_bias", "confidence", "salary_low", "career_stagnation"},
		RecommendedPrograms: []string{ProgramMasterclass, ProgramLEP},
	},
	"mid_career": {
		Experience:          "8-15 years",
		Challenges:          []string{"first_management_role", "team_leadership", "work_life_balance", "politics"},
		RecommendedPrograms: []string{ProgramLEP, ProgramMBW},
	},
	"senior_level": {
		Experience:          "15+ years",
		Challenges:          []string{"c_suite_preparation", "executive_presence", "strategic_thinking", "board_ambitions"},
		RecommendedPrograms: []string{ProgramMBW, ProgramOneCroreClub, ProgramBoardMembers},
	},
	"entrepreneur": {
		Experience:          "varies",
		Challenges:          []string{"business_growth", "leadership", "scaling", "strategic_partnerships"},
		RecommendedPrograms: []string{ProgramMBW, ProgramOneCroreClub},
	},
}

type SuccessStory struct {
	Name        string `json:"name"`
	Program     string `json:"program"`
	Achievement string `json:"achievement"`
	Testimonial string `json:"testimonial"`
}

var successStories = []SuccessStory{
	{
		Name:        "Priya Sharma",
		Program:     ProgramMasterclass,
		Achievement: "40% salary increase within 6 months",
		Testimonial: "The masterclass gave me the confidence to negotiate fearlessly. I went from accepting whatever was offered to commanding my worth.",
	},
	{
		Name:        "Anita Desai",
		Program:     ProgramLEP,
		Achievement: "Promoted to Senior Manager",
		Testimonial: "LEP transformed how I lead my team. The Business War Tactics helped me navigate complex organizational politics.",
	},
	{
		Name:        "Meera Krishnan",
		Program:     ProgramMBW,
		Achievement: "Became VP of Operations",
		Testimonial: "MBW prepared me for C-suite thinking. Within a year, I was leading a 200-person department.",
	},
	{
		Name:        "Sunita Reddy",
		Program:     ProgramOneCroreClub,
		Achievement: "Crossed ₹1.5 crore annual package",
		Testimonial: "The 1CR Club network opened doors I didn't know existed. The mentorship was invaluable.",
	},
}

// RelevantStory picks the success story attached to a program, falling
// back to the first story when none matches.
func RelevantStory(programID string) SuccessStory {
	for _, s := range successStories {
		if s.Program == programID {
			return s
		}
	}
	return successStories[0]
}
