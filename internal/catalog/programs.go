package catalog

// The five Iron Lady programs, in the order they are presented to
// visitors.
var programs = []Program{
	{
		ID:            ProgramMasterclass,
		Name:          "Iron Lady Masterclass",
		Tagline:       "2-Day Transformational Workshop",
		PriceINR:      intPtr(99),
		OriginalPrice: intPtr(499),
		Duration:      "2 Days",
		Format:        "Live Virtual",
		Level:         LevelEntry,
		TargetAudience: []string{
			"Women professionals with 5+ years experience",
			"First-time attendees to Iron Lady programs",
			"Those seeking introduction to Business War Tactics",
			"Women facing gender bias or career stagnation",
		},
		Outcomes: []string{
			"Learn Business War Tactics methodology",
			"Set your BHAG (Big Hairy Audacious Goal)",
			"Master powerful negotiation techniques",
			"Access to exclusive WhatsApp community",
			"Connect with 78,000+ Iron Lady alumni",
		},
		Topics: []string{
			"BHAG Goal Setting Framework",
			"Powerful Requests & Negotiation",
			"Business War Tactics Introduction",
			"Gender Bias Combat Strategies",
			"Career Advancement Blueprint",
		},
		Includes: []string{
			"2-day live interactive sessions",
			"WhatsApp community access",
			"Recorded sessions",
			"Certificate of completion",
			"Money-back guarantee (24 hours)",
		},
		BestFor: []string{"career_exploration", "salary_negotiation", "confidence_building", "networking"},
	},
	{
		ID:       ProgramLEP,
		Name:     "Leadership Essentials Program (LEP)",
		Tagline:  "For First-Time Managers & Supervisors",
		Duration: "3-6 Months",
		Format:   "Blended (Online + Classroom)",
		Level:    LevelIntermediate,
		TargetAudience: []string{
			"First-time managers and supervisors",
			"Team leads transitioning to management",
			"Women promoted to leadership roles",
			"Those managing teams for the first time",
		},
		Outcomes: []string{
			"Master essential leadership skills",
			"Learn to manage and motivate teams",
			"Develop strategic thinking abilities",
			"Build confidence in leadership role",
			"Navigate organizational politics effectively",
		},
		Topics: []string{
			"Transition from Individual Contributor to Leader",
			"Team Management & Motivation",
			"Delegation & Performance Management",
			"Strategic Communication",
			"Conflict Resolution",
			"Building High-Performance Teams",
		},
		Includes: []string{
			"Comprehensive curriculum",
			"Individual mentoring sessions",
			"App-based learning modules",
			"Peer networking opportunities",
			"Leadership toolkit and resources",
		},
		BestFor: []string{"new_manager", "team_leadership", "management_skills", "first_promotion"},
	},
	{
		ID:       ProgramMBW,
		Name:     "Master of Business Warfare (MBW)",
		Tagline:  "Advanced Strategic Leadership Program",
		Duration: "6-12 Months",
		Format:   "Blended (Online + Classroom + Mentoring)",
		Level:    LevelAdvanced,
		TargetAudience: []string{
			"Senior managers and directors",
			"Women targeting C-suite positions",
			"Experienced leaders seeking strategic edge",
			"Those managing multiple teams/departments",
		},
		Outcomes: []string{
			"Master advanced Business War Tactics",
			"Develop C-suite level strategic thinking",
			"Navigate complex organizational dynamics",
			"Build executive presence and influence",
			"Prepare for board-level leadership",
		},
		Topics: []string{
			"Advanced Strategic Planning",
			"Organizational Politics Mastery",
			"Executive Communication",
			"Change Management",
			"Building Strategic Alliances",
			"Crisis Management",
			"Board-Level Thinking",
		},
		Includes: []string{
			"Intensive training modules",
			"One-on-one executive mentoring",
			"Peer advisory groups",
			"Exclusive masterclasses with CEOs",
			"Lifetime alumni network access",
			"Career advancement support",
		},
		BestFor: []string{"senior_leadership", "c_suite_preparation", "strategic_thinking", "executive_presence"},
	},
	{
		ID:       ProgramOneCroreClub,
		Name:     "1 Crore Club",
		Tagline:  "Elite Program for High Earners",
		Duration: "Ongoing Membership",
		Format:   "Exclusive Events + Mentoring + Network",
		Level:    LevelElite,
		TargetAudience: []string{
			"Women earning or targeting ₹1 crore+ annually",
			"Senior executives and entrepreneurs",
			"C-suite leaders",
			"High-achieving professionals",
		},
		Outcomes: []string{
			"Join elite network of top earners",
			"Access exclusive business opportunities",
			"Premium mentoring from industry leaders",
			"Strategic career and wealth planning",
			"Unparalleled networking opportunities",
		},
		Topics: []string{
			"Wealth Creation Strategies",
			"Executive Career Acceleration",
			"Board Memberships & Advisory Roles",
			"Investment & Financial Planning",
			"Personal Branding at Executive Level",
			"Global Leadership Opportunities",
		},
		Includes: []string{
			"Exclusive 1CR Club events",
			"Premium networking opportunities",
			"One-on-one sessions with CEOs",
			"Luxury venue celebrations (Hyatt, etc.)",
			"Lifetime membership benefits",
			"Business partnership opportunities",
		},
		BestFor: []string{"high_earner", "c_suite", "entrepreneur", "wealth_creation"},
	},
	{
		ID:       ProgramBoardMembers,
		Name:     "100 Board Members Program",
		Tagline:  "Pathway to Board Leadership",
		Duration: "12 Months",
		Format:   "Blended (Intensive Training + Placements)",
		Level:    LevelElite,
		TargetAudience: []string{
			"Senior executives targeting board positions",
			"C-suite leaders seeking board memberships",
			"Experienced professionals ready for governance roles",
			"Women wanting to join corporate boards",
		},
		Outcomes: []string{
			"Prepare for board-level governance",
			"Understand fiduciary responsibilities",
			"Build board-ready profile",
			"Access board placement opportunities",
			"Join elite board members network",
		},
		Topics: []string{
			"Corporate Governance",
			"Board Dynamics & Effectiveness",
			"Financial Oversight & Risk Management",
			"Legal & Ethical Responsibilities",
			"Strategic Board Contribution",
			"Building Board Profile",
			"Board Interview Preparation",
		},
		Includes: []string{
			"Comprehensive board training",
			"Profile building support",
			"Board placement assistance",
			"Mentoring from existing board members",
			"Exclusive board networking events",
			"Ongoing board member support",
		},
		BestFor: []string{"board_member", "corporate_governance", "c_suite", "strategic_leadership"},
	},
}
