package disc

// patterns is the fixed behavioral-pattern lookup: the four single-letter
// profiles plus the twelve ordered two-letter combinations (dominant letter
// first).
var patterns = map[string]Pattern{
	"D": {
		ID: "D", Name: "Developer",
		Description: "Direct and decisive. Driven by results and control, comfortable with risk and confrontation, impatient with indecision.",
	},
	"I": {
		ID: "I", Name: "Promoter",
		Description: "Outgoing and persuasive. Energized by people and recognition, optimistic, quick to build enthusiasm around ideas.",
	},
	"S": {
		ID: "S", Name: "Specialist",
		Description: "Patient and steady. Values stability, loyalty, and predictable routines; a calming, dependable team presence.",
	},
	"C": {
		ID: "C", Name: "Objective Thinker",
		Description: "Precise and analytical. Works to high standards, relies on facts and procedure, cautious about untested approaches.",
	},
	"DC": {
		ID: "DC", Name: "Creative",
		Description: "Combines drive for results with exacting standards; pushes for ambitious outcomes but scrutinizes every detail along the way.",
	},
	"DI": {
		ID: "DI", Name: "Inspirational",
		Description: "Leads by momentum and persuasion; sets a demanding pace and pulls people along with confident, energetic communication.",
	},
	"DS": {
		ID: "DS", Name: "Achiever",
		Description: "Pursues goals with persistence rather than flash; self-reliant, steady under load, and measured in taking risks.",
	},
	"ID": {
		ID: "ID", Name: "Persuader",
		Description: "Sells ideas and wins people over, backed by enough assertiveness to close; thrives on variety and visible wins.",
	},
	"IS": {
		ID: "IS", Name: "Counselor",
		Description: "Warm and approachable; supports others, smooths conflict, and builds long, trusting relationships.",
	},
	"IC": {
		ID: "IC", Name: "Appraiser",
		Description: "Blends sociability with a critical eye; presents well-argued cases and seeks results through people and accuracy alike.",
	},
	"SD": {
		ID: "SD", Name: "Investigator",
		Description: "Calm, dogged, and objective; follows a problem to its root and holds a position once the evidence supports it.",
	},
	"SI": {
		ID: "SI", Name: "Advisor",
		Description: "Easygoing and considerate; prefers cooperation over competition and keeps groups comfortable and cohesive.",
	},
	"SC": {
		ID: "SC", Name: "Agent",
		Description: "Reliable and conscientious; serves others' needs carefully, avoids the spotlight, and delivers consistent quality.",
	},
	"CD": {
		ID: "CD", Name: "Designer",
		Description: "Exacting and independent; wants control over quality and method, and challenges work that falls short of spec.",
	},
	"CI": {
		ID: "CI", Name: "Assessor",
		Description: "Analytical yet expressive; evaluates people and plans sharply and communicates conclusions with polish.",
	},
	"CS": {
		ID: "CS", Name: "Perfectionist",
		Description: "Systematic and restrained; double-checks everything, values order and precedent, and is uneasy with improvisation.",
	},
}
