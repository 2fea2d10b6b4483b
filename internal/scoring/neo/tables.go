package neo

const (
	dimN = "neuroticism"
	dimE = "extraversion"
	dimO = "openness"
	dimA = "agreeableness"
	dimC = "conscientiousness"
)

type item struct {
	Dimension string
	Reversed  bool
}

// items is the fixed 60-row scoring key, indexed by question id − 1. The
// questionnaire cycles N, E, O, A, C; reverse-keyed items contribute
// 4−response instead of the response itself.
var items = [60]item{
	{dimN, true}, {dimE, false}, {dimO, true}, {dimA, false}, {dimC, false},
	{dimN, false}, {dimE, false}, {dimO, true}, {dimA, true}, {dimC, false},
	{dimN, false}, {dimE, true}, {dimO, false}, {dimA, true}, {dimC, true},
	{dimN, true}, {dimE, false}, {dimO, true}, {dimA, false}, {dimC, false},
	{dimN, false}, {dimE, false}, {dimO, true}, {dimA, true}, {dimC, false},
	{dimN, false}, {dimE, true}, {dimO, false}, {dimA, true}, {dimC, true},
	{dimN, true}, {dimE, false}, {dimO, true}, {dimA, false}, {dimC, false},
	{dimN, false}, {dimE, false}, {dimO, true}, {dimA, true}, {dimC, false},
	{dimN, false}, {dimE, true}, {dimO, false}, {dimA, true}, {dimC, true},
	{dimN, true}, {dimE, false}, {dimO, true}, {dimA, false}, {dimC, false},
	{dimN, false}, {dimE, false}, {dimO, false}, {dimA, true}, {dimC, true},
	{dimN, false}, {dimE, true}, {dimO, false}, {dimA, true}, {dimC, false},
}

type dimensionInfo struct {
	ID   string
	Name string
}

var dimensionOrder = []dimensionInfo{
	{dimN, "Neuroticism"},
	{dimE, "Extraversion"},
	{dimO, "Openness to Experience"},
	{dimA, "Agreeableness"},
	{dimC, "Conscientiousness"},
}

var letterOf = map[string]string{
	dimN: "N",
	dimE: "E",
	dimO: "O",
	dimA: "A",
	dimC: "C",
}

type style struct {
	ID        string
	Name      string
	First     string
	Second    string
	Quadrants map[string]MatchingType
}

// styleOrder derives the ten personality styles from all pairwise
// combinations of the five dimensions. Each quadrant key is "<F><±><S><±>"
// with "+" meaning the scaled score reached the 50 midpoint.
var styleOrder = []style{
	{
		ID: "well_being", Name: "Style of Well-Being", First: dimN, Second: dimE,
		Quadrants: map[string]MatchingType{
			"N+E+": {QuadrantCode: "N+E+", Name: "Overly Emotional", Description: "Feels both highs and lows intensely; moods swing quickly and visibly."},
			"N+E-": {QuadrantCode: "N+E-", Name: "Gloomy Pessimists", Description: "Prone to worry and low spirits with little positive emotion to offset them."},
			"N-E+": {QuadrantCode: "N-E+", Name: "Upbeat Optimists", Description: "Cheerful and resilient; recovers quickly and expects things to work out."},
			"N-E-": {QuadrantCode: "N-E-", Name: "Low-Keyed", Description: "Even-tempered and placid; rarely elated, rarely distressed."},
		},
	},
	{
		ID: "defense_style", Name: "Style of Defense", First: dimN, Second: dimO,
		Quadrants: map[string]MatchingType{
			"N+O+": {QuadrantCode: "N+O+", Name: "Hypersensitive", Description: "Alert to every threat, real or imagined; imagination amplifies distress."},
			"N+O-": {QuadrantCode: "N+O-", Name: "Maladaptive", Description: "Relies on rigid denial and avoidance when coping with distress."},
			"N-O+": {QuadrantCode: "N-O+", Name: "Adaptive", Description: "Faces conflict openly and uses imagination and humor to defuse it."},
			"N-O-": {QuadrantCode: "N-O-", Name: "Hyposensitive", Description: "Screens out unpleasant signals and is slow to register danger."},
		},
	},
	{
		ID: "anger_control", Name: "Style of Anger Control", First: dimN, Second: dimA,
		Quadrants: map[string]MatchingType{
			"N+A+": {QuadrantCode: "N+A+", Name: "Timid", Description: "Feels anger but swallows it; resentment turns inward as guilt."},
			"N+A-": {QuadrantCode: "N+A-", Name: "Temperamental", Description: "Quick to take offense and quick to show it; anger flares openly."},
			"N-A+": {QuadrantCode: "N-A+", Name: "Easy-Going", Description: "Slow to anger and quick to forgive; little provokes them."},
			"N-A-": {QuadrantCode: "N-A-", Name: "Cold-Blooded", Description: "Rarely angry, but expresses displeasure deliberately and without heat."},
		},
	},
	{
		ID: "impulse_control", Name: "Style of Impulse Control", First: dimN, Second: dimC,
		Quadrants: map[string]MatchingType{
			"N+C+": {QuadrantCode: "N+C+", Name: "Overcontrolled", Description: "Holds urges on a tight leash at the cost of constant inner tension."},
			"N+C-": {QuadrantCode: "N+C-", Name: "Undercontrolled", Description: "Strong urges and weak brakes; acts on impulse and regrets it."},
			"N-C+": {QuadrantCode: "N-C+", Name: "Directed", Description: "Calm and purposeful; self-discipline comes without strain."},
			"N-C-": {QuadrantCode: "N-C-", Name: "Relaxed", Description: "Unbothered and unhurried; lets matters take their course."},
		},
	},
	{
		ID: "interests", Name: "Style of Interests", First: dimE, Second: dimO,
		Quadrants: map[string]MatchingType{
			"E+O+": {QuadrantCode: "E+O+", Name: "Creative Interactors", Description: "Seeks novelty in company; enjoys new people, places, and ideas together."},
			"E+O-": {QuadrantCode: "E+O-", Name: "Mainstream Consumers", Description: "Sociable within the familiar; prefers popular, well-trodden pastimes."},
			"E-O+": {QuadrantCode: "E-O+", Name: "Introspectors", Description: "Explores ideas and art in solitude; rich inner life, small audience."},
			"E-O-": {QuadrantCode: "E-O-", Name: "Homebodies", Description: "Content with a narrow round of familiar, quiet activities."},
		},
	},
	{
		ID: "interactions", Name: "Style of Interactions", First: dimE, Second: dimA,
		Quadrants: map[string]MatchingType{
			"E+A+": {QuadrantCode: "E+A+", Name: "Welcomers", Description: "Warm and gregarious; draws people in and makes them comfortable."},
			"E+A-": {QuadrantCode: "E+A-", Name: "Leaders", Description: "Assertive and competitive; enjoys directing others and being in charge."},
			"E-A+": {QuadrantCode: "E-A+", Name: "Unassuming", Description: "Modest and accommodating; agreeable company in small doses."},
			"E-A-": {QuadrantCode: "E-A-", Name: "Competitors", Description: "Reserved and wary; keeps distance and guards their own interests."},
		},
	},
	{
		ID: "activity", Name: "Style of Activity", First: dimE, Second: dimC,
		Quadrants: map[string]MatchingType{
			"E+C+": {QuadrantCode: "E+C+", Name: "Go-Getters", Description: "Energetic and productive; sets a fast pace and keeps commitments."},
			"E+C-": {QuadrantCode: "E+C-", Name: "Fun-Lovers", Description: "High energy pointed at pleasure; spontaneity beats the to-do list."},
			"E-C+": {QuadrantCode: "E-C+", Name: "Plodders", Description: "Works steadily without fanfare; slow, methodical, and thorough."},
			"E-C-": {QuadrantCode: "E-C-", Name: "Lethargic", Description: "Low drive and loose structure; tasks wait until they must be done."},
		},
	},
	{
		ID: "attitudes", Name: "Style of Attitudes", First: dimO, Second: dimA,
		Quadrants: map[string]MatchingType{
			"O+A+": {QuadrantCode: "O+A+", Name: "Progressives", Description: "Open-minded and idealistic; believes people and systems can improve."},
			"O+A-": {QuadrantCode: "O+A-", Name: "Free-Thinkers", Description: "Questions every orthodoxy and follows arguments wherever they lead."},
			"O-A+": {QuadrantCode: "O-A+", Name: "Traditionalists", Description: "Upholds established values and expects others to honor them too."},
			"O-A-": {QuadrantCode: "O-A-", Name: "Resolute Believers", Description: "Certain of their views and unmoved by appeals to change them."},
		},
	},
	{
		ID: "learning", Name: "Style of Learning", First: dimO, Second: dimC,
		Quadrants: map[string]MatchingType{
			"O+C+": {QuadrantCode: "O+C+", Name: "Good Students", Description: "Curious and disciplined; absorbs new material and sees courses through."},
			"O+C-": {QuadrantCode: "O+C-", Name: "Dreamers", Description: "Full of ideas, short on follow-through; interest fades before mastery."},
			"O-C+": {QuadrantCode: "O-C+", Name: "By-the-Bookers", Description: "Learns best from structure and drill within well-defined material."},
			"O-C-": {QuadrantCode: "O-C-", Name: "Reluctant Scholars", Description: "Finds little appeal in study and avoids it when possible."},
		},
	},
	{
		ID: "character", Name: "Style of Character", First: dimA, Second: dimC,
		Quadrants: map[string]MatchingType{
			"A+C+": {QuadrantCode: "A+C+", Name: "Effective Altruists", Description: "Means well and follows through; dependable in service of others."},
			"A+C-": {QuadrantCode: "A+C-", Name: "Well-Intentioned", Description: "Kind-hearted but inconsistent; promises outrun delivery."},
			"A-C+": {QuadrantCode: "A-C+", Name: "Self-Promoters", Description: "Disciplined effort aimed squarely at their own advancement."},
			"A-C-": {QuadrantCode: "A-C-", Name: "Undistinguished", Description: "Neither duty nor others' needs weigh much in their choices."},
		},
	},
}
