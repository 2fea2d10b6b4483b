package holland

// Interpretation is the static descriptive block attached to every
// dimension regardless of rank.
type Interpretation struct {
	Name            string   `json:"name"`
	Letter          string   `json:"letter"`
	Characteristics []string `json:"characteristics"`
	Occupations     string   `json:"suitable_occupations"`
}

type dimension struct {
	ID             string
	Letter         string
	Interpretation Interpretation
}

// dimensions is ordered by self-assessment index: item N of a
// self_assessment section feeds dimensions[N-1].
var dimensions = []dimension{
	{
		ID: "realistic", Letter: "R",
		Interpretation: Interpretation{
			Name: "Realistic", Letter: "R",
			Characteristics: []string{"practical", "hands-on", "mechanically inclined", "prefers working with tools, machines, or the outdoors"},
			Occupations:     "Engineering trades, agriculture, construction, mechanics, driving and operating machinery, athletics.",
		},
	},
	{
		ID: "investigative", Letter: "I",
		Interpretation: Interpretation{
			Name: "Investigative", Letter: "I",
			Characteristics: []string{"analytical", "curious", "precise", "prefers observing and solving abstract problems"},
			Occupations:     "Research and laboratory science, medicine, mathematics, data analysis, software development.",
		},
	},
	{
		ID: "artistic", Letter: "A",
		Interpretation: Interpretation{
			Name: "Artistic", Letter: "A",
			Characteristics: []string{"imaginative", "expressive", "original", "prefers unstructured work with ideas and forms"},
			Occupations:     "Writing, music, visual and performing arts, design, architecture, media production.",
		},
	},
	{
		ID: "social", Letter: "S",
		Interpretation: Interpretation{
			Name: "Social", Letter: "S",
			Characteristics: []string{"helpful", "cooperative", "empathetic", "prefers informing, teaching, and caring for people"},
			Occupations:     "Teaching, counseling, nursing and allied health, social work, human resources.",
		},
	},
	{
		ID: "enterprising", Letter: "E",
		Interpretation: Interpretation{
			Name: "Enterprising", Letter: "E",
			Characteristics: []string{"persuasive", "energetic", "ambitious", "prefers leading people and pursuing economic goals"},
			Occupations:     "Sales and marketing, management, entrepreneurship, law, politics, public relations.",
		},
	},
	{
		ID: "conventional", Letter: "C",
		Interpretation: Interpretation{
			Name: "Conventional", Letter: "C",
			Characteristics: []string{"orderly", "careful", "detail-oriented", "prefers structured tasks and working with data"},
			Occupations:     "Accounting, banking, administration, records and logistics, quality control.",
		},
	},
}

var letterOf = func() map[string]string {
	m := make(map[string]string, len(dimensions))
	for _, d := range dimensions {
		m[d.ID] = d.Letter
	}
	return m
}()
