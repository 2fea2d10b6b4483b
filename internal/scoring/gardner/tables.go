package gardner

import "github.com/mind-engage/assessment-engine/internal/scoring"

type dimension struct {
	ID          string
	Name        string
	Description string
	Questions   []int
}

// dimensions fixes the question-id list per intelligence. The questionnaire
// interleaves the eight dimensions in blocks of eight, ten rounds in total.
var dimensions = []dimension{
	{
		ID: "linguistic_verbal", Name: "Linguistic-Verbal",
		Description: "Sensitivity to spoken and written language: learns through words, argues and explains well, enjoys reading and writing.",
		Questions:   []int{1, 9, 17, 25, 33, 41, 49, 57, 65, 73},
	},
	{
		ID: "logical_mathematical", Name: "Logical-Mathematical",
		Description: "Capacity for abstract reasoning and number work: spots patterns, tests hypotheses, enjoys puzzles and structured problems.",
		Questions:   []int{2, 10, 18, 26, 34, 42, 50, 58, 66, 74},
	},
	{
		ID: "spatial_visual", Name: "Spatial-Visual",
		Description: "Thinks in images and space: reads maps and diagrams easily, visualizes objects from different angles, notices visual detail.",
		Questions:   []int{3, 11, 19, 27, 35, 43, 51, 59, 67, 75},
	},
	{
		ID: "bodily_kinesthetic", Name: "Bodily-Kinesthetic",
		Description: "Uses the body skillfully: learns by doing and moving, good coordination and timing, works well with hands and tools.",
		Questions:   []int{4, 12, 20, 28, 36, 44, 52, 60, 68, 76},
	},
	{
		ID: "interpersonal", Name: "Interpersonal",
		Description: "Reads other people accurately: senses moods and motives, cooperates and leads naturally, learns best with others.",
		Questions:   []int{5, 13, 21, 29, 37, 45, 53, 61, 69, 77},
	},
	{
		ID: "intrapersonal", Name: "Intrapersonal",
		Description: "Knows the self: aware of own feelings, strengths, and goals, reflective, comfortable working independently.",
		Questions:   []int{6, 14, 22, 30, 38, 46, 54, 62, 70, 78},
	},
	{
		ID: "musical", Name: "Musical",
		Description: "Sensitivity to rhythm, pitch, and tone: remembers melodies, keeps time naturally, learns and recalls through sound.",
		Questions:   []int{7, 15, 23, 31, 39, 47, 55, 63, 71, 79},
	},
	{
		ID: "naturalist", Name: "Naturalist",
		Description: "Attuned to the natural world: recognizes and classifies plants, animals, and phenomena, observes environmental patterns.",
		Questions:   []int{8, 16, 24, 32, 40, 48, 56, 64, 72, 80},
	},
}

var totalInterpretations = map[scoring.Level]string{
	scoring.LevelWeak:   "Overall multiple-intelligence profile is weak; most dimensions scored in the lower band.",
	scoring.LevelMedium: "Overall multiple-intelligence profile is medium; abilities are moderately developed across dimensions.",
	scoring.LevelStrong: "Overall multiple-intelligence profile is strong; most dimensions scored in the upper band.",
}
