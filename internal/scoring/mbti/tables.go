package mbti

// Axis ties a questionnaire axis to its question ids and the pole each
// option maps to. The question lists mirror the published questionnaire
// ordering; reordering the questionnaire requires updating them.
type Axis struct {
	ID        string
	OptionA   string // pole credited by an "a" response
	OptionB   string // pole credited by a "b" response
	Questions []int
}

var axes = []Axis{
	{
		ID: "EI", OptionA: "I", OptionB: "E",
		Questions: []int{1, 5, 9, 13, 17, 21, 25, 29, 33, 37, 41, 45, 49, 53, 57},
	},
	{
		ID: "SN", OptionA: "S", OptionB: "N",
		Questions: []int{2, 6, 10, 14, 18, 22, 26, 30, 34, 38, 42, 46, 50, 54, 58},
	},
	{
		ID: "TF", OptionA: "T", OptionB: "F",
		Questions: []int{3, 7, 11, 15, 19, 23, 27, 31, 35, 39, 43, 47, 51, 55, 59},
	},
	{
		ID: "JP", OptionA: "P", OptionB: "J",
		Questions: []int{4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60},
	},
}

var poleNames = map[string]string{
	"E": "Extraversion",
	"I": "Introversion",
	"S": "Sensing",
	"N": "Intuition",
	"T": "Thinking",
	"F": "Feeling",
	"J": "Judging",
	"P": "Perceiving",
}

var poleDescriptions = map[string]string{
	"E": "Draws energy from engaging with people and the outer world; thinks out loud and acts quickly.",
	"I": "Draws energy from reflection and a small inner circle; thinks before speaking and prefers depth to breadth.",
	"S": "Trusts concrete facts and direct experience; works step by step with the details at hand.",
	"N": "Trusts patterns and possibilities; reads between the lines and is drawn to the big picture.",
	"T": "Decides by impartial logic and consistent principles; weighs pros and cons over personal impact.",
	"F": "Decides by personal values and the effect on people; seeks harmony and appreciates others.",
	"J": "Prefers a planned, settled life; likes matters decided, scheduled, and closed.",
	"P": "Prefers a flexible, open-ended life; likes keeping options available and adapting as things unfold.",
}
