package pvq

type category struct {
	ID        string
	Name      string
	Questions []int
}

// categories is the fixed PVQ-40 key in the theoretical circular order.
// Category sizes are uneven (3-6 items) and sum to 40.
var categories = []category{
	{ID: "conformity", Name: "Conformity", Questions: []int{7, 16, 28, 36}},
	{ID: "tradition", Name: "Tradition", Questions: []int{9, 20, 25, 38}},
	{ID: "benevolence", Name: "Benevolence", Questions: []int{12, 18, 27, 33}},
	{ID: "universalism", Name: "Universalism", Questions: []int{3, 8, 19, 23, 29, 40}},
	{ID: "self_direction", Name: "Self-Direction", Questions: []int{1, 11, 22, 34}},
	{ID: "stimulation", Name: "Stimulation", Questions: []int{6, 15, 30}},
	{ID: "hedonism", Name: "Hedonism", Questions: []int{10, 26, 37}},
	{ID: "achievement", Name: "Achievement", Questions: []int{4, 13, 24, 32}},
	{ID: "power", Name: "Power", Questions: []int{2, 17, 39}},
	{ID: "security", Name: "Security", Questions: []int{5, 14, 21, 31, 35}},
}

var descriptions = map[string]string{
	"conformity":     "Restraint of actions and impulses likely to upset others or violate social expectations and norms.",
	"tradition":      "Respect for and commitment to the customs and ideas that one's culture or religion provides.",
	"benevolence":    "Preserving and enhancing the welfare of the people one is in frequent personal contact with.",
	"universalism":   "Understanding, appreciation, tolerance, and protection of the welfare of all people and of nature.",
	"self_direction": "Independent thought and action: choosing, creating, and exploring on one's own terms.",
	"stimulation":    "Excitement, novelty, and challenge in life; a preference for a varied, stimulating path.",
	"hedonism":       "Pleasure and sensuous gratification for oneself; enjoying life's comforts.",
	"achievement":    "Personal success through demonstrating competence according to social standards.",
	"power":          "Social status and prestige; control or dominance over people and resources.",
	"security":       "Safety, harmony, and stability of society, of relationships, and of self.",
}
