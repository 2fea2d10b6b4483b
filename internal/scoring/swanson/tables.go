package swanson

type subscale struct {
	ID        string
	Cutoff    float64
	Questions []int
}

// Cutoffs are the published SNAP-IV parent-rating thresholds on the
// subscale average.
var subscales = []subscale{
	{ID: "inattention", Cutoff: 1.78, Questions: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	{ID: "hyperactivity_impulsivity", Cutoff: 1.44, Questions: []int{10, 11, 12, 13, 14, 15, 16, 17, 18}},
}

var categories = map[string]Category{
	"combined": {
		ID:          "Combined",
		Description: "Both inattention and hyperactivity/impulsivity averages exceed their cutoffs; symptoms of both presentations are reported.",
	},
	"inattentive": {
		ID:          "Predominantly Inattentive",
		Description: "The inattention average exceeds its cutoff while hyperactivity/impulsivity remains below; difficulties center on focus and follow-through.",
	},
	"hyperactive": {
		ID:          "Predominantly Hyperactive-Impulsive",
		Description: "The hyperactivity/impulsivity average exceeds its cutoff while inattention remains below; difficulties center on restlessness and impulse control.",
	},
	"none": {
		ID:          "No Significant ADHD",
		Description: "Neither subscale average exceeds its cutoff; reported symptoms are within the typical range.",
	},
}
