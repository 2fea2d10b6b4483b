// Package disc scores the 24-item DISC forced-choice questionnaire. Each
// item picks one "most like me" and one "least like me" letter from
// {D, I, S, C}; the two tallies and their difference yield the adaptive,
// natural, and perceived profiles, and the perceived profile drives the
// final behavioral pattern.
package disc

import (
	"sort"

	"github.com/mind-engage/assessment-engine/internal/scoring"
)

func init() { scoring.Register(Scorer{}) }

// Scorer implements scoring.Scorer for the DISC instrument.
type Scorer struct{}

func (Scorer) Instrument() string { return "disc" }

func (Scorer) Score(raw scoring.ResponseSet) (any, error) { return Calculate(raw) }

const requiredQuestions = 24

// A gap of at most this much between the top two letters makes the pattern
// a two-letter combination instead of a single letter.
const combinationGap = 2

// stressThreshold splits low from high stress on the summed absolute
// difference between the adaptive and natural profiles.
const stressThreshold = 10

// Pattern is a behavioral pattern drawn from the fixed lookup table.
type Pattern struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Profile is one of the three computed score sets plus its own pattern.
type Profile struct {
	Scores  map[string]int `json:"scores"`
	Pattern Pattern        `json:"pattern"`
}

// StressAnalysis compares instinctive (natural) behavior against adapted
// (professional) behavior.
type StressAnalysis struct {
	Score          int           `json:"score"`
	Level          scoring.Level `json:"level"`
	Interpretation string        `json:"interpretation"`
}

// Result is the DISC payload stored for the attempt.
type Result struct {
	Adaptive     Profile        `json:"adaptive_profile"`
	Natural      Profile        `json:"natural_profile"`
	Perceived    Profile        `json:"perceived_profile"`
	FinalPattern Pattern        `json:"final_behavioral_pattern"`
	Stress       StressAnalysis `json:"stress_analysis"`
}

// Calculate validates the full 24-item set and derives the three profiles,
// the final behavioral pattern, and the stress analysis. Any deviation from
// the expected shape is a validation error; DISC never degrades.
func Calculate(raw scoring.ResponseSet) (*Result, error) {
	if len(raw) != requiredQuestions {
		return nil, scoring.Invalidf("disc requires exactly %d responses, got %d", requiredQuestions, len(raw))
	}

	adaptive := map[string]int{"D": 0, "I": 0, "S": 0, "C": 0}
	natural := map[string]int{"D": 0, "I": 0, "S": 0, "C": 0}
	for key, r := range raw {
		most, least := r.MostLikeMe, r.LeastLikeMe
		if _, ok := adaptive[most]; !ok {
			return nil, scoring.Invalidf("question %s: most_like_me must be one of D, I, S, C, got %q", key, most)
		}
		if _, ok := natural[least]; !ok {
			return nil, scoring.Invalidf("question %s: least_like_me must be one of D, I, S, C, got %q", key, least)
		}
		if most == least {
			return nil, scoring.Invalidf("question %s: most_like_me and least_like_me must differ", key)
		}
		adaptive[most]++
		natural[least]++
	}

	perceived := map[string]int{}
	stressScore := 0
	for _, l := range letters {
		d := adaptive[l] - natural[l]
		perceived[l] = d
		if d < 0 {
			stressScore -= d
		} else {
			stressScore += d
		}
	}

	stress := StressAnalysis{Score: stressScore}
	if stressScore > stressThreshold {
		stress.Level = scoring.LevelHigh
		stress.Interpretation = "Instinctive behavior diverges strongly from adapted professional behavior; sustaining the adapted style is likely to be tiring and a source of stress."
	} else {
		stress.Level = scoring.LevelLow
		stress.Interpretation = "Instinctive and adapted behavior are closely aligned; the current environment demands little masking."
	}

	perceivedPattern := derivePattern(perceived)
	return &Result{
		Adaptive:     Profile{Scores: adaptive, Pattern: derivePattern(adaptive)},
		Natural:      Profile{Scores: natural, Pattern: derivePattern(natural)},
		Perceived:    Profile{Scores: perceived, Pattern: perceivedPattern},
		FinalPattern: perceivedPattern,
		Stress:       stress,
	}, nil
}

// derivePattern orders the letters by score (alphabetical on equal scores)
// and returns the two-letter combination when the runner-up is within the
// combination gap, otherwise the single top letter.
func derivePattern(scores map[string]int) Pattern {
	ordered := make([]string, len(letters))
	copy(ordered, letters[:])
	sort.SliceStable(ordered, func(a, b int) bool {
		if scores[ordered[a]] != scores[ordered[b]] {
			return scores[ordered[a]] > scores[ordered[b]]
		}
		return ordered[a] < ordered[b]
	})

	id := ordered[0]
	if scores[ordered[0]]-scores[ordered[1]] <= combinationGap {
		id = ordered[0] + ordered[1]
	}
	return patterns[id]
}

var letters = [...]string{"C", "D", "I", "S"}
