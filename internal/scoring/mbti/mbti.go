// Package mbti scores the 60-item forced-choice MBTI questionnaire. Each
// question offers two options mapped to opposite poles of one of the four
// axes (E/I, S/N, T/F, J/P); the preferred pole per axis is the one picked
// more often, and the four resolved poles concatenate into the type code.
package mbti

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mind-engage/assessment-engine/internal/scoring"
)

func init() { scoring.Register(Scorer{}) }

// Scorer implements scoring.Scorer for the MBTI instrument.
type Scorer struct{}

func (Scorer) Instrument() string { return "mbti" }

func (Scorer) Score(raw scoring.ResponseSet) (any, error) { return Calculate(raw) }

// Preference is one axis's resolved outcome. On a tie Preference holds both
// poles joined by "/" (option-a pole first) and Tied is set.
type Preference struct {
	Preference     string         `json:"preference"`
	Counts         map[string]int `json:"counts"`
	Tied           bool           `json:"tied"`
	Interpretation string         `json:"interpretation"`
}

// Result is the MBTI payload stored for the attempt.
type Result struct {
	Scores         map[string]int        `json:"scores"`
	Preferences    map[string]Preference `json:"preferences"`
	Type           string                `json:"mbti_type"`
	Interpretation string                `json:"type_interpretation"`
}

// Calculate tallies option picks per pole and derives the axis preferences
// and composite type. Unanswered questions are simply not counted; a
// response other than "a"/"b" is a validation error.
func Calculate(raw scoring.ResponseSet) (*Result, error) {
	scores := map[string]int{}
	for _, ax := range axes {
		scores[ax.OptionA] = 0
		scores[ax.OptionB] = 0
	}

	for _, ax := range axes {
		for _, q := range ax.Questions {
			r, ok := raw[strconv.Itoa(q)]
			if !ok {
				continue
			}
			letter, err := scoring.LetterValue(r.Value)
			if err != nil {
				return nil, scoring.Invalidf("question %d: %v", q, err)
			}
			switch letter {
			case "a":
				scores[ax.OptionA]++
			case "b":
				scores[ax.OptionB]++
			default:
				return nil, scoring.Invalidf("question %d: choice must be 'a' or 'b', got %q", q, letter)
			}
		}
	}

	prefs := make(map[string]Preference, len(axes))
	tokens := make([]string, 0, len(axes))
	tiedAxes := []string{}
	for _, ax := range axes {
		a, b := scores[ax.OptionA], scores[ax.OptionB]
		p := Preference{Counts: map[string]int{ax.OptionA: a, ax.OptionB: b}}
		switch {
		case a > b:
			p.Preference = ax.OptionA
			p.Interpretation = poleDescriptions[ax.OptionA]
		case b > a:
			p.Preference = ax.OptionB
			p.Interpretation = poleDescriptions[ax.OptionB]
		default:
			p.Preference = ax.OptionA + "/" + ax.OptionB
			p.Tied = true
			p.Interpretation = fmt.Sprintf("Balanced between %s and %s: %s Equally, %s",
				poleNames[ax.OptionA], poleNames[ax.OptionB],
				poleDescriptions[ax.OptionA], poleDescriptions[ax.OptionB])
			tiedAxes = append(tiedAxes, ax.ID)
		}
		prefs[ax.ID] = p
		tokens = append(tokens, p.Preference)
	}

	res := &Result{Scores: scores, Preferences: prefs}
	if len(tiedAxes) == 0 {
		res.Type = strings.Join(tokens, "")
		names := make([]string, len(axes))
		for i, ax := range axes {
			names[i] = poleNames[prefs[ax.ID].Preference]
		}
		res.Interpretation = fmt.Sprintf("%s: %s.", res.Type, strings.Join(names, ", "))
	} else {
		// Tied axes keep both poles, so the composite falls back to the
		// hyphen-joined token list instead of a clean four-letter code.
		res.Type = strings.Join(tokens, "-")
		res.Interpretation = fmt.Sprintf(
			"Combined personality type %s: no single preference emerged on the %s axis(es); both poles apply equally.",
			res.Type, strings.Join(tiedAxes, ", "))
	}
	return res, nil
}
