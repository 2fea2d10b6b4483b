// Package neo scores the 60-item NEO-FFI inventory. Each item is tagged
// with one of the Big Five dimensions and a reverse-scoring flag; raw sums
// are scaled to 0-100 and every pairwise dimension combination is matched
// against a fixed quadrant of behavioral archetypes, yielding the complete
// ten-entry personality-style report on every call.
package neo

import (
	"math"
	"strconv"

	"github.com/mind-engage/assessment-engine/internal/scoring"
)

func init() { scoring.Register(Scorer{}) }

// Scorer implements scoring.Scorer for the NEO-FFI instrument.
type Scorer struct{}

func (Scorer) Instrument() string { return "neo" }

func (Scorer) Score(raw scoring.ResponseSet) (any, error) { return Calculate(raw) }

const (
	likertMin = 0
	likertMax = 4

	// Unanswered items take the scale midpoint rather than failing
	// validation; partial completions still produce a usable profile.
	defaultResponse = 2

	rawMax = 48
)

// ScoreValue pairs a score with its maximum for direct display.
type ScoreValue struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// Dimension is one Big Five trait's normalized view.
type Dimension struct {
	Name               string        `json:"name"`
	RawScore           ScoreValue    `json:"raw_score"`
	ScaledScore        ScoreValue    `json:"scaled_score"`
	Level              scoring.Level `json:"level"`
	StrengthPercentage int           `json:"strength_percentage"`
	StrengthLevel      scoring.Level `json:"strength_level"`
}

// MatchingType is the archetype a style's quadrant resolves to.
type MatchingType struct {
	QuadrantCode string `json:"quadrant_code"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

// Style is one of the ten pairwise personality styles.
type Style struct {
	Name         string         `json:"name"`
	MatchingType MatchingType   `json:"matching_type"`
	FactorScores map[string]int `json:"factor_scores"`
}

// Result is the NEO payload stored for the attempt.
type Result struct {
	Dimensions map[string]Dimension `json:"dimensions"`
	Styles     map[string]Style     `json:"personality_styles"`
}

// Calculate sums each dimension per the 60-row item table (reverse-keyed
// items contribute 4−response), scales the sums, and derives the ten
// personality styles from the scaled scores' high/low quadrants.
func Calculate(raw scoring.ResponseSet) (*Result, error) {
	rawScores := map[string]int{}
	for q := 1; q <= len(items); q++ {
		it := items[q-1]
		v := defaultResponse
		if r, ok := raw[strconv.Itoa(q)]; ok {
			parsed, err := scoring.LikertInt(r.Value, likertMin, likertMax)
			if err != nil {
				return nil, scoring.Invalidf("question %d: %v", q, err)
			}
			v = parsed
		}
		if it.Reversed {
			v = likertMax - v
		}
		rawScores[it.Dimension] += v
	}

	dims := make(map[string]Dimension, len(dimensionOrder))
	scaled := map[string]int{}
	for _, d := range dimensionOrder {
		rawScore := rawScores[d.ID]
		s := scoring.Scale100(rawScore, rawMax)
		scaled[d.ID] = s
		strength := int(math.Round(math.Abs(50-float64(s)) / 50 * 100))
		dims[d.ID] = Dimension{
			Name:               d.Name,
			RawScore:           ScoreValue{Value: rawScore, Max: rawMax},
			ScaledScore:        ScoreValue{Value: s, Max: 100},
			Level:              rawLevel(rawScore),
			StrengthPercentage: strength,
			StrengthLevel:      strengthLevel(strength),
		}
	}

	styles := make(map[string]Style, len(styleOrder))
	for _, st := range styleOrder {
		code := quadrantCode(st, scaled)
		styles[st.ID] = Style{
			Name:         st.Name,
			MatchingType: st.Quadrants[code],
			FactorScores: map[string]int{
				st.First:  scaled[st.First],
				st.Second: scaled[st.Second],
			},
		}
	}

	return &Result{Dimensions: dims, Styles: styles}, nil
}

func rawLevel(raw int) scoring.Level {
	switch {
	case raw <= 12:
		return scoring.LevelLow
	case raw <= 24:
		return scoring.LevelMedium
	default:
		return scoring.LevelHigh
	}
}

// strengthLevel buckets how far a scaled score sits from the 50 midpoint,
// expressed as a percentage of the half-range.
func strengthLevel(pct int) scoring.Level {
	switch {
	case pct <= 33:
		return scoring.LevelWeak
	case pct <= 66:
		return scoring.LevelMedium
	default:
		return scoring.LevelStrong
	}
}

// quadrantCode renders e.g. "N+E-": a dimension is "+" when its scaled
// score reaches the 50 midpoint.
func quadrantCode(st style, scaled map[string]int) string {
	code := letterOf[st.First]
	if scaled[st.First] >= 50 {
		code += "+"
	} else {
		code += "-"
	}
	code += letterOf[st.Second]
	if scaled[st.Second] >= 50 {
		code += "+"
	} else {
		code += "-"
	}
	return code
}
