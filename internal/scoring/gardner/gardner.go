// Package gardner scores the 80-item Gardner multiple-intelligences
// questionnaire: eight dimensions of ten Likert items each. Gardner is the
// strictest instrument in the battery — every one of the 80 ids must be
// present and in range before any score is computed.
package gardner

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/mind-engage/assessment-engine/internal/scoring"
)

func init() { scoring.Register(Scorer{}) }

// Scorer implements scoring.Scorer for the Gardner instrument.
type Scorer struct{}

func (Scorer) Instrument() string { return "gardner" }

func (Scorer) Score(raw scoring.ResponseSet) (any, error) { return Calculate(raw) }

const (
	likertMin = 1
	likertMax = 5

	questionsPerDimension = 10
	dimensionMax          = questionsPerDimension * likertMax
)

// DimensionScore is one intelligence's normalized view.
type DimensionScore struct {
	DimensionID string        `json:"dimension_id"`
	Name        string        `json:"name"`
	RawScore    int           `json:"raw_score"`
	Percentage  float64       `json:"percentage"`
	Level       scoring.Level `json:"level"`
	Description string        `json:"description"`
}

// RankedDimension is a DimensionScore plus its tie-broken rank.
type RankedDimension struct {
	Rank int `json:"rank"`
	DimensionScore
}

// Result is the Gardner payload stored for the attempt.
type Result struct {
	Dimensions          map[string]DimensionScore `json:"dimensions"`
	Ranked              []RankedDimension         `json:"ranked_intelligences"`
	Strongest           []string                  `json:"strongest"`
	Weakest             []string                  `json:"weakest"`
	TotalScore          int                       `json:"total_score"`
	TotalLevel          scoring.Level             `json:"total_level"`
	TotalInterpretation string                    `json:"total_interpretation"`
}

// Calculate validates completeness of all 80 items, sums each dimension,
// and derives percentages, levels, rankings, and the overall interpretation.
func Calculate(raw scoring.ResponseSet) (*Result, error) {
	values := make(map[int]int, len(raw))
	var missing, invalid []string
	for _, d := range dimensions {
		for _, q := range d.Questions {
			id := strconv.Itoa(q)
			r, ok := raw[id]
			if !ok {
				missing = append(missing, id)
				continue
			}
			v, err := scoring.LikertInt(r.Value, likertMin, likertMax)
			if err != nil {
				invalid = append(invalid, fmt.Sprintf("%s (%v)", id, err))
				continue
			}
			values[q] = v
		}
	}
	if len(missing) > 0 || len(invalid) > 0 {
		return nil, &scoring.ValidationError{
			Reason:  "gardner requires all 80 questions answered with values 1-5",
			Missing: missing,
			Invalid: invalid,
		}
	}

	res := &Result{Dimensions: make(map[string]DimensionScore, len(dimensions))}
	for _, d := range dimensions {
		sum := 0
		for _, q := range d.Questions {
			sum += values[q]
		}
		ds := DimensionScore{
			DimensionID: d.ID,
			Name:        d.Name,
			RawScore:    sum,
			Percentage:  float64(sum) / float64(dimensionMax) * 100,
			Level:       dimensionLevel(sum),
			Description: d.Description,
		}
		res.Dimensions[d.ID] = ds
		res.TotalScore += sum
	}

	res.Ranked = rankDimensions(res.Dimensions)
	maxScore := res.Ranked[0].RawScore
	minScore := res.Ranked[len(res.Ranked)-1].RawScore
	for _, rd := range res.Ranked {
		if rd.RawScore == maxScore {
			res.Strongest = append(res.Strongest, rd.DimensionID)
		}
		if rd.RawScore == minScore {
			res.Weakest = append(res.Weakest, rd.DimensionID)
		}
	}

	res.TotalLevel = totalLevel(res.TotalScore)
	res.TotalInterpretation = totalInterpretations[res.TotalLevel]
	return res, nil
}

// dimensionLevel buckets the literal raw sum, not the percentage.
func dimensionLevel(raw int) scoring.Level {
	switch {
	case raw <= 20:
		return scoring.LevelWeak
	case raw <= 35:
		return scoring.LevelMedium
	default:
		return scoring.LevelStrong
	}
}

func totalLevel(total int) scoring.Level {
	switch {
	case total <= 160:
		return scoring.LevelWeak
	case total <= 240:
		return scoring.LevelMedium
	default:
		return scoring.LevelStrong
	}
}

// rankDimensions orders by raw score descending, dimension id alphabetical
// on equal scores.
func rankDimensions(scores map[string]DimensionScore) []RankedDimension {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool {
		if scores[ids[a]].RawScore != scores[ids[b]].RawScore {
			return scores[ids[a]].RawScore > scores[ids[b]].RawScore
		}
		return ids[a] < ids[b]
	})
	ranked := make([]RankedDimension, len(ids))
	for i, id := range ids {
		ranked[i] = RankedDimension{Rank: i + 1, DimensionScore: scores[id]}
	}
	return ranked
}
