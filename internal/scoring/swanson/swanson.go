// Package swanson scores the 18-item Swanson (SNAP-IV) ADHD screening
// form: items 1-9 form the inattention subscale and 10-18 the
// hyperactivity/impulsivity subscale. Subscale averages are compared
// against the published parent-rating cutoffs to classify the profile.
package swanson

import (
	"math"
	"strconv"

	"github.com/mind-engage/assessment-engine/internal/scoring"
)

func init() { scoring.Register(Scorer{}) }

// Scorer implements scoring.Scorer for the Swanson instrument.
type Scorer struct{}

func (Scorer) Instrument() string { return "swanson" }

func (Scorer) Score(raw scoring.ResponseSet) (any, error) { return Calculate(raw) }

const (
	likertMin = 0
	likertMax = 3

	requiredQuestions = 18
)

// Subscale is one subscale's sum and two-decimal average.
type Subscale struct {
	Sum     int     `json:"sum"`
	Average float64 `json:"average"`
}

// SubscaleStatus reports a subscale against its cutoff.
type SubscaleStatus struct {
	Status string  `json:"status"`
	Cutoff float64 `json:"cutoff"`
}

// Category is the overall classification.
type Category struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Interpretation combines the classification with per-subscale statuses.
type Interpretation struct {
	Category       Category                  `json:"category"`
	SubscaleStatus map[string]SubscaleStatus `json:"subscale_status"`
}

// Result is the Swanson payload stored for the attempt.
type Result struct {
	Scores         map[string]Subscale `json:"scores"`
	Interpretation Interpretation      `json:"interpretation"`
}

// Calculate validates the complete 18-item set, sums the two subscales,
// and classifies the profile against the subscale cutoffs.
func Calculate(raw scoring.ResponseSet) (*Result, error) {
	if len(raw) != requiredQuestions {
		return nil, scoring.Invalidf("swanson requires exactly %d responses, got %d", requiredQuestions, len(raw))
	}

	sums := map[string]int{}
	for _, sub := range subscales {
		for _, q := range sub.Questions {
			r, ok := raw[strconv.Itoa(q)]
			if !ok {
				return nil, scoring.Invalidf("question %d missing", q)
			}
			v, err := scoring.LikertInt(r.Value, likertMin, likertMax)
			if err != nil {
				return nil, scoring.Invalidf("question %d: %v", q, err)
			}
			sums[sub.ID] += v
		}
	}

	scores := make(map[string]Subscale, len(subscales))
	status := make(map[string]SubscaleStatus, len(subscales))
	above := map[string]bool{}
	for _, sub := range subscales {
		avg := round2(float64(sums[sub.ID]) / float64(len(sub.Questions)))
		scores[sub.ID] = Subscale{Sum: sums[sub.ID], Average: avg}
		over := avg > sub.Cutoff
		above[sub.ID] = over
		st := "Below cutoff"
		if over {
			st = "Above cutoff"
		}
		status[sub.ID] = SubscaleStatus{Status: st, Cutoff: sub.Cutoff}
	}

	return &Result{
		Scores: scores,
		Interpretation: Interpretation{
			Category:       classify(above["inattention"], above["hyperactivity_impulsivity"]),
			SubscaleStatus: status,
		},
	}, nil
}

func classify(inattention, hyperactivity bool) Category {
	switch {
	case inattention && hyperactivity:
		return categories["combined"]
	case inattention:
		return categories["inattentive"]
	case hyperactivity:
		return categories["hyperactive"]
	default:
		return categories["none"]
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
