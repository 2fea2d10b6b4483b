// Package pvq scores the 40-item Portrait Values Questionnaire. Category
// averages are centered on the grand mean of all 40 responses, which
// removes individual response-style bias (raters who score everything high
// or low), and the categories are ranked by that deviation.
package pvq

import (
	"sort"
	"strconv"

	"github.com/mind-engage/assessment-engine/internal/scoring"
)

func init() { scoring.Register(Scorer{}) }

// Scorer implements scoring.Scorer for the PVQ instrument.
type Scorer struct{}

func (Scorer) Instrument() string { return "pvq" }

func (Scorer) Score(raw scoring.ResponseSet) (any, error) { return Calculate(raw) }

const (
	likertMin      = 1
	likertMax      = 6
	totalQuestions = 40
)

// CategoryScore is one value category's aggregate.
type CategoryScore struct {
	Name      string  `json:"name"`
	Sum       int     `json:"sum"`
	Average   float64 `json:"average"`
	Deviation float64 `json:"deviation"`
	Answered  int     `json:"answered"`
}

// RankEntry is one row of the rank-keyed output consumed directly by the
// frontend.
type RankEntry struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Average     float64 `json:"average"`
	Deviation   float64 `json:"deviation"`
	Description string  `json:"description"`
}

// Summary carries the centering statistics.
type Summary struct {
	GrandMean      float64 `json:"grand_mean"`
	TotalQuestions int     `json:"total_questions"`
	Answered       int     `json:"answered"`
}

// Result is the PVQ payload stored for the attempt.
type Result struct {
	Categories map[string]CategoryScore `json:"category_scores"`
	Ranking    map[string]RankEntry     `json:"ranking"`
	Summary    Summary                  `json:"summary"`
}

// Calculate averages each category, centers on the grand mean, and ranks
// by deviation descending. Unanswered items count as zero toward both the
// category average and the grand mean, so a skipped category sinks in the
// ranking instead of failing validation; malformed present values are
// validation errors.
func Calculate(raw scoring.ResponseSet) (*Result, error) {
	values := map[int]int{}
	answered := 0
	grandSum := 0
	for _, c := range categories {
		for _, q := range c.Questions {
			r, ok := raw[strconv.Itoa(q)]
			if !ok {
				continue
			}
			v, err := scoring.LikertInt(r.Value, likertMin, likertMax)
			if err != nil {
				return nil, scoring.Invalidf("question %d: %v", q, err)
			}
			values[q] = v
			answered++
			grandSum += v
		}
	}
	grandMean := float64(grandSum) / totalQuestions

	scores := make(map[string]CategoryScore, len(categories))
	order := make([]string, 0, len(categories))
	for _, c := range categories {
		sum, n := 0, 0
		for _, q := range c.Questions {
			if v, ok := values[q]; ok {
				sum += v
				n++
			}
		}
		avg := float64(sum) / float64(len(c.Questions))
		scores[c.ID] = CategoryScore{
			Name:      c.Name,
			Sum:       sum,
			Average:   avg,
			Deviation: avg - grandMean,
			Answered:  n,
		}
		order = append(order, c.ID)
	}

	// Stable sort keeps the fixed category order for equal deviations.
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]].Deviation > scores[order[b]].Deviation
	})

	ranking := make(map[string]RankEntry, len(order))
	for i, id := range order {
		cs := scores[id]
		ranking[strconv.Itoa(i+1)] = RankEntry{
			Category:    id,
			Name:        cs.Name,
			Average:     cs.Average,
			Deviation:   cs.Deviation,
			Description: descriptions[id],
		}
	}

	return &Result{
		Categories: scores,
		Ranking:    ranking,
		Summary: Summary{
			GrandMean:      grandMean,
			TotalQuestions: totalQuestions,
			Answered:       answered,
		},
	}, nil
}
