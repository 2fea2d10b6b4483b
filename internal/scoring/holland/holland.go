// Package holland scores the Holland (RIASEC) interest inventory. Responses
// arrive under two key shapes: checkbox items keyed
// "section___dimension___index" contribute one point when ticked, and Likert
// self-assessment items keyed "self_assessment_N___index" contribute their
// value to the dimension the index points at. Historical blobs use a
// five-underscore separator, so keys are split on any run of three or more.
package holland

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mind-engage/assessment-engine/internal/scoring"
)

func init() { scoring.Register(Scorer{}) }

// Scorer implements scoring.Scorer for the Holland instrument.
type Scorer struct{}

func (Scorer) Instrument() string { return "holland" }

func (Scorer) Score(raw scoring.ResponseSet) (any, error) { return Calculate(raw) }

// RankGroup is one score level in the ranking. Dimensions with equal scores
// share a group (and a rank) and are ordered alphabetically by letter.
type RankGroup struct {
	Rank       int      `json:"rank"`
	Score      int      `json:"score"`
	Dimensions []string `json:"dimensions"`
	Letters    string   `json:"letters"`
}

// Result is the Holland payload stored for the attempt.
type Result struct {
	Scores          map[string]int            `json:"scores"`
	Rankings        []RankGroup               `json:"rankings"`
	Code            string                    `json:"holland_code"`
	Interpretations map[string]Interpretation `json:"interpretations"`
}

var keySep = regexp.MustCompile(`_{3,}`)

// Calculate accumulates the six dimension scores, ranks them with ties
// grouped, and derives the Holland code from the top three score levels.
// Unanswered items are simply absent from the blob; malformed keys or
// values are validation errors.
func Calculate(raw scoring.ResponseSet) (*Result, error) {
	scores := map[string]int{}
	for _, d := range dimensions {
		scores[d.ID] = 0
	}

	for key, r := range raw {
		parts := keySep.Split(key, -1)
		switch len(parts) {
		case 3:
			dim := parts[1]
			if _, ok := scores[dim]; !ok {
				return nil, scoring.Invalidf("key %q: unknown dimension %q", key, dim)
			}
			ticked, err := scoring.BoolValue(r.Value)
			if err != nil {
				return nil, scoring.Invalidf("key %q: %v", key, err)
			}
			if ticked {
				scores[dim]++
			}
		case 2:
			if !strings.HasPrefix(parts[0], "self_assessment") {
				return nil, scoring.Invalidf("key %q: unrecognized section %q", key, parts[0])
			}
			idx, err := strconv.Atoi(parts[1])
			if err != nil || idx < 1 || idx > len(dimensions) {
				return nil, scoring.Invalidf("key %q: bad self-assessment index %q", key, parts[1])
			}
			v, err := scoring.LikertInt(r.Value, 0, 5)
			if err != nil {
				return nil, scoring.Invalidf("key %q: %v", key, err)
			}
			scores[dimensions[idx-1].ID] += v
		default:
			return nil, scoring.Invalidf("key %q: unrecognized key shape", key)
		}
	}

	rankings := rankDimensions(scores)

	codeParts := make([]string, 0, 3)
	for i, g := range rankings {
		if i == 3 {
			break
		}
		codeParts = append(codeParts, g.Letters)
	}

	interp := make(map[string]Interpretation, len(dimensions))
	for _, d := range dimensions {
		interp[d.ID] = d.Interpretation
	}

	return &Result{
		Scores:          scores,
		Rankings:        rankings,
		Code:            strings.Join(codeParts, "-"),
		Interpretations: interp,
	}, nil
}

func rankDimensions(scores map[string]int) []RankGroup {
	byScore := map[int][]string{}
	levels := []int{}
	for _, d := range dimensions {
		s := scores[d.ID]
		if _, seen := byScore[s]; !seen {
			levels = append(levels, s)
		}
		byScore[s] = append(byScore[s], d.ID)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))

	groups := make([]RankGroup, 0, len(levels))
	for i, s := range levels {
		ids := byScore[s]
		sort.Slice(ids, func(a, b int) bool { return letterOf[ids[a]] < letterOf[ids[b]] })
		letters := make([]string, len(ids))
		for j, id := range ids {
			letters[j] = letterOf[id]
		}
		groups = append(groups, RankGroup{
			Rank:       i + 1,
			Score:      s,
			Dimensions: ids,
			Letters:    strings.Join(letters, "/"),
		})
	}
	return groups
}

// String renders a rank group for logs and debug output.
func (g RankGroup) String() string {
	return fmt.Sprintf("#%d %s (%d)", g.Rank, g.Letters, g.Score)
}
