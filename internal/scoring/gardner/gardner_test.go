package gardner

import (
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/mind-engage/assessment-engine/internal/scoring"
	"github.com/pkg/errors"
)

// fill builds a complete 80-item response set, with per-question overrides
// applied by the pick function.
func fill(pick func(q int) string) scoring.ResponseSet {
	raw := scoring.ResponseSet{}
	for i := 1; i <= 80; i++ {
		raw[strconv.Itoa(i)] = scoring.Response{Value: pick(i)}
	}
	return raw
}

func TestLinguisticLogicalProfile(t *testing.T) {
	raw := fill(func(q int) string {
		if q%8 == 1 || q%8 == 2 {
			return "5"
		}
		return "1"
	})

	res, err := Calculate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ranked[0].DimensionID != "linguistic_verbal" {
		t.Fatalf("rank 1 = %s, want linguistic_verbal", res.Ranked[0].DimensionID)
	}
	if res.Ranked[1].DimensionID != "logical_mathematical" {
		t.Fatalf("rank 2 = %s, want logical_mathematical", res.Ranked[1].DimensionID)
	}
	ling := res.Dimensions["linguistic_verbal"]
	if ling.RawScore != 50 || ling.Percentage != 100 || ling.Level != scoring.LevelStrong {
		t.Fatalf("unexpected linguistic score: %+v", ling)
	}
	if got := res.Dimensions["musical"]; got.RawScore != 10 || got.Level != scoring.LevelWeak {
		t.Fatalf("unexpected musical score: %+v", got)
	}
}

func TestNaturalistMusicalProfile(t *testing.T) {
	raw := fill(func(q int) string {
		switch q % 8 {
		case 0:
			return "5"
		case 7:
			return "4"
		default:
			return "1"
		}
	})

	res, err := Calculate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ranked[0].DimensionID != "naturalist" || res.Ranked[1].DimensionID != "musical" {
		t.Fatalf("unexpected top ranks: %s, %s", res.Ranked[0].DimensionID, res.Ranked[1].DimensionID)
	}
}

func TestAllEqualScores(t *testing.T) {
	raw := fill(func(int) string { return "3" })

	res, err := Calculate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalScore != 240 || res.TotalLevel != scoring.LevelMedium {
		t.Fatalf("total = %d/%s, want 240/medium", res.TotalScore, res.TotalLevel)
	}
	if !strings.Contains(res.TotalInterpretation, "medium") {
		t.Fatalf("unexpected total interpretation: %q", res.TotalInterpretation)
	}
	// Ties resolve alphabetically, and every dimension is both strongest
	// and weakest when all scores are equal.
	if len(res.Strongest) != 8 || len(res.Weakest) != 8 {
		t.Fatalf("strongest/weakest = %d/%d, want 8/8", len(res.Strongest), len(res.Weakest))
	}
	ids := make([]string, len(res.Ranked))
	for i, r := range res.Ranked {
		ids[i] = r.DimensionID
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatal("tied ranking is not alphabetical")
	}
}

func TestMissingQuestionsListed(t *testing.T) {
	raw := fill(func(int) string { return "3" })
	delete(raw, "17")
	delete(raw, "64")

	_, err := Calculate(raw)
	if err == nil {
		t.Fatal("expected validation error for missing questions")
	}
	var ve *scoring.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *scoring.ValidationError, got %T", err)
	}
	sort.Strings(ve.Missing)
	if len(ve.Missing) != 2 || ve.Missing[0] != "17" || ve.Missing[1] != "64" {
		t.Fatalf("missing ids = %v, want [17 64]", ve.Missing)
	}
}

func TestOutOfRangeValueListed(t *testing.T) {
	raw := fill(func(int) string { return "3" })
	raw["40"] = scoring.Response{Value: "6"}

	_, err := Calculate(raw)
	var ve *scoring.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *scoring.ValidationError, got %v", err)
	}
	if len(ve.Invalid) != 1 || !strings.HasPrefix(ve.Invalid[0], "40") {
		t.Fatalf("invalid ids = %v, want entry for 40", ve.Invalid)
	}
}

func TestNonNumericValueRejected(t *testing.T) {
	raw := fill(func(int) string { return "2" })
	raw["3"] = scoring.Response{Value: "often"}
	if _, err := Calculate(raw); err == nil {
		t.Fatal("expected validation error for non-numeric value")
	}
}
