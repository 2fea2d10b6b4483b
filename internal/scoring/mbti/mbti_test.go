package mbti

import (
	"strconv"
	"testing"

	"github.com/mind-engage/assessment-engine/internal/scoring"
)

func allAnswers(letter string) scoring.ResponseSet {
	raw := scoring.ResponseSet{}
	for i := 1; i <= 60; i++ {
		raw[strconv.Itoa(i)] = scoring.Response{Value: letter}
	}
	return raw
}

func TestAllOptionA(t *testing.T) {
	res, err := Calculate(allAnswers("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Type != "ISTP" {
		t.Fatalf("expected ISTP, got %q", res.Type)
	}
	want := map[string]int{"I": 15, "S": 15, "T": 15, "P": 15, "E": 0, "N": 0, "F": 0, "J": 0}
	for letter, n := range want {
		if res.Scores[letter] != n {
			t.Errorf("score %s = %d, want %d", letter, res.Scores[letter], n)
		}
	}
	for _, axis := range []string{"EI", "SN", "TF", "JP"} {
		if res.Preferences[axis].Tied {
			t.Errorf("axis %s unexpectedly tied", axis)
		}
	}
}

func TestAllOptionB(t *testing.T) {
	res, err := Calculate(allAnswers("b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Type != "ENFJ" {
		t.Fatalf("expected ENFJ, got %q", res.Type)
	}
}

func TestNearTiePartialInput(t *testing.T) {
	// Only the E/I questions answered: 7 "a" picks then 8 "b" picks.
	raw := scoring.ResponseSet{}
	for _, q := range []int{1, 5, 9, 13, 17, 21, 25} {
		raw[strconv.Itoa(q)] = scoring.Response{Value: "a"}
	}
	for _, q := range []int{29, 33, 37, 41, 45, 49, 53, 57} {
		raw[strconv.Itoa(q)] = scoring.Response{Value: "b"}
	}

	res, err := Calculate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Scores["I"] != 7 || res.Scores["E"] != 8 {
		t.Fatalf("scores I=%d E=%d, want I=7 E=8", res.Scores["I"], res.Scores["E"])
	}
	if got := res.Preferences["EI"].Preference; got != "E" {
		t.Fatalf("EI preference = %q, want E", got)
	}
}

func TestExactTieProducesSlashToken(t *testing.T) {
	// Drop one E/I question and flip seven more so both poles land on 7.
	raw := allAnswers("a")
	delete(raw, "1")
	for _, q := range []int{5, 9, 13, 17, 21, 25, 29} {
		raw[strconv.Itoa(q)] = scoring.Response{Value: "b"}
	}

	res, err := Calculate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Scores["I"] != 7 || res.Scores["E"] != 7 {
		t.Fatalf("scores I=%d E=%d, want a 7/7 tie", res.Scores["I"], res.Scores["E"])
	}
	pref := res.Preferences["EI"]
	if pref.Preference != "I/E" || !pref.Tied {
		t.Fatalf("EI preference = %+v, want tied I/E", pref)
	}
	if res.Type != "I/E-S-T-P" {
		t.Fatalf("composite type = %q, want I/E-S-T-P", res.Type)
	}
}

func TestInvalidChoiceLetter(t *testing.T) {
	raw := allAnswers("a")
	raw["7"] = scoring.Response{Value: "c"}
	if _, err := Calculate(raw); err == nil {
		t.Fatal("expected validation error for choice letter 'c'")
	}
}

func TestNonStringChoice(t *testing.T) {
	raw := allAnswers("a")
	raw["7"] = scoring.Response{Value: 3.0}
	if _, err := Calculate(raw); err == nil {
		t.Fatal("expected validation error for numeric choice")
	}
}
