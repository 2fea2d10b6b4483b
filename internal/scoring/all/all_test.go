package all_test

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/mind-engage/assessment-engine/internal/scoring"
	_ "github.com/mind-engage/assessment-engine/internal/scoring/all"
)

func mbtiBlob(letter string) []byte {
	m := map[string]map[string]string{}
	for i := 1; i <= 60; i++ {
		m[strconv.Itoa(i)] = map[string]string{"response": letter}
	}
	b, _ := json.Marshal(m)
	return b
}

func TestAllInstrumentsRegistered(t *testing.T) {
	for _, name := range []string{"mbti", "holland", "disc", "gardner", "neo", "pvq", "swanson"} {
		if _, ok := scoring.Lookup(name); !ok {
			t.Errorf("instrument %q not registered", name)
		}
	}
}

func TestEndToEndMBTI(t *testing.T) {
	res := scoring.CalculateJSON("mbti", mbtiBlob("a"))
	if res.Status != scoring.StatusSuccess {
		t.Fatalf("status = %s (%s)", res.Status, res.Message)
	}
	out, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Results struct {
			Type string `json:"mbti_type"`
		} `json:"results"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Results.Type != "ISTP" {
		t.Fatalf("mbti_type = %q, want ISTP", decoded.Results.Type)
	}
}

func TestEndToEndValidationErrorEnvelope(t *testing.T) {
	// A 23-item DISC blob must come back as an error envelope, not a panic.
	m := map[string]map[string]string{}
	for i := 1; i <= 23; i++ {
		m[strconv.Itoa(i)] = map[string]string{"most_like_me": "D", "least_like_me": "C"}
	}
	blob, _ := json.Marshal(m)

	res := scoring.CalculateJSON("disc", blob)
	if res.Status != scoring.StatusError {
		t.Fatalf("status = %s, want error", res.Status)
	}
	if res.Message == "" {
		t.Fatal("error envelope missing message")
	}
}

func TestEndToEndIdempotence(t *testing.T) {
	blob := mbtiBlob("b")
	first, _ := json.Marshal(scoring.CalculateJSON("mbti", blob))
	second, _ := json.Marshal(scoring.CalculateJSON("mbti", blob))
	if string(first) != string(second) {
		t.Fatal("repeated scoring of identical input differs")
	}
}
