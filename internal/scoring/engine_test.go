package scoring

import (
	"encoding/json"
	"strings"
	"testing"
)

type stubScorer struct {
	name    string
	payload any
	err     error
	panics  bool
}

func (s stubScorer) Instrument() string { return s.name }

func (s stubScorer) Score(raw ResponseSet) (any, error) {
	if s.panics {
		panic("boom")
	}
	return s.payload, s.err
}

func TestCalculateSuccess(t *testing.T) {
	Register(stubScorer{name: "stub-ok", payload: map[string]int{"total": 7}})

	res := Calculate("stub-ok", ResponseSet{"1": {Value: "a"}})
	if res.Status != StatusSuccess {
		t.Fatalf("status = %s, want success", res.Status)
	}
	if res.Instrument != "stub-ok" {
		t.Fatalf("instrument = %q, want stub-ok", res.Instrument)
	}
}

func TestCalculateCaseInsensitiveLookup(t *testing.T) {
	Register(stubScorer{name: "Stub-Case", payload: "ok"})

	res := Calculate("  STUB-CASE ", ResponseSet{})
	if res.Status != StatusSuccess || res.Results != "ok" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCalculateScorerErrorBecomesEnvelope(t *testing.T) {
	Register(stubScorer{name: "stub-bad", err: Invalidf("bad input")})

	res := Calculate("stub-bad", ResponseSet{})
	if res.Status != StatusError {
		t.Fatalf("status = %s, want error", res.Status)
	}
	if !strings.Contains(res.Message, "bad input") {
		t.Fatalf("message = %q, want it to mention bad input", res.Message)
	}
	if res.Results != nil {
		t.Fatalf("error result carries payload: %v", res.Results)
	}
}

func TestCalculateContainsPanics(t *testing.T) {
	Register(stubScorer{name: "stub-panic", panics: true})

	res := Calculate("stub-panic", ResponseSet{})
	if res.Status != StatusError {
		t.Fatalf("status = %s, want error", res.Status)
	}
	if !strings.Contains(res.Message, "internal error") {
		t.Fatalf("message = %q, want internal error description", res.Message)
	}
}

func TestUnknownInstrumentFallsBackToGenericSummary(t *testing.T) {
	raw := ResponseSet{"1": {Value: "3"}, "2": {Value: "1"}, "3": {Value: "5"}}

	res := Calculate("schwartz values", raw)
	if res.Status != StatusSuccess {
		t.Fatalf("status = %s, want success", res.Status)
	}
	g, ok := res.Results.(genericResult)
	if !ok {
		t.Fatalf("unexpected payload type %T", res.Results)
	}
	if g.GenericSummary.AssessmentName != "schwartz values" {
		t.Fatalf("assessment name = %q", g.GenericSummary.AssessmentName)
	}
	if g.GenericSummary.TotalQuestionsAnswered != 3 {
		t.Fatalf("answered = %d, want 3", g.GenericSummary.TotalQuestionsAnswered)
	}
	if g.GenericSummary.ProcessedAt == "" || g.GenericSummary.ReceiptID == "" {
		t.Fatal("generic summary missing timestamp or receipt id")
	}
}

func TestCalculateIdempotent(t *testing.T) {
	Register(stubScorer{name: "stub-idem", payload: map[string]any{"scores": map[string]int{"E": 8, "I": 7}}})
	raw := ResponseSet{"1": {Value: "a"}}

	first, err := json.Marshal(Calculate("stub-idem", raw))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(Calculate("stub-idem", raw))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("repeat call differs:\n%s\n%s", first, second)
	}
}

func TestDecodeResponses(t *testing.T) {
	blob := []byte(`{
		"1": {"response": "a"},
		"2": {"response": 4},
		"3": {"response": true},
		"4": {"most_like_me": "D", "least_like_me": "C"}
	}`)

	raw, err := DecodeResponses(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["1"].Value != "a" {
		t.Errorf("q1 value = %v", raw["1"].Value)
	}
	if raw["2"].Value != float64(4) {
		t.Errorf("q2 value = %v (%T)", raw["2"].Value, raw["2"].Value)
	}
	if raw["3"].Value != true {
		t.Errorf("q3 value = %v", raw["3"].Value)
	}
	if raw["4"].MostLikeMe != "D" || raw["4"].LeastLikeMe != "C" {
		t.Errorf("q4 pair = %q/%q", raw["4"].MostLikeMe, raw["4"].LeastLikeMe)
	}
}

func TestDecodeResponsesRejectsNonObject(t *testing.T) {
	if _, err := DecodeResponses([]byte(`[1,2,3]`)); err == nil {
		t.Fatal("expected error for JSON array blob")
	}
}

func TestCalculateJSONBadBlob(t *testing.T) {
	res := CalculateJSON("mbti", []byte(`"not an object"`))
	if res.Status != StatusError {
		t.Fatalf("status = %s, want error", res.Status)
	}
}

func TestLikertIntCoercion(t *testing.T) {
	cases := []struct {
		in      any
		want    int
		wantErr bool
	}{
		{in: "3", want: 3},
		{in: " 4 ", want: 4},
		{in: float64(2), want: 2},
		{in: 5, want: 5},
		{in: float64(2.5), wantErr: true},
		{in: "six", wantErr: true},
		{in: true, wantErr: true},
		{in: "9", wantErr: true},
		{in: "-1", wantErr: true},
	}
	for _, c := range cases {
		got, err := LikertInt(c.in, 0, 5)
		if c.wantErr {
			if err == nil {
				t.Errorf("LikertInt(%v) expected error, got %d", c.in, got)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("LikertInt(%v) = %d, %v; want %d", c.in, got, err, c.want)
		}
	}
}

func TestInstrumentsSorted(t *testing.T) {
	Register(stubScorer{name: "zzz-last"})
	names := Instruments()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("instrument list not sorted: %v", names)
		}
	}
}
