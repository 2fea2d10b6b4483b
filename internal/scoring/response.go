package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Response is one question's answer payload. Exactly which fields are set
// depends on the instrument: single-choice and Likert items use Value (the
// "response" field of the wire format), DISC forced-choice pairs use
// MostLikeMe / LeastLikeMe.
type Response struct {
	Value       any
	MostLikeMe  string
	LeastLikeMe string
}

// ResponseSet maps a question identifier to its response. Keys are plain
// integers for most instruments, or compound section keys for Holland.
type ResponseSet map[string]Response

// DecodeResponses parses the raw-response blob accumulated by the answer
// endpoint. The blob is a JSON object keyed by question id; payload shapes
// are instrument-specific, so values are kept loosely typed and coerced
// during validation.
func DecodeResponses(blob []byte) (ResponseSet, error) {
	parsed := gjson.ParseBytes(blob)
	if !parsed.IsObject() {
		return nil, errors.New("raw responses must be a JSON object keyed by question id")
	}
	raw := make(ResponseSet, len(parsed.Map()))
	parsed.ForEach(func(key, value gjson.Result) bool {
		r := Response{}
		if v := value.Get("response"); v.Exists() {
			r.Value = v.Value()
		}
		if v := value.Get("most_like_me"); v.Exists() {
			r.MostLikeMe = v.String()
		}
		if v := value.Get("least_like_me"); v.Exists() {
			r.LeastLikeMe = v.String()
		}
		raw[key.String()] = r
		return true
	})
	return raw, nil
}

// LikertInt coerces a Likert response value to an integer in [min, max].
// Numeric strings and integral floats (the usual JSON decodings) are
// accepted; anything else, including out-of-range values, is a validation
// error rather than a clamped score.
func LikertInt(v any, min, max int) (int, error) {
	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int64:
		n = int(t)
	case float64:
		if t != math.Trunc(t) {
			return 0, errors.Errorf("non-integer value %v", t)
		}
		n = int(t)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, errors.Wrapf(err, "non-numeric value %q", t)
		}
		n = parsed
	default:
		return 0, errors.Errorf("unsupported value type %T", v)
	}
	if n < min || n > max {
		return 0, errors.Errorf("value %d out of range [%d,%d]", n, min, max)
	}
	return n, nil
}

// BoolValue coerces a checkbox response to a bool.
func BoolValue(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, errors.Errorf("expected boolean, got %T", v)
	}
	return b, nil
}

// LetterValue coerces a choice response to a trimmed lower-case letter.
func LetterValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.Errorf("expected choice letter, got %T", v)
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}

// ValidationError reports malformed or incomplete raw input. Scoring stops
// before any partial computation when one is raised.
type ValidationError struct {
	Reason  string
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf("; missing question ids: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		msg += fmt.Sprintf("; invalid responses: %s", strings.Join(e.Invalid, ", "))
	}
	return msg
}

// Invalidf builds a ValidationError from a format string.
func Invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
