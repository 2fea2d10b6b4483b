package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/labstack/gommon/log"
)

// Status tags a Result envelope.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// Result is the envelope handed back to the caller. The persistence layer
// stores Results verbatim; Message carries the failure description when
// Status is "error".
type Result struct {
	Status     Status `json:"status"`
	Instrument string `json:"instrument"`
	Message    string `json:"message,omitempty"`
	Results    any    `json:"results,omitempty"`
}

// Scorer computes an instrument-specific result payload from validated raw
// responses. Implementations must be stateless and safe for concurrent use.
type Scorer interface {
	// Instrument is the registry key, matched case-insensitively.
	Instrument() string
	// Score returns a JSON-serializable payload or an error. Validation
	// failures should be returned as *ValidationError.
	Score(raw ResponseSet) (any, error)
}

var registry = map[string]Scorer{}

// Register binds a scorer under its instrument name. Call from init() in
// instrument subpackages.
func Register(s Scorer) { registry[strings.ToLower(s.Instrument())] = s }

// Lookup returns the registered scorer for an instrument name.
func Lookup(name string) (Scorer, bool) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Instruments lists the registered instrument names, sorted.
func Instruments() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var logger = newLogger()

func newLogger() *log.Logger {
	l := log.New("scoring")
	l.SetLevel(log.WARN)
	return l
}

// SetLogLevel adjusts the engine's log verbosity.
func SetLogLevel(lvl log.Lvl) { logger.SetLevel(lvl) }

// Calculate routes raw responses to the scorer registered for the
// instrument and returns a status-tagged result. It never panics: internal
// failures are logged and converted to an error-status envelope. An unknown
// instrument is not an error; it falls through to the generic summary
// scorer so partially-supported questionnaires still produce a record.
func Calculate(instrument string, raw ResponseSet) (res Result) {
	name := strings.ToLower(strings.TrimSpace(instrument))
	res = Result{Status: StatusSuccess, Instrument: name}

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("panic scoring %q: %v", name, r)
			res = Result{
				Status:     StatusError,
				Instrument: name,
				Message:    fmt.Sprintf("internal error scoring %q: %v", name, r),
			}
		}
	}()

	s, ok := registry[name]
	if !ok {
		logger.Infof("no scorer registered for %q, using generic summary", name)
		res.Results = genericSummary(name, raw)
		return res
	}

	payload, err := s.Score(raw)
	if err != nil {
		return Result{Status: StatusError, Instrument: name, Message: err.Error()}
	}
	res.Results = payload
	return res
}

// CalculateJSON decodes a persisted raw-response blob and scores it.
func CalculateJSON(instrument string, blob []byte) Result {
	raw, err := DecodeResponses(blob)
	if err != nil {
		return Result{
			Status:     StatusError,
			Instrument: strings.ToLower(strings.TrimSpace(instrument)),
			Message:    err.Error(),
		}
	}
	return Calculate(instrument, raw)
}
