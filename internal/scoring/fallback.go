package scoring

import (
	"time"

	"github.com/nats-io/nuid"
)

// GenericSummary is the lenient fallback payload for instruments without a
// registered scorer: it just counts answered questions and stamps the
// processing time so the attempt still carries a result record.
type GenericSummary struct {
	AssessmentName         string `json:"assessment_name"`
	TotalQuestionsAnswered int    `json:"total_questions_answered"`
	ProcessedAt            string `json:"processed_at"`
	ReceiptID              string `json:"receipt_id"`
}

type genericResult struct {
	GenericSummary GenericSummary `json:"generic_summary"`
}

func genericSummary(name string, raw ResponseSet) genericResult {
	return genericResult{GenericSummary: GenericSummary{
		AssessmentName:         name,
		TotalQuestionsAnswered: len(raw),
		ProcessedAt:            time.Now().UTC().Format(time.RFC3339),
		ReceiptID:              nuid.Next(),
	}}
}
