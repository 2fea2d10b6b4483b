// Package aggregate assembles the cross-instrument payload handed to the
// downstream AI guidance step. It is pure data assembly over results the
// caller has already fetched; the outbound provider call lives elsewhere.
package aggregate

import (
	"github.com/pkg/errors"
)

// Attempt is the caller's view of one stored assessment attempt.
type Attempt struct {
	AssessmentID   int64
	AssessmentName string
	Completed      bool
	// Results is the ScoringResult payload persisted for the attempt,
	// carried opaquely.
	Results any
}

// AssessmentData is one assessment's slice of the AI-input payload.
type AssessmentData struct {
	AssessmentID   int64  `json:"assessment_id"`
	AssessmentName string `json:"assessment_name"`
	Results        any    `json:"results"`
}

// Payload is the aggregated structure sent to the AI provider: one entry
// per completed assessment in the user's package.
type Payload struct {
	UserID      int64            `json:"user_id"`
	PackageID   int64            `json:"package_id"`
	PackageName string           `json:"package_name"`
	Assessments []AssessmentData `json:"assessments_data"`
}

// BuildPackagePayload collects the completed attempts' stored results into
// the AI-input payload. Incomplete attempts are skipped; a package with no
// completed attempts is an error since the downstream prompt would be
// empty.
func BuildPackagePayload(userID, packageID int64, packageName string, attempts []Attempt) (*Payload, error) {
	p := &Payload{
		UserID:      userID,
		PackageID:   packageID,
		PackageName: packageName,
		Assessments: []AssessmentData{},
	}
	for _, a := range attempts {
		if !a.Completed {
			continue
		}
		results := a.Results
		if results == nil {
			results = map[string]any{}
		}
		p.Assessments = append(p.Assessments, AssessmentData{
			AssessmentID:   a.AssessmentID,
			AssessmentName: a.AssessmentName,
			Results:        results,
		})
	}
	if len(p.Assessments) == 0 {
		return nil, errors.Errorf("package %d has no completed assessments to aggregate", packageID)
	}
	return p, nil
}
