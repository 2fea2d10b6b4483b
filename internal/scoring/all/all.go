// Package all links the built-in instrument scorers into a binary via
// their init() registration, driver-style.
package all

import (
	_ "github.com/mind-engage/assessment-engine/internal/scoring/disc"    // scorer: disc
	_ "github.com/mind-engage/assessment-engine/internal/scoring/gardner" // scorer: gardner
	_ "github.com/mind-engage/assessment-engine/internal/scoring/holland" // scorer: holland
	_ "github.com/mind-engage/assessment-engine/internal/scoring/mbti"    // scorer: mbti
	_ "github.com/mind-engage/assessment-engine/internal/scoring/neo"     // scorer: neo
	_ "github.com/mind-engage/assessment-engine/internal/scoring/pvq"     // scorer: pvq
	_ "github.com/mind-engage/assessment-engine/internal/scoring/swanson" // scorer: swanson
)
