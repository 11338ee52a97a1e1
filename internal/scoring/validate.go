package scoring

import (
	"errors"
	"math"

	"maturiq/internal/model"
)

var (
	ErrScoreOutOfRange  = errors.New("raw score must be between 0 and 3")
	ErrNegativeTime     = errors.New("time spent cannot be negative")
	ErrQuestionInactive = errors.New("question is not active")
	ErrNotDeepEligible  = errors.New("question is missing deep assessment tags")
)

// ValidateSubmission rejects data-integrity errors at the boundary so the
// aggregators can assume validated input. Deep-mode questions must carry
// module, IRL phase, a canonical family, and a criticality in 1-3.
func ValidateSubmission(q *model.Question, mode model.AssessmentType, rawScore float64, timeSpentSec int) error {
	if rawScore < 0 || rawScore > 3 || math.IsNaN(rawScore) {
		return ErrScoreOutOfRange
	}
	if timeSpentSec < 0 {
		return ErrNegativeTime
	}
	if !q.IsActive {
		return ErrQuestionInactive
	}
	if mode == model.AssessmentTypeDeep && !q.DeepEligible() {
		return ErrNotDeepEligible
	}
	return nil
}

// round2 rounds to two decimals; all published scores and percentages go
// through it so repeated aggregation runs are byte-identical.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
