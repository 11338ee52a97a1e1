// Package scoring is the assessment scoring and progression engine. It is
// pure computation over an in-memory answer set: no I/O, no persistence.
// Aggregation results are computed wholesale from the answers and published
// by the caller in one step, never patched incrementally.
package scoring

import "maturiq/internal/model"

// Maturity thresholds, shared by quick-mode overall classification, every
// deep-mode module-phase classification, and the progression gate.
const (
	ThresholdM3 = 2.4
	ThresholdM2 = 1.7
)

// Classify maps a continuous score to a discrete maturity tier
func Classify(score float64) model.MaturityLevel {
	switch {
	case score >= ThresholdM3:
		return model.MaturityM3
	case score >= ThresholdM2:
		return model.MaturityM2
	default:
		return model.MaturityM1
	}
}

// CanProceed is the deep-mode progression gate: a module-phase unlocks the
// next phase once its score reaches the M3 threshold. No other condition
// participates.
func CanProceed(score float64) bool {
	return score >= ThresholdM3
}
