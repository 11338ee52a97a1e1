package scoring

import (
	"fmt"

	"maturiq/internal/model"
)

// Deep modules scoring below this emit a recommendation entry even when
// the progression gate alone would not flag them.
const recommendationFloor = 2.0

// feedbackBand is one row of the quick-mode feedback table. Content is
// data; the band structure and thresholds mirror the maturity classifier.
type feedbackBand struct {
	minScore     float64
	summary      string
	strengths    []string
	improvements []string
	nextSteps    []string
}

var quickBands = []feedbackBand{
	{
		minScore: ThresholdM3,
		summary:  "The project shows a high level of maturity with well-structured practices across the board.",
		strengths: []string{
			"Established governance and steering routines",
			"Consistent, documented ways of working",
		},
		improvements: []string{
			"Keep practices current as the project scales",
		},
		nextSteps: []string{
			"Run a deep assessment to confirm phase readiness per module",
			"Share working practices with other project teams",
		},
	},
	{
		minScore: ThresholdM2,
		summary:  "The project shows medium maturity: the foundations are in place but several practices remain informal.",
		strengths: []string{
			"Core project management practices are present",
		},
		improvements: []string{
			"Formalize the practices currently relying on individuals",
			"Close the gaps in the weakest scoring areas",
		},
		nextSteps: []string{
			"Define an improvement plan for the weakest categories",
			"Re-assess once the plan has been executed",
		},
	},
	{
		minScore: 0,
		summary:  "The project shows very low maturity and needs structuring work before it can progress reliably.",
		strengths: []string{
			"An assessment baseline now exists to improve against",
		},
		improvements: []string{
			"Establish basic governance and steering",
			"Put minimal documentation and processes in place",
		},
		nextSteps: []string{
			"Prioritize the fundamentals before any phase progression",
			"Schedule a follow-up assessment within three months",
		},
	},
}

// BuildQuickFeedback maps the overall score band and the weakest category
// to the canned quick-mode guidance block. Deterministic and
// side-effect-free.
func BuildQuickFeedback(overallScore float64, weakestCategoryName string) *model.Feedback {
	band := quickBands[len(quickBands)-1]
	for _, b := range quickBands {
		if overallScore >= b.minScore {
			band = b
			break
		}
	}

	fb := &model.Feedback{
		Summary:      band.summary,
		Strengths:    append([]string(nil), band.strengths...),
		Improvements: append([]string(nil), band.improvements...),
		NextSteps:    append([]string(nil), band.nextSteps...),
	}
	if weakestCategoryName != "" {
		fb.Improvements = append(fb.Improvements,
			fmt.Sprintf("Focus first on the weakest category: %s", weakestCategoryName))
	}
	return fb
}

// BuildDeepFeedback summarizes the overall maturity level and emits one
// recommendation entry per module-phase that scored below the
// recommendation floor or cannot proceed to the next phase. A module both
// above the floor and able to proceed emits nothing: the absence of an
// entry is meaningful.
func BuildDeepFeedback(overall model.MaturityLevel, moduleScores []model.ModuleScore) *model.Feedback {
	fb := &model.Feedback{
		Summary: deepSummary(overall),
	}

	for _, ms := range moduleScores {
		var reasons []string
		if ms.Score < recommendationFloor {
			reasons = append(reasons,
				fmt.Sprintf("Score %.2f is below the %.1f target for %s %s", ms.Score, recommendationFloor, ms.Module, ms.IRLPhase))
		}
		if !ms.CanProceedToNext {
			next := model.NextIRLPhase(ms.IRLPhase)
			if next != "" {
				reasons = append(reasons,
					fmt.Sprintf("Maturity is insufficient to start %s for %s", next, ms.Module))
			} else {
				reasons = append(reasons,
					fmt.Sprintf("Maturity threshold for %s %s is not reached", ms.Module, ms.IRLPhase))
			}
		}
		if len(reasons) == 0 {
			continue
		}
		fb.ModuleRecommendations = append(fb.ModuleRecommendations, model.ModuleRecommendation{
			Module:   ms.Module,
			IRLPhase: ms.IRLPhase,
			Reasons:  reasons,
		})
	}
	return fb
}

func deepSummary(level model.MaturityLevel) string {
	switch level {
	case model.MaturityM3:
		return "Overall maturity is M3: modules are well structured and phase progression is largely unlocked."
	case model.MaturityM2:
		return "Overall maturity is M2: module practices exist but several phases are not yet ready to advance."
	default:
		return "Overall maturity is M1: structuring work is required across modules before phases can advance."
	}
}
