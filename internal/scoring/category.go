package scoring

import (
	"sort"

	"maturiq/internal/model"
)

// QuickResult is the complete output of a quick-mode aggregation run
type QuickResult struct {
	CategoryScores       []model.CategoryScore
	OverallScore         float64
	OverallWeightedScore float64
	OverallPercentage    float64
	MaturityLevel        model.MaturityLevel
	WeakestCategoryID    string
	StrongestCategoryID  string
}

// AggregateQuick runs the flat category aggregation over the full active
// category list. Categories with zero answered questions contribute no
// CategoryScore entry at all. questionTotals maps category id to the
// catalog-wide question count for that category (for the answered/total
// counters); a missing entry leaves the total at the answered count.
//
// The overall score is the mean raw score across all answered questions, a
// flat mean, not an average of category averages and not weighted. The
// weighting asymmetry (weighted percentages per category, unweighted
// overall) is deliberate and pinned by tests.
func AggregateQuick(answers []model.Answer, categories []model.Category, questionTotals map[string]int) QuickResult {
	byCategory := make(map[string][]*model.Answer)
	for i := range answers {
		byCategory[answers[i].CategoryID] = append(byCategory[answers[i].CategoryID], &answers[i])
	}

	var res QuickResult
	var totalRaw, totalWeighted, totalMaxWeighted float64
	totalAnswered := 0

	// Walk categories in catalog order so output ordering and tie-breaks
	// are stable across runs.
	for _, cat := range categories {
		subset := byCategory[cat.ID]
		if len(subset) == 0 {
			continue
		}

		var rawSum, weightedSum, maxWeighted float64
		for _, ans := range subset {
			rawSum += ans.RawScore
			weightedSum += ans.WeightedScore
			maxWeighted += 3 * float64(ans.Criticality)
		}

		answered := len(subset)
		total := questionTotals[cat.ID]
		if total < answered {
			total = answered
		}

		res.CategoryScores = append(res.CategoryScores, model.CategoryScore{
			CategoryID:               cat.ID,
			CategoryName:             cat.Name,
			Score:                    round2(rawSum),
			MaxPossibleScore:         float64(answered) * 3,
			WeightedScore:            round2(weightedSum),
			MaxPossibleWeightedScore: maxWeighted,
			Percentage:               percentage(weightedSum, maxWeighted),
			QuestionsAnswered:        answered,
			QuestionsTotal:           total,
		})

		totalRaw += rawSum
		totalWeighted += weightedSum
		totalMaxWeighted += maxWeighted
		totalAnswered += answered
	}

	if totalAnswered > 0 {
		res.OverallScore = round2(totalRaw / float64(totalAnswered))
	}
	res.OverallWeightedScore = round2(totalWeighted)
	res.OverallPercentage = percentage(totalWeighted, totalMaxWeighted)
	res.MaturityLevel = Classify(res.OverallScore)
	res.WeakestCategoryID, res.StrongestCategoryID = extremes(res.CategoryScores)
	return res
}

// extremes picks the weakest and strongest categories by percentage.
// The stable sort keeps catalog order on ties: first wins weakest, last
// wins strongest.
func extremes(scores []model.CategoryScore) (weakest, strongest string) {
	if len(scores) == 0 {
		return "", ""
	}
	sorted := make([]model.CategoryScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage < sorted[j].Percentage
	})
	return sorted[0].CategoryID, sorted[len(sorted)-1].CategoryID
}

// percentage guards the empty denominator: an empty subset scores 0, it
// never fails aggregation.
func percentage(weighted, maxWeighted float64) float64 {
	if maxWeighted == 0 {
		return 0
	}
	return round2(weighted / maxWeighted * 100)
}
