package scoring

import (
	"sort"

	"maturiq/internal/model"
)

// DeepResult is the complete output of a deep-mode aggregation run
type DeepResult struct {
	ModuleScores         []model.ModuleScore
	OverallScore         float64
	OverallWeightedScore float64
	OverallPercentage    float64
	MaturityLevel        model.MaturityLevel
}

type modulePhaseKey struct {
	Module   model.Module
	IRLPhase model.IRLPhase
}

// AggregateDeep runs the three-level module -> IRL-phase -> family
// aggregation. Only (module, phase) pairs actually present among the
// answers produce a ModuleScore; the cross-product is never pre-enumerated.
// The module-phase score is the flat mean over all answers in the pair,
// not a mean of family means, and the overall score is the flat mean over
// the entire answer set, ignoring partitions and weighting.
func AggregateDeep(answers []model.Answer) DeepResult {
	groups := make(map[modulePhaseKey][]*model.Answer)
	for i := range answers {
		key := modulePhaseKey{Module: answers[i].Module, IRLPhase: answers[i].IRLPhase}
		groups[key] = append(groups[key], &answers[i])
	}

	keys := make([]modulePhaseKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Module != keys[j].Module {
			return moduleRank(keys[i].Module) < moduleRank(keys[j].Module)
		}
		return phaseRank(keys[i].IRLPhase) < phaseRank(keys[j].IRLPhase)
	})

	var res DeepResult
	var totalRaw, totalWeighted, totalMaxWeighted float64

	for _, key := range keys {
		group := groups[key]

		var rawSum, weightedSum, maxWeighted float64
		for _, ans := range group {
			rawSum += ans.RawScore
			weightedSum += ans.WeightedScore
			maxWeighted += 3 * float64(ans.Criticality)
		}
		score := round2(rawSum / float64(len(group)))

		res.ModuleScores = append(res.ModuleScores, model.ModuleScore{
			Module:                   key.Module,
			IRLPhase:                 key.IRLPhase,
			Score:                    score,
			WeightedScore:            round2(weightedSum),
			MaxPossibleWeightedScore: maxWeighted,
			MaturityLevel:            Classify(score),
			IsComplete:               true,
			CanProceedToNext:         CanProceed(score),
			FamilyScores:             familyScores(group),
		})

		totalRaw += rawSum
		totalWeighted += weightedSum
		totalMaxWeighted += maxWeighted
	}

	if len(answers) > 0 {
		res.OverallScore = round2(totalRaw / float64(len(answers)))
	}
	res.OverallWeightedScore = round2(totalWeighted)
	res.OverallPercentage = percentage(totalWeighted, totalMaxWeighted)
	res.MaturityLevel = Classify(res.OverallScore)
	return res
}

// familyScores sub-partitions one module-phase group by question family,
// in canonical family order. Family totals equal answered counts: only
// answered questions appear in the ledger, the catalog-wide family size is
// not this engine's concern.
func familyScores(group []*model.Answer) []model.FamilyScore {
	byFamily := make(map[model.QuestionFamily][]*model.Answer)
	for _, ans := range group {
		byFamily[ans.QuestionFamily] = append(byFamily[ans.QuestionFamily], ans)
	}

	var scores []model.FamilyScore
	for _, family := range model.QuestionFamilies {
		subset := byFamily[family]
		if len(subset) == 0 {
			continue
		}
		var rawSum, weightedSum float64
		for _, ans := range subset {
			rawSum += ans.RawScore
			weightedSum += ans.WeightedScore
		}
		scores = append(scores, model.FamilyScore{
			Family:            family,
			Score:             round2(rawSum / float64(len(subset))),
			WeightedScore:     round2(weightedSum),
			QuestionsAnswered: len(subset),
			QuestionsTotal:    len(subset),
		})
	}
	return scores
}

func moduleRank(m model.Module) int {
	for i, known := range model.Modules {
		if m == known {
			return i
		}
	}
	return len(model.Modules)
}

func phaseRank(p model.IRLPhase) int {
	for i, known := range model.IRLPhases {
		if p == known {
			return i
		}
	}
	return len(model.IRLPhases)
}
