package scoring

import "maturiq/internal/model"

// Record upserts an answer into the assessment's answer set. An existing
// answer for the same question is replaced in place without touching the
// answered counter; a new answer is appended and counted. The weighted
// score and the average-time metric are recomputed here so callers only
// supply the snapshot fields.
//
// Status guards (rejecting writes on a completed assessment) belong to the
// caller; the ledger itself is last-writer-wins per question.
func Record(a *model.Assessment, ans model.Answer) {
	if ans.Criticality < 1 {
		ans.Criticality = 1
	}
	ans.WeightedScore = ans.RawScore * float64(ans.Criticality)

	if existing := a.AnswerFor(ans.QuestionID); existing != nil {
		*existing = ans
	} else {
		a.Answers = append(a.Answers, ans)
		a.QuestionsAnswered++
	}

	a.AverageTimePerQuestion = averageTime(a.Answers)
}

func averageTime(answers []model.Answer) float64 {
	if len(answers) == 0 {
		return 0
	}
	total := 0
	for i := range answers {
		total += answers[i].TimeSpentSec
	}
	return round2(float64(total) / float64(len(answers)))
}
