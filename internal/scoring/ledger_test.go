package scoring

import (
	"testing"

	"maturiq/internal/model"
)

func newQuickAssessment() *model.Assessment {
	return &model.Assessment{
		ID:     "a1",
		Type:   model.AssessmentTypeQuick,
		Status: model.StatusInProgress,
	}
}

func TestRecord_AppendsAndCounts(t *testing.T) {
	a := newQuickAssessment()
	Record(a, model.Answer{QuestionID: "q1", CategoryID: "c1", RawScore: 2, Criticality: 1, TimeSpentSec: 30})
	Record(a, model.Answer{QuestionID: "q2", CategoryID: "c1", RawScore: 3, Criticality: 1, TimeSpentSec: 10})

	if len(a.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(a.Answers))
	}
	if a.QuestionsAnswered != 2 {
		t.Errorf("questionsAnswered = %d, want 2", a.QuestionsAnswered)
	}
	if a.AverageTimePerQuestion != 20 {
		t.Errorf("averageTimePerQuestion = %v, want 20", a.AverageTimePerQuestion)
	}
}

func TestRecord_ReplaceDoesNotDuplicate(t *testing.T) {
	a := newQuickAssessment()
	Record(a, model.Answer{QuestionID: "q1", CategoryID: "c1", RawScore: 1, Criticality: 1})
	before := a.QuestionsAnswered

	Record(a, model.Answer{QuestionID: "q1", CategoryID: "c1", RawScore: 3, Criticality: 1})

	if a.QuestionsAnswered != before {
		t.Errorf("questionsAnswered changed on resubmission: %d -> %d", before, a.QuestionsAnswered)
	}
	if len(a.Answers) != 1 {
		t.Fatalf("ledger holds %d answers for q1, want 1", len(a.Answers))
	}
	if a.Answers[0].RawScore != 3 {
		t.Errorf("resubmission did not replace: rawScore = %v, want 3", a.Answers[0].RawScore)
	}
}

func TestRecord_WeightedScore(t *testing.T) {
	a := &model.Assessment{Type: model.AssessmentTypeDeep, Status: model.StatusInProgress}
	Record(a, model.Answer{QuestionID: "q1", RawScore: 3, Criticality: 3})

	if got := a.Answers[0].WeightedScore; got != 9 {
		t.Errorf("weightedScore = %v, want 9", got)
	}
}

func TestRecord_DefaultCriticality(t *testing.T) {
	a := newQuickAssessment()
	Record(a, model.Answer{QuestionID: "q1", RawScore: 2})

	if a.Answers[0].Criticality != 1 {
		t.Errorf("criticality = %d, want default 1", a.Answers[0].Criticality)
	}
	if a.Answers[0].WeightedScore != 2 {
		t.Errorf("weightedScore = %v, want 2", a.Answers[0].WeightedScore)
	}
}

func TestRecord_AverageTimeAfterReplace(t *testing.T) {
	a := newQuickAssessment()
	Record(a, model.Answer{QuestionID: "q1", RawScore: 1, Criticality: 1, TimeSpentSec: 10})
	Record(a, model.Answer{QuestionID: "q2", RawScore: 1, Criticality: 1, TimeSpentSec: 20})
	Record(a, model.Answer{QuestionID: "q1", RawScore: 2, Criticality: 1, TimeSpentSec: 40})

	if a.AverageTimePerQuestion != 30 {
		t.Errorf("averageTimePerQuestion = %v, want 30", a.AverageTimePerQuestion)
	}
}
