package scoring

import (
	"testing"

	"maturiq/internal/model"
)

func activeQuestion() *model.Question {
	return &model.Question{
		ID:         "q1",
		CategoryID: "c1",
		Type:       model.QuestionTypeMultipleChoice,
		IsActive:   true,
	}
}

func TestValidateSubmission_ScoreRange(t *testing.T) {
	q := activeQuestion()
	if err := ValidateSubmission(q, model.AssessmentTypeQuick, 3.1, 0); err != ErrScoreOutOfRange {
		t.Errorf("score 3.1: err = %v, want ErrScoreOutOfRange", err)
	}
	if err := ValidateSubmission(q, model.AssessmentTypeQuick, -0.1, 0); err != ErrScoreOutOfRange {
		t.Errorf("score -0.1: err = %v, want ErrScoreOutOfRange", err)
	}
	if err := ValidateSubmission(q, model.AssessmentTypeQuick, 0, 0); err != nil {
		t.Errorf("score 0: err = %v, want nil", err)
	}
	if err := ValidateSubmission(q, model.AssessmentTypeQuick, 3, 0); err != nil {
		t.Errorf("score 3: err = %v, want nil", err)
	}
}

func TestValidateSubmission_NegativeTime(t *testing.T) {
	if err := ValidateSubmission(activeQuestion(), model.AssessmentTypeQuick, 1, -1); err != ErrNegativeTime {
		t.Errorf("err = %v, want ErrNegativeTime", err)
	}
}

func TestValidateSubmission_DeepRequiresTags(t *testing.T) {
	q := activeQuestion()
	if err := ValidateSubmission(q, model.AssessmentTypeDeep, 1, 0); err != ErrNotDeepEligible {
		t.Errorf("untagged question in deep mode: err = %v, want ErrNotDeepEligible", err)
	}

	q.Deep = &model.DeepQuestionMeta{
		Module:         model.ModulePM,
		IRLPhase:       model.IRL1,
		QuestionFamily: model.FamilyGouvernancePilotage,
		Criticality:    2,
	}
	if err := ValidateSubmission(q, model.AssessmentTypeDeep, 1, 0); err != nil {
		t.Errorf("fully tagged question: err = %v, want nil", err)
	}
}

func TestValidateSubmission_UnknownFamilyRejected(t *testing.T) {
	q := activeQuestion()
	q.Deep = &model.DeepQuestionMeta{
		Module:         model.ModulePM,
		IRLPhase:       model.IRL1,
		QuestionFamily: "Famille_Inconnue",
		Criticality:    2,
	}
	if err := ValidateSubmission(q, model.AssessmentTypeDeep, 1, 0); err != ErrNotDeepEligible {
		t.Errorf("unknown family: err = %v, want ErrNotDeepEligible", err)
	}
}

func TestValidateSubmission_InactiveQuestion(t *testing.T) {
	q := activeQuestion()
	q.IsActive = false
	if err := ValidateSubmission(q, model.AssessmentTypeQuick, 1, 0); err != ErrQuestionInactive {
		t.Errorf("err = %v, want ErrQuestionInactive", err)
	}
}
