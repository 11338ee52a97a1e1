package scoring

import (
	"reflect"
	"testing"

	"maturiq/internal/model"
)

func testCategories() []model.Category {
	return []model.Category{
		{ID: "c1", Name: "Governance", Order: 1, IsActive: true},
		{ID: "c2", Name: "Process", Order: 2, IsActive: true},
		{ID: "c3", Name: "Tools", Order: 3, IsActive: true},
	}
}

func quickAnswer(qid, cat string, raw float64) model.Answer {
	return model.Answer{
		QuestionID:    qid,
		CategoryID:    cat,
		RawScore:      raw,
		Criticality:   1,
		WeightedScore: raw,
	}
}

func TestAggregateQuick_SingleCategory(t *testing.T) {
	answers := []model.Answer{
		quickAnswer("q1", "c1", 3),
		quickAnswer("q2", "c1", 1),
	}
	res := AggregateQuick(answers, testCategories(), map[string]int{"c1": 2})

	if len(res.CategoryScores) != 1 {
		t.Fatalf("categoryScores = %d, want 1", len(res.CategoryScores))
	}
	cs := res.CategoryScores[0]
	if cs.Score != 4 {
		t.Errorf("score = %v, want 4", cs.Score)
	}
	if cs.MaxPossibleScore != 6 {
		t.Errorf("maxPossibleScore = %v, want 6", cs.MaxPossibleScore)
	}
	if cs.WeightedScore != 4 {
		t.Errorf("weightedScore = %v, want 4", cs.WeightedScore)
	}
	if cs.MaxPossibleWeightedScore != 6 {
		t.Errorf("maxPossibleWeightedScore = %v, want 6", cs.MaxPossibleWeightedScore)
	}
	if cs.Percentage != 66.67 {
		t.Errorf("percentage = %v, want 66.67", cs.Percentage)
	}
}

func TestAggregateQuick_EmptyCategoryProducesNoEntry(t *testing.T) {
	answers := []model.Answer{quickAnswer("q1", "c2", 2)}
	res := AggregateQuick(answers, testCategories(), nil)

	if len(res.CategoryScores) != 1 {
		t.Fatalf("categoryScores = %d, want 1", len(res.CategoryScores))
	}
	if res.CategoryScores[0].CategoryID != "c2" {
		t.Errorf("categoryId = %s, want c2", res.CategoryScores[0].CategoryID)
	}
}

func TestAggregateQuick_NoAnswers(t *testing.T) {
	res := AggregateQuick(nil, testCategories(), nil)

	if len(res.CategoryScores) != 0 {
		t.Errorf("categoryScores = %d, want 0", len(res.CategoryScores))
	}
	if res.OverallScore != 0 || res.OverallPercentage != 0 {
		t.Errorf("overall = %v/%v%%, want zeros", res.OverallScore, res.OverallPercentage)
	}
	if res.MaturityLevel != model.MaturityM1 {
		t.Errorf("maturityLevel = %s, want M1", res.MaturityLevel)
	}
}

func TestAggregateQuick_OverallIsFlatMean(t *testing.T) {
	// Weighted per category, but the overall score is total raw over total
	// answered, never an average of category averages.
	answers := []model.Answer{
		quickAnswer("q1", "c1", 3),
		quickAnswer("q2", "c1", 3),
		quickAnswer("q3", "c1", 3),
		quickAnswer("q4", "c2", 0),
	}
	res := AggregateQuick(answers, testCategories(), nil)

	if res.OverallScore != 2.25 { // 9/4, not (3+0)/2
		t.Errorf("overallScore = %v, want 2.25", res.OverallScore)
	}
}

func TestAggregateQuick_WeakestStrongest(t *testing.T) {
	answers := []model.Answer{
		quickAnswer("q1", "c1", 3),
		quickAnswer("q2", "c2", 1),
		quickAnswer("q3", "c3", 2),
	}
	res := AggregateQuick(answers, testCategories(), nil)

	if res.WeakestCategoryID != "c2" {
		t.Errorf("weakest = %s, want c2", res.WeakestCategoryID)
	}
	if res.StrongestCategoryID != "c1" {
		t.Errorf("strongest = %s, want c1", res.StrongestCategoryID)
	}
}

func TestAggregateQuick_TiesKeepCatalogOrder(t *testing.T) {
	answers := []model.Answer{
		quickAnswer("q1", "c1", 2),
		quickAnswer("q2", "c2", 2),
		quickAnswer("q3", "c3", 2),
	}
	res := AggregateQuick(answers, testCategories(), nil)

	if res.WeakestCategoryID != "c1" {
		t.Errorf("weakest on tie = %s, want first in catalog order c1", res.WeakestCategoryID)
	}
	if res.StrongestCategoryID != "c3" {
		t.Errorf("strongest on tie = %s, want last in catalog order c3", res.StrongestCategoryID)
	}
}

func TestAggregateQuick_Idempotent(t *testing.T) {
	answers := []model.Answer{
		quickAnswer("q1", "c1", 3),
		quickAnswer("q2", "c2", 1),
		{QuestionID: "q3", CategoryID: "c2", RawScore: 2, Criticality: 3, WeightedScore: 6},
	}
	first := AggregateQuick(answers, testCategories(), map[string]int{"c1": 4, "c2": 4})
	second := AggregateQuick(answers, testCategories(), map[string]int{"c1": 4, "c2": 4})

	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation is not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestAggregateQuick_PercentageBounds(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: "q1", CategoryID: "c1", RawScore: 3, Criticality: 3, WeightedScore: 9},
		{QuestionID: "q2", CategoryID: "c2", RawScore: 0, Criticality: 1, WeightedScore: 0},
	}
	res := AggregateQuick(answers, testCategories(), nil)

	for _, cs := range res.CategoryScores {
		if cs.Percentage < 0 || cs.Percentage > 100 {
			t.Errorf("category %s percentage %v out of [0,100]", cs.CategoryID, cs.Percentage)
		}
	}
	if res.OverallPercentage < 0 || res.OverallPercentage > 100 {
		t.Errorf("overall percentage %v out of [0,100]", res.OverallPercentage)
	}
}
