package scoring

import (
	"strings"
	"testing"

	"maturiq/internal/model"
)

func TestBuildQuickFeedback_Bands(t *testing.T) {
	high := BuildQuickFeedback(2.6, "")
	mid := BuildQuickFeedback(2.0, "")
	low := BuildQuickFeedback(1.2, "")

	if high.Summary == mid.Summary || mid.Summary == low.Summary {
		t.Error("score bands must map to distinct summaries")
	}
	if !strings.Contains(high.Summary, "high") {
		t.Errorf("high band summary = %q", high.Summary)
	}
	if !strings.Contains(low.Summary, "very low") {
		t.Errorf("low band summary = %q", low.Summary)
	}
}

func TestBuildQuickFeedback_BandBoundariesMatchClassifier(t *testing.T) {
	if BuildQuickFeedback(2.4, "").Summary != BuildQuickFeedback(3.0, "").Summary {
		t.Error("2.4 must fall in the top band")
	}
	if BuildQuickFeedback(1.7, "").Summary != BuildQuickFeedback(2.39, "").Summary {
		t.Error("1.7 must fall in the middle band")
	}
	if BuildQuickFeedback(1.69, "").Summary != BuildQuickFeedback(0, "").Summary {
		t.Error("1.69 must fall in the bottom band")
	}
}

func TestBuildQuickFeedback_WeakestCategoryMention(t *testing.T) {
	fb := BuildQuickFeedback(2.0, "Governance")

	found := false
	for _, imp := range fb.Improvements {
		if strings.Contains(imp, "Governance") {
			found = true
		}
	}
	if !found {
		t.Errorf("improvements %v do not mention the weakest category", fb.Improvements)
	}
}

func TestBuildQuickFeedback_Deterministic(t *testing.T) {
	a := BuildQuickFeedback(2.0, "Process")
	b := BuildQuickFeedback(2.0, "Process")

	if a.Summary != b.Summary || len(a.Improvements) != len(b.Improvements) {
		t.Error("feedback generation must be deterministic")
	}
}

func TestBuildDeepFeedback_RecommendationForGatedModule(t *testing.T) {
	scores := []model.ModuleScore{
		{Module: model.ModulePM, IRLPhase: model.IRL1, Score: 2.0, MaturityLevel: model.MaturityM2, CanProceedToNext: false},
	}
	fb := BuildDeepFeedback(model.MaturityM2, scores)

	if len(fb.ModuleRecommendations) != 1 {
		t.Fatalf("moduleRecommendations = %d, want 1", len(fb.ModuleRecommendations))
	}
	rec := fb.ModuleRecommendations[0]
	if rec.Module != model.ModulePM || rec.IRLPhase != model.IRL1 {
		t.Errorf("recommendation names %s %s, want PM IRL1", rec.Module, rec.IRLPhase)
	}
	if len(rec.Reasons) == 0 {
		t.Error("recommendation carries no reasons")
	}
}

func TestBuildDeepFeedback_NoEntryForHealthyModule(t *testing.T) {
	scores := []model.ModuleScore{
		{Module: model.ModuleEngineering, IRLPhase: model.IRL2, Score: 2.7, MaturityLevel: model.MaturityM3, CanProceedToNext: true},
	}
	fb := BuildDeepFeedback(model.MaturityM3, scores)

	if len(fb.ModuleRecommendations) != 0 {
		t.Errorf("healthy module emitted %d recommendations, want none", len(fb.ModuleRecommendations))
	}
}

func TestBuildDeepFeedback_BelowFloorButCanProceed(t *testing.T) {
	// Impossible via the aggregator (floor < gate threshold), but the rule
	// is OR: a sub-floor score alone must produce an entry.
	scores := []model.ModuleScore{
		{Module: model.ModuleHSE, IRLPhase: model.IRL4, Score: 1.9, CanProceedToNext: true},
	}
	fb := BuildDeepFeedback(model.MaturityM2, scores)

	if len(fb.ModuleRecommendations) != 1 {
		t.Errorf("moduleRecommendations = %d, want 1", len(fb.ModuleRecommendations))
	}
}

func TestBuildDeepFeedback_SummaryReflectsLevel(t *testing.T) {
	for _, level := range []model.MaturityLevel{model.MaturityM1, model.MaturityM2, model.MaturityM3} {
		fb := BuildDeepFeedback(level, nil)
		if !strings.Contains(fb.Summary, string(level)) {
			t.Errorf("summary %q does not reference level %s", fb.Summary, level)
		}
	}
}
