package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"maturiq/internal/cache"
	"maturiq/internal/model"
	"maturiq/internal/repository"
	"maturiq/internal/scoring"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrInvalidType        = errors.New("assessment type must be quick or deep")
	ErrNotInProgress      = errors.New("assessment is not in progress")
	ErrAlreadyCompleted   = errors.New("assessment is already completed")
	ErrDeleteCompleted    = errors.New("completed assessments cannot be deleted")
	ErrQuestionUnknown    = errors.New("question does not belong to the assessment's question set")
	ErrOptionUnknown      = errors.New("selected option does not belong to the question")
)

// AssessmentService drives the assessment lifecycle: start, record answers,
// complete (which runs the scoring engine exactly once), pause, cancel.
type AssessmentService struct {
	assessmentRepo repository.AssessmentRepo
	projectRepo    repository.ProjectRepo
	catalogSvc     *CatalogService
	progressCache  cache.ProgressCache
	broadcaster    Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	assessmentRepo repository.AssessmentRepo,
	projectRepo repository.ProjectRepo,
	catalogSvc *CatalogService,
	progressCache cache.ProgressCache,
) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		projectRepo:    projectRepo,
		catalogSvc:     catalogSvc,
		progressCache:  progressCache,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start creates a new in-progress assessment for a project. The type is
// fixed for the lifetime of the instance and selects the aggregation path
// on completion.
func (s *AssessmentService) Start(ctx context.Context, projectID, assessorID string, assessmentType model.AssessmentType) (*model.Assessment, error) {
	if assessmentType != model.AssessmentTypeQuick && assessmentType != model.AssessmentTypeDeep {
		return nil, ErrInvalidType
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	questions, err := s.catalogSvc.ListQuestions(ctx, assessmentType)
	if err != nil {
		return nil, fmt.Errorf("failed to load question set: %w", err)
	}

	assessment := &model.Assessment{
		ProjectID:      projectID,
		AssessorID:     assessorID,
		Type:           assessmentType,
		Status:         model.StatusInProgress,
		QuestionsTotal: len(questions),
		StartedAt:      time.Now(),
	}

	if _, err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}

	s.publishProgress(ctx, assessment)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToProject(projectID, "assessment_started", map[string]interface{}{
			"assessmentId": assessment.ID,
			"type":         string(assessmentType),
		})
	}
	return assessment, nil
}

// Get retrieves an assessment by id
func (s *AssessmentService) Get(ctx context.Context, id string) (*model.Assessment, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

// ListByProject retrieves all assessments of a project
func (s *AssessmentService) ListByProject(ctx context.Context, projectID string) ([]*model.Assessment, error) {
	return s.assessmentRepo.GetByProjectID(ctx, projectID)
}

// RecordAnswer validates and records one answer. Resubmitting the same
// question replaces the previous answer (last writer wins) without
// incrementing the answered counter. Only in-progress assessments accept
// answers.
func (s *AssessmentService) RecordAnswer(ctx context.Context, assessmentID string, req *model.RecordAnswerRequest) (*model.Answer, error) {
	assessment, err := s.Get(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.Status != model.StatusInProgress {
		return nil, ErrNotInProgress
	}

	question, err := s.catalogSvc.GetQuestion(ctx, req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	if question == nil {
		return nil, ErrQuestionUnknown
	}

	answer := model.Answer{
		QuestionID:   question.ID,
		CategoryID:   question.CategoryID,
		FreeText:     req.FreeText,
		RawScore:     req.RawScore,
		Criticality:  1,
		TimeSpentSec: req.TimeSpentSec,
		AnsweredAt:   time.Now(),
	}

	if req.OptionID != "" {
		option := optionByID(question, req.OptionID)
		if option == nil {
			return nil, ErrOptionUnknown
		}
		answer.Selected = &model.SelectedOption{ID: option.ID, Text: option.Text, Value: option.Value}
		answer.RawScore = option.Value
	}

	// Snapshot the deep tags and criticality onto the answer; aggregation
	// reads the snapshot, not the live catalog.
	if assessment.Type == model.AssessmentTypeDeep {
		if question.Deep == nil {
			return nil, scoring.ErrNotDeepEligible
		}
		answer.Criticality = question.Deep.Criticality
		answer.Module = question.Deep.Module
		answer.IRLPhase = question.Deep.IRLPhase
		answer.QuestionFamily = question.Deep.QuestionFamily
	}

	if err := scoring.ValidateSubmission(question, assessment.Type, answer.RawScore, answer.TimeSpentSec); err != nil {
		return nil, err
	}

	scoring.Record(assessment, answer)

	if err := s.assessmentRepo.SaveAnswers(ctx, assessment.ID, assessment.Answers, assessment.QuestionsAnswered, assessment.AverageTimePerQuestion); err != nil {
		return nil, fmt.Errorf("failed to save answers: %w", err)
	}

	s.publishProgress(ctx, assessment)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToProject(assessment.ProjectID, "answer_recorded", map[string]interface{}{
			"assessmentId":      assessment.ID,
			"questionId":        question.ID,
			"questionsAnswered": assessment.QuestionsAnswered,
			"questionsTotal":    assessment.QuestionsTotal,
		})
	}

	return assessment.AnswerFor(question.ID), nil
}

// Complete transitions the assessment to completed and runs the aggregation
// path for its type exactly once. Completing an already-completed
// assessment is rejected, never silently recomputed. Scores, overall
// figures, feedback, and duration are published in a single update, and the
// result is propagated to the owning project.
func (s *AssessmentService) Complete(ctx context.Context, id string) (*model.Assessment, error) {
	assessment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment.Status == model.StatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	if assessment.Status != model.StatusInProgress {
		return nil, ErrNotInProgress
	}

	// Stable snapshot of the answer set for the whole computation
	answers := make([]model.Answer, len(assessment.Answers))
	copy(answers, assessment.Answers)

	switch assessment.Type {
	case model.AssessmentTypeDeep:
		res := scoring.AggregateDeep(answers)
		assessment.ModuleScores = res.ModuleScores
		assessment.OverallScore = res.OverallScore
		assessment.OverallWeightedScore = res.OverallWeightedScore
		assessment.OverallPercentage = res.OverallPercentage
		assessment.MaturityLevel = res.MaturityLevel
		assessment.Feedback = scoring.BuildDeepFeedback(res.MaturityLevel, res.ModuleScores)

	default:
		categories, err := s.catalogSvc.ActiveCategories(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
		totals, err := s.catalogSvc.QuestionTotalsByCategory(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count catalog questions: %w", err)
		}
		cats := make([]model.Category, len(categories))
		for i, c := range categories {
			cats[i] = *c
		}

		res := scoring.AggregateQuick(answers, cats, totals)
		assessment.CategoryScores = res.CategoryScores
		assessment.OverallScore = res.OverallScore
		assessment.OverallWeightedScore = res.OverallWeightedScore
		assessment.OverallPercentage = res.OverallPercentage
		assessment.MaturityLevel = res.MaturityLevel
		assessment.WeakestCategoryID = res.WeakestCategoryID
		assessment.StrongestCategoryID = res.StrongestCategoryID
		assessment.Feedback = scoring.BuildQuickFeedback(res.OverallScore, categoryName(res.CategoryScores, res.WeakestCategoryID))
	}

	now := time.Now()
	assessment.Status = model.StatusCompleted
	assessment.CompletedAt = &now
	assessment.DurationMinutes = int(math.Round(now.Sub(assessment.StartedAt).Minutes()))

	if err := s.assessmentRepo.SaveResults(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to save results: %w", err)
	}

	s.propagateToProject(ctx, assessment)

	if s.progressCache != nil {
		s.progressCache.ClearProgress(ctx, assessment.ID)
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToProject(assessment.ProjectID, "assessment_completed", map[string]interface{}{
			"assessmentId":  assessment.ID,
			"overallScore":  assessment.OverallScore,
			"maturityLevel": string(assessment.MaturityLevel),
		})
	}

	return assessment, nil
}

// Progress returns the live progress of an assessment, cache first. On a
// cache miss the counters are rebuilt from the stored assessment.
func (s *AssessmentService) Progress(ctx context.Context, id string) (*model.AssessmentProgress, error) {
	if s.progressCache != nil {
		if progress, err := s.progressCache.GetProgress(ctx, id); err == nil && progress != nil {
			return progress, nil
		}
	}

	assessment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.AssessmentProgress{
		AssessmentID:      assessment.ID,
		ProjectID:         assessment.ProjectID,
		Type:              assessment.Type,
		QuestionsAnswered: assessment.QuestionsAnswered,
		QuestionsTotal:    assessment.QuestionsTotal,
		UpdatedAt:         time.Now(),
	}, nil
}

// Pause transitions an in-progress assessment to paused (terminal here;
// resuming is not part of this engine).
func (s *AssessmentService) Pause(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusPaused)
}

// Cancel transitions an in-progress assessment to cancelled
func (s *AssessmentService) Cancel(ctx context.Context, id string) error {
	if err := s.transition(ctx, id, model.StatusCancelled); err != nil {
		return err
	}
	if s.progressCache != nil {
		s.progressCache.ClearProgress(ctx, id)
	}
	return nil
}

// Delete removes an assessment; completed assessments are permanent history
// and cannot be deleted.
func (s *AssessmentService) Delete(ctx context.Context, id string) error {
	assessment, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if assessment.Status == model.StatusCompleted {
		return ErrDeleteCompleted
	}
	if err := s.assessmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.progressCache != nil {
		s.progressCache.ClearProgress(ctx, id)
	}
	return nil
}

func (s *AssessmentService) transition(ctx context.Context, id string, status model.AssessmentStatus) error {
	assessment, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if assessment.Status == model.StatusCompleted {
		return ErrAlreadyCompleted
	}
	if assessment.Status != model.StatusInProgress {
		return ErrNotInProgress
	}
	return s.assessmentRepo.UpdateStatus(ctx, id, status)
}

func (s *AssessmentService) propagateToProject(ctx context.Context, assessment *model.Assessment) {
	maturity := &model.ProjectMaturity{
		OverallScore:      assessment.OverallScore,
		MaturityLevel:     assessment.MaturityLevel,
		WeakestCategoryID: assessment.WeakestCategoryID,
		LastAssessedAt:    time.Now(),
		LastAssessmentID:  assessment.ID,
	}
	if err := s.projectRepo.UpdateMaturity(ctx, assessment.ProjectID, maturity); err != nil {
		// The assessment result is already persisted; log and move on
		log.Printf("failed to propagate maturity to project %s: %v", assessment.ProjectID, err)
	}
}

func (s *AssessmentService) publishProgress(ctx context.Context, assessment *model.Assessment) {
	if s.progressCache == nil {
		return
	}
	progress := &model.AssessmentProgress{
		AssessmentID:      assessment.ID,
		ProjectID:         assessment.ProjectID,
		Type:              assessment.Type,
		QuestionsAnswered: assessment.QuestionsAnswered,
		QuestionsTotal:    assessment.QuestionsTotal,
	}
	if err := s.progressCache.SetProgress(ctx, progress); err != nil {
		log.Printf("failed to cache progress for assessment %s: %v", assessment.ID, err)
	}
}

func optionByID(q *model.Question, optionID string) *model.QuestionOption {
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			return &q.Options[i]
		}
	}
	return nil
}

func categoryName(scores []model.CategoryScore, categoryID string) string {
	for _, cs := range scores {
		if cs.CategoryID == categoryID {
			return cs.CategoryName
		}
	}
	return ""
}
