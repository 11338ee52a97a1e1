package model

import "time"

// AssessmentType selects the aggregation path. Fixed for the lifetime of
// the instance.
type AssessmentType string

const (
	AssessmentTypeQuick AssessmentType = "quick"
	AssessmentTypeDeep  AssessmentType = "deep"
)

// AssessmentStatus is the assessment state machine.
// in-progress -> completed | paused | cancelled; the latter three are terminal.
type AssessmentStatus string

const (
	StatusInProgress AssessmentStatus = "in-progress"
	StatusCompleted  AssessmentStatus = "completed"
	StatusPaused     AssessmentStatus = "paused"
	StatusCancelled  AssessmentStatus = "cancelled"
)

// MaturityLevel is the discrete maturity tier derived from a score
type MaturityLevel string

const (
	MaturityM1 MaturityLevel = "M1" // very low maturity
	MaturityM2 MaturityLevel = "M2" // medium maturity
	MaturityM3 MaturityLevel = "M3" // high maturity, well-structured
)

// CategoryScore is the per-category result of a quick aggregation run.
// Recomputed wholesale on each run, never patched.
type CategoryScore struct {
	CategoryID               string   `json:"categoryId" bson:"categoryId"`
	CategoryName             string   `json:"categoryName" bson:"categoryName"`
	Score                    float64  `json:"score" bson:"score"` // sum of raw scores
	MaxPossibleScore         float64  `json:"maxPossibleScore" bson:"maxPossibleScore"`
	WeightedScore            float64  `json:"weightedScore" bson:"weightedScore"`
	MaxPossibleWeightedScore float64  `json:"maxPossibleWeightedScore" bson:"maxPossibleWeightedScore"`
	Percentage               float64  `json:"percentage" bson:"percentage"`
	QuestionsAnswered        int      `json:"questionsAnswered" bson:"questionsAnswered"`
	QuestionsTotal           int      `json:"questionsTotal" bson:"questionsTotal"`
	Strengths                []string `json:"strengths,omitempty" bson:"strengths,omitempty"`
	Weaknesses               []string `json:"weaknesses,omitempty" bson:"weaknesses,omitempty"`
	Recommendations          []string `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
}

// FamilyScore is the per-question-family result within a module-phase group
type FamilyScore struct {
	Family            QuestionFamily `json:"family" bson:"family"`
	Score             float64        `json:"score" bson:"score"` // mean raw score
	WeightedScore     float64        `json:"weightedScore" bson:"weightedScore"`
	QuestionsAnswered int            `json:"questionsAnswered" bson:"questionsAnswered"`
	QuestionsTotal    int            `json:"questionsTotal" bson:"questionsTotal"`
}

// ModuleScore is the result for one (module, IRL phase) pair observed among
// the answers of a deep assessment.
type ModuleScore struct {
	Module                   Module        `json:"module" bson:"module"`
	IRLPhase                 IRLPhase      `json:"irlPhase" bson:"irlPhase"`
	Score                    float64       `json:"score" bson:"score"` // mean raw score across the pair
	WeightedScore            float64       `json:"weightedScore" bson:"weightedScore"`
	MaxPossibleWeightedScore float64       `json:"maxPossibleWeightedScore" bson:"maxPossibleWeightedScore"`
	MaturityLevel            MaturityLevel `json:"maturityLevel" bson:"maturityLevel"`
	IsComplete               bool          `json:"isComplete" bson:"isComplete"`
	CanProceedToNext         bool          `json:"canProceedToNext" bson:"canProceedToNext"`
	FamilyScores             []FamilyScore `json:"familyScores" bson:"familyScores"`
}

// ModuleRecommendation is emitted for deep modules that need attention
type ModuleRecommendation struct {
	Module   Module   `json:"module" bson:"module"`
	IRLPhase IRLPhase `json:"irlPhase" bson:"irlPhase"`
	Reasons  []string `json:"reasons" bson:"reasons"`
}

// Feedback is the generated guidance block attached on completion
type Feedback struct {
	Summary               string                 `json:"summary" bson:"summary"`
	Strengths             []string               `json:"strengths,omitempty" bson:"strengths,omitempty"`
	Improvements          []string               `json:"improvements,omitempty" bson:"improvements,omitempty"`
	NextSteps             []string               `json:"nextSteps,omitempty" bson:"nextSteps,omitempty"`
	ModuleRecommendations []ModuleRecommendation `json:"moduleRecommendations,omitempty" bson:"moduleRecommendations,omitempty"`
}

// Assessment is the root aggregate. Answers are unique per question id.
// CategoryScores (quick) or ModuleScores (deep) are populated only once the
// assessment completes.
type Assessment struct {
	ID         string           `json:"id" bson:"_id,omitempty"`
	ProjectID  string           `json:"projectId" bson:"projectId"`
	AssessorID string           `json:"assessorId" bson:"assessorId"`
	Type       AssessmentType   `json:"type" bson:"type"`
	Status     AssessmentStatus `json:"status" bson:"status"`

	Answers        []Answer        `json:"answers" bson:"answers"`
	CategoryScores []CategoryScore `json:"categoryScores,omitempty" bson:"categoryScores,omitempty"`
	ModuleScores   []ModuleScore   `json:"moduleScores,omitempty" bson:"moduleScores,omitempty"`

	OverallScore         float64       `json:"overallScore" bson:"overallScore"`
	OverallWeightedScore float64       `json:"overallWeightedScore" bson:"overallWeightedScore"`
	OverallPercentage    float64       `json:"overallPercentage" bson:"overallPercentage"`
	MaturityLevel        MaturityLevel `json:"maturityLevel,omitempty" bson:"maturityLevel,omitempty"`

	WeakestCategoryID   string `json:"weakestCategoryId,omitempty" bson:"weakestCategoryId,omitempty"`
	StrongestCategoryID string `json:"strongestCategoryId,omitempty" bson:"strongestCategoryId,omitempty"`

	QuestionsTotal         int     `json:"questionsTotal" bson:"questionsTotal"`
	QuestionsAnswered      int     `json:"questionsAnswered" bson:"questionsAnswered"`
	AverageTimePerQuestion float64 `json:"averageTimePerQuestion" bson:"averageTimePerQuestion"` // seconds

	Feedback *Feedback `json:"feedback,omitempty" bson:"feedback,omitempty"`

	StartedAt       time.Time  `json:"startedAt" bson:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	DurationMinutes int        `json:"durationMinutes" bson:"durationMinutes"`
}

// AnswerFor returns the recorded answer for a question, or nil
func (a *Assessment) AnswerFor(questionID string) *Answer {
	for i := range a.Answers {
		if a.Answers[i].QuestionID == questionID {
			return &a.Answers[i]
		}
	}
	return nil
}
