package model

// StartAssessmentRequest is the request body for starting an assessment
type StartAssessmentRequest struct {
	Type AssessmentType `json:"type"`
}

// RecordAnswerRequest is the request body for recording an answer. For
// option-based questions OptionID selects the scored option; otherwise
// RawScore is taken as submitted.
type RecordAnswerRequest struct {
	QuestionID   string  `json:"questionId"`
	OptionID     string  `json:"optionId,omitempty"`
	FreeText     string  `json:"freeText,omitempty"`
	RawScore     float64 `json:"rawScore"`
	TimeSpentSec int     `json:"timeSpentSec"`
}
