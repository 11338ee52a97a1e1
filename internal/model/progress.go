package model

import "time"

// AssessmentProgress is the live progress meta kept in Redis for in-flight
// assessments and pushed to project watchers.
type AssessmentProgress struct {
	AssessmentID      string         `json:"assessmentId"`
	ProjectID         string         `json:"projectId"`
	Type              AssessmentType `json:"type"`
	QuestionsAnswered int            `json:"questionsAnswered"`
	QuestionsTotal    int            `json:"questionsTotal"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}
